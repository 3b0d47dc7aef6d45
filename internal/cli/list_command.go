package cli

import (
	"fmt"
	"text/tabwriter"
)

// ListCommand handles the list command
type ListCommand struct {
	app *App
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

// Execute runs the list command
func (c *ListCommand) Execute() error {
	tasks := c.app.engine.Tasks()
	if len(tasks) == 0 {
		fmt.Fprintln(c.app.out, "No tasks yet. Add one with: superacao add")
		return nil
	}

	w := tabwriter.NewWriter(c.app.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tDATE\tWINDOW\tCATEGORY\tSTATUS\tPOINTS")
	for _, t := range tasks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s-%s\t%s\t%s\t%d\n",
			shortID(t.ID), t.Title, t.Date, t.StartTime, t.EndTime, t.Category, t.Status, t.Points)
	}
	return w.Flush()
}

// shortID truncates UUIDs for display; full IDs still work as arguments.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
