package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/cristiano-superacao/superacao/internal/geo"
)

// ActivitiesCommand lists recorded GPS activities.
type ActivitiesCommand struct {
	app    *App
	errors *ErrorHandler
}

// NewActivitiesCommand creates a new activities command handler
func NewActivitiesCommand(app *App) *ActivitiesCommand {
	return &ActivitiesCommand{app: app, errors: NewErrorHandler()}
}

// Execute runs the activities command
func (c *ActivitiesCommand) Execute() error {
	records, err := geo.LoadRecords(c.app.store)
	if err != nil {
		return c.errors.Handle("load activities", err)
	}

	if len(records) == 0 {
		fmt.Fprintln(c.app.out, "No recorded activities yet.")
		return nil
	}

	w := tabwriter.NewWriter(c.app.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tTYPE\tDISTANCE\tTIME\tCALORIES\tAVG SPEED\tPOINTS")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%.2f km\t%s\t%.0f kcal\t%.1f km/h\t%d\n",
			r.StartedAt.Format("2006-01-02 15:04"), r.Type, r.Distance,
			time.Duration(r.Duration)*time.Millisecond, r.Calories, r.AvgSpeed, r.Points)
	}
	return w.Flush()
}
