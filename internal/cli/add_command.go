package cli

import (
	"fmt"

	"github.com/cristiano-superacao/superacao/internal/domain"
)

// AddCommand handles the add command
type AddCommand struct {
	app    *App
	errors *ErrorHandler
	input  domain.TaskInput
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App, input domain.TaskInput) *AddCommand {
	return &AddCommand{app: app, errors: NewErrorHandler(), input: input}
}

// Execute runs the add command
func (c *AddCommand) Execute() error {
	task, err := c.app.engine.AddTask(c.input)
	if err != nil {
		return c.errors.Handle("add task", err)
	}

	fmt.Fprintf(c.app.out, "Added %q (%s, %s-%s) worth %d points\n",
		task.Title, task.Category, task.StartTime, task.EndTime, task.Points)
	return nil
}
