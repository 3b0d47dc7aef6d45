package cli

import (
	"fmt"
	"strings"

	"github.com/cristiano-superacao/superacao/internal/errors"
)

// resolveTaskID expands a full or prefix task ID to the stored one.
func resolveTaskID(app *App, arg string) (string, error) {
	var matches []string
	for _, t := range app.engine.Tasks() {
		if t.ID == arg {
			return t.ID, nil
		}
		if strings.HasPrefix(t.ID, arg) {
			matches = append(matches, t.ID)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", errors.NewNotFoundError("task", arg)
	default:
		return "", errors.NewValidationError(fmt.Sprintf("task ID %q is ambiguous", arg), nil)
	}
}

// CompleteCommand handles the complete command
type CompleteCommand struct {
	app    *App
	errors *ErrorHandler
	taskID string
}

// NewCompleteCommand creates a new complete command handler
func NewCompleteCommand(app *App, taskID string) *CompleteCommand {
	return &CompleteCommand{app: app, errors: NewErrorHandler(), taskID: taskID}
}

// Execute runs the complete command
func (c *CompleteCommand) Execute() error {
	id, err := resolveTaskID(c.app, c.taskID)
	if err != nil {
		return c.errors.Handle("complete task", err)
	}

	if err := c.app.engine.CompleteTask(id); err != nil {
		return c.errors.Handle("complete task", err)
	}

	profile := c.app.engine.Profile()
	fmt.Fprintf(c.app.out, "Task completed! Total: %d points, %d day streak, level %s\n",
		profile.Points, profile.Streak, profile.Level)
	return nil
}

// StartCommand handles the start command
type StartCommand struct {
	app    *App
	errors *ErrorHandler
	taskID string
}

// NewStartCommand creates a new start command handler
func NewStartCommand(app *App, taskID string) *StartCommand {
	return &StartCommand{app: app, errors: NewErrorHandler(), taskID: taskID}
}

// Execute runs the start command
func (c *StartCommand) Execute() error {
	id, err := resolveTaskID(c.app, c.taskID)
	if err != nil {
		return c.errors.Handle("start task", err)
	}

	if err := c.app.engine.StartTask(id); err != nil {
		return c.errors.Handle("start task", err)
	}

	fmt.Fprintln(c.app.out, "Task started. Bom trabalho!")
	return nil
}
