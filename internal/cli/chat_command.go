package cli

import (
	"fmt"
	"time"

	"github.com/cristiano-superacao/superacao/internal/domain"
)

// ChatCommand handles the chat command
type ChatCommand struct {
	app     *App
	errors  *ErrorHandler
	message string
	history bool
	sleep   func(time.Duration)
}

// NewChatCommand creates a new chat command handler
func NewChatCommand(app *App, message string, history bool) *ChatCommand {
	return &ChatCommand{
		app:     app,
		errors:  NewErrorHandler(),
		message: message,
		history: history,
		sleep:   time.Sleep,
	}
}

// Execute runs the chat command
func (c *ChatCommand) Execute() error {
	if c.history {
		return c.printHistory()
	}

	reply, err := c.app.coach.Send(c.app.engine.Profile(), c.message)
	if err != nil {
		return c.errors.Handle("send message", err)
	}

	// A short pause keeps the exchange from feeling instantaneous.
	c.sleep(c.app.coach.ThinkDelay())

	fmt.Fprintf(c.app.out, "Coach: %s\n", reply.Text)
	return nil
}

func (c *ChatCommand) printHistory() error {
	for _, msg := range c.app.coach.History() {
		who := "You"
		if msg.Sender == domain.SenderCoach {
			who = "Coach"
		}
		fmt.Fprintf(c.app.out, "[%s] %s: %s\n", msg.SentAt.Format("15:04"), who, msg.Text)
	}
	return nil
}
