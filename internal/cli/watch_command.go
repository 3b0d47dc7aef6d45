package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/cristiano-superacao/superacao/internal/scheduler"
)

// WatchCommand runs the periodic status refresher in the foreground.
type WatchCommand struct {
	app *App
	log zerolog.Logger
}

// NewWatchCommand creates a new watch command handler
func NewWatchCommand(app *App, log zerolog.Logger) *WatchCommand {
	return &WatchCommand{app: app, log: log}
}

// Execute runs the watch command until interrupted.
func (c *WatchCommand) Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(c.app.out, "Watching tasks every %s. Press Ctrl+C to stop.\n",
		c.app.config.Scheduler.RefreshInterval)

	updater := scheduler.New(c.app.engine, c.app.config.Scheduler.RefreshInterval, c.log)
	updater.Run(ctx)

	fmt.Fprintln(c.app.out, "Stopped.")
	return nil
}
