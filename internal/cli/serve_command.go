package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/cristiano-superacao/superacao/internal/api"
	"github.com/cristiano-superacao/superacao/internal/config"
	"github.com/cristiano-superacao/superacao/internal/server"
)

// ServeCommand runs the sync backend HTTP server.
type ServeCommand struct {
	cfg *config.Config
	log zerolog.Logger
}

// NewServeCommand creates a new serve command handler
func NewServeCommand(cfg *config.Config, log zerolog.Logger) *ServeCommand {
	return &ServeCommand{cfg: cfg, log: log}
}

// Execute runs the serve command until interrupted.
func (c *ServeCommand) Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, err := config.CreateRepository(c.cfg)
	if err != nil {
		return err
	}
	defer repo.Close()

	backend := api.New(repo)
	srv := server.New(backend, c.log)

	c.log.Info().Str("addr", c.cfg.Server.Addr).Msg("starting server")
	return srv.ListenAndServe(ctx, c.cfg.Server.Addr)
}
