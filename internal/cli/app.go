// Package cli implements the command line interface: local planner commands
// on top of the engine, the coach chat, the leaderboard, and the serve
// command that runs the sync backend.
package cli

import (
	"io"
	"os"

	"github.com/cristiano-superacao/superacao/internal/coach"
	"github.com/cristiano-superacao/superacao/internal/config"
	"github.com/cristiano-superacao/superacao/internal/engine"
	"github.com/cristiano-superacao/superacao/internal/storage"
)

// App bundles the dependencies shared by command handlers.
type App struct {
	config *config.Config
	store  storage.Store
	engine *engine.Engine
	coach  *coach.Coach
	out    io.Writer
}

// NewApp wires an App from an open store.
func NewApp(cfg *config.Config, store storage.Store) (*App, error) {
	eng, err := engine.New(store)
	if err != nil {
		return nil, err
	}

	c, err := coach.New(store,
		coach.WithThinkDelay(cfg.Coach.MinThinkDelay, cfg.Coach.MaxThinkDelay),
	)
	if err != nil {
		return nil, err
	}

	return &App{
		config: cfg,
		store:  store,
		engine: eng,
		coach:  c,
		out:    os.Stdout,
	}, nil
}

// NewAppFromConfig opens the configured file store and wires an App.
func NewAppFromConfig(cfg *config.Config) (*App, error) {
	store, err := config.CreateStore(cfg)
	if err != nil {
		return nil, err
	}
	return NewApp(cfg, store)
}
