package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cristiano-superacao/superacao/internal/config"
	"github.com/cristiano-superacao/superacao/internal/domain"
	"github.com/cristiano-superacao/superacao/internal/storage"
)

// newTestApp wires an App against an in-memory store with captured output.
func newTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()

	app, err := NewApp(config.NewConfig(), storage.NewMemoryStore())
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	app.out = buf
	return app, buf
}

// addTestTask creates a valid task through the engine and returns it.
func addTestTask(t *testing.T, app *App, title string) domain.Task {
	t.Helper()

	task, err := app.engine.AddTask(domain.TaskInput{
		Title:     title,
		Category:  "study",
		StartTime: "08:00",
		EndTime:   "09:00",
	})
	require.NoError(t, err)
	return task
}

func TestNewApp(t *testing.T) {
	// Arrange & Act
	app, err := NewApp(config.NewConfig(), storage.NewMemoryStore())

	// Assert
	require.NoError(t, err)
	require.NotNil(t, app.engine)
	require.NotNil(t, app.coach)
	require.NotNil(t, app.config)
}
