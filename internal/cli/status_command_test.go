package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCommand_Execute(t *testing.T) {
	// Arrange
	app, buf := newTestApp(t)
	task := addTestTask(t, app, "Correr 5km")
	require.NoError(t, app.engine.CompleteTask(task.ID))

	// Act
	err := NewStatusCommand(app, false).Execute()

	// Assert
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Level:")
	assert.Contains(t, out, "Streak:    1 days")
	assert.Contains(t, out, "Completed: 1 tasks")
	assert.Contains(t, out, "Pending tasks: 0")
	assert.NotContains(t, out, "Insights:")
}

func TestStatusCommand_Execute_WithInsights(t *testing.T) {
	// Arrange
	app, buf := newTestApp(t)
	addTestTask(t, app, "Estudar inglês")

	// Act
	err := NewStatusCommand(app, true).Execute()

	// Assert
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Insights:")
	assert.Contains(t, out, "Consistency:")
	assert.Contains(t, out, "Best time:")
	assert.Contains(t, out, "Next goal:")
}
