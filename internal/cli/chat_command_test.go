package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatCommand_Execute(t *testing.T) {
	// Arrange
	app, buf := newTestApp(t)
	cmd := NewChatCommand(app, "preciso de motivação", false)
	cmd.sleep = func(time.Duration) {}

	// Act
	err := cmd.Execute()

	// Assert
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Coach: ")
	// User message plus reply, on top of the seeded welcome.
	assert.Len(t, app.coach.History(), 3)
}

func TestChatCommand_Execute_EmptyMessage(t *testing.T) {
	// Arrange
	app, _ := newTestApp(t)
	cmd := NewChatCommand(app, "", false)
	cmd.sleep = func(time.Duration) {}

	// Act
	err := cmd.Execute()

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send message")
}

func TestChatCommand_Execute_History(t *testing.T) {
	// Arrange
	app, buf := newTestApp(t)
	send := NewChatCommand(app, "olá", false)
	send.sleep = func(time.Duration) {}
	require.NoError(t, send.Execute())
	buf.Reset()

	// Act
	err := NewChatCommand(app, "", true).Execute()

	// Assert
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "You: olá")
	assert.Contains(t, out, "Coach: ")
}
