package cli

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankingCommand_Execute(t *testing.T) {
	// Arrange
	app, buf := newTestApp(t)
	cmd := NewRankingCommand(app, 5)
	cmd.rng = rand.New(rand.NewSource(42))

	// Act
	err := cmd.Execute()

	// Assert
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "POS")
	assert.Contains(t, out, "(você)")
	assert.Contains(t, out, "You are #")
}

func TestRankingCommand_Execute_DefaultLimit(t *testing.T) {
	// Arrange
	app, buf := newTestApp(t)
	cmd := NewRankingCommand(app, 0)
	cmd.rng = rand.New(rand.NewSource(42))

	// Act
	err := cmd.Execute()

	// Assert
	require.NoError(t, err)
	// Header plus the configured default of ten entries plus summary.
	assert.Contains(t, buf.String(), "of 10")
}

func TestRankingCommand_Execute_StableBetweenRuns(t *testing.T) {
	// Arrange
	app, buf := newTestApp(t)
	first := NewRankingCommand(app, 5)
	first.rng = rand.New(rand.NewSource(1))
	require.NoError(t, first.Execute())
	firstOut := buf.String()
	buf.Reset()

	// Act: different seed, same persisted competitors
	second := NewRankingCommand(app, 5)
	second.rng = rand.New(rand.NewSource(99))
	require.NoError(t, second.Execute())

	// Assert
	assert.Equal(t, firstOut, buf.String())
}
