package ranking

import (
	"math/rand"
	"testing"

	"github.com/cristiano-superacao/superacao/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBadgeFor(t *testing.T) {
	tests := []struct {
		name     string
		points   int
		expected string
	}{
		{name: "should award trophy at 1000", points: 1000, expected: "🏆"},
		{name: "should award gold at 500", points: 500, expected: "🥇"},
		{name: "should award silver at 250", points: 250, expected: "🥈"},
		{name: "should award bronze at 100", points: 100, expected: "🥉"},
		{name: "should award star below 100", points: 99, expected: "🌟"},
		{name: "should award star at zero", points: 0, expected: "🌟"},
		{name: "should stay at gold just below silver cutoff", points: 999, expected: "🥇"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BadgeFor(tt.points))
		})
	}
}

func TestFormatPoints(t *testing.T) {
	tests := []struct {
		name     string
		points   int
		expected string
	}{
		{name: "should print small totals as-is", points: 320, expected: "320"},
		{name: "should abbreviate thousands", points: 1250, expected: "1.2k"},
		{name: "should abbreviate millions", points: 2500000, expected: "2.5M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatPoints(tt.points))
		})
	}
}

func TestBuild_SortsAndStampsPositions(t *testing.T) {
	entries := []Entry{
		{Name: "low", Points: 80},
		{Name: "high", Points: 1200},
		{Name: "mid", Points: 400},
	}

	board := Build(entries)

	require.Len(t, board, 3)
	assert.Equal(t, "high", board[0].Name)
	assert.Equal(t, 1, board[0].Position)
	assert.Equal(t, "🏆", board[0].Badge)
	assert.Equal(t, "mid", board[1].Name)
	assert.Equal(t, "🥈", board[1].Badge)
	assert.Equal(t, "low", board[2].Name)
	assert.Equal(t, 3, board[2].Position)
	assert.Equal(t, "🌟", board[2].Badge)

	// Input order untouched
	assert.Equal(t, "low", entries[0].Name)
}

func TestBuild_TiesKeepInputOrder(t *testing.T) {
	entries := []Entry{
		{Name: "first", Points: 500},
		{Name: "second", Points: 500},
	}

	board := Build(entries)

	assert.Equal(t, "first", board[0].Name)
	assert.Equal(t, "second", board[1].Name)
}

func TestStandings_InsertsUserAtCorrectPosition(t *testing.T) {
	profile := domain.Profile{Name: "Cris", Points: 650, CompletedTasks: 20, Streak: 5}
	competitors := []Entry{
		{Name: "top", Points: 1500},
		{Name: "bottom", Points: 100},
	}

	board, position := Standings(profile, competitors)

	require.Len(t, board, 3)
	assert.Equal(t, 2, position)
	assert.Equal(t, "Cris", board[1].Name)
	assert.True(t, board[1].IsUser)
	assert.Equal(t, "🥇", board[1].Badge)
	assert.Equal(t, "Focado", board[1].Level)
	assert.Equal(t, "👤", board[1].Avatar)
}

func TestStandings_DefaultsUserName(t *testing.T) {
	board, position := Standings(domain.Profile{}, nil)

	require.Len(t, board, 1)
	assert.Equal(t, 1, position)
	assert.Equal(t, "Você", board[0].Name)
}

func TestGenerator_Competitors(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(7)))

	entries := g.Competitors(10)

	require.Len(t, entries, 10)
	for i, e := range entries {
		assert.NotEmpty(t, e.Name, "entry %d", i)
		assert.NotEmpty(t, e.Avatar, "entry %d", i)
		assert.NotEmpty(t, e.Level, "entry %d", i)
		assert.GreaterOrEqual(t, e.Points, 0, "entry %d", i)
		assert.GreaterOrEqual(t, e.Streak, 1, "entry %d", i)
		assert.GreaterOrEqual(t, e.TasksCompleted, 5, "entry %d", i)
	}

	// Descending trend built into the point formula
	assert.Greater(t, entries[0].Points, entries[9].Points)

	// Names past the pool get a suffix instead of repeating verbatim
	assert.NotEqual(t, entries[0].Name, entries[8].Name)
}

func TestGenerator_DeterministicWithSeed(t *testing.T) {
	a := NewGenerator(rand.New(rand.NewSource(3))).Competitors(5)
	b := NewGenerator(rand.New(rand.NewSource(3))).Competitors(5)

	assert.Equal(t, a, b)
}
