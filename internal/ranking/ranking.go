// Package ranking assembles leaderboards: sorting entries by points,
// assigning positions and badges, and generating the mock competitor list
// shown before any real data exists.
package ranking

import (
	"fmt"
	"sort"

	"github.com/cristiano-superacao/superacao/internal/domain"
	"github.com/cristiano-superacao/superacao/internal/engine"
)

// Entry is one leaderboard row. The JSON tags match the ranking endpoint
// payload.
type Entry struct {
	Position       int    `json:"position"`
	Name           string `json:"name"`
	Avatar         string `json:"avatar"`
	Points         int    `json:"points"`
	TasksCompleted int    `json:"tasksCompleted"`
	Streak         int    `json:"streak"`
	Level          string `json:"level,omitempty"`
	Badge          string `json:"badge"`
	IsUser         bool   `json:"isUser,omitempty"`
}

// BadgeFor maps a point total to its leaderboard badge.
func BadgeFor(points int) string {
	switch {
	case points >= 1000:
		return "🏆"
	case points >= 500:
		return "🥇"
	case points >= 250:
		return "🥈"
	case points >= 100:
		return "🥉"
	default:
		return "🌟"
	}
}

// FormatPoints renders a point total compactly (1.2k, 1.0M).
func FormatPoints(points int) string {
	switch {
	case points >= 1000000:
		return fmt.Sprintf("%.1fM", float64(points)/1000000)
	case points >= 1000:
		return fmt.Sprintf("%.1fk", float64(points)/1000)
	default:
		return fmt.Sprintf("%d", points)
	}
}

// Build sorts entries by points descending and stamps positions and badges.
// The input slice is not modified.
func Build(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Points > out[j].Points
	})
	for i := range out {
		out[i].Position = i + 1
		out[i].Badge = BadgeFor(out[i].Points)
	}
	return out
}

// Standings merges the local profile into the competitor list and builds the
// board. It returns the board and the user's position in it.
func Standings(profile domain.Profile, competitors []Entry) ([]Entry, int) {
	name := profile.Name
	if name == "" {
		name = "Você"
	}

	entries := append([]Entry{}, competitors...)
	entries = append(entries, Entry{
		Name:           name,
		Avatar:         "👤",
		Points:         profile.Points,
		TasksCompleted: profile.CompletedTasks,
		Streak:         profile.Streak,
		Level:          engine.LevelForPoints(profile.Points).Name,
		IsUser:         true,
	})

	board := Build(entries)
	for _, e := range board {
		if e.IsUser {
			return board, e.Position
		}
	}
	return board, 0
}
