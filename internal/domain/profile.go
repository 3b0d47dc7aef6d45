package domain

import (
	"time"
)

// Achievement is a one-shot badge attached to a profile. The Points field is
// the bonus credited when the badge unlocks.
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Points      int    `json:"points"`
}

// Profile is the single local user of the app.
type Profile struct {
	Name           string        `json:"name"`
	Points         int           `json:"points"`
	Rank           int           `json:"rank"`
	Level          string        `json:"level"`
	Streak         int           `json:"streak"`
	CompletedTasks int           `json:"completedTasks"`
	TotalHours     float64       `json:"totalHours"`
	Achievements   []Achievement `json:"achievements"`
	// LastStreakDate is the calendar date of the most recent streak advance.
	LastStreakDate string    `json:"lastStreakDate,omitempty"`
	JoinedAt       time.Time `json:"joinDate"`
	LastActiveAt   time.Time `json:"lastActive"`
}

// NewProfile returns a fresh profile with starter values.
func NewProfile(name string, now time.Time) Profile {
	if name == "" {
		name = "Usuário"
	}
	return Profile{
		Name:         name,
		Level:        "Iniciante",
		Achievements: []Achievement{},
		JoinedAt:     now,
		LastActiveAt: now,
	}
}

// HasAchievement reports whether the badge with the given ID is already
// present. Badge IDs are set-unique within a profile.
func (p Profile) HasAchievement(id string) bool {
	for _, a := range p.Achievements {
		if a.ID == id {
			return true
		}
	}
	return false
}

// Settings holds user preferences persisted under the settings key.
type Settings struct {
	Notifications   bool   `json:"notifications"`
	SoundEnabled    bool   `json:"soundEnabled"`
	Theme           string `json:"theme"`
	Language        string `json:"language"`
	AutoSync        bool   `json:"autoSync"`
	ReminderMinutes int    `json:"reminderMinutes"`
	DailyGoal       int    `json:"dailyGoal"`
}

// DefaultSettings returns the settings seeded on first use.
func DefaultSettings() Settings {
	return Settings{
		Notifications:   true,
		SoundEnabled:    true,
		Theme:           "light",
		Language:        "pt-BR",
		AutoSync:        true,
		ReminderMinutes: 5,
		DailyGoal:       3,
	}
}
