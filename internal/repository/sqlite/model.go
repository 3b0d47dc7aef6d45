package sqlite

import "time"

// User is a registered account on the sync backend.
type User struct {
	ID        int64
	Email     string
	Name      string
	GoogleID  *string
	AvatarURL *string
	CreatedAt time.Time
}

// Session is a bearer token minted at login.
type Session struct {
	ID        int64
	UserID    int64
	Token     string
	ExpiresAt time.Time
}

// UserTask is a synced task row. Local-only concepts (clock windows, group
// activities) never reach the backend.
type UserTask struct {
	ID          int64
	UserID      int64
	Title       string
	Description *string
	Points      int
	Completed   bool
	DueDate     *time.Time
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// UserStats is the per-user aggregate updated when tasks complete.
type UserStats struct {
	UserID         int64
	TotalPoints    int
	TasksCompleted int
	CurrentStreak  int
	BestStreak     int
	LastActivity   *time.Time
}

// RankedUser is one leaderboard row joined from users and user_stats.
type RankedUser struct {
	Name           string
	AvatarURL      *string
	TotalPoints    int
	TasksCompleted int
	CurrentStreak  int
}
