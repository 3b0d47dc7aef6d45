package domain

import (
	"time"
)

// Category classifies a task and drives its base point reward.
type Category string

const (
	CategoryExercise   Category = "exercise"
	CategoryStudy      Category = "study"
	CategoryWork       Category = "work"
	CategoryMeditation Category = "meditation"
	CategoryReading    Category = "reading"
	CategoryOther      Category = "other"
)

// IsValid reports whether the category is one of the known values.
func (c Category) IsValid() bool {
	switch c {
	case CategoryExercise, CategoryStudy, CategoryWork, CategoryMeditation, CategoryReading, CategoryOther:
		return true
	default:
		return false
	}
}

// ParseCategory maps user input onto a known category. Unknown values fall
// back to CategoryOther, matching the lowest base reward.
func ParseCategory(s string) Category {
	c := Category(s)
	if !c.IsValid() {
		return CategoryOther
	}
	return c
}

// Status is the lifecycle state of a task.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusOverdue    Status = "overdue"
)

// IsValid reports whether the status is one of the known values.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusOverdue:
		return true
	default:
		return false
	}
}

// Task is a scheduled activity in the local planner.
//
// GroupActivity marks tasks pushed by a teacher; they are excluded from
// local persistence but still count toward completion and points.
type Task struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	Category      Category   `json:"category"`
	StartTime     ClockTime  `json:"startTime"`
	EndTime       ClockTime  `json:"endTime"`
	Date          string     `json:"date"`
	Status        Status     `json:"status"`
	Points        int        `json:"points"`
	CreatedAt     time.Time  `json:"createdAt"`
	StartedAt     *time.Time `json:"startedAt,omitempty"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
	GroupActivity bool       `json:"isGroupActivity,omitempty"`
	CreatedBy     string     `json:"createdBy,omitempty"`
	DueDate       *time.Time `json:"dueDate,omitempty"`
}

// Duration returns how long the task window is.
func (t Task) Duration() time.Duration {
	return t.StartTime.DurationUntil(t.EndTime)
}

// DurationHours returns the task window length in hours, rounded to two
// decimal places as displayed in the profile totals.
func (t Task) DurationHours() float64 {
	hours := t.Duration().Minutes() / 60
	return float64(int(hours*100+0.5)) / 100
}

// IsCompleted reports whether the task has already been credited.
func (t Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// ScheduledOn reports whether the task falls on the given calendar date.
func (t Task) ScheduledOn(date string) bool {
	return t.Date == date
}
