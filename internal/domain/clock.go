package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used across the app (task dates,
// streak bookkeeping). All comparisons are done on this local-date string.
const DateLayout = "2006-01-02"

// ClockTime is a wall-clock time of day without a date, stored as HH:MM.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClockTime parses an HH:MM string into a ClockTime.
func ParseClockTime(s string) (ClockTime, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return ClockTime{}, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return ClockTime{}, fmt.Errorf("invalid time %q: hour must be 0-23 and minute 0-59", s)
	}
	return ClockTime{Hour: h, Minute: m}, nil
}

// String returns the canonical HH:MM representation.
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Minutes returns minutes since midnight.
func (c ClockTime) Minutes() int {
	return c.Hour*60 + c.Minute
}

// Before reports whether c is strictly earlier in the day than other.
func (c ClockTime) Before(other ClockTime) bool {
	return c.Minutes() < other.Minutes()
}

// DurationUntil returns the elapsed time from c to end within the same day.
func (c ClockTime) DurationUntil(end ClockTime) time.Duration {
	return time.Duration(end.Minutes()-c.Minutes()) * time.Minute
}

// MarshalJSON encodes the time as an HH:MM string.
func (c ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes an HH:MM string.
func (c *ClockTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseClockTime(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// DateOf formats a timestamp as a local calendar date.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// IsValidDate reports whether s is a well-formed calendar date.
func IsValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
