package validation

import (
	"strings"

	"github.com/cristiano-superacao/superacao/internal/domain"
)

const (
	// TitleMinLength and TitleMaxLength bound task titles.
	TitleMinLength = 1
	TitleMaxLength = 200
)

// Validator provides common validation utilities
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if a string length is within the specified range
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := len(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsValidClockTime checks if a string parses as an HH:MM time of day
func (v *Validator) IsValidClockTime(s string) bool {
	_, err := domain.ParseClockTime(s)
	return err == nil
}

// IsValidTimeWindow checks that the start of a task window is strictly
// before its end
func (v *Validator) IsValidTimeWindow(start, end domain.ClockTime) bool {
	return start.Before(end)
}

// IsValidDate checks if a string is a well-formed calendar date
func (v *Validator) IsValidDate(s string) bool {
	return domain.IsValidDate(s)
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}
