package engine

import (
	"time"

	"github.com/cristiano-superacao/superacao/internal/domain"
)

const (
	// LongTaskBonus is added when a task window is longer than an hour.
	LongTaskBonus = 10
	// ExtraLongTaskBonus is added on top when the window exceeds two hours.
	// The bonuses stack: a 150-minute task earns both.
	ExtraLongTaskBonus = 20

	longTaskThreshold      = 60 * time.Minute
	extraLongTaskThreshold = 120 * time.Minute
)

var basePoints = map[domain.Category]int{
	domain.CategoryExercise:   50,
	domain.CategoryStudy:      40,
	domain.CategoryWork:       35,
	domain.CategoryMeditation: 30,
	domain.CategoryReading:    40,
	domain.CategoryOther:      25,
}

// BasePoints returns the category's base reward. Unknown categories earn
// the same as CategoryOther.
func BasePoints(c domain.Category) int {
	if points, ok := basePoints[c]; ok {
		return points
	}
	return basePoints[domain.CategoryOther]
}

// CalculatePoints computes the point value frozen into a task at creation:
// the category base plus duration bonuses.
func CalculatePoints(c domain.Category, duration time.Duration) int {
	points := BasePoints(c)
	if duration > longTaskThreshold {
		points += LongTaskBonus
	}
	if duration > extraLongTaskThreshold {
		points += ExtraLongTaskBonus
	}
	return points
}
