package geo

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/cristiano-superacao/superacao/internal/errors"
	"github.com/cristiano-superacao/superacao/internal/storage"
)

// Activity is the kind of outdoor exercise being tracked.
type Activity string

const (
	ActivityWalking Activity = "walking"
	ActivityRunning Activity = "running"
	ActivityCycling Activity = "cycling"
)

// caloriesPerKm holds the per-activity burn rate.
var caloriesPerKm = map[Activity]float64{
	ActivityWalking: 50,
	ActivityRunning: 70,
	ActivityCycling: 30,
}

// IsValid reports whether the activity is a known kind.
func (a Activity) IsValid() bool {
	_, ok := caloriesPerKm[a]
	return ok
}

// Record is a finished activity as persisted under the activities key.
type Record struct {
	ID        string    `json:"id"`
	Type      Activity  `json:"type"`
	StartedAt time.Time `json:"startTime"`
	Duration  int64     `json:"totalTime"` // milliseconds, pauses excluded
	Distance  float64   `json:"distance"`  // kilometers
	Calories  float64   `json:"calories"`
	AvgSpeed  float64   `json:"avgSpeed"` // km/h
	Points    int       `json:"points"`
	Positions []Point   `json:"positions"`
}

// Session accumulates GPS fixes for one activity. It is not safe for
// concurrent use; callers own the serialization, same as the rest of the
// local state.
type Session struct {
	activity Activity
	clock    func() time.Time
	newID    func() string

	startedAt time.Time
	paused    bool
	pausedAt  time.Time
	pausedFor time.Duration
	stopped   bool

	positions []Point
	last      *Point
	distance  float64
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithClock overrides the session wall clock.
func WithClock(clock func() time.Time) SessionOption {
	return func(s *Session) { s.clock = clock }
}

// WithIDGenerator overrides record ID generation.
func WithIDGenerator(newID func() string) SessionOption {
	return func(s *Session) { s.newID = newID }
}

// NewSession starts tracking the given activity. Unknown activities are a
// validation error.
func NewSession(activity Activity, opts ...SessionOption) (*Session, error) {
	if !activity.IsValid() {
		return nil, errors.NewValidationError("unknown activity type", nil)
	}

	s := &Session{
		activity: activity,
		clock:    time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.startedAt = s.clock()
	return s, nil
}

// AddPosition records a GPS fix and accumulates the distance from the
// previous one. Fixes arriving while paused or after Stop are dropped,
// matching how a backgrounded watch feed behaves.
func (s *Session) AddPosition(p Point) {
	if s.paused || s.stopped {
		return
	}

	s.positions = append(s.positions, p)
	if s.last != nil {
		s.distance += Distance(*s.last, p)
	}
	s.last = &p
}

// Pause suspends distance and duration accumulation. No-op when already
// paused or stopped.
func (s *Session) Pause() {
	if s.paused || s.stopped {
		return
	}
	s.paused = true
	s.pausedAt = s.clock()
}

// Resume continues a paused session. No-op when not paused.
func (s *Session) Resume() {
	if !s.paused || s.stopped {
		return
	}
	s.paused = false
	s.pausedFor += s.clock().Sub(s.pausedAt)
}

// Distance returns the accumulated distance in kilometers.
func (s *Session) Distance() float64 {
	return s.distance
}

// Duration returns elapsed time excluding pauses.
func (s *Session) Duration() time.Duration {
	elapsed := s.clock().Sub(s.startedAt) - s.pausedFor
	if s.paused {
		elapsed -= s.clock().Sub(s.pausedAt)
	}
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// Calories returns the burn estimate for the distance so far.
func (s *Session) Calories() float64 {
	return s.distance * caloriesPerKm[s.activity]
}

// Stop ends the session and returns the final record. Calling Stop again
// returns the same totals.
func (s *Session) Stop() Record {
	if s.paused {
		s.Resume()
	}
	duration := s.Duration()
	s.stopped = true

	avgSpeed := 0.0
	if duration > 0 {
		avgSpeed = s.distance / duration.Hours()
	}

	// 10 points per km plus 1 per minute.
	points := int(math.Round(s.distance*10)) + int(duration.Minutes())

	return Record{
		ID:        s.newID(),
		Type:      s.activity,
		StartedAt: s.startedAt,
		Duration:  duration.Milliseconds(),
		Distance:  s.distance,
		Calories:  s.Calories(),
		AvgSpeed:  avgSpeed,
		Points:    points,
		Positions: s.positions,
	}
}

// SaveRecord appends a finished activity to the persisted history.
func SaveRecord(store storage.Store, record Record) error {
	var records []Record
	if err := store.Get(storage.KeyActivities, &records); err != nil {
		if !errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return err
		}
	}
	records = append(records, record)
	return store.Set(storage.KeyActivities, records)
}

// LoadRecords returns the persisted activity history, oldest first.
func LoadRecords(store storage.Store) ([]Record, error) {
	var records []Record
	if err := store.Get(storage.KeyActivities, &records); err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return records, nil
}
