// Package engine implements the task/points/streak core: the authoritative
// task list, the derived-status pass, reward computation, and one-shot
// achievement unlocking. All state lives behind a single Engine value backed
// by the key-value store; there are no package-level globals.
package engine

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cristiano-superacao/superacao/internal/domain"
	"github.com/cristiano-superacao/superacao/internal/errors"
	"github.com/cristiano-superacao/superacao/internal/storage"
	"github.com/cristiano-superacao/superacao/internal/validation"
)

// Engine owns the session's task list, profile, and settings. Methods are
// safe to call from the status refresher and user actions concurrently.
type Engine struct {
	mu        sync.Mutex
	store     storage.Store
	validator *validation.TaskValidator
	clock     func() time.Time
	newID     func() string
	log       zerolog.Logger
	onChange  func()
	onMessage func(text string)

	tasks    []domain.Task
	profile  domain.Profile
	settings domain.Settings
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the wall clock, used by tests and the status refresher.
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) { e.clock = clock }
}

// WithIDGenerator overrides task ID generation.
func WithIDGenerator(newID func() string) Option {
	return func(e *Engine) { e.newID = newID }
}

// WithLogger attaches a logger for storage failures.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithOnChange registers a hook invoked after every persisted mutation, the
// point where a UI would re-render.
func WithOnChange(fn func()) Option {
	return func(e *Engine) { e.onChange = fn }
}

// WithOnMessage registers a hook for user-facing notifications such as
// point awards and unlocked badges.
func WithOnMessage(fn func(text string)) Option {
	return func(e *Engine) { e.onMessage = fn }
}

// New loads state from the store, seeding defaults for anything missing.
func New(store storage.Store, opts ...Option) (*Engine, error) {
	e := &Engine{
		store:     store,
		validator: validation.NewTaskValidator(),
		clock:     time.Now,
		newID:     uuid.NewString,
		log:       zerolog.Nop(),
		onChange:  func() {},
		onMessage: func(string) {},
	}
	for _, opt := range opts {
		opt(e)
	}

	if err := e.load(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Engine) load() error {
	if err := e.store.Get(storage.KeyTasks, &e.tasks); err != nil {
		if !errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return err
		}
		e.tasks = []domain.Task{}
	}

	if err := e.store.Get(storage.KeyProfile, &e.profile); err != nil {
		if !errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return err
		}
		e.profile = domain.NewProfile("", e.clock())
		if err := e.store.Set(storage.KeyProfile, e.profile); err != nil {
			e.log.Warn().Err(err).Msg("could not seed profile")
		}
	}

	if err := e.store.Get(storage.KeySettings, &e.settings); err != nil {
		if !errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return err
		}
		e.settings = domain.DefaultSettings()
		if err := e.store.Set(storage.KeySettings, e.settings); err != nil {
			e.log.Warn().Err(err).Msg("could not seed settings")
		}
	}

	return nil
}

// persistTasksLocked writes the personal task list. Group activities come
// from the teacher and are never persisted locally. On storage failure the
// in-memory state is kept and the error reported; the session stays usable.
func (e *Engine) persistTasksLocked() error {
	personal := make([]domain.Task, 0, len(e.tasks))
	for _, t := range e.tasks {
		if !t.GroupActivity {
			personal = append(personal, t)
		}
	}
	if err := e.store.Set(storage.KeyTasks, personal); err != nil {
		e.log.Error().Err(err).Msg("persist tasks failed")
		return err
	}
	return nil
}

func (e *Engine) persistProfileLocked() error {
	if err := e.store.Set(storage.KeyProfile, e.profile); err != nil {
		e.log.Error().Err(err).Msg("persist profile failed")
		return err
	}
	return nil
}

// Tasks returns a snapshot of the current task list.
func (e *Engine) Tasks() []domain.Task {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]domain.Task, len(e.tasks))
	copy(out, e.tasks)
	return out
}

// Profile returns a snapshot of the current profile.
func (e *Engine) Profile() domain.Profile {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.profile
}

// Settings returns the current settings.
func (e *Engine) Settings() domain.Settings {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.settings
}

// UpdateSettings replaces the settings record.
func (e *Engine) UpdateSettings(s domain.Settings) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.settings = s
	if err := e.store.Set(storage.KeySettings, s); err != nil {
		e.log.Error().Err(err).Msg("persist settings failed")
		return err
	}
	e.onChange()
	return nil
}

// ResetProfile discards all progress and starts a fresh profile with the
// given name. This is the only path where the point total decreases.
func (e *Engine) ResetProfile(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.profile = domain.NewProfile(name, e.clock())
	if err := e.persistProfileLocked(); err != nil {
		return err
	}
	e.onChange()
	return nil
}

func (e *Engine) findTaskLocked(id string) (int, bool) {
	for i := range e.tasks {
		if e.tasks[i].ID == id {
			return i, true
		}
	}
	return -1, false
}
