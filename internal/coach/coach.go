// Package coach implements the scripted "AI coach": a keyword-to-response
// lookup over canned Portuguese strings, a persisted chat history, and a few
// statistics-flavored insights derived from the task list. The randomness
// and the simulated thinking delay are injectable so the whole thing can be
// treated as a deterministic fixture in tests.
package coach

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cristiano-superacao/superacao/internal/domain"
	"github.com/cristiano-superacao/superacao/internal/errors"
	"github.com/cristiano-superacao/superacao/internal/storage"
)

const (
	// DefaultMinThinkDelay and DefaultMaxThinkDelay bound the simulated
	// response delay. Purely UX pacing; nothing depends on it.
	DefaultMinThinkDelay = 1 * time.Second
	DefaultMaxThinkDelay = 3 * time.Second
)

// Coach answers user messages from canned pools and keeps the conversation
// history in the key-value store.
type Coach struct {
	mu       sync.Mutex
	store    storage.Store
	rng      *rand.Rand
	clock    func() time.Time
	newID    func() string
	minDelay time.Duration
	maxDelay time.Duration

	history []domain.ChatMessage
}

// Option configures a Coach.
type Option func(*Coach)

// WithRand seeds the response picker, making replies deterministic.
func WithRand(rng *rand.Rand) Option {
	return func(c *Coach) { c.rng = rng }
}

// WithClock overrides the wall clock.
func WithClock(clock func() time.Time) Option {
	return func(c *Coach) { c.clock = clock }
}

// WithIDGenerator overrides message ID generation.
func WithIDGenerator(newID func() string) Option {
	return func(c *Coach) { c.newID = newID }
}

// WithThinkDelay overrides the simulated response delay bounds.
func WithThinkDelay(min, max time.Duration) Option {
	return func(c *Coach) {
		c.minDelay = min
		c.maxDelay = max
	}
}

// New loads the chat history, seeding the welcome message when empty.
func New(store storage.Store, opts ...Option) (*Coach, error) {
	c := &Coach{
		store:    store,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		clock:    time.Now,
		newID:    uuid.NewString,
		minDelay: DefaultMinThinkDelay,
		maxDelay: DefaultMaxThinkDelay,
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.store.Get(storage.KeyChat, &c.history); err != nil {
		if !errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return nil, err
		}
	}
	if len(c.history) == 0 {
		c.history = []domain.ChatMessage{{
			ID:     c.newID(),
			Sender: domain.SenderCoach,
			Text:   WelcomeMessage,
			SentAt: c.clock(),
		}}
		if err := c.store.Set(storage.KeyChat, c.history); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// History returns a snapshot of the conversation.
func (c *Coach) History() []domain.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]domain.ChatMessage, len(c.history))
	copy(out, c.history)
	return out
}

// Send records the user message, generates the coach reply, persists both,
// and returns the reply. Empty messages are a validation error.
func (c *Coach) Send(profile domain.Profile, text string) (domain.ChatMessage, error) {
	if text == "" {
		return domain.ChatMessage{}, errors.NewValidationError("message is required", nil)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock()
	c.history = append(c.history, domain.ChatMessage{
		ID:     c.newID(),
		Sender: domain.SenderUser,
		Text:   text,
		SentAt: now,
	})

	reply := domain.ChatMessage{
		ID:     c.newID(),
		Sender: domain.SenderCoach,
		Text:   c.generateReply(text, profile),
		SentAt: now,
	}
	c.history = append(c.history, reply)

	if err := c.store.Set(storage.KeyChat, c.history); err != nil {
		return reply, err
	}
	return reply, nil
}

// ClearHistory wipes the conversation and reseeds the welcome message.
func (c *Coach) ClearHistory() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.history = []domain.ChatMessage{{
		ID:     c.newID(),
		Sender: domain.SenderCoach,
		Text:   WelcomeMessage,
		SentAt: c.clock(),
	}}
	return c.store.Set(storage.KeyChat, c.history)
}

// ThinkDelay returns a random duration inside the configured bounds,
// simulating the coach "typing".
func (c *Coach) ThinkDelay() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.maxDelay <= c.minDelay {
		return c.minDelay
	}
	return c.minDelay + time.Duration(c.rng.Int63n(int64(c.maxDelay-c.minDelay)))
}
