// Package api is the backend service facade: account login, session
// validation, task sync, and the leaderboard, all on top of the sqlite
// repository. The HTTP layer stays thin and calls through this interface.
package api

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/cristiano-superacao/superacao/internal/errors"
	"github.com/cristiano-superacao/superacao/internal/ranking"
	"github.com/cristiano-superacao/superacao/internal/repository/sqlite"
)

// SessionTTL is how long a minted session token stays valid.
const SessionTTL = 7 * 24 * time.Hour

// DefaultTaskPoints is credited when a synced task does not name a value.
const DefaultTaskPoints = 10

// LoginInput is the login/register payload.
type LoginInput struct {
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	GoogleID  *string `json:"googleId,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

// LoginResult is a logged-in user plus their fresh session token.
type LoginResult struct {
	User         *sqlite.User
	SessionToken string
}

// CreateTaskInput is the synced-task creation payload.
type CreateTaskInput struct {
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Points      int        `json:"points,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
}

// RankingResult is the leaderboard payload.
type RankingResult struct {
	Entries     []ranking.Entry
	TotalUsers  int
	LastUpdated time.Time
}

// API defines the interface for all backend operations.
type API interface {
	// Account operations
	Login(ctx context.Context, input LoginInput) (*LoginResult, error)
	Authenticate(ctx context.Context, token string) (*sqlite.User, error)

	// Task operations
	ListTasks(ctx context.Context, userID int64) ([]*sqlite.UserTask, error)
	CreateTask(ctx context.Context, userID int64, input CreateTaskInput) (*sqlite.UserTask, error)
	CompleteTask(ctx context.Context, userID, taskID int64) (*sqlite.UserTask, error)

	// Ranking operations
	Ranking(ctx context.Context, limit int) (*RankingResult, error)
}

type apiImpl struct {
	repo     sqlite.Repository
	clock    func() time.Time
	newToken func() string
}

// Option configures the API.
type Option func(*apiImpl)

// WithClock overrides the wall clock.
func WithClock(clock func() time.Time) Option {
	return func(a *apiImpl) { a.clock = clock }
}

// WithTokenGenerator overrides session token generation.
func WithTokenGenerator(newToken func() string) Option {
	return func(a *apiImpl) { a.newToken = newToken }
}

// New creates a new API instance.
func New(repo sqlite.Repository, opts ...Option) API {
	a := &apiImpl{
		repo:     repo,
		clock:    time.Now,
		newToken: generateSessionToken,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func generateSessionToken() string {
	buf := make([]byte, 32)
	rand.Read(buf)
	return hex.EncodeToString(buf)
}

// Login finds or creates the account for the email and mints a session
// token. Email and name are required.
func (a *apiImpl) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	if input.Email == "" || input.Name == "" {
		return nil, errors.NewValidationError("email and name are required", nil)
	}

	now := a.clock()

	user, err := a.repo.GetUserByEmail(ctx, input.Email)
	if err != nil {
		if !errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return nil, err
		}
		user = &sqlite.User{
			Email:     input.Email,
			Name:      input.Name,
			GoogleID:  input.GoogleID,
			AvatarURL: input.AvatarURL,
			CreatedAt: now,
		}
		if err := a.repo.CreateUser(ctx, user); err != nil {
			return nil, err
		}
	}

	session := &sqlite.Session{
		UserID:    user.ID,
		Token:     a.newToken(),
		ExpiresAt: now.Add(SessionTTL),
	}
	if err := a.repo.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	return &LoginResult{User: user, SessionToken: session.Token}, nil
}

// Authenticate resolves a bearer token to its user. Unknown and expired
// tokens are an unauthorized error.
func (a *apiImpl) Authenticate(ctx context.Context, token string) (*sqlite.User, error) {
	if token == "" {
		return nil, errors.NewUnauthorizedError("no authorization header")
	}

	user, err := a.repo.GetSessionUser(ctx, token, a.clock())
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return nil, errors.NewUnauthorizedError("invalid or expired session")
		}
		return nil, err
	}
	return user, nil
}

// ListTasks returns the user's synced tasks, newest first.
func (a *apiImpl) ListTasks(ctx context.Context, userID int64) ([]*sqlite.UserTask, error) {
	return a.repo.ListUserTasks(ctx, userID)
}

// CreateTask stores a new synced task for the user.
func (a *apiImpl) CreateTask(ctx context.Context, userID int64, input CreateTaskInput) (*sqlite.UserTask, error) {
	if input.Title == "" {
		return nil, errors.NewValidationError("task title is required", nil)
	}

	points := input.Points
	if points <= 0 {
		points = DefaultTaskPoints
	}

	task := &sqlite.UserTask{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Points:      points,
		DueDate:     input.DueDate,
		CreatedAt:   a.clock(),
	}
	if err := a.repo.CreateTask(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// CompleteTask marks the task done and updates the user's aggregate stats.
func (a *apiImpl) CompleteTask(ctx context.Context, userID, taskID int64) (*sqlite.UserTask, error) {
	return a.repo.CompleteTask(ctx, taskID, userID, a.clock())
}

// Ranking returns the top users by total points with positions and badges.
func (a *apiImpl) Ranking(ctx context.Context, limit int) (*RankingResult, error) {
	if limit <= 0 {
		limit = 10
	}

	top, err := a.repo.TopUsers(ctx, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]ranking.Entry, len(top))
	for i, u := range top {
		avatar := "/app/assets/default-avatar.svg"
		if u.AvatarURL != nil && *u.AvatarURL != "" {
			avatar = *u.AvatarURL
		}
		entries[i] = ranking.Entry{
			Position:       i + 1,
			Name:           u.Name,
			Avatar:         avatar,
			Points:         u.TotalPoints,
			TasksCompleted: u.TasksCompleted,
			Streak:         u.CurrentStreak,
			Badge:          ranking.BadgeFor(u.TotalPoints),
		}
	}

	return &RankingResult{
		Entries:     entries,
		TotalUsers:  len(entries),
		LastUpdated: a.clock(),
	}, nil
}
