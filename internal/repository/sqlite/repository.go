package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cristiano-superacao/superacao/internal/errors"
	"github.com/cristiano-superacao/superacao/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for backend database operations
type Repository interface {
	// User operations
	CreateUser(ctx context.Context, user *User) error
	GetUser(ctx context.Context, id int64) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)

	// Session operations
	CreateSession(ctx context.Context, session *Session) error
	GetSessionUser(ctx context.Context, token string, now time.Time) (*User, error)

	// Task operations
	CreateTask(ctx context.Context, task *UserTask) error
	ListUserTasks(ctx context.Context, userID int64) ([]*UserTask, error)
	CompleteTask(ctx context.Context, taskID, userID int64, now time.Time) (*UserTask, error)

	// Ranking operations
	TopUsers(ctx context.Context, limit int) ([]*RankedUser, error)
	GetUserStats(ctx context.Context, userID int64) (*UserStats, error)

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateUser inserts a new user and stamps its generated ID
func (r *SQLiteRepository) CreateUser(ctx context.Context, user *User) error {
	query := `
	INSERT INTO users (email, name, google_id, avatar_url, created_at)
	VALUES (?, ?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		user.Email, user.Name, user.GoogleID, user.AvatarURL, FormatTimeForDB(user.CreatedAt))
	if err != nil {
		return err
	}

	user.ID = id
	return nil
}

// GetUser retrieves a user by ID
func (r *SQLiteRepository) GetUser(ctx context.Context, id int64) (*User, error) {
	query := `
	SELECT id, email, name, google_id, avatar_url, created_at
	FROM users
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanUser, "user", fmt.Sprintf("%d", id), id)
}

// GetUserByEmail retrieves a user by email
func (r *SQLiteRepository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	query := `
	SELECT id, email, name, google_id, avatar_url, created_at
	FROM users
	WHERE email = ?`

	return QuerySingle(ctx, r.db, query, ScanUser, "user", email, email)
}

// CreateSession inserts a new session token
func (r *SQLiteRepository) CreateSession(ctx context.Context, session *Session) error {
	query := `
	INSERT INTO user_sessions (user_id, session_token, expires_at)
	VALUES (?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		session.UserID, session.Token, FormatTimeForDB(session.ExpiresAt))
	if err != nil {
		return err
	}

	session.ID = id
	return nil
}

// GetSessionUser resolves a bearer token to its user. Expired or unknown
// tokens are a not-found error.
func (r *SQLiteRepository) GetSessionUser(ctx context.Context, token string, now time.Time) (*User, error) {
	query := `
	SELECT u.id, u.email, u.name, u.google_id, u.avatar_url, u.created_at
	FROM user_sessions s
	JOIN users u ON u.id = s.user_id
	WHERE s.session_token = ? AND s.expires_at > ?`

	return QuerySingle(ctx, r.db, query, ScanUser, "session", token, token, FormatTimeForDB(now))
}

// CreateTask inserts a new task row and stamps its generated ID
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *UserTask) error {
	query := `
	INSERT INTO tasks (user_id, title, description, points, completed, due_date, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		task.UserID, task.Title, task.Description, task.Points, task.Completed,
		FormatTimePtrForDB(task.DueDate), FormatTimeForDB(task.CreatedAt))
	if err != nil {
		return err
	}

	task.ID = id
	return nil
}

// ListUserTasks retrieves a user's tasks, newest first
func (r *SQLiteRepository) ListUserTasks(ctx context.Context, userID int64) ([]*UserTask, error) {
	query := `
	SELECT id, user_id, title, description, points, completed, due_date, created_at, completed_at
	FROM tasks
	WHERE user_id = ?
	ORDER BY created_at DESC`

	return QueryMultiple(ctx, r.db, query, ScanUserTasks, "tasks", userID)
}

// CompleteTask marks a task completed and updates the owner's aggregate
// stats in one transaction. Unknown task or wrong owner is a not-found
// error and nothing is written.
func (r *SQLiteRepository) CompleteTask(ctx context.Context, taskID, userID int64, now time.Time) (*UserTask, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, HandleDatabaseError("begin transaction", err)
	}
	defer tx.Rollback()

	updateQuery := `
	UPDATE tasks
	SET completed = 1, completed_at = ?
	WHERE id = ? AND user_id = ?`

	result, err := tx.ExecContext(ctx, updateQuery, FormatTimeForDB(now), taskID, userID)
	if err != nil {
		return nil, HandleDatabaseError("complete task", err)
	}
	if err := ValidateRowsAffected(result, "task", fmt.Sprintf("%d", taskID)); err != nil {
		return nil, err
	}

	selectQuery := `
	SELECT id, user_id, title, description, points, completed, due_date, created_at, completed_at
	FROM tasks
	WHERE id = ?`

	task, err := ScanUserTask(tx.QueryRowContext(ctx, selectQuery, taskID))
	if err != nil {
		return nil, HandleDatabaseError("scan task", err)
	}

	statsQuery := `
	INSERT INTO user_stats (user_id, total_points, tasks_completed, current_streak, best_streak, last_activity)
	VALUES (?, ?, 1, 1, 1, ?)
	ON CONFLICT (user_id) DO UPDATE SET
		total_points = user_stats.total_points + excluded.total_points,
		tasks_completed = user_stats.tasks_completed + 1,
		current_streak = user_stats.current_streak + 1,
		best_streak = MAX(user_stats.best_streak, user_stats.current_streak + 1),
		last_activity = excluded.last_activity`

	if _, err := tx.ExecContext(ctx, statsQuery, userID, task.Points, FormatTimeForDB(now)); err != nil {
		return nil, HandleDatabaseError("update user stats", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, HandleDatabaseError("commit transaction", err)
	}
	return task, nil
}

// TopUsers retrieves the leaderboard rows ordered by total points
func (r *SQLiteRepository) TopUsers(ctx context.Context, limit int) ([]*RankedUser, error) {
	query := `
	SELECT u.name, u.avatar_url, s.total_points, s.tasks_completed, s.current_streak
	FROM user_stats s
	JOIN users u ON u.id = s.user_id
	ORDER BY s.total_points DESC
	LIMIT ?`

	return QueryMultiple(ctx, r.db, query, ScanRankedUsers, "ranking", limit)
}

// GetUserStats retrieves a user's aggregate stats
func (r *SQLiteRepository) GetUserStats(ctx context.Context, userID int64) (*UserStats, error) {
	query := `
	SELECT user_id, total_points, tasks_completed, current_streak, best_streak, last_activity
	FROM user_stats
	WHERE user_id = ?`

	return QuerySingle(ctx, r.db, query, ScanUserStats, "user stats", fmt.Sprintf("%d", userID), userID)
}
