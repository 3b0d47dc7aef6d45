package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/cristiano-superacao/superacao/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func createTestUser(t *testing.T, repo *SQLiteRepository, email string) *User {
	t.Helper()
	user := &User{
		Email:     email,
		Name:      "Test User",
		CreatedAt: time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.CreateUser(context.Background(), user))
	return user
}

func TestCreateUser(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	// Arrange
	googleID := "google-123"
	avatar := "https://example.com/a.png"
	user := &User{
		Email:     "cris@example.com",
		Name:      "Cris",
		GoogleID:  &googleID,
		AvatarURL: &avatar,
		CreatedAt: time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC),
	}

	// Act
	err := repo.CreateUser(ctx, user)

	// Assert
	require.NoError(t, err)
	assert.Greater(t, user.ID, int64(0))

	fetched, err := repo.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "cris@example.com", fetched.Email)
	assert.Equal(t, "Cris", fetched.Name)
	require.NotNil(t, fetched.GoogleID)
	assert.Equal(t, "google-123", *fetched.GoogleID)
	require.NotNil(t, fetched.AvatarURL)
	assert.True(t, fetched.CreatedAt.Equal(user.CreatedAt))
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	repo := setupTestRepo(t)

	createTestUser(t, repo, "dup@example.com")
	err := repo.CreateUser(context.Background(), &User{
		Email:     "dup@example.com",
		Name:      "Other",
		CreatedAt: time.Now().UTC(),
	})

	assert.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeDatabase))
}

func TestGetUserByEmail(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	created := createTestUser(t, repo, "findme@example.com")

	fetched, err := repo.GetUserByEmail(ctx, "findme@example.com")

	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := repo.GetUserByEmail(context.Background(), "missing@example.com")

	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestGetUser_NotFound(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := repo.GetUser(context.Background(), 999)

	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestSessionRoundTrip(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	user := createTestUser(t, repo, "session@example.com")
	now := time.Date(2025, time.March, 2, 12, 0, 0, 0, time.UTC)

	session := &Session{
		UserID:    user.ID,
		Token:     "token-abc",
		ExpiresAt: now.Add(7 * 24 * time.Hour),
	}
	require.NoError(t, repo.CreateSession(ctx, session))
	assert.Greater(t, session.ID, int64(0))

	fetched, err := repo.GetSessionUser(ctx, "token-abc", now)
	require.NoError(t, err)
	assert.Equal(t, user.ID, fetched.ID)
}

func TestGetSessionUser_Expired(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	user := createTestUser(t, repo, "expired@example.com")
	now := time.Date(2025, time.March, 2, 12, 0, 0, 0, time.UTC)

	session := &Session{
		UserID:    user.ID,
		Token:     "token-old",
		ExpiresAt: now.Add(-time.Hour),
	}
	require.NoError(t, repo.CreateSession(ctx, session))

	_, err := repo.GetSessionUser(ctx, "token-old", now)

	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestGetSessionUser_UnknownToken(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := repo.GetSessionUser(context.Background(), "nope", time.Now().UTC())

	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestCreateAndListTasks(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	user := createTestUser(t, repo, "tasks@example.com")
	base := time.Date(2025, time.March, 3, 8, 0, 0, 0, time.UTC)

	description := "30 minutes"
	due := base.AddDate(0, 0, 1)
	first := &UserTask{
		UserID:      user.ID,
		Title:       "Ler capítulo",
		Description: &description,
		Points:      10,
		DueDate:     &due,
		CreatedAt:   base,
	}
	second := &UserTask{
		UserID:    user.ID,
		Title:     "Caminhada",
		Points:    15,
		CreatedAt: base.Add(time.Hour),
	}
	require.NoError(t, repo.CreateTask(ctx, first))
	require.NoError(t, repo.CreateTask(ctx, second))

	tasks, err := repo.ListUserTasks(ctx, user.ID)

	require.NoError(t, err)
	require.Len(t, tasks, 2)
	// Newest first
	assert.Equal(t, "Caminhada", tasks[0].Title)
	assert.Equal(t, "Ler capítulo", tasks[1].Title)
	require.NotNil(t, tasks[1].Description)
	assert.Equal(t, "30 minutes", *tasks[1].Description)
	require.NotNil(t, tasks[1].DueDate)
	assert.True(t, tasks[1].DueDate.Equal(due))
	assert.False(t, tasks[0].Completed)
}

func TestListUserTasks_ScopedToUser(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	owner := createTestUser(t, repo, "owner@example.com")
	other := createTestUser(t, repo, "other@example.com")

	require.NoError(t, repo.CreateTask(ctx, &UserTask{
		UserID: owner.ID, Title: "mine", Points: 10, CreatedAt: time.Now().UTC(),
	}))

	tasks, err := repo.ListUserTasks(ctx, other.ID)

	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestCompleteTask(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	user := createTestUser(t, repo, "complete@example.com")
	now := time.Date(2025, time.March, 4, 18, 0, 0, 0, time.UTC)

	task := &UserTask{UserID: user.ID, Title: "Treino", Points: 25, CreatedAt: now.Add(-time.Hour)}
	require.NoError(t, repo.CreateTask(ctx, task))

	completed, err := repo.CompleteTask(ctx, task.ID, user.ID, now)

	require.NoError(t, err)
	assert.True(t, completed.Completed)
	require.NotNil(t, completed.CompletedAt)
	assert.True(t, completed.CompletedAt.Equal(now))

	stats, err := repo.GetUserStats(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 25, stats.TotalPoints)
	assert.Equal(t, 1, stats.TasksCompleted)
	assert.Equal(t, 1, stats.CurrentStreak)
	assert.Equal(t, 1, stats.BestStreak)
	require.NotNil(t, stats.LastActivity)
}

func TestCompleteTask_AccumulatesStats(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	user := createTestUser(t, repo, "streak@example.com")
	now := time.Date(2025, time.March, 4, 18, 0, 0, 0, time.UTC)

	for i, points := range []int{10, 20, 30} {
		task := &UserTask{UserID: user.ID, Title: "t", Points: points, CreatedAt: now}
		require.NoError(t, repo.CreateTask(ctx, task))
		_, err := repo.CompleteTask(ctx, task.ID, user.ID, now.Add(time.Duration(i)*time.Minute))
		require.NoError(t, err)
	}

	stats, err := repo.GetUserStats(ctx, user.ID)

	require.NoError(t, err)
	assert.Equal(t, 60, stats.TotalPoints)
	assert.Equal(t, 3, stats.TasksCompleted)
	assert.Equal(t, 3, stats.CurrentStreak)
	assert.Equal(t, 3, stats.BestStreak)
}

func TestCompleteTask_NotFound(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	user := createTestUser(t, repo, "nf@example.com")

	_, err := repo.CompleteTask(ctx, 999, user.ID, time.Now().UTC())

	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

	// Nothing written on failure
	_, err = repo.GetUserStats(ctx, user.ID)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestCompleteTask_WrongOwner(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	owner := createTestUser(t, repo, "o@example.com")
	intruder := createTestUser(t, repo, "i@example.com")

	task := &UserTask{UserID: owner.ID, Title: "private", Points: 10, CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.CreateTask(ctx, task))

	_, err := repo.CompleteTask(ctx, task.ID, intruder.ID, time.Now().UTC())

	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestTopUsers(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	now := time.Date(2025, time.March, 5, 9, 0, 0, 0, time.UTC)

	points := map[string]int{"a@x.com": 30, "b@x.com": 90, "c@x.com": 60}
	for email, p := range points {
		user := createTestUser(t, repo, email)
		task := &UserTask{UserID: user.ID, Title: "t", Points: p, CreatedAt: now}
		require.NoError(t, repo.CreateTask(ctx, task))
		_, err := repo.CompleteTask(ctx, task.ID, user.ID, now)
		require.NoError(t, err)
	}

	top, err := repo.TopUsers(ctx, 2)

	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, 90, top[0].TotalPoints)
	assert.Equal(t, 60, top[1].TotalPoints)
	assert.Equal(t, 1, top[0].TasksCompleted)
	assert.Equal(t, 1, top[0].CurrentStreak)
}

func TestTopUsers_EmptyBoard(t *testing.T) {
	repo := setupTestRepo(t)

	top, err := repo.TopUsers(context.Background(), 10)

	require.NoError(t, err)
	assert.Empty(t, top)
}
