package api

import (
	"context"
	"testing"
	"time"

	"github.com/cristiano-superacao/superacao/internal/errors"
	"github.com/cristiano-superacao/superacao/internal/repository/sqlite"
)

func setupTestAPI(t *testing.T) API {
	t.Helper()
	repo, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create in-memory repo: %v", err)
	}
	t.Cleanup(func() { repo.Close() })

	seq := 0
	return New(repo,
		WithClock(func() time.Time {
			return time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
		}),
		WithTokenGenerator(func() string {
			seq++
			return "token-" + string(rune('a'+seq-1))
		}),
	)
}

func TestLogin_CreatesAccountAndSession(t *testing.T) {
	a := setupTestAPI(t)
	ctx := context.Background()

	result, err := a.Login(ctx, LoginInput{Email: "cris@example.com", Name: "Cris"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if result.User.ID == 0 || result.User.Email != "cris@example.com" {
		t.Errorf("unexpected user: %+v", result.User)
	}
	if result.SessionToken == "" {
		t.Error("expected a session token")
	}

	user, err := a.Authenticate(ctx, result.SessionToken)
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if user.ID != result.User.ID {
		t.Errorf("token resolved to wrong user: %+v", user)
	}
}

func TestLogin_ExistingAccountIsReused(t *testing.T) {
	a := setupTestAPI(t)
	ctx := context.Background()

	first, err := a.Login(ctx, LoginInput{Email: "same@example.com", Name: "First"})
	if err != nil {
		t.Fatalf("first login failed: %v", err)
	}
	second, err := a.Login(ctx, LoginInput{Email: "same@example.com", Name: "Renamed"})
	if err != nil {
		t.Fatalf("second login failed: %v", err)
	}

	if first.User.ID != second.User.ID {
		t.Errorf("expected same account, got %d and %d", first.User.ID, second.User.ID)
	}
	if second.User.Name != "First" {
		t.Errorf("login must not rename the account, got %q", second.User.Name)
	}
	if first.SessionToken == second.SessionToken {
		t.Error("each login must mint a fresh token")
	}
}

func TestLogin_RequiresEmailAndName(t *testing.T) {
	a := setupTestAPI(t)

	cases := []LoginInput{
		{Email: "", Name: "NoEmail"},
		{Email: "no-name@example.com", Name: ""},
	}
	for _, input := range cases {
		if _, err := a.Login(context.Background(), input); !errors.IsErrorType(err, errors.ErrorTypeValidation) {
			t.Errorf("expected validation error for %+v, got %v", input, err)
		}
	}
}

func TestAuthenticate_RejectsBadTokens(t *testing.T) {
	a := setupTestAPI(t)

	for _, token := range []string{"", "unknown-token"} {
		if _, err := a.Authenticate(context.Background(), token); !errors.IsErrorType(err, errors.ErrorTypeUnauthorized) {
			t.Errorf("expected unauthorized for token %q, got %v", token, err)
		}
	}
}

func TestTaskLifecycle(t *testing.T) {
	a := setupTestAPI(t)
	ctx := context.Background()

	login, err := a.Login(ctx, LoginInput{Email: "t@example.com", Name: "T"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	userID := login.User.ID

	task, err := a.CreateTask(ctx, userID, CreateTaskInput{Title: "Estudar Go"})
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if task.Points != DefaultTaskPoints {
		t.Errorf("expected default points, got %d", task.Points)
	}

	tasks, err := a.ListTasks(ctx, userID)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Title != "Estudar Go" {
		t.Errorf("unexpected task list: %+v", tasks)
	}

	completed, err := a.CompleteTask(ctx, userID, task.ID)
	if err != nil {
		t.Fatalf("CompleteTask failed: %v", err)
	}
	if !completed.Completed || completed.CompletedAt == nil {
		t.Errorf("task not marked completed: %+v", completed)
	}
}

func TestCreateTask_RequiresTitle(t *testing.T) {
	a := setupTestAPI(t)

	_, err := a.CreateTask(context.Background(), 1, CreateTaskInput{})
	if !errors.IsErrorType(err, errors.ErrorTypeValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestCompleteTask_UnknownTask(t *testing.T) {
	a := setupTestAPI(t)
	ctx := context.Background()

	login, _ := a.Login(ctx, LoginInput{Email: "u@example.com", Name: "U"})

	_, err := a.CompleteTask(ctx, login.User.ID, 12345)
	if !errors.IsErrorType(err, errors.ErrorTypeNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestRanking(t *testing.T) {
	a := setupTestAPI(t)
	ctx := context.Background()

	users := map[string]int{"a@x.com": 300, "b@x.com": 1200, "c@x.com": 80}
	for email, points := range users {
		login, err := a.Login(ctx, LoginInput{Email: email, Name: email})
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		task, err := a.CreateTask(ctx, login.User.ID, CreateTaskInput{Title: "t", Points: points})
		if err != nil {
			t.Fatalf("CreateTask failed: %v", err)
		}
		if _, err := a.CompleteTask(ctx, login.User.ID, task.ID); err != nil {
			t.Fatalf("CompleteTask failed: %v", err)
		}
	}

	result, err := a.Ranking(ctx, 2)
	if err != nil {
		t.Fatalf("Ranking failed: %v", err)
	}
	if result.TotalUsers != 2 {
		t.Errorf("expected 2 entries, got %d", result.TotalUsers)
	}
	if result.Entries[0].Points != 1200 || result.Entries[0].Badge != "🏆" {
		t.Errorf("unexpected leader: %+v", result.Entries[0])
	}
	if result.Entries[0].Position != 1 || result.Entries[1].Position != 2 {
		t.Errorf("positions not stamped: %+v", result.Entries)
	}
	if result.Entries[1].Points != 300 {
		t.Errorf("unexpected runner-up: %+v", result.Entries[1])
	}
}

func TestRanking_DefaultLimit(t *testing.T) {
	a := setupTestAPI(t)

	result, err := a.Ranking(context.Background(), 0)
	if err != nil {
		t.Fatalf("Ranking failed: %v", err)
	}
	if len(result.Entries) != 0 {
		t.Errorf("expected empty board, got %+v", result.Entries)
	}
}
