package coach

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/cristiano-superacao/superacao/internal/domain"
	"github.com/cristiano-superacao/superacao/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCoach(t *testing.T) (*Coach, storage.Store) {
	t.Helper()
	store := storage.NewMemoryStore()

	seq := 0
	c, err := New(store,
		WithRand(rand.New(rand.NewSource(1))),
		WithClock(func() time.Time {
			return time.Date(2025, time.March, 10, 9, 0, 0, 0, time.Local)
		}),
		WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("msg-%d", seq)
		}),
	)
	require.NoError(t, err)
	return c, store
}

func TestNew_SeedsWelcomeMessage(t *testing.T) {
	c, store := newTestCoach(t)

	history := c.History()
	require.Len(t, history, 1)
	assert.Equal(t, domain.SenderCoach, history[0].Sender)
	assert.Equal(t, WelcomeMessage, history[0].Text)

	var persisted []domain.ChatMessage
	require.NoError(t, store.Get(storage.KeyChat, &persisted))
	assert.Len(t, persisted, 1)
}

func TestCoach_Send_AppendsBothMessages(t *testing.T) {
	c, store := newTestCoach(t)

	reply, err := c.Send(domain.Profile{}, "oi, tudo bem?")
	require.NoError(t, err)
	assert.Equal(t, domain.SenderCoach, reply.Sender)
	assert.NotEmpty(t, reply.Text)

	history := c.History()
	require.Len(t, history, 3) // welcome + user + reply
	assert.Equal(t, domain.SenderUser, history[1].Sender)
	assert.Equal(t, "oi, tudo bem?", history[1].Text)

	var persisted []domain.ChatMessage
	require.NoError(t, store.Get(storage.KeyChat, &persisted))
	assert.Len(t, persisted, 3)
}

func TestCoach_Send_RejectsEmptyMessage(t *testing.T) {
	c, _ := newTestCoach(t)

	_, err := c.Send(domain.Profile{}, "")
	assert.Error(t, err)
	assert.Len(t, c.History(), 1)
}

func TestCoach_KeywordRouting(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected []string // reply must be one of these
	}{
		{
			name:     "should answer greetings from the greeting pool",
			message:  "Olá coach!",
			expected: responseRules[0].responses,
		},
		{
			name:     "should answer motivation requests from the motivation pool",
			message:  "preciso de motivação hoje",
			expected: responseRules[1].responses,
		},
		{
			name:     "should answer study questions from the study pool",
			message:  "como estudar melhor?",
			expected: responseRules[5].responses,
		},
		{
			name:     "should fall back to the default pool",
			message:  "xyzzy",
			expected: defaultResponses,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestCoach(t)

			reply, err := c.Send(domain.Profile{}, tt.message)

			require.NoError(t, err)
			assert.Contains(t, tt.expected, reply.Text)
		})
	}
}

func TestCoach_ProgressAnswerUsesProfileData(t *testing.T) {
	c, _ := newTestCoach(t)
	profile := domain.Profile{Points: 320, Streak: 4, CompletedTasks: 12}

	reply, err := c.Send(profile, "qual o meu progresso?")

	require.NoError(t, err)
	assert.Contains(t, reply.Text, "12 tarefas")
	assert.Contains(t, reply.Text, "320 pontos")
	assert.Contains(t, reply.Text, "4 dias")
}

func TestCoach_DeterministicWithSeededRand(t *testing.T) {
	first, _ := newTestCoach(t)
	second, _ := newTestCoach(t)

	a, err := first.Send(domain.Profile{}, "motivação")
	require.NoError(t, err)
	b, err := second.Send(domain.Profile{}, "motivação")
	require.NoError(t, err)

	assert.Equal(t, a.Text, b.Text)
}

func TestCoach_ThinkDelayWithinBounds(t *testing.T) {
	c, _ := newTestCoach(t)

	for i := 0; i < 50; i++ {
		delay := c.ThinkDelay()
		assert.GreaterOrEqual(t, delay, DefaultMinThinkDelay)
		assert.Less(t, delay, DefaultMaxThinkDelay)
	}
}

func TestCoach_ClearHistory(t *testing.T) {
	c, _ := newTestCoach(t)
	_, err := c.Send(domain.Profile{}, "oi")
	require.NoError(t, err)

	require.NoError(t, c.ClearHistory())

	history := c.History()
	require.Len(t, history, 1)
	assert.Equal(t, WelcomeMessage, history[0].Text)
}

func TestCoach_HistoryPersistsAcrossInstances(t *testing.T) {
	c, store := newTestCoach(t)
	_, err := c.Send(domain.Profile{}, "oi")
	require.NoError(t, err)

	reloaded, err := New(store, WithRand(rand.New(rand.NewSource(2))))
	require.NoError(t, err)
	assert.Len(t, reloaded.History(), 3)
}

func TestCoach_BuildInsights(t *testing.T) {
	c, _ := newTestCoach(t)
	now := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.Local)
	completedAt := now.Add(-24 * time.Hour)

	tasks := []domain.Task{
		{
			Category:    domain.CategoryStudy,
			StartTime:   domain.ClockTime{Hour: 8},
			Status:      domain.StatusCompleted,
			Points:      40,
			CompletedAt: &completedAt,
		},
		{
			Category:  domain.CategoryStudy,
			StartTime: domain.ClockTime{Hour: 20},
			Status:    domain.StatusPending,
		},
	}

	insights := c.BuildInsights(domain.Profile{Streak: 1}, tasks)

	assert.Contains(t, insights.BestTime, "manhã")
	assert.NotEmpty(t, insights.Consistency)
	assert.Contains(t, goalSuggestions, insights.NextGoal)
	assert.Contains(t, insights.WeeklyProgress, "1 tarefas")

	// streak < 3 and fewer than two exercise tasks produce both tips
	require.Len(t, insights.Recommendations, 2)
	assert.Equal(t, "consistency", insights.Recommendations[0].Type)
	assert.Equal(t, "health", insights.Recommendations[1].Type)
}

func TestCoach_BuildInsights_EmptyHistory(t *testing.T) {
	c, _ := newTestCoach(t)

	insights := c.BuildInsights(domain.Profile{Streak: 5}, nil)

	assert.Contains(t, insights.BestTime, "Complete mais tarefas")
	assert.Contains(t, insights.WeeklyProgress, "0 tarefas")
}
