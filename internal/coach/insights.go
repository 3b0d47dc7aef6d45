package coach

import (
	"fmt"
	"time"

	"github.com/cristiano-superacao/superacao/internal/domain"
)

// Insights summarizes the user's recent behavior for the coach panel.
type Insights struct {
	Consistency     string
	BestTime        string
	NextGoal        string
	WeeklyProgress  string
	Recommendations []Recommendation
}

// Recommendation is a suggested next action shown alongside the insights.
type Recommendation struct {
	Type    string
	Title   string
	Message string
	Action  string
}

var goalSuggestions = []string{
	"Tente aumentar seu tempo de exercício para 45min.",
	"Que tal adicionar uma sessão de meditação diária?",
	"Considere dividir tarefas grandes em blocos menores.",
	"Adicione 15 minutos extras de leitura por dia.",
	"Experimente o método Pomodoro para estudos.",
	"Defina uma meta de 5 tarefas por dia.",
	"Inclua uma atividade relaxante no fim do dia.",
}

// BuildInsights derives the panel content from the profile and task list.
func (c *Coach) BuildInsights(profile domain.Profile, tasks []domain.Task) Insights {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock()

	var completed []domain.Task
	for _, t := range tasks {
		if t.IsCompleted() {
			completed = append(completed, t)
		}
	}

	return Insights{
		Consistency:     c.analyzeConsistency(completed),
		BestTime:        analyzeBestTime(completed),
		NextGoal:        goalSuggestions[c.rng.Intn(len(goalSuggestions))],
		WeeklyProgress:  analyzeWeeklyProgress(completed, now),
		Recommendations: buildRecommendations(profile, tasks),
	}
}

func (c *Coach) analyzeConsistency(completed []domain.Task) string {
	weekAgo := c.clock().AddDate(0, 0, -7)

	thisWeek := 0
	for _, t := range completed {
		if t.CompletedAt != nil && t.CompletedAt.After(weekAgo) {
			thisWeek++
		}
	}

	// The previous week is approximated, same as the original panel.
	previousWeek := thisWeek - 2
	if previousWeek < 0 {
		previousWeek = 0
	}

	switch {
	case thisWeek > previousWeek:
		base := previousWeek
		if base == 0 {
			base = 1
		}
		improvement := (thisWeek - previousWeek) * 100 / base
		return fmt.Sprintf("Você está %d%% mais consistente esta semana! Continue assim! 🔥", improvement)
	case thisWeek == previousWeek:
		return fmt.Sprintf("Mantendo a consistência! %d tarefas esta semana. 📈", thisWeek)
	default:
		return "Que tal voltarmos ao ritmo da semana passada? Você consegue! 💪"
	}
}

func analyzeBestTime(completed []domain.Task) string {
	if len(completed) == 0 {
		return "Complete mais tarefas para descobrir seu melhor horário! 🕐"
	}

	type slot struct {
		period string
		label  string
		count  int
	}
	slots := []slot{
		{period: "manhã", label: "6h-12h"},
		{period: "tarde", label: "12h-18h"},
		{period: "noite", label: "18h-23h"},
		{period: "madrugada", label: "23h-6h"},
	}

	for _, t := range completed {
		hour := t.StartTime.Hour
		switch {
		case hour >= 6 && hour < 12:
			slots[0].count++
		case hour >= 12 && hour < 18:
			slots[1].count++
		case hour >= 18 && hour < 23:
			slots[2].count++
		default:
			slots[3].count++
		}
	}

	best := slots[0]
	for _, s := range slots[1:] {
		if s.count > best.count {
			best = s
		}
	}
	return fmt.Sprintf("Você é mais produtivo de %s (%s). 🎯", best.label, best.period)
}

func analyzeWeeklyProgress(completed []domain.Task, now time.Time) string {
	// Week starts on Sunday, matching the original panel.
	weekStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -int(now.Weekday()))

	count := 0
	points := 0
	for _, t := range completed {
		if t.CompletedAt != nil && !t.CompletedAt.Before(weekStart) {
			count++
			points += t.Points
		}
	}
	return fmt.Sprintf("Esta semana: %d tarefas, %d pontos! 🏆", count, points)
}

func buildRecommendations(profile domain.Profile, tasks []domain.Task) []Recommendation {
	var recommendations []Recommendation

	if profile.Streak < 3 {
		recommendations = append(recommendations, Recommendation{
			Type:    "consistency",
			Title:   "Foque na Consistência",
			Message: "Tente completar pelo menos 1 tarefa por dia por 7 dias.",
			Action:  "Criar Meta Diária",
		})
	}

	exerciseCount := 0
	for _, t := range tasks {
		if t.Category == domain.CategoryExercise {
			exerciseCount++
		}
	}
	if exerciseCount < 2 {
		recommendations = append(recommendations, Recommendation{
			Type:    "health",
			Title:   "Adicione Exercícios",
			Message: "Atividade física melhora foco e produtividade.",
			Action:  "Agendar Exercício",
		})
	}

	return recommendations
}
