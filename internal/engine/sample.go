package engine

import (
	"github.com/cristiano-superacao/superacao/internal/domain"
)

// SeedSampleTasks populates an empty store with the demo schedule shown on
// first launch. It does nothing when tasks already exist.
func (e *Engine) SeedSampleTasks() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.tasks) > 0 {
		return nil
	}

	now := e.clock()
	today := domain.DateOf(now)

	samples := []struct {
		title       string
		description string
		category    domain.Category
		start, end  domain.ClockTime
		status      domain.Status
	}{
		{
			title:       "Exercício Matinal",
			description: "Corrida no parque por 30 minutos",
			category:    domain.CategoryExercise,
			start:       domain.ClockTime{Hour: 8},
			end:         domain.ClockTime{Hour: 8, Minute: 30},
			status:      domain.StatusCompleted,
		},
		{
			title:       "Leitura - Desenvolvimento Pessoal",
			description: "Ler capítulo 3 do livro \"Hábitos Atômicos\"",
			category:    domain.CategoryReading,
			start:       domain.ClockTime{Hour: 9},
			end:         domain.ClockTime{Hour: 9, Minute: 45},
			status:      domain.StatusInProgress,
		},
		{
			title:       "Meditação",
			description: "Sessão de mindfulness focada na respiração",
			category:    domain.CategoryMeditation,
			start:       domain.ClockTime{Hour: 20},
			end:         domain.ClockTime{Hour: 20, Minute: 15},
			status:      domain.StatusPending,
		},
	}

	for _, s := range samples {
		e.tasks = append(e.tasks, domain.Task{
			ID:          e.newID(),
			Title:       s.title,
			Description: s.description,
			Category:    s.category,
			StartTime:   s.start,
			EndTime:     s.end,
			Date:        today,
			Status:      s.status,
			Points:      CalculatePoints(s.category, s.start.DurationUntil(s.end)),
			CreatedAt:   now,
		})
	}

	if err := e.persistTasksLocked(); err != nil {
		return err
	}
	e.onChange()
	return nil
}
