package engine

import (
	"fmt"
	"math"

	"github.com/cristiano-superacao/superacao/internal/domain"
	"github.com/cristiano-superacao/superacao/internal/errors"
)

// CompleteTask credits a task: stamps CompletedAt, awards its points,
// bumps the completed counter and accumulated hours, advances the streak,
// and runs the achievement checker. Completing an already-completed task is
// a no-op, so the status refresher and a user tap cannot double-award.
func (e *Engine) CompleteTask(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.completeLocked(id)
}

func (e *Engine) completeLocked(id string) error {
	i, ok := e.findTaskLocked(id)
	if !ok {
		return errors.NewNotFoundError("task", id)
	}

	task := &e.tasks[i]
	if task.IsCompleted() {
		return nil
	}

	now := e.clock()
	task.Status = domain.StatusCompleted
	task.CompletedAt = &now

	e.profile.Points += task.Points
	e.profile.CompletedTasks++
	e.profile.TotalHours = roundHours(e.profile.TotalHours + task.DurationHours())
	e.profile.LastActiveAt = now

	e.updateStreakLocked(domain.DateOf(now))
	unlocked := e.checkAchievementsLocked()
	e.profile.Level = LevelForPoints(e.profile.Points).Name

	if err := e.persistTasksLocked(); err != nil {
		return err
	}
	if err := e.persistProfileLocked(); err != nil {
		return err
	}

	e.onChange()
	e.onMessage(fmt.Sprintf("+%d pontos! Tarefa concluída!", task.Points))
	for _, a := range unlocked {
		e.onMessage(fmt.Sprintf("Nova conquista: %s!", a.Title))
	}
	return nil
}

// updateStreakLocked advances the consecutive-day counter. A completion
// today extends the streak when the last advance was yesterday (or there is
// no record), restarts it at 1 after a gap, and does nothing when the streak
// already advanced today.
func (e *Engine) updateStreakLocked(today string) {
	if !e.completedOnLocked(today) {
		return
	}

	yesterday := domain.DateOf(e.clock().AddDate(0, 0, -1))
	last := e.profile.LastStreakDate

	switch {
	case last == yesterday || last == "":
		e.profile.Streak++
		e.profile.LastStreakDate = today
	case last != today:
		e.profile.Streak = 1
		e.profile.LastStreakDate = today
	}
}

func (e *Engine) completedOnLocked(date string) bool {
	for _, t := range e.tasks {
		if t.ScheduledOn(date) && t.IsCompleted() {
			return true
		}
	}
	return false
}

func roundHours(h float64) float64 {
	return math.Round(h*100) / 100
}
