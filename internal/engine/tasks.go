package engine

import (
	"fmt"

	"github.com/cristiano-superacao/superacao/internal/domain"
	"github.com/cristiano-superacao/superacao/internal/errors"
)

// AddTask validates the input, computes the frozen point value, and appends
// a new pending task.
func (e *Engine) AddTask(input domain.TaskInput) (domain.Task, error) {
	if err := e.validator.ValidateTaskInput(input); err != nil {
		return domain.Task{}, errors.NewValidationError("invalid task", err)
	}

	title, err := e.validator.GetValidTitle(input.Title)
	if err != nil {
		return domain.Task{}, errors.NewValidationError("invalid task", err)
	}

	start, _ := domain.ParseClockTime(input.StartTime)
	end, _ := domain.ParseClockTime(input.EndTime)
	category := domain.ParseCategory(input.Category)

	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock()
	date := input.Date
	if date == "" {
		date = domain.DateOf(now)
	}

	task := domain.Task{
		ID:          e.newID(),
		Title:       title,
		Description: input.Description,
		Category:    category,
		StartTime:   start,
		EndTime:     end,
		Date:        date,
		Status:      domain.StatusPending,
		Points:      CalculatePoints(category, start.DurationUntil(end)),
		CreatedAt:   now,
	}

	e.tasks = append(e.tasks, task)
	if err := e.persistTasksLocked(); err != nil {
		return task, err
	}
	e.onChange()
	e.onMessage(fmt.Sprintf("Tarefa %q criada com sucesso!", task.Title))
	return task, nil
}

// UpdateTask merges the patch into an existing task.
func (e *Engine) UpdateTask(id string, patch domain.TaskPatch) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	i, ok := e.findTaskLocked(id)
	if !ok {
		return errors.NewNotFoundError("task", id)
	}

	task := &e.tasks[i]
	if patch.Title != nil {
		title, err := e.validator.GetValidTitle(*patch.Title)
		if err != nil {
			return errors.NewValidationError("invalid task", err)
		}
		task.Title = title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Category != nil {
		task.Category = *patch.Category
	}
	if patch.StartTime != nil {
		task.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		task.EndTime = *patch.EndTime
	}
	if !task.StartTime.Before(task.EndTime) {
		return errors.NewValidationError("start time must be before end time", nil)
	}
	if patch.Date != nil {
		if !domain.IsValidDate(*patch.Date) {
			return errors.NewValidationError("invalid date", nil)
		}
		task.Date = *patch.Date
	}
	if patch.Status != nil {
		if !patch.Status.IsValid() {
			return errors.NewValidationError("invalid status", nil)
		}
		task.Status = *patch.Status
	}

	if err := e.persistTasksLocked(); err != nil {
		return err
	}
	e.onChange()
	return nil
}

// RemoveTask deletes a task by ID. Unknown IDs are a no-op failure and the
// stored list is left untouched.
func (e *Engine) RemoveTask(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	i, ok := e.findTaskLocked(id)
	if !ok {
		return errors.NewNotFoundError("task", id)
	}

	title := e.tasks[i].Title
	e.tasks = append(e.tasks[:i], e.tasks[i+1:]...)
	if err := e.persistTasksLocked(); err != nil {
		return err
	}
	e.onChange()
	e.onMessage(fmt.Sprintf("Tarefa %q excluída!", title))
	return nil
}

// StartTask transitions a pending task to in-progress and stamps StartedAt.
func (e *Engine) StartTask(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	i, ok := e.findTaskLocked(id)
	if !ok {
		return errors.NewNotFoundError("task", id)
	}
	if e.tasks[i].Status != domain.StatusPending {
		return errors.NewConflictError("task", fmt.Sprintf("cannot start task in status %s", e.tasks[i].Status))
	}

	now := e.clock()
	e.tasks[i].Status = domain.StatusInProgress
	e.tasks[i].StartedAt = &now

	if err := e.persistTasksLocked(); err != nil {
		return err
	}
	e.onChange()
	e.onMessage(fmt.Sprintf("Tarefa %q iniciada! Foco total!", e.tasks[i].Title))
	return nil
}

// LoadGroupActivities merges teacher-pushed tasks into the session. They are
// flagged so the store never persists them, but they count toward completion
// like any other task.
func (e *Engine) LoadGroupActivities(activities []domain.Task) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, a := range activities {
		if _, exists := e.findTaskLocked(a.ID); exists {
			continue
		}
		a.GroupActivity = true
		if a.Status == "" {
			a.Status = domain.StatusPending
		}
		e.tasks = append(e.tasks, a)
	}
	e.onChange()
}
