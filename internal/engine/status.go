package engine

import (
	"github.com/cristiano-superacao/superacao/internal/domain"
)

// RefreshStatuses recomputes derived status for today's tasks against the
// current wall clock. Pending tasks past their end time decay to overdue; an
// in-progress task past its end time is credited through the completion path
// instead. The asymmetry is deliberate: a started-but-unfinished task earns
// its points, a never-started one is penalized.
func (e *Engine) RefreshStatuses() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock()
	today := domain.DateOf(now)
	nowMinutes := now.Hour()*60 + now.Minute()

	changed := false
	for i := range e.tasks {
		task := &e.tasks[i]
		if !task.ScheduledOn(today) {
			continue
		}

		switch task.Status {
		case domain.StatusPending:
			if nowMinutes > task.EndTime.Minutes() {
				task.Status = domain.StatusOverdue
				changed = true
			}
		case domain.StatusInProgress:
			if nowMinutes > task.EndTime.Minutes() {
				if err := e.completeLocked(task.ID); err != nil {
					return err
				}
				changed = true
			}
		}
	}

	if changed {
		if err := e.persistTasksLocked(); err != nil {
			return err
		}
		e.onChange()
	}
	return nil
}
