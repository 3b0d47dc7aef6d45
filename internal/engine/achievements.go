package engine

import (
	"github.com/cristiano-superacao/superacao/internal/domain"
)

// Achievement badge identifiers.
const (
	AchievementFirstTask  = "first_task"
	AchievementWeekStreak = "week_streak"
	AchievementTenTasks   = "ten_tasks"
)

// achievementsFor returns the badges whose thresholds the profile crosses at
// this exact moment. The checker runs after every completion; rules fire on
// equality so each can only match once per counter value.
func achievementsFor(p domain.Profile) []domain.Achievement {
	var earned []domain.Achievement

	if p.CompletedTasks == 1 {
		earned = append(earned, domain.Achievement{
			ID:          AchievementFirstTask,
			Title:       "Primeira Conquista",
			Description: "Concluiu sua primeira tarefa!",
			Icon:        "fas fa-trophy",
			Points:      50,
		})
	}

	if p.Streak == 7 {
		earned = append(earned, domain.Achievement{
			ID:          AchievementWeekStreak,
			Title:       "Semana Consistente",
			Description: "7 dias em sequência!",
			Icon:        "fas fa-fire",
			Points:      100,
		})
	}

	if p.CompletedTasks == 10 {
		earned = append(earned, domain.Achievement{
			ID:          AchievementTenTasks,
			Title:       "Batedor de Metas",
			Description: "10 tarefas concluídas!",
			Icon:        "fas fa-target",
			Points:      75,
		})
	}

	return earned
}

// checkAchievementsLocked unlocks any newly earned badges, credits their
// bonus points, and returns the new badges. Badges already on the profile
// are skipped, so re-running against the same state is a no-op.
func (e *Engine) checkAchievementsLocked() []domain.Achievement {
	var unlocked []domain.Achievement
	for _, a := range achievementsFor(e.profile) {
		if e.profile.HasAchievement(a.ID) {
			continue
		}
		e.profile.Achievements = append(e.profile.Achievements, a)
		e.profile.Points += a.Points
		unlocked = append(unlocked, a)
	}
	return unlocked
}
