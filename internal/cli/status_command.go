package cli

import (
	"fmt"

	"github.com/cristiano-superacao/superacao/internal/domain"
	"github.com/cristiano-superacao/superacao/internal/ranking"
)

// StatusCommand handles the status command
type StatusCommand struct {
	app      *App
	insights bool
}

// NewStatusCommand creates a new status command handler
func NewStatusCommand(app *App, insights bool) *StatusCommand {
	return &StatusCommand{app: app, insights: insights}
}

// Execute runs the status command
func (c *StatusCommand) Execute() error {
	profile := c.app.engine.Profile()

	fmt.Fprintf(c.app.out, "%s %s\n", ranking.BadgeFor(profile.Points), profile.Name)
	fmt.Fprintf(c.app.out, "Level:     %s\n", profile.Level)
	fmt.Fprintf(c.app.out, "Points:    %s\n", ranking.FormatPoints(profile.Points))
	fmt.Fprintf(c.app.out, "Streak:    %d days\n", profile.Streak)
	fmt.Fprintf(c.app.out, "Completed: %d tasks (%.1fh)\n", profile.CompletedTasks, profile.TotalHours)

	if len(profile.Achievements) > 0 {
		fmt.Fprintln(c.app.out, "\nAchievements:")
		for _, a := range profile.Achievements {
			fmt.Fprintf(c.app.out, "  %s %s — %s\n", a.Icon, a.Title, a.Description)
		}
	}

	pending := 0
	for _, t := range c.app.engine.Tasks() {
		if t.Status != domain.StatusCompleted {
			pending++
		}
	}
	fmt.Fprintf(c.app.out, "\nPending tasks: %d\n", pending)

	if c.insights {
		c.printInsights(profile)
	}
	return nil
}

func (c *StatusCommand) printInsights(profile domain.Profile) {
	insights := c.app.coach.BuildInsights(profile, c.app.engine.Tasks())

	fmt.Fprintln(c.app.out, "\nInsights:")
	fmt.Fprintf(c.app.out, "  Consistency: %s\n", insights.Consistency)
	fmt.Fprintf(c.app.out, "  Best time:   %s\n", insights.BestTime)
	fmt.Fprintf(c.app.out, "  This week:   %s\n", insights.WeeklyProgress)
	fmt.Fprintf(c.app.out, "  Next goal:   %s\n", insights.NextGoal)

	for _, r := range insights.Recommendations {
		fmt.Fprintf(c.app.out, "  %s: %s\n", r.Title, r.Message)
	}
}
