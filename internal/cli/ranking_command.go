package cli

import (
	"fmt"
	"math/rand"
	"text/tabwriter"
	"time"

	"github.com/cristiano-superacao/superacao/internal/errors"
	"github.com/cristiano-superacao/superacao/internal/ranking"
	"github.com/cristiano-superacao/superacao/internal/storage"
)

// RankingCommand handles the ranking command
type RankingCommand struct {
	app   *App
	limit int
	rng   *rand.Rand
}

// NewRankingCommand creates a new ranking command handler
func NewRankingCommand(app *App, limit int) *RankingCommand {
	return &RankingCommand{
		app:   app,
		limit: limit,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Execute runs the ranking command
func (c *RankingCommand) Execute() error {
	limit := c.limit
	if limit <= 0 {
		limit = c.app.config.Server.DefaultRankingLimit
	}

	profile := c.app.engine.Profile()
	competitors, err := c.competitors(limit - 1)
	if err != nil {
		return err
	}
	entries, position := ranking.Standings(profile, competitors)

	w := tabwriter.NewWriter(c.app.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "POS\tNAME\tPOINTS\tSTREAK\tLEVEL")
	for _, e := range entries {
		name := e.Name
		if e.IsUser {
			name += " (você)"
		}
		fmt.Fprintf(w, "%d %s\t%s %s\t%s\t%d\t%s\n",
			e.Position, e.Badge, e.Avatar, name, ranking.FormatPoints(e.Points), e.Streak, e.Level)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(c.app.out, "\nYou are #%d of %d\n", position, len(entries))
	return nil
}

// competitors returns the persisted leaderboard field, generating and
// saving it on first use so positions stay stable between runs.
func (c *RankingCommand) competitors(n int) ([]ranking.Entry, error) {
	var cached []ranking.Entry
	if err := c.app.store.Get(storage.KeyRanking, &cached); err != nil {
		if !errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return nil, err
		}
	}
	if len(cached) >= n {
		return cached[:n], nil
	}

	cached = ranking.NewGenerator(c.rng).Competitors(n)
	if err := c.app.store.Set(storage.KeyRanking, cached); err != nil {
		return nil, err
	}
	return cached, nil
}
