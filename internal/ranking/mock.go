package ranking

import (
	"fmt"
	"math/rand"

	"github.com/cristiano-superacao/superacao/internal/engine"
)

var competitorNames = []string{
	"Ana Silva", "João Santos", "Maria Costa", "Pedro Lima", "Lucas Oliveira",
	"Sofia Rodrigues", "Bruno Almeida", "Carolina Ferreira",
}

var competitorAvatars = []string{
	"👨‍💼", "👩‍💼", "👨‍🎓", "👩‍🎓", "👨‍💻", "👩‍💻", "👨‍🔬", "👩‍🔬", "👨‍🎨", "👩‍🎨", "🧑‍💼", "🧑‍🎓", "🧑‍💻",
}

// Generator produces demo competitors for an empty leaderboard. The RNG is
// injectable so tests get a stable board.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator seeded from rng.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Competitors returns n demo entries with descending point totals. When n
// exceeds the name pool, names are suffixed with a counter.
func (g *Generator) Competitors(n int) []Entry {
	entries := make([]Entry, 0, n)
	for i := 0; i < n; i++ {
		name := competitorNames[i%len(competitorNames)]
		if i >= len(competitorNames) {
			name = fmt.Sprintf("%s %d", name, i/len(competitorNames)+1)
		}

		points := 2500 - i*200 + g.rng.Intn(150)
		if points < 0 {
			points = 0
		}

		entries = append(entries, Entry{
			Name:           name,
			Avatar:         avatarFor(name),
			Points:         points,
			TasksCompleted: g.rng.Intn(40) + 5,
			Streak:         g.rng.Intn(25) + 1,
			Level:          engine.LevelForPoints(points).Name,
		})
	}
	return entries
}

func avatarFor(name string) string {
	return competitorAvatars[len(name)%len(competitorAvatars)]
}
