package engine

// Level is a named band of total points.
type Level struct {
	Name  string
	Min   int
	Max   int // -1 means unbounded
	Color string
}

var levels = []Level{
	{Name: "Iniciante", Min: 0, Max: 99, Color: "#9E9E9E"},
	{Name: "Aprendiz", Min: 100, Max: 299, Color: "#4CAF50"},
	{Name: "Dedicado", Min: 300, Max: 599, Color: "#2196F3"},
	{Name: "Focado", Min: 600, Max: 999, Color: "#FF9800"},
	{Name: "Expert", Min: 1000, Max: 1999, Color: "#9C27B0"},
	{Name: "Mestre", Min: 2000, Max: 4999, Color: "#F44336"},
	{Name: "Lenda", Min: 5000, Max: -1, Color: "#FFD700"},
}

// Levels returns the level table in ascending order.
func Levels() []Level {
	out := make([]Level, len(levels))
	copy(out, levels)
	return out
}

// LevelForPoints returns the level band containing the given point total.
func LevelForPoints(points int) Level {
	if points < 0 {
		points = 0
	}
	for _, l := range levels {
		if points >= l.Min && (l.Max < 0 || points <= l.Max) {
			return l
		}
	}
	return levels[0]
}
