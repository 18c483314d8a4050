package dungeon

import (
	"math/rand"

	"haste/internal/domain"
)

// Константы генерации
const (
	RoomsPerLevel = 6
	MinRoomW      = 4
	MaxRoomW      = 10
	MinRoomH      = 3
	MaxRoomH      = 6
)

// Generate создает процедурный уровень: комнаты, цепочка коридоров, игрок в центре первой комнаты.
// Связность всех комнат не гарантируется, изолированные карманы возможны.
func Generate(level int, rng *rand.Rand) (*domain.Grid, domain.Position) {
	return NewLevel(level, rng).WithRooms(RoomsPerLevel).Build()
}

// Unreachable считает пустые клетки, недостижимые от старта по ортогоналям
func Unreachable(g *domain.Grid, start domain.Position) []domain.Position {
	seen := make([]bool, g.Rows*g.Cols)
	queue := []domain.Position{start}
	seen[start.Row*g.Cols+start.Col] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range domain.Orthogonal {
			n := cur.Step(d)
			if !g.InBounds(n) || g.IsWall(n) || seen[n.Row*g.Cols+n.Col] {
				continue
			}
			seen[n.Row*g.Cols+n.Col] = true
			queue = append(queue, n)
		}
	}

	var out []domain.Position
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			p := domain.Position{Row: r, Col: c}
			if !g.IsWall(p) && !seen[r*g.Cols+c] {
				out = append(out, p)
			}
		}
	}
	return out
}
