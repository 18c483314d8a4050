package systems

import (
	"haste/internal/domain"
)

// FindNextStep ищет кратчайший путь (BFS) от врага до любой клетки, соседней с игроком,
// и возвращает первый шаг. Соседи обходятся в порядке: вверх, вниз, влево, вправо.
//
// Поиск не запускается, если игрок дальше detection. Узлы глубже 2*detection не раскрываются,
// но очередь продолжает обрабатываться. ok=false, если старт уже цель или цель недостижима.
// Босс этим путем не ходит.
func FindNextStep(g *domain.Grid, e *domain.Enemy, player domain.Position, detection int) (domain.Position, bool) {
	if e.IsBoss() {
		return domain.Position{}, false
	}
	start := e.Pos
	if !g.InBounds(start) || start.Manhattan(player) > detection {
		return domain.Position{}, false
	}
	depthCap := 2 * detection

	total := g.Rows * g.Cols
	seen := make([]bool, total)
	parent := make([]int, total)
	depth := make([]int, total)
	queue := make([]int, 0, total)

	idx := func(p domain.Position) int { return p.Row*g.Cols + p.Col }
	pos := func(i int) domain.Position { return domain.Position{Row: i / g.Cols, Col: i % g.Cols} }

	startIdx := idx(start)
	seen[startIdx] = true
	parent[startIdx] = -1
	queue = append(queue, startIdx)

	goal := -1
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		d := depth[cur]
		if d > depthCap {
			continue
		}
		p := pos(cur)
		if p.IsAdjacent(player) {
			goal = cur
			break
		}

		for _, dir := range domain.Orthogonal {
			n := p.Step(dir)
			if !g.InBounds(n) {
				continue
			}
			ni := idx(n)
			if seen[ni] {
				continue
			}
			if n == player {
				// В клетку игрока можно только одноклеточным
				if e.Width == 1 {
					seen[ni] = true
					parent[ni] = cur
					depth[ni] = d + 1
					queue = append(queue, ni)
				}
				continue
			}
			if !g.IsTraversableRun(n.Row, n.Col, e.Width) {
				continue
			}
			seen[ni] = true
			parent[ni] = cur
			depth[ni] = d + 1
			queue = append(queue, ni)
		}
	}

	if goal == -1 || goal == startIdx {
		return domain.Position{}, false
	}

	// Восстанавливаем путь от цели к старту
	cur := goal
	for parent[cur] != startIdx {
		cur = parent[cur]
		if cur == -1 {
			return domain.Position{}, false
		}
	}
	return pos(cur), true
}
