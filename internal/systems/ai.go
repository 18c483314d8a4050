package systems

import (
	"time"

	"github.com/sirupsen/logrus"

	"haste/internal/domain"
	"haste/pkg/logger"
)

// UpdateEnemyAI двигает обычного врага или элиту на один шаг к игроку, если прошел кулдаун.
// Порядок: рядом с игроком стоим; вне радиуса без aggro ждем; элита может дернуться в случайную
// сторону; затем шаг BFS; затем жадный шаг по одной оси. Возвращает true, если враг сдвинулся.
func UpdateEnemyAI(s *State, e *domain.Enemy, now time.Duration) bool {
	if !e.Alive || e.IsBoss() {
		return false
	}
	if !e.IsReady(now, s.Balance.EnemyMoveBase) {
		return false
	}

	player := s.Player.Pos
	dist := e.Pos.Manhattan(player)

	// Уже рядом: атакой занимается отдельная машина состояний
	if dist <= 1 {
		e.LastMove = now
		return false
	}

	rangeLimit := e.DetectionRange(s.Balance.DetectionRange)
	if !e.Aggro && dist > rangeLimit {
		e.LastMove = now
		return false
	}
	if !e.Aggro {
		e.NoticePlayer(dist, rangeLimit)
		logger.Log.WithFields(logrus.Fields{
			"component": "ai_system",
			"enemy":     e.Handle.String(),
			"tier":      e.Tier.String(),
			"distance":  dist,
		}).Debug("Enemy spotted player.")
	}

	// Элита иногда дергается ради разнообразия
	if e.Tier == domain.TierElite && s.Rng.Intn(4) == 0 {
		to := e.Pos.Step(domain.Orthogonal[s.Rng.Intn(4)])
		if canOccupy(s.Grid, e, to) {
			moveEnemy(s, e, to, now)
			return true
		}
	}

	if step, ok := FindNextStep(s.Grid, e, player, rangeLimit); ok && step != e.Pos && canOccupy(s.Grid, e, step) {
		moveEnemy(s, e, step, now)
		return true
	}

	if to, ok := greedyStep(s.Grid, e, player); ok {
		moveEnemy(s, e, to, now)
		return true
	}
	return false
}

// greedyStep оценивает оба кандидата (по вертикали и по горизонтали) и выбирает тот,
// что реально ближе к игроку. Кандидат должен быть свободен и строго уменьшать дистанцию.
// При равенстве побеждает вертикаль.
func greedyStep(g *domain.Grid, e *domain.Enemy, player domain.Position) (domain.Position, bool) {
	d := e.Pos.DirectionTo(player)
	current := e.Pos.Manhattan(player)

	candidates := [2]domain.Position{
		e.Pos.Step(domain.Direction{DR: d.DR}),
		e.Pos.Step(domain.Direction{DC: d.DC}),
	}

	best, bestDist, found := domain.Position{}, current, false
	for _, c := range candidates {
		if c == e.Pos || !canOccupy(g, e, c) {
			continue
		}
		if dist := c.Manhattan(player); dist < bestDist {
			best, bestDist, found = c, dist, true
		}
	}
	return best, found
}

func moveEnemy(s *State, e *domain.Enemy, to domain.Position, now time.Duration) {
	s.Grid.MoveEnemy(e, to)
	e.LastMove = now
}
