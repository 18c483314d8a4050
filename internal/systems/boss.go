package systems

import (
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"haste/internal/domain"
	"haste/pkg/logger"
)

// BurstResult - итог залпа босса
type BurstResult struct {
	Waves    int
	Attempts int // направлений перебрано
	Spawned  int // пуль реально создано
}

// BossResult - что сделал босс за тик
type BossResult struct {
	PhaseChanged bool
	Acted        bool
	Teleported   bool
	To           domain.Position
	Burst        BurstResult
}

// UpdateBoss ведет машину фаз босса: смена фазы, затем (если пришло время) телепорт и залп.
func UpdateBoss(s *State, e *domain.Enemy, now time.Duration) BossResult {
	var res BossResult
	if !e.Alive || !e.IsBoss() {
		return res
	}

	bossLogger := logger.Log.WithFields(logrus.Fields{
		"component": "boss_system",
		"enemy":     e.Handle.String(),
	})

	// Переход во вторую фазу однократный и необратимый
	if e.Phase < 2 && e.HP <= e.MaxHP/2 {
		e.Phase = 2
		e.Speed += s.Balance.Boss.Phase2SpeedBonus
		if next := now + s.Balance.Boss.Phase2FirstDelay; next < e.NextAction {
			e.NextAction = next
		}
		res.PhaseChanged = true
		bossLogger.WithFields(logrus.Fields{
			"hp":    e.HP,
			"speed": e.Speed,
		}).Info("Boss entered phase 2.")
	}

	if now < e.NextAction {
		return res
	}
	res.Acted = true

	if to, ok := pickTeleport(s, e); ok {
		s.Grid.MoveEnemy(e, to)
		res.Teleported = true
		res.To = to
	} else {
		bossLogger.Warn("No teleport cell qualifies, boss stays in place.")
	}

	res.Burst = FireBurst(s, e, s.Balance.Boss.Waves.Roll(s.Rng), now)

	delay := s.Balance.BossActionDelay(e.Speed)
	if v := s.Balance.Boss.Variance; v > 0 {
		delay += time.Duration(s.Rng.Int63n(int64(v)))
	}
	e.NextAction = now + delay

	bossLogger.WithFields(logrus.Fields{
		"phase":   e.Phase,
		"to":      res.To,
		"waves":   res.Burst.Waves,
		"bullets": res.Burst.Spawned,
		"next_in": delay.String(),
	}).Debug("Boss action cycle.")
	return res
}

// pickTeleport выбирает самую дальнюю от игрока подходящую точку из таблицы.
// Если ни одна не подходит, перебирается вся карта.
func pickTeleport(s *State, e *domain.Enemy) (domain.Position, bool) {
	player := s.Player.Pos
	best, bestDist, found := domain.Position{}, -1, false
	consider := func(p domain.Position) {
		if !teleportQualifies(s.Grid, e, p) {
			return
		}
		if d := p.Manhattan(player); d > bestDist {
			best, bestDist, found = p, d, true
		}
	}

	for _, p := range s.Teleports {
		consider(p)
	}
	if found {
		return best, true
	}

	for r := 0; r < s.Grid.Rows; r++ {
		for c := 0; c < s.Grid.Cols; c++ {
			consider(domain.Position{Row: r, Col: c})
		}
	}
	return best, found
}

// teleportQualifies: ряд босса свободен и рядом есть хотя бы одна пустая ортогональная клетка,
// чтобы пулям было где появиться вне глифа босса
func teleportQualifies(g *domain.Grid, e *domain.Enemy, p domain.Position) bool {
	if !canOccupy(g, e, p) {
		return false
	}
	for _, d := range domain.Orthogonal {
		n := p.Step(d)
		if g.IsEmpty(n) && !e.Occupies(n) {
			return true
		}
	}
	return false
}

// FireBurst выпускает waves волн, в каждой Directions пуль по кругу. Направление - округленные
// синус и косинус угла, каждая волна повернута на WaveOffset. Пули появляются по очереди
// с шагом Stagger; направление, упирающееся в стену или край карты, пропускается.
func FireBurst(s *State, e *domain.Enemy, waves int, now time.Duration) BurstResult {
	cfg := s.Balance.Boss
	res := BurstResult{Waves: waves}
	n := cfg.Directions
	if n <= 0 {
		return res
	}

	for w := 0; w < waves; w++ {
		for i := 0; i < n; i++ {
			res.Attempts++
			angle := 2*math.Pi*float64(i)/float64(n) + float64(w)*cfg.WaveOffset
			dir := domain.Direction{
				DR: int(math.Round(math.Sin(angle))),
				DC: int(math.Round(math.Cos(angle))),
			}
			if dir.IsZero() {
				dir = domain.DirRight
			}

			spawn := e.Pos.Step(dir)
			if s.Grid.IsWall(spawn) {
				continue
			}

			visible := now + time.Duration(w*n+i)*cfg.Stagger
			b := domain.Bullet{
				Pos:       spawn,
				Dir:       dir,
				Damage:    e.Dmg,
				Speed:     s.Balance.Bullet.Speed,
				Lifetime:  s.Balance.Bullet.Lifetime,
				Kind:      domain.ProjectileBossBullet,
				VisibleAt: visible,
				LastMove:  visible,
			}
			if e.Phase >= 2 && s.Rng.Float64() < cfg.HomingChance {
				b.Homing = true
				b.HomingUntil = visible + cfg.HomingDuration
			}

			h, slot, ok := s.Bullets.Spawn(b)
			if !ok {
				logger.Log.WithFields(logrus.Fields{
					"component": "boss_system",
					"capacity":  s.Bullets.Cap(),
				}).Warn("Bullet pool full, burst truncated.")
				return res
			}
			slot.Handle = h
			res.Spawned++
		}
	}
	return res
}
