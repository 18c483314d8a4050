package systems

import (
	"time"

	"github.com/sirupsen/logrus"

	"haste/internal/domain"
	"haste/pkg/logger"
)

// DamageResult - итог применения урона к клетке
type DamageResult struct {
	Hit    bool
	Target *domain.Enemy
	Killed bool
	XP     int
}

// AttackResult - итог атаки игрока
type AttackResult struct {
	Cells  int // сколько клеток пролетел снаряд
	Damage int
	DamageResult
}

// CalcDamage: база = 3 + основная характеристика / 4, умноженная на множитель класса.
// Для заклинателя основная характеристика INT, для остальных STR.
func CalcDamage(p *domain.Player) int {
	stat := p.Stats.STR
	if p.Class.PrimaryStat() == domain.StatINT {
		stat = p.Stats.INT
	}
	base := 3 + stat/4
	return int(float64(base) * p.Mods.DmgMult)
}

// PlayerAttack выпускает луч по направлению взгляда игрока. Луч останавливается на стене
// или на враге, который пережил попадание, поэтому урон получает не больше одного врага.
func PlayerAttack(s *State, now time.Duration) AttackResult {
	p := s.Player
	dmg := CalcDamage(p)
	res := AttackResult{Damage: dmg}
	kind := p.Class.Projectile()

	cur := p.Pos
	for step := 1; step <= s.Balance.RayLength; step++ {
		cur = cur.Step(p.Facing)
		if s.Grid.IsWall(cur) {
			break
		}
		res.Cells++

		hit := ApplyDamage(s, cur, dmg)
		if hit.Hit {
			res.DamageResult = hit
			if !hit.Killed {
				// Враг выжил: клетка остается за ним, луч гаснет
				break
			}
		}
		s.Trail = append(s.Trail, TrailMark{
			Pos:   cur,
			Kind:  kind,
			Dir:   p.Facing,
			From:  now + time.Duration(step-1)*s.Balance.TrailStep,
			Until: now + time.Duration(step)*s.Balance.TrailStep,
		})
		if hit.Hit {
			break
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "combat_system",
		"class":     p.Class.String(),
		"damage":    dmg,
		"cells":     res.Cells,
		"hit":       res.Hit,
		"killed":    res.Killed,
	}).Debug("Player attack resolved.")

	return res
}

// ApplyDamage наносит урон врагу в клетке (любой сегмент ряда многоклеточного врага).
// При смерти враг снимается с карты и игрок получает опыт из диапазона тира, ровно один раз.
// Урон по пустой клетке или мертвому врагу ничего не делает.
func ApplyDamage(s *State, at domain.Position, amount int) DamageResult {
	e, ok := s.EnemyAt(at)
	if !ok {
		return DamageResult{}
	}

	hpBefore := e.HP
	e.HP -= amount
	res := DamageResult{Hit: true, Target: e}

	combatLogger := logger.Log.WithFields(logrus.Fields{
		"component": "combat_system",
		"enemy":     e.Handle.String(),
		"tier":      e.Tier.String(),
		"damage":    amount,
		"hp_before": hpBefore,
		"hp_after":  e.HP,
	})

	if e.HP > 0 {
		// Перерисовываем ряд: содержимое то же, ячейки обновлены
		s.Grid.PlaceEnemy(e)
		combatLogger.Debug("Enemy damaged.")
		return res
	}

	s.Grid.RemoveEnemy(e)
	s.Enemies.Kill(e.Handle)
	res.Killed = true
	res.XP = s.Balance.XPRange(e.Tier).Roll(s.Rng)
	s.Player.GainXP(res.XP)

	combatLogger.WithFields(logrus.Fields{
		"xp":       res.XP,
		"total_xp": s.Player.TotalXP,
	}).Info("Enemy killed.")
	return res
}
