package systems

import (
	"time"

	"github.com/sirupsen/logrus"

	"haste/internal/domain"
	"haste/pkg/logger"
)

// ContactMultiplier - урон касания в единицах базового урона врага
const ContactMultiplier = 2

// EnemyTryAttack ведет цикл ближнего боя врага, стоящего вплотную к игроку.
// Первый тик касания только замах. Удар наносится, когда с начала отсчета прошло не меньше
// hit-delay, после чего отсчет начинается заново. Потеря касания сбрасывает цикл.
// Визуальное состояние живет по своему таймеру. Возвращает нанесенный урон.
func EnemyTryAttack(s *State, e *domain.Enemy, now time.Duration) int {
	if !e.Alive || e.IsBoss() {
		return 0
	}

	if e.ExpireVisual(now) {
		s.Grid.PlaceEnemy(e)
	}

	if !e.Pos.IsAdjacent(s.Player.Pos) {
		e.BreakContact()
		return 0
	}

	if e.Contact == domain.ContactNone {
		e.Contact = domain.ContactAwaitingFirstHit
		e.ContactSince = now
		e.SetVisual(domain.VisualWindup, now+s.Balance.HitDelay)
		return 0
	}

	if now-e.ContactSince < s.Balance.HitDelay {
		return 0
	}

	dmg := e.Dmg * ContactMultiplier
	s.Player.TakeDamage(dmg)
	e.Contact = domain.ContactInCycle
	e.ContactSince = now
	e.SetVisual(domain.VisualFlash, now+s.Balance.AttackFlash)

	logger.Log.WithFields(logrus.Fields{
		"component": "ai_system",
		"enemy":     e.Handle.String(),
		"damage":    dmg,
		"player_hp": s.Player.HP,
	}).Debug("Enemy hit player.")
	return dmg
}
