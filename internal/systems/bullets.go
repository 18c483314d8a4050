package systems

import (
	"time"

	"github.com/sirupsen/logrus"

	"haste/internal/domain"
	"haste/pkg/logger"
)

// UpdateBullets продвигает живые пули. Возвращает суммарный урон игроку за тик.
//
// Невидимая пуля (до VisibleAt) пропускается. По истечении кулдауна пуля при активном
// наведении перенацеливается на игрока, теряет один прыжок жизни и делает шаг.
// Пуля исчезает при нулевой жизни, на выходе за карту, на стене и при попадании в игрока.
func UpdateBullets(s *State, now time.Duration) int {
	total := 0
	player := s.Player.Pos

	s.Bullets.Each(func(b *domain.Bullet) {
		if now < b.VisibleAt {
			return
		}
		if b.Pos == player {
			total += hitPlayer(s, b)
			return
		}
		if now-b.LastMove < s.Balance.BulletStep(b.Speed) {
			return
		}
		b.LastMove = now

		if b.Homing && now < b.HomingUntil {
			if d := b.Pos.DirectionTo(player); !d.IsZero() {
				b.Dir = d
			}
		}

		b.Lifetime--
		if b.Lifetime <= 0 {
			s.Bullets.Kill(b.Handle)
			return
		}

		next := b.Pos.Step(b.Dir)
		if s.Grid.IsWall(next) {
			s.Bullets.Kill(b.Handle)
			return
		}
		b.Pos = next
		if b.Pos == player {
			total += hitPlayer(s, b)
		}
	})
	return total
}

func hitPlayer(s *State, b *domain.Bullet) int {
	s.Player.TakeDamage(b.Damage)
	s.Bullets.Kill(b.Handle)

	logger.Log.WithFields(logrus.Fields{
		"component": "combat_system",
		"bullet":    b.Handle.String(),
		"damage":    b.Damage,
		"player_hp": s.Player.HP,
	}).Debug("Bullet hit player.")
	return b.Damage
}
