// Package progression - прокачка персонажа между уровнями.
package progression

import (
	"github.com/sirupsen/logrus"

	"haste/internal/domain"
	"haste/pkg/logger"
)

// PointCost - сколько неизрасходованного опыта стоит одно очко характеристики
const PointCost = 10

// AutoUpgrader тратит весь доступный опыт: очки по очереди уходят в основную
// характеристику класса и в VGR. Характеристики только растут.
type AutoUpgrader struct {
	// Cost переопределяет PointCost (0 = по умолчанию)
	Cost int

	next int // чья очередь: 0 - основная, 1 - VGR
}

func NewAutoUpgrader() *AutoUpgrader {
	return &AutoUpgrader{Cost: PointCost}
}

// Upgrade реализует engine.Upgrader
func (u *AutoUpgrader) Upgrade(p *domain.Player, clearedLevel int) {
	cost := u.Cost
	if cost <= 0 {
		cost = PointCost
	}

	order := [2]domain.StatKind{p.Class.PrimaryStat(), domain.StatVGR}
	gained := map[string]int{}
	for p.SpendXP(cost) {
		stat := order[u.next]
		p.Stats.Raise(stat, 1)
		gained[stat.String()]++
		u.next = (u.next + 1) % len(order)
	}

	if len(gained) == 0 {
		return
	}
	logger.Log.WithFields(logrus.Fields{
		"component": "progression",
		"level":     clearedLevel,
		"gained":    gained,
		"xp_left":   p.XP,
		"max_hp":    p.MaxHP(),
	}).Info("Stats upgraded.")
}
