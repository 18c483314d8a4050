package dungeon

import (
	"math/rand"

	"haste/internal/domain"
)

// EnemyTemplate определяет шаблон для создания врага
type EnemyTemplate struct {
	Name   string
	Tier   domain.Tier
	Shapes []string // варианты ряда глифов, выбирается один
	HP     domain.Range
	Dmg    domain.Range
	Speed  domain.Range
}

// Roll бросает характеристики врага из шаблона. Обычные враги и элита
// усиливаются с уровнем: +2 HP за каждый уровень после первого, +1 урона за каждые два.
func (t EnemyTemplate) Roll(level int, rng *rand.Rand) domain.Enemy {
	shape := t.Shapes[0]
	if len(t.Shapes) > 1 {
		shape = t.Shapes[rng.Intn(len(t.Shapes))]
	}

	hp := t.HP.Roll(rng)
	dmg := t.Dmg.Roll(rng)
	speed := t.Speed.Roll(rng)
	if t.Tier != domain.TierBoss && level > 1 {
		hp += 2 * (level - 1)
		dmg += (level - 1) / 2
	}

	return domain.Enemy{
		Tier:  t.Tier,
		Shape: shape,
		Width: len(shape),
		HP:    hp,
		MaxHP: hp,
		Dmg:   dmg,
		Speed: speed,
		Phase: 1,
	}
}

// --- ВРАГИ ---

var Grunt = EnemyTemplate{
	Name:   "Grunt",
	Tier:   domain.TierNormal,
	Shapes: []string{"m", "z", "k", "y"},
	HP:     domain.Range{Min: 8, Max: 15},
	Dmg:    domain.Range{Min: 2, Max: 3},
	Speed:  domain.Range{Min: 2, Max: 4},
}

// Elite - двухклеточный враг
var Elite = EnemyTemplate{
	Name:   "Elite",
	Tier:   domain.TierElite,
	Shapes: []string{"EE"},
	HP:     domain.Range{Min: 20, Max: 34},
	Dmg:    domain.Range{Min: 5, Max: 7},
	Speed:  domain.Range{Min: 3, Max: 4},
}

// BossTemplate собирает шаблон босса из настроек баланса
func BossTemplate(hp, dmg, speed int) EnemyTemplate {
	return EnemyTemplate{
		Name:   "Nemesis",
		Tier:   domain.TierBoss,
		Shapes: []string{"N"},
		HP:     domain.Range{Min: hp, Max: hp},
		Dmg:    domain.Range{Min: dmg, Max: dmg},
		Speed:  domain.Range{Min: speed, Max: speed},
	}
}

// TemplateFor возвращает шаблон тира (босс собирается отдельно)
func TemplateFor(tier domain.Tier) EnemyTemplate {
	if tier == domain.TierElite {
		return Elite
	}
	return Grunt
}
