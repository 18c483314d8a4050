package dungeon

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"haste/internal/domain"
	"haste/pkg/logger"
)

// SpawnRules - ограничения случайной расстановки
type SpawnRules struct {
	Tries       int // попыток найти свободный ряд
	MinDistance int // минимальное манхэттенское расстояние до игрока
}

// DefaultSpawnRules - как в исходной игре: 200 попыток, не ближе 6 клеток к игроку
var DefaultSpawnRules = SpawnRules{Tries: 200, MinDistance: 6}

// SpawnEnemy бросает врага по шаблону и ставит его на случайный свободный ряд.
// Исчерпание попыток или полный реестр не ошибка: враг просто не появляется.
func SpawnEnemy(g *domain.Grid, reg *domain.EnemyRegistry, t EnemyTemplate, level int, player domain.Position, rules SpawnRules, rng *rand.Rand) (*domain.Enemy, bool) {
	e := t.Roll(level, rng)

	pos, ok := findSpawnCell(g, e.Width, player, rules, rng)
	if !ok {
		logger.Log.WithFields(logrus.Fields{
			"component": "dungeon",
			"template":  t.Name,
			"tries":     rules.Tries,
		}).Warn("Spawn placement exhausted, enemy skipped")
		return nil, false
	}
	e.Pos = pos
	return SpawnAt(g, reg, e)
}

// SpawnAt регистрирует готового врага и рисует его на карте.
// Позиция должна быть свободным рядом.
func SpawnAt(g *domain.Grid, reg *domain.EnemyRegistry, e domain.Enemy) (*domain.Enemy, bool) {
	if !g.IsEmptyRun(e.Pos.Row, e.Pos.Col, e.Width) {
		return nil, false
	}
	h, slot, ok := reg.Spawn(e)
	if !ok {
		logger.Log.WithFields(logrus.Fields{
			"component": "dungeon",
			"capacity":  reg.Cap(),
		}).Warn("Enemy registry full, enemy skipped")
		return nil, false
	}
	slot.Handle = h
	g.PlaceEnemy(slot)
	return slot, true
}

func findSpawnCell(g *domain.Grid, width int, player domain.Position, rules SpawnRules, rng *rand.Rand) (domain.Position, bool) {
	if width <= 0 || width >= g.Cols {
		return domain.Position{}, false
	}
	for try := 0; try < rules.Tries; try++ {
		p := domain.Position{Row: rng.Intn(g.Rows), Col: rng.Intn(g.Cols - width)}
		if g.IsEmptyRun(p.Row, p.Col, width) && p.Manhattan(player) >= rules.MinDistance {
			return p, true
		}
	}
	return domain.Position{}, false
}
