package systems

import (
	"math/rand"
	"time"

	"haste/internal/domain"
)

// State - все изменяемое состояние одного забега. Системы получают его явно,
// глобальных переменных нет. Сбрасывается на каждом уровне.
type State struct {
	Grid    *domain.Grid
	Enemies *domain.EnemyRegistry
	Bullets *domain.BulletPool
	Player  *domain.Player
	Trail   []TrailMark
	// Точки телепорта босса для текущей карты (пусто на процедурных уровнях)
	Teleports []domain.Position

	Rng     *rand.Rand
	Balance *Balance
}

// TrailMark - след атаки игрока на одной клетке. Рисуется поверх сетки в окне [From, Until).
type TrailMark struct {
	Pos   domain.Position
	Kind  domain.ProjectileKind
	Dir   domain.Direction
	From  time.Duration
	Until time.Duration
}

// NewState создает состояние с реестрами заданной емкости
func NewState(player *domain.Player, balance *Balance, rng *rand.Rand) *State {
	return &State{
		Enemies: domain.NewEnemyRegistry(balance.MaxEnemies),
		Bullets: domain.NewBulletPool(balance.Bullet.PoolSize),
		Player:  player,
		Rng:     rng,
		Balance: balance,
	}
}

// Reset готовит состояние к новому уровню: все слоты мертвы, пул пуль пуст, след стерт
func (s *State) Reset(grid *domain.Grid, playerPos domain.Position) {
	s.Grid = grid
	s.Enemies.Reset()
	s.Bullets.Reset()
	s.Trail = s.Trail[:0]
	s.Teleports = nil
	s.Player.Pos = playerPos
}

// Boss возвращает живого босса, если он есть
func (s *State) Boss() (*domain.Enemy, bool) {
	var boss *domain.Enemy
	s.Enemies.Each(func(e *domain.Enemy) {
		if boss == nil && e.IsBoss() {
			boss = e
		}
	})
	return boss, boss != nil
}

// EnemyAt возвращает живого врага, занимающего клетку (любой сегмент ряда)
func (s *State) EnemyAt(p domain.Position) (*domain.Enemy, bool) {
	tile := s.Grid.At(p)
	if tile.Kind != domain.TileEnemy {
		return nil, false
	}
	return s.Enemies.Get(tile.Enemy)
}

// PruneTrail удаляет отыгравшие метки следа
func (s *State) PruneTrail(now time.Duration) {
	kept := s.Trail[:0]
	for _, m := range s.Trail {
		if now < m.Until {
			kept = append(kept, m)
		}
	}
	s.Trail = kept
}

// canOccupy - ряд ширины врага в границах и пуст, собственные клетки врага считаются свободными
func canOccupy(g *domain.Grid, e *domain.Enemy, to domain.Position) bool {
	if to.Row < 0 || to.Row >= g.Rows || to.Col < 0 || to.Col+e.Width-1 >= g.Cols {
		return false
	}
	for i := 0; i < e.Width; i++ {
		t := g.At(domain.Position{Row: to.Row, Col: to.Col + i})
		switch {
		case t.Kind == domain.TileEmpty:
		case t.Kind == domain.TileEnemy && t.Enemy == e.Handle:
		default:
			return false
		}
	}
	return true
}
