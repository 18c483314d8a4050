package systems

import (
	"haste/internal/domain"
)

// MovementResult - результат шага игрока
type MovementResult struct {
	NewPos    domain.Position
	HasMoved  bool
	BlockedBy *domain.Enemy // Если врезались во врага
	IsWall    bool          // Если врезались в стену или край карты
}

// MovePlayer поворачивает игрока и делает шаг, если клетка пуста.
// Направление взгляда обновляется даже при неудачном шаге.
func MovePlayer(s *State, dir domain.Direction) MovementResult {
	p := s.Player
	p.Facing = dir
	target := p.Pos.Step(dir)
	res := MovementResult{NewPos: p.Pos}

	// 1. Проверка стен и границ
	if s.Grid.IsWall(target) {
		res.IsWall = true
		return res
	}

	// 2. Проверка врагов
	if e, ok := s.EnemyAt(target); ok {
		res.BlockedBy = e
		return res
	}

	if !s.Grid.MovePlayer(p.Pos, target) {
		return res
	}
	p.Pos = target
	res.NewPos = target
	res.HasMoved = true
	return res
}
