package systems

import (
	"testing"

	"haste/internal/domain"
)

func TestMovePlayer(t *testing.T) {
	s := newTestState(t, []string{
		"######",
		"#P   #",
		"######",
	})
	e := addEnemy(t, s, domain.Enemy{HP: 5, Pos: domain.Position{Row: 1, Col: 3}})

	// Test 1: Move into empty space
	res := MovePlayer(s, domain.DirRight)
	if !res.HasMoved {
		t.Fatal("Expected move to succeed")
	}
	if res.NewPos != (domain.Position{Row: 1, Col: 2}) || s.Player.Pos != res.NewPos {
		t.Errorf("Expected pos (1,2), got %v", res.NewPos)
	}

	// Test 2: Move into enemy
	res = MovePlayer(s, domain.DirRight)
	if res.HasMoved {
		t.Error("Expected move to be blocked by enemy")
	}
	if res.BlockedBy != e {
		t.Errorf("Expected BlockedBy to be the enemy, got %v", res.BlockedBy)
	}

	// Test 3: Move into wall still turns the player
	res = MovePlayer(s, domain.DirUp)
	if !res.IsWall || res.HasMoved {
		t.Error("Expected move to be blocked by wall")
	}
	if s.Player.Facing != domain.DirUp {
		t.Errorf("Facing = %v, want up", s.Player.Facing)
	}
	if p, _ := s.Grid.FindPlayer(); p != (domain.Position{Row: 1, Col: 2}) {
		t.Errorf("player glyph at %v", p)
	}
}
