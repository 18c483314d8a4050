package systems

import (
	"math/rand"
	"testing"
	"time"

	"haste/internal/domain"
)

// Враг на дистанции 3 со скоростью 2 делает ровно один шаг каждые 1.5s/2
func TestUpdateEnemyAI_Cadence(t *testing.T) {
	s := newTestState(t, []string{
		"#########",
		"#  P    #",
		"#########",
	})
	e := addEnemy(t, s, domain.Enemy{HP: 10, Speed: 2, Pos: domain.Position{Row: 1, Col: 6}})
	delay := 750 * time.Millisecond

	var moves []time.Duration
	for now := time.Duration(0); now <= 2*time.Second; now += 50 * time.Millisecond {
		before := e.Pos
		if UpdateEnemyAI(s, e, now) {
			moves = append(moves, now)
			if e.Pos.Manhattan(s.Player.Pos) != before.Manhattan(s.Player.Pos)-1 {
				t.Fatalf("move at %v did not approach the player: %v -> %v", now, before, e.Pos)
			}
		}
		if s.Grid.IsWall(e.Pos) {
			t.Fatalf("enemy stepped into a wall at %v", e.Pos)
		}
	}

	want := []time.Duration{delay, 2 * delay}
	if len(moves) != len(want) {
		t.Fatalf("moves at %v, want %v", moves, want)
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Errorf("move %d at %v, want %v", i, moves[i], want[i])
		}
	}
	if e.Pos.Manhattan(s.Player.Pos) != 1 {
		t.Errorf("enemy should end adjacent, at %v", e.Pos)
	}
}

func TestUpdateEnemyAI_IdleOutOfRange(t *testing.T) {
	s := newTestState(t, openRows(5, 25, domain.Position{Row: 2, Col: 1}))
	e := addEnemy(t, s, domain.Enemy{HP: 10, Speed: 3, Pos: domain.Position{Row: 2, Col: 20}})

	if UpdateEnemyAI(s, e, time.Second) {
		t.Error("enemy out of range must idle")
	}
	if e.Aggro {
		t.Error("aggro must stay unset")
	}
	if e.LastMove != time.Second {
		t.Error("idle tick still consumes the cooldown")
	}
}

func TestUpdateEnemyAI_AggroIsSticky(t *testing.T) {
	s := newTestState(t, openRows(5, 30, domain.Position{Row: 2, Col: 10}))
	e := addEnemy(t, s, domain.Enemy{HP: 10, Speed: 1, Pos: domain.Position{Row: 2, Col: 15}})

	UpdateEnemyAI(s, e, 2*time.Second)
	if !e.Aggro {
		t.Fatal("enemy in range must aggro")
	}

	// Игрок убегает далеко, враг продолжает погоню жадным шагом
	movePlayer(t, s, domain.Position{Row: 2, Col: 27})
	before := e.Pos
	if !UpdateEnemyAI(s, e, 4*time.Second) {
		t.Fatal("aggro enemy must keep chasing")
	}
	if e.Pos.Col != before.Col+1 {
		t.Errorf("enemy moved to %v, want one step right of %v", e.Pos, before)
	}
}

func TestUpdateEnemyAI_HoldsWhenAdjacent(t *testing.T) {
	s := newTestState(t, []string{"######", "# P  #", "######"})
	e := addEnemy(t, s, domain.Enemy{HP: 10, Speed: 5, Pos: domain.Position{Row: 1, Col: 3}})

	if UpdateEnemyAI(s, e, time.Second) {
		t.Error("adjacent enemy must hold position")
	}
	if e.Pos != (domain.Position{Row: 1, Col: 3}) {
		t.Errorf("enemy moved to %v", e.Pos)
	}
}

func TestUpdateEnemyAI_NeverStepsOnOccupied(t *testing.T) {
	s := newTestState(t, []string{
		"#######",
		"#P    #",
		"#######",
	})
	blocker := addEnemy(t, s, domain.Enemy{HP: 10, Speed: 1, Pos: domain.Position{Row: 1, Col: 3}})
	e := addEnemy(t, s, domain.Enemy{HP: 10, Speed: 1, Pos: domain.Position{Row: 1, Col: 4}})

	if UpdateEnemyAI(s, e, 2*time.Second) {
		t.Error("corridor is blocked by another enemy")
	}
	if e.Pos.Col != 4 || blocker.Pos.Col != 3 {
		t.Errorf("positions changed: %v %v", e.Pos, blocker.Pos)
	}
}

func TestGreedyStep(t *testing.T) {
	s := newTestState(t, openRows(7, 9, domain.Position{Row: 4, Col: 5}))
	e := addEnemy(t, s, domain.Enemy{HP: 10, Pos: domain.Position{Row: 1, Col: 2}})

	// Оба кандидата одинаково хороши: вертикаль первой
	to, ok := greedyStep(s.Grid, e, s.Player.Pos)
	if !ok || to != (domain.Position{Row: 2, Col: 2}) {
		t.Errorf("greedy step = %v,%v; want vertical", to, ok)
	}

	// Вертикаль занята: берем горизонталь
	addEnemy(t, s, domain.Enemy{HP: 10, Pos: domain.Position{Row: 2, Col: 2}})
	to, ok = greedyStep(s.Grid, e, s.Player.Pos)
	if !ok || to != (domain.Position{Row: 1, Col: 3}) {
		t.Errorf("greedy step = %v,%v; want horizontal", to, ok)
	}
}

func TestUpdateEnemyAI_EliteStaysOnFloor(t *testing.T) {
	s := newTestState(t, openRows(8, 16, domain.Position{Row: 6, Col: 2}))
	s.Rng = rand.New(rand.NewSource(99))
	e := addEnemy(t, s, domain.Enemy{Tier: domain.TierElite, Shape: "EE", HP: 30, Speed: 4, Pos: domain.Position{Row: 1, Col: 12}})

	for now := time.Duration(0); now < 20*time.Second; now += 100 * time.Millisecond {
		UpdateEnemyAI(s, e, now)
		for i := 0; i < e.Width; i++ {
			tile := s.Grid.At(domain.Position{Row: e.Pos.Row, Col: e.Pos.Col + i})
			if tile.Kind != domain.TileEnemy || tile.Enemy != e.Handle {
				t.Fatalf("elite run broken at %v: %+v", e.Pos, tile)
			}
		}
	}
	if e.Pos.Manhattan(s.Player.Pos) > 2 {
		t.Errorf("elite should reach the player, stuck at %v", e.Pos)
	}
}
