package systems

import (
	"math/rand"
	"testing"

	"haste/internal/domain"
)

func TestFindNextStep(t *testing.T) {
	tests := []struct {
		name   string
		rows   []string
		enemy  domain.Position
		width  int
		want   domain.Position
		wantOK bool
	}{
		{
			name: "straight corridor",
			rows: []string{
				"########",
				"#     P#",
				"########",
			},
			enemy:  domain.Position{Row: 1, Col: 1},
			width:  1,
			want:   domain.Position{Row: 1, Col: 2},
			wantOK: true,
		},
		{
			name: "detour around wall",
			rows: []string{
				"#######",
				"#  #  #",
				"#  # P#",
				"#     #",
				"#######",
			},
			enemy:  domain.Position{Row: 1, Col: 1},
			width:  1,
			want:   domain.Position{Row: 2, Col: 1},
			wantOK: true,
		},
		{
			name: "already adjacent",
			rows: []string{
				"#####",
				"#  P#",
				"#####",
			},
			enemy:  domain.Position{Row: 1, Col: 2},
			width:  1,
			wantOK: false,
		},
		{
			name: "walled off",
			rows: []string{
				"#######",
				"#  #  #",
				"#  # P#",
				"#######",
			},
			enemy:  domain.Position{Row: 1, Col: 1},
			width:  1,
			wantOK: false,
		},
		{
			name: "wide enemy needs room for the whole run",
			rows: []string{
				"#########",
				"#      P#",
				"#########",
			},
			enemy:  domain.Position{Row: 1, Col: 1},
			width:  2,
			want:   domain.Position{Row: 1, Col: 2},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState(t, tt.rows)
			e := addEnemy(t, s, domain.Enemy{HP: 5, Width: tt.width, Pos: tt.enemy})

			got, ok := FindNextStep(s.Grid, e, s.Player.Pos, domain.DetectionRange)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v (step %v)", ok, tt.wantOK, got)
			}
			if ok && got != tt.want {
				t.Errorf("step = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindNextStep_TooFar(t *testing.T) {
	s := newTestState(t, openRows(5, 20, domain.Position{Row: 2, Col: 15}))
	e := addEnemy(t, s, domain.Enemy{HP: 5, Pos: domain.Position{Row: 2, Col: 2}})

	if _, ok := FindNextStep(s.Grid, e, s.Player.Pos, domain.DetectionRange); ok {
		t.Error("search must refuse beyond detection range")
	}
	// Элита видит вдвое дальше
	if _, ok := FindNextStep(s.Grid, e, s.Player.Pos, 2*domain.DetectionRange); !ok {
		t.Error("doubled range must find a path")
	}
}

func TestFindNextStep_ThroughOtherEnemy(t *testing.T) {
	// Другой враг перегородил коридор: путь все равно считается
	s := newTestState(t, []string{
		"########",
		"#     P#",
		"########",
	})
	e := addEnemy(t, s, domain.Enemy{HP: 5, Pos: domain.Position{Row: 1, Col: 1}})
	addEnemy(t, s, domain.Enemy{HP: 5, Pos: domain.Position{Row: 1, Col: 2}})

	step, ok := FindNextStep(s.Grid, e, s.Player.Pos, domain.DetectionRange)
	if !ok || step != (domain.Position{Row: 1, Col: 2}) {
		t.Errorf("step = %v,%v; want path through the crowded cell", step, ok)
	}
}

func TestFindNextStep_BossNeverPathfinds(t *testing.T) {
	s := newTestState(t, openRows(5, 10, domain.Position{Row: 2, Col: 6}))
	boss := addEnemy(t, s, domain.Enemy{HP: 50, Tier: domain.TierBoss, Pos: domain.Position{Row: 2, Col: 2}})
	if _, ok := FindNextStep(s.Grid, boss, s.Player.Pos, domain.DetectionRange); ok {
		t.Error("boss must not use BFS")
	}
}

// На открытой карте шаг всегда приближает к ближайшей клетке рядом с игроком и не бывает стеной
func TestFindNextStep_OpenGridProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		player := domain.Position{Row: 1 + rng.Intn(10), Col: 1 + rng.Intn(10)}
		s := newTestState(t, openRows(12, 12, player))

		start := domain.Position{Row: 1 + rng.Intn(10), Col: 1 + rng.Intn(10)}
		if start.Manhattan(player) <= 1 || start.Manhattan(player) > domain.DetectionRange {
			continue
		}
		e := addEnemy(t, s, domain.Enemy{HP: 5, Pos: start})

		step, ok := FindNextStep(s.Grid, e, player, domain.DetectionRange)
		if !ok {
			t.Fatalf("no path from %v to %v on open grid", start, player)
		}
		if s.Grid.IsWall(step) {
			t.Fatalf("step %v is a wall", step)
		}
		if goalDistance(s.Grid, step, player) != goalDistance(s.Grid, start, player)-1 {
			t.Fatalf("step %v from %v does not approach %v", step, start, player)
		}
	}
}

func goalDistance(g *domain.Grid, from, player domain.Position) int {
	best := -1
	for _, d := range domain.Orthogonal {
		goal := player.Step(d)
		if g.IsWall(goal) {
			continue
		}
		if dist := from.Manhattan(goal); best < 0 || dist < best {
			best = dist
		}
	}
	return best
}
