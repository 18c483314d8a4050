package dungeon

import (
	"errors"
	"math/rand"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"haste/internal/domain"
	"haste/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestGenerate(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		grid, start := Generate(1, rng)

		// 1. Проверка размеров мира
		if grid.Rows != domain.Rows || grid.Cols != domain.Cols {
			t.Fatalf("seed %d: size %dx%d", seed, grid.Rows, grid.Cols)
		}

		// 2. Игрок ровно один и стоит на старте
		p, err := grid.FindPlayer()
		if err != nil || p != start {
			t.Fatalf("seed %d: player at %v (err %v), start %v", seed, p, err, start)
		}

		// 3. Рамка карты всегда стена
		for c := 0; c < grid.Cols; c++ {
			if !grid.IsWall(domain.Position{Row: 0, Col: c}) || !grid.IsWall(domain.Position{Row: grid.Rows - 1, Col: c}) {
				t.Fatalf("seed %d: border breached at col %d", seed, c)
			}
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, _ := Generate(2, rand.New(rand.NewSource(42)))
	b, _ := Generate(2, rand.New(rand.NewSource(42)))
	for r := 0; r < a.Rows; r++ {
		for c := 0; c < a.Cols; c++ {
			p := domain.Position{Row: r, Col: c}
			if a.At(p) != b.At(p) {
				t.Fatalf("maps differ at %v for the same seed", p)
			}
		}
	}
}

func TestLevelBuilder_ChainCorridors(t *testing.T) {
	// Каждая комната связана с предыдущей, значит все центры достижимы от старта
	rng := rand.New(rand.NewSource(5))
	b := NewLevel(1, rng).WithRooms(RoomsPerLevel)
	grid, start := b.Build()

	unreachable := map[domain.Position]bool{}
	for _, p := range Unreachable(grid, start) {
		unreachable[p] = true
	}
	for i, room := range b.Rooms() {
		if unreachable[room.Center()] {
			t.Errorf("room %d center %v is unreachable", i, room.Center())
		}
	}
}

func TestUnreachable_FindsPocket(t *testing.T) {
	g, _ := domain.ParseGrid([]string{
		"#######",
		"#P # ##",
		"#######",
	})
	pockets := Unreachable(g, domain.Position{Row: 1, Col: 1})
	assert.Equal(t, []domain.Position{{Row: 1, Col: 4}}, pockets)
}

// Тест вспомогательной функции пересечения комнат
func TestRect_Intersects(t *testing.T) {
	r1 := Rect{0, 0, 10, 10}
	r2 := Rect{5, 5, 10, 10} // Пересекается
	r3 := Rect{20, 20, 5, 5} // Не пересекается

	if !r1.Intersects(r2) {
		t.Error("Rects should intersect")
	}

	if r1.Intersects(r3) {
		t.Error("Rects should NOT intersect")
	}
}

func TestBossArena(t *testing.T) {
	grid, start, err := BossArena()
	require.NoError(t, err)
	assert.Equal(t, domain.Position{Row: 17, Col: 10}, start)

	for _, p := range TeleportPoints {
		assert.True(t, grid.IsEmpty(p), "teleport point %v must be floor", p)
	}
	assert.True(t, grid.IsEmpty(BossSpawn))
}

func TestGenerateArena_NoPlayerDefaultsToCenter(t *testing.T) {
	rows := make([]string, domain.Rows)
	for i := range rows {
		rows[i] = strings.Repeat(" ", domain.Cols)
	}
	grid, start, err := GenerateArena(rows)
	require.NoError(t, err)
	assert.Equal(t, domain.Position{Row: domain.Rows / 2, Col: domain.Cols / 2}, start)
	assert.Equal(t, domain.TilePlayer, grid.At(start).Kind)
}

func TestGenerateArena_BadWidth(t *testing.T) {
	_, _, err := GenerateArena([]string{"###"})
	assert.True(t, errors.Is(err, ErrBadArena))
}
