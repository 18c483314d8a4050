package systems

import (
	"math/rand"
	"os"
	"strings"
	"testing"

	"haste/internal/domain"
	"haste/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize the global logger before running any tests
	logger.Init()

	// Exit with the result of the tests
	os.Exit(m.Run())
}

// newTestState собирает состояние из ASCII-карты ('P' обязателен)
func newTestState(t *testing.T, rows []string) *State {
	t.Helper()
	g, err := domain.ParseGrid(rows)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	pos, err := g.FindPlayer()
	if err != nil {
		t.Fatalf("FindPlayer: %v", err)
	}
	balance := DefaultBalance()
	s := NewState(domain.NewPlayer(domain.ClassSorcerer), &balance, rand.New(rand.NewSource(1)))
	s.Reset(g, pos)
	return s
}

// openRows - прямоугольник пола в рамке стен, игрок в клетке player
func openRows(rows, cols int, player domain.Position) []string {
	out := make([]string, rows)
	for r := 0; r < rows; r++ {
		line := []byte(strings.Repeat(" ", cols))
		line[0], line[cols-1] = '#', '#'
		if r == 0 || r == rows-1 {
			line = []byte(strings.Repeat("#", cols))
		}
		if r == player.Row {
			line[player.Col] = 'P'
		}
		out[r] = string(line)
	}
	return out
}

// addEnemy регистрирует врага и рисует его на карте
func addEnemy(t *testing.T, s *State, e domain.Enemy) *domain.Enemy {
	t.Helper()
	if e.Width == 0 {
		e.Width = len(e.Shape)
	}
	if e.Width == 0 {
		e.Width = 1
	}
	if e.MaxHP == 0 {
		e.MaxHP = e.HP
	}
	if !s.Grid.IsEmptyRun(e.Pos.Row, e.Pos.Col, e.Width) {
		t.Fatalf("cells at %v are not free", e.Pos)
	}
	h, slot, ok := s.Enemies.Spawn(e)
	if !ok {
		t.Fatal("registry full")
	}
	slot.Handle = h
	s.Grid.PlaceEnemy(slot)
	return slot
}

// movePlayer переносит игрока в тестах без проверок кулдауна
func movePlayer(t *testing.T, s *State, to domain.Position) {
	t.Helper()
	if !s.Grid.MovePlayer(s.Player.Pos, to) {
		t.Fatalf("cannot move player to %v", to)
	}
	s.Player.Pos = to
}
