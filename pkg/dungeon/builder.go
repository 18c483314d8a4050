package dungeon

import (
	"math/rand"

	"haste/internal/domain"
)

// Rect - Вспомогательная структура для комнаты
type Rect struct {
	X, Y, W, H int
}

// Center возвращает центр комнаты (Row = Y, Col = X)
func (r Rect) Center() domain.Position {
	return domain.Position{Row: r.Y + r.H/2, Col: r.X + r.W/2}
}

// Intersects проверяет перекрытие комнат. Генератор его не вызывает, комнаты
// просто перезаписывают друг друга; mapdump показывает такие пары.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.W && r.X+r.W >= other.X &&
		r.Y <= other.Y+other.H && r.Y+r.H >= other.Y
}

func createRoom(g *domain.Grid, room Rect) {
	for y := room.Y; y < room.Y+room.H; y++ {
		for x := room.X; x < room.X+room.W; x++ {
			g.Set(domain.Position{Row: y, Col: x}, domain.EmptyTile)
		}
	}
}

func createHCorridor(g *domain.Grid, x1, x2, y int) {
	start := min(x1, x2)
	end := max(x1, x2)
	for x := start; x <= end; x++ {
		g.Set(domain.Position{Row: y, Col: x}, domain.EmptyTile)
	}
}

func createVCorridor(g *domain.Grid, y1, y2, x int) {
	start := min(y1, y2)
	end := max(y1, y2)
	for y := start; y <= end; y++ {
		g.Set(domain.Position{Row: y, Col: x}, domain.EmptyTile)
	}
}

func (b *LevelBuilder) randRange(min, max int) int {
	return b.rng.Intn(max-min+1) + min
}

// LevelBuilder предоставляет fluent API для создания уровней
type LevelBuilder struct {
	level int
	rows  int
	cols  int
	rooms []Rect
	grid  *domain.Grid
	rng   *rand.Rand
}

// NewLevel создает новый builder для уровня
func NewLevel(level int, rng *rand.Rand) *LevelBuilder {
	return &LevelBuilder{
		level: level,
		rows:  domain.Rows,
		cols:  domain.Cols,
		rng:   rng,
	}
}

// WithRooms вырезает count комнат и соединяет каждую с предыдущей Г-образным коридором.
// Сначала закрывается разрыв по столбцам (по строке предыдущей комнаты), затем по строкам.
func (b *LevelBuilder) WithRooms(count int) *LevelBuilder {
	// Инициализируем карту стенами
	b.grid = domain.NewGrid(b.rows, b.cols)

	b.rooms = make([]Rect, 0, count)
	for i := 0; i < count; i++ {
		w := b.randRange(MinRoomW, min(MaxRoomW, b.cols-2))
		h := b.randRange(MinRoomH, min(MaxRoomH, b.rows-2))
		x := b.randRange(1, b.cols-w-1)
		y := b.randRange(1, b.rows-h-1)

		newRoom := Rect{X: x, Y: y, W: w, H: h}
		createRoom(b.grid, newRoom)

		if len(b.rooms) > 0 {
			prev := b.rooms[len(b.rooms)-1].Center()
			curr := newRoom.Center()
			createHCorridor(b.grid, prev.Col, curr.Col, prev.Row)
			createVCorridor(b.grid, prev.Row, curr.Row, curr.Col)
		}
		b.rooms = append(b.rooms, newRoom)
	}

	return b
}

// Rooms возвращает вырезанные комнаты (для инструментов)
func (b *LevelBuilder) Rooms() []Rect {
	return b.rooms
}

// GetStartPos возвращает стартовую позицию (центр первой комнаты)
func (b *LevelBuilder) GetStartPos() domain.Position {
	if len(b.rooms) > 0 {
		return b.rooms[0].Center()
	}
	return domain.Position{Row: b.rows / 2, Col: b.cols / 2}
}

// Build ставит игрока и возвращает готовую карту
func (b *LevelBuilder) Build() (*domain.Grid, domain.Position) {
	if b.grid == nil {
		b.grid = domain.NewGrid(b.rows, b.cols)
	}
	start := b.GetStartPos()
	b.grid.Set(start, domain.PlayerTile)
	return b.grid, start
}
