package domain

import "fmt"

// NewGrid создает карту, целиком залитую стенами
func NewGrid(rows, cols int) *Grid {
	g := &Grid{Rows: rows, Cols: cols, cells: make([]Tile, rows*cols)}
	g.Fill(WallTile)
	return g
}

// ParseGrid строит карту из ASCII-строк: '#' - стена, 'P' - игрок, остальное - пол.
// Используется для фиксированной арены и для тестовых карт.
func ParseGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("parse grid: %w", ErrRaggedMap)
	}
	cols := len(rows[0])
	g := NewGrid(len(rows), cols)
	for r, line := range rows {
		if len(line) != cols {
			return nil, fmt.Errorf("parse grid: row %d has %d cells, want %d: %w", r, len(line), cols, ErrRaggedMap)
		}
		for c := 0; c < cols; c++ {
			switch line[c] {
			case '#':
				g.cells[g.index(r, c)] = WallTile
			case 'P':
				g.cells[g.index(r, c)] = PlayerTile
			default:
				g.cells[g.index(r, c)] = EmptyTile
			}
		}
	}
	return g, nil
}

func (g *Grid) index(row, col int) int {
	return row*g.Cols + col
}

// Fill заливает всю карту одним тайлом
func (g *Grid) Fill(t Tile) {
	for i := range g.cells {
		g.cells[i] = t
	}
}

// InBounds проверяет границы карты
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.Rows && p.Col >= 0 && p.Col < g.Cols
}

// At возвращает тайл. За границами карты - стена.
func (g *Grid) At(p Position) Tile {
	if !g.InBounds(p) {
		return WallTile
	}
	return g.cells[g.index(p.Row, p.Col)]
}

// Set записывает тайл. Запись за границы игнорируется.
func (g *Grid) Set(p Position, t Tile) {
	if !g.InBounds(p) {
		return
	}
	g.cells[g.index(p.Row, p.Col)] = t
}

// IsWall - стена или выход за границы
func (g *Grid) IsWall(p Position) bool {
	return g.At(p).Kind == TileWall
}

// IsEmpty - клетка в границах и пуста
func (g *Grid) IsEmpty(p Position) bool {
	return g.InBounds(p) && g.At(p).Kind == TileEmpty
}

// IsEmptyRun проверяет, что горизонтальный ряд ширины width от (row,col)
// целиком в границах и пуст (без стен, врагов и игрока).
func (g *Grid) IsEmptyRun(row, col, width int) bool {
	if row < 0 || row >= g.Rows || col < 0 || col+width-1 >= g.Cols {
		return false
	}
	for i := 0; i < width; i++ {
		if g.cells[g.index(row, col+i)].Kind != TileEmpty {
			return false
		}
	}
	return true
}

// IsTraversableRun - проверка для поиска пути: ряд в границах и без стен.
// Занятые другими врагами клетки считаются достижимыми.
func (g *Grid) IsTraversableRun(row, col, width int) bool {
	if row < 0 || row >= g.Rows || col < 0 || col+width-1 >= g.Cols {
		return false
	}
	for i := 0; i < width; i++ {
		if g.cells[g.index(row, col+i)].Kind == TileWall {
			return false
		}
	}
	return true
}

// PlaceEnemy записывает ряд клеток врага. Мертвые враги не рисуются.
func (g *Grid) PlaceEnemy(e *Enemy) {
	if !e.Alive {
		return
	}
	for i := 0; i < e.Width; i++ {
		g.Set(Position{Row: e.Pos.Row, Col: e.Pos.Col + i}, Tile{Kind: TileEnemy, Enemy: e.Handle, Segment: uint8(i)})
	}
}

// RemoveEnemy очищает ряд клеток врага. Стены никогда не перезаписываются.
func (g *Grid) RemoveEnemy(e *Enemy) {
	for i := 0; i < e.Width; i++ {
		p := Position{Row: e.Pos.Row, Col: e.Pos.Col + i}
		if g.InBounds(p) && g.At(p).Kind != TileWall {
			g.Set(p, EmptyTile)
		}
	}
}

// MoveEnemy перемещает врага на новую позицию (вызывающий проверяет IsEmptyRun)
func (g *Grid) MoveEnemy(e *Enemy, to Position) {
	g.RemoveEnemy(e)
	e.Pos = to
	g.PlaceEnemy(e)
}

// FindPlayer ищет клетку игрока
func (g *Grid) FindPlayer() (Position, error) {
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.cells[g.index(r, c)].Kind == TilePlayer {
				return Position{Row: r, Col: c}, nil
			}
		}
	}
	return Position{}, ErrNoPlayer
}

// MovePlayer переносит игрока, если целевая клетка пуста. Возвращает true при успехе.
func (g *Grid) MovePlayer(from, to Position) bool {
	if !g.IsEmpty(to) {
		return false
	}
	if g.At(from).Kind == TilePlayer {
		g.Set(from, EmptyTile)
	}
	g.Set(to, PlayerTile)
	return true
}
