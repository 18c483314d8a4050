package domain

// Position - клетка сетки (строка, столбец).
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Direction - единичный шаг по сетке.
type Direction struct {
	DR int `json:"dr"`
	DC int `json:"dc"`
}

// Порядок обхода соседей фиксирован: вверх, вниз, влево, вправо
var (
	DirUp    = Direction{DR: -1}
	DirDown  = Direction{DR: 1}
	DirLeft  = Direction{DC: -1}
	DirRight = Direction{DC: 1}

	Orthogonal = [4]Direction{DirUp, DirDown, DirLeft, DirRight}
)

// IsZero - вектор (0,0)
func (d Direction) IsZero() bool {
	return d.DR == 0 && d.DC == 0
}

// IsVertical - движение по строкам
func (d Direction) IsVertical() bool {
	return d.DR != 0 && d.DC == 0
}

// Manhattan возвращает манхэттенское расстояние до другой клетки
func (p Position) Manhattan(other Position) int {
	return abs(p.Row-other.Row) + abs(p.Col-other.Col)
}

// IsAdjacent возвращает true, если до цели не больше одного шага по ортогонали (включая совпадение)
func (p Position) IsAdjacent(other Position) bool {
	return p.Manhattan(other) <= 1
}

// Step возвращает новую позицию со смещением (текущая не меняется)
func (p Position) Step(d Direction) Position {
	return Position{Row: p.Row + d.DR, Col: p.Col + d.DC}
}

// DirectionTo возвращает знак разницы по каждой оси (0, ±1)
func (p Position) DirectionTo(other Position) Direction {
	return Direction{DR: sign(other.Row - p.Row), DC: sign(other.Col - p.Col)}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
