package domain

import "haste/internal/core/types"

// TileKind - тег варианта содержимого клетки
type TileKind uint8

const (
	TileWall TileKind = iota
	TileEmpty
	TilePlayer
	TileEnemy
)

// Tile - содержимое клетки. Для TileEnemy хранит ссылку на слот реестра и
// номер сегмента в горизонтальном ряду многоклеточной сущности.
type Tile struct {
	Kind    TileKind
	Enemy   types.Handle
	Segment uint8
}

var (
	WallTile   = Tile{Kind: TileWall}
	EmptyTile  = Tile{Kind: TileEmpty}
	PlayerTile = Tile{Kind: TilePlayer}
)

// Grid - карта уровня фиксированного размера.
// Клетки хранятся плоским срезом, индекс: Row * Cols + Col.
type Grid struct {
	Rows  int
	Cols  int
	cells []Tile
}
