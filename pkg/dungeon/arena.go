package dungeon

import (
	"errors"
	"fmt"

	"haste/internal/domain"
)

// ErrBadArena - строка арены не совпадает по ширине с сеткой
var ErrBadArena = errors.New("arena row width mismatch")

// arenaMap - финальный уровень, нарисованный вручную. Копируется как есть.
var arenaMap = []string{
	" ###################################### ",
	"##########         ###########      ####",
	"###                    ####           ##",
	"##                                     #",
	"#     ###                            ###",
	"#      #######      ####           #####",
	"##        ####     ##                ###",
	"###                #                  ##",
	"####                                  ##",
	"#####                         ######   #",
	"#####         ###             ##       #",
	"#####      #####              #        #",
	"####                                   #",
	"##    ###                #####         #",
	"##  #                   ###            #",
	"#   #    ######         #             ##",
	"##                                   ###",
	"###       P   ####            ###   ####",
	"####            #        ###############",
	" ###################################### ",
}

// TeleportPoints - точки телепорта босса на арене
var TeleportPoints = []domain.Position{
	{Row: 2, Col: 5},
	{Row: 3, Col: 20},
	{Row: 3, Col: 35},
	{Row: 8, Col: 8},
	{Row: 8, Col: 30},
	{Row: 12, Col: 6},
	{Row: 12, Col: 36},
	{Row: 16, Col: 20},
}

// BossSpawn - стартовая клетка босса
var BossSpawn = domain.Position{Row: 3, Col: 20}

// GenerateArena строит фиксированную арену из строк rows.
// Позиция игрока берется из глифа 'P'; если его нет, игрок ставится в центр.
func GenerateArena(rows []string) (*domain.Grid, domain.Position, error) {
	for i, line := range rows {
		if len(line) != domain.Cols {
			return nil, domain.Position{}, fmt.Errorf("arena row %d: %d cells, want %d: %w", i, len(line), domain.Cols, ErrBadArena)
		}
	}
	if len(rows) != domain.Rows {
		return nil, domain.Position{}, fmt.Errorf("arena has %d rows, want %d: %w", len(rows), domain.Rows, ErrBadArena)
	}

	g, err := domain.ParseGrid(rows)
	if err != nil {
		return nil, domain.Position{}, fmt.Errorf("arena: %w", err)
	}

	start, err := g.FindPlayer()
	if err != nil {
		start = domain.Position{Row: g.Rows / 2, Col: g.Cols / 2}
		g.Set(start, domain.PlayerTile)
	}
	return g, start, nil
}

// BossArena возвращает встроенную арену финального уровня
func BossArena() (*domain.Grid, domain.Position, error) {
	return GenerateArena(arenaMap)
}
