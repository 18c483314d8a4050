package domain

import "errors"

var (
	// ErrNoPlayer - на карте нет клетки игрока. Единственная фатальная ошибка инициализации уровня.
	ErrNoPlayer = errors.New("no player on the map")
	// ErrRaggedMap - строки карты разной длины.
	ErrRaggedMap = errors.New("map rows have different widths")
	// ErrUnknownClass - неизвестное имя класса персонажа.
	ErrUnknownClass = errors.New("unknown character class")
)
