package domain

// Размеры карты (все уровни одного размера)
const (
	Rows = 20
	Cols = 40
)

// Емкости реестров
const (
	MaxEnemies = 32
	MaxBullets = 256
)

// Параметры восприятия
const (
	DetectionRange = 9 // Манхэттен, дальше которого обычный враг игнорирует игрока
)
