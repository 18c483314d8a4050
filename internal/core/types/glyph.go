package types

import (
	"fmt"
)

// Glyph - упакованное представление цветного символа клетки снимка.
// Использует 32 бита (uint32):
//
//	[0:8] - символ (1 байт) - маска 0xFF
//	[8:32] - RGB-цвет (3 байта) - маска 0xFFFFFF
//
// Симуляция хранит содержимое клеток как типизированные значения,
// Glyph появляется только на границе рендера.
type Glyph uint32

const (
	bitsChar  = 8
	bitsColor = 24

	shiftColor = bitsChar

	maskChar  = (1 << bitsChar) - 1
	maskColor = (1 << bitsColor) - 1
)

// Палитра рендера (цвета терминальной версии оригинальной игры)
const (
	ColorDefault    uint32 = 0xC0C0C0
	ColorWall       uint32 = 0x808080 // серые стены
	ColorPlayer     uint32 = 0x5C5CFF // светло-синий игрок
	ColorNormal     uint32 = 0xFF5555 // обычные враги
	ColorElite      uint32 = 0xCD0000 // элита
	ColorBoss       uint32 = 0xCD00CD // босс
	ColorProjectile uint32 = 0xCDCD00 // снаряды и пули
)

// Blank - пустая проходимая клетка.
var Blank = MakeGlyph(ColorDefault, ' ')

// MakeGlyph создает новый Glyph из RGB-цвета и символа.
//
// Учитываются только младшие 24 бита цвета и младшие 8 бит символа:
//
//	glyph := MakeGlyph(0xFFA500, 'A') // 0xFFA50041
func MakeGlyph(colorRGB uint32, char byte) Glyph {
	return Glyph((colorRGB&maskColor)<<shiftColor | (uint32(char) & maskChar))
}

// Color извлекает 24-битный RGB-цвет (0xRRGGBB).
func (g Glyph) Color() uint32 {
	return uint32(g>>shiftColor) & maskColor
}

// Char извлекает символ.
func (g Glyph) Char() byte {
	return byte(g & maskChar)
}

// RGB раскладывает цвет на компоненты (удобно для терминальных бэкендов).
func (g Glyph) RGB() (r, gr, b int32) {
	c := g.Color()
	return int32(c >> 16 & 0xFF), int32(c >> 8 & 0xFF), int32(c & 0xFF)
}

// String реализует fmt.Stringer.
// Формат: "Glyph{char='A', color=#FFA500}"
func (g Glyph) String() string {
	char := g.Char()
	charStr := string([]byte{char})

	// Для непечатаемых символов показываем hex
	if char < 32 || char > 126 {
		charStr = fmt.Sprintf("\\x%02X", char)
	}

	return fmt.Sprintf("Glyph{char='%s', color=%s}", charStr, g.HexColor())
}

// HexColor возвращает HEX-представление цвета (например, "#00FF00").
func (g Glyph) HexColor() string {
	return fmt.Sprintf("#%06X", g.Color())
}
