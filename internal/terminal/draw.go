package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"haste/internal/core/types"
	"haste/pkg/api"
)

// hudOffset - отступ статусной строки справа от карты
const hudOffset = 3

var hudStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)

func draw(c canvas, snap api.Snapshot) {
	c.Clear()
	for r := 0; r < snap.Grid.Rows; r++ {
		for col := 0; col < snap.Grid.Cols; col++ {
			g := snap.At(r, col)
			c.SetContent(col, r, rune(g.Char()), nil, glyphStyle(g))
		}
	}

	x := snap.Grid.Cols + hudOffset
	for i, line := range hudLines(snap) {
		drawString(c, x, i, line, hudStyle)
	}
}

func glyphStyle(g types.Glyph) tcell.Style {
	if g == types.Blank {
		return tcell.StyleDefault
	}
	r, gr, b := g.RGB()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(r, gr, b))
}

func hudLines(snap api.Snapshot) []string {
	h := snap.HUD
	lines := []string{
		fmt.Sprintf("♡ HP: %d/%d", h.HP, h.MaxHP),
		fmt.Sprintf("XP: %d (total %d)", h.XP, h.TotalXP),
		fmt.Sprintf("%s  level %d", h.Class, snap.Level),
	}
	if h.Boss != nil {
		lines = append(lines, fmt.Sprintf("BOSS: %d/%d phase %d", h.Boss.HP, h.Boss.MaxHP, h.Boss.Phase))
	}
	return lines
}

func drawString(c canvas, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		c.SetContent(x, y, r, nil, style)
		x++
	}
}
