package api

import (
	"fmt"

	"haste/internal/core/types"
)

// --- СИМУЛЯЦИЯ -> РЕНДЕР ---

// Snapshot - снимок, который симуляция отдает рендеру после каждого тика.
// Только для чтения: рендер не может через него менять состояние.
type Snapshot struct {
	// Tick номер тика с начала уровня.
	Tick int `json:"tick"`

	// Level номер текущего уровня (с 1).
	Level int `json:"level"`

	// Grid размеры карты.
	Grid GridMeta `json:"grid"`

	// Cells глифы карты построчно: индекс = Row * Cols + Col.
	// Следы атак и пули босса уже наложены поверх тайлов.
	Cells []types.Glyph `json:"cells"`

	// HUD числовые показатели для строки состояния.
	HUD HUD `json:"hud"`

	// Outcome итог тика (RUNNING, пока игра идет).
	Outcome Outcome `json:"outcome"`
}

// GridMeta содержит общие размеры карты
type GridMeta struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// HUD - строка состояния
type HUD struct {
	HP      int    `json:"hp"`
	MaxHP   int    `json:"maxHp"`
	XP      int    `json:"xp"`
	TotalXP int    `json:"totalXp"`
	Class   string `json:"class"`

	// Boss заполнен, только пока на уровне жив босс.
	Boss *BossView `json:"boss,omitempty"`

	// Cooldown true, пока действие игрока на перезарядке.
	Cooldown bool `json:"cooldown"`
}

// BossView - полоса здоровья босса
type BossView struct {
	HP    int `json:"hp"`
	MaxHP int `json:"maxHp"`
	Phase int `json:"phase"`
}

// At возвращает глиф клетки. За границами - пустой глиф.
func (s Snapshot) At(row, col int) types.Glyph {
	if row < 0 || row >= s.Grid.Rows || col < 0 || col >= s.Grid.Cols {
		return types.Blank
	}
	return s.Cells[row*s.Grid.Cols+col]
}

// Row возвращает символы строки (удобно для отладки и тестов)
func (s Snapshot) Row(row int) string {
	out := make([]byte, s.Grid.Cols)
	for c := range out {
		out[c] = s.At(row, c).Char()
	}
	return string(out)
}

// Outcome - итог тика симуляции
type Outcome uint8

const (
	OutcomeRunning Outcome = iota
	OutcomeLevelCleared
	OutcomeVictory
	OutcomeDefeat
	OutcomeQuit
	OutcomeJumpToFinal
)

var outcomeToString = map[Outcome]string{
	OutcomeRunning:      "RUNNING",
	OutcomeLevelCleared: "LEVEL_CLEARED",
	OutcomeVictory:      "VICTORY",
	OutcomeDefeat:       "DEFEAT",
	OutcomeQuit:         "QUIT",
	OutcomeJumpToFinal:  "JUMP_TO_FINAL",
}

func (o Outcome) String() string {
	if val, ok := outcomeToString[o]; ok {
		return val
	}
	return "UNKNOWN"
}

// MarshalText позволяет писать Outcome строкой в JSON и логах
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText разбирает строковое представление
func (o *Outcome) UnmarshalText(b []byte) error {
	for k, v := range outcomeToString {
		if v == string(b) {
			*o = k
			return nil
		}
	}
	return fmt.Errorf("unknown outcome %q", string(b))
}

// IsTerminal - игра закончилась (победа, поражение или выход)
func (o Outcome) IsTerminal() bool {
	return o == OutcomeVictory || o == OutcomeDefeat || o == OutcomeQuit
}

// --- Payloads ---

// DirectionPayload используется для действий, связанных с направлением (MOVE).
type DirectionPayload struct {
	DR int `json:"dr"` // Смещение по строкам (-1, 0, 1)
	DC int `json:"dc"` // Смещение по столбцам (-1, 0, 1)
}
