package domain

// InputEvent - дискретное событие ввода, которое симуляция потребляет за тик
type InputEvent uint8

const (
	InputNone InputEvent = iota
	InputMoveUp
	InputMoveDown
	InputMoveLeft
	InputMoveRight
	InputAttack
	InputQuit
	InputDebugJump // сразу на финальный уровень
)

// Маппинг для конвертации клавиши -> Domain
var keyToInput = map[rune]InputEvent{
	'w': InputMoveUp,
	's': InputMoveDown,
	'a': InputMoveLeft,
	'd': InputMoveRight,
	'k': InputAttack,
	'q': InputQuit,
	'L': InputDebugJump,
}

// Маппинг для логов Domain -> String
var inputEventToName = map[InputEvent]string{
	InputMoveUp:    "MOVE_UP",
	InputMoveDown:  "MOVE_DOWN",
	InputMoveLeft:  "MOVE_LEFT",
	InputMoveRight: "MOVE_RIGHT",
	InputAttack:    "ATTACK",
	InputQuit:      "QUIT",
	InputDebugJump: "DEBUG_JUMP",
}

// ParseKey конвертирует символ клавиши в событие.
// Клавиша атаки принимается в обоих регистрах, остальные неизвестные игнорируются (InputNone).
func ParseKey(r rune) InputEvent {
	if r == 'K' {
		return InputAttack
	}
	if ev, ok := keyToInput[r]; ok {
		return ev
	}
	return InputNone
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (e InputEvent) String() string {
	if val, ok := inputEventToName[e]; ok {
		return val
	}
	return "NONE"
}

// Direction возвращает направление движения. ok=false для не-движений.
func (e InputEvent) Direction() (Direction, bool) {
	switch e {
	case InputMoveUp:
		return DirUp, true
	case InputMoveDown:
		return DirDown, true
	case InputMoveLeft:
		return DirLeft, true
	case InputMoveRight:
		return DirRight, true
	}
	return Direction{}, false
}
