package handlers

import (
	"encoding/json"
	"time"

	"haste/internal/systems"
	"haste/pkg/api"
)

// Context передает хендлеру состояние забега.
// Мы передаем ссылку, чтобы хендлер мог менять состояние (мутировать данные).
type Context struct {
	State *systems.State
	Now   time.Duration
}

// Cooldown - какую перезарядку запускает действие игрока
type Cooldown uint8

const (
	CooldownNone Cooldown = iota
	CooldownMove
	CooldownAttack
)

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет в логи симуляции напрямую, он возвращает данные.
type Result struct {
	Msg      string      // Текст лога
	MsgType  string      // Тип лога (INFO, COMBAT, ERROR)
	Cooldown Cooldown    // Перезарядка, которую надо запустить
	Outcome  api.Outcome // Не RUNNING, если команда завершает уровень или забег
}

// HandlerFunc - это контракт для любой команды (MOVE, ATTACK, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)
