package actions

import (
	"haste/internal/engine/handlers"
	"haste/pkg/api"
)

func HandleQuit(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{Msg: "Выход из забега.", MsgType: "INFO", Outcome: api.OutcomeQuit}, nil
}
