package admin

import (
	"haste/internal/engine/handlers"
	"haste/pkg/api"
)

// HandleJumpToFinal прерывает уровень: раннер сразу строит уровень с боссом
func HandleJumpToFinal(ctx handlers.Context) (handlers.Result, error) {
	if _, ok := ctx.State.Boss(); ok {
		return handlers.Result{Msg: "Already on the final level", MsgType: "ERROR"}, nil
	}
	return handlers.Result{Msg: "⚡ Jump to final level via Admin Magic", MsgType: "INFO", Outcome: api.OutcomeJumpToFinal}, nil
}
