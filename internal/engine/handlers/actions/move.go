package actions

import (
	"haste/internal/domain"
	"haste/internal/engine/handlers"
	"haste/internal/systems"
	"haste/pkg/api"
)

// HandleMove поворачивает игрока и делает шаг. Перезарядка запускается даже при неудачном шаге.
func HandleMove(ctx handlers.Context, p api.DirectionPayload) (handlers.Result, error) {
	res := systems.MovePlayer(ctx.State, domain.Direction{DR: p.DR, DC: p.DC})

	if res.BlockedBy != nil {
		return handlers.Result{
			Msg:      "Путь прегражден врагом.",
			MsgType:  "INFO",
			Cooldown: handlers.CooldownMove,
		}, nil
	}

	return handlers.Result{Cooldown: handlers.CooldownMove}, nil
}
