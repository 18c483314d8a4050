package actions

import (
	"fmt"

	"haste/internal/engine/handlers"
	"haste/internal/systems"
)

// HandleAttack выпускает снаряд класса по направлению взгляда
func HandleAttack(ctx handlers.Context) (handlers.Result, error) {
	res := systems.PlayerAttack(ctx.State, ctx.Now)

	out := handlers.Result{Cooldown: handlers.CooldownAttack}
	switch {
	case res.Killed:
		out.Msg = fmt.Sprintf("%s повержен (+%d XP).", res.Target.Tier, res.XP)
		out.MsgType = "COMBAT"
	case res.Hit:
		out.Msg = fmt.Sprintf("Попадание: %d урона.", res.Damage)
		out.MsgType = "COMBAT"
	}
	return out, nil
}
