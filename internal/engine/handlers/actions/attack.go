package actions

import (
	"fmt"

	"github.com/theDrake/pebblequest-sub000/internal/engine/handlers"
	"github.com/theDrake/pebblequest-sub000/internal/systems"
)

// HandleAttack бьёт первого врага на линии взгляда
func HandleAttack(ctx handlers.Context) (handlers.Result, error) {
	res := systems.ResolveAttack(ctx.Quest, ctx.Actor)

	if !res.Performed {
		// Не хватило энергии: тихий отказ
		return handlers.EmptyResult(), nil
	}

	if !res.Hit {
		// Замах в пустоту тоже тратит энергию
		return handlers.Result{Redraw: true}, nil
	}

	ctx.Flash()

	if !res.TargetDied {
		return handlers.Result{Redraw: true}, nil
	}

	notice := fmt.Sprintf("%s повержен.", res.Target.Type)
	if res.LeveledUp {
		notice = fmt.Sprintf("Уровень %d!", ctx.Actor.Level)
	}
	if res.QuestComplete {
		notice = "Цель квеста достигнута. Идите к выходу!"
	}

	return handlers.Result{Notice: notice, Redraw: true}, nil
}
