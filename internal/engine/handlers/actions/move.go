package actions

import (
	"fmt"

	"github.com/theDrake/pebblequest-sub000/internal/domain"
	"github.com/theDrake/pebblequest-sub000/internal/engine/handlers"
	"github.com/theDrake/pebblequest-sub000/internal/systems"
)

// HandleMoveForward делает шаг в сторону взгляда
func HandleMoveForward(ctx handlers.Context) (handlers.Result, error) {
	return step(ctx, ctx.Actor.Facing)
}

// HandleMoveBackward пятится, не разворачиваясь
func HandleMoveBackward(ctx handlers.Context) (handlers.Result, error) {
	return step(ctx, ctx.Actor.Facing.Opposite())
}

func step(ctx handlers.Context, dir domain.Direction) (handlers.Result, error) {
	res := systems.MovePlayer(ctx.Quest, dir)

	if res.ExitedMaze {
		ctx.Modes.SetMode(domain.ModeVictory)
		if ctx.Quest.Completed {
			return handlers.Result{Notice: "Квест выполнен!", Redraw: true}, nil
		}
		return handlers.Result{Notice: "Вы покинули подземелье.", Redraw: true}, nil
	}

	if !res.Moved {
		// Упёрся в стену или врага: тихий отказ, экран не трогаем
		return handlers.EmptyResult(), nil
	}

	if res.LootFound != domain.NoItem {
		ctx.Modes.SetMode(domain.ModeLoot)
		return handlers.Result{
			Notice: fmt.Sprintf("Вы нашли: %s", res.LootFound),
			Redraw: true,
		}, nil
	}

	return handlers.Result{Redraw: true}, nil
}

// HandleTurnLeft поворачивает взгляд на 90 градусов против часовой
func HandleTurnLeft(ctx handlers.Context) (handlers.Result, error) {
	ctx.Actor.Facing = ctx.Actor.Facing.Left()
	return handlers.Result{Redraw: true}, nil
}

// HandleTurnRight поворачивает взгляд на 90 градусов по часовой
func HandleTurnRight(ctx handlers.Context) (handlers.Result, error) {
	ctx.Actor.Facing = ctx.Actor.Facing.Right()
	return handlers.Result{Redraw: true}, nil
}
