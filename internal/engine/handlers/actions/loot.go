package actions

import (
	"fmt"

	"github.com/theDrake/pebblequest-sub000/internal/domain"
	"github.com/theDrake/pebblequest-sub000/internal/engine/handlers"
)

// HandleTakeLoot забирает предмет с клетки, на которой стоит игрок
func HandleTakeLoot(ctx handlers.Context) (handlers.Result, error) {
	tag := ctx.Quest.CellAt(ctx.Actor.Pos)
	if !tag.Lootable() {
		ctx.Modes.SetMode(domain.ModeActive)
		return handlers.Result{Redraw: true}, nil
	}

	item := tag.ItemType()

	if item.IsPebble() {
		ctx.Actor.AddPebble(item)
	} else if !ctx.Actor.AddHeavyItem(item) {
		// Рюкзак полон: предмет остаётся лежать
		ctx.Modes.SetMode(domain.ModeActive)
		return handlers.Result{Notice: "Рюкзак полон.", Redraw: true}, nil
	}

	ctx.Quest.SetCell(ctx.Actor.Pos, domain.CellEmpty)
	ctx.Modes.SetMode(domain.ModeActive)

	return handlers.Result{
		Notice: fmt.Sprintf("Взято: %s", item),
		Redraw: true,
	}, nil
}

// HandleLeaveLoot оставляет предмет лежать и возвращает игру
func HandleLeaveLoot(ctx handlers.Context) (handlers.Result, error) {
	ctx.Modes.SetMode(domain.ModeActive)
	return handlers.Result{Redraw: true}, nil
}
