package actions

import (
	"fmt"

	"github.com/theDrake/pebblequest-sub000/internal/domain"
	"github.com/theDrake/pebblequest-sub000/internal/engine/handlers"
	"github.com/theDrake/pebblequest-sub000/pkg/api"
)

// HandleEquip экипирует предмет из инвентаря.
// Slot - индекс тяжёлого предмета, либо индекс камешка при Pebble=true.
func HandleEquip(ctx handlers.Context, p api.EquipPayload) (handlers.Result, error) {
	if p.Pebble {
		return equipPebble(ctx, p.Slot)
	}

	if p.Slot >= domain.MaxHeavyItems {
		return handlers.Result{}, fmt.Errorf("slot %d out of range", p.Slot)
	}

	item := ctx.Actor.HeavyItemAt(p.Slot)
	if item == domain.NoItem {
		return handlers.Result{Notice: "Слот пуст."}, nil
	}

	var notice string
	switch {
	case item.IsWeapon():
		ctx.Actor.EquippedWeapon = item
		// Камешек и оружие занимают одну руку
		ctx.Actor.EquippedPebble = domain.NoItem
		notice = fmt.Sprintf("Экипировано: %s (атака %d)",
			item, ctx.Actor.StatIfBoosted(domain.StatStrength, item.AttackBonus()))
	case item.IsArmor():
		ctx.Actor.EquippedArmor = item
		notice = fmt.Sprintf("Экипировано: %s (защита %d)",
			item, ctx.Actor.StatIfBoosted(domain.StatAgility, item.DefenseBonus()))
	default:
		return handlers.Result{Notice: "Это нельзя экипировать."}, nil
	}

	return handlers.Result{Notice: notice, Redraw: true}, nil
}

func equipPebble(ctx handlers.Context, idx int) (handlers.Result, error) {
	if idx >= domain.NumPebbleTypes {
		return handlers.Result{}, fmt.Errorf("pebble index %d out of range", idx)
	}

	pebble := domain.PebbleByIndex(idx)
	if ctx.Actor.PebbleCount(pebble) == 0 {
		return handlers.Result{Notice: "Таких камешков у вас нет."}, nil
	}

	ctx.Actor.EquippedPebble = pebble
	return handlers.Result{
		Notice: fmt.Sprintf("В руке: %s", pebble),
		Redraw: true,
	}, nil
}
