package systems

import (
	"math/rand"

	"github.com/theDrake/pebblequest-sub000/internal/domain"
)

// MoveResult - результат попытки движения игрока
type MoveResult struct {
	Moved      bool
	ExitedMaze bool            // Игрок шагнул наружу со входа: квест завершается
	LootFound  domain.ItemType // Предмет в клетке назначения (NoItem, если пусто)
}

// MovePlayer пытается сдвинуть игрока на один шаг.
//
// Особый случай: если игрок стоит на входе и шагает в сторону входа
// (наружу), квест завершается вместо движения. Непроходимое назначение -
// молчаливый отказ, без ошибки.
func MovePlayer(q *domain.Quest, dir domain.Direction) MoveResult {
	p := q.Player

	if p.Pos == q.Entrance && dir == q.EntranceDir {
		return MoveResult{ExitedMaze: true}
	}

	dest := p.Pos.Step(dir)
	if !q.IsOccupiable(dest) {
		return MoveResult{}
	}

	p.Pos = dest

	res := MoveResult{Moved: true, LootFound: domain.NoItem}
	if tag := q.CellAt(dest); tag.Lootable() {
		// Подбор происходит в UI-режиме лута; здесь только сигнал
		res.LootFound = tag.ItemType()
	}
	return res
}

// MoveNpc пытается сдвинуть NPC на один шаг. Непроходимое назначение - no-op.
func MoveNpc(q *domain.Quest, npc *domain.NPC, dir domain.Direction) bool {
	dest := npc.Pos.Step(dir)
	if !q.IsOccupiable(dest) {
		return false
	}
	npc.Pos = dest
	return true
}

// PursuitDirection - жадная эвристика преследования без поиска пути.
//
// Если преследователь и цель на одной вертикали, предпочитается
// вертикальный шаг к цели (при проходимой промежуточной клетке либо уже
// достигнутом соседстве); симметрично для горизонтали. Без выравнивания
// по осям порядок проверки кандидатов выбирается случайно. Если оба
// кандидата заблокированы, возвращается горизонтальный - NPC может
// застыть у препятствия, и это задокументированное поведение, вокруг
// которого настроена сложность, а не баг.
func PursuitDirection(q *domain.Quest, pursuer, target domain.Position, rng *rand.Rand) domain.Direction {
	horizontal := domain.East
	if target.X < pursuer.X {
		horizontal = domain.West
	}
	vertical := domain.South
	if target.Y < pursuer.Y {
		vertical = domain.North
	}

	stepOK := func(d domain.Direction) bool {
		next := pursuer.Step(d)
		return q.IsOccupiable(next) || domain.AreAdjacent(pursuer, target)
	}

	if pursuer.X == target.X {
		if stepOK(vertical) {
			return vertical
		}
		// Вертикаль проверена и закрыта - остается горизонтальный запасной
		return horizontal
	}

	if pursuer.Y == target.Y {
		if stepOK(horizontal) {
			return horizontal
		}
		// Горизонталь закрыта: пробуем вертикаль, иначе горизонтальный запасной
		if q.IsOccupiable(pursuer.Step(vertical)) {
			return vertical
		}
		return horizontal
	}

	// Оси не выровнены: случайно выбираем, какую пробовать первой
	first, second := horizontal, vertical
	if rng.Intn(2) == 0 {
		first, second = vertical, horizontal
	}

	if q.IsOccupiable(pursuer.Step(first)) {
		return first
	}
	if q.IsOccupiable(pursuer.Step(second)) {
		return second
	}
	return horizontal
}
