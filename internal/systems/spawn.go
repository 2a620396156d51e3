package systems

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/theDrake/pebblequest-sub000/internal/domain"
	"github.com/theDrake/pebblequest-sub000/pkg/logger"
)

// FindSpawnPoint ищет клетку для спавна сразу за радиусом видимости
// игрока: по каждому направлению компаса на максимальной глубине
// обзора, с веером вбок от осевой точки. Возвращает первую занимаемую
// клетку; ok == false, если все кандидаты исчерпаны.
func FindSpawnPoint(q *domain.Quest, from domain.Position) (pos domain.Position, ok bool) {
	for d := domain.Direction(0); d < domain.NumDirections; d++ {
		axis := from
		for i := 0; i < domain.MaxVisibilityDepth; i++ {
			axis = axis.Step(d)
		}

		if q.IsOccupiable(axis) {
			return axis, true
		}
		for fan := 1; fan <= domain.MaxVisibilityDepth; fan++ {
			left, right := axis, axis
			for i := 0; i < fan; i++ {
				left = left.Step(d.Left())
				right = right.Step(d.Right())
			}
			if q.IsOccupiable(left) {
				return left, true
			}
			if q.IsOccupiable(right) {
				return right, true
			}
		}
	}
	return domain.Position{}, false
}

// TrySpawnNpc спавнит одного NPC случайного типа, если пройден
// случайный гейт, не достигнут потолок живых NPC и квест еще не выбил
// свою цель. Возвращает нового NPC или nil.
func TrySpawnNpc(q *domain.Quest, rng *rand.Rand) *domain.NPC {
	if q.LiveNPCCount() >= domain.MaxLiveNPCs {
		return nil
	}
	if q.Completed || q.Kills >= q.KillTarget {
		return nil
	}
	if rng.Intn(domain.SpawnChanceDenom) != 0 {
		return nil
	}

	pos, ok := FindSpawnPoint(q, q.Player.Pos)
	if !ok {
		logger.WithComponent("spawn_system").Debug("No spawn point found.")
		return nil
	}

	t := domain.NPCType(rng.Intn(domain.NumSpawnableNPCTypes))
	npc := domain.NewNPC(t, pos, q.Player.Level)
	q.AddNPC(npc)

	logger.WithComponent("spawn_system").WithFields(logrus.Fields{
		"npc_type":  t.String(),
		"pos":       pos,
		"live_npcs": q.LiveNPCCount(),
	}).Debug("NPC spawned.")

	return npc
}
