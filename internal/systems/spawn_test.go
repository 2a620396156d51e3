package systems

import (
	"math/rand"
	"testing"

	"github.com/theDrake/pebblequest-sub000/internal/domain"
)

func TestFindSpawnPoint_OutsideVisibility(t *testing.T) {
	q := openQuest()
	q.Player.Pos = domain.Position{X: 5, Y: 5}

	pos, ok := FindSpawnPoint(q, q.Player.Pos)
	if !ok {
		t.Fatal("Open grid should always have a spawn point")
	}
	if !q.IsOccupiable(pos) {
		t.Errorf("Spawn point %+v must be occupiable", pos)
	}
}

func TestFindSpawnPoint_Exhausted(t *testing.T) {
	// Сетка полностью сплошная: кандидатов нет
	q := domain.NewQuest(domain.QuestSlay, domain.NewPlayer())
	q.Player.Pos = domain.Position{X: 5, Y: 5}

	if _, ok := FindSpawnPoint(q, q.Player.Pos); ok {
		t.Error("Solid grid should signal that no spot was found")
	}
}

func TestTrySpawnNpc_RespectsCap(t *testing.T) {
	q := openQuest()
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < domain.MaxLiveNPCs; i++ {
		q.AddNPC(domain.NewNPC(domain.NPCGoblin, domain.Position{X: i, Y: 0}, 1))
	}

	for i := 0; i < 100; i++ {
		if TrySpawnNpc(q, rng) != nil {
			t.Fatal("Spawn must not exceed the live NPC cap")
		}
	}
}

func TestTrySpawnNpc_StopsAtKillTarget(t *testing.T) {
	q := openQuest()
	q.Kills = q.KillTarget
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 100; i++ {
		if TrySpawnNpc(q, rng) != nil {
			t.Fatal("Spawn must stop once the kill target is reached")
		}
	}
}

func TestTrySpawnNpc_GateEventuallyPasses(t *testing.T) {
	q := openQuest()
	rng := rand.New(rand.NewSource(1))

	var spawned *domain.NPC
	for i := 0; i < 100 && spawned == nil; i++ {
		spawned = TrySpawnNpc(q, rng)
	}
	if spawned == nil {
		t.Fatal("A 1-in-4 gate should pass within 100 ticks")
	}
	if spawned.Type == domain.NPCFloatingMonstrosity {
		t.Error("The boss type must never come from random spawning")
	}
}
