package systems

import (
	"testing"

	"github.com/theDrake/pebblequest-sub000/internal/domain"
)

func TestResolveAttack_EnergyGate(t *testing.T) {
	q := openQuest()
	q.Player.Facing = domain.East
	q.Player.Energy = 1 // Ниже стоимости действия

	npc := domain.NewNPC(domain.NPCGoblin, domain.Position{X: 6, Y: 5}, 1)
	q.AddNPC(npc)
	hpBefore := npc.Health

	res := ResolveAttack(q, q.Player)
	if res.Performed {
		t.Error("Attack below the energy cost must be silently skipped")
	}
	if q.Player.Energy != 1 {
		t.Errorf("Skipped attack must not spend energy, got %d", q.Player.Energy)
	}
	if npc.Health != hpBefore {
		t.Error("Skipped attack must not deal damage")
	}
}

func TestResolveAttack_MeleeHitsAdjacent(t *testing.T) {
	q := openQuest()
	q.Player.Facing = domain.East

	npc := domain.NewNPC(domain.NPCGoblin, domain.Position{X: 6, Y: 5}, 1)
	q.AddNPC(npc)

	res := ResolveAttack(q, q.Player)
	if !res.Performed || !res.Hit {
		t.Fatal("Melee attack should hit an adjacent NPC")
	}
	if res.Target != npc {
		t.Error("Wrong target")
	}
	// Сила 5 + кинжал 2 - защита 1 = 6
	if res.Damage != 6 {
		t.Errorf("Expected 6 damage, got %d", res.Damage)
	}
	if q.Player.Energy != q.Player.MaxEnergy()-domain.MinActionEnergy {
		t.Error("Attack should spend the action energy cost")
	}
}

func TestResolveAttack_MeleeCannotReachDepthTwo(t *testing.T) {
	q := openQuest()
	q.Player.Facing = domain.East

	npc := domain.NewNPC(domain.NPCGoblin, domain.Position{X: 7, Y: 5}, 1)
	q.AddNPC(npc)

	res := ResolveAttack(q, q.Player)
	if !res.Performed {
		t.Fatal("Attack should still be performed (a swing into the air)")
	}
	if res.Hit {
		t.Error("Melee must not reach an NPC two cells away")
	}
}

func TestResolveAttack_RangedScansAhead(t *testing.T) {
	q := openQuest()
	q.Player.Facing = domain.East
	q.Player.EquippedWeapon = domain.ItemBow

	npc := domain.NewNPC(domain.NPCGoblin, domain.Position{X: 9, Y: 5}, 1)
	q.AddNPC(npc)

	res := ResolveAttack(q, q.Player)
	if !res.Hit || res.Target != npc {
		t.Error("Ranged attack should reach through empty cells")
	}
}

func TestResolveAttack_RangedStopsAtWall(t *testing.T) {
	q := openQuest()
	q.Player.Facing = domain.East
	q.Player.EquippedWeapon = domain.ItemBow

	q.SetCell(domain.Position{X: 7, Y: 5}, domain.CellSolid)
	npc := domain.NewNPC(domain.NPCGoblin, domain.Position{X: 8, Y: 5}, 1)
	q.AddNPC(npc)

	res := ResolveAttack(q, q.Player)
	if res.Hit {
		t.Error("Scan must stop at the first non-passable cell")
	}
}

func TestResolveAttack_KillGrantsExp(t *testing.T) {
	q := openQuest()
	q.Player.Facing = domain.North

	npc := domain.NewNPC(domain.NPCGoblin, domain.Position{X: 5, Y: 4}, 1)
	npc.Health = 1
	q.AddNPC(npc)
	expBefore := q.Player.Exp

	res := ResolveAttack(q, q.Player)
	if !res.TargetDied {
		t.Fatal("1 hp goblin should die to any hit")
	}
	if res.ExpGained == 0 {
		t.Error("A kill should grant experience")
	}
	if !res.LeveledUp && q.Player.Exp != expBefore+res.ExpGained {
		t.Error("Experience should be credited to the player")
	}
}
