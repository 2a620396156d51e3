package systems

import (
	"testing"

	"github.com/theDrake/pebblequest-sub000/internal/domain"
)

func TestDamagePlayer_DefenseMitigation(t *testing.T) {
	p := domain.NewPlayer()
	// Agility 5, без брони: защита 5, вычитается половина (2)
	hpBefore := p.Health

	applied, died := DamagePlayer(p, 10)
	if applied != 8 {
		t.Errorf("Expected applied damage 10-5/2=8, got %d", applied)
	}
	if died {
		t.Error("Player should survive")
	}
	if p.Health != hpBefore-8 {
		t.Errorf("Expected health %d, got %d", hpBefore-8, p.Health)
	}
}

func TestDamagePlayer_MinimumFloor(t *testing.T) {
	p := domain.NewPlayer()
	p.Stats.Agility = 100 // Защита с запасом перекрывает любой удар

	applied, _ := DamagePlayer(p, 3)
	if applied != domain.MinDamage {
		t.Errorf("Defense must not reduce damage below the floor: expected %d, got %d",
			domain.MinDamage, applied)
	}
}

func TestAdjustPlayerHealth_Clamps(t *testing.T) {
	p := domain.NewPlayer()

	AdjustPlayerHealth(p, 1000)
	if p.Health != p.MaxHealth() {
		t.Errorf("Health should clamp at max %d, got %d", p.MaxHealth(), p.Health)
	}

	died := AdjustPlayerHealth(p, -1000)
	if !died {
		t.Error("Dropping to zero should report death")
	}
	if p.Health != 0 {
		t.Errorf("Health should clamp at 0, got %d", p.Health)
	}
}

func TestAdjustPlayerEnergy_Clamps(t *testing.T) {
	p := domain.NewPlayer()

	AdjustPlayerEnergy(p, -1000)
	if p.Energy != 0 {
		t.Errorf("Energy should clamp at 0, got %d", p.Energy)
	}

	AdjustPlayerEnergy(p, 1000)
	if p.Energy != p.MaxEnergy() {
		t.Errorf("Energy should clamp at max %d, got %d", p.MaxEnergy(), p.Energy)
	}
}

func TestDamageNpc_KillCountsAndRemoves(t *testing.T) {
	q := openQuest()
	npc := domain.NewNPC(domain.NPCGoblin, domain.Position{X: 2, Y: 2}, 1)
	q.AddNPC(npc)

	died, complete := DamageNpc(q, npc, 3)
	if died || complete {
		t.Error("3 damage should not kill a 6 hp goblin")
	}

	died, _ = DamageNpc(q, npc, 3)
	if !died {
		t.Error("Goblin should be dead at 0 hp")
	}
	if q.Kills != 1 {
		t.Errorf("Expected kill counter 1, got %d", q.Kills)
	}
	if q.NpcAt(domain.Position{X: 2, Y: 2}) != nil {
		t.Error("Dead NPC must be removed from the collection")
	}
}

func TestDamageNpc_BossDeathCompletesQuest(t *testing.T) {
	p := domain.NewPlayer()
	q := domain.NewQuest(domain.QuestBoss, p)
	boss := domain.NewNPC(domain.NPCFloatingMonstrosity, domain.Position{X: 9, Y: 9}, 1)
	q.AddNPC(boss)

	_, complete := DamageNpc(q, boss, 999)
	if !complete {
		t.Error("Killing the boss should complete a boss quest regardless of the kill counter")
	}
	if !q.Completed {
		t.Error("Quest completion flag should be set")
	}
}

func TestDamageNpc_SlayTargetCompletesQuest(t *testing.T) {
	q := openQuest()
	q.KillTarget = 2

	for i := 0; i < 2; i++ {
		npc := domain.NewNPC(domain.NPCGoblin, domain.Position{X: i, Y: 0}, 1)
		q.AddNPC(npc)
		_, complete := DamageNpc(q, npc, 999)
		if i == 0 && complete {
			t.Error("Quest must not complete before the kill target")
		}
		if i == 1 && !complete {
			t.Error("Reaching the kill target should complete the quest")
		}
	}
}
