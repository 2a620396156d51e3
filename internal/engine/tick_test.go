package engine

import (
	"testing"

	"github.com/theDrake/pebblequest-sub000/internal/domain"
)

func TestTickAdjacentNpcDealsContactDamage(t *testing.T) {
	s, _ := newTestSession(t, 7)
	openTestQuest(s)
	beside := s.Player.Pos.Step(domain.East)
	s.Quest.AddNPC(&domain.NPC{Pos: beside, Type: domain.NPCOrc, Health: 10, Power: 20})

	before := s.Player.Health
	s.advanceTick()

	// Урон контакта минус регенерация этого же тика
	lost := before - s.Player.Health
	if lost <= 0 {
		t.Errorf("hero must lose health to contact damage, lost %d", lost)
	}
	if s.Quest.NpcAt(beside) == nil {
		t.Errorf("attacking NPC must hold position")
	}
}

func TestTickDistantNpcPursues(t *testing.T) {
	s, _ := newTestSession(t, 7)
	openTestQuest(s)
	far := domain.Position{X: s.Player.Pos.X, Y: s.Player.Pos.Y - 4}
	npc := &domain.NPC{Pos: far, Type: domain.NPCGoblin, Health: 10, Power: 1}
	s.Quest.AddNPC(npc)

	s.advanceTick()

	if npc.Pos.ManhattanTo(s.Player.Pos) >= far.ManhattanTo(s.Player.Pos) {
		t.Errorf("NPC must close the distance, was at %v now %v", far, npc.Pos)
	}
}

func TestTickRegeneratesHeroAtRest(t *testing.T) {
	s, _ := newTestSession(t, 7)
	openTestQuest(s)
	s.Player.Health = 3
	s.Player.Energy = 3

	s.advanceTick()

	if s.Player.Health != 3+domain.HealthRegenPerTick {
		t.Errorf("health = %d, want %d", s.Player.Health, 3+domain.HealthRegenPerTick)
	}
	if s.Player.Energy != 3+domain.EnergyRegenPerTick {
		t.Errorf("energy = %d, want %d", s.Player.Energy, 3+domain.EnergyRegenPerTick)
	}
}

func TestTickLethalContactKillsHero(t *testing.T) {
	s, inbox := newTestSession(t, 7)
	openTestQuest(s)
	s.Player.Health = 1
	beside := s.Player.Pos.Step(domain.West)
	s.Quest.AddNPC(&domain.NPC{Pos: beside, Type: domain.NPCBeast, Health: 10, Power: 30})

	s.advanceTick()

	if s.Mode() != domain.ModeDead {
		t.Fatalf("mode = %v, want DEAD", s.Mode())
	}
	msg, _ := drain(inbox)
	if msg.Mode != "DEAD" {
		t.Errorf("published mode = %q, want DEAD", msg.Mode)
	}
	if msg.Notice == "" {
		t.Errorf("death must carry a notice")
	}
}

func TestTickStunnedNpcSkipsTurn(t *testing.T) {
	s, _ := newTestSession(t, 7)
	openTestQuest(s)
	beside := s.Player.Pos.Step(domain.East)
	npc := &domain.NPC{Pos: beside, Type: domain.NPCOrc, Health: 10, Power: 20}
	npc.Status[domain.StatusStunned] = 2
	s.Quest.AddNPC(npc)
	s.Player.Health = 5

	s.advanceTick()

	// Оглушенный не бьет: только регенерация
	if s.Player.Health != 5+domain.HealthRegenPerTick {
		t.Errorf("stunned NPC must not attack, health = %d", s.Player.Health)
	}
	if npc.Pos != beside {
		t.Errorf("stunned NPC must not move")
	}
}

func TestTickBurningNpcTakesDamageAndCanDie(t *testing.T) {
	s, _ := newTestSession(t, 7)
	openTestQuest(s)
	far := domain.Position{X: 1, Y: 1}
	npc := &domain.NPC{Pos: far, Type: domain.NPCGoblin, Health: 1, Power: 1}
	npc.Status[domain.StatusBurning] = 3
	s.Quest.AddNPC(npc)

	s.advanceTick()

	if s.Quest.LiveNPCCount() != 0 {
		t.Errorf("burning NPC with 1 hp must die")
	}
}

func TestTickWeakenedNpcHitsSofter(t *testing.T) {
	s, _ := newTestSession(t, 7)
	openTestQuest(s)
	beside := s.Player.Pos.Step(domain.East)
	npc := &domain.NPC{Pos: beside, Type: domain.NPCOrc, Health: 10, Power: 40}
	npc.Status[domain.StatusWeakened] = 5
	s.Quest.AddNPC(npc)

	full := s.Player.MaxHealth()
	s.Player.Health = full
	s.advanceTick()
	weakenedLoss := full - s.Player.Health

	npc.Status[domain.StatusWeakened] = 0
	s.Player.Health = full
	s.advanceTick()
	fullLoss := full - s.Player.Health

	if weakenedLoss >= fullLoss {
		t.Errorf("weakened hit (%d) must be softer than full hit (%d)", weakenedLoss, fullLoss)
	}
}

func TestTickFrozenOutsideActiveMode(t *testing.T) {
	s, inbox := newTestSession(t, 7)
	openTestQuest(s)
	s.SetMode(domain.ModeLoot)
	drain(inbox)
	tick := s.CurrentTick

	s.advanceTick()

	if s.CurrentTick != tick {
		t.Errorf("world must not advance in loot mode")
	}
	if _, n := drain(inbox); n != 0 {
		t.Errorf("frozen world must not publish frames")
	}
}

func TestTickSpawnRespectsVisibilityAndCap(t *testing.T) {
	s, _ := newTestSession(t, 7)
	openTestQuest(s)
	// У северного края: дальняя половина сетки лежит за радиусом обзора
	s.Player.Pos = domain.Position{X: domain.GridSize / 2, Y: 0}

	// Сотня тиков: спавн обязан сработать, но не выйти за лимит
	for i := 0; i < 100; i++ {
		for _, npc := range s.Quest.NPCs {
			// Убираем врагов от героя, чтобы никто его не убил
			npc.Pos = domain.Position{X: 0, Y: 0}
			npc.Power = 0
		}
		s.advanceTick()
		if s.Quest.LiveNPCCount() > domain.MaxLiveNPCs {
			t.Fatalf("live NPC count %d exceeds cap", s.Quest.LiveNPCCount())
		}
	}
	if s.Quest.LiveNPCCount() == 0 {
		t.Errorf("spawns must eventually fire over 100 ticks")
	}
}

func TestTickIncrementsClock(t *testing.T) {
	s, inbox := newTestSession(t, 7)
	openTestQuest(s)
	drain(inbox)

	s.advanceTick()
	s.advanceTick()

	if s.CurrentTick != 2 {
		t.Errorf("tick = %d, want 2", s.CurrentTick)
	}
	msg, n := drain(inbox)
	if n != 2 {
		t.Errorf("each tick must publish a frame, got %d", n)
	}
	if msg.Tick != 2 {
		t.Errorf("published tick = %d, want 2", msg.Tick)
	}
}
