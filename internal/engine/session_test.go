package engine

import (
	"testing"

	"github.com/theDrake/pebblequest-sub000/internal/domain"
)

func TestNewSessionPlacesHeroAtEntrance(t *testing.T) {
	s, _ := newTestSession(t, 42)

	if s.Mode() != domain.ModeActive {
		t.Fatalf("mode = %v, want ACTIVE", s.Mode())
	}
	if s.Player.Pos != s.Quest.Entrance {
		t.Errorf("hero at %v, entrance at %v", s.Player.Pos, s.Quest.Entrance)
	}
	if s.Player.Facing != s.Quest.EntranceDir.Opposite() {
		t.Errorf("hero must face into the maze")
	}
	if s.Player.Health != s.Player.MaxHealth() {
		t.Errorf("hero must start at full health")
	}
}

func TestSessionDeterministicBySeed(t *testing.T) {
	a, _ := newTestSession(t, 1234)
	b, _ := newTestSession(t, 1234)

	if a.Quest.Entrance != b.Quest.Entrance || a.Quest.Exit != b.Quest.Exit {
		t.Errorf("same seed must generate the same maze")
	}
	for y := 0; y < domain.GridSize; y++ {
		for x := 0; x < domain.GridSize; x++ {
			p := domain.Position{X: x, Y: y}
			if a.Quest.CellAt(p) != b.Quest.CellAt(p) {
				t.Fatalf("grids differ at %v", p)
			}
		}
	}
}

func TestTurnCommandsRotateFacing(t *testing.T) {
	s, inbox := newTestSession(t, 7)
	openTestQuest(s)

	s.executeCommand(command(domain.ActionTurnRight, ""))
	if s.Player.Facing != domain.East {
		t.Errorf("facing = %v after TURN_RIGHT, want EAST", s.Player.Facing)
	}

	s.executeCommand(command(domain.ActionTurnLeft, ""))
	s.executeCommand(command(domain.ActionTurnLeft, ""))
	if s.Player.Facing != domain.West {
		t.Errorf("facing = %v, want WEST", s.Player.Facing)
	}

	if _, n := drain(inbox); n != 3 {
		t.Errorf("each turn must publish a frame, got %d", n)
	}
}

func TestMoveIntoWallPublishesNothing(t *testing.T) {
	s, inbox := newTestSession(t, 7)
	openTestQuest(s)
	ahead := s.Player.Pos.Step(domain.North)
	s.Quest.SetCell(ahead, domain.CellSolid)
	drain(inbox)

	before := s.Player.Pos
	s.executeCommand(command(domain.ActionMoveForward, ""))

	if s.Player.Pos != before {
		t.Errorf("hero moved through a wall")
	}
	if _, n := drain(inbox); n != 0 {
		t.Errorf("blocked move must stay silent, got %d frames", n)
	}
}

func TestMoveOntoLootEntersLootMode(t *testing.T) {
	s, inbox := newTestSession(t, 7)
	openTestQuest(s)
	ahead := s.Player.Pos.Step(domain.North)
	s.Quest.SetCell(ahead, domain.CellTag(domain.ItemShield))

	s.executeCommand(command(domain.ActionMoveForward, ""))

	if s.Mode() != domain.ModeLoot {
		t.Fatalf("mode = %v, want LOOT", s.Mode())
	}
	msg, _ := drain(inbox)
	if msg.Mode != "LOOT" {
		t.Errorf("published mode = %q, want LOOT", msg.Mode)
	}

	// Движение в режиме лута отсекается
	before := s.Player.Pos
	s.executeCommand(command(domain.ActionMoveForward, ""))
	if s.Player.Pos != before {
		t.Errorf("movement must be rejected in loot mode")
	}
}

func TestTakeLootAddsItemAndClearsCell(t *testing.T) {
	s, _ := newTestSession(t, 7)
	openTestQuest(s)
	ahead := s.Player.Pos.Step(domain.North)
	s.Quest.SetCell(ahead, domain.CellTag(domain.ItemShield))
	s.executeCommand(command(domain.ActionMoveForward, ""))

	s.executeCommand(command(domain.ActionTakeLoot, ""))

	if s.Mode() != domain.ModeActive {
		t.Errorf("mode = %v after TAKE_LOOT, want ACTIVE", s.Mode())
	}
	if s.Quest.CellAt(s.Player.Pos) != domain.CellEmpty {
		t.Errorf("loot cell must become empty")
	}
	found := false
	for i := 0; i < domain.MaxHeavyItems; i++ {
		if s.Player.HeavyItemAt(i) == domain.ItemShield {
			found = true
		}
	}
	if !found {
		t.Errorf("shield must land in the backpack")
	}
}

func TestLeaveLootKeepsItemOnFloor(t *testing.T) {
	s, _ := newTestSession(t, 7)
	openTestQuest(s)
	ahead := s.Player.Pos.Step(domain.North)
	s.Quest.SetCell(ahead, domain.CellTag(domain.ItemAxe))
	s.executeCommand(command(domain.ActionMoveForward, ""))

	s.executeCommand(command(domain.ActionLeaveLoot, ""))

	if s.Mode() != domain.ModeActive {
		t.Errorf("mode = %v, want ACTIVE", s.Mode())
	}
	if s.Quest.CellAt(s.Player.Pos).ItemType() != domain.ItemAxe {
		t.Errorf("axe must stay on the floor")
	}
}

func TestAttackCommandHitsAdjacentNpc(t *testing.T) {
	s, _ := newTestSession(t, 7)
	openTestQuest(s)
	ahead := s.Player.Pos.Step(domain.North)
	npc := &domain.NPC{Pos: ahead, Type: domain.NPCOrc, Health: 50, Defense: 0}
	s.Quest.AddNPC(npc)

	s.executeCommand(command(domain.ActionAttack, ""))

	if npc.Health == 50 {
		t.Errorf("adjacent NPC must take damage")
	}
	if s.flashTicks == 0 {
		t.Errorf("hit must schedule a screen flash")
	}
}

func TestEquipCommand(t *testing.T) {
	s, _ := newTestSession(t, 7)
	openTestQuest(s)
	s.Player.AddHeavyItem(domain.ItemSword) // слот 1: в нулевом кинжал

	s.executeCommand(command(domain.ActionEquip, `{"slot":1}`))

	if s.Player.EquippedWeapon != domain.ItemSword {
		t.Errorf("weapon = %v, want SWORD", s.Player.EquippedWeapon)
	}
}

func TestEquipRejectsBadSlot(t *testing.T) {
	s, _ := newTestSession(t, 7)
	openTestQuest(s)
	before := s.Player.EquippedWeapon

	s.executeCommand(command(domain.ActionEquip, `{"slot":99}`))
	if s.Player.EquippedWeapon != before {
		t.Errorf("out of range slot must not change equipment")
	}

	s.executeCommand(command(domain.ActionEquip, `{"slot":-1}`))
	if s.Player.EquippedWeapon != before {
		t.Errorf("negative slot must not change equipment")
	}
}

func TestExitThroughEntranceEndsQuest(t *testing.T) {
	s, _ := newTestSession(t, 7)
	openTestQuest(s)
	s.Quest.Entrance = s.Player.Pos
	s.Quest.EntranceDir = domain.North
	s.Player.Facing = domain.North
	s.Quest.Completed = true

	s.executeCommand(command(domain.ActionMoveForward, ""))

	if s.Mode() != domain.ModeVictory {
		t.Errorf("mode = %v, want VICTORY", s.Mode())
	}
}

func TestNewQuestAfterVictory(t *testing.T) {
	s, _ := newTestSession(t, 7)
	openTestQuest(s)
	s.SetMode(domain.ModeVictory)
	s.Player.Health = 1

	s.executeCommand(command(domain.ActionNewQuest, `{"questType":"BOSS","seed":99}`))

	if s.Mode() != domain.ModeActive {
		t.Fatalf("mode = %v, want ACTIVE", s.Mode())
	}
	if s.Quest.Type != domain.QuestBoss {
		t.Errorf("quest type = %v, want BOSS", s.Quest.Type)
	}
	if s.Player.Health != s.Player.MaxHealth() {
		t.Errorf("new quest must restore health")
	}
	if s.Quest.LiveNPCCount() == 0 {
		t.Errorf("boss quest must seed the boss")
	}
}

func TestCommandsRejectedWhenDead(t *testing.T) {
	s, _ := newTestSession(t, 7)
	openTestQuest(s)
	s.SetMode(domain.ModeDead)
	before := s.Player.Pos

	s.executeCommand(command(domain.ActionMoveForward, ""))
	s.executeCommand(command(domain.ActionAttack, ""))

	if s.Player.Pos != before {
		t.Errorf("dead hero must not move")
	}
}
