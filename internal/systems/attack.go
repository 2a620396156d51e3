package systems

import (
	"github.com/theDrake/pebblequest-sub000/internal/domain"
	"github.com/theDrake/pebblequest-sub000/pkg/logger"
)

// AttackResult - итог атаки игрока
type AttackResult struct {
	Performed     bool // false: не хватило энергии (молчаливый пропуск)
	Hit           bool
	Target        *domain.NPC // nil, если удар пришелся в пустоту или в стену
	Damage        int
	TargetDied    bool
	QuestComplete bool
	ExpGained     int
	LeveledUp     bool
}

// ResolveAttack разрешает атаку игрока строго по курсу.
//
// Клетки сканируются по одной от игрока вперед до первой клетки с NPC
// либо первой непроходимой. Дистанционная атака (лук или вставленный
// камешек) добивает до этого предела; ближний бой разрешается только
// против соседней клетки. При нехватке энергии действие молча
// пропускается.
func ResolveAttack(q *domain.Quest, p *domain.Player) AttackResult {
	if p.Energy < domain.MinActionEnergy {
		logger.WithComponent("combat_system").
			WithField("energy", p.Energy).
			Debug("Attack skipped: not enough energy.")
		return AttackResult{}
	}

	maxReach := 1
	if p.HasRangedAttack() {
		maxReach = domain.MaxVisibilityDepth
	}

	var target *domain.NPC
	scan := p.Pos
	for depth := 1; depth <= maxReach; depth++ {
		scan = scan.Step(p.Facing)
		if npc := q.NpcAt(scan); npc != nil {
			target = npc
			break
		}
		if !q.CellAt(scan).Passable() {
			break
		}
	}

	AdjustPlayerEnergy(p, -domain.MinActionEnergy)
	res := AttackResult{Performed: true}

	if target == nil {
		return res
	}

	// Защита цели вычитается здесь: DamageNpc получает уже чистый урон
	power := p.PhysicalPower()
	if p.EquippedPebble != domain.NoItem {
		power += p.MagicalPower()
	}
	damage := power - target.Defense
	if damage < domain.MinDamage {
		damage = domain.MinDamage
	}

	res.Hit = true
	res.Target = target
	res.Damage = damage
	res.TargetDied, res.QuestComplete = DamageNpc(q, target, damage)

	if res.TargetDied {
		res.ExpGained = target.ExpValue()
		res.LeveledUp = p.GainExp(res.ExpGained)
	} else {
		inflictPebbleEffect(p.EquippedPebble, target)
	}

	return res
}

// Длительности эффектов от камешков, в тиках
const (
	burnDuration   = 3
	stunDuration   = 2
	weakenDuration = 3
)

// inflictPebbleEffect накладывает эффект стихии на выжившую цель
func inflictPebbleEffect(pebble domain.ItemType, target *domain.NPC) {
	switch pebble {
	case domain.PebbleOfFire:
		target.Status[domain.StatusBurning] = burnDuration
	case domain.PebbleOfIce:
		target.Status[domain.StatusStunned] = stunDuration
	case domain.PebbleOfThunder:
		target.Status[domain.StatusWeakened] = weakenDuration
	}
}
