package domain

// NPCType определяет базовые характеристики и форму отрисовки
type NPCType uint8

const (
	NPCGoblin NPCType = iota
	NPCOrc
	NPCShadow
	NPCBeast
	NPCWizard
	NPCFloatingMonstrosity // Босс
	NumNPCTypes
)

// NumSpawnableNPCTypes - сколько типов участвует в случайном спавне
// (босс спавнится только генератором лабиринта)
const NumSpawnableNPCTypes = int(NumNPCTypes) - 1

var npcTypeToString = map[NPCType]string{
	NPCGoblin:              "GOBLIN",
	NPCOrc:                 "ORC",
	NPCShadow:              "SHADOW",
	NPCBeast:               "BEAST",
	NPCWizard:              "WIZARD",
	NPCFloatingMonstrosity: "FLOATING_MONSTROSITY",
}

func (t NPCType) String() string {
	if val, ok := npcTypeToString[t]; ok {
		return val
	}
	return "UNKNOWN"
}

// StatusEffect - индексы в массиве счетчиков эффектов
type StatusEffect uint8

const (
	StatusStunned StatusEffect = iota
	StatusWeakened
	StatusBurning
	NumStatusEffects
)

// NPC - один противник. Живет в коллекции активного квеста,
// создается спавном, убирается из коллекции при смерти.
type NPC struct {
	Pos  Position `json:"pos"`
	Type NPCType  `json:"type"`

	Health  int `json:"health"`
	Power   int `json:"power"`
	Defense int `json:"defense"`

	// Счетчики эффектов: значение - оставшиеся тики действия
	Status [NumStatusEffects]int `json:"-"`
}

// baseStats - базовые здоровье/атака/защита каждого типа
var baseStats = map[NPCType]struct{ health, power, defense int }{
	NPCGoblin:              {health: 6, power: 2, defense: 1},
	NPCOrc:                 {health: 10, power: 3, defense: 2},
	NPCShadow:              {health: 5, power: 4, defense: 0},
	NPCBeast:               {health: 8, power: 3, defense: 1},
	NPCWizard:              {health: 6, power: 4, defense: 1},
	NPCFloatingMonstrosity: {health: 20, power: 5, defense: 3},
}

// NewNPC создает NPC указанного типа. Характеристики масштабируются
// от уровня игрока на момент спавна.
func NewNPC(t NPCType, pos Position, playerLevel int) *NPC {
	base := baseStats[t]
	scale := playerLevel - 1
	return &NPC{
		Pos:     pos,
		Type:    t,
		Health:  base.health + 2*scale,
		Power:   base.power + scale,
		Defense: base.defense + scale/2,
	}
}

// TickStatus уменьшает счетчики эффектов на единицу (до нуля)
func (n *NPC) TickStatus() {
	for i := range n.Status {
		if n.Status[i] > 0 {
			n.Status[i]--
		}
	}
}

// Afflicted возвращает true, если эффект сейчас действует
func (n *NPC) Afflicted(e StatusEffect) bool {
	return n.Status[e] > 0
}

// ExpValue - опыт за убийство
func (n *NPC) ExpValue() int {
	return baseStats[n.Type].health / 2
}
