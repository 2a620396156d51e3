package domain

// ItemType - тип предмета. Первые значения - "тяжелые" предметы
// (занимают слот инвентаря), дальше идут типы камешков-оберегов
// (складываются в счетчики по типу).
type ItemType int

const (
	ItemDagger ItemType = iota
	ItemSword
	ItemAxe
	ItemBow
	ItemStaff
	ItemShield
	ItemArmor
	ItemRobe
	firstPebbleType
)

// Типы камешков. PebbleOf* - расходуемые обереги.
const (
	PebbleOfFire ItemType = firstPebbleType + iota
	PebbleOfIce
	PebbleOfThunder
	PebbleOfLife
	PebbleOfDeath
	itemTypeCount
)

const NumPebbleTypes = int(itemTypeCount - firstPebbleType)

// NoItem - маркер пустого слота инвентаря / отсутствия экипировки
const NoItem ItemType = -1

var itemTypeToString = map[ItemType]string{
	ItemDagger:      "DAGGER",
	ItemSword:       "SWORD",
	ItemAxe:         "AXE",
	ItemBow:         "BOW",
	ItemStaff:       "STAFF",
	ItemShield:      "SHIELD",
	ItemArmor:       "ARMOR",
	ItemRobe:        "ROBE",
	PebbleOfFire:    "PEBBLE_OF_FIRE",
	PebbleOfIce:     "PEBBLE_OF_ICE",
	PebbleOfThunder: "PEBBLE_OF_THUNDER",
	PebbleOfLife:    "PEBBLE_OF_LIFE",
	PebbleOfDeath:   "PEBBLE_OF_DEATH",
}

func (t ItemType) String() string {
	if val, ok := itemTypeToString[t]; ok {
		return val
	}
	return "UNKNOWN"
}

// Valid возвращает true для любого известного типа предмета
func (t ItemType) Valid() bool {
	return t >= 0 && t < itemTypeCount
}

// IsPebble возвращает true для расходуемых камешков
func (t ItemType) IsPebble() bool {
	return t >= firstPebbleType && t < itemTypeCount
}

// PebbleIndex возвращает индекс камешка в массиве счетчиков инвентаря
func (t ItemType) PebbleIndex() int {
	return int(t - firstPebbleType)
}

// PebbleByIndex - обратное преобразование индекса счетчика в тип
func PebbleByIndex(i int) ItemType {
	return firstPebbleType + ItemType(i)
}

// IsWeapon возвращает true для предметов, экипируемых в руку
func (t ItemType) IsWeapon() bool {
	switch t {
	case ItemDagger, ItemSword, ItemAxe, ItemBow, ItemStaff:
		return true
	}
	return false
}

// IsArmor возвращает true для предметов, экипируемых на тело
func (t ItemType) IsArmor() bool {
	switch t {
	case ItemShield, ItemArmor, ItemRobe:
		return true
	}
	return false
}

// Ranged возвращает true, если оружие бьет на дистанции само по себе.
// Остальное оружие становится дистанционным только с вставленным
// камешком (проверяется на уровне игрока).
func (t ItemType) Ranged() bool {
	return t == ItemBow
}

// AttackBonus возвращает прибавку к физической атаке
func (t ItemType) AttackBonus() int {
	switch t {
	case ItemDagger:
		return 2
	case ItemSword:
		return 4
	case ItemAxe:
		return 5
	case ItemBow:
		return 3
	case ItemStaff:
		return 2
	}
	return 0
}

// DefenseBonus возвращает прибавку к физической защите
func (t ItemType) DefenseBonus() int {
	switch t {
	case ItemShield:
		return 3
	case ItemArmor:
		return 5
	case ItemRobe:
		return 1
	}
	return 0
}
