package domain

// StatSet - базовые характеристики. Производные величины (атака, защита,
// максимумы здоровья и энергии) считаются от них и от экипировки.
type StatSet struct {
	Strength  int `json:"strength"`
	Agility   int `json:"agility"`
	Intellect int `json:"intellect"`
}

// StatKind нумерует базовые характеристики для запросов из меню
type StatKind int

const (
	StatStrength StatKind = iota
	StatAgility
	StatIntellect
)

// Value возвращает характеристику по её номеру
func (s StatSet) Value(kind StatKind) int {
	switch kind {
	case StatStrength:
		return s.Strength
	case StatAgility:
		return s.Agility
	case StatIntellect:
		return s.Intellect
	}
	return 0
}

// Inventory - инвентарь игрока: фиксированные слоты под тяжелые предметы
// плюс счетчики камешков по типам.
type Inventory struct {
	HeavyItems [MaxHeavyItems]ItemType // NoItem, если слот пуст
	Pebbles    [NumPebbleTypes]int     // Количество камешков каждого типа
}

// Player - единственный персонаж процесса. Создается при старте,
// мутируется боевой системой, движением и экипировкой.
type Player struct {
	Pos    Position  `json:"pos"`
	Facing Direction `json:"facing"`

	Stats StatSet `json:"stats"`
	Level int     `json:"level"`
	Exp   int     `json:"exp"`

	Health int `json:"health"`
	Energy int `json:"energy"`

	Inventory Inventory `json:"-"`

	// Экипировка: ссылки на типы предметов (NoItem, если пусто)
	EquippedWeapon ItemType `json:"-"`
	EquippedArmor  ItemType `json:"-"`
	EquippedPebble ItemType `json:"-"` // Камешек, вставленный в оружие
}

// NewPlayer создает игрока с характеристиками по умолчанию
func NewPlayer() *Player {
	p := &Player{
		Stats:          StatSet{Strength: 5, Agility: 5, Intellect: 5},
		Level:          1,
		EquippedWeapon: ItemDagger,
		EquippedArmor:  NoItem,
		EquippedPebble: NoItem,
	}
	for i := range p.Inventory.HeavyItems {
		p.Inventory.HeavyItems[i] = NoItem
	}
	p.Inventory.HeavyItems[0] = ItemDagger
	p.Health = p.MaxHealth()
	p.Energy = p.MaxEnergy()
	return p
}

// MaxHealth - производный максимум здоровья
func (p *Player) MaxHealth() int {
	return 10 + 2*p.Stats.Strength + 2*(p.Level-1)
}

// MaxEnergy - производный максимум энергии
func (p *Player) MaxEnergy() int {
	return 10 + p.Stats.Agility + p.Stats.Intellect
}

// PhysicalPower - сила удара до вычета защиты цели
func (p *Player) PhysicalPower() int {
	power := p.Stats.Strength
	if p.EquippedWeapon != NoItem {
		power += p.EquippedWeapon.AttackBonus()
	}
	return power
}

// PhysicalDefense - физическая защита (в бою учитывается половина)
func (p *Player) PhysicalDefense() int {
	def := p.Stats.Agility
	if p.EquippedArmor != NoItem {
		def += p.EquippedArmor.DefenseBonus()
	}
	return def
}

// MagicalPower - сила бросков камешков
func (p *Player) MagicalPower() int {
	return p.Stats.Intellect
}

// HasRangedAttack возвращает true, если текущая экипировка бьет на
// дистанции: лук, либо любое оружие с вставленным камешком
func (p *Player) HasRangedAttack() bool {
	if p.EquippedPebble != NoItem {
		return true
	}
	return p.EquippedWeapon != NoItem && p.EquippedWeapon.Ranged()
}

// PebbleCount возвращает количество камешков данного типа
func (p *Player) PebbleCount(t ItemType) int {
	if !t.IsPebble() {
		return 0
	}
	return p.Inventory.Pebbles[t.PebbleIndex()]
}

// AddPebble добавляет камешек в инвентарь
func (p *Player) AddPebble(t ItemType) {
	if t.IsPebble() {
		p.Inventory.Pebbles[t.PebbleIndex()]++
	}
}

// AddHeavyItem кладет тяжелый предмет в первый свободный слот.
// Возвращает false, если слотов не осталось (молчаливый отказ, не ошибка).
func (p *Player) AddHeavyItem(t ItemType) bool {
	for i := range p.Inventory.HeavyItems {
		if p.Inventory.HeavyItems[i] == NoItem {
			p.Inventory.HeavyItems[i] = t
			return true
		}
	}
	return false
}

// HeavyItemAt возвращает предмет в n-ном слоте инвентаря (для меню)
func (p *Player) HeavyItemAt(n int) ItemType {
	if n < 0 || n >= MaxHeavyItems {
		return NoItem
	}
	return p.Inventory.HeavyItems[n]
}

// StatIfBoosted возвращает значение характеристики, как если бы она была
// усилена на n. Проекция для меню экипировки, состояние игрока не меняет.
func (p *Player) StatIfBoosted(kind StatKind, n int) int {
	return p.Stats.Value(kind) + n
}

// GainExp начисляет опыт и повышает уровень при достижении порога.
// Порог растет линейно: переход с уровня N требует N*10 опыта.
func (p *Player) GainExp(amount int) (leveledUp bool) {
	p.Exp += amount
	for p.Exp >= p.Level*10 {
		p.Exp -= p.Level * 10
		p.Level++
		p.Stats.Strength++
		p.Stats.Agility++
		p.Stats.Intellect++
		// Новый максимум - сразу полное восстановление
		p.Health = p.MaxHealth()
		p.Energy = p.MaxEnergy()
		leveledUp = true
	}
	return leveledUp
}
