package domain

// Размеры мира и обзора
const (
	GridSize           = 10 // Карта всегда квадратная
	MaxVisibilityDepth = 6  // Дальше этой глубины игрок ничего не видит
	NumDirections      = 4
)

// Боевые константы
const (
	MinDamage       = 2 // Нижний порог урона: защита не может обнулить удар
	MinActionEnergy = 2 // Стоимость активного действия (атака, бросок камня)
)

// Регенерация (раз в тик)
const (
	HealthRegenPerTick = 1
	EnergyRegenPerTick = 1
)

// Спавн NPC
const (
	MaxLiveNPCs      = 5 // Потолок одновременно живых NPC
	SpawnChanceDenom = 4 // Шанс спавна за тик: 1 из 4
)

// Инвентарь
const (
	MaxHeavyItems = 6 // Слоты под тяжелые предметы (оружие, броня)
)

// Квесты
const (
	DefaultKillTarget = 10
)
