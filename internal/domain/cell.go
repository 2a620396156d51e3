package domain

// CellTag - содержимое одной клетки сетки.
// Неотрицательные значения означают "на полу лежит предмет этого типа",
// поэтому enum растет вниз от нуля.
type CellTag int

const (
	CellSolid CellTag = -3 // Сплошная порода, непроходимо
	CellExit  CellTag = -2 // Вход/выход из подземелья
	CellEmpty CellTag = -1 // Пустой коридор
)

// Passable возвращает true, если по клетке в принципе можно ходить
// (наличие NPC и игрока проверяется отдельно, в World Model)
func (t CellTag) Passable() bool {
	return t > CellSolid
}

// Lootable возвращает true, если в клетке лежит предмет
func (t CellTag) Lootable() bool {
	return t >= 0
}

// ItemType возвращает тип предмета, лежащего в клетке.
// Вызывать только если Lootable() == true.
func (t CellTag) ItemType() ItemType {
	return ItemType(t)
}

// String возвращает строковое представление (для логов и дебага)
func (t CellTag) String() string {
	switch t {
	case CellSolid:
		return "SOLID"
	case CellExit:
		return "EXIT"
	case CellEmpty:
		return "EMPTY"
	default:
		if t >= 0 {
			return "LOOT:" + ItemType(t).String()
		}
		return "UNKNOWN"
	}
}
