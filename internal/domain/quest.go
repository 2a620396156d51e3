package domain

// QuestType - тип задания, определяет условие победы и начинку лабиринта
type QuestType uint8

const (
	QuestSlay QuestType = iota // Убить заданное число NPC
	QuestBoss                  // Убить босса, посаженного у выхода
)

var questTypeToString = map[QuestType]string{
	QuestSlay: "SLAY",
	QuestBoss: "BOSS",
}

func (t QuestType) String() string {
	if val, ok := questTypeToString[t]; ok {
		return val
	}
	return "UNKNOWN"
}

// Quest - активный мир: сетка, вход/выход, коллекция NPC и прогресс.
// Создается при старте квеста, уничтожается при победе, провале или
// смерти. Единственный владелец сетки; все остальные компоненты ходят
// через примитивы World Model ниже и не трогают массив напрямую.
type Quest struct {
	Grid [GridSize][GridSize]CellTag

	Type        QuestType
	Entrance    Position
	Exit        Position
	EntranceDir Direction // Куда "наружу": шаг в эту сторону со входа завершает квест

	KillTarget int
	Kills      int
	Completed  bool

	// NPC хранятся в порядке вставки. Удаление - со сдвигом,
	// чтобы порядок обхода в тике оставался стабильным.
	NPCs []*NPC

	Player *Player
}

// NewQuest создает квест с полностью заполненной (Solid) сеткой.
// Лабиринт прорезается генератором отдельно.
func NewQuest(t QuestType, player *Player) *Quest {
	q := &Quest{
		Type:       t,
		KillTarget: DefaultKillTarget,
		Player:     player,
	}
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			q.Grid[y][x] = CellSolid
		}
	}
	return q
}

// InBounds проверяет, что точка лежит внутри сетки
func (q *Quest) InBounds(p Position) bool {
	return p.X >= 0 && p.X < GridSize && p.Y >= 0 && p.Y < GridSize
}

// CellAt возвращает тег клетки. Все, что за границами карты,
// неотличимо от сплошной породы - это сознательное решение:
// вызывающим не нужны отдельные проверки границ.
func (q *Quest) CellAt(p Position) CellTag {
	if !q.InBounds(p) {
		return CellSolid
	}
	return q.Grid[p.Y][p.X]
}

// SetCell записывает тег клетки. Запись за границы молча игнорируется.
func (q *Quest) SetCell(p Position, tag CellTag) {
	if !q.InBounds(p) {
		return
	}
	q.Grid[p.Y][p.X] = tag
}

// NpcAt возвращает NPC в клетке или nil
func (q *Quest) NpcAt(p Position) *NPC {
	for _, n := range q.NPCs {
		if n.Pos == p {
			return n
		}
	}
	return nil
}

// IsOccupiable возвращает true, если в клетку можно встать:
// в границах, проходима, не занята игроком и не занята NPC
func (q *Quest) IsOccupiable(p Position) bool {
	if !q.InBounds(p) {
		return false
	}
	if !q.CellAt(p).Passable() {
		return false
	}
	if q.Player != nil && q.Player.Pos == p {
		return false
	}
	return q.NpcAt(p) == nil
}

// AddNPC добавляет NPC в конец коллекции
func (q *Quest) AddNPC(n *NPC) {
	q.NPCs = append(q.NPCs, n)
}

// RemoveNPC убирает NPC из коллекции, сохраняя порядок остальных
func (q *Quest) RemoveNPC(target *NPC) {
	for i, n := range q.NPCs {
		if n == target {
			q.NPCs = append(q.NPCs[:i], q.NPCs[i+1:]...)
			return
		}
	}
}

// LiveNPCCount возвращает число живых NPC
func (q *Quest) LiveNPCCount() int {
	return len(q.NPCs)
}
