package domain

// Mode определяет состояние сессии: что сейчас видит игрок
// и какие команды принимаются.
type Mode uint8

const (
	// ModeActive - обычная игра: движение, бой, тики мира
	ModeActive Mode = iota
	// ModeLoot - игрок стоит на клетке с предметом и решает, брать ли
	ModeLoot
	// ModeDead - игрок погиб, мир заморожен до новой вылазки
	ModeDead
	// ModeVictory - квест завершён, игрок вышел через вход
	ModeVictory
)

var modeToString = map[Mode]string{
	ModeActive:  "ACTIVE",
	ModeLoot:    "LOOT",
	ModeDead:    "DEAD",
	ModeVictory: "VICTORY",
}

func (m Mode) String() string {
	if s, ok := modeToString[m]; ok {
		return s
	}
	return "UNKNOWN"
}

// Playing сообщает, идёт ли симуляция мира в этом режиме.
// В ModeLoot мир стоит, пока игрок не решит, брать ли предмет.
func (m Mode) Playing() bool {
	return m == ModeActive
}
