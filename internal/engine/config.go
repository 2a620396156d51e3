package engine

import "time"

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно. Сид квеста N-й сессии выводится из него.
	Seed int64

	// SaveDir - каталог файлов сохранения героев.
	SaveDir string

	// TickInterval - период тика мира. Секунда, как на часах.
	TickInterval time.Duration
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:         time.Now().UnixNano(),
		SaveDir:      "saves",
		TickInterval: time.Second,
	}
}
