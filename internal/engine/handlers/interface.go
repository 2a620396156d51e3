package handlers

import (
	"encoding/json"
	"math/rand"

	"github.com/theDrake/pebblequest-sub000/internal/domain"
)

// ModeSwitcher позволяет хендлеру переключить режим сессии
// (бой -> лут, победа, смерть), не зная о самой сессии.
type ModeSwitcher interface {
	SetMode(m domain.Mode)
	Mode() domain.Mode
}

// QuestStarter запускает новый квест вместо текущего.
type QuestStarter interface {
	StartQuest(t domain.QuestType, seed int64)
}

// Context передает хендлеру состояние сессии.
// Передаются ссылки: хендлер мутирует мир напрямую.
type Context struct {
	Quest *domain.Quest
	Actor *domain.Player
	Rng   *rand.Rand

	Modes  ModeSwitcher
	Quests QuestStarter

	// Flash запрашивает одноразовую вспышку экрана (удар по врагу)
	Flash func()
}

// Result - результат выполнения команды.
// Хендлер не пишет клиенту напрямую, он возвращает данные.
type Result struct {
	Notice string // Текст уведомления для игрока
	Redraw bool   // Нужна ли перерисовка кадра
}

// HandlerFunc - контракт любой команды (MOVE_FORWARD, ATTACK, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - пустой успешный ответ
func EmptyResult() Result {
	return Result{}
}
