package agent

import (
	"math/rand"

	"github.com/theDrake/pebblequest-sub000/internal/engine"
	"github.com/theDrake/pebblequest-sub000/pkg/api"
	"github.com/theDrake/pebblequest-sub000/pkg/logger"
	"github.com/theDrake/pebblequest-sub000/pkg/utils"
)

// Bot - "игрок-компьютер" (Headless Agent).
// Он подключается к движку так же, как обычный клиент: регистрируется
// в хабе, получает кадры и отвечает командами. Мозга у него немного -
// он нужен как дымовой тест живого сервера и генератор нагрузки.
//
// Жизненный цикл:
//  1. NewBot -> Attach сессии, регистрация в хабе, личный Inbox.
//  2. Run -> в горутине слушает Inbox и реагирует на каждый кадр.
type Bot struct {
	SessionID string
	Service   *engine.GameService
	Inbox     chan api.ServerMessage
	rng       *rand.Rand
	lastTick  int
	lastMode  string
}

func NewBot(sessionID string, service *engine.GameService) *Bot {
	logger.Log.WithField("session", sessionID).Info("Creating bot agent")
	service.Attach(sessionID)
	return &Bot{
		SessionID: sessionID,
		Service:   service,
		Inbox:     service.Hub.Register(sessionID),
		rng:       rand.New(rand.NewSource(utils.StringToSeed(sessionID))),
	}
}

// Run запускает цикл жизни бота. Должен быть запущен в горутине.
func (b *Bot) Run() {
	defer b.Service.Hub.Unregister(b.SessionID, b.Inbox)

	for msg := range b.Inbox {
		b.react(msg)
	}
	logger.Log.WithField("session", b.SessionID).Info("Bot agent shut down")
}

// react выбирает ответ на кадр по режиму сессии.
// Реагирует только на смену тика или режима, иначе эхо собственных
// команд раскрутило бы бота в бесконечный шторм.
func (b *Bot) react(msg api.ServerMessage) {
	if msg.Tick == b.lastTick && msg.Mode == b.lastMode {
		return
	}
	b.lastTick = msg.Tick
	b.lastMode = msg.Mode

	switch msg.Mode {
	case "LOOT":
		b.send("TAKE_LOOT")
	case "DEAD", "VICTORY":
		b.send("NEW_QUEST")
	case "ACTIVE":
		b.wander()
	}
}

// wander - случайная прогулка с периодическими взмахами оружием
func (b *Bot) wander() {
	switch b.rng.Intn(6) {
	case 0:
		b.send("TURN_LEFT")
	case 1:
		b.send("TURN_RIGHT")
	case 2:
		b.send("ATTACK")
	default:
		b.send("MOVE_FORWARD")
	}
}

func (b *Bot) send(action string) {
	b.Service.ProcessCommand(api.ClientCommand{
		Token:  b.SessionID,
		Action: action,
	})
}
