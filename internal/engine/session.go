package engine

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/theDrake/pebblequest-sub000/internal/domain"
	"github.com/theDrake/pebblequest-sub000/internal/engine/handlers"
	"github.com/theDrake/pebblequest-sub000/internal/engine/handlers/actions"
	"github.com/theDrake/pebblequest-sub000/internal/network"
	"github.com/theDrake/pebblequest-sub000/internal/render"
	"github.com/theDrake/pebblequest-sub000/pkg/logger"
	"github.com/theDrake/pebblequest-sub000/pkg/maze"
)

// Session - одна изолированная вылазка одного героя.
// Всё состояние сессии принадлежит её горутине Run: снаружи
// с сессией говорят только через CommandChan.
type Session struct {
	ID     string
	Quest  *domain.Quest
	Player *domain.Player

	mode domain.Mode

	Rng  *rand.Rand
	Seed int64

	renderer   *render.Renderer
	flashTicks int // сколько тиков экран ещё инвертирован

	CurrentTick int

	CommandChan chan domain.InternalCommand
	done        chan struct{}

	hub          *network.Broadcaster
	tickInterval time.Duration

	handlers map[domain.ActionType]handlers.HandlerFunc
}

func NewSession(id string, player *domain.Player, seed int64, hub *network.Broadcaster, tickInterval time.Duration) *Session {
	s := &Session{
		ID:           id,
		Player:       player,
		Rng:          rand.New(rand.NewSource(seed)),
		Seed:         seed,
		renderer:     render.NewRenderer(),
		CommandChan:  make(chan domain.InternalCommand, 32),
		done:         make(chan struct{}),
		hub:          hub,
		tickInterval: tickInterval,
		handlers:     make(map[domain.ActionType]handlers.HandlerFunc),
	}
	s.registerHandlers()
	s.StartQuest(domain.QuestSlay, seed)
	return s
}

func (s *Session) registerHandlers() {
	reg := s.handlers
	reg[domain.ActionInit] = handlers.WithEmptyPayload(actions.HandleInit)
	reg[domain.ActionMoveForward] = handlers.WithEmptyPayload(actions.HandleMoveForward)
	reg[domain.ActionMoveBackward] = handlers.WithEmptyPayload(actions.HandleMoveBackward)
	reg[domain.ActionTurnLeft] = handlers.WithEmptyPayload(actions.HandleTurnLeft)
	reg[domain.ActionTurnRight] = handlers.WithEmptyPayload(actions.HandleTurnRight)
	reg[domain.ActionAttack] = handlers.WithEmptyPayload(actions.HandleAttack)
	reg[domain.ActionEquip] = handlers.WithPayload(actions.HandleEquip)
	reg[domain.ActionTakeLoot] = handlers.WithEmptyPayload(actions.HandleTakeLoot)
	reg[domain.ActionLeaveLoot] = handlers.WithEmptyPayload(actions.HandleLeaveLoot)
	reg[domain.ActionNewQuest] = handlers.WithPayload(actions.HandleNewQuest)
}

// Mode возвращает текущий режим сессии
func (s *Session) Mode() domain.Mode { return s.mode }

// SetMode переключает режим сессии
func (s *Session) SetMode(m domain.Mode) {
	if s.mode == m {
		return
	}
	logger.Log.WithFields(logrus.Fields{
		"session": s.ID,
		"from":    s.mode.String(),
		"to":      m.String(),
	}).Debug("Mode change")
	s.mode = m
}

// StartQuest генерирует новый лабиринт и ставит героя на вход.
// Здоровье и энергия восстанавливаются: новая вылазка - свежие силы.
func (s *Session) StartQuest(t domain.QuestType, seed int64) {
	s.Rng = rand.New(rand.NewSource(seed))
	s.Seed = seed

	q := domain.NewQuest(t, s.Player)
	entrance, _ := maze.Generate(q, s.Rng, maze.RandomOptions(s.Rng))

	s.Player.Pos = entrance
	s.Player.Facing = q.EntranceDir.Opposite()
	s.Player.Health = s.Player.MaxHealth()
	s.Player.Energy = s.Player.MaxEnergy()

	s.Quest = q
	s.CurrentTick = 0
	s.flashTicks = 0
	s.mode = domain.ModeActive

	logger.Log.WithFields(logrus.Fields{
		"session": s.ID,
		"quest":   t.String(),
		"seed":    seed,
	}).Info("Quest started")
}

// Flash запрашивает инверсию экрана на один тик
func (s *Session) Flash() {
	s.flashTicks = 1
}

// Run крутит игровой цикл этой сессии до Stop
func (s *Session) Run() {
	logger.Log.WithField("session", s.ID).Info("Session loop started")

	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case cmd := <-s.CommandChan:
			s.executeCommand(cmd)
		case <-ticker.C:
			s.advanceTick()
		case <-s.done:
			logger.Log.WithField("session", s.ID).Info("Session loop stopped")
			return
		}
	}
}

// Stop завершает цикл Run. Безопасно вызывать один раз.
func (s *Session) Stop() {
	close(s.done)
}

// allowedInMode отсекает команды, бессмысленные в текущем режиме
func allowedInMode(a domain.ActionType, m domain.Mode) bool {
	switch m {
	case domain.ModeActive:
		return a != domain.ActionTakeLoot && a != domain.ActionLeaveLoot
	case domain.ModeLoot:
		switch a {
		case domain.ActionInit, domain.ActionTakeLoot, domain.ActionLeaveLoot, domain.ActionEquip:
			return true
		}
		return false
	default: // мертв или победил: только осмотреться и начать заново
		switch a {
		case domain.ActionInit, domain.ActionNewQuest, domain.ActionEquip:
			return true
		}
		return false
	}
}

func (s *Session) executeCommand(cmd domain.InternalCommand) {
	if !allowedInMode(cmd.Action, s.mode) {
		logger.Log.WithFields(logrus.Fields{
			"session": s.ID,
			"action":  cmd.Action.String(),
			"mode":    s.mode.String(),
		}).Debug("Command rejected by mode")
		return
	}

	handler, ok := s.handlers[cmd.Action]
	if !ok {
		return
	}

	ctx := handlers.Context{
		Quest:  s.Quest,
		Actor:  s.Player,
		Rng:    s.Rng,
		Modes:  s,
		Quests: s,
		Flash:  s.Flash,
	}

	result, err := handler(ctx, cmd.Payload)
	if err != nil {
		logger.Log.WithError(err).WithFields(logrus.Fields{
			"session": s.ID,
			"action":  cmd.Action.String(),
		}).Warn("Command failed")
		return
	}

	if result.Redraw || result.Notice != "" {
		s.publishUpdate(result.Notice)
	}
}

// publishUpdate рендерит кадр и шлёт его подписчику сессии
func (s *Session) publishUpdate(notice string) {
	s.renderer.Draw(s.Quest, s.flashTicks > 0)
	s.hub.SendTo(s.ID, s.buildMessage(notice))
}
