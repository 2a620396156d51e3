package engine

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/theDrake/pebblequest-sub000/internal/domain"
	"github.com/theDrake/pebblequest-sub000/internal/network"
	"github.com/theDrake/pebblequest-sub000/internal/storage"
	"github.com/theDrake/pebblequest-sub000/pkg/api"
	"github.com/theDrake/pebblequest-sub000/pkg/logger"
	"github.com/theDrake/pebblequest-sub000/pkg/utils"
)

// GameService владеет всеми живыми сессиями и их общими сервисами:
// хабом рассылки и хранилищем героев.
type GameService struct {
	cfg   Config
	Hub   *network.Broadcaster
	Store *storage.PlayerStore

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewService(cfg Config) *GameService {
	return &GameService{
		cfg:      cfg,
		Hub:      network.NewBroadcaster(),
		Store:    storage.NewPlayerStore(cfg.SaveDir),
		sessions: make(map[string]*Session),
	}
}

// Attach возвращает сессию для токена, создавая её при первом входе.
// Герой поднимается из сохранения; новый токен получает нового героя.
func (g *GameService) Attach(token string) *Session {
	g.mu.Lock()
	defer g.mu.Unlock()

	if s, ok := g.sessions[token]; ok {
		return s
	}

	player, err := g.Store.Load(token)
	switch {
	case err == nil:
		logger.Log.WithField("session", token).Info("Hero loaded from save")
	case os.IsNotExist(err):
		player = domain.NewPlayer()
		logger.Log.WithField("session", token).Info("New hero created")
	default:
		player = domain.NewPlayer()
		logger.Log.WithError(err).WithField("session", token).
			Warn("Save file unreadable, starting fresh hero")
	}

	// Сид квеста детерминирован токеном: тот же герой - тот же мир
	seed := g.cfg.Seed + utils.StringToSeed(token)

	s := NewSession(token, player, seed, g.Hub, g.cfg.TickInterval)
	g.sessions[token] = s
	go s.Run()

	return s
}

// Detach останавливает сессию и сохраняет героя
func (g *GameService) Detach(token string) {
	g.mu.Lock()
	s, ok := g.sessions[token]
	if ok {
		delete(g.sessions, token)
	}
	g.mu.Unlock()

	if !ok {
		return
	}

	s.Stop()
	if err := g.Store.Save(token, s.Player); err != nil {
		logger.Log.WithError(err).WithField("session", token).Error("Failed to save hero")
		return
	}
	logger.Log.WithField("session", token).Info("Hero saved")
}

// ProcessCommand принимает команду от внешнего мира (WebSocket)
func (g *GameService) ProcessCommand(externalCmd api.ClientCommand) {
	actionType := domain.ParseAction(externalCmd.Action)
	if actionType == domain.ActionUnknown {
		logger.Log.WithField("action", externalCmd.Action).Warn("Unknown action")
		return
	}

	g.mu.Lock()
	s, ok := g.sessions[externalCmd.Token]
	g.mu.Unlock()
	if !ok {
		logger.Log.WithField("session", externalCmd.Token).Warn("Command for unknown session")
		return
	}

	cmd := domain.InternalCommand{
		Action:  actionType,
		Token:   externalCmd.Token,
		Payload: externalCmd.Payload,
	}

	select {
	case s.CommandChan <- cmd:
	default:
		logger.Log.WithFields(logrus.Fields{
			"session": externalCmd.Token,
			"action":  actionType.String(),
		}).Warn("Session command queue full, dropping")
	}
}

// SessionCount возвращает число живых сессий
func (g *GameService) SessionCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.sessions)
}

// Shutdown останавливает все сессии и сохраняет всех героев
func (g *GameService) Shutdown() {
	g.mu.Lock()
	tokens := make([]string, 0, len(g.sessions))
	for token := range g.sessions {
		tokens = append(tokens, token)
	}
	g.mu.Unlock()

	for _, token := range tokens {
		g.Detach(token)
	}
}
