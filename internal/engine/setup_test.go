package engine

import (
	"os"
	"testing"
	"time"

	"github.com/theDrake/pebblequest-sub000/internal/domain"
	"github.com/theDrake/pebblequest-sub000/internal/network"
	"github.com/theDrake/pebblequest-sub000/pkg/api"
	"github.com/theDrake/pebblequest-sub000/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// newTestSession собирает сессию с подписчиком, но без горутины Run:
// тесты зовут executeCommand и advanceTick напрямую.
func newTestSession(t *testing.T, seed int64) (*Session, chan api.ServerMessage) {
	t.Helper()

	hub := network.NewBroadcaster()
	inbox := hub.Register("test")

	s := NewSession("test", domain.NewPlayer(), seed, hub, time.Hour)
	return s, inbox
}

// openTestQuest заменяет сгенерированный лабиринт полностью проходимой
// сеткой с игроком в центре, смотрящим на север.
func openTestQuest(s *Session) {
	q := domain.NewQuest(domain.QuestSlay, s.Player)
	for y := 0; y < domain.GridSize; y++ {
		for x := 0; x < domain.GridSize; x++ {
			q.SetCell(domain.Position{X: x, Y: y}, domain.CellEmpty)
		}
	}
	s.Player.Pos = domain.Position{X: domain.GridSize / 2, Y: domain.GridSize / 2}
	s.Player.Facing = domain.North
	s.Quest = q
	s.SetMode(domain.ModeActive)
}

func command(action domain.ActionType, payload string) domain.InternalCommand {
	return domain.InternalCommand{
		Action:  action,
		Token:   "test",
		Payload: []byte(payload),
	}
}

func drain(ch chan api.ServerMessage) (last api.ServerMessage, n int) {
	for {
		select {
		case msg := <-ch:
			last = msg
			n++
		default:
			return last, n
		}
	}
}
