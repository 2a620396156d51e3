package systems

import (
	"os"
	"testing"

	"github.com/theDrake/pebblequest-sub000/internal/domain"
	"github.com/theDrake/pebblequest-sub000/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize the global logger before running any tests
	logger.Init()

	os.Exit(m.Run())
}

// openQuest возвращает квест с полностью пустой сеткой и игроком в центре
func openQuest() *domain.Quest {
	q := domain.NewQuest(domain.QuestSlay, domain.NewPlayer())
	for y := 0; y < domain.GridSize; y++ {
		for x := 0; x < domain.GridSize; x++ {
			q.SetCell(domain.Position{X: x, Y: y}, domain.CellEmpty)
		}
	}
	q.Player.Pos = domain.Position{X: 5, Y: 5}
	return q
}
