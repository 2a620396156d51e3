package actions

import (
	"github.com/theDrake/pebblequest-sub000/internal/domain"
	"github.com/theDrake/pebblequest-sub000/internal/engine/handlers"
	"github.com/theDrake/pebblequest-sub000/pkg/api"
	"github.com/theDrake/pebblequest-sub000/pkg/utils"
)

// HandleInit запрашивает первую отрисовку после подключения
func HandleInit(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{Redraw: true}, nil
}

// HandleNewQuest начинает новую вылазку, заменяя текущий лабиринт
func HandleNewQuest(ctx handlers.Context, p api.QuestPayload) (handlers.Result, error) {
	questType := domain.QuestSlay
	if p.QuestType == "BOSS" {
		questType = domain.QuestBoss
	}

	seed := p.Seed
	if seed == 0 {
		seed = ctx.Rng.Int63()
	}

	ctx.Quests.StartQuest(questType, seed)

	return handlers.Result{
		Notice: "Новый квест: " + questType.String() + " #" + utils.SeedLabel(seed),
		Redraw: true,
	}, nil
}
