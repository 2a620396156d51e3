// Package maze прорезает лабиринт в сплошной сетке квеста.
package maze

import (
	"math/rand"

	"github.com/theDrake/pebblequest-sub000/internal/domain"
	"github.com/theDrake/pebblequest-sub000/pkg/logger"
)

// Сколько предметов рассыпать по коридору после прорезки
const maxSeededItems = 3

// Предохранитель: прорезка гарантированно завершается (курсор заперт в
// конечной сетке), но патологическая последовательность случайных
// поворотов может тянуть ее очень долго.
const carveStepLimit = domain.GridSize * domain.GridSize * 100

// Options управляет прорезкой
type Options struct {
	EntranceSide domain.Direction // На каком краю карты вход
	TurnDenom    int              // Шанс смены курса за шаг: 1 из TurnDenom; 0 - никогда не поворачивать
}

// RandomOptions выбирает сторону входа равновероятно
func RandomOptions(rng *rand.Rand) Options {
	return Options{
		EntranceSide: domain.Direction(rng.Intn(domain.NumDirections)),
		TurnDenom:    domain.NumDirections,
	}
}

// edgePoint возвращает точку на краю side со случайной координатой вдоль края
func edgePoint(side domain.Direction, along int) domain.Position {
	switch side {
	case domain.North:
		return domain.Position{X: along, Y: 0}
	case domain.South:
		return domain.Position{X: along, Y: domain.GridSize - 1}
	case domain.East:
		return domain.Position{X: domain.GridSize - 1, Y: along}
	default:
		return domain.Position{X: 0, Y: along}
	}
}

// Generate прорезает связный коридор от входа до выхода.
//
// Сетка квеста должна быть полностью заполнена (Solid). Курсор-строитель
// стартует со входа и идет внутрь карты; каждый шаг помечает текущую
// клетку пустой и с шансом 1/TurnDenom перебрасывает курс на случайное
// из четырех направлений. Шаг за край просто отбрасывается - курсор
// остается на месте до следующего шага. Коридор может петлять и
// проходить по уже прорезанным клеткам; это осознанное поведение,
// сложность квестов настроена вокруг него.
func Generate(q *domain.Quest, rng *rand.Rand, opts Options) (entrance, exit domain.Position) {
	along := rng.Intn(domain.GridSize)
	entrance = edgePoint(opts.EntranceSide, along)
	exit = edgePoint(opts.EntranceSide.Opposite(), rng.Intn(domain.GridSize))

	q.Entrance = entrance
	q.Exit = exit
	q.EntranceDir = opts.EntranceSide

	// Вход "смотрит" наружу; строитель идет внутрь
	heading := opts.EntranceSide.Opposite()
	cursor := entrance

	steps := 0
	for cursor != exit {
		q.SetCell(cursor, domain.CellEmpty)

		if opts.TurnDenom > 0 && rng.Intn(opts.TurnDenom) == 0 {
			heading = domain.Direction(rng.Intn(domain.NumDirections))
		}

		next := cursor.Step(heading)
		if q.InBounds(next) {
			cursor = next
		}

		steps++
		if steps >= carveStepLimit {
			logger.Log.WithField("steps", steps).Warn("Carve step limit hit, forcing a straight path to the exit")
			forceMarch(q, cursor, exit)
			break
		}
	}

	// Вход и выход помечаются особым тегом: рендерер рисует по нему проемы.
	// Для проходимости тег равнозначен пустой клетке.
	q.SetCell(entrance, domain.CellExit)
	q.SetCell(exit, domain.CellExit)

	seedContent(q, rng)

	return entrance, exit
}

// forceMarch дорезает прямой Г-образный проход до выхода.
// Вызывается только при срабатывании предохранителя.
func forceMarch(q *domain.Quest, from, to domain.Position) {
	cursor := from
	for cursor.X != to.X {
		q.SetCell(cursor, domain.CellEmpty)
		if cursor.X < to.X {
			cursor.X++
		} else {
			cursor.X--
		}
	}
	for cursor.Y != to.Y {
		q.SetCell(cursor, domain.CellEmpty)
		if cursor.Y < to.Y {
			cursor.Y++
		} else {
			cursor.Y--
		}
	}
}

// seedContent раскладывает начинку после прорезки: босса для босс-квеста
// и немного камешков по коридору
func seedContent(q *domain.Quest, rng *rand.Rand) {
	if q.Type == domain.QuestBoss {
		level := 1
		if q.Player != nil {
			level = q.Player.Level
		}
		q.AddNPC(domain.NewNPC(domain.NPCFloatingMonstrosity, q.Exit, level))
	}

	for i := 0; i < maxSeededItems; i++ {
		p := domain.Position{X: rng.Intn(domain.GridSize), Y: rng.Intn(domain.GridSize)}
		if q.CellAt(p) != domain.CellEmpty || p == q.Entrance || p == q.Exit {
			continue // Промах по стене или по проему - просто пропускаем
		}
		pebble := domain.PebbleByIndex(rng.Intn(domain.NumPebbleTypes))
		q.SetCell(p, domain.CellTag(pebble))
	}
}
