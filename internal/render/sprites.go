package render

import (
	"github.com/theDrake/pebblequest-sub000/internal/domain"
	"github.com/theDrake/pebblequest-sub000/pkg/geometry"
)

// Спрайты NPC и лута описаны данными: списком примитивов в координатах
// клетки. Один диспетчер вместо отдельной функции отрисовки на каждый
// тип монстра - форма меняется, код нет.

// OpKind - вид примитива
type OpKind uint8

const (
	OpFillRect OpKind = iota
	OpRect
	OpFillCircle
	OpCircle
	OpLine
)

// spriteGrid - знаменатель дробных координат спрайта: координаты ops
// заданы в долях spriteGrid от ширины/высоты прямоугольника клетки
const spriteGrid = 32

// DrawOp - один примитив спрайта. Для кругов X2 - радиус (в тех же долях
// ширины), Y2 не используется.
type DrawOp struct {
	Kind           OpKind
	X1, Y1, X2, Y2 int
	Shade          int
}

var npcSprites = map[domain.NPCType][]DrawOp{
	// Гоблин: приземистое тело, большая голова
	domain.NPCGoblin: {
		{Kind: OpFillRect, X1: 10, Y1: 18, X2: 22, Y2: 30, Shade: ShadeHalf},
		{Kind: OpRect, X1: 10, Y1: 18, X2: 22, Y2: 30},
		{Kind: OpFillCircle, X1: 16, Y1: 14, X2: 6, Shade: ShadeLight},
		{Kind: OpCircle, X1: 16, Y1: 14, X2: 6},
	},
	// Орк: массивный прямоугольный корпус, плечи
	domain.NPCOrc: {
		{Kind: OpFillRect, X1: 8, Y1: 12, X2: 24, Y2: 30, Shade: ShadeDark},
		{Kind: OpRect, X1: 8, Y1: 12, X2: 24, Y2: 30},
		{Kind: OpFillRect, X1: 12, Y1: 6, X2: 20, Y2: 12, Shade: ShadeHalf},
		{Kind: OpRect, X1: 12, Y1: 6, X2: 20, Y2: 12},
	},
	// Тень: полупрозрачный силуэт без контура
	domain.NPCShadow: {
		{Kind: OpFillRect, X1: 11, Y1: 8, X2: 21, Y2: 30, Shade: ShadeHalf},
		{Kind: OpFillCircle, X1: 16, Y1: 8, X2: 5, Shade: ShadeHalf},
	},
	// Зверь: низкое широкое тело, уши
	domain.NPCBeast: {
		{Kind: OpFillRect, X1: 6, Y1: 20, X2: 26, Y2: 30, Shade: ShadeDark},
		{Kind: OpRect, X1: 6, Y1: 20, X2: 26, Y2: 30},
		{Kind: OpLine, X1: 8, Y1: 20, X2: 6, Y2: 14},
		{Kind: OpLine, X1: 24, Y1: 20, X2: 26, Y2: 14},
	},
	// Колдун: мантия-трапеция и посох
	domain.NPCWizard: {
		{Kind: OpFillRect, X1: 11, Y1: 14, X2: 21, Y2: 30, Shade: ShadeLight},
		{Kind: OpRect, X1: 11, Y1: 14, X2: 21, Y2: 30},
		{Kind: OpFillCircle, X1: 16, Y1: 10, X2: 4, Shade: ShadeWhite},
		{Kind: OpCircle, X1: 16, Y1: 10, X2: 4},
		{Kind: OpLine, X1: 24, Y1: 6, X2: 24, Y2: 30},
	},
	// Парящая гадина: большой шар с "щупальцами"
	domain.NPCFloatingMonstrosity: {
		{Kind: OpFillCircle, X1: 16, Y1: 14, X2: 10, Shade: ShadeDark},
		{Kind: OpCircle, X1: 16, Y1: 14, X2: 10},
		{Kind: OpLine, X1: 8, Y1: 20, X2: 5, Y2: 30},
		{Kind: OpLine, X1: 16, Y1: 24, X2: 16, Y2: 31},
		{Kind: OpLine, X1: 24, Y1: 20, X2: 27, Y2: 30},
	},
}

// lootSprite - предмет на полу: маленький кружок у нижней кромки клетки
var lootSprite = []DrawOp{
	{Kind: OpFillCircle, X1: 16, Y1: 27, X2: 3, Shade: ShadeHalf},
	{Kind: OpCircle, X1: 16, Y1: 27, X2: 3},
}

// drawOps проигрывает список примитивов, масштабируя их в прямоугольник r
func drawOps(f *Framebuffer, r geometry.Rect, ops []DrawOp) {
	w, h := r.Width(), r.Height()

	sx := func(v int) int { return r.X1 + v*w/spriteGrid }
	sy := func(v int) int { return r.Y1 + v*h/spriteGrid }

	for _, op := range ops {
		switch op.Kind {
		case OpFillRect:
			f.FillRect(sx(op.X1), sy(op.Y1), sx(op.X2), sy(op.Y2), op.Shade)
		case OpRect:
			f.DrawRect(sx(op.X1), sy(op.Y1), sx(op.X2), sy(op.Y2))
		case OpFillCircle:
			f.FillCircle(sx(op.X1), sy(op.Y1), op.X2*w/spriteGrid, op.Shade)
		case OpCircle:
			f.DrawCircle(sx(op.X1), sy(op.Y1), op.X2*w/spriteGrid)
		case OpLine:
			f.Line(sx(op.X1), sy(op.Y1), sx(op.X2), sy(op.Y2))
		}
	}
}

// DrawNpcSprite рисует спрайт NPC, вписанный в прямоугольник клетки
func DrawNpcSprite(f *Framebuffer, r geometry.Rect, t domain.NPCType) {
	if ops, ok := npcSprites[t]; ok {
		drawOps(f, r, ops)
	}
}

// DrawLootSprite рисует предмет, лежащий на полу клетки
func DrawLootSprite(f *Framebuffer, r geometry.Rect) {
	drawOps(f, r, lootSprite)
}
