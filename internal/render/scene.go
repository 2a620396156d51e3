package render

import (
	"github.com/theDrake/pebblequest-sub000/internal/domain"
	"github.com/theDrake/pebblequest-sub000/pkg/geometry"
)

// Геометрия экрана (пиксели)
const (
	ScreenWidth     = 144
	ScreenHeight    = 168
	StatusBarHeight = 16
	SceneHeight     = ScreenHeight - StatusBarHeight
)

// Renderer - отрисовщик сцены. Таблица перспективы строится один раз
// в конструкторе и дальше только читается.
type Renderer struct {
	table *geometry.Table
	fb    *Framebuffer
}

// NewRenderer строит таблицу геометрии и выделяет фреймбуфер
func NewRenderer() *Renderer {
	return &Renderer{
		table: geometry.BuildTable(ScreenWidth, SceneHeight, domain.MaxVisibilityDepth),
		fb:    NewFramebuffer(ScreenWidth, ScreenHeight),
	}
}

// Frame возвращает буфер последнего нарисованного кадра
func (r *Renderer) Frame() *Framebuffer {
	return r.fb
}

// cellAhead возвращает координату клетки на глубине depth и боковом
// смещении lateral относительно взгляда игрока (lateral < 0 - влево)
func cellAhead(p *domain.Player, depth, lateral int) domain.Position {
	fdx, fdy := p.Facing.Delta()
	rdx, rdy := p.Facing.Right().Delta()
	return p.Pos.Shift(fdx*depth+rdx*lateral, fdy*depth+rdy*lateral)
}

// Draw рисует полный кадр: фон, стены от дальних к ближним, проемы,
// спрайты, вспышку атаки и статусную строку.
func (r *Renderer) Draw(q *domain.Quest, flashOn bool) {
	f := r.fb
	f.Clear()

	r.drawBackground()

	// От дальней глубины к ближней: ближние стены перекрывают дальние.
	// Внутри глубины идем от краев к центру.
	for depth := domain.MaxVisibilityDepth; depth >= 1; depth-- {
		for offset := depth; offset >= 0; offset-- {
			r.drawCell(q, depth, -offset)
			if offset != 0 {
				r.drawCell(q, depth, offset)
			}
		}
	}

	if flashOn {
		f.InvertRect(0, 0, ScreenWidth-1, SceneHeight-1)
	}

	r.drawStatusBar(q)
}

// drawBackground заливает потолок и пол дизерингом разной плотности
func (r *Renderer) drawBackground() {
	horizon := SceneHeight / 2
	r.fb.FillRect(0, 0, ScreenWidth-1, horizon-1, ShadeLight)
	r.fb.FillRect(0, horizon, ScreenWidth-1, SceneHeight-1, ShadeHalf)
}

// drawCell отрисовывает одну клетку поля зрения
func (r *Renderer) drawCell(q *domain.Quest, depth, lateral int) {
	p := q.Player
	pos := cellAhead(p, depth, lateral)
	tag := q.CellAt(pos)

	if !tag.Passable() {
		r.drawWallFace(q, depth, lateral)
		return
	}

	back := r.table.BackWall(depth, lateral)

	// Боковые стены коридора: сплошной сосед слева/справа дает
	// уходящую в перспективу трапецию
	near := r.table.BackWall(depth-1, lateral)
	leftNeighbor := cellAhead(p, depth, lateral-1)
	if !q.CellAt(leftNeighbor).Passable() {
		r.drawSideWall(near.X1, near.Y1, near.Y2, back.X1, back.Y1, back.Y2, depth)
	}
	rightNeighbor := cellAhead(p, depth, lateral+1)
	if !q.CellAt(rightNeighbor).Passable() {
		r.drawSideWall(near.X2, near.Y1, near.Y2, back.X2, back.Y1, back.Y2, depth)
	}

	// Проем входа/выхода: прорезь в стене, которая уже нарисована
	// за этой клеткой (дальняя глубина обрабатывалась раньше)
	if tag == domain.CellExit {
		r.drawDoorway(back)
	}

	if tag.Lootable() {
		DrawLootSprite(r.fb, back)
	}
	if npc := q.NpcAt(pos); npc != nil {
		DrawNpcSprite(r.fb, back, npc.Type)
	}
}

// wallShade возвращает оттенок стены по глубине: дальше - темнее
func wallShade(depth int) int {
	if depth >= domain.MaxVisibilityDepth-1 {
		return ShadeDark
	}
	if depth >= 3 {
		return ShadeHalf
	}
	return ShadeLight
}

// drawWallFace рисует фронтальную грань сплошной клетки: прямоугольник
// на ближней границе клетки, с контуром и угловыми линиями
func (r *Renderer) drawWallFace(q *domain.Quest, depth, lateral int) {
	face := r.table.BackWall(depth-1, lateral)
	f := r.fb

	f.FillRect(face.X1, face.Y1, face.X2, face.Y2, wallShade(depth))
	f.DrawRect(face.X1, face.Y1, face.X2, face.Y2)

	// Угловые линии снимают неоднозначность стыка грани и боковой
	// стены: без них два соседних оттенка сливаются
	p := q.Player
	leftNeighbor := cellAhead(p, depth, lateral-1)
	if q.CellAt(leftNeighbor).Passable() {
		f.VLine(face.X1, face.Y1, face.Y2)
	}
	rightNeighbor := cellAhead(p, depth, lateral+1)
	if q.CellAt(rightNeighbor).Passable() {
		f.VLine(face.X2, face.Y1, face.Y2)
	}
}

// drawSideWall рисует боковую стену-трапецию между ближней и дальней
// границами клетки
func (r *Renderer) drawSideWall(nearX, nearY1, nearY2, farX, farY1, farY2, depth int) {
	f := r.fb
	f.FillTrapezoid(nearX, nearY1, nearY2, farX, farY1, farY2, wallShade(depth))
	f.Line(nearX, nearY1, farX, farY1)
	f.Line(nearX, nearY2, farX, farY2)
}

// drawDoorway прорезает проем: темная арка в нижних двух третях стены
func (r *Renderer) drawDoorway(back geometry.Rect) {
	w := back.Width()
	h := back.Height()
	x1 := back.X1 + w/3
	x2 := back.X2 - w/3
	y1 := back.Y1 + h/3
	y2 := back.Y2

	r.fb.FillRect(x1, y1, x2, y2, ShadeBlack)
	r.fb.DrawRect(x1, y1, x2, y2)
}
