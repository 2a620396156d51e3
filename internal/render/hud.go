package render

import (
	"github.com/theDrake/pebblequest-sub000/internal/domain"
)

// Статусная строка: шкала здоровья слева, шкала энергии справа,
// компас по центру.

const (
	meterWidth  = 50
	meterHeight = 8
	compassSize = 12
)

// drawStatusBar рисует нижнюю панель
func (r *Renderer) drawStatusBar(q *domain.Quest) {
	f := r.fb
	p := q.Player

	top := SceneHeight
	f.FillRect(0, top, ScreenWidth-1, ScreenHeight-1, ShadeWhite)
	f.HLine(0, ScreenWidth-1, top)

	meterY := top + (StatusBarHeight-meterHeight)/2
	drawMeter(f, 4, meterY, meterWidth, meterHeight, p.Health, p.MaxHealth())
	drawMeter(f, ScreenWidth-4-meterWidth, meterY, meterWidth, meterHeight, p.Energy, p.MaxEnergy())

	drawCompass(f, ScreenWidth/2, top+StatusBarHeight/2, p.Facing)
}

// drawMeter рисует шкалу: контур и пропорциональное заполнение
func drawMeter(f *Framebuffer, x, y, w, h, current, max int) {
	f.DrawRect(x, y, x+w-1, y+h-1)

	if max <= 0 || current <= 0 {
		return
	}
	if current > max {
		current = max
	}
	fill := (w - 2) * current / max
	if fill > 0 {
		f.FillRect(x+1, y+1, x+fill, y+h-2, ShadeBlack)
	}
}

// drawCompass рисует стрелку, показывающую сторону света взгляда.
// Север - вверх; стрелка - линия с зарубкой на острие.
func drawCompass(f *Framebuffer, cx, cy int, facing domain.Direction) {
	half := compassSize / 2
	f.DrawCircle(cx, cy, half)

	var tipX, tipY int
	switch facing {
	case domain.North:
		tipX, tipY = cx, cy-half+2
	case domain.South:
		tipX, tipY = cx, cy+half-2
	case domain.East:
		tipX, tipY = cx+half-2, cy
	default:
		tipX, tipY = cx-half+2, cy
	}

	f.Line(cx, cy, tipX, tipY)
	f.FillCircle(tipX, tipY, 1, ShadeBlack)
}
