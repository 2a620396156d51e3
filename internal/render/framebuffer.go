// Package render отрисовывает псевдо-3D сцену в монохромный фреймбуфер.
//
// Весь пайплайн целочисленный: никакой плавающей точки, никакого
// рейкастинга. Перспектива берется из заранее построенной таблицы
// прямоугольников (pkg/geometry), оттенки имитируются дизерингом.
package render

// Framebuffer - однобитный буфер кадра. Биты упакованы по строкам,
// старший бит байта - левый пиксель. Установленный бит = черный пиксель.
type Framebuffer struct {
	W, H     int
	rowBytes int
	bits     []byte
}

// NewFramebuffer создает чистый (белый) буфер
func NewFramebuffer(w, h int) *Framebuffer {
	rowBytes := (w + 7) / 8
	return &Framebuffer{
		W:        w,
		H:        h,
		rowBytes: rowBytes,
		bits:     make([]byte, rowBytes*h),
	}
}

// Clear заливает буфер белым
func (f *Framebuffer) Clear() {
	for i := range f.bits {
		f.bits[i] = 0
	}
}

// Set красит пиксель черным. Выход за границы молча отбрасывается.
func (f *Framebuffer) Set(x, y int) {
	if x < 0 || x >= f.W || y < 0 || y >= f.H {
		return
	}
	f.bits[y*f.rowBytes+x/8] |= 0x80 >> (x % 8)
}

// Unset красит пиксель белым
func (f *Framebuffer) Unset(x, y int) {
	if x < 0 || x >= f.W || y < 0 || y >= f.H {
		return
	}
	f.bits[y*f.rowBytes+x/8] &^= 0x80 >> (x % 8)
}

// Get возвращает true, если пиксель черный. За границами всегда false.
func (f *Framebuffer) Get(x, y int) bool {
	if x < 0 || x >= f.W || y < 0 || y >= f.H {
		return false
	}
	return f.bits[y*f.rowBytes+x/8]&(0x80>>(x%8)) != 0
}

// Packed возвращает копию упакованных байтов кадра (для отправки клиенту)
func (f *Framebuffer) Packed() []byte {
	out := make([]byte, len(f.bits))
	copy(out, f.bits)
	return out
}

// Уровни дизеринга: 0 - белый, 4 - сплошной черный
const (
	ShadeWhite = 0
	ShadeLight = 1 // 25%
	ShadeHalf  = 2 // 50%, шахматка
	ShadeDark  = 3 // 75%
	ShadeBlack = 4
)

// ditherAt решает, красить ли пиксель (x,y) при данном уровне оттенка.
// Паттерны фиксированы в экранных координатах, чтобы соседние заливки
// стыковались без швов.
func ditherAt(x, y, shade int) bool {
	switch shade {
	case ShadeWhite:
		return false
	case ShadeLight:
		return x%2 == 0 && y%2 == 0
	case ShadeHalf:
		return (x+y)%2 == 0
	case ShadeDark:
		return x%2 == 0 || y%2 == 0
	default:
		return true
	}
}

// FillRect заливает прямоугольник (границы включительно) оттенком shade.
// Белая заливка стирает то, что было под ней.
func (f *Framebuffer) FillRect(x1, y1, x2, y2, shade int) {
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			if ditherAt(x, y, shade) {
				f.Set(x, y)
			} else {
				f.Unset(x, y)
			}
		}
	}
}

// DrawRect рисует черный контур прямоугольника
func (f *Framebuffer) DrawRect(x1, y1, x2, y2 int) {
	f.HLine(x1, x2, y1)
	f.HLine(x1, x2, y2)
	f.VLine(x1, y1, y2)
	f.VLine(x2, y1, y2)
}

// HLine рисует горизонтальную черную линию
func (f *Framebuffer) HLine(x1, x2, y int) {
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		f.Set(x, y)
	}
}

// VLine рисует вертикальную черную линию
func (f *Framebuffer) VLine(x, y1, y2 int) {
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		f.Set(x, y)
	}
}

// Line рисует произвольную черную линию (Брезенхэм, только целые)
func (f *Framebuffer) Line(x1, y1, x2, y2 int) {
	dx := x2 - x1
	if dx < 0 {
		dx = -dx
	}
	dy := y2 - y1
	if dy < 0 {
		dy = -dy
	}
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		f.Set(x1, y1)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// FillCircle заливает круг оттенком shade
func (f *Framebuffer) FillCircle(cx, cy, r, shade int) {
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			if x*x+y*y <= r*r && ditherAt(cx+x, cy+y, shade) {
				f.Set(cx+x, cy+y)
			}
		}
	}
}

// DrawCircle рисует черную окружность (средняя точка, только целые)
func (f *Framebuffer) DrawCircle(cx, cy, r int) {
	x, y := r, 0
	err := 1 - r
	for x >= y {
		f.Set(cx+x, cy+y)
		f.Set(cx+y, cy+x)
		f.Set(cx-y, cy+x)
		f.Set(cx-x, cy+y)
		f.Set(cx-x, cy-y)
		f.Set(cx-y, cy-x)
		f.Set(cx+y, cy-x)
		f.Set(cx+x, cy-y)
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}

// FillTrapezoid заливает вертикальную трапецию: левое ребро (x1, y1a..y1b),
// правое ребро (x2, y2a..y2b), верх и низ линейно интерполируются.
// Так рисуются боковые стены, уходящие в перспективу.
func (f *Framebuffer) FillTrapezoid(x1, y1a, y1b, x2, y2a, y2b, shade int) {
	if x1 == x2 {
		f.VLine(x1, y1a, y1b)
		return
	}
	step := 1
	if x2 < x1 {
		step = -1
	}
	dx := x2 - x1

	for x := x1; x != x2+step; x += step {
		top := y1a + (y2a-y1a)*(x-x1)/dx
		bottom := y1b + (y2b-y1b)*(x-x1)/dx
		for y := top; y <= bottom; y++ {
			if ditherAt(x, y, shade) {
				f.Set(x, y)
			} else {
				f.Unset(x, y)
			}
		}
	}
}

// InvertRect инвертирует все пиксели прямоугольника (эффект вспышки)
func (f *Framebuffer) InvertRect(x1, y1, x2, y2 int) {
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			if f.Get(x, y) {
				f.Unset(x, y)
			} else {
				f.Set(x, y)
			}
		}
	}
}
