// Package geometry строит таблицу экранных прямоугольников для
// псевдо-3D отрисовки: по одному прямоугольнику задней стены на каждую
// пару (глубина, боковой слот) в поле зрения игрока.
//
// Перспектива аппроксимируется линейным шагом, без деления: каждый
// следующий уровень глубины сдвигает левый верхний угол внутрь на
// фиксированное смещение. Боковые слоты получаются сдвигом центрального
// прямоугольника влево/вправо на кратное его ширине, поэтому соседние
// клетки стыкуются без зазоров.
package geometry

// Rect - прямоугольник в экранных координатах (включительно по обоим углам)
type Rect struct {
	X1, Y1 int // Левый верхний угол
	X2, Y2 int // Правый нижний угол
}

// Width возвращает ширину прямоугольника в пикселях
func (r Rect) Width() int {
	return r.X2 - r.X1 + 1
}

// Height возвращает высоту прямоугольника в пикселях
func (r Rect) Height() int {
	return r.Y2 - r.Y1 + 1
}

// Шаг перспективы на один уровень глубины
const (
	StepX = 10
	StepY = 10
)

// Table - готовая таблица. Строится один раз, дальше только читается.
type Table struct {
	MaxDepth int
	Width    int // Ширина экранной области сцены
	Height   int // Высота экранной области сцены

	// rects[d][s]: d - глубина 0..MaxDepth, s - боковой слот,
	// s = MaxDepth соответствует центру (слоту прямо по курсу)
	rects [][]Rect
}

// BuildTable вычисляет таблицу для сцены width x height и дальности maxDepth.
// Чистая функция от размеров экрана; карта ей не нужна.
func BuildTable(width, height, maxDepth int) *Table {
	t := &Table{
		MaxDepth: maxDepth,
		Width:    width,
		Height:   height,
		rects:    make([][]Rect, maxDepth+1),
	}

	numSlots := 2*maxDepth + 1

	for d := 0; d <= maxDepth; d++ {
		t.rects[d] = make([]Rect, numSlots)

		// Центральный прямоугольник: симметрично сжимается с глубиной
		center := Rect{
			X1: d * StepX,
			Y1: d * StepY,
			X2: width - 1 - d*StepX,
			Y2: height - 1 - d*StepY,
		}
		t.rects[d][maxDepth] = center

		// Боковые слоты: тот же прямоугольник, сдвинутый на кратное ширины
		w := center.Width()
		for lateral := 1; lateral <= maxDepth; lateral++ {
			left := center
			left.X1 -= lateral * w
			left.X2 -= lateral * w
			t.rects[d][maxDepth-lateral] = left

			right := center
			right.X1 += lateral * w
			right.X2 += lateral * w
			t.rects[d][maxDepth+lateral] = right
		}
	}

	return t
}

// BackWall возвращает прямоугольник задней стены клетки на глубине depth
// и боковом смещении lateral (отрицательное - влево от курса).
// Выход за пределы таблицы возвращает вырожденный нулевой прямоугольник.
func (t *Table) BackWall(depth, lateral int) Rect {
	if depth < 0 || depth > t.MaxDepth {
		return Rect{}
	}
	slot := t.MaxDepth + lateral
	if slot < 0 || slot >= len(t.rects[depth]) {
		return Rect{}
	}
	return t.rects[depth][slot]
}
