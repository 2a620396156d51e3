package domain

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Shift возвращает новую позицию со смещением (не меняя текущую)
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Step возвращает позицию на один шаг в указанном направлении
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return p.Shift(dx, dy)
}

// ManhattanTo возвращает манхэттенское расстояние до другой точки
func (p Position) ManhattanTo(other Position) int {
	dx := p.X - other.X
	dy := p.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// AreAdjacent возвращает true, если клетки соседние по стороне.
// Диагонали НЕ считаются соседством.
func AreAdjacent(a, b Position) bool {
	return a.ManhattanTo(b) == 1
}
