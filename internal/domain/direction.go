package domain

import "strings"

// Direction - одна из четырех сторон света.
// Ось Y растет вниз (строки сетки), поэтому North = dy -1.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

var directionToString = map[Direction]string{
	North: "NORTH",
	East:  "EAST",
	South: "SOUTH",
	West:  "WEST",
}

var directionStringToDirection = map[string]Direction{
	"NORTH": North,
	"EAST":  East,
	"SOUTH": South,
	"WEST":  West,
}

// String возвращает строковое представление (для логов и компаса)
func (d Direction) String() string {
	if val, ok := directionToString[d]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseDirection конвертирует строку в Direction. Второе значение false, если строка неизвестна.
func ParseDirection(s string) (Direction, bool) {
	d, ok := directionStringToDirection[strings.ToUpper(s)]
	return d, ok
}

// Delta возвращает смещение по сетке на один шаг
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	default:
		return -1, 0
	}
}

// Opposite возвращает противоположное направление
func (d Direction) Opposite() Direction {
	return (d + 2) % NumDirections
}

// Left возвращает направление после поворота против часовой стрелки
func (d Direction) Left() Direction {
	return (d + 3) % NumDirections
}

// Right возвращает направление после поворота по часовой стрелке
func (d Direction) Right() Direction {
	return (d + 1) % NumDirections
}
