// internal/component/position.go
package component

import (
	"math"

	"go-scurve-defense/pkg/curve"
)

// Position — компонент позиции (центр сущности в пикселях холста)
type Position struct {
	X, Y float64
}

// PositionOf переводит точку пути в позицию.
func PositionOf(p curve.Point) Position {
	return Position{X: p.X, Y: p.Y}
}

// DistanceTo возвращает евклидово расстояние до o.
func (p Position) DistanceTo(o Position) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}
