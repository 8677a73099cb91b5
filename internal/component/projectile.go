// internal/component/projectile.go
package component

import (
	"go-scurve-defense/internal/defs"
	"go-scurve-defense/internal/types"
)

// Projectile представляет летящий снаряд.
// Самонаводящийся снаряд каждый тик летит к текущей позиции цели;
// баллистический (Ballistic) летит по дуге в точку, зафиксированную при выстреле.
type Projectile struct {
	ID         types.EntityID
	Origin     Position
	Position   Position
	TargetID   types.EntityID // слабая ссылка, проверяется каждый тик
	Damage     int
	TowerType  defs.TowerType
	TowerLevel int
	Active     bool

	Ballistic  bool
	Impact     Position // точка падения
	FlightTime float64  // тиков
	Elapsed    int
	ArcHeight  float64
	Height     float64 // текущая высота над землей
}

// Progress — доля пройденного баллистического полета в [0, 1].
func (p *Projectile) Progress() float64 {
	if !p.Ballistic || p.FlightTime <= 0 {
		return 0
	}
	t := float64(p.Elapsed) / p.FlightTime
	if t > 1 {
		return 1
	}
	return t
}
