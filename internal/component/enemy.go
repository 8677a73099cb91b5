// internal/component/enemy.go
package component

import (
	"go-scurve-defense/internal/defs"
	"go-scurve-defense/internal/types"
)

// Enemy представляет вражескую сущность.
type Enemy struct {
	ID        types.EntityID
	Type      defs.EnemyType
	Health    int
	MaxHealth int
	Speed     float64 // текущая скорость, пикселей за тик
	BaseSpeed float64
	Distance  float64 // пройденная длина пути
	Position  Position
	Size      float64
	Bounty    int

	Dead    bool
	Escaped bool // дошел до конца пути

	ImmuneToSlow bool
	Frozen       int // тиков заморозки осталось
	BurnTimer    int // тиков горения осталось
	BurnTick     int // тиков до следующего урона от горения
	BurnDamage   int
}

// NewEnemy создает врага типа t, масштабированного множителем волны, в начале пути.
func NewEnemy(id types.EntityID, t defs.EnemyType, scale float64, start Position) *Enemy {
	def := defs.Enemy(t)
	health := defs.ScaledHealth(t, scale)
	speed := defs.ScaledSpeed(t, scale)
	return &Enemy{
		ID:           id,
		Type:         t,
		Health:       health,
		MaxHealth:    health,
		Speed:        speed,
		BaseSpeed:    speed,
		Position:     start,
		Size:         def.Size,
		Bounty:       def.Bounty,
		ImmuneToSlow: def.ImmuneToSlow,
	}
}

func (e *Enemy) Burning() bool { return e.BurnTimer > 0 }

// HealthFraction доля оставшегося здоровья в [0, 1].
func (e *Enemy) HealthFraction() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	f := float64(e.Health) / float64(e.MaxHealth)
	if f < 0 {
		return 0
	}
	return f
}
