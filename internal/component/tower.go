// internal/component/tower.go
package component

import (
	"go-scurve-defense/internal/defs"
	"go-scurve-defense/internal/types"
)

type Tower struct {
	ID       types.EntityID
	Type     defs.TowerType
	CellX    int
	CellY    int
	Position Position // центр клетки
	Level    int      // 1..config.MaxTowerLevel
	Cooldown int      // тиков до следующего выстрела
	Angle    float64  // направление ствола, радианы

	// Производные характеристики, пересчитываются при смене уровня
	Range        float64
	FireInterval int
	Damage       int
}

// NewTower создает башню первого уровня с готовым к выстрелу стволом.
func NewTower(id types.EntityID, t defs.TowerType, cellX, cellY int, pos Position) *Tower {
	tower := &Tower{
		ID:       id,
		Type:     t,
		CellX:    cellX,
		CellY:    cellY,
		Position: pos,
		Level:    1,
	}
	tower.ApplyStats()
	return tower
}

// ApplyStats пересчитывает дальность, интервал и урон для текущего уровня.
func (t *Tower) ApplyStats() {
	s := defs.EffectiveStats(t.Type, t.Level)
	t.Range = s.Range
	t.FireInterval = s.FireInterval
	t.Damage = s.Damage
}
