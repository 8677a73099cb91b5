// internal/entity/ecs.go
package entity

import (
	"go-scurve-defense/internal/component"
	"go-scurve-defense/internal/types"
)

// ECS — хранилище всех сущностей партии и ее состояния.
type ECS struct {
	NextID      types.EntityID
	Towers      *Registry[component.Tower]
	Enemies     *Registry[component.Enemy]
	Projectiles *Registry[component.Projectile]
	Session     *component.Session
}

func NewECS(autoWave bool) *ECS {
	return &ECS{
		NextID:      1,
		Towers:      NewRegistry[component.Tower](),
		Enemies:     NewRegistry[component.Enemy](),
		Projectiles: NewRegistry[component.Projectile](),
		Session:     component.NewSession(autoWave),
	}
}

// NewEntity выдает новый ID. ID не переиспользуются даже после Reset,
// поэтому устаревшая ссылка никогда не укажет на чужую сущность.
func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Reset очищает реестры и начинает новую сессию, сохраняя режим автостарта
// волн и выбранный тип башни.
func (ecs *ECS) Reset() {
	autoWave := ecs.Session.AutoWave
	buildType := ecs.Session.BuildType
	ecs.Towers.Reset()
	ecs.Enemies.Reset()
	ecs.Projectiles.Reset()
	ecs.Session = component.NewSession(autoWave)
	ecs.Session.BuildType = buildType
}

// TowerAt ищет башню, стоящую в клетке.
func (ecs *ECS) TowerAt(cellX, cellY int) (*component.Tower, bool) {
	var found *component.Tower
	ecs.Towers.Each(func(_ types.EntityID, t *component.Tower) {
		if found == nil && t.CellX == cellX && t.CellY == cellY {
			found = t
		}
	})
	return found, found != nil
}
