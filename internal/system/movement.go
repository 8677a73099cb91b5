// internal/system/movement.go
package system

import (
	"go-scurve-defense/internal/component"
	"go-scurve-defense/internal/defs"
	"go-scurve-defense/internal/entity"
	"go-scurve-defense/internal/event"
	"go-scurve-defense/internal/types"
	"go-scurve-defense/pkg/curve"
)

// MovementSystem продвигает врагов по пути
type MovementSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	path            *curve.Path
	state           *StateSystem
}

func NewMovementSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, path *curve.Path, state *StateSystem) *MovementSystem {
	return &MovementSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		path:            path,
		state:           state,
	}
}

func (s *MovementSystem) Update() {
	s.ecs.Enemies.Each(func(_ types.EntityID, enemy *component.Enemy) {
		if enemy.Dead {
			return
		}

		enemy.Distance += enemy.Speed
		if enemy.Distance >= s.path.Length() {
			s.escape(enemy)
			return
		}
		enemy.Position = component.PositionOf(s.path.PositionAtDistance(enemy.Distance))
	})
}

// escape — враг дошел до выхода: он выбывает без награды, игрок теряет здоровье.
func (s *MovementSystem) escape(enemy *component.Enemy) {
	enemy.Dead = true
	enemy.Escaped = true
	damage := defs.EscapeDamage(enemy.Type)
	emit(s.ecs, s.eventDispatcher, event.EnemyEscaped, event.EscapeData{EnemyID: enemy.ID, Type: enemy.Type, Damage: damage})
	s.state.LoseHealth(damage)
}
