// internal/system/status_effect.go
package system

import (
	"go-scurve-defense/internal/component"
	"go-scurve-defense/internal/config"
	"go-scurve-defense/internal/entity"
	"go-scurve-defense/internal/event"
	"go-scurve-defense/internal/types"
)

// StatusEffectSystem управляет заморозкой и горением врагов.
type StatusEffectSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewStatusEffectSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Update обрабатывает все активные эффекты. Враг, сгоревший в этом тике,
// помечается мертвым и дальше не двигается.
func (s *StatusEffectSystem) Update() {
	s.ecs.Enemies.Each(func(_ types.EntityID, enemy *component.Enemy) {
		if enemy.Dead {
			return
		}

		// Скорость на этот тик определяется до уменьшения таймера
		if enemy.Frozen > 0 {
			enemy.Speed = enemy.BaseSpeed * config.FreezeSpeedFactor
			enemy.Frozen--
		} else {
			enemy.Speed = enemy.BaseSpeed
		}

		if enemy.BurnTimer > 0 {
			enemy.BurnTimer--
			enemy.BurnTick--
			if enemy.BurnTick <= 0 {
				enemy.BurnTick = config.BurnTickInterval
				ApplyDamage(s.ecs, s.eventDispatcher, enemy, enemy.BurnDamage)
			}
		}
	})
}
