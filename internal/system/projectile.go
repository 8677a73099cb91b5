// internal/system/projectile.go
package system

import (
	"go-scurve-defense/internal/component"
	"go-scurve-defense/internal/config"
	"go-scurve-defense/internal/entity"
	"go-scurve-defense/internal/event"
	"go-scurve-defense/internal/types"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

func (s *ProjectileSystem) Update() {
	s.ecs.Projectiles.Each(func(_ types.EntityID, proj *component.Projectile) {
		if !proj.Active {
			return
		}
		if proj.Ballistic {
			s.updateBallistic(proj)
			return
		}
		s.updateHoming(proj)
	})
}

func (s *ProjectileSystem) updateBallistic(proj *component.Projectile) {
	proj.Elapsed++
	t := float64(proj.Elapsed) / proj.FlightTime
	proj.Height = proj.ArcHeight * 4 * t * (1 - t)
	proj.Position = component.Position{
		X: proj.Origin.X + (proj.Impact.X-proj.Origin.X)*t,
		Y: proj.Origin.Y + (proj.Impact.Y-proj.Origin.Y)*t - proj.Height,
	}
	if float64(proj.Elapsed) >= proj.FlightTime {
		// Попадание не зависит от того, жива ли цель
		target, _ := s.ecs.Enemies.Get(proj.TargetID)
		s.resolveImpact(proj, target)
		proj.Active = false
	}
}

func (s *ProjectileSystem) updateHoming(proj *component.Projectile) {
	target, ok := s.ecs.Enemies.Get(proj.TargetID)
	if !ok || target.Dead {
		// Цель пропала — снаряд исчезает без эффекта
		proj.Active = false
		return
	}

	dist := proj.Position.DistanceTo(target.Position)
	if dist < config.ProjectileHitRadius {
		s.resolveImpact(proj, target)
		proj.Active = false
		return
	}

	proj.Position.X += (target.Position.X - proj.Position.X) / dist * config.ProjectileSpeed
	proj.Position.Y += (target.Position.Y - proj.Position.Y) / dist * config.ProjectileSpeed
}
