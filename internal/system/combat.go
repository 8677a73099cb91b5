// internal/system/combat.go
package system

import (
	"math"

	"go-scurve-defense/internal/component"
	"go-scurve-defense/internal/config"
	"go-scurve-defense/internal/defs"
	"go-scurve-defense/internal/entity"
	"go-scurve-defense/internal/event"
	"go-scurve-defense/internal/types"
	"go-scurve-defense/internal/utils"
)

// CombatSystem управляет атакой башен
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

// Update — один тик для всех башен: перезарядка, выбор цели, поворот, выстрел.
func (s *CombatSystem) Update() {
	s.ecs.Towers.Each(func(_ types.EntityID, tower *component.Tower) {
		if tower.Cooldown > 0 {
			tower.Cooldown--
		}

		target := s.findFurthestEnemyInRange(tower)
		if target == nil {
			return
		}

		// Башня следит за целью каждый тик, даже когда не стреляет
		tower.Angle = utils.AngleTo(tower.Position.X, tower.Position.Y, target.Position.X, target.Position.Y)

		if tower.Cooldown <= 0 {
			s.createProjectile(tower, target)
			tower.Cooldown = tower.FireInterval
			emit(s.ecs, s.eventDispatcher, event.SoundCue, event.SoundData{Cue: event.FireCue(tower.Type)})
		}
	})
}

// findFurthestEnemyInRange выбирает живого врага в радиусе, дальше всех прошедшего по пути.
// При равенстве побеждает первый в реестре.
func (s *CombatSystem) findFurthestEnemyInRange(tower *component.Tower) *component.Enemy {
	var best *component.Enemy
	bestDistance := -1.0
	s.ecs.Enemies.Each(func(_ types.EntityID, enemy *component.Enemy) {
		if enemy.Dead {
			return
		}
		if tower.Position.DistanceTo(enemy.Position) > tower.Range {
			return
		}
		if enemy.Distance > bestDistance {
			bestDistance = enemy.Distance
			best = enemy
		}
	})
	return best
}

func (s *CombatSystem) createProjectile(tower *component.Tower, target *component.Enemy) {
	projID := s.ecs.NewEntity()
	proj := &component.Projectile{
		ID:         projID,
		Origin:     tower.Position,
		Position:   tower.Position,
		TargetID:   target.ID,
		Damage:     tower.Damage,
		TowerType:  tower.Type,
		TowerLevel: tower.Level,
		Active:     true,
	}

	// Миномет бьет по точке, где цель была в момент выстрела
	if tower.Type == defs.TowerMortar {
		dist := tower.Position.DistanceTo(target.Position)
		proj.Ballistic = true
		proj.Impact = target.Position
		proj.FlightTime = math.Max(config.MortarMinFlight, dist/config.MortarFlightDivisor)
		proj.ArcHeight = math.Min(config.MortarMaxArc, dist*config.MortarArcFactor)
	}

	s.ecs.Projectiles.Add(projID, proj)
}
