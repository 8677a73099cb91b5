// internal/system/impact.go
package system

import (
	"math"

	"go-scurve-defense/internal/component"
	"go-scurve-defense/internal/config"
	"go-scurve-defense/internal/defs"
	"go-scurve-defense/internal/event"
	"go-scurve-defense/internal/types"
)

// impact — попадание снаряда. target может быть nil только у миномета.
type impact struct {
	proj   *component.Projectile
	target *component.Enemy
}

type impactFunc func(s *ProjectileSystem, hit impact)

// impactTable — эффект попадания для каждого типа башни.
// Новый тип башни добавляется сюда одной строкой.
var impactTable = map[defs.TowerType]impactFunc{
	defs.TowerCannon: resolveSplash,
	defs.TowerSniper: resolveDirect,
	defs.TowerRapid:  resolveDirect,
	defs.TowerFreeze: resolveFreeze,
	defs.TowerFire:   resolveBurn,
	defs.TowerTesla:  resolveChain,
	defs.TowerMortar: resolveMortar,
}

func (s *ProjectileSystem) resolveImpact(proj *component.Projectile, target *component.Enemy) {
	resolve, ok := impactTable[proj.TowerType]
	if !ok {
		resolve = resolveDirect
	}
	if target == nil && !proj.Ballistic {
		return
	}
	resolve(s, impact{proj: proj, target: target})
}

func resolveDirect(s *ProjectileSystem, hit impact) {
	ApplyDamage(s.ecs, s.eventDispatcher, hit.target, hit.proj.Damage)
}

// damageArea наносит damage каждому живому врагу строго ближе radius к center.
func (s *ProjectileSystem) damageArea(center component.Position, radius float64, damage int) {
	s.ecs.Enemies.Each(func(_ types.EntityID, enemy *component.Enemy) {
		if enemy.Dead || enemy.Position.DistanceTo(center) >= radius {
			return
		}
		ApplyDamage(s.ecs, s.eventDispatcher, enemy, damage)
	})
}

func resolveSplash(s *ProjectileSystem, hit impact) {
	center := hit.target.Position
	s.damageArea(center, config.CannonSplashRadius, hit.proj.Damage)
	emit(s.ecs, s.eventDispatcher, event.Explosion, event.ExplosionData{X: center.X, Y: center.Y, Radius: config.CannonSplashRadius})
}

func resolveMortar(s *ProjectileSystem, hit impact) {
	center := hit.proj.Impact
	s.damageArea(center, config.MortarAoeRadius, hit.proj.Damage)
	emit(s.ecs, s.eventDispatcher, event.Explosion, event.ExplosionData{X: center.X, Y: center.Y, Radius: config.MortarAoeRadius, Big: true})
}

func resolveFreeze(s *ProjectileSystem, hit impact) {
	center := hit.target.Position
	canBypass := hit.proj.TowerLevel >= config.FreezeImmuneBypassLv
	s.ecs.Enemies.Each(func(_ types.EntityID, enemy *component.Enemy) {
		if enemy.Dead || enemy.Position.DistanceTo(center) >= config.FreezeAoeRadius {
			return
		}
		if !enemy.ImmuneToSlow || canBypass {
			enemy.Frozen = config.FreezeDuration
			return
		}
		if enemy == hit.target {
			emit(s.ecs, s.eventDispatcher, event.FreezeImmune, event.FreezeImmuneData{EnemyID: enemy.ID, X: enemy.Position.X, Y: enemy.Position.Y})
		}
	})
	emit(s.ecs, s.eventDispatcher, event.FreezeBurst, event.PointData{X: center.X, Y: center.Y, Radius: config.FreezeAoeRadius})
}

// resolveBurn только вешает горение; урон наносит StatusEffectSystem.
func resolveBurn(s *ProjectileSystem, hit impact) {
	hit.target.BurnDamage = hit.proj.Damage
	hit.target.BurnTimer = config.BurnDuration
	hit.target.BurnTick = config.BurnTickInterval
}

// resolveChain бьет основную цель, затем до 1+level раз перескакивает на
// ближайшего еще не задетого живого врага в радиусе цепи от предыдущего.
func resolveChain(s *ProjectileSystem, hit impact) {
	proj := hit.proj
	primary := hit.target

	ApplyDamage(s.ecs, s.eventDispatcher, primary, proj.Damage)
	emit(s.ecs, s.eventDispatcher, event.ChainArc, event.ChainArcData{
		FromX: proj.Origin.X, FromY: proj.Origin.Y,
		ToX: primary.Position.X, ToY: primary.Position.Y,
		Damage: proj.Damage,
	})

	hitSet := map[types.EntityID]bool{primary.ID: true}
	prev := primary
	maxChain := 1 + proj.TowerLevel
	for hop := 0; hop < maxChain; hop++ {
		var next *component.Enemy
		bestDist := math.Inf(1)
		s.ecs.Enemies.Each(func(id types.EntityID, enemy *component.Enemy) {
			if enemy.Dead || hitSet[id] {
				return
			}
			d := enemy.Position.DistanceTo(prev.Position)
			if d < config.TeslaChainRadius && d < bestDist {
				bestDist = d
				next = enemy
			}
		})
		if next == nil {
			break
		}

		hitSet[next.ID] = true
		damage := ChainDamage(proj.Damage, hop)
		emit(s.ecs, s.eventDispatcher, event.ChainArc, event.ChainArcData{
			FromX: prev.Position.X, FromY: prev.Position.Y,
			ToX: next.Position.X, ToY: next.Position.Y,
			Damage: damage,
		})
		ApplyDamage(s.ecs, s.eventDispatcher, next, damage)
		prev = next
	}
}

// ChainDamage — урон hop-го перескока (с нуля): round(damage * 0.75^(hop+1)).
func ChainDamage(damage, hop int) int {
	return int(math.Round(float64(damage) * math.Pow(config.TeslaChainDecay, float64(hop+1))))
}
