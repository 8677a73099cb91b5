package system

import (
	"testing"

	"go-scurve-defense/internal/component"
	"go-scurve-defense/internal/defs"
	"go-scurve-defense/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectile_HomingMovesTowardTarget(t *testing.T) {
	f := newFixture(t)
	enemy := f.addEnemy(defs.EnemyTank, 100, 0)
	p := f.addShot(defs.TowerSniper, 1, 65, enemy)
	p.Position = component.Position{}

	f.projectile.Update()
	assert.InDelta(t, 7, p.Position.X, 1e-9)
	assert.True(t, p.Active)
	assert.Equal(t, 180, enemy.Health)
}

func TestProjectile_DirectHit(t *testing.T) {
	f := newFixture(t)
	enemy := f.addEnemy(defs.EnemyNormal, 100, 0)
	p := f.addShot(defs.TowerSniper, 1, 65, enemy)
	p.Position = component.Position{X: 91, Y: 0}

	f.projectile.Update()
	assert.False(t, p.Active)
	assert.Equal(t, 15, enemy.Health)
}

func TestProjectile_StaleTargetHasNoEffect(t *testing.T) {
	f := newFixture(t)
	enemy := f.addEnemy(defs.EnemyNormal, 100, 0)
	p := f.addShot(defs.TowerCannon, 1, 25, enemy)
	f.ecs.Enemies.Remove(enemy.ID)
	other := f.addEnemy(defs.EnemyNormal, 100, 0)

	f.projectile.Update()
	assert.False(t, p.Active)
	assert.Equal(t, 80, other.Health)
	assert.Empty(t, f.drain())
}

func TestImpact_SplashSymmetry(t *testing.T) {
	f := newFixture(t)
	target := f.addEnemy(defs.EnemyTank, 200, 200)
	inside := []*component.Enemy{
		target,
		f.addEnemy(defs.EnemyTank, 230, 200),
		f.addEnemy(defs.EnemyTank, 200, 267.9),
		f.addEnemy(defs.EnemyTank, 152, 152),
	}
	outside := []*component.Enemy{
		f.addEnemy(defs.EnemyTank, 268, 200),
		f.addEnemy(defs.EnemyTank, 200, 110),
	}

	f.addShot(defs.TowerCannon, 1, 25, target)
	f.projectile.Update()

	for _, e := range inside {
		assert.Equal(t, 155, e.Health, "enemy at %+v", e.Position)
	}
	for _, e := range outside {
		assert.Equal(t, 180, e.Health, "enemy at %+v", e.Position)
	}

	explosions := f.drain(event.Explosion)
	require.Len(t, explosions, 1)
	assert.Equal(t, event.ExplosionData{X: 200, Y: 200, Radius: 68}, explosions[0].Data)
}

func TestImpact_KillBookkeepingUnderOverlappingAOE(t *testing.T) {
	f := newFixture(t)
	a := f.addEnemy(defs.EnemyNormal, 300, 300)
	b := f.addEnemy(defs.EnemyNormal, 310, 300)
	c := f.addEnemy(defs.EnemyFast, 300, 320)

	for i := 0; i < 2; i++ {
		p := f.addShot(defs.TowerMortar, 1, 90, a)
		p.Ballistic = true
		p.Impact = a.Position
		p.FlightTime = 1
	}
	money := f.ecs.Session.Money

	f.projectile.Update()

	for _, e := range []*component.Enemy{a, b, c} {
		assert.True(t, e.Dead)
	}
	assert.Equal(t, 3, f.ecs.Session.Kills)
	assert.Equal(t, money+14+14+10, f.ecs.Session.Money)
	assert.Len(t, f.drain(event.EnemyKilled), 3)

	assert.False(t, ApplyDamage(f.ecs, f.dispatcher, a, 100))
	assert.Equal(t, 3, f.ecs.Session.Kills)
}

func TestImpact_FreezeRespectsImmunityBelowLevelThree(t *testing.T) {
	f := newFixture(t)
	elite := f.addEnemy(defs.EnemyElite, 400, 200)
	normal := f.addEnemy(defs.EnemyNormal, 440, 200)
	f.addShot(defs.TowerFreeze, 1, 0, elite)

	f.projectile.Update()
	assert.Equal(t, 0, elite.Frozen)
	assert.Equal(t, 160, normal.Frozen)
	immune := f.drain(event.FreezeImmune)
	require.Len(t, immune, 1)
	assert.Equal(t, elite.ID, immune[0].Data.(event.FreezeImmuneData).EnemyID)

	f.addShot(defs.TowerFreeze, 3, 0, elite)
	f.projectile.Update()
	assert.Equal(t, 160, elite.Frozen)
	assert.Empty(t, f.drain(event.FreezeImmune))
}

func TestImpact_BurnAppliesOverTime(t *testing.T) {
	f := newFixture(t)
	enemy := f.addEnemy(defs.EnemyTank, 100, 100)
	f.addShot(defs.TowerFire, 1, 8, enemy)

	f.projectile.Update()
	assert.Equal(t, 180, enemy.Health, "burn deals no damage on impact")
	assert.Equal(t, 120, enemy.BurnTimer)
	assert.Equal(t, 20, enemy.BurnTick)

	for i := 0; i < 19; i++ {
		f.status.Update()
	}
	assert.Equal(t, 180, enemy.Health)
	f.status.Update()
	assert.Equal(t, 172, enemy.Health)

	for i := 0; i < 200; i++ {
		f.status.Update()
	}
	assert.Equal(t, 180-6*8, enemy.Health)
	assert.False(t, enemy.Burning())
}

func TestImpact_BurnCanKill(t *testing.T) {
	f := newFixture(t)
	enemy := f.addEnemy(defs.EnemyFast, 100, 100)
	enemy.Health = 5
	enemy.BurnDamage, enemy.BurnTimer, enemy.BurnTick = 8, 120, 1

	f.status.Update()
	assert.True(t, enemy.Dead)
	assert.Equal(t, 1, f.ecs.Session.Kills)

	// мертвый враг больше не двигается
	f.movement.Update()
	assert.Zero(t, enemy.Distance)
}

func TestImpact_ChainDecaysAndSkipsHitEnemies(t *testing.T) {
	f := newFixture(t)
	primary := f.addEnemy(defs.EnemyTank, 0, 300)
	second := f.addEnemy(defs.EnemyTank, 100, 300)
	third := f.addEnemy(defs.EnemyTank, 200, 300)
	fourth := f.addEnemy(defs.EnemyTank, 300, 300)
	f.addShot(defs.TowerTesla, 1, 30, primary)

	f.projectile.Update()
	assert.Equal(t, 150, primary.Health)
	assert.Equal(t, 180-23, second.Health)
	assert.Equal(t, 180-17, third.Health)
	assert.Equal(t, 180, fourth.Health, "level 1 chains at most twice")
	assert.Len(t, f.drain(event.ChainArc), 3)
}

func TestImpact_ChainStopsOutsideRadius(t *testing.T) {
	f := newFixture(t)
	primary := f.addEnemy(defs.EnemyTank, 0, 300)
	far := f.addEnemy(defs.EnemyTank, 130, 300)
	f.addShot(defs.TowerTesla, 3, 30, primary)

	f.projectile.Update()
	assert.Equal(t, 180, far.Health)
	assert.Len(t, f.drain(event.ChainArc), 1)
}

func TestChainDamage(t *testing.T) {
	assert.Equal(t, 23, ChainDamage(30, 0))
	assert.Equal(t, 17, ChainDamage(30, 1))
	assert.Equal(t, 13, ChainDamage(30, 2))
}

func TestImpact_MortarLandsWithoutTarget(t *testing.T) {
	f := newFixture(t)
	victim := f.addEnemy(defs.EnemyNormal, 350, 300)
	p := &ballisticShot{f: f}
	proj := p.fire(component.Position{X: 0, Y: 300}, component.Position{X: 300, Y: 300}, 90)

	for i := 0; i < 39; i++ {
		f.projectile.Update()
	}
	assert.True(t, proj.Active)
	assert.Greater(t, proj.Height, 0.0)

	f.projectile.Update()
	assert.False(t, proj.Active)
	assert.True(t, victim.Dead)
	assert.Equal(t, 1, f.ecs.Session.Kills)
}

type ballisticShot struct{ f *fixture }

// fire запускает мину по точке, цель которой уже не существует.
func (b *ballisticShot) fire(from, to component.Position, damage int) *component.Projectile {
	id := b.f.ecs.NewEntity()
	p := &component.Projectile{
		ID:         id,
		Origin:     from,
		Position:   from,
		TargetID:   9999,
		Damage:     damage,
		TowerType:  defs.TowerMortar,
		TowerLevel: 1,
		Active:     true,
		Ballistic:  true,
		Impact:     to,
		FlightTime: 40,
		ArcHeight:  165,
	}
	b.f.ecs.Projectiles.Add(id, p)
	return p
}
