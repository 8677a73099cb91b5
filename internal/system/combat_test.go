package system

import (
	"math"
	"testing"

	"go-scurve-defense/internal/defs"
	"go-scurve-defense/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombat_TargetsFurthestAlongInRange(t *testing.T) {
	f := newFixture(t)
	tower := f.addTower(defs.TowerCannon, 1, 0, 0)

	near := f.addEnemy(defs.EnemyNormal, 50, 0)
	near.Distance = 100
	best := f.addEnemy(defs.EnemyNormal, 100, 0)
	best.Distance = 300
	far := f.addEnemy(defs.EnemyNormal, 500, 0)
	far.Distance = 900
	dead := f.addEnemy(defs.EnemyNormal, 10, 0)
	dead.Distance = 1000
	dead.Dead = true

	f.combat.Update()

	projectiles := f.ecs.Projectiles.All()
	require.Len(t, projectiles, 1)
	assert.Equal(t, best.ID, projectiles[0].TargetID)
	assert.Equal(t, 25, projectiles[0].Damage)
	assert.Equal(t, tower.FireInterval, tower.Cooldown)
	assert.InDelta(t, 0, tower.Angle, 1e-12)

	cues := f.drain(event.SoundCue)
	require.Len(t, cues, 1)
	assert.Equal(t, event.SoundData{Cue: event.CueCannon}, cues[0].Data)
}

func TestCombat_FacesTargetEveryTickButFiresOnCooldown(t *testing.T) {
	f := newFixture(t)
	tower := f.addTower(defs.TowerSniper, 1, 0, 0)
	enemy := f.addEnemy(defs.EnemyTank, 100, 0)

	f.combat.Update()
	require.Equal(t, 1, f.ecs.Projectiles.Len())

	enemy.Position.X, enemy.Position.Y = 0, 100
	f.combat.Update()
	assert.InDelta(t, math.Pi/2, tower.Angle, 1e-12)
	assert.Equal(t, 1, f.ecs.Projectiles.Len())
	assert.Equal(t, tower.FireInterval-1, tower.Cooldown)

	// после полной перезарядки — новый выстрел
	for i := 0; i < tower.FireInterval-1; i++ {
		f.combat.Update()
	}
	assert.Equal(t, 2, f.ecs.Projectiles.Len())
}

func TestCombat_TieGoesToFirstRegistered(t *testing.T) {
	f := newFixture(t)
	f.addTower(defs.TowerRapid, 1, 0, 0)
	first := f.addEnemy(defs.EnemyNormal, 30, 0)
	second := f.addEnemy(defs.EnemyNormal, 0, 30)
	first.Distance, second.Distance = 50, 50

	f.combat.Update()
	assert.Equal(t, first.ID, f.ecs.Projectiles.All()[0].TargetID)
}

func TestCombat_NoTargetNoShot(t *testing.T) {
	f := newFixture(t)
	tower := f.addTower(defs.TowerCannon, 1, 0, 0)
	f.addEnemy(defs.EnemyNormal, 161, 0)

	f.combat.Update()
	assert.Zero(t, f.ecs.Projectiles.Len())
	assert.Zero(t, tower.Cooldown)
	assert.Empty(t, f.drain())
}

func TestCombat_MortarFiresBallisticShot(t *testing.T) {
	f := newFixture(t)
	f.addTower(defs.TowerMortar, 1, 0, 0)
	f.addEnemy(defs.EnemyTank, 200, 0)

	f.combat.Update()
	p := f.ecs.Projectiles.All()[0]
	assert.True(t, p.Ballistic)
	assert.Equal(t, 200.0, p.Impact.X)
	assert.InDelta(t, 200/4.5, p.FlightTime, 1e-9)
	assert.InDelta(t, 110, p.ArcHeight, 1e-9)
}
