package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedRandom struct {
	values []float64
	i      int
}

func (f *fixedRandom) Float64() float64 {
	v := f.values[f.i%len(f.values)]
	f.i++
	return v
}

func TestEffectiveStats(t *testing.T) {
	tests := []struct {
		tower TowerType
		level int
		want  Stats
	}{
		{TowerCannon, 1, Stats{Range: 160, FireInterval: 55, Damage: 25}},
		{TowerCannon, 2, Stats{Range: 216, FireInterval: 41, Damage: 34}},
		{TowerCannon, 3, Stats{Range: 272, FireInterval: 32, Damage: 43}},
		{TowerRapid, 3, Stats{Range: 213, FireInterval: 7, Damage: 17}},
		{TowerFreeze, 3, Stats{Range: 264, FireInterval: 68, Damage: 0}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EffectiveStats(tt.tower, tt.level), "%s level %d", tt.tower, tt.level)
	}
}

func TestEffectiveStats_FireIntervalFloor(t *testing.T) {
	saved := TowerLibrary
	t.Cleanup(func() { TowerLibrary = saved })

	TowerLibrary[TowerRapid].FireInterval = 6
	assert.Equal(t, 5, EffectiveStats(TowerRapid, 3).FireInterval)
}

func TestUpgradeCostAndSellValue(t *testing.T) {
	c, ok := UpgradeCost(1)
	assert.True(t, ok)
	assert.Equal(t, 100, c)
	c, ok = UpgradeCost(2)
	assert.True(t, ok)
	assert.Equal(t, 200, c)
	_, ok = UpgradeCost(3)
	assert.False(t, ok)

	assert.Equal(t, 32, SellValue(TowerCannon, 1))  // 50 * 0.65
	assert.Equal(t, 97, SellValue(TowerCannon, 2))  // 150 * 0.65
	assert.Equal(t, 227, SellValue(TowerCannon, 3)) // 350 * 0.65
	assert.Equal(t, 162, SellValue(TowerMortar, 1)) // 250 * 0.65
}

func TestTower_PanicsOnUnknownType(t *testing.T) {
	assert.Panics(t, func() { Tower(TowerType(99)) })
	assert.Panics(t, func() { Enemy(EnemyType(-1)) })
}

func TestParseTowerType(t *testing.T) {
	tt, ok := ParseTowerType("tesla")
	assert.True(t, ok)
	assert.Equal(t, TowerTesla, tt)
	_, ok = ParseTowerType("laser")
	assert.False(t, ok)
	assert.Equal(t, "mortar", TowerMortar.String())
}

func TestEnemyScaling(t *testing.T) {
	assert.Equal(t, 80, ScaledHealth(EnemyNormal, 1))
	assert.Equal(t, 86, ScaledHealth(EnemyNormal, WaveScale(2)))
	assert.Equal(t, 1.5, ScaledSpeed(EnemyNormal, 3))

	// босс ускоряется, но не более чем в 1.5 раза
	assert.InDelta(t, 0.8*(1+0.4*0.35), ScaledSpeed(EnemyBoss, 1.4), 1e-9)
	assert.InDelta(t, 0.8*1.5, ScaledSpeed(EnemyBoss, 10), 1e-9)

	assert.Equal(t, 50, EscapeDamage(EnemyFinalBoss))
	assert.Equal(t, 10, EscapeDamage(EnemyBoss))
	assert.True(t, EnemyElite.BossTier())
	assert.False(t, EnemyTank.BossTier())
}

func TestWaveAndBossScale(t *testing.T) {
	assert.Equal(t, 1.0, WaveScale(1))
	assert.InDelta(t, 1.63, WaveScale(10), 1e-9)
	assert.Equal(t, 1.0, BossScale(5))
	assert.InDelta(t, 1.4, BossScale(10), 1e-9)
	assert.InDelta(t, 2.2, BossScale(20), 1e-9)
}

func TestComposeWave_Regular(t *testing.T) {
	rng := &fixedRandom{values: []float64{0.1, 0.6, 0.9}}
	orders := ComposeWave(1, rng)

	require.Len(t, orders, 11) // floor(9 + 2.5)
	assert.Equal(t, EnemyNormal, orders[0].Type)
	assert.Equal(t, EnemyFast, orders[1].Type)
	assert.Equal(t, EnemyTank, orders[2].Type)
	for i, o := range orders {
		assert.Equal(t, 1.0, o.Scale)
		assert.GreaterOrEqual(t, o.Delay, 0)
		if i > 0 {
			assert.Greater(t, o.Delay, orders[i-1].Delay)
		}
	}
	assert.Len(t, ComposeWave(4, rng), 19)
}

func TestComposeWave_BossWaves(t *testing.T) {
	rng := &fixedRandom{values: []float64{0.2}}

	five := ComposeWave(5, rng)
	require.Len(t, five, 2)
	for _, o := range five {
		assert.Equal(t, EnemyBoss, o.Type)
	}
	assert.Equal(t, 0, five[0].Delay)
	assert.Equal(t, 84, five[1].Delay)
	assert.InDelta(t, 1.08, five[1].Scale, 1e-9)

	ten := ComposeWave(10, rng)
	bosses, escorts := 0, 0
	for _, o := range ten {
		if o.Type == EnemyBoss {
			bosses++
		} else {
			escorts++
			assert.Equal(t, EnemyFast, o.Type)
		}
	}
	assert.Equal(t, 3, bosses)
	assert.Equal(t, 6, escorts)
}

func TestComposeWave_FinalWaveIsScripted(t *testing.T) {
	rng := &fixedRandom{values: []float64{0.99}}
	orders := ComposeWave(20, rng)

	require.Len(t, orders, len(FinalWaveScript))
	assert.Equal(t, 0, rng.i, "final wave must not draw random numbers")

	finals := 0
	for _, o := range orders {
		if o.Type == EnemyFinalBoss {
			finals++
			assert.Equal(t, 1.0, o.Scale)
			assert.Equal(t, 570, o.Delay)
		}
	}
	assert.Equal(t, 1, finals)
	assert.InDelta(t, 2.2*1.35, orders[9].Scale, 1e-9)
	assert.InDelta(t, WaveScale(20)*1.5, orders[0].Scale, 1e-9)
}

func TestLoadTowerDefinitions(t *testing.T) {
	saved := TowerLibrary
	t.Cleanup(func() { TowerLibrary = saved })

	dir := t.TempDir()
	path := filepath.Join(dir, "towers.json")
	data := `[{"id": "cannon", "cost": 55, "range": 150, "fire_interval": 50, "damage": 30}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	n, err := LoadTowerDefinitions(path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 55, Tower(TowerCannon).Cost)
	assert.Equal(t, "Cannon", Tower(TowerCannon).Name)
	assert.Equal(t, saved[TowerCannon].Color, Tower(TowerCannon).Color)
	assert.Equal(t, saved[TowerSniper], Tower(TowerSniper))
}

func TestLoadTowerDefinitions_Errors(t *testing.T) {
	saved := TowerLibrary
	t.Cleanup(func() { TowerLibrary = saved })
	dir := t.TempDir()

	_, err := LoadTowerDefinitions(filepath.Join(dir, "missing.json"))
	assert.ErrorContains(t, err, "failed to read")

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`[{"id":"laser","cost":1,"range":1,"fire_interval":1}]`), 0644))
	_, err = LoadTowerDefinitions(bad)
	assert.ErrorContains(t, err, "unknown tower id")

	zero := filepath.Join(dir, "zero.json")
	require.NoError(t, os.WriteFile(zero, []byte(`[{"id":"rapid","cost":0,"range":1,"fire_interval":1}]`), 0644))
	_, err = LoadTowerDefinitions(zero)
	assert.ErrorContains(t, err, "invalid stats")
	assert.Equal(t, saved, TowerLibrary, "failed load must not change the library")
}
