package defs

import (
	"math"

	"go-scurve-defense/internal/config"
)

// RandomSource is the part of the PRNG the wave composer needs.
type RandomSource interface {
	Float64() float64
}

// WaveScale is the linear health multiplier for regular enemies.
func WaveScale(wave int) float64 {
	return 1 + float64(wave-1)*0.07
}

// BossScale grows in steps every fifth wave.
func BossScale(wave int) float64 {
	return 1 + float64(wave/5-1)*0.4
}

// SpawnOrder is one scheduled enemy of a wave.
type SpawnOrder struct {
	Type  EnemyType
	Delay int // ticks after the wave starts
	Scale float64
}

// scaleBasis selects which wave multiplier a scripted spawn is built on.
type scaleBasis int

const (
	basisWave  scaleBasis = iota // WaveScale
	basisBoss                    // BossScale
	basisElite                   // BossScale * 1.35
	basisFixed                   // 1
)

// ScriptedSpawn is one entry of a hand-written wave timeline.
type ScriptedSpawn struct {
	Type   EnemyType
	AtMs   float64
	basis  scaleBasis
	Factor float64
}

// FinalWaveScript is the timeline of wave MaxWaves.
var FinalWaveScript = []ScriptedSpawn{
	{EnemyFast, 0, basisWave, 1.5},
	{EnemyFast, 300, basisWave, 1.5},
	{EnemyTank, 600, basisWave, 1.5},
	{EnemyFast, 900, basisWave, 1.5},
	{EnemyTank, 1200, basisWave, 1.5},
	{EnemyNormal, 1500, basisWave, 1.5},
	{EnemyNormal, 1800, basisWave, 1.5},
	{EnemyBoss, 2500, basisBoss, 1},
	{EnemyBoss, 3500, basisBoss, 1.1},
	{EnemyElite, 5000, basisElite, 1},
	{EnemyElite, 6500, basisElite, 1.1},
	{EnemyFast, 7000, basisWave, 1.5},
	{EnemyTank, 7300, basisWave, 1.5},
	{EnemyNormal, 7600, basisWave, 1.5},
	{EnemyFast, 7900, basisWave, 1.5},
	{EnemyFinalBoss, 9500, basisFixed, 1},
}

// threshold maps a uniform draw below Limit to Type.
type threshold struct {
	Limit float64
	Type  EnemyType
}

var (
	regularMix = []threshold{{0.55, EnemyNormal}, {0.8, EnemyFast}, {1, EnemyTank}}
	escortMix  = []threshold{{0.45, EnemyFast}, {0.75, EnemyNormal}, {1, EnemyTank}}
)

func pick(mix []threshold, r float64) EnemyType {
	for _, th := range mix {
		if r < th.Limit {
			return th.Type
		}
	}
	return mix[len(mix)-1].Type
}

const (
	regularBaseCount   = 9
	regularPerWave     = 2.5
	regularStaggerMs   = 380
	bossStaggerMs      = 1400
	bossScaleStep      = 0.08
	escortFirstWave    = 10
	escortStartMs      = 600
	escortStaggerMs    = 350
	escortOddOffsetMs  = 700
	eliteScaleMultiple = 1.35
)

// IsBossWave reports whether wave uses the boss composition.
func IsBossWave(wave int) bool {
	return wave%5 == 0 && wave != config.MaxWaves
}

// ComposeWave returns the spawn orders of wave; they are not sorted by delay.
// The only randomness is the choice among normal, fast and tank.
func ComposeWave(wave int, rng RandomSource) []SpawnOrder {
	ws, bs := WaveScale(wave), BossScale(wave)

	if wave == config.MaxWaves {
		orders := make([]SpawnOrder, 0, len(FinalWaveScript))
		for _, s := range FinalWaveScript {
			var base float64
			switch s.basis {
			case basisWave:
				base = ws
			case basisBoss:
				base = bs
			case basisElite:
				base = bs * eliteScaleMultiple
			default:
				base = 1
			}
			orders = append(orders, SpawnOrder{Type: s.Type, Delay: config.MsToTicks(s.AtMs), Scale: base * s.Factor})
		}
		return orders
	}

	if IsBossWave(wave) {
		bosses := wave/5 + 1
		orders := make([]SpawnOrder, 0, bosses)
		for i := 0; i < bosses; i++ {
			orders = append(orders, SpawnOrder{
				Type:  EnemyBoss,
				Delay: config.MsToTicks(float64(i * bossStaggerMs)),
				Scale: bs * (1 + float64(i)*bossScaleStep),
			})
		}
		if wave >= escortFirstWave {
			escorts := int(math.Floor(float64(wave) / 5 * 3))
			for i := 0; i < escorts; i++ {
				ms := escortStartMs + i*escortStaggerMs
				if i%2 != 0 {
					ms += escortOddOffsetMs
				}
				orders = append(orders, SpawnOrder{
					Type:  pick(escortMix, rng.Float64()),
					Delay: config.MsToTicks(float64(ms)),
					Scale: ws,
				})
			}
		}
		return orders
	}

	n := int(math.Floor(regularBaseCount + float64(wave)*regularPerWave))
	orders := make([]SpawnOrder, 0, n)
	for i := 0; i < n; i++ {
		orders = append(orders, SpawnOrder{
			Type:  pick(regularMix, rng.Float64()),
			Delay: config.MsToTicks(float64(i * regularStaggerMs)),
			Scale: ws,
		})
	}
	return orders
}
