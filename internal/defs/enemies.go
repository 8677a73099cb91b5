// internal/defs/enemies.go
package defs

import (
	"fmt"
	"image/color"
	"math"

	"go-scurve-defense/internal/config"
)

// EnemyType is the closed set of enemy kinds.
type EnemyType int

const (
	EnemyNormal EnemyType = iota
	EnemyFast
	EnemyTank
	EnemyBoss
	EnemyElite
	EnemyFinalBoss

	enemyTypeCount
)

// Valid reports whether t is one of the declared enemy types.
func (t EnemyType) Valid() bool { return t >= 0 && t < enemyTypeCount }

func (t EnemyType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("EnemyType(%d)", int(t))
	}
	return EnemyLibrary[t].ID
}

// BossTier reports whether the type gets boss speed scaling and a boss death effect.
func (t EnemyType) BossTier() bool {
	return t == EnemyBoss || t == EnemyElite || t == EnemyFinalBoss
}

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID           string
	Health       int
	Speed        float64 // pixels per tick
	Size         float64
	Bounty       int
	ImmuneToSlow bool
	Color        color.RGBA
}

// EnemyLibrary is indexed by EnemyType.
var EnemyLibrary = [enemyTypeCount]EnemyDefinition{
	EnemyNormal:    {ID: "normal", Health: 80, Speed: 1.5, Size: 30, Bounty: 14, Color: color.RGBA{196, 48, 48, 255}},
	EnemyFast:      {ID: "fast", Health: 35, Speed: 2.8, Size: 26, Bounty: 10, Color: color.RGBA{58, 122, 212, 255}},
	EnemyTank:      {ID: "tank", Health: 180, Speed: 0.85, Size: 36, Bounty: 22, Color: color.RGBA{58, 138, 58, 255}},
	EnemyBoss:      {ID: "boss", Health: 600, Speed: 0.8, Size: 58, Bounty: 70, Color: color.RGBA{26, 26, 46, 255}},
	EnemyElite:     {ID: "elite", Health: 2200, Speed: 0.95, Size: 66, Bounty: 140, ImmuneToSlow: true, Color: color.RGBA{58, 0, 16, 255}},
	EnemyFinalBoss: {ID: "finalBoss", Health: 8000, Speed: 0.55, Size: 78, Bounty: 300, ImmuneToSlow: true, Color: color.RGBA{17, 0, 34, 255}},
}

// Enemy returns the definition of t. An unknown type is a programming error.
func Enemy(t EnemyType) EnemyDefinition {
	if !t.Valid() {
		panic(fmt.Sprintf("defs: unknown enemy type %d", int(t)))
	}
	return EnemyLibrary[t]
}

// EscapeDamage is the player health lost when an enemy of type t reaches the exit.
func EscapeDamage(t EnemyType) int {
	if t == EnemyFinalBoss {
		return config.FinalBossEscapeDamage
	}
	return config.EscapeDamage
}

// ScaledHealth applies the wave scale multiplier to base health.
func ScaledHealth(t EnemyType, scale float64) int {
	return int(math.Round(float64(Enemy(t).Health) * scale))
}

// ScaledSpeed leaves regular enemies at base speed; boss-tier speed grows with
// the scale multiplier but never exceeds 1.5x base.
func ScaledSpeed(t EnemyType, scale float64) float64 {
	base := Enemy(t).Speed
	if !t.BossTier() {
		return base
	}
	return math.Min(base*(1+(scale-1)*0.35), base*1.5)
}
