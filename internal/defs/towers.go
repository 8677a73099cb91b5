// internal/defs/towers.go
package defs

import (
	"fmt"
	"image/color"
	"math"

	"go-scurve-defense/internal/config"
)

// TowerType is the closed set of buildable towers.
type TowerType int

const (
	TowerCannon TowerType = iota
	TowerSniper
	TowerRapid
	TowerFreeze
	TowerFire
	TowerTesla
	TowerMortar

	towerTypeCount
)

// TowerTypes lists all tower types in palette order.
var TowerTypes = []TowerType{TowerCannon, TowerSniper, TowerRapid, TowerFreeze, TowerFire, TowerTesla, TowerMortar}

// Valid reports whether t is one of the declared tower types.
func (t TowerType) Valid() bool { return t >= 0 && t < towerTypeCount }

func (t TowerType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("TowerType(%d)", int(t))
	}
	return TowerLibrary[t].ID
}

// ParseTowerType looks a tower type up by its definition ID.
func ParseTowerType(id string) (TowerType, bool) {
	for _, t := range TowerTypes {
		if TowerLibrary[t].ID == id {
			return t, true
		}
	}
	return 0, false
}

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Cost         int        `json:"cost"`
	Range        float64    `json:"range"`
	FireInterval int        `json:"fire_interval"` // ticks between shots
	Damage       int        `json:"damage"`
	Color        color.RGBA `json:"-"`
}

// TowerLibrary is indexed by TowerType. It is filled once at startup and then treated as read-only.
var TowerLibrary = [towerTypeCount]TowerDefinition{
	TowerCannon: {ID: "cannon", Name: "Cannon", Cost: 50, Range: 160, FireInterval: 55, Damage: 25, Color: color.RGBA{46, 139, 87, 255}},
	TowerSniper: {ID: "sniper", Name: "Sniper", Cost: 70, Range: 270, FireInterval: 90, Damage: 65, Color: color.RGBA{123, 63, 181, 255}},
	TowerRapid:  {ID: "rapid", Name: "Rapid", Cost: 45, Range: 125, FireInterval: 12, Damage: 10, Color: color.RGBA{217, 124, 0, 255}},
	TowerFreeze: {ID: "freeze", Name: "Freeze", Cost: 85, Range: 155, FireInterval: 115, Damage: 0, Color: color.RGBA{0, 170, 221, 255}},
	TowerFire:   {ID: "fire", Name: "Fire", Cost: 60, Range: 135, FireInterval: 45, Damage: 8, Color: color.RGBA{221, 51, 0, 255}},
	TowerTesla:  {ID: "tesla", Name: "Tesla", Cost: 180, Range: 150, FireInterval: 60, Damage: 30, Color: color.RGBA{136, 68, 255, 255}},
	TowerMortar: {ID: "mortar", Name: "Mortar", Cost: 250, Range: 230, FireInterval: 165, Damage: 90, Color: color.RGBA{170, 102, 0, 255}},
}

// Tower returns the definition of t. An unknown type is a programming error.
func Tower(t TowerType) TowerDefinition {
	if !t.Valid() {
		panic(fmt.Sprintf("defs: unknown tower type %d", int(t)))
	}
	return TowerLibrary[t]
}

// UpgradeCosts is the price of level 1->2 and level 2->3.
var UpgradeCosts = [config.MaxTowerLevel - 1]int{100, 200}

// UpgradeCost returns the price of upgrading from level; false when level is already at cap.
func UpgradeCost(level int) (int, bool) {
	if level < 1 || level >= config.MaxTowerLevel {
		return 0, false
	}
	return UpgradeCosts[level-1], true
}

// Stats are the combat values of a tower at a given level.
type Stats struct {
	Range        float64
	FireInterval int
	Damage       int
}

// levelMultiplier grows linearly with level.
func levelMultiplier(level int) float64 {
	return 1 + float64(level-1)*config.UpgradeStatFactor
}

// EffectiveStats scales range and damage up with level and the fire interval down,
// never below MinFireInterval ticks.
func EffectiveStats(t TowerType, level int) Stats {
	def := Tower(t)
	m := levelMultiplier(level)
	interval := int(math.Round(float64(def.FireInterval) / m))
	if interval < config.MinFireInterval {
		interval = config.MinFireInterval
	}
	return Stats{
		Range:        math.Round(def.Range * m),
		FireInterval: interval,
		Damage:       int(math.Round(float64(def.Damage) * m)),
	}
}

// TotalSpend is the base cost plus every upgrade paid to reach level.
func TotalSpend(t TowerType, level int) int {
	total := Tower(t).Cost
	for l := 1; l < level && l < config.MaxTowerLevel; l++ {
		total += UpgradeCosts[l-1]
	}
	return total
}

// SellValue is the refund for a tower of type t at level.
func SellValue(t TowerType, level int) int {
	return int(math.Floor(float64(TotalSpend(t, level)) * config.SellRecovery))
}
