// internal/app/snapshot.go
package app

import (
	"go-scurve-defense/internal/component"
	"go-scurve-defense/internal/config"
	"go-scurve-defense/internal/defs"
	"go-scurve-defense/internal/types"
)

// TowerView is a read-only copy of a tower for drawing and panels.
type TowerView struct {
	ID           types.EntityID
	Type         defs.TowerType
	Level        int
	CellX, CellY int
	X, Y         float64
	Angle        float64
	Range        float64
	Damage       int
	FireInterval int
	SellValue    int
	UpgradeCost  int // 0 at max level
}

type EnemyView struct {
	ID        types.EntityID
	Type      defs.EnemyType
	X, Y      float64
	Size      float64
	Health    int
	MaxHealth int
	HealthPct float64 // доля здоровья для полоски
	Frozen    bool
	Burning   bool
}

type ProjectileView struct {
	ID        types.EntityID
	TowerType defs.TowerType
	X, Y      float64
	Ballistic bool
	Height    float64
	Progress  float64
	ImpactX   float64
	ImpactY   float64
}

// Snapshot is a consistent copy of everything the host needs for one frame.
type Snapshot struct {
	Money         int
	Health        int
	Kills         int
	Wave          int
	MaxWaves      int
	WaveActive    bool
	Paused        bool
	GameOver      bool
	GameWon       bool
	AutoWave      bool
	BuildType     defs.TowerType
	Selected      types.EntityID
	PendingSpawns int
	Tick          uint64

	Towers      []TowerView
	Enemies     []EnemyView
	Projectiles []ProjectileView
}

// SelectedTower finds the selected tower in the snapshot.
func (s Snapshot) SelectedTower() (TowerView, bool) {
	for _, t := range s.Towers {
		if t.ID == s.Selected && s.Selected != types.NoEntity {
			return t, true
		}
	}
	return TowerView{}, false
}

func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	session := g.ECS.Session
	snap := Snapshot{
		Money:         session.Money,
		Health:        session.Health,
		Kills:         session.Kills,
		Wave:          session.Wave,
		MaxWaves:      config.MaxWaves,
		WaveActive:    session.WaveActive,
		Paused:        session.Paused,
		GameOver:      session.GameOver,
		GameWon:       session.GameWon,
		AutoWave:      session.AutoWave,
		BuildType:     session.BuildType,
		Selected:      session.Selected,
		PendingSpawns: g.WaveSystem.PendingSpawns(),
		Tick:          session.Tick,
		Towers:        make([]TowerView, 0, g.ECS.Towers.Len()),
		Enemies:       make([]EnemyView, 0, g.ECS.Enemies.Len()),
		Projectiles:   make([]ProjectileView, 0, g.ECS.Projectiles.Len()),
	}

	g.ECS.Towers.Each(func(id types.EntityID, t *component.Tower) {
		upgrade, _ := defs.UpgradeCost(t.Level)
		snap.Towers = append(snap.Towers, TowerView{
			ID:           id,
			Type:         t.Type,
			Level:        t.Level,
			CellX:        t.CellX,
			CellY:        t.CellY,
			X:            t.Position.X,
			Y:            t.Position.Y,
			Angle:        t.Angle,
			Range:        t.Range,
			Damage:       t.Damage,
			FireInterval: t.FireInterval,
			SellValue:    defs.SellValue(t.Type, t.Level),
			UpgradeCost:  upgrade,
		})
	})
	g.ECS.Enemies.Each(func(id types.EntityID, e *component.Enemy) {
		if e.Dead {
			return
		}
		snap.Enemies = append(snap.Enemies, EnemyView{
			ID:        id,
			Type:      e.Type,
			X:         e.Position.X,
			Y:         e.Position.Y,
			Size:      e.Size,
			Health:    e.Health,
			MaxHealth: e.MaxHealth,
			HealthPct: e.HealthFraction(),
			Frozen:    e.Frozen > 0,
			Burning:   e.Burning(),
		})
	})
	g.ECS.Projectiles.Each(func(id types.EntityID, p *component.Projectile) {
		if !p.Active {
			return
		}
		snap.Projectiles = append(snap.Projectiles, ProjectileView{
			ID:        id,
			TowerType: p.TowerType,
			X:         p.Position.X,
			Y:         p.Position.Y,
			Ballistic: p.Ballistic,
			Height:    p.Height,
			Progress:  p.Progress(),
			ImpactX:   p.Impact.X,
			ImpactY:   p.Impact.Y,
		})
	})
	return snap
}
