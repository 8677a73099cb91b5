// internal/app/tower_management.go
package app

import (
	"fmt"

	"go-scurve-defense/internal/component"
	"go-scurve-defense/internal/defs"
	"go-scurve-defense/internal/event"
	"go-scurve-defense/internal/types"
)

// TapResult says what a tap on the field did.
type TapResult int

const (
	TapRejected TapResult = iota
	TapPlaced
	TapSelected
	TapDeselected
)

// PlaceTower builds a tower of type t on the cell and charges its cost.
// On failure nothing changes.
func (g *Game) PlaceTower(t defs.TowerType, cellX, cellY int) (types.EntityID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.placeTower(t, cellX, cellY)
}

func (g *Game) placeTower(t defs.TowerType, cellX, cellY int) (types.EntityID, error) {
	def := defs.Tower(t)
	if err := g.canPlaceTower(def.Cost, cellX, cellY); err != nil {
		g.logger.Debug().Err(err).Str("tower", def.ID).Int("x", cellX).Int("y", cellY).Msg("placement rejected")
		return types.NoEntity, fmt.Errorf("place %s at (%d,%d): %w", def.ID, cellX, cellY, err)
	}

	id := g.ECS.NewEntity()
	pos := component.PositionOf(g.mask.Grid().Center(cellX, cellY))
	g.ECS.Towers.Add(id, component.NewTower(id, t, cellX, cellY, pos))
	g.ECS.Session.Money -= def.Cost

	g.emit(event.TowerPlaced, event.TowerData{TowerID: id, Type: t, Level: 1, CellX: cellX, CellY: cellY, Money: def.Cost})
	return id, nil
}

// CanPlaceTower reports why a tower of type t could not be built on the cell, or nil.
func (g *Game) CanPlaceTower(t defs.TowerType, cellX, cellY int) error {
	def := defs.Tower(t)
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.canPlaceTower(def.Cost, cellX, cellY)
}

func (g *Game) canPlaceTower(cost, cellX, cellY int) error {
	switch {
	case !g.ECS.Session.Running():
		return ErrNotRunning
	case !g.mask.Grid().Contains(cellX, cellY):
		return ErrOutOfBounds
	case g.mask.Blocked(cellX, cellY):
		return ErrCellBlocked
	}
	if _, occupied := g.ECS.TowerAt(cellX, cellY); occupied {
		return ErrCellOccupied
	}
	if g.ECS.Session.Money < cost {
		return ErrInsufficientFunds
	}
	return nil
}

// SelectTower selects a tower for upgrade or sale; NoEntity clears the selection.
func (g *Game) SelectTower(id types.EntityID) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.selectTower(id)
}

func (g *Game) selectTower(id types.EntityID) bool {
	session := g.ECS.Session
	if id == types.NoEntity {
		session.Selected = types.NoEntity
		return true
	}
	if !session.Running() {
		return false
	}
	if _, ok := g.ECS.Towers.Get(id); !ok {
		return false
	}
	session.Selected = id
	return true
}

// Selected returns the selected tower, or NoEntity.
func (g *Game) Selected() types.EntityID {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ECS.Session.Selected
}

func (g *Game) selectedTower() (*component.Tower, bool) {
	id := g.ECS.Session.Selected
	if id == types.NoEntity {
		return nil, false
	}
	return g.ECS.Towers.Get(id)
}

// UpgradeSelected raises the selected tower one level. Fails at max level,
// without enough money, with nothing selected, or when the game is not running.
func (g *Game) UpgradeSelected() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	session := g.ECS.Session
	tower, ok := g.selectedTower()
	if !ok || !session.Running() {
		return false
	}
	cost, ok := defs.UpgradeCost(tower.Level)
	if !ok || session.Money < cost {
		g.logger.Debug().Int("level", tower.Level).Int("money", session.Money).Msg("upgrade rejected")
		return false
	}

	session.Money -= cost
	tower.Level++
	tower.ApplyStats()
	g.emit(event.TowerUpgraded, event.TowerData{TowerID: tower.ID, Type: tower.Type, Level: tower.Level, CellX: tower.CellX, CellY: tower.CellY, Money: cost})
	return true
}

// SellSelected removes the selected tower and returns the money credited (0 on failure).
func (g *Game) SellSelected() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	session := g.ECS.Session
	tower, ok := g.selectedTower()
	if !ok || !session.Running() {
		return 0
	}

	value := defs.SellValue(tower.Type, tower.Level)
	session.Money += value
	session.Selected = types.NoEntity
	g.ECS.Towers.Remove(tower.ID)
	g.emit(event.TowerSold, event.TowerData{TowerID: tower.ID, Type: tower.Type, Level: tower.Level, CellX: tower.CellX, CellY: tower.CellY, Money: value})
	return value
}

// SetBuildType chooses the tower that HandleCellTap builds and clears the selection.
func (g *Game) SetBuildType(t defs.TowerType) {
	_ = defs.Tower(t) // неизвестный тип — ошибка вызывающего
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ECS.Session.BuildType = t
	g.ECS.Session.Selected = types.NoEntity
}

func (g *Game) BuildType() defs.TowerType {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ECS.Session.BuildType
}

// HandleCellTap: a tap on a tower toggles its selection; a tap on an empty
// cell clears the selection and builds the current build type there.
func (g *Game) HandleCellTap(cellX, cellY int) (TapResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	session := g.ECS.Session
	if !session.Running() {
		return TapRejected, ErrNotRunning
	}

	if tower, ok := g.ECS.TowerAt(cellX, cellY); ok {
		if session.Selected == tower.ID {
			session.Selected = types.NoEntity
			return TapDeselected, nil
		}
		session.Selected = tower.ID
		return TapSelected, nil
	}

	session.Selected = types.NoEntity
	if _, err := g.placeTower(session.BuildType, cellX, cellY); err != nil {
		return TapRejected, err
	}
	return TapPlaced, nil
}

func (g *Game) emit(t event.EventType, data interface{}) {
	g.EventDispatcher.Dispatch(event.Event{Type: t, Tick: g.ECS.Session.Tick, Data: data})
}
