// internal/state/play_state.go
package state

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-scurve-defense/internal/app"
	"go-scurve-defense/internal/defs"
	"go-scurve-defense/internal/event"
	"go-scurve-defense/internal/types"
	"go-scurve-defense/internal/ui"
	"go-scurve-defense/pkg/render"
)

// SoundPlayer принимает события симуляции и озвучивает их сигналы.
type SoundPlayer interface {
	HandleEvents(events []event.Event) int
	SetEnabled(on bool)
	Enabled() bool
}

var towerKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6, ebiten.Key7}

// PlayState — основное состояние: ввод игрока, тики симуляции, отрисовка.
type PlayState struct {
	sm      *StateMachine
	game    *app.Game
	sound   SoundPlayer
	logger  zerolog.Logger
	stepper Stepper

	mapRenderer *render.MapRenderer
	effects     *render.Effects
	hud         *ui.HUD
	palette     *ui.TowerPalette
	infoPanel   *ui.InfoPanel
	face        font.Face

	snap     app.Snapshot
	cursor   image.Point
	showMask bool
}

func NewPlayState(sm *StateMachine, game *app.Game, sound SoundPlayer, logger zerolog.Logger) *PlayState {
	s := &PlayState{
		sm:        sm,
		game:      game,
		sound:     sound,
		logger:    logger.With().Str("component", "play").Logger(),
		effects:   render.NewEffects(1),
		hud:       ui.NewHUD(),
		palette:   ui.NewTowerPalette(),
		infoPanel: ui.NewInfoPanel(),
		face:      basicfont.Face7x13,
	}
	s.refresh()
	return s
}

func (s *PlayState) Enter() {
	s.stepper.Reset()
}

func (s *PlayState) Exit() {}

func (s *PlayState) Update(deltaTime float64) {
	x, y := ebiten.CursorPosition()
	s.cursor = image.Pt(x, y)

	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if s.handleKey(k) {
			return
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if s.handleClick(s.cursor) {
			return
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		s.game.SelectTower(types.NoEntity)
	}

	s.advance(s.stepper.Steps(deltaTime))
}

// advance выполняет n тиков и раздаёт накопившиеся события звуку и эффектам.
func (s *PlayState) advance(n int) {
	for i := 0; i < n; i++ {
		s.game.Tick()
		s.effects.Update()
	}
	s.dispatchEvents()
	s.refresh()
}

func (s *PlayState) dispatchEvents() {
	events := s.game.DrainEvents()
	if len(events) == 0 {
		return
	}
	if s.sound != nil {
		s.sound.HandleEvents(events)
	}
	s.effects.Handle(events)
}

func (s *PlayState) refresh() {
	s.snap = s.game.Snapshot()
	s.hud.Sync(s.snap)
	s.infoPanel.Update(s.snap)
}

// handleKey возвращает true, если состояние сменилось и кадр нужно прервать.
func (s *PlayState) handleKey(k ebiten.Key) bool {
	for i, tk := range towerKeys {
		if k == tk && i < len(defs.TowerTypes) {
			s.game.SetBuildType(defs.TowerTypes[i])
			return false
		}
	}
	switch k {
	case ebiten.KeySpace, ebiten.KeyEnter, ebiten.KeyW:
		return s.applyAction(ui.ActionStartWave)
	case ebiten.KeyEscape, ebiten.KeyP:
		return s.applyAction(ui.ActionTogglePause)
	case ebiten.KeyA:
		return s.applyAction(ui.ActionToggleAutoWave)
	case ebiten.KeyR:
		return s.applyAction(ui.ActionRestart)
	case ebiten.KeyU:
		return s.applyAction(ui.ActionUpgrade)
	case ebiten.KeyS, ebiten.KeyBackspace, ebiten.KeyDelete:
		return s.applyAction(ui.ActionSell)
	case ebiten.KeyM:
		if s.sound != nil {
			s.sound.SetEnabled(!s.sound.Enabled())
		}
	case ebiten.KeyB:
		s.showMask = !s.showMask
		if s.mapRenderer != nil {
			s.mapRenderer.SetShowMask(s.showMask)
		}
	}
	return false
}

// handleClick: сначала панели интерфейса, потом игровое поле.
func (s *PlayState) handleClick(pt image.Point) bool {
	if s.infoPanel.Contains(pt) {
		return s.applyAction(s.infoPanel.HitTest(pt))
	}
	if t, ok := s.palette.HitTest(pt); ok {
		s.game.SetBuildType(t)
		s.refresh()
		return false
	}
	if a := s.hud.HitTest(pt); a != ui.ActionNone {
		return s.applyAction(a)
	}
	if !ui.InCanvas(pt) {
		return false
	}

	cx, cy := s.game.Grid().CellAt(float64(pt.X), float64(pt.Y))
	result, err := s.game.HandleCellTap(cx, cy)
	if err != nil && !errors.Is(err, app.ErrNotRunning) {
		s.logger.Debug().Err(err).Int("x", cx).Int("y", cy).Msg("tap rejected")
	}
	if result != app.TapRejected {
		s.dispatchEvents()
	}
	s.refresh()
	return false
}

// applyAction выполняет команду интерфейса; true — состояние машины сменилось.
func (s *PlayState) applyAction(a ui.Action) bool {
	switch a {
	case ui.ActionStartWave:
		if s.game.StartWave() {
			s.dispatchEvents()
		}
	case ui.ActionTogglePause:
		if s.game.SetPaused(true) {
			s.sm.SetState(NewPauseState(s.sm, s))
			return true
		}
	case ui.ActionToggleAutoWave:
		s.game.SetAutoWave(!s.snap.AutoWave)
	case ui.ActionRestart:
		s.game.Restart()
		s.stepper.Reset()
		s.dispatchEvents()
	case ui.ActionUpgrade:
		if s.game.UpgradeSelected() {
			s.dispatchEvents()
		}
	case ui.ActionSell:
		if s.game.SellSelected() > 0 {
			s.dispatchEvents()
		}
	case ui.ActionClosePanel:
		s.game.SelectTower(types.NoEntity)
	}
	s.refresh()
	return false
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	if s.mapRenderer == nil {
		s.mapRenderer = render.NewMapRenderer(s.game.Path(), s.game.Grid(), s.game.BlockedCells())
		s.mapRenderer.SetShowMask(s.showMask)
	}
	s.mapRenderer.Draw(screen)

	if s.snap.Selected == types.NoEntity && !s.snap.Paused && ui.InCanvas(s.cursor) && !s.infoPanel.Contains(s.cursor) {
		cx, cy := s.game.Grid().CellAt(float64(s.cursor.X), float64(s.cursor.Y))
		ok := s.game.CanPlaceTower(s.snap.BuildType, cx, cy) == nil
		render.DrawHover(screen, cx, cy, ok, defs.Tower(s.snap.BuildType).Range)
	}

	render.DrawTowers(screen, s.snap)
	s.effects.Draw(screen)
	render.DrawProjectiles(screen, s.snap)
	render.DrawEnemies(screen, s.snap)

	s.infoPanel.Draw(screen, s.face, s.snap, s.cursor)
	s.hud.Draw(screen, s.face, s.snap, s.cursor)
	s.palette.Draw(screen, s.face, s.snap, s.cursor)
	ui.DrawOverlay(screen, s.face, s.snap)
}

func (s *PlayState) Snapshot() app.Snapshot { return s.snap }
