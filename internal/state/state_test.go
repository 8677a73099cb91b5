package state

import (
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-scurve-defense/internal/app"
	"go-scurve-defense/internal/defs"
	"go-scurve-defense/internal/event"
	"go-scurve-defense/internal/types"
	"go-scurve-defense/internal/ui"
)

type recordingSound struct {
	enabled bool
	events  []event.Event
}

func (r *recordingSound) HandleEvents(events []event.Event) int {
	r.events = append(r.events, events...)
	return len(events)
}
func (r *recordingSound) SetEnabled(on bool) { r.enabled = on }
func (r *recordingSound) Enabled() bool      { return r.enabled }

func (r *recordingSound) cues() []event.Cue {
	var cues []event.Cue
	for _, e := range r.events {
		if d, ok := e.Data.(event.SoundData); ok {
			cues = append(cues, d.Cue)
		}
	}
	return cues
}

func newPlay(t *testing.T) (*StateMachine, *PlayState, *recordingSound) {
	t.Helper()
	g, err := app.NewGame(app.Options{Seed: 42, Logger: zerolog.Nop()})
	require.NoError(t, err)
	sound := &recordingSound{enabled: true}
	sm := NewStateMachine()
	play := NewPlayState(sm, g, sound, zerolog.Nop())
	sm.SetState(play)
	return sm, play, sound
}

func TestStepper(t *testing.T) {
	var s Stepper
	assert.Equal(t, 1, s.Steps(1.0/60))
	assert.Equal(t, 15, s.Steps(0.5), "long frames are clamped")
	assert.Equal(t, 0, s.Steps(0.01))
	assert.Equal(t, 1, s.Steps(0.01))
	assert.Equal(t, 0, s.Steps(-1))

	s.Reset()
	assert.Equal(t, 0, s.Steps(0.01))
}

func TestStateMachine_EnterExit(t *testing.T) {
	sm := NewStateMachine()
	assert.Nil(t, sm.Current())
	sm.Update(1) // без состояния ничего не происходит

	menu := NewMenuState(sm, func() State { return nil })
	sm.SetState(menu)
	assert.Same(t, menu, sm.Current())
}

func TestPlayState_StartWaveRoutesSound(t *testing.T) {
	_, play, sound := newPlay(t)

	assert.False(t, play.applyAction(ui.ActionStartWave))
	assert.True(t, play.Snapshot().WaveActive)
	assert.Contains(t, sound.cues(), event.CueWave)

	play.advance(3)
	assert.Equal(t, uint64(3), play.Snapshot().Tick)
}

func TestPlayState_BuildSelectSell(t *testing.T) {
	_, play, sound := newPlay(t)

	assert.False(t, play.handleKey(ebiten.Key2))
	assert.Equal(t, defs.TowerSniper, play.Snapshot().BuildType)
	play.handleKey(ebiten.Key1)

	cell := image.Pt(10, 10)
	play.handleClick(cell)
	snap := play.Snapshot()
	require.Len(t, snap.Towers, 1)
	assert.Equal(t, 100, snap.Money)

	play.handleClick(cell)
	assert.Equal(t, snap.Towers[0].ID, play.Snapshot().Selected)
	assert.True(t, play.infoPanel.IsVisible)

	play.applyAction(ui.ActionSell)
	snap = play.Snapshot()
	assert.Empty(t, snap.Towers)
	assert.Equal(t, 132, snap.Money)
	assert.Equal(t, types.NoEntity, snap.Selected)

	var sold bool
	for _, e := range sound.events {
		sold = sold || e.Type == event.TowerSold
	}
	assert.True(t, sold)
}

func TestPlayState_PaletteClickChangesBuildType(t *testing.T) {
	_, play, _ := newPlay(t)

	// третья кнопка палитры — скорострельная башня
	play.handleClick(image.Pt(8+2*(88+6)+5, 470))
	assert.Equal(t, defs.TowerRapid, play.Snapshot().BuildType)
}

func TestPauseState_FreezesAndResumes(t *testing.T) {
	sm, play, _ := newPlay(t)

	assert.True(t, play.applyAction(ui.ActionTogglePause))
	pause, ok := sm.Current().(*PauseState)
	require.True(t, ok)
	assert.True(t, play.game.Snapshot().Paused)

	play.game.Tick()
	assert.Equal(t, uint64(0), play.game.Snapshot().Tick)

	pause.handle(ui.ActionTogglePause)
	assert.Same(t, play, sm.Current())
	assert.False(t, play.Snapshot().Paused)
}

func TestPauseState_RestartLeavesPause(t *testing.T) {
	sm, play, _ := newPlay(t)
	play.handleClick(image.Pt(10, 10))
	require.Len(t, play.Snapshot().Towers, 1)

	require.True(t, play.applyAction(ui.ActionTogglePause))
	sm.Current().(*PauseState).handle(ui.ActionRestart)

	assert.Same(t, play, sm.Current())
	snap := play.Snapshot()
	assert.False(t, snap.Paused)
	assert.Empty(t, snap.Towers)
	assert.Equal(t, 150, snap.Money)
}

func TestPlayState_MuteKey(t *testing.T) {
	_, play, sound := newPlay(t)
	play.handleKey(ebiten.KeyM)
	assert.False(t, sound.enabled)
	play.handleKey(ebiten.KeyM)
	assert.True(t, sound.enabled)
}
