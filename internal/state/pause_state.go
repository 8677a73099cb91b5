// internal/state/pause_state.go
package state

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-scurve-defense/internal/ui"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает симуляцию поверх игрового состояния. Тики, таймеры
// волн и эффекты стоят; отрисовка делегируется игре, которая сама рисует затемнение.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *PlayState
}

func NewPauseState(sm *StateMachine, prevState *PlayState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.resume()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.handle(ui.ActionRestart)
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		s.handle(s.previousState.hud.HitTest(image.Pt(x, y)))
	}
}

func (s *PauseState) handle(a ui.Action) {
	switch a {
	case ui.ActionTogglePause:
		s.resume()
	case ui.ActionRestart:
		// после перезапуска сессия новая и уже не на паузе
		s.previousState.applyAction(ui.ActionRestart)
		s.stateMachine.SetState(s.previousState)
	case ui.ActionToggleAutoWave:
		s.previousState.applyAction(a)
	}
}

func (s *PauseState) resume() {
	s.previousState.game.SetPaused(false)
	s.previousState.refresh()
	s.stateMachine.SetState(s.previousState)
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
}

func (s *PauseState) Exit() {}
