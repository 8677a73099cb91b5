// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"go-scurve-defense/internal/config"
)

var menuLines = []string{
	"S-CURVE DEFENSE",
	"",
	"Build towers beside the road and hold for 20 waves.",
	"1-7 choose tower   click to build or select   U upgrade   S sell",
	"SPACE start wave   A auto waves   ESC pause   R restart   M mute",
	"",
	"Click or press ENTER to start",
}

// MenuState — стартовый экран; игра создаётся заранее и ждёт в PlayState.
type MenuState struct {
	sm   *StateMachine
	next func() State
}

func NewMenuState(sm *StateMachine, next func() State) *MenuState {
	return &MenuState{sm: sm, next: next}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		m.sm.SetState(m.next())
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.HUDColor)
	face := basicfont.Face7x13
	y := config.ScreenHeight/2 - len(menuLines)*20/2
	for i, line := range menuLines {
		c := config.TextLightColor
		if i == 0 {
			c = config.GoldColor
		}
		b := text.BoundString(face, line)
		x := (config.ScreenWidth - b.Dx()) / 2
		text.Draw(screen, line, face, x, y, c)
		y += 20
	}
}

func (m *MenuState) Exit() {}
