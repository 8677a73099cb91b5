package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-scurve-defense/internal/app"
	"go-scurve-defense/internal/config"
)

var (
	gameOverColor = color.RGBA{204, 34, 34, 255}
	victoryColor  = color.RGBA{255, 215, 0, 255}
	hintColor     = color.RGBA{140, 140, 140, 255}
)

// OverlayLines заголовок и подписи для затемнения поверх поля; пусто, если игра идёт.
func OverlayLines(snap app.Snapshot) (title string, lines []string, c color.RGBA) {
	switch {
	case snap.GameOver:
		return "GAME OVER", []string{
			fmt.Sprintf("Waves survived: %d  -  Kills: %d", snap.Wave-1, snap.Kills),
			"Press R to try again",
		}, gameOverColor
	case snap.GameWon:
		return "VICTORY!", []string{
			fmt.Sprintf("All %d waves cleared  -  %d kills  -  $%d", snap.MaxWaves, snap.Kills, snap.Money),
			"Press R to play again",
		}, victoryColor
	case snap.Paused:
		return "PAUSED", []string{"Press ESC or P to resume"}, config.TextLightColor
	}
	return "", nil, color.RGBA{}
}

// DrawOverlay затемняет поле и пишет итог или паузу.
func DrawOverlay(screen *ebiten.Image, face font.Face, snap app.Snapshot) {
	title, lines, c := OverlayLines(snap)
	if title == "" {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, config.CanvasWidth, config.CanvasHeight, config.OverlayColor, false)

	cy := config.CanvasHeight / 2
	drawCentered(screen, title, face, image.Rect(0, cy-40, config.CanvasWidth, cy-16), c)
	for i, line := range lines {
		top := cy + i*24
		col := config.TextLightColor
		if i == len(lines)-1 && len(lines) > 1 {
			col = hintColor
		}
		drawCentered(screen, line, face, image.Rect(0, top, config.CanvasWidth, top+20), col)
	}
}
