// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-scurve-defense/internal/config"
)

// Button представляет кликабельную кнопку в UI.
type Button struct {
	Rect     image.Rectangle
	Text     string
	BgColor  color.RGBA
	Disabled bool
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, text string) *Button {
	return &Button{
		Rect:    rect,
		Text:    text,
		BgColor: config.ButtonColor,
	}
}

// Hit проверяет, попадает ли точка в активную кнопку.
func (b *Button) Hit(p image.Point) bool {
	return !b.Disabled && p.In(b.Rect)
}

// Draw отрисовывает кнопку; под курсором она светлее.
func (b *Button) Draw(screen *ebiten.Image, face font.Face, cursor image.Point) {
	bg := b.BgColor
	switch {
	case b.Disabled:
		bg = config.ButtonOffColor
	case cursor.In(b.Rect):
		bg = lighten(bg)
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 1, config.TextLightColor, false)
	drawCentered(screen, b.Text, face, b.Rect, config.TextLightColor)
}

// drawCentered центрирует строку в прямоугольнике
func drawCentered(screen *ebiten.Image, s string, face font.Face, r image.Rectangle, c color.Color) {
	bounds := text.BoundString(face, s)
	x := r.Min.X + (r.Dx()-bounds.Dx())/2
	y := r.Min.Y + (r.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, s, face, x, y, c)
}

func lighten(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(min(int(c.A), int(c.R)+30)),
		G: uint8(min(int(c.A), int(c.G)+30)),
		B: uint8(min(int(c.A), int(c.B)+30)),
		A: c.A,
	}
}
