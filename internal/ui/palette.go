package ui

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"go-scurve-defense/internal/app"
	"go-scurve-defense/internal/config"
	"go-scurve-defense/internal/defs"
)

// TowerPalette ряд кнопок выбора типа строящейся башни
type TowerPalette struct {
	buttons []*Button
	types   []defs.TowerType
}

func NewTowerPalette() *TowerPalette {
	p := &TowerPalette{types: defs.TowerTypes}
	for i, t := range defs.TowerTypes {
		def := defs.Tower(t)
		p.buttons = append(p.buttons, NewButton(paletteRect(i), fmt.Sprintf("%s $%d", def.Name, def.Cost)))
	}
	return p
}

// HitTest возвращает тип башни под точкой
func (p *TowerPalette) HitTest(pt image.Point) (defs.TowerType, bool) {
	for i, b := range p.buttons {
		if b.Hit(pt) {
			return p.types[i], true
		}
	}
	return 0, false
}

func (p *TowerPalette) Draw(screen *ebiten.Image, face font.Face, snap app.Snapshot, cursor image.Point) {
	for i, b := range p.buttons {
		t := p.types[i]
		switch {
		case t == snap.BuildType:
			b.BgColor = config.ButtonHotColor
		case snap.Money < defs.Tower(t).Cost:
			b.BgColor = config.ButtonOffColor
		default:
			b.BgColor = config.ButtonColor
		}
		b.Draw(screen, face, cursor)
	}
}
