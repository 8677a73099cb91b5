// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-scurve-defense/internal/app"
	"go-scurve-defense/internal/config"
	"go-scurve-defense/internal/defs"
	"go-scurve-defense/internal/types"
)

const (
	panelWidth     = 210
	panelHeight    = 150
	panelMargin    = 8
	animationSpeed = 20.0
	lineHeight     = 16
	buttonHeight   = 26
)

var (
	panelBgColor     = color.RGBA{R: 22, G: 31, B: 40, A: 230}
	panelBorderColor = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	sellColor        = color.RGBA{R: 40, G: 120, B: 70, A: 255}
)

// InfoPanel выезжает справа при выборе башни и показывает её параметры.
type InfoPanel struct {
	IsVisible     bool
	TargetEntity  types.EntityID
	currentX      float64
	targetX       float64
	UpgradeButton *Button
	SellButton    *Button
	CloseButton   *Button
}

func NewInfoPanel() *InfoPanel {
	return &InfoPanel{
		currentX:      config.CanvasWidth,
		targetX:       config.CanvasWidth,
		UpgradeButton: NewButton(image.Rectangle{}, "Upgrade"),
		SellButton:    NewButton(image.Rectangle{}, "Sell"),
		CloseButton:   NewButton(image.Rectangle{}, "x"),
	}
}

func (p *InfoPanel) SetTarget(entityID types.EntityID) {
	p.TargetEntity = entityID
	p.IsVisible = true
	p.targetX = config.CanvasWidth - panelWidth - panelMargin
}

func (p *InfoPanel) Hide() {
	p.targetX = config.CanvasWidth
}

// Update следит за выбором в снимке и анимирует выезд панели.
func (p *InfoPanel) Update(snap app.Snapshot) {
	if snap.Selected != types.NoEntity {
		if snap.Selected != p.TargetEntity || p.targetX == config.CanvasWidth {
			p.SetTarget(snap.Selected)
		}
	} else if p.IsVisible {
		p.Hide()
	}

	if p.currentX != p.targetX {
		diff := p.targetX - p.currentX
		if math.Abs(diff) < animationSpeed {
			p.currentX = p.targetX
		} else if diff > 0 {
			p.currentX += animationSpeed
		} else {
			p.currentX -= animationSpeed
		}

		if p.currentX >= config.CanvasWidth {
			p.IsVisible = false
			p.TargetEntity = types.NoEntity
		}
	}
	p.layout()

	if tower, ok := snap.SelectedTower(); ok {
		if tower.UpgradeCost > 0 {
			p.UpgradeButton.Text = fmt.Sprintf("Upgrade $%d", tower.UpgradeCost)
			p.UpgradeButton.Disabled = snap.Money < tower.UpgradeCost
		} else {
			p.UpgradeButton.Text = "Max level"
			p.UpgradeButton.Disabled = true
		}
		p.SellButton.Text = fmt.Sprintf("Sell $%d", tower.SellValue)
	}
}

func (p *InfoPanel) rect() image.Rectangle {
	x := int(p.currentX)
	return image.Rect(x, panelMargin, x+panelWidth, panelMargin+panelHeight)
}

func (p *InfoPanel) layout() {
	r := p.rect()
	half := (panelWidth - 3*panelMargin) / 2
	top := r.Max.Y - buttonHeight - panelMargin
	p.UpgradeButton.Rect = image.Rect(r.Min.X+panelMargin, top, r.Min.X+panelMargin+half, top+buttonHeight)
	p.SellButton.Rect = image.Rect(r.Max.X-panelMargin-half, top, r.Max.X-panelMargin, top+buttonHeight)
	p.SellButton.BgColor = sellColor
	p.CloseButton.Rect = image.Rect(r.Max.X-24, r.Min.Y+4, r.Max.X-4, r.Min.Y+24)
}

// Contains закрывает клики по панели от игрового поля
func (p *InfoPanel) Contains(pt image.Point) bool {
	return p.IsVisible && pt.In(p.rect())
}

// HitTest возвращает действие кнопки панели под точкой
func (p *InfoPanel) HitTest(pt image.Point) Action {
	if !p.IsVisible {
		return ActionNone
	}
	switch {
	case p.UpgradeButton.Hit(pt):
		return ActionUpgrade
	case p.SellButton.Hit(pt):
		return ActionSell
	case p.CloseButton.Hit(pt):
		return ActionClosePanel
	}
	return ActionNone
}

func (p *InfoPanel) Draw(screen *ebiten.Image, face font.Face, snap app.Snapshot, cursor image.Point) {
	if !p.IsVisible && p.currentX >= config.CanvasWidth {
		return
	}
	r := p.rect()
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), panelBgColor, true)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, panelBorderColor, true)

	tower, ok := snap.SelectedTower()
	if !ok {
		return
	}
	x, y := r.Min.X+panelMargin, r.Min.Y+panelMargin+lineHeight
	for _, line := range TowerInfoLines(tower) {
		text.Draw(screen, line, face, x, y, config.TextLightColor)
		y += lineHeight
	}

	p.UpgradeButton.Draw(screen, face, cursor)
	p.SellButton.Draw(screen, face, cursor)
	p.CloseButton.Draw(screen, face, cursor)
}

// TowerInfoLines строки описания башни для панели
func TowerInfoLines(t app.TowerView) []string {
	def := defs.Tower(t.Type)
	lines := []string{
		fmt.Sprintf("%s  Lv %d/%d", def.Name, t.Level, config.MaxTowerLevel),
		fmt.Sprintf("Range: %.0f", t.Range),
		fmt.Sprintf("Fire rate: %.2f/s", float64(config.TicksPerSecond)/float64(t.FireInterval)),
	}
	if t.Type == defs.TowerFreeze {
		lines = append(lines, "Slows enemies in area")
	} else {
		lines = append(lines, fmt.Sprintf("Damage: %d", t.Damage))
	}
	return lines
}
