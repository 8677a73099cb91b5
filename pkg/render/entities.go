package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"go-scurve-defense/internal/app"
	"go-scurve-defense/internal/config"
	"go-scurve-defense/internal/defs"
)

const (
	towerRadius  = 18
	barrelLength = 22
	levelPipR    = 3
	healthBarH   = 5
)

var (
	towerStrokeColor = color.RGBA{20, 20, 20, 255}
	selectColor      = color.RGBA{255, 255, 255, 255}
	shadowColor      = color.RGBA{0, 0, 0, 90}
	shellColor       = color.RGBA{40, 40, 40, 255}
	pipColor         = color.RGBA{255, 215, 0, 255}
	hoverOkStroke    = color.RGBA{44, 140, 44, 140}
	hoverBadStroke   = color.RGBA{140, 33, 33, 140}
)

// DrawTowers рисует башни; выбранная обводится и показывает дальность.
func DrawTowers(screen *ebiten.Image, snap app.Snapshot) {
	for _, t := range snap.Towers {
		if t.ID == snap.Selected {
			DrawRange(screen, t.X, t.Y, t.Range)
		}
	}
	for _, t := range snap.Towers {
		def := defs.Tower(t.Type)
		x, y := float32(t.X), float32(t.Y)

		stroke := towerStrokeColor
		if t.ID == snap.Selected {
			stroke = selectColor
		}
		vector.DrawFilledCircle(screen, x, y, towerRadius+2, stroke, true)
		vector.DrawFilledCircle(screen, x, y, towerRadius, def.Color, true)

		if t.Type != defs.TowerFreeze && t.Type != defs.TowerTesla {
			bx := x + float32(math.Cos(t.Angle)*barrelLength)
			by := y + float32(math.Sin(t.Angle)*barrelLength)
			vector.StrokeLine(screen, x, y, bx, by, 6, DarkenColor(def.Color), true)
		} else {
			vector.DrawFilledCircle(screen, x, y, towerRadius/2, LightenColor(def.Color, 60), true)
		}

		for i := 0; i < t.Level; i++ {
			px := x - float32(t.Level-1)*4 + float32(i)*8
			vector.DrawFilledCircle(screen, px, y+towerRadius-4, levelPipR, pipColor, true)
		}
	}
}

// DrawRange круг дальности вокруг точки
func DrawRange(screen *ebiten.Image, x, y, r float64) {
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r), config.RangeColor, true)
	vector.StrokeCircle(screen, float32(x), float32(y), float32(r), 1.5, Fade(selectColor, 0.45), true)
}

// DrawHover подсветка клетки под курсором
func DrawHover(screen *ebiten.Image, cx, cy int, canPlace bool, rng float64) {
	size := float32(config.GridSize)
	x, y := float32(cx)*size, float32(cy)*size
	fill, stroke := config.HoverBadColor, hoverBadStroke
	if canPlace {
		fill, stroke = config.HoverOkColor, hoverOkStroke
	}
	vector.DrawFilledRect(screen, x, y, size, size, fill, false)
	vector.StrokeRect(screen, x, y, size, size, 1.5, stroke, false)
	if canPlace {
		DrawRange(screen, float64(x+size/2), float64(y+size/2), rng)
	}
}

// DrawEnemies рисует врагов с полосой здоровья и метками эффектов.
func DrawEnemies(screen *ebiten.Image, snap app.Snapshot) {
	face := basicfont.Face7x13
	for _, e := range snap.Enemies {
		def := defs.Enemy(e.Type)
		half := e.Size / 2
		left, top := float32(e.X-half), float32(e.Y-half)
		size := float32(e.Size)

		vector.DrawFilledRect(screen, left, top, size, size, def.Color, false)
		vector.StrokeRect(screen, left, top, size, size, 1, DarkenColor(def.Color), false)
		if e.Frozen {
			vector.DrawFilledRect(screen, left, top, size, size, config.FrozenTintColor, false)
		}
		if e.Burning {
			vector.StrokeRect(screen, left-1, top-1, size+2, size+2, 2, config.BurnTintColor, false)
		}

		ratio := e.HealthPct
		bw := size + 4
		vector.DrawFilledRect(screen, left-2, top-9, bw, healthBarH, config.HealthBackColor, false)
		vector.DrawFilledRect(screen, left-2, top-9, bw*float32(ratio), healthBarH, HealthColor(ratio), false)

		if label := bossLabel(e.Type); label != "" {
			text.Draw(screen, label, face, int(e.X)-len(label)*7/2, int(top)-12, pipColor)
		}
	}
}

func bossLabel(t defs.EnemyType) string {
	switch t {
	case defs.EnemyBoss:
		return "BOSS"
	case defs.EnemyElite:
		return "ELITE"
	case defs.EnemyFinalBoss:
		return "FINAL BOSS"
	}
	return ""
}

// DrawProjectiles рисует снаряды; у мины есть тень и круг зоны поражения.
func DrawProjectiles(screen *ebiten.Image, snap app.Snapshot) {
	for _, p := range snap.Projectiles {
		def := defs.Tower(p.TowerType)
		if p.Ballistic {
			// Y снаряда уже поднят на высоту дуги, тень лежит на земле
			vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y+p.Height), 5, shadowColor, true)
			vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), 7, shellColor, true)
			vector.StrokeCircle(screen, float32(p.ImpactX), float32(p.ImpactY), float32(config.MortarAoeRadius*p.Progress), 1, Fade(config.ExplosionColor, 0.5), true)
			continue
		}
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), 5, LightenColor(def.Color, 40), true)
	}
}
