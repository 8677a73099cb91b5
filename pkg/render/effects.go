package render

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"go-scurve-defense/internal/config"
	"go-scurve-defense/internal/defs"
	"go-scurve-defense/internal/event"
)

const (
	ringGrowth    = 0.18
	ringFade      = 0.07
	arcLife       = 10
	floatLife     = 65
	floatRise     = 32.0
	particleDrag  = 0.97
	particleGrav  = 0.12
	particleDecay = 0.95
)

var (
	explosionPalette = []color.RGBA{{255, 102, 0, 255}, {255, 153, 0, 255}, {255, 204, 0, 255}, {255, 51, 0, 255}, {255, 238, 136, 255}, {255, 255, 255, 255}}
	freezePalette    = []color.RGBA{{170, 238, 255, 255}, {255, 255, 255, 255}, {102, 204, 255, 255}, {221, 244, 255, 255}}
	finalPalette     = []color.RGBA{{255, 0, 0, 255}, {255, 102, 0, 255}, {255, 204, 0, 255}, {255, 68, 170, 255}, {255, 255, 255, 255}}
	bossGold         = color.RGBA{255, 215, 0, 255}
	sellGreen        = color.RGBA{85, 255, 153, 255}
	finalPink        = color.RGBA{255, 68, 255, 255}
	bossRingColor    = color.RGBA{204, 176, 40, 204}
)

type ring struct {
	x, y, r, maxR float64
	life          float64
	color         color.RGBA
}

type arc struct {
	x1, y1, x2, y2 float64
	life           int
}

type floatText struct {
	text  string
	x, y  float64
	life  int
	color color.RGBA
}

type particle struct {
	x, y, vx, vy float64
	size         float64
	life, total  int
	grav         float64
	color        color.RGBA
}

// Effects хранит кратковременные визуальные эффекты, порождённые событиями симуляции.
// Эффекты живут в кадрах и не влияют на игру.
type Effects struct {
	rings     []ring
	arcs      []arc
	floats    []floatText
	particles []particle
	rng       *rand.Rand
}

func NewEffects(seed int64) *Effects {
	return &Effects{rng: rand.New(rand.NewSource(seed))}
}

// Handle превращает события в эффекты
func (fx *Effects) Handle(events []event.Event) {
	for _, e := range events {
		switch data := e.Data.(type) {
		case event.ExplosionData:
			fx.explosion(data)
		case event.PointData:
			if e.Type == event.FreezeBurst {
				fx.addRing(data.X, data.Y, data.Radius, config.FreezeRingColor)
				fx.burst(data.X, data.Y, 16, 1.5, 2.5, 28, 2.5, 0, freezePalette)
			}
		case event.ChainArcData:
			fx.arcs = append(fx.arcs, arc{x1: data.FromX, y1: data.FromY, x2: data.ToX, y2: data.ToY, life: arcLife})
		case event.FreezeImmuneData:
			fx.addFloat("IMMUNE!", data.X, data.Y-12, bossGold)
		case event.KillData:
			fx.kill(data)
		case event.WaveBonusData:
			fx.addFloat(fmt.Sprintf("+$%d", data.Amount), config.CanvasWidth/2, 80, bossGold)
		case event.TowerData:
			if e.Type == event.TowerSold {
				c := defs.MapGrid.Center(data.CellX, data.CellY)
				fx.addFloat(fmt.Sprintf("+$%d", data.Money), c.X, c.Y-10, sellGreen)
			}
		}
		if e.Type == event.GameRestarted {
			fx.Clear()
		}
	}
}

func (fx *Effects) explosion(data event.ExplosionData) {
	if data.Big {
		fx.burst(data.X, data.Y, 28, 5, 5, 22, 6, particleGrav, explosionPalette)
		fx.addRing(data.X, data.Y, data.Radius, config.ExplosionColor)
		fx.addRing(data.X, data.Y, data.Radius*0.6, Fade(bossRingColor, 0.75))
		fx.addRing(data.X, data.Y, data.Radius*0.3, color.RGBA{102, 102, 80, 102})
		return
	}
	fx.burst(data.X, data.Y, 13, 2.5, 2.5, 22, 3, particleGrav, explosionPalette)
	fx.addRing(data.X, data.Y, data.Radius, config.ExplosionColor)
}

func (fx *Effects) kill(data event.KillData) {
	switch {
	case data.Type == defs.EnemyFinalBoss:
		fx.burst(data.X, data.Y, 60, 2, 8, 35, 4, particleGrav, finalPalette)
		fx.addFloat("FINAL BOSS SLAIN!", data.X, data.Y-20, finalPink)
	case data.Type.BossTier():
		fx.burst(data.X, data.Y, 8, 1, 2, 18, 2, particleGrav, []color.RGBA{bossGold})
	default:
		fx.burst(data.X, data.Y, 8, 1, 2, 18, 2, particleGrav, []color.RGBA{defs.Enemy(data.Type).Color})
	}
}

func (fx *Effects) addRing(x, y, maxR float64, c color.RGBA) {
	fx.rings = append(fx.rings, ring{x: x, y: y, r: 4, maxR: maxR, life: 1, color: c})
}

func (fx *Effects) addFloat(s string, x, y float64, c color.RGBA) {
	fx.floats = append(fx.floats, floatText{text: s, x: x, y: y, life: floatLife, color: c})
}

func (fx *Effects) burst(x, y float64, n int, speed, speedJitter float64, life int, size, grav float64, palette []color.RGBA) {
	for i := 0; i < n; i++ {
		angle := 2*math.Pi*float64(i)/float64(n) + (fx.rng.Float64()-0.5)*0.4
		v := speed + fx.rng.Float64()*speedJitter
		l := life + fx.rng.Intn(life/2+1)
		fx.particles = append(fx.particles, particle{
			x: x, y: y,
			vx: math.Cos(angle) * v, vy: math.Sin(angle) * v,
			size:  size + fx.rng.Float64()*size*0.6,
			life:  l,
			total: l,
			grav:  grav,
			color: palette[fx.rng.Intn(len(palette))],
		})
	}
}

// Update продвигает эффекты на один кадр. Пауза хоста просто не вызывает его.
func (fx *Effects) Update() {
	rings := fx.rings[:0]
	for _, r := range fx.rings {
		r.r += (r.maxR - r.r) * ringGrowth
		r.life -= ringFade
		if r.life > 0 {
			rings = append(rings, r)
		}
	}
	fx.rings = rings

	arcs := fx.arcs[:0]
	for _, a := range fx.arcs {
		a.life--
		if a.life > 0 {
			arcs = append(arcs, a)
		}
	}
	fx.arcs = arcs

	floats := fx.floats[:0]
	for _, f := range fx.floats {
		f.life--
		if f.life > 0 {
			floats = append(floats, f)
		}
	}
	fx.floats = floats

	particles := fx.particles[:0]
	for _, p := range fx.particles {
		p.x += p.vx
		p.y += p.vy
		p.vy += p.grav
		p.vx *= particleDrag
		p.size *= particleDecay
		p.life--
		if p.life > 0 {
			particles = append(particles, p)
		}
	}
	fx.particles = particles
}

func (fx *Effects) Clear() {
	fx.rings = fx.rings[:0]
	fx.arcs = fx.arcs[:0]
	fx.floats = fx.floats[:0]
	fx.particles = fx.particles[:0]
}

// Len общее число живых эффектов
func (fx *Effects) Len() int {
	return len(fx.rings) + len(fx.arcs) + len(fx.floats) + len(fx.particles)
}

func (fx *Effects) Draw(screen *ebiten.Image) {
	for _, p := range fx.particles {
		k := float64(p.life) / float64(p.total)
		vector.DrawFilledCircle(screen, float32(p.x), float32(p.y), float32(math.Max(0.5, p.size)), Fade(p.color, k), true)
	}
	for _, r := range fx.rings {
		vector.StrokeCircle(screen, float32(r.x), float32(r.y), float32(r.r), 2.5, Fade(r.color, r.life*0.8), true)
	}
	for _, a := range fx.arcs {
		c := Fade(config.ChainArcColor, float64(a.life)/arcLife)
		mx := (a.x1+a.x2)/2 + (fx.rng.Float64()-0.5)*24
		my := (a.y1+a.y2)/2 + (fx.rng.Float64()-0.5)*24
		vector.StrokeLine(screen, float32(a.x1), float32(a.y1), float32(mx), float32(my), 2.5, c, true)
		vector.StrokeLine(screen, float32(mx), float32(my), float32(a.x2), float32(a.y2), 2.5, c, true)
	}
	face := basicfont.Face7x13
	for _, f := range fx.floats {
		k := float64(f.life) / floatLife
		y := f.y - (1-k)*floatRise
		x := int(f.x) - len(f.text)*7/2
		text.Draw(screen, f.text, face, x, int(y), Fade(f.color, k))
	}
}
