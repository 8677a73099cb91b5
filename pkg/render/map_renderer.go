package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-scurve-defense/internal/config"
	"go-scurve-defense/pkg/curve"
)

var (
	pathBorderColor = color.RGBA{122, 100, 69, 255}
	pathFillColor   = color.RGBA{206, 190, 156, 255}
	pathGlossColor  = color.RGBA{77, 75, 71, 77}
)

// MapRenderer рисует статичный задник: траву, сетку, дорогу и запретные клетки.
type MapRenderer struct {
	path      *curve.Path
	grid      curve.Grid
	blocked   []curve.Cell
	strokeImg *ebiten.Image
	strokeVs  []ebiten.Vertex
	strokeIs  []uint16
	mapImage  *ebiten.Image // предрендеренная карта
	showMask  bool
}

func NewMapRenderer(path *curve.Path, grid curve.Grid, blocked []curve.Cell) *MapRenderer {
	strokeImg := ebiten.NewImage(3, 3)
	strokeImg.Fill(color.White)

	r := &MapRenderer{
		path:      path,
		grid:      grid,
		blocked:   blocked,
		strokeImg: strokeImg,
		mapImage:  ebiten.NewImage(int(grid.Width), int(grid.Height)),
	}
	r.RenderMapImage()
	return r
}

// SetShowMask включает подсветку клеток, где строить нельзя
func (r *MapRenderer) SetShowMask(on bool) {
	if r.showMask == on {
		return
	}
	r.showMask = on
	r.RenderMapImage()
}

// RenderMapImage перерисовывает задник один раз; кадры только копируют его.
func (r *MapRenderer) RenderMapImage() {
	r.mapImage.Clear()
	r.mapImage.Fill(config.GrassColor)

	for x := 0.0; x < r.grid.Width; x += r.grid.CellSize {
		vector.StrokeLine(r.mapImage, float32(x), 0, float32(x), float32(r.grid.Height), 0.5, config.GridLineColor, false)
	}
	for y := 0.0; y < r.grid.Height; y += r.grid.CellSize {
		vector.StrokeLine(r.mapImage, 0, float32(y), float32(r.grid.Width), float32(y), 0.5, config.GridLineColor, false)
	}

	if r.showMask {
		for _, c := range r.blocked {
			x, y := float64(c.X)*r.grid.CellSize, float64(c.Y)*r.grid.CellSize
			vector.DrawFilledRect(r.mapImage, float32(x), float32(y), float32(r.grid.CellSize), float32(r.grid.CellSize), config.BlockedCellColor, false)
		}
	}

	r.strokePath(r.mapImage, config.PathWidth+14, pathBorderColor)
	r.strokePath(r.mapImage, config.PathWidth, pathFillColor)
	r.strokePath(r.mapImage, config.PathWidth-18, pathGlossColor)
}

func (r *MapRenderer) strokePath(target *ebiten.Image, width float32, c color.RGBA) {
	points := r.path.Points()
	p := vector.Path{}
	p.MoveTo(float32(points[0].X), float32(points[0].Y))
	// каждая четвёртая точка: индексы вершин должны уместиться в uint16
	for i := 4; i < len(points); i += 4 {
		p.LineTo(float32(points[i].X), float32(points[i].Y))
	}
	last := points[len(points)-1]
	p.LineTo(float32(last.X), float32(last.Y))

	r.strokeVs, r.strokeIs = p.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width:    width,
		LineCap:  vector.LineCapRound,
		LineJoin: vector.LineJoinRound,
	})
	for i := range r.strokeVs {
		r.strokeVs[i].SrcX = 1
		r.strokeVs[i].SrcY = 1
		r.strokeVs[i].ColorR = float32(c.R) / 255
		r.strokeVs[i].ColorG = float32(c.G) / 255
		r.strokeVs[i].ColorB = float32(c.B) / 255
		r.strokeVs[i].ColorA = float32(c.A) / 255
	}
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.strokeImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *MapRenderer) Draw(screen *ebiten.Image) {
	screen.DrawImage(r.mapImage, nil)
}
