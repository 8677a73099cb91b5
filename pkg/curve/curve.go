// pkg/curve/curve.go
package curve

import (
	"errors"
	"math"
	"sort"
)

// Point точка на плоскости в пикселях
type Point struct {
	X, Y float64
}

// Dist возвращает евклидово расстояние между точками
func (p Point) Dist(o Point) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

// Lerp линейно интерполирует между p и o
func (p Point) Lerp(o Point, t float64) Point {
	return Point{X: p.X + (o.X-p.X)*t, Y: p.Y + (o.Y-p.Y)*t}
}

// Segment кубический сегмент Безье: начало, два контрольных узла и конец.
type Segment struct {
	P0, C1, C2, P1 Point
}

// At вычисляет точку сегмента для параметра t в [0, 1]
func (s Segment) At(t float64) Point {
	u := 1 - t
	a := u * u * u
	b := 3 * u * u * t
	c := 3 * u * t * t
	d := t * t * t
	return Point{
		X: a*s.P0.X + b*s.C1.X + c*s.C2.X + d*s.P1.X,
		Y: a*s.P0.Y + b*s.C1.Y + c*s.C2.Y + d*s.P1.Y,
	}
}

var (
	ErrNoSegments        = errors.New("curve: at least one segment is required")
	ErrInvalidResolution = errors.New("curve: samples per segment must be positive")
)

// Path ломаная, полученная дискретизацией цепочки сегментов, с таблицей
// накопленной длины дуги.
type Path struct {
	points []Point
	dists  []float64
	length float64
}

// NewPath дискретизирует сегменты (конец одного сегмента совпадает с началом следующего)
// и строит таблицу длин. Нулевые шаги пропускаются, чтобы длины строго возрастали.
func NewPath(segments []Segment, samplesPerSegment int) (*Path, error) {
	if len(segments) == 0 {
		return nil, ErrNoSegments
	}
	if samplesPerSegment <= 0 {
		return nil, ErrInvalidResolution
	}

	p := &Path{
		points: make([]Point, 0, len(segments)*samplesPerSegment+1),
		dists:  make([]float64, 0, len(segments)*samplesPerSegment+1),
	}
	add := func(pt Point) {
		if n := len(p.points); n > 0 {
			step := p.points[n-1].Dist(pt)
			if step == 0 {
				return
			}
			p.length += step
		}
		p.points = append(p.points, pt)
		p.dists = append(p.dists, p.length)
	}

	for _, seg := range segments {
		for i := 0; i < samplesPerSegment; i++ {
			add(seg.At(float64(i) / float64(samplesPerSegment)))
		}
	}
	add(segments[len(segments)-1].At(1))
	return p, nil
}

// Length полная длина пути
func (p *Path) Length() float64 { return p.length }

// Start первая точка пути
func (p *Path) Start() Point { return p.points[0] }

// End последняя точка пути
func (p *Path) End() Point { return p.points[len(p.points)-1] }

// Points возвращает точки дискретизации. Срез нельзя изменять.
func (p *Path) Points() []Point { return p.points }

// PositionAtDistance переводит пройденное расстояние в точку на пути.
// Расстояние ограничивается отрезком [0, Length].
func (p *Path) PositionAtDistance(d float64) Point {
	if len(p.points) == 1 {
		return p.points[0]
	}
	d = math.Max(0, math.Min(p.length, d))

	// hi первый индекс с dists[hi] > d
	hi := sort.Search(len(p.dists), func(i int) bool { return p.dists[i] > d })
	if hi >= len(p.dists) {
		return p.End()
	}
	lo := hi - 1
	t := (d - p.dists[lo]) / (p.dists[hi] - p.dists[lo])
	return p.points[lo].Lerp(p.points[hi], t)
}

// DistanceToPoint минимальное расстояние от q до точек дискретизации
func (p *Path) DistanceToPoint(q Point) float64 {
	best := math.MaxFloat64
	for _, pt := range p.points {
		if d := pt.Dist(q); d < best {
			best = d
		}
	}
	return best
}
