// internal/defs/path.go
package defs

import (
	"go-scurve-defense/internal/config"
	"go-scurve-defense/pkg/curve"
)

// PathSegments is the S-shaped route enemies walk, from the left edge to the right edge.
var PathSegments = []curve.Segment{
	{P0: curve.Point{X: -70, Y: 125}, C1: curve.Point{X: 220, Y: 125}, C2: curve.Point{X: 190, Y: 335}, P1: curve.Point{X: 450, Y: 335}},
	{P0: curve.Point{X: 450, Y: 335}, C1: curve.Point{X: 710, Y: 335}, C2: curve.Point{X: 680, Y: 125}, P1: curve.Point{X: 970, Y: 125}},
}

// MapGrid is the placement grid over the play field.
var MapGrid = curve.Grid{CellSize: config.GridSize, Width: config.CanvasWidth, Height: config.CanvasHeight}

// NewPath samples PathSegments at the configured resolution.
func NewPath() (*curve.Path, error) {
	return curve.NewPath(PathSegments, config.PathSamplesPerSegment)
}
