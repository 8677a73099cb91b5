// pkg/curve/grid.go
package curve

import "math"

// Grid квадратная сетка для размещения башен поверх холста Width x Height.
type Grid struct {
	CellSize      float64
	Width, Height float64
}

// Cols число колонок (последняя может быть неполной)
func (g Grid) Cols() int { return int(math.Ceil(g.Width / g.CellSize)) }

// Rows число строк (последняя может быть неполной)
func (g Grid) Rows() int { return int(math.Ceil(g.Height / g.CellSize)) }

// Contains проверяет, что клетка лежит внутри холста
func (g Grid) Contains(cx, cy int) bool {
	return cx >= 0 && cy >= 0 && cx < g.Cols() && cy < g.Rows()
}

// Center центр клетки в пикселях
func (g Grid) Center(cx, cy int) Point {
	return Point{
		X: float64(cx)*g.CellSize + g.CellSize/2,
		Y: float64(cy)*g.CellSize + g.CellSize/2,
	}
}

// CellAt клетка, содержащая точку
func (g Grid) CellAt(x, y float64) (cx, cy int) {
	return int(math.Floor(x / g.CellSize)), int(math.Floor(y / g.CellSize))
}

// Cell координаты клетки сетки
type Cell struct {
	X, Y int
}

// Mask статическая маска клеток, запрещённых для строительства.
type Mask struct {
	grid    Grid
	blocked map[Cell]struct{}
}

// NewPlacementMask помечает каждую клетку, центр которой лежит строго ближе
// blockRadius к какой-либо точке дискретизации пути.
func NewPlacementMask(path *Path, grid Grid, blockRadius float64) *Mask {
	m := &Mask{grid: grid, blocked: make(map[Cell]struct{})}
	for cy := 0; cy < grid.Rows(); cy++ {
		for cx := 0; cx < grid.Cols(); cx++ {
			if path.DistanceToPoint(grid.Center(cx, cy)) < blockRadius {
				m.blocked[Cell{cx, cy}] = struct{}{}
			}
		}
	}
	return m
}

// Blocked сообщает, запрещена ли клетка
func (m *Mask) Blocked(cx, cy int) bool {
	_, ok := m.blocked[Cell{cx, cy}]
	return ok
}

// Cells возвращает все запрещённые клетки в порядке строк
func (m *Mask) Cells() []Cell {
	cells := make([]Cell, 0, len(m.blocked))
	for cy := 0; cy < m.grid.Rows(); cy++ {
		for cx := 0; cx < m.grid.Cols(); cx++ {
			if m.Blocked(cx, cy) {
				cells = append(cells, Cell{cx, cy})
			}
		}
	}
	return cells
}

// Grid сетка, для которой построена маска
func (m *Mask) Grid() Grid { return m.grid }
