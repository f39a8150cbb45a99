package canvas

import (
	"math"

	"github.com/lixenwraith/termgrid/terminal"
)

// Painter projects continuous coordinates onto a Grid and paints its dots
// Holds no state besides the bounds and the grid it writes through
type Painter struct {
	xBounds [2]float64
	yBounds [2]float64
	grid    Grid
}

// NewPainter creates a painter mapping xBounds x yBounds onto grid
// Bounds are [min, max]; y grows upward, so yBounds[1] maps to the top dot row
func NewPainter(grid Grid, xBounds, yBounds [2]float64) *Painter {
	return &Painter{xBounds: xBounds, yBounds: yBounds, grid: grid}
}

// Point projects (x, y) to a dot of the grid
// Returns false for coordinates outside the bounds, NaN, degenerate bounds,
// or a dot index beyond 65535
func (p *Painter) Point(x, y float64) (col, row uint16, ok bool) {
	resW, resH := p.grid.Resolution()
	return project(x, y, p.xBounds, p.yBounds, resW, resH)
}

// Paint sets a single dot of the grid
func (p *Painter) Paint(col, row uint16, color terminal.RGB) {
	p.grid.Paint(col, row, color)
}

// project maps a coordinate into a resW x resH dot space, rounding to the nearest dot
func project(x, y float64, xb, yb [2]float64, resW, resH float64) (uint16, uint16, bool) {
	left, right := xb[0], xb[1]
	bottom, top := yb[0], yb[1]

	// Written as negated ranges so NaN inputs fail
	if !(x >= left && x <= right && y >= bottom && y <= top) {
		return 0, 0, false
	}
	width := right - left
	height := top - bottom
	if !(width > 0) || !(height > 0) || resW < 1 || resH < 1 {
		return 0, 0, false
	}

	col := math.Round((x - left) * (resW - 1) / width)
	row := math.Round((top - y) * (resH - 1) / height)
	if !(col >= 0 && col <= math.MaxUint16 && row >= 0 && row <= math.MaxUint16) {
		return 0, 0, false
	}
	return uint16(col), uint16(row), true
}
