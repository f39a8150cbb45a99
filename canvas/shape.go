package canvas

import "github.com/lixenwraith/termgrid/terminal"

// Shape is anything that can be drawn through a Painter
type Shape interface {
	Draw(p *Painter)
}

// Points is a group of points with a given color
type Points struct {
	Coords [][2]float64
	Color  terminal.RGB
}

// Draw paints every coordinate that projects onto the grid, in input order
func (s Points) Draw(p *Painter) {
	for _, c := range s.Coords {
		if col, row, ok := p.Point(c[0], c[1]); ok {
			p.Paint(col, row, s.Color)
		}
	}
}

// Line is a segment between two points
// Dropped entirely unless both endpoints project
type Line struct {
	X1, Y1 float64
	X2, Y2 float64
	Color  terminal.RGB
}

// Draw paints the segment with Bresenham's algorithm in dot space
func (s Line) Draw(p *Painter) {
	x0, y0, ok := p.Point(s.X1, s.Y1)
	if !ok {
		return
	}
	x1, y1, ok := p.Point(s.X2, s.Y2)
	if !ok {
		return
	}

	cx, cy := int(x0), int(y0)
	tx, ty := int(x1), int(y1)
	dx := abs(tx - cx)
	dy := -abs(ty - cy)
	sx, sy := 1, 1
	if cx > tx {
		sx = -1
	}
	if cy > ty {
		sy = -1
	}

	err := dx + dy
	for {
		p.Paint(uint16(cx), uint16(cy), s.Color)
		if cx == tx && cy == ty {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			cx += sx
		}
		if e2 <= dx {
			err += dx
			cy += sy
		}
	}
}

// Rectangle is an axis-aligned outline with its origin at the bottom-left corner
type Rectangle struct {
	X, Y          float64
	Width, Height float64
	Color         terminal.RGB
}

// Draw paints the four edges
func (s Rectangle) Draw(p *Painter) {
	left, bottom := s.X, s.Y
	right, top := s.X+s.Width, s.Y+s.Height
	edges := [4]Line{
		{X1: left, Y1: bottom, X2: right, Y2: bottom, Color: s.Color},
		{X1: left, Y1: top, X2: right, Y2: top, Color: s.Color},
		{X1: left, Y1: bottom, X2: left, Y2: top, Color: s.Color},
		{X1: right, Y1: bottom, X2: right, Y2: top, Color: s.Color},
	}
	for _, e := range edges {
		e.Draw(p)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
