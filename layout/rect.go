package layout

import "fmt"

// Position is a single cell address on the grid
type Position struct {
	X, Y uint16
}

// String implements fmt.Stringer
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rect is an axis-aligned rectangle on the cell grid
// Zero width or height is valid and denotes an empty area
type Rect struct {
	X, Y          uint16
	Width, Height uint16
}

// NewRect creates a rect from origin and extents
func NewRect(x, y, width, height uint16) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// String implements fmt.Stringer
func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}

// Left returns the x coordinate of the first column
func (r Rect) Left() uint16 { return r.X }

// Top returns the y coordinate of the first row
func (r Rect) Top() uint16 { return r.Y }

// Right returns the exclusive right edge, saturating at 65535
func (r Rect) Right() uint16 { return SatAdd(r.X, r.Width) }

// Bottom returns the exclusive bottom edge, saturating at 65535
func (r Rect) Bottom() uint16 { return SatAdd(r.Y, r.Height) }

// Area returns the exact number of addressable cells
// Uses the saturated edges, so cells clipped at the grid maximum are not counted
func (r Rect) Area() int {
	return int(r.Right()-r.X) * int(r.Bottom()-r.Y)
}

// IsEmpty reports whether the rect has no cells
func (r Rect) IsEmpty() bool {
	return r.Width == 0 || r.Height == 0
}

// Contains reports whether p lies inside the rect
func (r Rect) Contains(p Position) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Intersection returns the overlap of two rects
// Disjoint rects produce an empty rect anchored at the clamped overlap origin
func (r Rect) Intersection(other Rect) Rect {
	x1 := max(r.X, other.X)
	y1 := max(r.Y, other.Y)
	x2 := min(r.Right(), other.Right())
	y2 := min(r.Bottom(), other.Bottom())
	return Rect{
		X:      x1,
		Y:      y1,
		Width:  SatSub(x2, x1),
		Height: SatSub(y2, y1),
	}
}

// Inner returns the rect shrunk by margin cells on all sides
func (r Rect) Inner(margin uint16) Rect {
	doubled := SatMul(margin, 2)
	if r.Width < doubled || r.Height < doubled {
		return Rect{X: SatAdd(r.X, margin), Y: SatAdd(r.Y, margin)}
	}
	return Rect{
		X:      SatAdd(r.X, margin),
		Y:      SatAdd(r.Y, margin),
		Width:  r.Width - doubled,
		Height: r.Height - doubled,
	}
}

// Rows returns a double-ended iterator over the rect's rows
func (r Rect) Rows() *Rows { return NewRows(r) }

// Columns returns a double-ended iterator over the rect's columns
func (r Rect) Columns() *Columns { return NewColumns(r) }

// Positions returns a row-major iterator over the rect's cells
func (r Rect) Positions() *Positions { return NewPositions(r) }
