package tui

import (
	"iter"

	"github.com/lixenwraith/termgrid/layout"
	"github.com/lixenwraith/termgrid/terminal"
)

// Region represents a rectangular area within a cell buffer
// Drawing coordinates are relative to the region's origin
type Region struct {
	Cells  []terminal.Cell
	Stride int         // Total width of the underlying cell buffer
	Area   layout.Rect // Absolute bounds in cell buffer
}

// NewRegion creates a region referencing a cell slice with bounds
func NewRegion(cells []terminal.Cell, stride int, area layout.Rect) Region {
	return Region{
		Cells:  cells,
		Stride: stride,
		Area:   area,
	}
}

// Sub returns a nested region with coordinates relative to parent, result is clipped to parent bounds
func (r Region) Sub(x, y, w, h uint16) Region {
	abs := layout.NewRect(
		layout.SatAdd(r.Area.X, x),
		layout.SatAdd(r.Area.Y, y),
		w, h,
	)
	return r.with(abs.Intersection(r.Area))
}

// Inset returns a region shrunk by n cells on all sides
func (r Region) Inset(n uint16) Region {
	return r.with(r.Area.Inner(n))
}

// Cell sets a single cell with bounds checking
func (r Region) Cell(x, y uint16, ch rune, fg, bg terminal.RGB, attr terminal.Attr) {
	r.SetCell(x, y, terminal.Cell{Rune: ch, Fg: fg, Bg: bg, Attrs: attr})
}

// SetCell stores c at the relative position, ignored outside the region
func (r Region) SetCell(x, y uint16, c terminal.Cell) {
	r.set(r.abs(x, y), c)
}

// Get returns the cell at the relative position
func (r Region) Get(x, y uint16) (terminal.Cell, bool) {
	p := r.abs(x, y)
	if !r.Area.Contains(p) {
		return terminal.Cell{}, false
	}
	idx, ok := r.index(p)
	if !ok {
		return terminal.Cell{}, false
	}
	return r.Cells[idx], true
}

// Fill fills entire region with background color
func (r Region) Fill(bg terminal.RGB) {
	blank := terminal.Cell{Rune: ' ', Bg: bg}
	for p := range r.Area.Positions().All() {
		r.set(p, blank)
	}
}

// Clear fills region with spaces and zero colors
func (r Region) Clear() {
	r.Fill(terminal.RGB{})
}

// Rows yields one region per row, top to bottom
func (r Region) Rows() iter.Seq[Region] {
	return func(yield func(Region) bool) {
		for row := range r.Area.Rows().All() {
			if !yield(r.with(row)) {
				return
			}
		}
	}
}

// Columns yields one region per column, left to right
func (r Region) Columns() iter.Seq[Region] {
	return func(yield func(Region) bool) {
		for col := range r.Area.Columns().All() {
			if !yield(r.with(col)) {
				return
			}
		}
	}
}

// Width returns region width
func (r Region) Width() int {
	return int(r.Area.Width)
}

// Height returns region height
func (r Region) Height() int {
	return int(r.Area.Height)
}

// Bounds returns absolute position and dimensions
func (r Region) Bounds() layout.Rect {
	return r.Area
}

func (r Region) with(area layout.Rect) Region {
	return Region{Cells: r.Cells, Stride: r.Stride, Area: area}
}

// abs converts a relative position; results past the grid edge clamp to 65535 and fail Contains
func (r Region) abs(x, y uint16) layout.Position {
	return layout.Position{X: layout.SatAdd(r.Area.X, x), Y: layout.SatAdd(r.Area.Y, y)}
}

// set writes at an absolute position, ignored outside the region
func (r Region) set(p layout.Position, c terminal.Cell) {
	if !r.Area.Contains(p) {
		return
	}
	if idx, ok := r.index(p); ok {
		r.Cells[idx] = c
	}
}

func (r Region) index(p layout.Position) (int, bool) {
	// Bounds check against the physical buffer dimensions
	if int(p.X) >= r.Stride {
		return 0, false
	}
	idx := int(p.Y)*r.Stride + int(p.X)
	if idx >= len(r.Cells) {
		return 0, false
	}
	return idx, true
}
