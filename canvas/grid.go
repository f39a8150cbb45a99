package canvas

import "github.com/lixenwraith/termgrid/terminal"

// Glyph is the rendered content of one grid cell
type Glyph struct {
	Rune  rune
	Fg    terminal.RGB
	Bg    terminal.RGB
	HasBg bool // Bg overrides the canvas background
}

// Grid is the dot buffer behind a Painter
// Dot coordinates run from (0, 0) at the top-left to Resolution()-1
type Grid interface {
	// Size returns the grid dimensions in terminal cells
	Size() (width, height uint16)

	// Resolution returns the number of addressable dots per axis
	Resolution() (width, height float64)

	// Paint sets one dot; dots outside the resolution are ignored
	Paint(x, y uint16, color terminal.RGB)

	// Cell returns the glyph for a terminal cell, false when nothing was painted there
	Cell(x, y uint16) (Glyph, bool)

	// Reset clears every dot
	Reset()
}

// NewGrid creates the grid matching a marker for a width x height cell area
func NewGrid(m Marker, width, height uint16) Grid {
	switch m {
	case MarkerHalfBlock:
		return newHalfBlockGrid(width, height)
	case MarkerBraille:
		return newBrailleGrid(width, height)
	case MarkerBlock:
		return newCharGrid(width, height, '█')
	case MarkerBar:
		return newCharGrid(width, height, '▄')
	default:
		return newCharGrid(width, height, '•')
	}
}

// charGrid maps one dot to one cell
type charGrid struct {
	width, height uint16
	glyph         rune
	colors        []terminal.RGB
	painted       []bool
}

func newCharGrid(width, height uint16, glyph rune) *charGrid {
	n := int(width) * int(height)
	return &charGrid{
		width:   width,
		height:  height,
		glyph:   glyph,
		colors:  make([]terminal.RGB, n),
		painted: make([]bool, n),
	}
}

func (g *charGrid) Size() (uint16, uint16) { return g.width, g.height }

func (g *charGrid) Resolution() (float64, float64) {
	return float64(g.width), float64(g.height)
}

func (g *charGrid) Paint(x, y uint16, color terminal.RGB) {
	if x >= g.width || y >= g.height {
		return
	}
	i := int(y)*int(g.width) + int(x)
	g.colors[i] = color
	g.painted[i] = true
}

func (g *charGrid) Cell(x, y uint16) (Glyph, bool) {
	if x >= g.width || y >= g.height {
		return Glyph{}, false
	}
	i := int(y)*int(g.width) + int(x)
	if !g.painted[i] {
		return Glyph{}, false
	}
	return Glyph{Rune: g.glyph, Fg: g.colors[i]}, true
}

func (g *charGrid) Reset() {
	clear(g.colors)
	clear(g.painted)
}

// halfBlockGrid stacks two dots per cell, each with its own color
type halfBlockGrid struct {
	width, height uint16 // cells
	colors        []terminal.RGB
	painted       []bool // dot rows: 2*height
}

func newHalfBlockGrid(width, height uint16) *halfBlockGrid {
	n := int(width) * int(height) * 2
	return &halfBlockGrid{
		width:   width,
		height:  height,
		colors:  make([]terminal.RGB, n),
		painted: make([]bool, n),
	}
}

func (g *halfBlockGrid) Size() (uint16, uint16) { return g.width, g.height }

func (g *halfBlockGrid) Resolution() (float64, float64) {
	return float64(g.width), float64(g.height) * 2
}

func (g *halfBlockGrid) Paint(x, y uint16, color terminal.RGB) {
	if x >= g.width || int(y) >= int(g.height)*2 {
		return
	}
	i := int(y)*int(g.width) + int(x)
	g.colors[i] = color
	g.painted[i] = true
}

func (g *halfBlockGrid) Cell(x, y uint16) (Glyph, bool) {
	if x >= g.width || y >= g.height {
		return Glyph{}, false
	}
	upper := 2*int(y)*int(g.width) + int(x)
	lower := upper + int(g.width)

	switch up, low := g.painted[upper], g.painted[lower]; {
	case up && low:
		if g.colors[upper].Equal(g.colors[lower]) {
			return Glyph{Rune: '█', Fg: g.colors[upper]}, true
		}
		return Glyph{Rune: '▀', Fg: g.colors[upper], Bg: g.colors[lower], HasBg: true}, true
	case up:
		return Glyph{Rune: '▀', Fg: g.colors[upper]}, true
	case low:
		return Glyph{Rune: '▄', Fg: g.colors[lower]}, true
	}
	return Glyph{}, false
}

func (g *halfBlockGrid) Reset() {
	clear(g.colors)
	clear(g.painted)
}

const brailleBlank = 0x2800

// brailleDots[row][col] is the dot bit within a braille cell
var brailleDots = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// brailleGrid packs 2x4 dots per cell; the cell takes the color of its last painted dot
type brailleGrid struct {
	width, height uint16
	bits          []uint8
	colors        []terminal.RGB
}

func newBrailleGrid(width, height uint16) *brailleGrid {
	n := int(width) * int(height)
	return &brailleGrid{
		width:  width,
		height: height,
		bits:   make([]uint8, n),
		colors: make([]terminal.RGB, n),
	}
}

func (g *brailleGrid) Size() (uint16, uint16) { return g.width, g.height }

func (g *brailleGrid) Resolution() (float64, float64) {
	return float64(g.width) * 2, float64(g.height) * 4
}

func (g *brailleGrid) Paint(x, y uint16, color terminal.RGB) {
	cx, cy := x/2, y/4
	if cx >= g.width || cy >= g.height {
		return
	}
	i := int(cy)*int(g.width) + int(cx)
	g.bits[i] |= brailleDots[y%4][x%2]
	g.colors[i] = color
}

func (g *brailleGrid) Cell(x, y uint16) (Glyph, bool) {
	if x >= g.width || y >= g.height {
		return Glyph{}, false
	}
	i := int(y)*int(g.width) + int(x)
	if g.bits[i] == 0 {
		return Glyph{}, false
	}
	return Glyph{Rune: brailleBlank + rune(g.bits[i]), Fg: g.colors[i]}, true
}

func (g *brailleGrid) Reset() {
	clear(g.bits)
	clear(g.colors)
}
