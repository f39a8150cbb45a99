package canvas

import (
	"github.com/lixenwraith/termgrid/layout"
	"github.com/lixenwraith/termgrid/terminal"
	"github.com/lixenwraith/termgrid/terminal/tui"
)

// layer is a finished grid snapshot, indexed y*width + x
type layer struct {
	glyphs  []Glyph
	painted []bool
}

// label is text anchored at a canvas coordinate
type label struct {
	x, y float64
	text string
	fg   terminal.RGB
}

// Context collects the shapes and labels of one canvas render pass
type Context struct {
	painter Painter
	area    layout.Rect // cell space, origin at 0,0
	layers  []layer
	labels  []label
	dirty   bool
}

// NewContext creates a drawing context for a width x height cell area
func NewContext(m Marker, width, height uint16, xBounds, yBounds [2]float64) *Context {
	return &Context{
		painter: Painter{xBounds: xBounds, yBounds: yBounds, grid: NewGrid(m, width, height)},
		area:    layout.NewRect(0, 0, width, height),
	}
}

// Draw paints a shape onto the active layer
func (c *Context) Draw(s Shape) {
	s.Draw(&c.painter)
	c.dirty = true
}

// Layer freezes the active layer; shapes drawn afterwards render on top of it
func (c *Context) Layer() {
	g := c.painter.grid
	l := layer{
		glyphs:  make([]Glyph, c.area.Area()),
		painted: make([]bool, c.area.Area()),
	}
	i := 0
	for p := range c.area.Positions().All() {
		l.glyphs[i], l.painted[i] = g.Cell(p.X, p.Y)
		i++
	}
	c.layers = append(c.layers, l)
	g.Reset()
	c.dirty = false
}

// Print places text with its first character at the cell containing (x, y)
// Labels outside the bounds are dropped; labels render above every layer
func (c *Context) Print(x, y float64, text string, fg terminal.RGB) {
	c.labels = append(c.labels, label{x: x, y: y, text: text, fg: fg})
}

func (c *Context) finish() {
	if c.dirty {
		c.Layer()
	}
}

// Canvas renders shapes in continuous coordinates into a region
type Canvas struct {
	XBounds    [2]float64
	YBounds    [2]float64
	Marker     Marker
	Background terminal.RGB
	Paint      func(ctx *Context)
}

// Render fills the region with the background, then composes layers in order
// and finally the labels
func (cv Canvas) Render(area tui.Region) {
	area.Fill(cv.Background)

	w, h := area.Area.Width, area.Area.Height
	if w == 0 || h == 0 {
		return
	}

	ctx := NewContext(cv.Marker, w, h, cv.XBounds, cv.YBounds)
	if cv.Paint != nil {
		cv.Paint(ctx)
	}
	ctx.finish()

	for _, l := range ctx.layers {
		i := 0
		for p := range ctx.area.Positions().All() {
			if l.painted[i] {
				g := l.glyphs[i]
				bg := cv.Background
				if g.HasBg {
					bg = g.Bg
				}
				area.SetCell(p.X, p.Y, terminal.Cell{Rune: g.Rune, Fg: g.Fg, Bg: bg})
			}
			i++
		}
	}

	for _, lb := range ctx.labels {
		col, row, ok := project(lb.x, lb.y, cv.XBounds, cv.YBounds, float64(w), float64(h))
		if !ok {
			continue
		}
		area.Text(col, row, lb.text, lb.fg, cv.Background, terminal.AttrNone)
	}
}
