package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termgrid/layout"
)

// Style converts cell colors and attributes to a tcell style
func Style(c Cell) tcell.Style {
	st := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(c.Fg.R), int32(c.Fg.G), int32(c.Fg.B))).
		Background(tcell.NewRGBColor(int32(c.Bg.R), int32(c.Bg.G), int32(c.Bg.B)))

	if c.Attrs&AttrBold != 0 {
		st = st.Bold(true)
	}
	if c.Attrs&AttrDim != 0 {
		st = st.Dim(true)
	}
	if c.Attrs&AttrItalic != 0 {
		st = st.Italic(true)
	}
	if c.Attrs&AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if c.Attrs&AttrBlink != 0 {
		st = st.Blink(true)
	}
	if c.Attrs&AttrReverse != 0 {
		st = st.Reverse(true)
	}
	return st
}

// Blit copies the area of a row-major cell buffer onto the screen
// Cells are addressed as cells[y*stride + x]; positions outside the buffer are skipped
// Caller is responsible for screen.Show()
func Blit(screen tcell.Screen, cells []Cell, stride int, area layout.Rect) {
	if stride <= 0 {
		return
	}
	for p := range area.Positions().All() {
		if int(p.X) >= stride {
			continue
		}
		idx := int(p.Y)*stride + int(p.X)
		if idx >= len(cells) {
			return
		}
		c := cells[idx]
		ch := c.Rune
		if ch == 0 {
			ch = ' '
		}
		screen.SetContent(int(p.X), int(p.Y), ch, nil, Style(c))
	}
}
