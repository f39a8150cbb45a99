package tui

import "github.com/lixenwraith/termgrid/terminal"

// Style bundles foreground, background, and attributes for cell rendering
type Style struct {
	Fg   terminal.RGB
	Bg   terminal.RGB
	Attr terminal.Attr
}

// cell builds a terminal cell with this style
func (s Style) cell(ch rune) terminal.Cell {
	return terminal.Cell{Rune: ch, Fg: s.Fg, Bg: s.Bg, Attrs: s.Attr}
}
