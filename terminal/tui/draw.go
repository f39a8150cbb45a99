package tui

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/termgrid/layout"
	"github.com/lixenwraith/termgrid/terminal"
)

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
	LineNone                    // spaces (invisible border with padding)
)

// Box drawing character sets indexed by LineType
var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
	LineNone:    {' ', ' ', ' ', ' ', ' ', ' '},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

func lineChars(line LineType) [6]rune {
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	return boxChars[line]
}

// Text renders text at position, truncates at region edge
// Wide runes occupy two columns; zero-width runes are dropped
func (r Region) Text(x, y uint16, s string, fg, bg terminal.RGB, attr terminal.Attr) {
	if y >= r.Area.Height {
		return
	}
	col := int(x)
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if col+w > int(r.Area.Width) {
			break
		}
		r.Cell(uint16(col), y, ch, fg, bg, attr)
		col += w
	}
}

// TextRight renders text right-aligned on row
func (r Region) TextRight(y uint16, s string, fg, bg terminal.RGB, attr terminal.Attr) {
	x := max(int(r.Area.Width)-TextWidth(s), 0)
	r.Text(uint16(x), y, s, fg, bg, attr)
}

// TextCenter renders text centered on row
func (r Region) TextCenter(y uint16, s string, fg, bg terminal.RGB, attr terminal.Attr) {
	x := max((int(r.Area.Width)-TextWidth(s))/2, 0)
	r.Text(uint16(x), y, s, fg, bg, attr)
}

// Box draws border around region edge
func (r Region) Box(line LineType, fg terminal.RGB) {
	a := r.Area
	// Effective extents; a region clipped at the grid edge is narrower than Width
	if a.Right()-a.X < 2 || a.Bottom()-a.Y < 2 {
		return
	}
	chars := lineChars(line)
	edge := func(p layout.Position, ch rune) {
		r.set(p, terminal.Cell{Rune: ch, Fg: fg})
	}

	right := a.Right() - 1
	bottom := a.Bottom() - 1

	// Corners
	edge(layout.Position{X: a.X, Y: a.Y}, chars[boxTL])
	edge(layout.Position{X: right, Y: a.Y}, chars[boxTR])
	edge(layout.Position{X: a.X, Y: bottom}, chars[boxBL])
	edge(layout.Position{X: right, Y: bottom}, chars[boxBR])

	// Horizontal edges
	for col := range layout.NewRect(a.X+1, a.Y, right-a.X-1, a.Height).Columns().All() {
		edge(layout.Position{X: col.X, Y: a.Y}, chars[boxH])
		edge(layout.Position{X: col.X, Y: bottom}, chars[boxH])
	}

	// Vertical edges
	for row := range layout.NewRect(a.X, a.Y+1, a.Width, bottom-a.Y-1).Rows().All() {
		edge(layout.Position{X: a.X, Y: row.Y}, chars[boxV])
		edge(layout.Position{X: right, Y: row.Y}, chars[boxV])
	}
}

// Card draws titled border and returns inner content region
func (r Region) Card(title string, line LineType, fg terminal.RGB) Region {
	r.Box(line, fg)

	if title != "" && r.Area.Width > 4 {
		displayTitle := Truncate(title, int(r.Area.Width)-4)
		titleX := (int(r.Area.Width) - TextWidth(displayTitle) - 2) / 2
		r.Text(uint16(titleX), 0, " "+displayTitle+" ", fg, terminal.RGB{}, terminal.AttrBold)
	}

	return r.Inset(1)
}

// HLine draws horizontal line across region width at row y
func (r Region) HLine(y uint16, line LineType, fg terminal.RGB) {
	row := r.Sub(0, y, r.Area.Width, 1)
	ch := lineChars(line)[boxH]
	for p := range row.Area.Positions().All() {
		r.set(p, terminal.Cell{Rune: ch, Fg: fg})
	}
}

// VLine draws vertical line across region height at column x
func (r Region) VLine(x uint16, line LineType, fg terminal.RGB) {
	col := r.Sub(x, 0, 1, r.Area.Height)
	ch := lineChars(line)[boxV]
	for p := range col.Area.Positions().All() {
		r.set(p, terminal.Cell{Rune: ch, Fg: fg})
	}
}
