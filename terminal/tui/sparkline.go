package tui

import (
	"math"

	"github.com/lixenwraith/termgrid/layout"
	"github.com/lixenwraith/termgrid/terminal"
)

// SparklineChars provides 8-level vertical resolution
var SparklineChars = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// SparklineOpts configures sparkline rendering
type SparklineOpts struct {
	Min, Max float64 // Range bounds, auto-scale if both 0
	Style    Style
}

// Sparkline renders values along the region's first row, newest value in the rightmost column
// Older values that do not fit are dropped; unused columns on the left get the lowest level, dimmed
func (r Region) Sparkline(values []float64, opts SparklineOpts) {
	if r.Area.IsEmpty() {
		return
	}
	lo, hi := sparkRange(values, opts)

	cols := layout.NewRect(r.Area.X, r.Area.Y, r.Area.Width, 1).Columns()
	for i := len(values) - 1; i >= 0; i-- {
		col, ok := cols.NextBack()
		if !ok {
			return
		}
		r.set(layout.Position{X: col.X, Y: col.Y}, opts.Style.cell(sparkLevel(values[i], lo, hi)))
	}

	pad := opts.Style
	pad.Attr |= terminal.AttrDim
	for col := range cols.All() {
		r.set(layout.Position{X: col.X, Y: col.Y}, pad.cell(SparklineChars[0]))
	}
}

// SparklineV renders values up the region's first column, newest value in the bottom row
func (r Region) SparklineV(values []float64, opts SparklineOpts) {
	if r.Area.IsEmpty() {
		return
	}
	lo, hi := sparkRange(values, opts)

	rows := layout.NewRect(r.Area.X, r.Area.Y, 1, r.Area.Height).Rows()
	for i := len(values) - 1; i >= 0; i-- {
		row, ok := rows.NextBack()
		if !ok {
			return
		}
		r.set(layout.Position{X: row.X, Y: row.Y}, opts.Style.cell(sparkLevel(values[i], lo, hi)))
	}
}

func sparkRange(values []float64, opts SparklineOpts) (lo, hi float64) {
	lo, hi = opts.Min, opts.Max
	if lo == 0 && hi == 0 && len(values) > 0 {
		lo, hi = values[0], values[0]
		for _, v := range values {
			lo = min(lo, v)
			hi = max(hi, v)
		}
	}
	return lo, hi
}

// sparkLevel maps v within [lo, hi] to one of the 8 block characters
func sparkLevel(v, lo, hi float64) rune {
	rangeV := hi - lo
	if rangeV == 0 {
		rangeV = 1
	}
	norm := (v - lo) / rangeV
	if math.IsNaN(norm) {
		return SparklineChars[0]
	}
	norm = min(max(norm, 0), 1)
	idx := min(int(norm*7.99), 7)
	return SparklineChars[idx]
}
