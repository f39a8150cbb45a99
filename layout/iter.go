package layout

import "iter"

// span is the pair of cursors shared by Rows and Columns
// [front, back) holds the coordinates not yet yielded from either end
type span struct {
	front, back uint16
}

// advance takes the coordinate at the front end
func (s *span) advance() (uint16, bool) {
	if s.front >= s.back {
		return 0, false
	}
	c := s.front
	s.front++
	return c, true
}

// retreat takes the coordinate at the back end
func (s *span) retreat() (uint16, bool) {
	if s.back <= s.front {
		return 0, false
	}
	s.back--
	return s.back, true
}

func (s *span) len() int {
	return int(SatSub(s.back, s.front))
}

// Rows iterates the rows of a Rect as unit-height rects
// Next and NextBack may be interleaved freely; each row is produced exactly once
// Not safe for concurrent use
type Rows struct {
	rect Rect
	span span
}

// NewRows creates a row iterator positioned before the first and after the last row
func NewRows(r Rect) *Rows {
	return &Rows{
		rect: r,
		span: span{front: r.Y, back: r.Bottom()},
	}
}

// Next returns the topmost remaining row
func (it *Rows) Next() (Rect, bool) {
	y, ok := it.span.advance()
	if !ok {
		return Rect{}, false
	}
	return it.row(y), true
}

// NextBack returns the bottommost remaining row
func (it *Rows) NextBack() (Rect, bool) {
	y, ok := it.span.retreat()
	if !ok {
		return Rect{}, false
	}
	return it.row(y), true
}

// Len returns the number of rows still retrievable from either end
func (it *Rows) Len() int {
	return it.span.len()
}

// All drains the iterator top-down
func (it *Rows) All() iter.Seq[Rect] {
	return drain(it.Next)
}

// Backward drains the iterator bottom-up
func (it *Rows) Backward() iter.Seq[Rect] {
	return drain(it.NextBack)
}

func (it *Rows) row(y uint16) Rect {
	return Rect{X: it.rect.X, Y: y, Width: it.rect.Width, Height: 1}
}

// Columns iterates the columns of a Rect as unit-width rects
// Same contract as Rows with axes transposed
type Columns struct {
	rect Rect
	span span
}

// NewColumns creates a column iterator positioned before the first and after the last column
func NewColumns(r Rect) *Columns {
	return &Columns{
		rect: r,
		span: span{front: r.X, back: r.Right()},
	}
}

// Next returns the leftmost remaining column
func (it *Columns) Next() (Rect, bool) {
	x, ok := it.span.advance()
	if !ok {
		return Rect{}, false
	}
	return it.column(x), true
}

// NextBack returns the rightmost remaining column
func (it *Columns) NextBack() (Rect, bool) {
	x, ok := it.span.retreat()
	if !ok {
		return Rect{}, false
	}
	return it.column(x), true
}

// Len returns the number of columns still retrievable from either end
func (it *Columns) Len() int {
	return it.span.len()
}

// All drains the iterator left to right
func (it *Columns) All() iter.Seq[Rect] {
	return drain(it.Next)
}

// Backward drains the iterator right to left
func (it *Columns) Backward() iter.Seq[Rect] {
	return drain(it.NextBack)
}

func (it *Columns) column(x uint16) Rect {
	return Rect{X: x, Y: it.rect.Y, Width: 1, Height: it.rect.Height}
}

// Positions iterates every cell of a Rect in row-major order
// Forward only; the cursor rests at (X, Bottom) once exhausted
type Positions struct {
	rect    Rect
	current Position
}

// NewPositions creates a position iterator starting at the rect's origin
func NewPositions(r Rect) *Positions {
	p := &Positions{rect: r, current: Position{X: r.X, Y: r.Y}}
	// A zero-width rect would otherwise yield its origin column once per row
	if r.Right() == r.X {
		p.current.Y = r.Bottom()
	}
	return p
}

// Next returns the current cell and steps the cursor
func (it *Positions) Next() (Position, bool) {
	bottom := it.rect.Bottom()
	if it.current.Y >= bottom {
		return Position{}, false
	}
	p := it.current
	// current.X < Right() <= 65535 and current.Y < Bottom() <= 65535, so neither increment wraps
	it.current.X++
	if it.current.X >= it.rect.Right() {
		it.current.X = it.rect.X
		it.current.Y++
	}
	return p, true
}

// Len returns the number of cells not yet yielded
// Widened to int so the count stays exact for full 65535x65535 rects
func (it *Positions) Len() int {
	rows := int(SatSub(it.rect.Bottom(), it.current.Y))
	if rows == 0 {
		return 0
	}
	width := int(it.rect.Right() - it.rect.X)
	inRow := int(SatSub(it.rect.Right(), it.current.X))
	return inRow + (rows-1)*width
}

// All drains the iterator
func (it *Positions) All() iter.Seq[Position] {
	return drain(it.Next)
}

// drain adapts a pull function to a range-over-func sequence
// Breaking out of the loop leaves the source positioned after the last yielded item
func drain[T any](next func() (T, bool)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
