package layout

import (
	"math"
	"testing"
)

func TestRowsForward(t *testing.T) {
	rows := NewRect(0, 0, 2, 3).Rows()

	want := []Rect{{0, 0, 2, 1}, {0, 1, 2, 1}, {0, 2, 2, 1}}
	wantLen := []int{3, 2, 1, 0}

	for i, w := range want {
		if got := rows.Len(); got != wantLen[i] {
			t.Errorf("Step %d: expected Len %d, got %d", i, wantLen[i], got)
		}
		got, ok := rows.Next()
		if !ok {
			t.Fatalf("Step %d: expected row %v, got none", i, w)
		}
		if got != w {
			t.Errorf("Step %d: expected row %v, got %v", i, w, got)
		}
	}
	if got := rows.Len(); got != 0 {
		t.Errorf("Expected Len 0 after last row, got %d", got)
	}
	if r, ok := rows.Next(); ok {
		t.Errorf("Expected exhaustion, got %v", r)
	}
	if got := rows.Len(); got != 0 {
		t.Errorf("Expected Len 0 after exhaustion, got %d", got)
	}
}

func TestRowsMixedEnds(t *testing.T) {
	rows := NewRect(0, 0, 2, 3).Rows()

	steps := []struct {
		back bool
		want Rect
	}{
		{false, Rect{0, 0, 2, 1}},
		{true, Rect{0, 2, 2, 1}},
		{false, Rect{0, 1, 2, 1}},
	}
	for i, s := range steps {
		var got Rect
		var ok bool
		if s.back {
			got, ok = rows.NextBack()
		} else {
			got, ok = rows.Next()
		}
		if !ok || got != s.want {
			t.Errorf("Step %d: expected %v, got %v (ok=%v)", i, s.want, got, ok)
		}
	}
	if _, ok := rows.Next(); ok {
		t.Error("Expected Next to be exhausted")
	}
	if _, ok := rows.NextBack(); ok {
		t.Error("Expected NextBack to be exhausted")
	}
}

func TestColumns(t *testing.T) {
	cols := NewRect(0, 0, 2, 2).Columns()

	if got := cols.Len(); got != 2 {
		t.Errorf("Expected Len 2, got %d", got)
	}
	if got, _ := cols.Next(); got != (Rect{0, 0, 1, 2}) {
		t.Errorf("Expected first column {0 0 1 2}, got %v", got)
	}
	if got := cols.Len(); got != 1 {
		t.Errorf("Expected Len 1, got %d", got)
	}
	if got, _ := cols.NextBack(); got != (Rect{1, 0, 1, 2}) {
		t.Errorf("Expected last column {1 0 1 2}, got %v", got)
	}
	if got := cols.Len(); got != 0 {
		t.Errorf("Expected Len 0, got %d", got)
	}
	if _, ok := cols.Next(); ok {
		t.Error("Expected exhaustion")
	}
}

func TestEmptyRects(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
	}{
		{"Zero width", NewRect(3, 4, 0, 5)},
		{"Zero height", NewRect(3, 4, 5, 0)},
		{"Zero both", Rect{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.rect.Height == 0 {
				rows := tt.rect.Rows()
				if rows.Len() != 0 {
					t.Errorf("Expected row Len 0, got %d", rows.Len())
				}
				if _, ok := rows.Next(); ok {
					t.Error("Expected no rows")
				}
			}
			if tt.rect.Width == 0 {
				cols := tt.rect.Columns()
				if cols.Len() != 0 {
					t.Errorf("Expected column Len 0, got %d", cols.Len())
				}
				if _, ok := cols.NextBack(); ok {
					t.Error("Expected no columns")
				}
			}
			pos := tt.rect.Positions()
			if pos.Len() != 0 {
				t.Errorf("Expected position Len 0, got %d", pos.Len())
			}
			if p, ok := pos.Next(); ok {
				t.Errorf("Expected no positions, got %v", p)
			}
		})
	}
}

// Every rect up to 4x4 at a few origins; rows/columns drained forward must
// partition the rect exactly
func TestPartition(t *testing.T) {
	for _, origin := range []Position{{0, 0}, {3, 7}, {65530, 65531}} {
		for w := uint16(0); w <= 4; w++ {
			for h := uint16(0); h <= 4; h++ {
				r := NewRect(origin.X, origin.Y, w, h)
				covered := make(map[Position]int)

				rows := r.Rows()
				n := 0
				for row := range rows.All() {
					if row.Height != 1 || row.X != r.X || row.Width != r.Width {
						t.Fatalf("%v: malformed row %v", r, row)
					}
					for p := range row.Positions().All() {
						covered[p]++
					}
					n++
				}
				if n != int(r.Bottom()-r.Y) {
					t.Errorf("%v: expected %d rows, got %d", r, r.Bottom()-r.Y, n)
				}
				if _, ok := rows.Next(); ok {
					t.Errorf("%v: expected exhaustion after draining", r)
				}
				if len(covered) != r.Area() {
					t.Errorf("%v: rows cover %d cells, expected %d", r, len(covered), r.Area())
				}
				for p, c := range covered {
					if c != 1 || !r.Contains(p) {
						t.Errorf("%v: cell %v covered %d times", r, p, c)
					}
				}

				n = 0
				for col := range r.Columns().All() {
					if col.Width != 1 || col.Y != r.Y || col.Height != r.Height {
						t.Fatalf("%v: malformed column %v", r, col)
					}
					if col.X != r.X+uint16(n) {
						t.Errorf("%v: expected column x %d, got %d", r, r.X+uint16(n), col.X)
					}
					n++
				}
				if n != int(r.Right()-r.X) {
					t.Errorf("%v: expected %d columns, got %d", r, r.Right()-r.X, n)
				}
			}
		}
	}
}

// Exhaustive interleavings of Next/NextBack encoded as bitmasks
func TestMeetInTheMiddle(t *testing.T) {
	for h := uint16(0); h <= 8; h++ {
		r := NewRect(1, 2, 3, h)
		for mask := 0; mask < 1<<(h+2); mask++ {
			rows := r.Rows()
			seen := make(map[uint16]bool)
			yields := 0

			for step := 0; step < int(h)+2; step++ {
				if rows.Len() != int(h)-yields {
					t.Fatalf("h=%d mask=%b step=%d: expected Len %d, got %d", h, mask, step, int(h)-yields, rows.Len())
				}
				var row Rect
				var ok bool
				if mask&(1<<step) != 0 {
					row, ok = rows.NextBack()
				} else {
					row, ok = rows.Next()
				}
				if !ok {
					continue
				}
				if seen[row.Y] {
					t.Fatalf("h=%d mask=%b: row %d yielded twice", h, mask, row.Y)
				}
				seen[row.Y] = true
				yields++
			}
			if yields != int(h) {
				t.Errorf("h=%d mask=%b: expected %d yields, got %d", h, mask, h, yields)
			}
			if rows.Len() != 0 {
				t.Errorf("h=%d mask=%b: expected Len 0, got %d", h, mask, rows.Len())
			}
		}
	}
}

func TestColumnsMeetInTheMiddle(t *testing.T) {
	r := NewRect(10, 0, 5, 1)
	cols := r.Columns()

	var xs []uint16
	for i := 0; ; i++ {
		var c Rect
		var ok bool
		if i%2 == 0 {
			c, ok = cols.Next()
		} else {
			c, ok = cols.NextBack()
		}
		if !ok {
			break
		}
		xs = append(xs, c.X)
	}

	want := []uint16{10, 14, 11, 13, 12}
	if len(xs) != len(want) {
		t.Fatalf("Expected %v, got %v", want, xs)
	}
	for i := range want {
		if xs[i] != want[i] {
			t.Errorf("Pull %d: expected x=%d, got %d", i, want[i], xs[i])
		}
	}
}

// Len after an arbitrary prefix of pulls must equal what a full drain yields
func TestLenMatchesDrain(t *testing.T) {
	r := NewRect(4, 4, 6, 7)
	for front := 0; front <= 8; front++ {
		for back := 0; back <= 8; back++ {
			rows := r.Rows()
			for range front {
				rows.Next()
			}
			for range back {
				rows.NextBack()
			}
			want := rows.Len()
			got := 0
			for range rows.All() {
				got++
			}
			if got != want {
				t.Errorf("front=%d back=%d: Len reported %d, drain yielded %d", front, back, want, got)
			}

			cols := r.Columns()
			for range front {
				cols.NextBack()
			}
			for range back {
				cols.Next()
			}
			want = cols.Len()
			got = 0
			for range cols.Backward() {
				got++
			}
			if got != want {
				t.Errorf("cols front=%d back=%d: Len reported %d, drain yielded %d", front, back, want, got)
			}
		}
	}
}

func TestBoundarySaturation(t *testing.T) {
	t.Run("Full width skip", func(t *testing.T) {
		cols := NewRect(0, 0, math.MaxUint16, 1).Columns()
		for range math.MaxUint16 - 1 {
			if _, ok := cols.Next(); !ok {
				t.Fatal("Expected columns before the boundary")
			}
		}
		if got := cols.Len(); got != 1 {
			t.Errorf("Expected Len 1, got %d", got)
		}
		c, ok := cols.Next()
		if !ok || c.X != math.MaxUint16-1 {
			t.Errorf("Expected column at 65534, got %v (ok=%v)", c, ok)
		}
		if c, ok := cols.Next(); ok {
			t.Errorf("Expected exhaustion, got %v", c)
		}
		if got := cols.Len(); got != 0 {
			t.Errorf("Expected Len 0, got %d", got)
		}
	})

	t.Run("Full height skip", func(t *testing.T) {
		rows := NewRect(0, 0, 1, math.MaxUint16).Rows()
		for range math.MaxUint16 - 2 {
			rows.Next()
		}
		last, ok := rows.NextBack()
		if !ok || last.Y != math.MaxUint16-1 {
			t.Errorf("Expected back row at 65534, got %v (ok=%v)", last, ok)
		}
		mid, ok := rows.Next()
		if !ok || mid.Y != math.MaxUint16-2 {
			t.Errorf("Expected front row at 65533, got %v (ok=%v)", mid, ok)
		}
		if _, ok := rows.NextBack(); ok {
			t.Error("Expected exhaustion")
		}
	})

	t.Run("Clipped extent", func(t *testing.T) {
		r := NewRect(65000, 65000, 1000, 1000)
		if r.Right() != math.MaxUint16 || r.Bottom() != math.MaxUint16 {
			t.Fatalf("Expected saturated edges, got right=%d bottom=%d", r.Right(), r.Bottom())
		}
		rows := r.Rows()
		if rows.Len() != 535 {
			t.Errorf("Expected row Len 535, got %d", rows.Len())
		}
		n := 0
		for range rows.All() {
			n++
		}
		if n != 535 {
			t.Errorf("Expected 535 rows, got %d", n)
		}
		if got := r.Positions().Len(); got != 535*535 {
			t.Errorf("Expected %d positions, got %d", 535*535, got)
		}
	})

	t.Run("Last column positions", func(t *testing.T) {
		pos := NewRect(math.MaxUint16-2, math.MaxUint16-2, 5, 5).Positions()
		var got []Position
		for p := range pos.All() {
			got = append(got, p)
		}
		want := []Position{{65533, 65533}, {65534, 65533}, {65533, 65534}, {65534, 65534}}
		if len(got) != len(want) {
			t.Fatalf("Expected %v, got %v", want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("Position %d: expected %v, got %v", i, want[i], got[i])
			}
		}
	})
}

func TestPositions(t *testing.T) {
	pos := NewRect(0, 0, 2, 2).Positions()

	want := []Position{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	for i, w := range want {
		if got := pos.Len(); got != len(want)-i {
			t.Errorf("Step %d: expected Len %d, got %d", i, len(want)-i, got)
		}
		got, ok := pos.Next()
		if !ok || got != w {
			t.Errorf("Step %d: expected %v, got %v (ok=%v)", i, w, got, ok)
		}
	}
	if pos.Len() != 0 {
		t.Errorf("Expected Len 0, got %d", pos.Len())
	}
	if _, ok := pos.Next(); ok {
		t.Error("Expected exhaustion")
	}
}

func TestPositionsRowMajor(t *testing.T) {
	for _, origin := range []Position{{0, 0}, {2, 5}} {
		for w := uint16(0); w <= 5; w++ {
			for h := uint16(0); h <= 5; h++ {
				r := NewRect(origin.X, origin.Y, w, h)

				var want []Position
				for y := r.Y; y < r.Bottom(); y++ {
					for x := r.X; x < r.Right(); x++ {
						want = append(want, Position{x, y})
					}
				}

				pos := r.Positions()
				i := 0
				for {
					if pos.Len() != len(want)-i {
						t.Fatalf("%v step %d: expected Len %d, got %d", r, i, len(want)-i, pos.Len())
					}
					p, ok := pos.Next()
					if !ok {
						break
					}
					if i >= len(want) || p != want[i] {
						t.Fatalf("%v step %d: unexpected position %v", r, i, p)
					}
					i++
				}
				if i != len(want) {
					t.Errorf("%v: expected %d positions, got %d", r, len(want), i)
				}
			}
		}
	}
}

func TestRangeBreak(t *testing.T) {
	rows := NewRect(0, 0, 1, 5).Rows()
	for row := range rows.All() {
		if row.Y == 1 {
			break
		}
	}
	if got := rows.Len(); got != 3 {
		t.Errorf("Expected 3 rows left after break, got %d", got)
	}
	next, _ := rows.Next()
	if next.Y != 2 {
		t.Errorf("Expected row 2 after break, got %d", next.Y)
	}

	pos := NewRect(0, 0, 3, 3).Positions()
	for p := range pos.All() {
		if p == (Position{2, 0}) {
			break
		}
	}
	if got := pos.Len(); got != 6 {
		t.Errorf("Expected 6 positions left after break, got %d", got)
	}
}
