package layout

import "testing"

func BenchmarkPositions(b *testing.B) {
	r := NewRect(0, 0, 200, 60)
	b.ReportAllocs()
	for b.Loop() {
		n := 0
		for range r.Positions().All() {
			n++
		}
		if n != 200*60 {
			b.Fatalf("unexpected count %d", n)
		}
	}
}

func BenchmarkRowsBothEnds(b *testing.B) {
	r := NewRect(0, 0, 200, 60)
	b.ReportAllocs()
	for b.Loop() {
		rows := r.Rows()
		for rows.Len() > 0 {
			rows.Next()
			rows.NextBack()
		}
	}
}
