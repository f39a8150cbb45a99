package tui

// Center returns a centered region of given size within outer
func Center(outer Region, w, h uint16) Region {
	x := max(int(outer.Area.Width)-int(w), 0) / 2
	y := max(int(outer.Area.Height)-int(h), 0) / 2
	return outer.Sub(uint16(x), uint16(y), w, h)
}

// SplitHFixed splits with fixed left width, rest to right
func SplitHFixed(r Region, leftW uint16) (left, right Region) {
	leftW = min(leftW, r.Area.Width)
	left = r.Sub(0, 0, leftW, r.Area.Height)
	right = r.Sub(leftW, 0, r.Area.Width-leftW, r.Area.Height)
	return
}

// SplitVFixed splits with fixed top height, rest to bottom
func SplitVFixed(r Region, topH uint16) (top, bottom Region) {
	topH = min(topH, r.Area.Height)
	top = r.Sub(0, 0, r.Area.Width, topH)
	bottom = r.Sub(0, topH, r.Area.Width, r.Area.Height-topH)
	return
}

// SplitHEqual splits region into n equal-width columns
// gap specifies spacing between columns (e.g., 1 for divider lines)
// Leftmost columns absorb the remainder
func SplitHEqual(r Region, n, gap int) []Region {
	sizes := equalSizes(int(r.Area.Width), n, gap)
	if sizes == nil {
		return nil
	}
	regions := make([]Region, n)
	x := 0
	for i, w := range sizes {
		regions[i] = r.Sub(clamp16(x), 0, clamp16(w), r.Area.Height)
		x += w + gap
	}
	return regions
}

// SplitVEqual splits region into n equal-height rows
// gap specifies spacing between rows
func SplitVEqual(r Region, n, gap int) []Region {
	sizes := equalSizes(int(r.Area.Height), n, gap)
	if sizes == nil {
		return nil
	}
	regions := make([]Region, n)
	y := 0
	for i, h := range sizes {
		regions[i] = r.Sub(0, clamp16(y), r.Area.Width, clamp16(h))
		y += h + gap
	}
	return regions
}

// equalSizes distributes total minus gaps over n slots
func equalSizes(total, n, gap int) []int {
	if n <= 0 {
		return nil
	}
	gap = max(gap, 0)
	avail := max(total-gap*(n-1), n)

	base := avail / n
	extra := avail % n

	sizes := make([]int, n)
	for i := range sizes {
		sizes[i] = base
		if i < extra {
			sizes[i]++
		}
	}
	return sizes
}

func clamp16(v int) uint16 {
	return uint16(min(max(v, 0), 0xFFFF))
}
