// Package layout provides the cell-grid geometry used by the tui and canvas packages.
//
// Core abstraction is Rect, an immutable rectangle on a 16-bit unsigned grid.
// Edges are computed with saturating arithmetic: a rect that would extend past
// 65535 is clipped there instead of wrapping.
//
// Traversal:
//   - Rows: unit-height sub-rects, top-down via Next, bottom-up via NextBack
//   - Columns: unit-width sub-rects, left-right via Next, right-left via NextBack
//   - Positions: every cell in row-major order, forward only
//
// Iterators are lazy, O(1) per step, allocation-free, and report an exact
// remaining count via Len at any point, including after exhaustion.
//
// Usage pattern:
//
//	rows := area.Rows()
//	header, _ := rows.Next()
//	footer, _ := rows.NextBack()
//	for row := range rows.All() {
//	    // body rows between header and footer
//	}
package layout
