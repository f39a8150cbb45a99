// Package tui provides immediate-mode drawing primitives over a terminal cell buffer.
//
// Core abstraction is Region, a layout.Rect window into a row-major []terminal.Cell.
// All drawing operations are relative to region bounds with automatic clipping.
//
// Design principles:
//   - Immediate mode: no retained widget state, app owns render loop
//   - Zero allocation in hot paths: Region is a small value type
//   - Composable: regions nest via Sub(), split helpers divide regions
//   - Cell walks go through layout iterators (Rows, Columns, Positions)
//
// Usage pattern:
//
//	cells := make([]terminal.Cell, w*h)
//	root := tui.NewRegion(cells, w, layout.NewRect(0, 0, w, h))
//	root.Fill(bgColor)
//
//	top, body := tui.SplitVFixed(root, 1)
//	top.TextCenter(0, "TITLE", fg, bg, terminal.AttrBold)
//	content := body.Card("PLOT", tui.LineRounded, borderColor)
//
//	terminal.Blit(screen, cells, w, root.Area)
package tui
