// Package terminal defines the cell and color model shared by the tui and canvas packages.
//
// Features:
//   - Cell: rune, 24-bit foreground/background, attribute bitmask
//   - RGB helpers backed by go-colorful (hex parsing, Lab blending)
//   - tcell bridge: Style conversion and Blit of a row-major cell buffer
//
// Cell buffers are row-major: cells[y*width + x].
package terminal
