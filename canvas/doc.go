// Package canvas plots shapes given in continuous coordinates onto a terminal cell grid.
//
// A Painter projects (x, y) through the canvas bounds into the dot resolution
// of a Grid and paints single dots. Shapes (Points, Line, Rectangle) only talk
// to the Painter; points that do not project are dropped silently.
//
// Grids trade color fidelity for resolution:
//   - Dot, Block, Bar: one dot per cell
//   - HalfBlock: 1x2 dots per cell, two colors per cell
//   - Braille: 2x4 dots per cell, one color per cell (last write wins)
//
// Canvas ties it together and renders into a tui.Region:
//
//	c := canvas.Canvas{
//	    XBounds: [2]float64{-10, 10},
//	    YBounds: [2]float64{-5, 5},
//	    Marker:  canvas.MarkerBraille,
//	    Paint: func(ctx *canvas.Context) {
//	        ctx.Draw(canvas.Points{Coords: pts, Color: fg})
//	        ctx.Print(-10, 5, "origin", fg)
//	    },
//	}
//	c.Render(region)
package canvas
