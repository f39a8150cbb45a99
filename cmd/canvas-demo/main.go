package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termgrid/canvas"
	"github.com/lixenwraith/termgrid/layout"
	"github.com/lixenwraith/termgrid/terminal"
	"github.com/lixenwraith/termgrid/terminal/tui"
)

// Colors
var (
	fgColor     = terminal.RGB{R: 200, G: 200, B: 200}
	borderColor = terminal.RGB{R: 80, G: 100, B: 140}
	accentColor = terminal.RGB{R: 100, G: 200, B: 220}
	dimColor    = terminal.RGB{R: 100, G: 100, B: 100}
	headerBg    = terminal.RGB{R: 40, G: 50, B: 70}
)

const maxHistory = 256

type options struct {
	marker canvas.Marker
	points int
	seed   int64
	start  terminal.RGB
	end    terminal.RGB
	bg     terminal.RGB
}

func parseFlags() (options, error) {
	var (
		markerStr string
		startStr  string
		endStr    string
		bgStr     string
		opts      options
	)
	flag.StringVar(&markerStr, "marker", "braille", "Dot marker: dot, block, bar, halfblock, braille")
	flag.IntVar(&opts.points, "points", 400, "Number of points per frame")
	flag.Int64Var(&opts.seed, "seed", 1, "Seed for the scatter jitter")
	flag.StringVar(&startStr, "fg", "#64c8dc", "Gradient start color")
	flag.StringVar(&endStr, "fg2", "#ff6478", "Gradient end color")
	flag.StringVar(&bgStr, "bg", "#14141e", "Canvas background color")
	flag.Parse()

	var err error
	if opts.marker, err = canvas.ParseMarker(markerStr); err != nil {
		return opts, err
	}
	if opts.start, err = terminal.ParseHex(startStr); err != nil {
		return opts, err
	}
	if opts.end, err = terminal.ParseHex(endStr); err != nil {
		return opts, err
	}
	if opts.bg, err = terminal.ParseHex(bgStr); err != nil {
		return opts, err
	}
	if opts.points < 0 {
		return opts, fmt.Errorf("points must be non-negative, got %d", opts.points)
	}
	return opts, nil
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.PrintDefaults()
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}
	defer screen.Fini()

	// Dedicated input goroutine
	eventCh := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventCh)
				return
			}
			eventCh <- ev
		}
	}()

	rng := rand.New(rand.NewSource(opts.seed))
	jitter := make([][2]float64, opts.points)
	for i := range jitter {
		jitter[i] = [2]float64{rng.NormFloat64() * 0.04, rng.NormFloat64() * 0.04}
	}
	coords := make([][2]float64, opts.points)
	var history []float64

	frame := 0
	ticker := time.NewTicker(33 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			frame++
		case ev, ok := <-eventCh:
			if !ok || quit(ev) {
				return
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				screen.Sync()
			}
		}

		w, h := screen.Size()
		if w <= 0 || h <= 0 {
			continue
		}
		sw, sh := uint16(min(w, math.MaxUint16)), uint16(min(h, math.MaxUint16))
		cells := make([]terminal.Cell, int(sw)*int(sh))
		root := tui.NewRegion(cells, int(sw), layout.NewRect(0, 0, sw, sh))
		root.Fill(opts.bg)

		curve(coords, jitter, float64(frame)*0.02)
		dropped := render(root, opts, coords, history)
		history = append(history, float64(dropped))
		if len(history) > maxHistory {
			history = history[len(history)-maxHistory:]
		}

		terminal.Blit(screen, cells, int(sw), root.Area)
		screen.Show()
	}
}

func quit(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	return key.Key() == tcell.KeyCtrlC || key.Key() == tcell.KeyEscape ||
		(key.Key() == tcell.KeyRune && key.Rune() == 'q')
}

// curve fills coords with a Lissajous figure; part of it leaves the [-1, 1] box on purpose
func curve(coords, jitter [][2]float64, phase float64) {
	n := float64(len(coords))
	for i := range coords {
		t := 2 * math.Pi * float64(i) / n
		coords[i] = [2]float64{
			1.1*math.Sin(3*t+phase) + jitter[i][0],
			math.Sin(2*t) + jitter[i][1],
		}
	}
}

// render draws one frame and returns how many points fell outside the plot bounds
func render(root tui.Region, opts options, coords [][2]float64, history []float64) int {
	header, body := tui.SplitVFixed(root, 1)
	header.Fill(headerBg)
	header.Text(1, 0, "CANVAS DEMO", accentColor, headerBg, terminal.AttrBold)
	header.TextRight(0, fmt.Sprintf("%s %dx%d ", opts.marker, root.Width(), root.Height()), dimColor, headerBg, terminal.AttrNone)

	content, footer := tui.SplitVFixed(body, uint16(max(body.Height()-1, 0)))
	footer.Fill(headerBg)
	footer.Text(1, 0, "q/Esc: quit | points outside [-1, 1] are dropped", dimColor, headerBg, terminal.AttrNone)

	panes := tui.SplitHEqual(content, 2, 1)
	plot := panes[0].Card("PLOT", tui.LineRounded, borderColor)
	stats := panes[1].Card("ROWS", tui.LineRounded, borderColor)

	bounds := [2]float64{-1, 1}
	dropped := 0
	perRow := make([]int, plot.Height())

	canvas.Canvas{
		XBounds:    bounds,
		YBounds:    bounds,
		Marker:     opts.marker,
		Background: opts.bg,
		Paint: func(ctx *canvas.Context) {
			ctx.Draw(canvas.Rectangle{X: -1, Y: -1, Width: 2, Height: 2, Color: dimColor})
			ctx.Draw(canvas.Line{X1: -1, Y1: 0, X2: 1, Y2: 0, Color: borderColor})
			ctx.Draw(canvas.Line{X1: 0, Y1: -1, X2: 0, Y2: 1, Color: borderColor})
			ctx.Layer()

			// Shapes drop silently; a cell-resolution painter over the same bounds counts them
			rows := canvas.NewPainter(canvas.NewGrid(canvas.MarkerDot, uint16(plot.Width()), uint16(plot.Height())), bounds, bounds)
			for i, c := range coords {
				color := terminal.Lerp(opts.start, opts.end, float64(i)/float64(max(len(coords)-1, 1)))
				ctx.Draw(canvas.Points{Coords: coords[i : i+1], Color: color})
				_, row, ok := rows.Point(c[0], c[1])
				if !ok {
					dropped++
					continue
				}
				if int(row) < len(perRow) {
					perRow[row]++
				}
			}
			ctx.Print(-1, 1, "(-1,1)", fgColor)
		},
	}.Render(plot)

	renderStats(stats, len(coords), dropped, perRow, history, opts)
	return dropped
}

// renderStats draws a per-row histogram of plotted points, one bar per plot row
func renderStats(r tui.Region, total, dropped int, perRow []int, history []float64, opts options) {
	r.Text(0, 0, fmt.Sprintf("plotted %d / %d", total-dropped, total), fgColor, opts.bg, terminal.AttrNone)
	r.Text(0, 1, fmt.Sprintf("dropped %d", dropped), dimColor, opts.bg, terminal.AttrNone)
	r.Sub(0, 2, r.Area.Width, 1).Sparkline(history, tui.SparklineOpts{
		Style: tui.Style{Fg: accentColor, Bg: opts.bg},
	})

	_, bars := tui.SplitVFixed(r, 3)
	peak := 1
	for _, n := range perRow {
		peak = max(peak, n)
	}

	i := 0
	for row := range bars.Rows() {
		if i >= len(perRow) {
			break
		}
		fill := perRow[i] * row.Width() / peak
		col := 0
		for cell := range row.Columns() {
			if col >= fill {
				break
			}
			cell.Cell(0, 0, '▬', terminal.Lerp(opts.start, opts.end, float64(col)/float64(max(row.Width()-1, 1))), opts.bg, terminal.AttrNone)
			col++
		}
		i++
	}
}
