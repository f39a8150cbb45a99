package canvas

import (
	"errors"
	"fmt"
	"strings"
)

// Marker selects the glyph family used to render dots
type Marker uint8

const (
	MarkerDot       Marker = iota // •
	MarkerBlock                   // █
	MarkerBar                     // ▄
	MarkerHalfBlock               // ▀ ▄ █, double vertical resolution
	MarkerBraille                 // ⠁..⣿, 2x4 dots per cell
)

// ErrUnknownMarker is returned by ParseMarker for unrecognized names
var ErrUnknownMarker = errors.New("unknown marker")

var markerNames = [...]string{
	MarkerDot:       "dot",
	MarkerBlock:     "block",
	MarkerBar:       "bar",
	MarkerHalfBlock: "halfblock",
	MarkerBraille:   "braille",
}

// String implements fmt.Stringer
func (m Marker) String() string {
	if int(m) < len(markerNames) {
		return markerNames[m]
	}
	return fmt.Sprintf("Marker(%d)", uint8(m))
}

// ParseMarker resolves a marker by name, case-insensitive
func ParseMarker(s string) (Marker, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for m, n := range markerNames {
		if n == name {
			return Marker(m), nil
		}
	}
	return 0, fmt.Errorf("canvas: marker %q: %w", s, ErrUnknownMarker)
}
