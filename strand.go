// Package strand drives linear strips of individually addressable RGB pixels.
package strand

import (
	"errors"

	"github.com/BeatGlow/strand/pixel"
)

// Errors
var (
	ErrStripLen = errors.New("strand: invalid strip length")
)

// Strip is an ordered, fixed-length sequence of pixels backed by a display
// device. All mutation is in-memory; Show is the only operation that touches
// the backend, and it may block for a backend pacing interval.
type Strip interface {
	// Len is the number of pixels on the strip.
	Len() int

	// At returns the color of the pixel at position i.
	At(i int) pixel.Color

	// Set changes the color of the pixel at position i.
	Set(i int, c pixel.Color)

	// SetRange replaces a contiguous span of pixels starting at position i.
	SetRange(i int, colors []pixel.Color)

	// Show pushes the current in-memory state to the backend.
	Show() error
}
