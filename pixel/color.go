package pixel

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Color is a 24-bit RGB color as understood by addressable LED strips.
type Color struct {
	R, G, B uint8
}

// FromPacked unpacks a 24-bit 0xRRGGBB value.
func FromPacked(v uint32) Color {
	return Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// Packed returns the 24-bit 0xRRGGBB value.
func (c Color) Packed() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Random returns a color drawn uniformly from all 2^24 values.
func Random() Color {
	return FromPacked(rand.Uint32N(1 << 24))
}

// Invert returns the channel-wise complement.
func (c Color) Invert() Color {
	return FromPacked(0xFFFFFF - c.Packed())
}

// HSI returns the derived hue, saturation and intensity of the color, with
// hue in [0, 6), saturation in [0, 1] and intensity in [0, 255].
//
// Achromatic colors have hue 0, and black has saturation 0.
// See https://en.wikipedia.org/wiki/HSL_and_HSV
func (c Color) HSI() (hue, saturation, intensity float64) {
	var (
		r   = float64(c.R)
		g   = float64(c.G)
		b   = float64(c.B)
		max = math.Max(r, math.Max(g, b))
		min = math.Min(r, math.Min(g, b))
	)
	intensity = (r + g + b) / 3
	if intensity != 0 {
		saturation = 1 - min/intensity
	}
	if span := max - min; span != 0 {
		switch max {
		case r:
			hue = math.Mod((g-b)/span, 6)
			if hue < 0 {
				hue += 6
			}
		case g:
			hue = (b-r)/span + 2
		case b:
			hue = (r-g)/span + 4
		}
	}
	return hue, saturation, intensity
}

// RGBA implements the [color.Color] interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

func (c Color) String() string {
	return fmt.Sprintf("#%06x", c.Packed())
}
