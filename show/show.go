// Package show sequences primitive effects into complete animations.
//
// Shows are pure orchestration: they hold no state between invocations and
// are meant to be run back to back, forever, by a driver loop.
package show

import (
	"math/rand/v2"
	"time"

	"github.com/BeatGlow/strand"
	"github.com/BeatGlow/strand/effect"
	"github.com/BeatGlow/strand/pixel"
)

const (
	defaultPace = time.Millisecond
	slowPace    = 10 * time.Millisecond
	pause       = time.Second
)

// Flag is the eleven-color pride flag palette, in flag order.
var Flag = []pixel.Color{
	pixel.FromPacked(0xFFFFFF),
	pixel.FromPacked(0xF6AAB8),
	pixel.FromPacked(0x60CDF6),
	pixel.FromPacked(0x674018),
	pixel.FromPacked(0x050708),
	pixel.FromPacked(0xE51E25),
	pixel.FromPacked(0xF68D1F),
	pixel.FromPacked(0xF9EE14),
	pixel.FromPacked(0x0D8040),
	pixel.FromPacked(0x3D5FAC),
	pixel.FromPacked(0x742A85),
}

// flagPixels assigns a palette color to each of n positions, proportional to
// the position's location along the strip.
func flagPixels(n int) []pixel.Color {
	colors := make([]pixel.Color, n)
	for i := range colors {
		colors[i] = Flag[len(Flag)*i/n]
	}
	return colors
}

// flagIndex returns a color's position within the palette; colors not in the
// palette order last.
func flagIndex(c pixel.Color) int {
	for i, f := range Flag {
		if f == c {
			return i
		}
	}
	return len(Flag)
}

// lessFlag orders palette colors by flag order rather than color value.
func lessFlag(a, b pixel.Color) bool {
	return flagIndex(a) < flagIndex(b)
}

// rainbowPixels spreads evenly spaced packed values over the full 24-bit
// range, brightest first.
func rainbowPixels(n int) []pixel.Color {
	step := uint32(0xFFFFFF / n)
	colors := make([]pixel.Color, n)
	for i := range colors {
		colors[i] = pixel.FromPacked(uint32(n-i) * step)
	}
	return colors
}

// Rainbow rains a full sweep of the color range onto the strip, then sorts
// it three ways: ascending by packed value, by hue/saturation/intensity,
// and finally descending by packed value.
func Rainbow(s strand.Strip) error {
	if s.Len() == 0 {
		return nil
	}

	if err := effect.RandomRain(s, rainbowPixels(s.Len()), defaultPace); err != nil {
		return err
	}
	if err := effect.Sort(s, effect.LessPacked, defaultPace); err != nil {
		return err
	}
	time.Sleep(pause)
	if err := effect.Sort(s, effect.LessHSI, defaultPace); err != nil {
		return err
	}
	time.Sleep(pause)
	return effect.Sort(s, effect.MorePacked, defaultPace)
}

// Pride plays the pride flag sequence: rain the flag colors onto the strip,
// sort them several ways (including a deliberately order-free sort that
// only swaps pixels around), wipe and fade through every flag color, and
// finish by restoring flag order.
func Pride(s strand.Strip) error {
	if s.Len() == 0 {
		return nil
	}

	targets := flagPixels(s.Len())
	if err := effect.RandomRain(s, targets, defaultPace); err != nil {
		return err
	}
	if err := effect.Sort(s, effect.LessHSI, defaultPace); err != nil {
		return err
	}
	if err := effect.Sort(s, effect.MorePacked, defaultPace); err != nil {
		return err
	}
	if err := effect.Sort(s, effect.Unordered, defaultPace); err != nil {
		return err
	}

	rand.Shuffle(len(targets), func(i, j int) {
		targets[i], targets[j] = targets[j], targets[i]
	})
	if err := effect.RandomRain(s, targets, defaultPace); err != nil {
		return err
	}
	if err := effect.Sort(s, lessFlag, slowPace); err != nil {
		return err
	}
	time.Sleep(pause)

	for _, c := range Flag {
		if err := effect.RandomWipe(s, c, 0); err != nil {
			return err
		}
	}

	c := Flag[len(Flag)-1]
	for _, next := range Flag {
		if err := effect.SlowTransition(s, c, next, defaultPace); err != nil {
			return err
		}
		c = next
	}

	rand.Shuffle(len(targets), func(i, j int) {
		targets[i], targets[j] = targets[j], targets[i]
	})
	if err := effect.RandomRain(s, targets, defaultPace); err != nil {
		return err
	}
	return effect.Sort(s, lessFlag, defaultPace)
}
