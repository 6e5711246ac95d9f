package effect

import (
	"time"

	"github.com/BeatGlow/strand"
	"github.com/BeatGlow/strand/pixel"
)

// SlowTransition fills the strip with from, then walks the whole strip one
// channel unit per frame toward to, rendering every step. Each channel moves
// independently, so the transition ends only once all three have arrived;
// that takes as many frames as the largest per-channel difference.
func SlowTransition(s strand.Strip, from, to pixel.Color, pace time.Duration) error {
	if err := Wipe(s, from); err != nil {
		return err
	}
	for from != to {
		from = pixel.Color{
			R: closeIn(from.R, to.R),
			G: closeIn(from.G, to.G),
			B: closeIn(from.B, to.B),
		}
		if err := Wipe(s, from); err != nil {
			return err
		}
		sleep(pace)
	}
	return nil
}

// SlowTransitionRandom transitions from a random color to its inverse.
func SlowTransitionRandom(s strand.Strip, pace time.Duration) error {
	c := pixel.Random()
	return SlowTransition(s, c, c.Invert(), pace)
}

func closeIn(from, to uint8) uint8 {
	switch {
	case from == to:
		return to
	case from < to:
		return from + 1
	default:
		return from - 1
	}
}
