// Package effect implements animations over a pixel strip.
//
// Effects mutate the strip in memory and call Show to make each step
// visible; the pace argument adds an extra delay per rendered step on top
// of whatever pacing the backend applies.
package effect

import (
	"math/rand/v2"
	"time"

	"github.com/BeatGlow/strand"
	"github.com/BeatGlow/strand/pixel"
)

// Wipe sets every pixel to the same color in a single frame.
func Wipe(s strand.Strip, c pixel.Color) error {
	for i := 0; i < s.Len(); i++ {
		s.Set(i, c)
	}
	return s.Show()
}

// RandomRain lights every pixel exactly once, in uniformly random order,
// rendering after each one. Pixels take their per-position color from
// targets, or a fresh random color when targets is nil.
func RandomRain(s strand.Strip, targets []pixel.Color, pace time.Duration) error {
	if targets != nil && len(targets) != s.Len() {
		panic("effect: target count does not match strip length")
	}

	for _, pos := range rand.Perm(s.Len()) {
		if targets != nil {
			s.Set(pos, targets[pos])
		} else {
			s.Set(pos, pixel.Random())
		}
		if err := s.Show(); err != nil {
			return err
		}
		sleep(pace)
	}
	return nil
}

// RandomWipe sets every pixel to the same color, visiting positions in
// uniformly random order and rendering after each one.
func RandomWipe(s strand.Strip, c pixel.Color, pace time.Duration) error {
	for _, pos := range rand.Perm(s.Len()) {
		s.Set(pos, c)
		if err := s.Show(); err != nil {
			return err
		}
		sleep(pace)
	}
	return nil
}

// Shuffle replaces the whole strip with independent random colors in a
// single frame.
func Shuffle(s strand.Strip) error {
	colors := make([]pixel.Color, s.Len())
	for i := range colors {
		colors[i] = pixel.Random()
	}
	s.SetRange(0, colors)
	return s.Show()
}

// OneByOne chases a random-colored pixel from one end of the strip to the
// other and back, blacking out the previously lit position on the way out.
func OneByOne(s strand.Strip, pace time.Duration) error {
	var black pixel.Color
	for i := 0; i < s.Len(); i++ {
		s.Set(i, pixel.Random())
		if i > 0 {
			s.Set(i-1, black)
		}
		if err := s.Show(); err != nil {
			return err
		}
		sleep(pace)
	}
	for i := s.Len() - 1; i > 0; i-- {
		s.Set(i, pixel.Random())
		s.Set(i-1, black)
		if err := s.Show(); err != nil {
			return err
		}
		sleep(pace)
	}
	return nil
}

func sleep(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}
