package effect

import (
	"testing"

	"github.com/BeatGlow/strand/pixel"
)

func TestSlowTransition(t *testing.T) {
	var (
		from = pixel.Color{R: 10, G: 200, B: 5}
		to   = pixel.Color{R: 15, G: 198, B: 5}
	)

	s := newTestStrip(12)
	s.record = true
	if err := SlowTransition(s, from, to, 0); err != nil {
		t.Fatal(err)
	}

	// One frame for the initial fill, then one per step of the widest
	// channel gap.
	if want := 1 + 5; len(s.frames) != want {
		t.Fatalf("expected %d frames, got %d", want, len(s.frames))
	}
	for n, frame := range s.frames {
		for i, c := range frame {
			if c != frame[0] {
				t.Fatalf("expected frame %d to be uniform, pixel %d is %s instead of %s", n, i, c, frame[0])
			}
		}
	}
	if first := s.frames[0][0]; first != from {
		t.Errorf("expected first frame to be %s, got %s", from, first)
	}
	for i := 0; i < s.Len(); i++ {
		if s.At(i) != to {
			t.Errorf("expected pixel %d to end at %s, got %s", i, to, s.At(i))
		}
	}
}

func TestSlowTransitionEqual(t *testing.T) {
	c := pixel.FromPacked(0x742A85)
	s := newTestStrip(8)
	if err := SlowTransition(s, c, c, 0); err != nil {
		t.Fatal(err)
	}
	if s.shows != 1 {
		t.Errorf("expected a single fill frame, got %d", s.shows)
	}
}

func TestSlowTransitionRandom(t *testing.T) {
	s := newTestStrip(8)
	s.record = true
	if err := SlowTransitionRandom(s, 0); err != nil {
		t.Fatal(err)
	}

	first := s.frames[0][0]
	want := first.Invert()
	if last := s.At(0); last != want {
		t.Errorf("expected transition to end at the inverse %s, got %s", want, last)
	}
}

func TestCloseIn(t *testing.T) {
	tests := []struct {
		from, to, want uint8
	}{
		{0, 0, 0},
		{0, 255, 1},
		{255, 0, 254},
		{100, 101, 101},
		{101, 100, 100},
	}
	for _, test := range tests {
		if got := closeIn(test.from, test.to); got != test.want {
			t.Errorf("expected closeIn(%d, %d) to be %d, got %d", test.from, test.to, test.want, got)
		}
	}
}
