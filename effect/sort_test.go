package effect

import (
	"testing"

	"github.com/BeatGlow/strand/pixel"
)

func TestSortPacked(t *testing.T) {
	s := newTestStrip(80)
	if err := Shuffle(s); err != nil {
		t.Fatal(err)
	}
	for isSorted(s, LessPacked) {
		if err := Shuffle(s); err != nil {
			t.Fatal(err)
		}
	}
	before := multiset(s)

	if err := Sort(s, LessPacked, 0); err != nil {
		t.Fatal(err)
	}

	if !isSorted(s, LessPacked) {
		t.Error("expected strip to be sorted ascending by packed value")
	}
	if !equalMultiset(before, multiset(s)) {
		t.Error("expected sorting to preserve the strip's colors")
	}
}

func TestSortDescending(t *testing.T) {
	s := newTestStrip(64)
	if err := Shuffle(s); err != nil {
		t.Fatal(err)
	}
	if err := Sort(s, MorePacked, 0); err != nil {
		t.Fatal(err)
	}
	if !isSorted(s, MorePacked) {
		t.Error("expected strip to be sorted descending by packed value")
	}
}

func TestSortDefaultOrdering(t *testing.T) {
	s := newTestStrip(64)
	if err := Shuffle(s); err != nil {
		t.Fatal(err)
	}
	if err := Sort(s, nil, 0); err != nil {
		t.Fatal(err)
	}
	if !isSorted(s, LessHSI) {
		t.Error("expected nil comparator to sort by hue, saturation and intensity")
	}
}

// A constant-false comparator degrades the partition into single-element
// swaps; the sort must still terminate and keep every color.
func TestSortUnordered(t *testing.T) {
	s := newTestStrip(16)
	if err := Shuffle(s); err != nil {
		t.Fatal(err)
	}
	before := multiset(s)

	if err := Sort(s, Unordered, 0); err != nil {
		t.Fatal(err)
	}
	if !equalMultiset(before, multiset(s)) {
		t.Error("expected order-free sort to preserve the strip's colors")
	}
}

func TestSortShortStrips(t *testing.T) {
	for n := 0; n < 2; n++ {
		if err := Sort(newTestStrip(n), LessPacked, 0); err != nil {
			t.Fatal(err)
		}
	}
}

func TestLessHSI(t *testing.T) {
	tests := []struct {
		name string
		a, b uint32
		want bool
	}{
		{"hue before saturation", 0xFF0000, 0x00FF00, true},
		{"hue wraps magenta last", 0x0000FF, 0xFF00FF, true},
		{"equal colors", 0x123456, 0x123456, false},
		{"intensity breaks ties", 0x404040, 0x808080, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(it *testing.T) {
			a, b := pixel.FromPacked(test.a), pixel.FromPacked(test.b)
			if got := LessHSI(a, b); got != test.want {
				it.Errorf("expected LessHSI(%s, %s) to be %v, got %v", a, b, test.want, got)
			}
		})
	}
}
