package effect

import (
	"math/rand/v2"
	"time"

	"github.com/BeatGlow/strand"
	"github.com/BeatGlow/strand/pixel"
)

// Less is the ordering predicate driving [Sort]. It does not have to be a
// strict total order, or even transitive: the sort only requires that the
// partitioning exchange keeps making progress, which holds for any
// predicate. A constant-false Less is valid and degrades the sort into a
// sequence of single-element swaps that still terminates.
type Less func(a, b pixel.Color) bool

// LessHSI orders colors lexicographically by hue, saturation and intensity.
// This is the default ordering used when Sort is given a nil Less.
func LessHSI(a, b pixel.Color) bool {
	ah, as, ai := a.HSI()
	bh, bs, bi := b.HSI()
	switch {
	case ah != bh:
		return ah < bh
	case as != bs:
		return as < bs
	default:
		return ai < bi
	}
}

// LessPacked orders colors ascending by packed 24-bit value.
func LessPacked(a, b pixel.Color) bool {
	return a.Packed() < b.Packed()
}

// MorePacked orders colors descending by packed 24-bit value.
func MorePacked(a, b pixel.Color) bool {
	return a.Packed() > b.Packed()
}

// Unordered reports no color as less than any other.
func Unordered(a, b pixel.Color) bool {
	return false
}

// Sort reorders the strip in place with a randomized-pivot quicksort,
// rendering after every exchange so the whole reordering is visible. A nil
// less sorts by [LessHSI].
func Sort(s strand.Strip, less Less, pace time.Duration) error {
	if less == nil {
		less = LessHSI
	}
	return quicksort(s, less, pace, 0, s.Len()-1)
}

// quicksort is a Hoare two-pointer partition over [lo, hi]. The pivot is the
// color at a uniformly random in-range position, read by value: exchanges
// below do not track it as an element.
func quicksort(s strand.Strip, less Less, pace time.Duration, lo, hi int) error {
	if lo >= hi {
		return nil
	}

	i, j := lo, hi
	pivot := s.At(lo + rand.IntN(hi-lo+1))

	for i <= j {
		for less(s.At(i), pivot) {
			i++
		}
		for less(pivot, s.At(j)) {
			j--
		}

		if i <= j {
			ci, cj := s.At(i), s.At(j)
			s.Set(i, cj)
			s.Set(j, ci)
			if err := s.Show(); err != nil {
				return err
			}
			sleep(pace)
			i, j = i+1, j-1
		}
	}

	if err := quicksort(s, less, pace, lo, j); err != nil {
		return err
	}
	return quicksort(s, less, pace, i, hi)
}
