package strand

import "github.com/BeatGlow/strand/pixel"

// Buffer holds the in-memory pixel state and is embedded by the strip
// backends, which add their own Show.
type Buffer struct {
	pix []pixel.Color
}

// NewBuffer returns a zeroed (all black) pixel buffer of length n.
func NewBuffer(n int) *Buffer {
	if n < 0 {
		panic("strand: negative buffer length")
	}
	return &Buffer{
		pix: make([]pixel.Color, n),
	}
}

func (b *Buffer) Len() int {
	return len(b.pix)
}

func (b *Buffer) At(i int) pixel.Color {
	if i < 0 || i >= len(b.pix) {
		panic("strand: pixel index out of range")
	}
	return b.pix[i]
}

func (b *Buffer) Set(i int, c pixel.Color) {
	if i < 0 || i >= len(b.pix) {
		panic("strand: pixel index out of range")
	}
	b.pix[i] = c
}

func (b *Buffer) SetRange(i int, colors []pixel.Color) {
	if i < 0 || i+len(colors) > len(b.pix) {
		panic("strand: pixel range out of range")
	}
	copy(b.pix[i:], colors)
}
