package strand

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/muesli/termenv"
)

// TermConfig describes the terminal strip configuration.
type TermConfig struct {
	// Num is the number of pixels on the strip.
	Num int

	// History appends a new line per frame instead of rewriting in place.
	History bool

	// Output is the destination writer.
	Output io.Writer

	// Delay is the pacing delay applied on every Show.
	Delay time.Duration
}

// DefaultTermConfig are the default configuration values.
var DefaultTermConfig = TermConfig{
	Num:   80,
	Delay: 5 * time.Millisecond,
}

// Term is a drop-in replacement for a hardware strip that prints a row of
// colored glyphs to a terminal on every Show.
type Term struct {
	*Buffer
	out     io.Writer
	profile termenv.Profile
	ending  string
	delay   time.Duration
}

// OpenTerm returns a terminal-backed strip. A nil config selects
// [DefaultTermConfig].
func OpenTerm(config *TermConfig) (*Term, error) {
	if config == nil {
		config = new(TermConfig)
		*config = DefaultTermConfig
	}

	if config.Num < 0 {
		return nil, ErrStripLen
	}
	if config.Num == 0 {
		config.Num = DefaultTermConfig.Num
	}
	if config.Output == nil {
		config.Output = os.Stdout
	}
	if config.Delay == 0 {
		config.Delay = DefaultTermConfig.Delay
	}

	ending := "\r"
	if config.History {
		ending = "\n"
	}

	return &Term{
		Buffer:  NewBuffer(config.Num),
		out:     config.Output,
		profile: termenv.TrueColor,
		ending:  ending,
		delay:   config.Delay,
	}, nil
}

func (t *Term) String() string {
	return "terminal strip"
}

// Show prints the strip as one glyph per pixel, colored with truecolor
// escape sequences.
func (t *Term) Show() error {
	time.Sleep(t.delay)

	var line strings.Builder
	for i := 0; i < t.Len(); i++ {
		glyph := t.profile.String("▪").Foreground(t.profile.Color(t.At(i).String()))
		line.WriteString(glyph.String())
	}
	line.WriteString(t.ending)

	_, err := io.WriteString(t.out, line.String())
	return err
}

// Close moves the cursor off the pixel row when rewriting in place.
func (t *Term) Close() error {
	if t.ending == "\r" {
		_, err := io.WriteString(t.out, "\n")
		return err
	}
	return nil
}

var _ Strip = (*Term)(nil)
