// Command strand lets the LEDs blink.
//
// Or the terminal, see the -term and -history options.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"golang.org/x/term"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/strand"
	"github.com/BeatGlow/strand/effect"
	"github.com/BeatGlow/strand/show"
)

func main() {
	numFlag := flag.Int("num", 0, "Number of pixels on the strip")
	spiBusFlag := flag.Int("spi-bus", 0, "SPI bus")
	spiDevFlag := flag.Int("spi-dev", 0, "SPI device")
	brightnessFlag := flag.Uint("brightness", 31, "Global brightness level (1-31)")
	termFlag := flag.Bool("term", false, "Print to terminal instead of LEDs")
	historyFlag := flag.Bool("history", false, "Do not update terminal inline")
	flag.Parse()

	var strip strand.Strip
	if *termFlag {
		num := *numFlag
		if num == 0 {
			if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
				num = width
			}
		}
		t, err := strand.OpenTerm(&strand.TermConfig{
			Num:     num,
			History: *historyFlag,
		})
		if err != nil {
			fatal(err)
		}
		defer t.Close()
		strip = t
	} else {
		if _, err := host.Init(); err != nil {
			fatal(err)
		}
		d, err := strand.OpenAPA102(&strand.APA102Config{
			Num:        *numFlag,
			Bus:        *spiBusFlag,
			Device:     *spiDevFlag,
			Brightness: uint8(*brightnessFlag),
		})
		if err != nil {
			fatal(err)
		}
		defer d.Close()
		strip = d
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	for ctx.Err() == nil {
		if err := run(strip); err != nil {
			fatal(err)
		}
	}
}

// run plays one full round of shows; shows run to completion once started,
// so an interrupt only takes effect between rounds.
func run(strip strand.Strip) error {
	if err := effect.OneByOne(strip, 0); err != nil {
		return err
	}
	if err := show.Rainbow(strip); err != nil {
		return err
	}
	if err := effect.OneByOne(strip, 0); err != nil {
		return err
	}
	return show.Pride(strip)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal error:", err)
	os.Exit(1)
}
