package strand

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"

	"github.com/BeatGlow/strand/pixel"
)

const (
	apa102DefaultNum    = 300
	apa102MaxBrightness = 31
)

// APA102Config describes the SPI bus configuration for an APA102 (DotStar)
// compatible strip.
type APA102Config struct {
	// Num is the number of pixels on the strip.
	Num int

	// Bus is the SPI bus number.
	Bus int

	// Device is the SPI device (chip enable) number.
	Device int

	// Speed is the SPI clock frequency.
	Speed physic.Frequency

	// Brightness is the global 5-bit brightness level, 1-31.
	Brightness uint8
}

// DefaultAPA102Config are the default configuration values.
var DefaultAPA102Config = APA102Config{
	Num:        apa102DefaultNum,
	Speed:      8 * physic.MegaHertz,
	Brightness: apa102MaxBrightness,
}

// APA102 is a hardware strip of APA102 compatible pixels on an SPI bus.
type APA102 struct {
	*Buffer
	port       spi.PortCloser
	conn       spi.Conn
	frame      []byte
	brightness uint8
}

// OpenAPA102 opens the configured SPI port and returns a hardware-backed
// strip. A nil config selects [DefaultAPA102Config].
func OpenAPA102(config *APA102Config) (*APA102, error) {
	if config == nil {
		config = new(APA102Config)
		*config = DefaultAPA102Config
	}

	if config.Num < 0 {
		return nil, ErrStripLen
	}
	if config.Num == 0 {
		config.Num = DefaultAPA102Config.Num
	}
	if config.Speed == 0 {
		config.Speed = DefaultAPA102Config.Speed
	}
	if config.Brightness == 0 || config.Brightness > apa102MaxBrightness {
		config.Brightness = apa102MaxBrightness
	}

	port, err := spireg.Open(fmt.Sprintf("SPI%d.%d", config.Bus, config.Device))
	if err != nil {
		return nil, fmt.Errorf("strand: opening SPI port: %w", err)
	}

	conn, err := port.Connect(config.Speed, spi.Mode0, 8)
	if err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("strand: connecting SPI port: %w", err)
	}

	return &APA102{
		Buffer:     NewBuffer(config.Num),
		port:       port,
		conn:       conn,
		frame:      make([]byte, 0, apa102FrameLen(config.Num)),
		brightness: config.Brightness,
	}, nil
}

func (d *APA102) String() string {
	return fmt.Sprintf("APA102 strip with %d pixels on %s", d.Len(), d.conn)
}

// Show encodes the buffer as an APA102 frame and clocks it out.
func (d *APA102) Show() error {
	d.frame = appendAPA102Frame(d.frame[:0], d.Buffer.pix, d.brightness)
	return d.conn.Tx(d.frame, nil)
}

// Close releases the SPI port without touching the pixel state.
func (d *APA102) Close() error {
	return d.port.Close()
}

func apa102FrameLen(n int) int {
	// 4-byte start frame, 4 bytes per pixel, and at least n/2 trailing
	// clock pulses to latch the last pixels.
	return 4 + 4*n + (n+15)/16
}

// appendAPA102Frame encodes pixels in the APA102 wire format: a zero start
// frame, one (brightness, blue, green, red) word per pixel, and an all-ones
// end frame long enough to latch the full strip.
func appendAPA102Frame(frame []byte, pix []pixel.Color, brightness uint8) []byte {
	frame = append(frame, 0x00, 0x00, 0x00, 0x00)
	for _, c := range pix {
		frame = append(frame, 0xE0|brightness, c.B, c.G, c.R)
	}
	for i := 0; i < (len(pix)+15)/16; i++ {
		frame = append(frame, 0xFF)
	}
	return frame
}

var _ Strip = (*APA102)(nil)
