// Package my9221 connects pkg/argb to real MY9221-based panels through the
// Linux GPIO character device.
package my9221

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/warthog618/go-gpiocdev"
)

// Pins names the GPIO lines wired to the panel, by offset on a gpiochip.
type Pins struct {
	// Chip is the GPIO character device, e.g. "gpiochip0".
	Chip string

	Data   int // MY9221 serial data
	Clock  int // MY9221 serial clock
	Enable int // display enable, active high
	Rows   [3]int // 3-to-8 row decoder address, least significant first

	// StatusLED is the board LED blinked on the second. Negative
	// disables it.
	StatusLED int

	// ADCPath is a sysfs IIO channel to sample once per scan line,
	// e.g. /sys/bus/iio/devices/iio:device0/in_voltage0_raw. Empty
	// disables sampling.
	ADCPath string

	// ADCBits is the converter resolution used to scale readings down
	// to 8 bits. 0 means the readings are already 8-bit.
	ADCBits int
}

// Bus is an argb.PanelIO backed by GPIO lines.
type Bus struct {
	pins Pins

	data   *gpiocdev.Line
	clock  *gpiocdev.Line
	enable *gpiocdev.Line
	rows   [3]*gpiocdev.Line
	led    *gpiocdev.Line

	clockLevel bool

	sampleMu sync.Mutex
	sample   uint8
	sampling bool
}

// Open requests all configured GPIO lines as outputs. On any failure the
// lines already requested are released again.
func Open(pins Pins) (*Bus, error) {
	if pins.Chip == "" {
		pins.Chip = "gpiochip0"
	}

	b := &Bus{pins: pins}

	request := func(offset int) (*gpiocdev.Line, error) {
		line, err := gpiocdev.RequestLine(pins.Chip, offset, gpiocdev.AsOutput(0))
		if err != nil {
			b.Close()
			return nil, fmt.Errorf("failed to request GPIO %d on %s: %v", offset, pins.Chip, err)
		}
		return line, nil
	}

	var err error
	if b.data, err = request(pins.Data); err != nil {
		return nil, err
	}
	if b.clock, err = request(pins.Clock); err != nil {
		return nil, err
	}
	if b.enable, err = request(pins.Enable); err != nil {
		return nil, err
	}
	for i, offset := range pins.Rows {
		if b.rows[i], err = request(offset); err != nil {
			return nil, err
		}
	}
	if pins.StatusLED >= 0 {
		if b.led, err = request(pins.StatusLED); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// Close releases all GPIO lines.
func (b *Bus) Close() error {
	lines := []*gpiocdev.Line{b.data, b.clock, b.enable, b.rows[0], b.rows[1], b.rows[2], b.led}
	for _, line := range lines {
		if line == nil {
			continue
		}
		if err := line.Close(); err != nil {
			log.Printf("Error closing GPIO line: %v", err)
		}
	}
	*b = Bus{pins: b.pins}
	return nil
}

// SetData drives the serial data line.
func (b *Bus) SetData(level bool) {
	b.data.SetValue(boolToInt(level))
}

// ToggleClock inverts the serial clock line.
func (b *Bus) ToggleClock() {
	b.clockLevel = !b.clockLevel
	b.clock.SetValue(boolToInt(b.clockLevel))
}

// SetEnable drives the display enable line.
func (b *Bus) SetEnable(on bool) {
	b.enable.SetValue(boolToInt(on))
}

// SelectRow drives the row decoder address lines.
func (b *Bus) SelectRow(row int) {
	for i, line := range b.rows {
		line.SetValue((row >> i) & 1)
	}
}

// StartSample kicks off the next analog conversion. The IIO sysfs read is
// too slow for the scan loop itself, so it runs in the background and the
// result is picked up by the next ReadSample.
func (b *Bus) StartSample() {
	if b.pins.ADCPath == "" {
		return
	}

	b.sampleMu.Lock()
	if b.sampling {
		b.sampleMu.Unlock()
		return
	}
	b.sampling = true
	b.sampleMu.Unlock()

	go func() {
		v, err := readADC(b.pins.ADCPath, b.pins.ADCBits)
		b.sampleMu.Lock()
		if err == nil {
			b.sample = v
		}
		b.sampling = false
		b.sampleMu.Unlock()
	}()
}

// ReadSample returns the most recent completed conversion.
func (b *Bus) ReadSample() uint8 {
	b.sampleMu.Lock()
	defer b.sampleMu.Unlock()
	return b.sample
}

// SetStatusLED drives the board LED, if one is configured.
func (b *Bus) SetStatusLED(on bool) {
	if b.led == nil {
		return
	}
	b.led.SetValue(boolToInt(on))
}

func readADC(path string, bits int) (uint8, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil {
		return 0, fmt.Errorf("bad ADC reading %q: %v", raw, err)
	}
	if bits > 8 {
		v >>= bits - 8
	}
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(v), nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
