package argb

import (
	"context"
	"time"
)

const (
	// cmdMode is the 16-bit command word sent ahead of each pixel group.
	// 0x0010 selects the APDM waveform; the faster 12-bit modes latch
	// too slowly to finish inside one scan period.
	cmdMode uint16 = 0x0010

	// pixelsPerGroup is how many pixels one chip drives; each panel row
	// takes two command+group transfers.
	pixelsPerGroup = 4

	// The settle delays are calibrated against the pixel chip's minimum
	// latch timing. The datasheet asks for 220us before latching; the
	// housekeeping between the two delays makes up the rest. Shortening
	// these produces ghosting on adjacent rows.
	latchSettle  = 30 * time.Microsecond
	blankSettle  = 10 * time.Microsecond
	enableSettle = 30 * time.Microsecond

	// secondsPerDay is where the time-of-day counter wraps.
	secondsPerDay = 86400
)

// Run services the panel from a fixed-rate ticker until ctx is canceled.
// The ticker fires once per scan line, height*frameRate times a second.
//
// Run owns the scan state; never call Scan concurrently with it.
func (d *Display) Run(ctx context.Context) error {
	period := time.Second / time.Duration(d.frameRate*d.height)
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			d.Scan()
		}
	}
}

// Scan transmits the current scan line from the transmit buffer and
// advances to the next one. On wrapping past the bottom row it raises the
// frame flag, advances the clock and resets the transmit cursor. Exposed
// for callers that bring their own timer; everyone else should use Run.
//
// The transmit buffer is read without locking, so a frame drawn while Scan
// runs may go out torn. Draw into the off-screen buffer and copy on the
// frame flag to avoid that.
func (d *Display) Scan() {
	// Blanking early keeps the duty cycle down for night mode.
	if d.dark.Load() {
		d.io.SetEnable(false)
	}

	for p := 0; p < d.panels; p++ {
		for g := 0; g < PanelCols/pixelsPerGroup; g++ {
			d.send16(cmdMode)
			for px := 0; px < pixelsPerGroup; px++ {
				d.sendChannel(d.main[d.cursor])
				d.sendChannel(d.main[d.cursor+1])
				d.sendChannel(d.main[d.cursor+2])
				d.cursor += 3
			}
		}
	}

	// Blank the display and select the decoder row for the data just
	// clocked in. Split the settle time around the blanking to keep the
	// dark gap short.
	time.Sleep(latchSettle)
	d.io.SetEnable(false)
	time.Sleep(blankSettle)
	d.io.SelectRow(d.row)

	// Grab the sample started on the previous line and kick off the
	// next conversion so it is ready by the next period.
	d.samples[d.row] = d.io.ReadSample()
	d.io.StartSample()

	d.latch()

	d.row++
	if d.row >= d.height {
		d.row = 0
		d.cursor = 0
		d.frame.Store(true)
		d.tick()
	}

	time.Sleep(enableSettle)
	d.io.SetEnable(true)
}

// tick advances the clock by one frame period. Called once per frame, after
// the bottom row went out.
func (d *Display) tick() {
	d.clockMu.Lock()
	d.clockMS += 1000 / d.frameRate
	if d.clockMS >= 1000 {
		d.clockMS = 0
		d.clockTOD++
		if d.clockTOD >= secondsPerDay {
			d.clockTOD = 0
		}
		d.io.SetStatusLED(true)
	} else if d.clockMS >= 20 {
		d.io.SetStatusLED(false)
	}
	d.clockMu.Unlock()
}

// setData drives the data line and remembers its level for latch.
func (d *Display) setData(level bool) {
	d.dataLevel = level
	d.io.SetData(level)
}

// send16 clocks out a 16-bit word, most significant bit first.
func (d *Display) send16(v uint16) {
	for i := 0; i < 16; i++ {
		d.setData(v&0x8000 != 0)
		d.io.ToggleClock()
		v <<= 1
	}
}

// sendChannel clocks out one 8-bit channel value as a 16-bit transfer. The
// top byte is always zero, so it goes out as eight bare clock edges.
func (d *Display) sendChannel(v uint8) {
	d.setData(false)
	for i := 0; i < 8; i++ {
		d.io.ToggleClock()
	}
	for i := 0; i < 8; i++ {
		d.setData(v&0x80 != 0)
		d.io.ToggleClock()
		v <<= 1
	}
}

// latch toggles the data line eight times with the clock idle, committing
// the shifted data to the chip outputs.
func (d *Display) latch() {
	for i := 0; i < 8; i++ {
		d.setData(!d.dataLevel)
	}
}

// Frame reports whether a full display frame has been transmitted since the
// last ClearFrame. There is no way to block on this; poll it.
func (d *Display) Frame() bool { return d.frame.Load() }

// ClearFrame lowers the frame flag. Callers pace themselves by polling
// Frame and clearing it once handled.
func (d *Display) ClearFrame() { d.frame.Store(false) }

// TimeOfDay returns the clock as whole seconds since midnight, 0 to 86399.
func (d *Display) TimeOfDay() uint32 {
	d.clockMu.Lock()
	defer d.clockMu.Unlock()
	return d.clockTOD
}

// SetTimeOfDay sets the clock, zeroing the sub-second remainder.
func (d *Display) SetTimeOfDay(tod uint32) {
	d.clockMu.Lock()
	d.clockMS = 0
	d.clockTOD = tod % secondsPerDay
	d.clockMu.Unlock()
}

// Sample returns the analog reading captured on the given scan line during
// the current frame. Out-of-range rows read as zero.
func (d *Display) Sample(row int) uint8 {
	if row < 0 || row >= len(d.samples) {
		return 0
	}
	return d.samples[row]
}

// SetDark enables night mode: the display is blanked ahead of each
// transmission, cutting the duty cycle and with it the brightness.
func (d *Display) SetDark(dark bool) { d.dark.Store(dark) }

// Dark reports whether night mode is active.
func (d *Display) Dark() bool { return d.dark.Load() }
