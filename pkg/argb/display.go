// Package argb drives scan-multiplexed RGB LED matrix panels built from
// MY9221 serial shift-register pixel chips.
//
// The package owns a double-buffered framebuffer, renders 2-D primitives and
// bitmap text into it with alpha blending, and transmits the framebuffer to
// the panel one scan line per Scan call. Scan is normally driven from Run at
// a fixed rate and, besides refreshing the panel, maintains a time-of-day
// clock and captures one analog sample per scan line.
//
// Drawing calls and the scan loop deliberately share the transmit buffer
// without locking: a frame may be sent while partially drawn. Callers that
// need tear-free updates should draw into the off-screen buffer and copy it
// across on a frame boundary, see Frame.
package argb

import (
	"fmt"
	"sync"
	"sync/atomic"
)

const (
	// PanelCols and PanelRows are the pixel dimensions of one panel.
	// Panels chain horizontally, so the display height is always PanelRows.
	PanelCols = 8
	PanelRows = 8

	// MaxPanels is the largest supported chain. Beyond three panels a
	// scan line no longer fits the refresh budget of the pixel chips.
	MaxPanels = 3
)

// Config describes a display to New.
type Config struct {
	// Panels is the number of chained 8x8 panels, 1 to 3.
	Panels int

	// FrameRate is the full-display refresh rate in Hz. Only 100 and 125
	// divide evenly into the millisecond clock; other values are
	// rejected. 0 selects 125 (less flicker; 100 leaves more time per
	// scan line for drawing).
	FrameRate int

	// Mirror stores rows right-to-left, matching panels that shift
	// pixels out towards the left edge.
	Mirror bool

	// IO is the wire to the panel hardware.
	IO PanelIO
}

// Display owns the framebuffers, the scan-out state and the clock and
// sampling state for one chain of panels. All drawing operations target the
// buffer chosen with SelectMainBuffer/SelectAltBuffer; only the main buffer
// is ever transmitted.
type Display struct {
	width     int
	height    int
	panels    int
	frameRate int
	mirror    bool
	io        PanelIO

	main []uint8 // transmit buffer, 3 bytes per pixel
	alt  []uint8 // off-screen compositing buffer
	draw []uint8 // selected drawing target, main or alt

	// Scan-out state, owned exclusively by Scan.
	row       int
	cursor    int
	dataLevel bool

	frame atomic.Bool
	dark  atomic.Bool

	// The clock fields span more than one machine word, so they get a
	// mutex of their own rather than the original's interrupt masking.
	clockMu  sync.Mutex
	clockMS  int
	clockTOD uint32

	samples []uint8 // one analog sample per row, rewritten every frame
}

// New validates cfg and builds a Display. The panel is dark until Run (or
// Scan) starts pushing the transmit buffer out.
func New(cfg Config) (*Display, error) {
	if cfg.Panels < 1 || cfg.Panels > MaxPanels {
		return nil, fmt.Errorf("invalid panel count %d: must be 1 to %d", cfg.Panels, MaxPanels)
	}
	if cfg.FrameRate == 0 {
		cfg.FrameRate = 125
	}
	if cfg.FrameRate != 100 && cfg.FrameRate != 125 {
		return nil, fmt.Errorf("invalid frame rate %d: must be 100 or 125", cfg.FrameRate)
	}
	if cfg.IO == nil {
		return nil, fmt.Errorf("no panel IO configured")
	}

	d := &Display{
		width:     cfg.Panels * PanelCols,
		height:    PanelRows,
		panels:    cfg.Panels,
		frameRate: cfg.FrameRate,
		mirror:    cfg.Mirror,
		io:        cfg.IO,
	}
	d.main = make([]uint8, d.width*d.height*3)
	d.alt = make([]uint8, d.width*d.height*3)
	d.draw = d.main
	d.samples = make([]uint8, d.height)
	return d, nil
}

// Width returns the display width in pixels.
func (d *Display) Width() int { return d.width }

// Height returns the display height in pixels.
func (d *Display) Height() int { return d.height }

// SelectMainBuffer makes drawing operations target the transmit buffer.
// This is the state after New.
func (d *Display) SelectMainBuffer() { d.draw = d.main }

// SelectAltBuffer makes drawing operations target the off-screen buffer.
func (d *Display) SelectAltBuffer() { d.draw = d.alt }

// CopyAltToMain copies the off-screen buffer into the transmit buffer,
// unconditionally and without blending.
func (d *Display) CopyAltToMain() { copy(d.main, d.alt) }

// CopyMainToAlt copies the transmit buffer into the off-screen buffer.
func (d *Display) CopyMainToAlt() { copy(d.alt, d.main) }

// index returns the buffer offset of the red channel of pixel (x, y).
func (d *Display) index(x, y int) int {
	if d.mirror {
		x = d.width - 1 - x
	}
	return 3 * (y*d.width + x)
}

// SetPixel writes one pixel into the selected buffer, alpha blending it
// over the existing contents.
//
// No range checking: callers must keep x and y on the buffer. The shape
// operations in this package clip before delegating here.
func (d *Display) SetPixel(x, y int, c ARGB) {
	i := d.index(x, y)
	a := c.alpha()

	switch a {
	case 0xFF:
		// Fully transparent: skip the write entirely, not just the
		// blend. Invisible pixels must cost nothing.
	case 0:
		d.draw[i] = c.red()
		d.draw[i+1] = c.green()
		d.draw[i+2] = c.blue()
	default:
		a1 := uint16(255 - a)
		d.draw[i] = uint8((uint16(a)*uint16(d.draw[i]) + a1*uint16(c.red())) >> 8)
		d.draw[i+1] = uint8((uint16(a)*uint16(d.draw[i+1]) + a1*uint16(c.green())) >> 8)
		d.draw[i+2] = uint8((uint16(a)*uint16(d.draw[i+2]) + a1*uint16(c.blue())) >> 8)
	}
}

// At returns the channels of pixel (x, y) in the selected buffer, or black
// for out-of-range coordinates.
func (d *Display) At(x, y int) (r, g, b uint8) {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return 0, 0, 0
	}
	i := d.index(x, y)
	return d.draw[i], d.draw[i+1], d.draw[i+2]
}

// Clear blacks out the selected buffer.
func (d *Display) Clear() {
	for i := range d.draw {
		d.draw[i] = 0
	}
}

// Fill overwrites every pixel of the selected buffer with the color's
// channels. The alpha byte is ignored; Fill never blends.
func (d *Display) Fill(c ARGB) {
	r, g, b := c.red(), c.green(), c.blue()
	for i := 0; i < len(d.draw); i += 3 {
		d.draw[i] = r
		d.draw[i+1] = g
		d.draw[i+2] = b
	}
}

// Fade darkens the whole selected buffer, scaling every channel by
// alpha/256. Repeated fades decay towards black; even Fade(255) loses a
// little per call to the truncating divide, which is what makes text
// trails die out instead of sticking at one intensity.
func (d *Display) Fade(alpha uint8) {
	for i, v := range d.draw {
		d.draw[i] = uint8(uint16(alpha) * uint16(v) >> 8)
	}
}

// ScrollLeft shifts every row left by steps columns. Pixels shifted past
// column zero are discarded and the vacated right-hand columns become
// black. steps must be in [0, width); larger values are the caller's
// problem.
func (d *Display) ScrollLeft(steps int) {
	if steps == 0 {
		return
	}
	n := 3 * steps
	stride := 3 * d.width
	for y := 0; y < d.height; y++ {
		row := d.draw[y*stride : (y+1)*stride]
		if d.mirror {
			// Mirrored rows store the left edge at the high end.
			copy(row[n:], row[:stride-n])
			row = row[:n]
		} else {
			copy(row, row[n:])
			row = row[stride-n:]
		}
		for i := range row {
			row[i] = 0
		}
	}
}
