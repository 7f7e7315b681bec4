package argb

// PanelIO is the wire to the panel hardware. The scan loop is generic over
// this interface, so the panel can equally be real MY9221 chips behind GPIO
// lines (pkg/my9221) or a host-side fake that decodes the bit-stream back
// into pixels (see the package tests).
//
// The implementation is expected to be cheap and non-blocking: each Scan
// makes several hundred SetData/ToggleClock calls inside a hard per-line
// time budget.
type PanelIO interface {
	// SetData drives the serial data line.
	SetData(level bool)

	// ToggleClock inverts the serial clock line. The pixel chips latch
	// the data line on every edge, so the data level must be stable
	// before each call.
	ToggleClock()

	// SetEnable drives the display enable line. false blanks the panel.
	SetEnable(on bool)

	// SelectRow drives the row decoder address lines.
	SelectRow(row int)

	// StartSample begins the next analog conversion. It is called right
	// after ReadSample so the result is ready by the next scan line.
	StartSample()

	// ReadSample returns the most recent analog conversion, scaled to
	// 8 bits.
	ReadSample() uint8

	// SetStatusLED drives the board status LED, blinked on each whole
	// second by the scan loop.
	SetStatusLED(on bool)
}
