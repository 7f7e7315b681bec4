// Package marquee scrolls proportional text across an LED matrix. It is a
// pure consumer of the pkg/argb drawing API.
package marquee

import "github.com/rmacri/argb-led-golang/pkg/argb"

// charTestWidth is the margin past the left edge at which a character is
// definitely invisible, plus a few pixels of "unfade" time.
const charTestWidth = 8

// scrollDone is the xScroll sentinel meaning the text has left the display.
const scrollDone = 1 << 15

// Scroller scrolls one line of text from the right edge off the left edge,
// fading whatever is underneath so the text stays readable. Call Update
// once per display frame.
type Scroller struct {
	disp  *argb.Display
	text  string
	color argb.ARGB

	stepTicks int // frames per one-pixel step
	stepCount int
	xScroll   int
}

// New returns a Scroller drawing to d.
func New(d *argb.Display) *Scroller {
	s := &Scroller{disp: d}
	s.Reset()
	return s
}

// Reset clears the text and restarts the scroll position.
func (s *Scroller) Reset() {
	s.text = ""
	s.color = argb.MakeARGB(0, 255, 255, 255)
	s.stepTicks = 5
	s.stepCount = s.stepTicks
	s.xScroll = -4 // start just right of the last pixel
}

// Set restarts the scroller with new text.
func (s *Scroller) Set(text string) {
	s.Reset()
	s.text = text
}

// SetSpeed sets how many frames each one-pixel scroll step takes.
func (s *Scroller) SetSpeed(ticks int) {
	s.stepTicks = ticks
	s.stepCount = ticks
}

// SetColor sets the text color.
func (s *Scroller) SetColor(c argb.ARGB) { s.color = c }

// Color returns the text color.
func (s *Scroller) Color() argb.ARGB { return s.color }

// Done reports whether the text has scrolled completely off screen.
func (s *Scroller) Done() bool { return s.xScroll >= scrollDone }

func (s *Scroller) tick() {
	s.stepCount--
	if s.stepCount == 0 {
		s.stepCount = s.stepTicks
		s.xScroll++
	}
}

// Update advances the scroll by one frame and redraws the visible
// characters. The background under the text is faded rather than cleared,
// and the fade ramps in as the text enters from the right.
func (s *Scroller) Update() {
	if s.Done() {
		return
	}
	s.tick()

	const textFade = 0x80 // background darkening under text

	width := s.disp.Width()
	textPX := width - s.xScroll

	if textPX >= width && textPX <= width+4 {
		// Text is still approaching the right margin; ramp the fade
		// in so it does not pop.
		s.disp.Fade(uint8(textFade + 0x10*(textPX-width)))
		return
	}

	didFade := false
	for i := 0; textPX < width && i < len(s.text); i++ {
		if !didFade && textPX > -charTestWidth {
			didFade = true
			s.disp.Fade(textFade)
		}
		textPX += 1 + s.disp.DrawChar(s.text[i], textPX, 0, s.color)
	}

	// Nothing visible anymore: park until the next Set.
	if textPX < -charTestWidth {
		s.xScroll = scrollDone
	}
}
