package marquee

import (
	"testing"

	"github.com/rmacri/argb-led-golang/pkg/argb"
)

// nopIO satisfies argb.PanelIO without touching hardware. The scroller only
// draws, so nothing here is ever called.
type nopIO struct{}

func (nopIO) SetData(bool)      {}
func (nopIO) ToggleClock()      {}
func (nopIO) SetEnable(bool)    {}
func (nopIO) SelectRow(int)     {}
func (nopIO) StartSample()      {}
func (nopIO) ReadSample() uint8 { return 0 }
func (nopIO) SetStatusLED(bool) {}

func newTestDisplay(t *testing.T) *argb.Display {
	t.Helper()
	d, err := argb.New(argb.Config{Panels: 2, IO: nopIO{}})
	if err != nil {
		t.Fatalf("argb.New() error = %v", err)
	}
	return d
}

func anyLit(d *argb.Display) bool {
	for y := 0; y < d.Height(); y++ {
		for x := 0; x < d.Width(); x++ {
			r, g, b := d.At(x, y)
			if r != 0 || g != 0 || b != 0 {
				return true
			}
		}
	}
	return false
}

func TestScrollerLifecycle(t *testing.T) {
	d := newTestDisplay(t)
	s := New(d)

	s.Set("HI")
	s.SetSpeed(1)
	s.SetColor(argb.MakeARGB(0, 255, 255, 255))

	if s.Done() {
		t.Fatal("scroller done immediately after Set")
	}

	lit := false
	steps := 0
	for ; steps < 2000 && !s.Done(); steps++ {
		s.Update()
		if anyLit(d) {
			lit = true
		}
	}

	if !lit {
		t.Error("text never became visible")
	}
	if !s.Done() {
		t.Errorf("scroller not done after %d updates", steps)
	}
	// Updates after Done are no-ops.
	before := snapshot(d)
	s.Update()
	if snapshot(d) != before {
		t.Error("Update after Done modified the buffer")
	}
}

func snapshot(d *argb.Display) [16 * 8 * 3]uint8 {
	var s [16 * 8 * 3]uint8
	i := 0
	for y := 0; y < d.Height(); y++ {
		for x := 0; x < d.Width(); x++ {
			r, g, b := d.At(x, y)
			s[i], s[i+1], s[i+2] = r, g, b
			i += 3
		}
	}
	return s
}

func TestScrollerSpeed(t *testing.T) {
	d := newTestDisplay(t)

	// A scroller stepping every frame finishes sooner than one stepping
	// every five.
	fast, slow := New(d), New(d)
	fast.Set("X")
	fast.SetSpeed(1)
	slow.Set("X")
	slow.SetSpeed(5)

	fastSteps, slowSteps := 0, 0
	for ; fastSteps < 5000 && !fast.Done(); fastSteps++ {
		fast.Update()
	}
	d.Clear()
	for ; slowSteps < 5000 && !slow.Done(); slowSteps++ {
		slow.Update()
	}

	if !fast.Done() || !slow.Done() {
		t.Fatal("scrollers did not finish")
	}
	if fastSteps >= slowSteps {
		t.Errorf("fast scroller took %d steps, slow took %d", fastSteps, slowSteps)
	}
}

func TestScrollerColor(t *testing.T) {
	d := newTestDisplay(t)
	s := New(d)
	c := argb.BaseColor(3)
	s.SetColor(c)
	if s.Color() != c {
		t.Errorf("Color() = %#08x, want %#08x", uint32(s.Color()), uint32(c))
	}
}
