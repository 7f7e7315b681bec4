package argb

import "testing"

func TestDrawCharWidth(t *testing.T) {
	tests := []struct {
		name  string
		ascii uint8
		want  int
	}{
		{"full width glyph", 'A', 4},
		{"narrow glyph", 'I', 3},
		{"space", ' ', 0},
		{"control code renders as dash", 0x05, 4},
		{"high code renders as dash", 0x7F, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _ := newTestDisplay(t, 1, false)
			if got := d.DrawChar(tt.ascii, 0, 0, MakeARGB(0, 255, 255, 255)); got != tt.want {
				t.Errorf("DrawChar(%#02x) width = %d, want %d", tt.ascii, got, tt.want)
			}
		})
	}
}

func TestDrawCharDash(t *testing.T) {
	d, _ := newTestDisplay(t, 1, false)
	d.DrawChar('-', 0, 0, MakeARGB(0, 255, 255, 255))

	// The dash is a single row across columns 0..4.
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			r, _, _ := d.At(x, y)
			lit := y == 3 && x <= 4
			if lit && r != 255 {
				t.Errorf("dash missing (%d,%d)", x, y)
			}
			if !lit && r != 0 {
				t.Errorf("dash stray pixel (%d,%d)", x, y)
			}
		}
	}
}

func TestDrawCharClipped(t *testing.T) {
	d, _ := newTestDisplay(t, 1, false)

	// A glyph straddling the left edge draws only its visible columns and
	// still reports its full width.
	if got := d.DrawChar('A', -2, 0, MakeARGB(0, 255, 255, 255)); got != 4 {
		t.Errorf("clipped DrawChar width = %d, want 4", got)
	}
	if got := countLit(d); got == 0 {
		t.Error("clipped glyph drew nothing")
	}
	// Entirely off the buffer: nothing drawn, width unchanged.
	d.Clear()
	if got := d.DrawChar('A', -8, 0, MakeARGB(0, 255, 255, 255)); got != 4 {
		t.Errorf("off-buffer DrawChar width = %d, want 4", got)
	}
	if got := countLit(d); got != 0 {
		t.Errorf("off-buffer glyph lit %d pixels", got)
	}
}

func TestDrawDigitOne(t *testing.T) {
	d, _ := newTestDisplay(t, 1, false)
	d.DrawDigit(1, 2, 1, MakeARGB(0, 255, 255, 255))

	// The numeral 1 is a single strip in the glyph's third column.
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			r, _, _ := d.At(x, y)
			lit := x == 4 && y >= 1 && y <= 5
			if lit && r != 255 {
				t.Errorf("digit 1 missing (%d,%d)", x, y)
			}
			if !lit && r != 0 {
				t.Errorf("digit 1 stray pixel (%d,%d)", x, y)
			}
		}
	}
}

func TestDrawDigitInvalid(t *testing.T) {
	d, _ := newTestDisplay(t, 1, false)
	d.DrawDigit(13, 0, 0, MakeARGB(0, 255, 255, 255))
	d.DrawDigit(200, 0, 0, MakeARGB(0, 255, 255, 255))
	d.DrawDigit(DigitNone, 0, 0, MakeARGB(0, 255, 255, 255))
	if got := countLit(d); got != 0 {
		t.Errorf("invalid digit codes lit %d pixels", got)
	}
}

// sameBuffer compares the selected buffers of two equally sized displays.
func sameBuffer(t *testing.T, got, want *Display) {
	t.Helper()
	for y := 0; y < got.Height(); y++ {
		for x := 0; x < got.Width(); x++ {
			gr, gg, gb := got.At(x, y)
			wr, wg, wb := want.At(x, y)
			if gr != wr || gg != wg || gb != wb {
				t.Fatalf("(%d,%d) = (%d,%d,%d), want (%d,%d,%d)",
					x, y, gr, gg, gb, wr, wg, wb)
			}
		}
	}
}

func TestBlendDigitsRoll(t *testing.T) {
	c := MakeARGB(0, 255, 0, 0)

	// Halfway through the roll both digits are shifted up four rows, with
	// the incoming digit seven rows below the outgoing one.
	got, _ := newTestDisplay(t, 1, false)
	got.BlendDigits(3, 4, 128, 2, 1, c)

	want, _ := newTestDisplay(t, 1, false)
	want.DrawDigit(3, 2, 1-4, c)
	want.DrawDigit(4, 2, 1-4+7, c)
	sameBuffer(t, got, want)
}

func TestBlendDigitsStart(t *testing.T) {
	c := MakeARGB(0, 255, 0, 0)

	// At blend 0 only the outgoing digit shows, unshifted.
	got, _ := newTestDisplay(t, 1, false)
	got.BlendDigits(3, 4, 0, 2, 1, c)

	want, _ := newTestDisplay(t, 1, false)
	want.DrawDigit(3, 2, 1, c)
	sameBuffer(t, got, want)
}

func TestBlendDigitsEqual(t *testing.T) {
	c := MakeARGB(0, 255, 0, 0)

	// Equal digits suppress the roll at any blend.
	got, _ := newTestDisplay(t, 1, false)
	got.BlendDigits(5, 5, 200, 2, 1, c)

	want, _ := newTestDisplay(t, 1, false)
	want.DrawDigit(5, 2, 1, c)
	sameBuffer(t, got, want)
}

func TestBlendDigitsNone(t *testing.T) {
	c := MakeARGB(0, 255, 0, 0)

	got, _ := newTestDisplay(t, 1, false)
	got.BlendDigits(DigitNone, 4, 128, 2, 1, c)

	want, _ := newTestDisplay(t, 1, false)
	want.DrawDigit(4, 2, 1-4+7, c)
	sameBuffer(t, got, want)

	got.Clear()
	got.BlendDigits(3, DigitNone, 128, 2, 1, c)
	want.Clear()
	want.DrawDigit(3, 2, 1-4, c)
	sameBuffer(t, got, want)
}
