package argb

import "testing"

func TestMakeARGB(t *testing.T) {
	if got := MakeARGB(0x12, 0x34, 0x56, 0x78); got != 0x12345678 {
		t.Errorf("MakeARGB packed %#08x, want 0x12345678", uint32(got))
	}
}

func TestWithAlpha(t *testing.T) {
	c := MakeARGB(0x00, 0x34, 0x56, 0x78)
	if got := c.WithAlpha(0xAB); got != 0xAB345678 {
		t.Errorf("WithAlpha = %#08x, want 0xAB345678", uint32(got))
	}
}

func TestBlendEnds(t *testing.T) {
	c1 := MakeARGB(0, 0x80, 0x40, 0x20)
	c2 := MakeARGB(0xFF, 0x10, 0x20, 0x30)

	// Ratio 0 selects c1, ratio 255 selects c2, both scaled by 255/256
	// from the fixed-point math.
	got := Blend(c1, c2, 0, 255)
	if got.red() != 255*0x80>>8 || got.green() != 255*0x40>>8 || got.blue() != 255*0x20>>8 {
		t.Errorf("Blend(ratio=0) = %#08x", uint32(got))
	}
	if got.alpha() != 0 {
		t.Errorf("Blend(ratio=0) alpha = %#02x, want 0", got.alpha())
	}

	got = Blend(c1, c2, 255, 255)
	if got.red() != 255*0x10>>8 || got.green() != 255*0x20>>8 || got.blue() != 255*0x30>>8 {
		t.Errorf("Blend(ratio=255) = %#08x", uint32(got))
	}
	if got.alpha() != 255*0xFF>>8 {
		t.Errorf("Blend(ratio=255) alpha = %#02x", got.alpha())
	}
}

func TestBlendFade(t *testing.T) {
	c := MakeARGB(0, 0x80, 0x80, 0x80)

	// Fade 0 blacks out the color channels but never the alpha.
	got := Blend(c, c, 128, 0)
	if got.red() != 0 || got.green() != 0 || got.blue() != 0 {
		t.Errorf("Blend(fade=0) color = %#08x, want black", uint32(got))
	}
	if got.alpha() != 0 {
		t.Errorf("Blend(fade=0) alpha = %#02x, want 0", got.alpha())
	}

	// Half fade roughly halves the channels.
	got = Blend(c, c, 0, 128)
	if got.red() < 0x3E || got.red() > 0x40 {
		t.Errorf("Blend(fade=128) red = %#02x, want about 0x3F", got.red())
	}
}

func TestBaseColorWrap(t *testing.T) {
	if BaseColor(12) != BaseColor(0) {
		t.Error("BaseColor(12) does not wrap to BaseColor(0)")
	}
	if BaseColor(25) != BaseColor(1) {
		t.Error("BaseColor(25) does not wrap to BaseColor(1)")
	}
}

func TestBaseColorsOpaque(t *testing.T) {
	for i := uint8(0); i < 12; i++ {
		if a := BaseColor(i).alpha(); a != 0 {
			t.Errorf("BaseColor(%d) alpha = %#02x, want opaque 0", i, a)
		}
	}
}

func TestRandomColorMembership(t *testing.T) {
	for i := 0; i < 100; i++ {
		c := RandomColor()
		found := false
		for _, b := range baseColors {
			if c == b {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("RandomColor() = %#08x, not in the base table", uint32(c))
		}
	}
}
