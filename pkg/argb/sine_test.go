package argb

import "testing"

func TestISin(t *testing.T) {
	tests := []struct {
		angle int
		want  int
	}{
		{0, 0},
		{30, 128},
		{90, 255},
		{150, 128},
		{180, 0},
		{270, -255},
		{360, 0},
		{450, 255},
		{-90, -255},
		{-360, 0},
	}
	for _, tt := range tests {
		if got := ISin(tt.angle); got != tt.want {
			t.Errorf("ISin(%d) = %d, want %d", tt.angle, got, tt.want)
		}
	}
}

func TestICos(t *testing.T) {
	tests := []struct {
		angle int
		want  int
	}{
		{0, 255},
		{90, 0},
		{180, -255},
		{270, 0},
		{60, 128},
	}
	for _, tt := range tests {
		if got := ICos(tt.angle); got != tt.want {
			t.Errorf("ICos(%d) = %d, want %d", tt.angle, got, tt.want)
		}
	}
}

func TestISinSymmetry(t *testing.T) {
	for a := 0; a <= 180; a++ {
		if ISin(a) != -ISin(a+180) {
			t.Errorf("ISin(%d) != -ISin(%d)", a, a+180)
		}
		if ISin(a) != ISin(180-a) {
			t.Errorf("ISin(%d) != ISin(%d)", a, 180-a)
		}
	}
}
