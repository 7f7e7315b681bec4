package my9221

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenMissingChip(t *testing.T) {
	_, err := Open(Pins{Chip: "gpiochip-does-not-exist", StatusLED: -1})
	if err == nil {
		t.Fatal("Open on a nonexistent chip did not fail")
	}
}

func TestReadADC(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		bits    int
		want    uint8
		wantErr bool
	}{
		{name: "8-bit passthrough", raw: "200\n", want: 200},
		{name: "10-bit scaled", raw: "1023\n", bits: 10, want: 255},
		{name: "12-bit scaled", raw: "2048\n", bits: 12, want: 128},
		{name: "clamped high", raw: "9999\n", want: 255},
		{name: "clamped negative", raw: "-5\n", want: 0},
		{name: "whitespace", raw: "  42 \n", want: 42},
		{name: "garbage", raw: "not-a-number\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "in_voltage0_raw")
			if err := os.WriteFile(path, []byte(tt.raw), 0644); err != nil {
				t.Fatal(err)
			}

			got, err := readADC(path, tt.bits)
			if (err != nil) != tt.wantErr {
				t.Fatalf("readADC() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("readADC() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestReadADCMissingFile(t *testing.T) {
	if _, err := readADC(filepath.Join(t.TempDir(), "nope"), 0); err == nil {
		t.Error("readADC on a missing file did not fail")
	}
}
