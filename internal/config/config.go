package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config represents the application configuration.
type Config struct {
	Display DisplayConfig `json:"display"`
	Pins    PinConfig     `json:"pins"`
	Clock   ClockConfig   `json:"clock"`
}

// DisplayConfig describes the panel chain.
type DisplayConfig struct {
	Panels    int  `json:"panels"`
	FrameRate int  `json:"frame_rate"`
	Mirror    bool `json:"mirror"`
}

// PinConfig names the GPIO wiring, by line offset on the chip.
type PinConfig struct {
	Chip      string `json:"chip"`
	Data      int    `json:"data"`
	Clock     int    `json:"clock"`
	Enable    int    `json:"enable"`
	Rows      [3]int `json:"rows"`
	StatusLED int    `json:"status_led"`
	ADCPath   string `json:"adc_path"`
	ADCBits   int    `json:"adc_bits"`
}

// ClockConfig holds the clock application settings. DimStart and DimEnd are
// seconds since midnight bounding the night-dimming window.
type ClockConfig struct {
	DimStart int    `json:"dim_start"`
	DimEnd   int    `json:"dim_end"`
	Text     string `json:"text"`
}

// LoadConfig loads the configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	config := DefaultConfig()
	if err := json.NewDecoder(file).Decode(config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %v", path, err)
	}

	return config, nil
}

// DefaultConfig returns the default configuration: two chained panels on
// the stock MakerDuino-style wiring.
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			Panels:    2,
			FrameRate: 125,
			Mirror:    true,
		},
		Pins: PinConfig{
			Chip:      "gpiochip0",
			Data:      9,
			Clock:     8,
			Enable:    7,
			Rows:      [3]int{4, 5, 6},
			StatusLED: 13,
		},
		Clock: ClockConfig{
			DimStart: 22 * 3600,
			DimEnd:   7 * 3600,
		},
	}
}

// Dim reports whether tod (seconds since midnight) falls inside the
// night-dimming window. A window that crosses midnight works too.
func (c *ClockConfig) Dim(tod uint32) bool {
	if c.DimStart == c.DimEnd {
		return false
	}
	t := int(tod)
	if c.DimStart < c.DimEnd {
		return t >= c.DimStart && t < c.DimEnd
	}
	return t >= c.DimStart || t < c.DimEnd
}
