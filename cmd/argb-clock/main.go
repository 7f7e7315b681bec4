package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rmacri/argb-led-golang/internal/config"
	"github.com/rmacri/argb-led-golang/internal/marquee"
	"github.com/rmacri/argb-led-golang/pkg/argb"
	"github.com/rmacri/argb-led-golang/pkg/my9221"
)

// clock is the digit-roll clock state. Digits are drawn from the narrow
// clock font; when the displayed minute changes the new digits roll in
// from below over rollFrames frames.
type clock struct {
	disp    *argb.Display
	color   argb.ARGB
	lastTOD uint32
	from    [4]uint8
	to      [4]uint8
	blend   int
}

const rollFrames = 8

// hhmmDigits splits a time of day into the four displayed digits.
func hhmmDigits(tod uint32) [4]uint8 {
	h := tod / 3600
	m := tod / 60 % 60
	return [4]uint8{uint8(h / 10), uint8(h % 10), uint8(m / 10), uint8(m % 10)}
}

func (c *clock) render() {
	tod := c.disp.TimeOfDay()

	if tod != c.lastTOD {
		digits := hhmmDigits(tod)
		if digits != c.to {
			// Minute changed: start rolling to the new digits.
			c.from = c.to
			c.to = digits
			c.blend = 0
		}
		c.lastTOD = tod
	}
	if c.blend < 255 {
		c.blend += 256 / rollFrames
		if c.blend > 255 {
			c.blend = 255
		}
	}

	// HH at 0 and 4, colon at 7, MM at 9 and 13: 16 columns in all.
	xs := [4]int{0, 4, 9, 13}
	for i := range xs {
		c.disp.BlendDigits(c.from[i], c.to[i], uint8(c.blend), xs[i], 1, c.color)
	}

	// Colon blinks on even seconds.
	if tod%2 == 0 {
		c.disp.DrawDigit(argb.DigitColon, 7, 1, c.color)
	}
}

func main() {
	configPath := flag.String("config", "config.json", "path to config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Printf("Failed to load config from %s: %v", *configPath, err)
		log.Printf("Using default configuration")
		cfg = config.DefaultConfig()
	}

	bus, err := my9221.Open(my9221.Pins{
		Chip:      cfg.Pins.Chip,
		Data:      cfg.Pins.Data,
		Clock:     cfg.Pins.Clock,
		Enable:    cfg.Pins.Enable,
		Rows:      cfg.Pins.Rows,
		StatusLED: cfg.Pins.StatusLED,
		ADCPath:   cfg.Pins.ADCPath,
		ADCBits:   cfg.Pins.ADCBits,
	})
	if err != nil {
		log.Fatalf("Failed to open GPIO: %v", err)
	}
	defer bus.Close()

	disp, err := argb.New(argb.Config{
		Panels:    cfg.Display.Panels,
		FrameRate: cfg.Display.FrameRate,
		Mirror:    cfg.Display.Mirror,
		IO:        bus,
	})
	if err != nil {
		log.Fatalf("Failed to create display: %v", err)
	}

	// Seed the panel clock from system time.
	now := time.Now()
	disp.SetTimeOfDay(uint32(now.Hour()*3600 + now.Minute()*60 + now.Second()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		if err := disp.Run(ctx); err != nil && err != context.Canceled {
			log.Printf("Scan loop stopped: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	ck := &clock{disp: disp, color: argb.BaseColor(0)}
	ck.to = hhmmDigits(disp.TimeOfDay())
	ck.from = ck.to
	ck.blend = 255

	scroller := marquee.New(disp)

	log.Printf("Clock running on %d panel(s)", cfg.Display.Panels)
	for {
		select {
		case <-sigChan:
			log.Println("Shutting down...")
			return
		default:
		}

		// Pace on the frame flag; one frame is 8 or 10 ms.
		if !disp.Frame() {
			time.Sleep(time.Millisecond)
			continue
		}
		disp.ClearFrame()

		tod := disp.TimeOfDay()
		disp.SetDark(cfg.Clock.Dim(tod))

		// Hourly color change, stepping around the base color table.
		ck.color = argb.BaseColor(uint8(tod / 3600))

		// Compose off screen and copy across on the frame boundary so
		// the panel never shows a half-drawn clock.
		disp.SelectAltBuffer()
		disp.Clear()
		ck.render()
		if cfg.Clock.Text != "" && tod%60 == 30 && scroller.Done() {
			scroller.Set(cfg.Clock.Text)
			scroller.SetColor(argb.RandomColor())
		}
		scroller.Update()
		disp.CopyAltToMain()
		disp.SelectMainBuffer()
	}
}
