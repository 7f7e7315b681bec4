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
	"github.com/rmacri/argb-led-golang/internal/icons"
	"github.com/rmacri/argb-led-golang/internal/marquee"
	"github.com/rmacri/argb-led-golang/pkg/argb"
	"github.com/rmacri/argb-led-golang/pkg/my9221"
)

// framesPerPattern is how long each test pattern stays up, in display
// frames (2 seconds at 125Hz).
const framesPerPattern = 250

func main() {
	configPath := flag.String("config", "config.json", "path to config file")
	iconPath := flag.String("icon", "", "SVG icon to display in the icon pattern")
	text := flag.String("text", "ARGB demo", "text for the scrolling pattern")
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		if err := disp.Run(ctx); err != nil && err != context.Canceled {
			log.Printf("Scan loop stopped: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	scroller := marquee.New(disp)
	w, h := disp.Width(), disp.Height()

	frame := 0
	for {
		select {
		case <-sigChan:
			log.Println("Shutting down...")
			return
		default:
		}

		if !disp.Frame() {
			time.Sleep(time.Millisecond)
			continue
		}
		disp.ClearFrame()

		pattern := frame / framesPerPattern % 6
		step := frame % framesPerPattern

		switch pattern {
		case 0:
			// Sweep through the base color table, blending between
			// neighbors.
			i := uint8(step / 32)
			disp.Fill(argb.BlendBaseColors(i, i+1, uint8(step%32*8), 255))
		case 1:
			// Concentric shapes.
			disp.Fill(argb.BaseColor(4))
			disp.DrawRect(0, 0, w-1, h-1, argb.BaseColor(0))
			disp.DrawCircle(w/2, h/2, 3, argb.BaseColor(8))
			disp.DrawLine(0, 0, w-1, h-1, argb.BaseColor(2).WithAlpha(0x80))
		case 2:
			// Sine wave scrolling in from the right.
			disp.ScrollLeft(1)
			y := (argb.ISin(step*16) + 256) * h / 512
			disp.VLine(w-1, 0, h, argb.MakeARGB(0, 0, 0, 0))
			disp.SetPixel(w-1, clampRow(y, h), argb.BaseColor(uint8(step/16)))
		case 3:
			// Sparkle: random colors over a continuous fade.
			disp.Fade(0xE0)
			if step%2 == 0 {
				disp.SetPixel(step*7%w, step*3%h, argb.RandomColor())
			}
		case 4:
			// SVG icon, when one was given.
			if *iconPath != "" {
				if step == 0 {
					img, err := icons.Load(*iconPath, w, h)
					if err != nil {
						log.Printf("Failed to load icon: %v", err)
					} else {
						disp.Clear()
						disp.DrawImage(img, 0, 0)
					}
				}
			} else {
				disp.FillCircle(w/2, h/2, 3, argb.RandomColor())
			}
		case 5:
			if step == 0 {
				scroller.Set(*text)
				scroller.SetColor(argb.RandomColor())
			}
			scroller.Update()
		}

		frame++
	}
}

func clampRow(y, h int) int {
	if y < 0 {
		return 0
	}
	if y >= h {
		return h - 1
	}
	return y
}
