// Package icons rasterizes SVG icons to images small enough for an LED
// matrix.
package icons

import (
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"
)

// oversample is how much larger than the target the SVG is rendered before
// scaling down. Rendering at panel resolution directly loses thin strokes.
const oversample = 8

// Load parses an SVG file and rasterizes it to a w by h image.
func Load(path string, w, h int) (image.Image, error) {
	icon, err := oksvg.ReadIcon(path, oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("failed to read icon %s: %v", path, err)
	}

	rw, rh := w*oversample, h*oversample
	icon.SetTarget(0, 0, float64(rw), float64(rh))

	rgba := image.NewRGBA(image.Rect(0, 0, rw, rh))
	scanner := rasterx.NewScannerGV(rw, rh, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(rw, rh, scanner), 1.0)

	return Scale(rgba, w, h), nil
}

// Scale resamples an image to w by h.
func Scale(img image.Image, w, h int) image.Image {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Over, nil)
	return dst
}
