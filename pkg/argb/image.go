package argb

import (
	"image"
	"image/color"
)

// DrawImage blits an image into the selected buffer with its top-left
// corner at (x, y), clipping to the buffer. The image's conventional alpha
// (255 = opaque) is converted to this package's inverted convention, so
// translucent pixels blend over the existing contents and fully transparent
// ones are skipped.
func (d *Display) DrawImage(img image.Image, x, y int) {
	b := img.Bounds()
	for iy := 0; iy < b.Dy(); iy++ {
		for ix := 0; ix < b.Dx(); ix++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+ix, b.Min.Y+iy)).(color.NRGBA)
			if c.A == 0 {
				continue
			}
			d.plot(x+ix, y+iy, MakeARGB(255-c.A, c.R, c.G, c.B))
		}
	}
}
