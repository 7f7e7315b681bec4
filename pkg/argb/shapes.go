package argb

// The line, circle and ellipse stepping below follows the integer-only
// incremental algorithms from Alois Zingl's "The Beauty of Bresenham's
// Algorithm". Everything clips to the buffer before touching SetPixel, so
// the shapes inherit its blending semantics and partially off-screen shapes
// are safe.

// plot is a bounds-checked SetPixel for the rasterizers.
func (d *Display) plot(x, y int, c ARGB) {
	if x >= 0 && x < d.width && y >= 0 && y < d.height {
		d.SetPixel(x, y, c)
	}
}

// HLine draws a horizontal line of w pixels starting at (x, y), growing
// right. Any part outside the buffer is clipped away.
func (d *Display) HLine(x, y, w int, c ARGB) {
	if y < 0 || y >= d.height {
		return
	}
	for x < 0 && w > 0 {
		x++
		w--
	}
	for ; w > 0 && x < d.width; w-- {
		d.SetPixel(x, y, c)
		x++
	}
}

// VLine draws a vertical line of h pixels starting at (x, y), growing down.
func (d *Display) VLine(x, y, h int, c ARGB) {
	if x < 0 || x >= d.width {
		return
	}
	for y < 0 && h > 0 {
		y++
		h--
	}
	for ; h > 0 && y < d.height; h-- {
		d.SetPixel(x, y, c)
		y++
	}
}

// DrawRect draws the one-pixel outline of the rectangle with corners
// (x1, y1) and (x2, y2), both inclusive.
func (d *Display) DrawRect(x1, y1, x2, y2 int, c ARGB) {
	d.HLine(x1, y1, x2-x1+1, c)
	d.HLine(x1, y2, x2-x1+1, c)
	if y1 < y2 {
		d.VLine(x1, y1+1, y2-y1-1, c)
		d.VLine(x2, y1+1, y2-y1-1, c)
	}
}

// FillRect fills a w by h rectangle with top-left corner at (x, y).
func (d *Display) FillRect(x, y, w, h int, c ARGB) {
	for x < 0 && w > 0 {
		x++
		w--
	}
	for y < 0 && h > 0 {
		y++
		h--
	}
	for ; h > 0 && y < d.height; h-- {
		tx := x
		for tw := w; tw > 0 && tx < d.width; tw-- {
			d.SetPixel(tx, y, c)
			tx++
		}
		y++
	}
}

// DrawCircle draws a circle outline of radius r centered on (cx, cy).
func (d *Display) DrawCircle(cx, cy, r int, c ARGB) {
	x, y := -r, 0
	err := 2 - 2*r
	for {
		d.plot(cx-x, cy+y, c)
		d.plot(cx+x, cy+y, c)
		d.plot(cx+x, cy-y, c)
		d.plot(cx-x, cy-y, c)
		e2 := err
		if e2 <= y {
			y++
			err += y*2 + 1
			if -x == y && e2 <= x {
				e2 = 0
			}
		}
		if e2 > x {
			x++
			err += x*2 + 1
		}
		if x > 0 {
			return
		}
	}
}

// FillCircle fills a circle of radius r centered on (cx, cy), sweeping
// vertical spans per step rather than individual pixels.
func (d *Display) FillCircle(cx, cy, r int, c ARGB) {
	x, y := -r, 0
	err := 2 - 2*r
	for {
		d.VLine(cx-x, cy-y, 2*y, c)
		d.VLine(cx+x, cy-y, 2*y, c)
		e2 := err
		if e2 <= y {
			y++
			err += y*2 + 1
			if -x == y && e2 <= x {
				e2 = 0
			}
		}
		if e2 > x {
			x++
			err += x*2 + 1
		}
		if x > 0 {
			return
		}
	}
}

// DrawLine draws a line segment from (x0, y0) to (x1, y1). Coincident
// endpoints draw a single pixel.
func (d *Display) DrawLine(x0, y0, x1, y1 int, c ARGB) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 >= x1 {
		sx = -1
	}
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy

	for {
		d.plot(x0, y0, c)
		e2 := 2 * err
		if e2 >= dy {
			if x0 == x1 {
				return
			}
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			if y0 == y1 {
				return
			}
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
