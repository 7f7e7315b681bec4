package argb

const (
	// DigitColon is the digit code for the narrow colon separator.
	DigitColon = 10
	// DigitH and DigitM are the H and M separator glyphs.
	DigitH = 11
	DigitM = 12
	// DigitNone makes BlendDigits skip a slot entirely.
	DigitNone = 255
)

// digitFont holds the narrow clock numerals as vertical strips, three
// columns per glyph, bit 0 the top row:
//
//	0   1   2   3   4   5   6   7   8   9   :   H    M
//	***.*...***.***.*.*.***.***.***.***.***.....*.*.*.*
//	*.*.*.....*...*.*.*.*...*.....*.*.*.*.*..*..*.*.***
//	*.*.*...***.***.***.***.***...*.***.***.....***.***
//	*.*.*...*.....*...*...*.*.*...*.*.*...*..*..*.*.*.*
//	***.*...***.***...*.***.***...*.***.***.....*.*.*.*
var digitFont = [13][3]uint8{
	{0x1F, 0x11, 0x1F},
	{0x00, 0x00, 0x1F},
	{0x1D, 0x15, 0x17},
	{0x15, 0x15, 0x1F},
	{0x07, 0x04, 0x1F},
	{0x17, 0x15, 0x1D},
	{0x1F, 0x15, 0x1D},
	{0x01, 0x01, 0x1F},
	{0x1F, 0x15, 0x1F},
	{0x17, 0x15, 0x1F},
	{0x0A, 0x00, 0x00},
	{0x1F, 0x04, 0x1F},
	{0x1F, 0x06, 0x1F},
}

// DrawChar renders one ASCII glyph with its top-left corner at (x, y) and
// returns the glyph's visible width, the index of its rightmost set column,
// so callers can advance a cursor for proportional text. Codes outside
// 0x20..0x7E render as '-'. Columns and rows are clipped independently, so
// a glyph straddling the buffer edge draws only its visible part.
func (d *Display) DrawChar(ascii uint8, x, y int, c ARGB) int {
	if ascii < 0x20 || ascii > 0x7E {
		ascii = '-'
	}

	width := 0
	for i := 7; i >= 0; i-- {
		col := simpleFont[ascii-0x20][i]
		if col == 0 {
			continue
		}
		if width == 0 {
			width = i
		}

		px := x + i
		if px < 0 || px >= d.width {
			continue
		}
		for f := 0; f < 8; f++ {
			py := y + f
			if py < 0 || py >= d.height {
				continue
			}
			if col&(1<<f) != 0 {
				d.SetPixel(px, py, c)
			}
		}
	}
	return width
}

// DrawDigit renders a fixed-width clock numeral with its top-left corner at
// (x, y). digit is 0..9 or one of the Digit separator codes; anything else
// draws nothing.
func (d *Display) DrawDigit(digit uint8, x, y int, c ARGB) {
	if int(digit) >= len(digitFont) {
		return
	}
	for i := 0; i < 3; i++ {
		px := x + i
		if px < 0 || px >= d.width {
			continue
		}
		col := digitFont[digit][i]
		for f := 0; f < 8; f++ {
			py := y + f
			if py < 0 || py >= d.height {
				continue
			}
			if col&(1<<f) != 0 {
				d.SetPixel(px, py, c)
			}
		}
	}
}

// BlendDigits renders a rolling digit transition: digit1 on top, digit2
// below it, both shifted up by blend/32 rows so digit2 scrolls into view as
// blend runs 0..255. Identical digits force the blend to zero since there
// is nothing to roll. DigitNone skips a slot.
func (d *Display) BlendDigits(digit1, digit2, blend uint8, x, y int, c ARGB) {
	if digit1 == digit2 {
		blend = 0
	}

	shift := int(blend) / 32 // 0..7

	if digit1 != DigitNone {
		d.DrawDigit(digit1, x, y-shift, c)
	}
	if blend != 0 && digit2 != DigitNone {
		d.DrawDigit(digit2, x, y-shift+7, c)
	}
}
