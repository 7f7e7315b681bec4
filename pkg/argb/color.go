package argb

import "math/rand"

// ARGB is a packed color. The byte layout is {B, G, R, A} from the low byte
// up, so the value reads 0xAARRGGBB.
//
// Alpha is inverted: 0x00 is fully opaque and 0xFF is fully transparent.
// Drawing with alpha 0xFF is a no-op, which makes "invisible" colors cheap.
type ARGB uint32

// MakeARGB packs alpha and the three color channels into an ARGB value.
func MakeARGB(a, r, g, b uint8) ARGB {
	return ARGB(a)<<24 | ARGB(r)<<16 | ARGB(g)<<8 | ARGB(b)
}

// WithAlpha returns the color with its alpha byte replaced.
func (c ARGB) WithAlpha(a uint8) ARGB {
	return c&0x00FFFFFF | ARGB(a)<<24
}

func (c ARGB) alpha() uint8 { return uint8(c >> 24) }
func (c ARGB) red() uint8   { return uint8(c >> 16) }
func (c ARGB) green() uint8 { return uint8(c >> 8) }
func (c ARGB) blue() uint8  { return uint8(c) }

// Blend mixes two colors. ratio selects between them (0 = all c1, 255 = all
// c2) and fade darkens the result (255 = no fade, 0 = black). The alpha
// channel is blended by ratio alone; fade never fades the alpha.
func Blend(c1, c2 ARGB, ratio, fade uint8) ARGB {
	r1 := uint16(ratio)
	r2 := uint16(255 - ratio)

	if fade != 255 {
		r1 = uint16(fade) * r1 >> 8
		r2 = uint16(fade) * r2 >> 8
	}

	b := uint8((r2*uint16(c1.blue()) + r1*uint16(c2.blue())) >> 8)
	g := uint8((r2*uint16(c1.green()) + r1*uint16(c2.green())) >> 8)
	r := uint8((r2*uint16(c1.red()) + r1*uint16(c2.red())) >> 8)
	a := uint8((uint16(255-ratio)*uint16(c1.alpha()) + uint16(ratio)*uint16(c2.alpha())) >> 8)

	return MakeARGB(a, r, g, b)
}

// baseColors holds the color primaries, pure R, G and B at indexes 0, 4 and
// 8 with blends between them. Green is toned down due to its higher
// perceived intensity on the panel.
var baseColors = [12]ARGB{
	0x00FF0000, 0x00FF2000, 0x00FF8000, 0x00808000,
	0x00008000, 0x00008080, 0x000080FF, 0x000020FF,
	0x000000FF, 0x008000FF, 0x00FF00FF, 0x00FF0080,
}

// BaseColor returns one of the 12 base colors. The index wraps.
func BaseColor(i uint8) ARGB {
	return baseColors[int(i)%len(baseColors)]
}

// BlendBaseColors smoothly blends two base colors by index. blend selects
// between them (0 = first, 255 = second), fade darkens the result.
func BlendBaseColors(i1, i2, blend, fade uint8) ARGB {
	return Blend(BaseColor(i1), BaseColor(i2), blend, fade)
}

// RandomColor returns a random entry from the base color table.
func RandomColor() ARGB {
	return baseColors[rand.Intn(len(baseColors))]
}
