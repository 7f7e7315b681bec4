package argb

// sinTable holds sin(0°)..sin(90°) scaled to 0..255. The other quadrants
// fold onto it, so 91 bytes cover the full circle.
var sinTable = [91]uint8{
	0, 4, 9, 13, 18, 22, 27, 31, 35, 40, 44, 49, 53, 57, 62,
	66, 70, 75, 79, 83, 87, 91, 96, 100, 104, 108, 112, 116, 120, 124,
	128, 131, 135, 139, 143, 146, 150, 153, 157, 160, 164, 167, 171, 174, 177,
	180, 183, 186, 190, 192, 195, 198, 201, 204, 206, 209, 211, 214, 216, 219,
	221, 223, 225, 227, 229, 231, 233, 235, 236, 238, 240, 241, 243, 244, 245,
	246, 247, 248, 249, 250, 251, 252, 253, 253, 254, 254, 254, 255, 255, 255, 255,
}

// ISin returns sin(angle°) scaled to -255..255, using the lookup table
// only. angle may be any integer number of degrees.
func ISin(angle int) int {
	for angle < 0 {
		angle += 360
	}
	angle %= 360

	sign := 1
	if angle >= 180 {
		angle -= 180
		sign = -1
	}
	if angle > 90 {
		angle = 180 - angle
	}
	return sign * int(sinTable[angle])
}

// ICos returns cos(angle°) scaled to -255..255.
func ICos(angle int) int {
	return ISin(angle + 90)
}
