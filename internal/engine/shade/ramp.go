package shade

// grayRamp holds the ten grey levels. Step i covers intensities up to
// (i+1)/10; anything brighter than 0.9 is white.
var grayRamp = [10]uint8{0x19, 0x32, 0x4c, 0x66, 0x7f, 0x99, 0xb2, 0xcc, 0xe5, 0xff}

// Gray maps a light intensity onto the grey ramp.
func Gray(intensity float64) Color {
	level := grayRamp[len(grayRamp)-1]
	for i, g := range grayRamp[:len(grayRamp)-1] {
		if intensity <= float64(i+1)/10 {
			level = g
			break
		}
	}
	v := float32(level)
	return Color{space: RGB, v: [3]float32{v, v, v}}
}
