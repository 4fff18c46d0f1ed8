// Package shade turns light intensities into displayable colours.
package shade

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/chewxy/math32"
)

// ErrInvalidColor is returned for out-of-range colour components.
var ErrInvalidColor = errors.New("invalid colour")

// Space is a colour space.
type Space int

// Colour spaces.
const (
	RGB Space = iota
	HLS
)

func (s Space) String() string {
	switch s {
	case RGB:
		return "rgb"
	case HLS:
		return "hls"
	}
	return fmt.Sprintf("Space(%d)", int(s))
}

// Color keeps its components in the space it was created in.
// RGB components are 0-255; HLS hue is degrees 0-360 and lightness and
// saturation are 0-1.
type Color struct {
	space Space
	v     [3]float32
}

// NewRGB validates and returns an RGB colour.
func NewRGB(r, g, b int) (Color, error) {
	for _, c := range [3]int{r, g, b} {
		if c < 0 || c > 255 {
			return Color{}, fmt.Errorf("%w: rgb component %d outside [0,255]", ErrInvalidColor, c)
		}
	}
	return Color{space: RGB, v: [3]float32{float32(r), float32(g), float32(b)}}, nil
}

// NewHLS validates and returns an HLS colour.
func NewHLS(hue int, lightness, saturation float32) (Color, error) {
	if hue < 0 || hue > 360 {
		return Color{}, fmt.Errorf("%w: hue %d outside [0,360]", ErrInvalidColor, hue)
	}
	for _, c := range [2]float32{lightness, saturation} {
		if !(c >= 0 && c <= 1) {
			return Color{}, fmt.Errorf("%w: lightness/saturation %v outside [0,1]", ErrInvalidColor, c)
		}
	}
	return Color{space: HLS, v: [3]float32{float32(hue), lightness, saturation}}, nil
}

// Space returns the space the colour was created in.
func (c Color) Space() Space {
	return c.space
}

// ToRGB returns 8-bit red, green and blue.
func (c Color) ToRGB() [3]uint8 {
	if c.space == RGB {
		return [3]uint8{uint8(c.v[0]), uint8(c.v[1]), uint8(c.v[2])}
	}

	r, g, b := hlsToRGB(c.v[0]/360, c.v[1], c.v[2])
	return [3]uint8{to8(r), to8(g), to8(b)}
}

// ToHLS returns hue in whole degrees, lightness and saturation.
func (c Color) ToHLS() (hue int, lightness, saturation float32) {
	if c.space == HLS {
		return int(c.v[0]), c.v[1], c.v[2]
	}

	h, l, s := rgbToHLS(c.v[0]/255, c.v[1]/255, c.v[2]/255)
	return int(round(h * 360)), l, s
}

// Hex returns the colour as #rrggbb.
func (c Color) Hex() string {
	rgb := c.ToRGB()
	return fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2])
}

// RGBA returns the colour as an opaque image/color value.
func (c Color) RGBA() color.RGBA {
	rgb := c.ToRGB()
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xff}
}

func hlsToRGB(h, l, s float32) (r, g, b float32) {
	if s == 0 {
		return l, l, l
	}
	var m2 float32
	if l <= 0.5 {
		m2 = l * (1 + s)
	} else {
		m2 = l + s - l*s
	}
	m1 := 2*l - m2
	return hueToChannel(m1, m2, h+1.0/3), hueToChannel(m1, m2, h), hueToChannel(m1, m2, h-1.0/3)
}

func hueToChannel(m1, m2, hue float32) float32 {
	hue -= math32.Floor(hue)
	switch {
	case hue < 1.0/6:
		return m1 + (m2-m1)*hue*6
	case hue < 0.5:
		return m2
	case hue < 2.0/3:
		return m1 + (m2-m1)*(2.0/3-hue)*6
	}
	return m1
}

func rgbToHLS(r, g, b float32) (h, l, s float32) {
	maxc := math32.Max(r, math32.Max(g, b))
	minc := math32.Min(r, math32.Min(g, b))
	l = (minc + maxc) / 2
	if minc == maxc {
		return 0, l, 0
	}

	span := maxc - minc
	if l <= 0.5 {
		s = span / (maxc + minc)
	} else {
		s = span / (2 - maxc - minc)
	}

	rc := (maxc - r) / span
	gc := (maxc - g) / span
	bc := (maxc - b) / span
	switch maxc {
	case r:
		h = bc - gc
	case g:
		h = 2 + rc - bc
	default:
		h = 4 + gc - rc
	}
	h /= 6
	h -= math32.Floor(h)
	return h, l, s
}

func to8(v float32) uint8 {
	return uint8(round(math32.Max(0, math32.Min(1, v)) * 255))
}

func round(v float32) float32 {
	return math32.Floor(v + 0.5)
}
