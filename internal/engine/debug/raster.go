package debug

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/Faultbox/softrender/internal/engine/renderer"
	"github.com/Faultbox/softrender/internal/engine/shade"
	"github.com/Faultbox/softrender/pkg/math"
)

// Background is the clear colour for rasterized frames.
var Background = color.RGBA{A: 0xff}

// FrameRasterizer fills a draw list into an RGBA image with the painter's
// algorithm: later triangles overwrite earlier ones.
type FrameRasterizer struct {
	width, height int
	outline       *color.RGBA
	z             *vector.Rasterizer
}

// NewFrameRasterizer creates a rasterizer for width x height frames.
func NewFrameRasterizer(width, height int) *FrameRasterizer {
	return &FrameRasterizer{
		width:  width,
		height: height,
		z:      vector.NewRasterizer(width, height),
	}
}

// SetOutline draws a one-pixel border around every triangle. Nil disables it.
func (f *FrameRasterizer) SetOutline(c *color.RGBA) {
	f.outline = c
}

// Render rasterizes the list into a new image.
func (f *FrameRasterizer) Render(list []renderer.DrawTriangle) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	for _, tri := range list {
		f.fill(img, tri.P, image.NewUniform(shade.Gray(tri.Shade).RGBA()))
		if f.outline != nil {
			f.stroke(img, tri.P, image.NewUniform(*f.outline))
		}
	}
	return img
}

func (f *FrameRasterizer) fill(img *image.RGBA, p [3]math.Vec2, src image.Image) {
	f.z.Reset(f.width, f.height)
	f.z.MoveTo(float32(p[0].X), float32(p[0].Y))
	f.z.LineTo(float32(p[1].X), float32(p[1].Y))
	f.z.LineTo(float32(p[2].X), float32(p[2].Y))
	f.z.ClosePath()
	f.z.Draw(img, img.Bounds(), src, image.Point{})
}

// stroke draws each edge as a thin quad, since the vector package only fills.
func (f *FrameRasterizer) stroke(img *image.RGBA, p [3]math.Vec2, src image.Image) {
	const half = 0.5

	f.z.Reset(f.width, f.height)
	for i := range p {
		a, b := p[i], p[(i+1)%3]
		d := b.Sub(a)
		length := d.Length()
		if length == 0 {
			continue
		}
		nx, ny := -d.Y/length*half, d.X/length*half

		f.z.MoveTo(float32(a.X+nx), float32(a.Y+ny))
		f.z.LineTo(float32(b.X+nx), float32(b.Y+ny))
		f.z.LineTo(float32(b.X-nx), float32(b.Y-ny))
		f.z.LineTo(float32(a.X-nx), float32(a.Y-ny))
		f.z.ClosePath()
	}
	f.z.Draw(img, img.Bounds(), src, image.Point{})
}
