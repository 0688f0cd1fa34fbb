// Package raster is a small software rasterizer writing ARGB8888 words:
// even-odd scanline polygon fill, Xiaolin Wu anti-aliased lines, integer
// source-over compositing and the hashed "frosted" blend used for glass
// layers.
package raster

import (
	"image"
	"image/color"
)

// Canvas is a view over a row-major ARGB8888 pixel buffer. Stride is in
// pixels, not bytes.
type Canvas struct {
	Pix    []uint32
	Width  int
	Height int
	Stride int
}

// NewCanvas allocates a zeroed canvas.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Pix:    make([]uint32, width*height),
		Width:  width,
		Height: height,
		Stride: width,
	}
}

// Wrap views an existing buffer as a canvas.
func Wrap(pix []uint32, width, height, stride int) *Canvas {
	return &Canvas{Pix: pix, Width: width, Height: height, Stride: stride}
}

func (c *Canvas) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.Width && y < c.Height
}

// At returns the pixel at (x, y), or transparent outside the canvas.
func (c *Canvas) At(x, y int) Color {
	if !c.inside(x, y) {
		return 0
	}
	return Color(c.Pix[y*c.Stride+x])
}

// Set overwrites a pixel.
func (c *Canvas) Set(x, y int, col Color) {
	if c.inside(x, y) {
		c.Pix[y*c.Stride+x] = uint32(col)
	}
}

// BlendAt composites col over the pixel at (x, y).
func (c *Canvas) BlendAt(x, y int, col Color) {
	if !c.inside(x, y) {
		return
	}
	i := y*c.Stride + x
	c.Pix[i] = uint32(Blend(Color(c.Pix[i]), col))
}

// Clear resets every pixel to transparent black.
func (c *Canvas) Clear() {
	clear(c.Pix)
}

// ScaleAlpha multiplies the alpha of every non-transparent pixel by
// target/255, leaving colour channels untouched.
func (c *Canvas) ScaleAlpha(target uint8) {
	if target == 255 {
		return
	}
	t := uint32(target)
	for y := 0; y < c.Height; y++ {
		row := c.Pix[y*c.Stride : y*c.Stride+c.Width]
		for i, px := range row {
			a := px >> 24
			if a == 0 {
				continue
			}
			row[i] = (a*t/255)<<24 | px&0x00ffffff
		}
	}
}

// Image copies the canvas into a non-premultiplied image.
func (c *Canvas) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			px := c.At(x, y)
			img.SetNRGBA(x, y, color.NRGBA{R: px.R(), G: px.G(), B: px.B(), A: px.A()})
		}
	}
	return img
}
