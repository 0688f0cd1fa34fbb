package raster

import (
	"math"

	"github.com/constellation-cursor/constellation-cursor/pkg/geometry"
)

// cellHash is a position hash; it never varies with time so frosted areas
// keep a stable grain between frames.
func cellHash(x, y int) uint32 {
	ux, uy := uint32(x), uint32(y)
	return (ux*374761393 + uy*668265263) ^ ((ux + uy) * 1274126177)
}

func hashNoise(h uint32) float64 {
	return float64(h%1000)/500 - 1
}

// FrostedFill fills a polygon with a grainy translucent tint. The canvas is
// divided into cells whose size shrinks as intensity grows; each cell gets a
// hashed perturbation of alpha and colour. Pixels that already carry
// coverage are mixed half and half with the tint instead of composited, so
// a frosted layer over existing content reads as glass.
func (c *Canvas) FrostedFill(points []geometry.Point, off geometry.Point, tint Color, intensity float64) {
	baseA := float64(tint.A())
	tr, tg, tb := float64(tint.R()), float64(tint.G()), float64(tint.B())

	cell := math.Max(2.5-intensity*0.15, 1.2)
	alphaVar := math.Min(intensity*25, 100)
	colorVar := math.Min(intensity*10, 50)

	c.scanPolygon(points, off, func(x, y int) {
		h := cellHash(int(float64(x)/cell), int(float64(y)/cell))
		noise := hashNoise(h)*0.7 + hashNoise(h*16807)*0.3

		a := clampByte(baseA+noise*alphaVar, 15, 240)
		shift := noise * colorVar
		r := clampByte(tr+shift, 0, 255)
		g := clampByte(tg+shift, 0, 255)
		b := clampByte(tb+shift*0.5, 0, 255)

		i := y*c.Stride + x
		existing := Color(c.Pix[i])
		if existing.A() == 0 {
			c.Pix[i] = uint32(ARGB(a, r, g, b))
			return
		}
		c.Pix[i] = uint32(ARGB(
			uint8((uint32(existing.A())+uint32(a))/2),
			uint8(float64(existing.R())*0.5+float64(r)*0.5),
			uint8(float64(existing.G())*0.5+float64(g)*0.5),
			uint8(float64(existing.B())*0.5+float64(b)*0.5),
		))
	})
}

// FrostedStroke outlines a polygon with per-pixel noise in alpha and
// colour. With zero intensity it degrades to StrokePolygon.
func (c *Canvas) FrostedStroke(points []geometry.Point, off geometry.Point, col Color, intensity, thickness float64) {
	if len(points) == 0 || intensity == 0 {
		c.StrokePolygon(points, off, col, thickness)
		return
	}

	baseA := float64(col.A())
	br, bg, bb := int(col.R()), int(col.G()), int(col.B())
	strength := math.Min(intensity*6, 60)

	edges(points, off, func(a, b geometry.Point) {
		steps := max(int(math.Max(math.Abs(b.X-a.X), math.Abs(b.Y-a.Y))), 1)
		for s := 0; s <= steps; s++ {
			t := float64(s) / float64(steps)
			x := int(a.X + t*(b.X-a.X))
			y := int(a.Y + t*(b.Y-a.Y))
			if !c.inside(x, y) {
				continue
			}
			h := cellHash(x, y)
			alpha := clampByte(baseA+hashNoise(h)*strength, 30, 255)
			n := int((h>>10)%16) - 8
			c.BlendAt(x, y, ARGB(alpha,
				uint8(min(max(br+n, 0), 255)),
				uint8(min(max(bg+n, 0), 255)),
				uint8(min(max(bb+n, 0), 255)),
			))
		}
	})
}
