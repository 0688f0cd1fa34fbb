package raster

import (
	"math"

	"github.com/constellation-cursor/constellation-cursor/pkg/geometry"
)

// fract keeps the sign of x, matching a truncating integer part.
func fract(x float64) float64 {
	return x - math.Trunc(x)
}

// plot blends col at (x, y) with its alpha scaled by coverage.
func (c *Canvas) plot(x, y int, col Color, coverage float64) {
	if coverage <= 0 || !c.inside(x, y) {
		return
	}
	coverage = math.Min(coverage, 1)
	a := uint8(float64(col.A()) * coverage)
	if a == 0 {
		return
	}
	c.BlendAt(x, y, col.WithAlpha(a))
}

// Line draws an anti-aliased line with Xiaolin Wu's algorithm.
func (c *Canvas) Line(p0, p1 geometry.Point, col Color) {
	x0, y0, x1, y1 := p0.X, p0.Y, p1.X, p1.Y

	steep := math.Abs(y1-y0) > math.Abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	put := func(x, y int, coverage float64) {
		if steep {
			c.plot(y, x, col, coverage)
		} else {
			c.plot(x, y, col, coverage)
		}
	}

	dx := x1 - x0
	gradient := 1.0
	if dx >= 0.0001 {
		gradient = (y1 - y0) / dx
	}

	// first endpoint
	xend := math.Round(x0)
	yend := y0 + gradient*(xend-x0)
	xgap := 1 - fract(x0+0.5)
	xpx1 := int(xend)
	ypx1 := int(math.Floor(yend))
	put(xpx1, ypx1, (1-fract(yend))*xgap)
	put(xpx1, ypx1+1, fract(yend)*xgap)

	intery := yend + gradient

	// second endpoint
	xend = math.Round(x1)
	yend = y1 + gradient*(xend-x1)
	xgap = fract(x1 + 0.5)
	xpx2 := int(xend)
	ypx2 := int(math.Floor(yend))
	put(xpx2, ypx2, (1-fract(yend))*xgap)
	put(xpx2, ypx2+1, fract(yend)*xgap)

	for x := xpx1 + 1; x < xpx2; x++ {
		fy := math.Floor(intery)
		put(x, int(fy), 1-fract(intery))
		put(x, int(fy)+1, fract(intery))
		intery += gradient
	}
}
