package raster

import (
	"math"
	"slices"

	"github.com/constellation-cursor/constellation-cursor/pkg/geometry"
)

// scanPolygon walks the even-odd interior of a closed polygon, sampling each
// row at its pixel centre, and calls fn for every covered pixel inside the
// canvas.
func (c *Canvas) scanPolygon(points []geometry.Point, off geometry.Point, fn func(x, y int)) {
	n := len(points)
	if n == 0 {
		return
	}

	minY, maxY := math.MaxFloat64, -math.MaxFloat64
	for _, p := range points {
		minY = math.Min(minY, p.Y+off.Y)
		maxY = math.Max(maxY, p.Y+off.Y)
	}
	y0 := max(int(minY), 0)
	y1 := min(int(maxY), c.Height-1)

	xs := make([]float64, 0, n)
	for y := y0; y <= y1; y++ {
		yf := float64(y) + 0.5
		xs = xs[:0]
		for i := range points {
			a := points[i].Add(off)
			b := points[(i+1)%n].Add(off)
			if (a.Y <= yf && b.Y > yf) || (b.Y <= yf && a.Y > yf) {
				xs = append(xs, a.X+(yf-a.Y)/(b.Y-a.Y)*(b.X-a.X))
			}
		}
		slices.Sort(xs)

		for i := 0; i+1 < len(xs); i += 2 {
			xStart := int(math.Max(xs[i], 0))
			xEnd := int(math.Min(xs[i+1], float64(c.Width-1)))
			for x := xStart; x <= xEnd; x++ {
				if x >= 0 && x < c.Width {
					fn(x, y)
				}
			}
		}
	}
}

// FillPolygon fills a closed polygon translated by off with col.
func (c *Canvas) FillPolygon(points []geometry.Point, off geometry.Point, col Color) {
	c.scanPolygon(points, off, func(x, y int) {
		c.BlendAt(x, y, col)
	})
}
