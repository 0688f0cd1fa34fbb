package raster

import (
	"math"

	"github.com/constellation-cursor/constellation-cursor/pkg/geometry"
)

// edges calls fn for every edge of the closed polygon, translated by off.
func edges(points []geometry.Point, off geometry.Point, fn func(a, b geometry.Point)) {
	n := len(points)
	for i := range points {
		fn(points[i].Add(off), points[(i+1)%n].Add(off))
	}
}

// normal returns the unit left normal of a→b scaled by dist.
func normal(a, b geometry.Point, dist float64) geometry.Point {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Max(math.Sqrt(dx*dx+dy*dy), 0.001)
	return geometry.Point{X: -dy / l * dist, Y: dx / l * dist}
}

// StrokePolygon outlines a closed polygon. Thicker outlines are built from
// ceil(thickness) concentric passes half a pixel apart, each fainter than
// the last, followed by a soft glow pass outside the stroke.
func (c *Canvas) StrokePolygon(points []geometry.Point, off geometry.Point, col Color, thickness float64) {
	if len(points) == 0 {
		return
	}
	if thickness <= 0 {
		thickness = 1
	}
	base := int(col.A())

	passes := max(int(math.Ceil(thickness)), 1)
	for pass := 0; pass < passes; pass++ {
		alpha := base
		if pass > 0 {
			alpha = max(base*max(100-pass*25, 0)/100, 30)
		}
		pc := col.WithAlpha(uint8(min(alpha, 255)))
		shift := float64(pass) * 0.5

		edges(points, off, func(a, b geometry.Point) {
			if shift > 0 {
				n := normal(a, b, shift)
				a, b = a.Add(n), b.Add(n)
			}
			c.Line(a, b, pc)
		})
	}

	glow := col.WithAlpha(uint8(base * 35 / 100))
	dist := thickness*0.5 + thickness*0.4
	edges(points, off, func(a, b geometry.Point) {
		n := normal(a, b, dist)
		c.Line(a.Add(n), b.Add(n), glow)
	})
}
