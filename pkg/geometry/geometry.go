// Package geometry holds the point math shared by the cursor designs and
// the rasterizer.
package geometry

import "math"

// Point is a 2D point in cursor design space.
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Offset is an integer pixel displacement, used for hotspots.
type Offset struct {
	X, Y int32
}

// Add returns the component-wise sum.
func (o Offset) Add(p Offset) Offset {
	return Offset{X: o.X + p.X, Y: o.Y + p.Y}
}

// Bounds returns the axis-aligned bounding box of points. An empty slice
// yields a zero box.
func Bounds(points []Point) (lo, hi Point) {
	if len(points) == 0 {
		return Point{}, Point{}
	}
	lo, hi = points[0], points[0]
	for _, p := range points[1:] {
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}
	return lo, hi
}

// Transformer maps design points into positive pixel space. The first point
// of the reference set is the hotspot: points are translated so the hotspot
// sits at the origin, scaled, rotated about it, and finally shifted so the
// bounding box of the reference set starts at (0, 0).
type Transformer struct {
	hotspot Point
	scale   float64
	cos     float64
	sin     float64
	shift   Point
}

// NewTransformer builds a Transformer whose hotspot and normalisation are
// taken from reference.
func NewTransformer(reference []Point, scale, rotationDeg float64) *Transformer {
	rad := rotationDeg * math.Pi / 180
	t := &Transformer{
		scale: scale,
		cos:   math.Cos(rad),
		sin:   math.Sin(rad),
	}
	if len(reference) == 0 {
		return t
	}
	t.hotspot = reference[0]

	rotated := make([]Point, len(reference))
	for i, p := range reference {
		rotated[i] = t.rotate(p)
	}
	lo, _ := Bounds(rotated)
	t.shift = Point{X: -lo.X, Y: -lo.Y}
	return t
}

func (t *Transformer) rotate(p Point) Point {
	dx := (p.X - t.hotspot.X) * t.scale
	dy := (p.Y - t.hotspot.Y) * t.scale
	return Point{
		X: dx*t.cos - dy*t.sin,
		Y: dx*t.sin + dy*t.cos,
	}
}

// Apply transforms points with the reference normalisation.
func (t *Transformer) Apply(points []Point) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = t.rotate(p).Add(t.shift)
	}
	return out
}

// Hotspot is where the design hotspot lands after normalisation, rounded to
// whole pixels. It must be added to any externally supplied hotspot.
func (t *Transformer) Hotspot() Offset {
	return Offset{
		X: int32(math.Round(t.shift.X)),
		Y: int32(math.Round(t.shift.Y)),
	}
}

// Transform normalises a single point sequence and returns the hotspot
// offset alongside the transformed points.
func Transform(points []Point, scale, rotationDeg float64) ([]Point, Offset) {
	if len(points) == 0 {
		return nil, Offset{}
	}
	t := NewTransformer(points, scale, rotationDeg)
	return t.Apply(points), t.Hotspot()
}

// CurveSegments is the number of line segments a cubic curve is flattened to.
const CurveSegments = 8

// Cubic flattens the cubic Bézier from p0 to p3 with control points c1, c2.
// The returned points exclude p0 and end exactly at p3.
func Cubic(p0, c1, c2, p3 Point) []Point {
	out := make([]Point, 0, CurveSegments)
	for i := 1; i <= CurveSegments; i++ {
		t := float64(i) / CurveSegments
		mt := 1 - t
		a := mt * mt * mt
		b := 3 * mt * mt * t
		c := 3 * mt * t * t
		d := t * t * t
		out = append(out, Point{
			X: a*p0.X + b*c1.X + c*c2.X + d*p3.X,
			Y: a*p0.Y + b*c1.Y + c*c2.Y + d*p3.Y,
		})
	}
	out[CurveSegments-1] = p3
	return out
}

// Circle returns n points evenly spaced on a circle.
func Circle(center Point, radius float64, n int) []Point {
	out := make([]Point, n)
	for i := range out {
		a := float64(i) * 2 * math.Pi / float64(n)
		out[i] = Point{X: center.X + radius*math.Cos(a), Y: center.Y + radius*math.Sin(a)}
	}
	return out
}
