package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformIdentity(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
	}{
		{"already positive", []Point{{0, 0}, {3, 18}, {10, 17.5}, {14.5, 10}}},
		{"hotspot in the middle", []Point{{5, 5}, {0, 10}, {10, 10}, {10, 0}}},
		{"negative coordinates", []Point{{-4, -2}, {-10, 3}, {6, 8}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, offset := Transform(tt.points, 1, 0)
			require.Len(t, got, len(tt.points))

			lo, _ := Bounds(tt.points)
			for i, p := range tt.points {
				assert.InDelta(t, p.X-lo.X, got[i].X, 1e-9)
				assert.InDelta(t, p.Y-lo.Y, got[i].Y, 1e-9)
			}
			// the hotspot moves to where the offset says
			assert.InDelta(t, float64(offset.X), got[0].X, 0.5)
			assert.InDelta(t, float64(offset.Y), got[0].Y, 0.5)
		})
	}
}

func TestTransformScaleAndRotate(t *testing.T) {
	points := []Point{{0, 0}, {10, 0}, {10, 10}}

	scaled, offset := Transform(points, 2, 0)
	assert.Equal(t, Offset{}, offset)
	assert.InDelta(t, 20, scaled[1].X, 1e-9)
	assert.InDelta(t, 20, scaled[2].Y, 1e-9)

	// 90 degrees maps +x to +y and +y to -x
	rotated, offset := Transform(points, 1, 90)
	assert.Equal(t, Offset{X: 10, Y: 0}, offset)
	assert.InDelta(t, 10, rotated[0].X, 1e-9)
	assert.InDelta(t, 10, rotated[1].Y, 1e-9)
	assert.InDelta(t, 0, rotated[2].X, 1e-9)

	lo, _ := Bounds(rotated)
	assert.InDelta(t, 0, lo.X, 1e-9)
	assert.InDelta(t, 0, lo.Y, 1e-9)
}

func TestTransformEmpty(t *testing.T) {
	got, offset := Transform(nil, 1.5, 0)
	assert.Empty(t, got)
	assert.Equal(t, Offset{}, offset)
}

func TestTransformerSharedReference(t *testing.T) {
	outer := []Point{{0, 0}, {-5, 10}, {10, 10}}
	inner := []Point{{1, 2}, {2, 3}, {3, 2}}

	all := append(append([]Point{}, outer...), inner...)
	tr := NewTransformer(all, 1, 0)
	assert.Equal(t, Offset{X: 5, Y: 0}, tr.Hotspot())

	got := tr.Apply(inner)
	assert.InDelta(t, 6, got[0].X, 1e-9)
	assert.InDelta(t, 2, got[0].Y, 1e-9)
}

func TestCubic(t *testing.T) {
	pts := Cubic(Point{0, 0}, Point{0, 10}, Point{10, 10}, Point{10, 0})
	require.Len(t, pts, CurveSegments)
	assert.Equal(t, Point{10, 0}, pts[CurveSegments-1])
	// symmetric curve peaks at t=0.5
	assert.InDelta(t, 5, pts[3].X, 1e-9)
	assert.InDelta(t, 7.5, pts[3].Y, 1e-9)
}

func TestCircle(t *testing.T) {
	pts := Circle(Point{9, 9}, 9, 16)
	require.Len(t, pts, 16)
	assert.InDelta(t, 18, pts[0].X, 1e-9)
	assert.InDelta(t, 9, pts[4].X, 1e-9)
	assert.InDelta(t, 18, pts[4].Y, 1e-9)
}
