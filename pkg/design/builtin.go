package design

import (
	_ "embed"

	"github.com/constellation-cursor/constellation-cursor/pkg/geometry"
	"github.com/constellation-cursor/constellation-cursor/pkg/raster"
)

//go:embed default_cursor.json
var defaultCursorJSON []byte

// DefaultJSON is the embedded default arrow design.
func DefaultJSON() []byte {
	return defaultCursorJSON
}

// Default returns the built-in arrow. If the embedded document ever fails to
// parse, a plain white arrow is used instead.
func Default() *Design {
	d, err := Parse(defaultCursorJSON)
	if err != nil {
		return plainArrow()
	}
	return d
}

func pts(xy ...float64) []geometry.Point {
	out := make([]geometry.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, geometry.Point{X: xy[i], Y: xy[i+1]})
	}
	return out
}

// classic is the white-with-black-outline look shared by the built-in shapes.
func classic(factor float64, points []geometry.Point) *Design {
	return &Design{
		Version:  2,
		Scale:    BaseScale * factor,
		Relative: true,
		Layers: []Layer{{
			Points:        points,
			Fill:          0xffffffff,
			Outline:       0xff000000,
			OutlineWidth:  1,
			Shadow:        0x80000000,
			ShadowOffset:  1,
			PassthroughTo: -1,
		}},
	}
}

func plainArrow() *Design {
	return classic(1, pts(0, 0, 0, 18, 4.5, 14, 7.5, 21, 10.5, 19.5, 7.5, 12, 13, 12))
}

func notAllowed() *Design {
	const r = 9.0
	center := geometry.Point{X: r, Y: r}
	red := raster.Color(0xffff0000)
	return &Design{
		Version:  2,
		Scale:    BaseScale,
		Relative: true,
		Hotspot:  &center,
		Layers: []Layer{
			{
				Name:          "ring",
				Points:        geometry.Circle(center, r, 16),
				Outline:       red,
				OutlineWidth:  1,
				PassthroughTo: -1,
			},
			{
				Name:          "slash",
				Points:        pts(r-6, r-6, r-5, r-7, r+7, r+5, r+6, r+6),
				Fill:          red,
				PassthroughTo: -1,
			},
		},
	}
}

// Builtin returns the design for a built-in kind. KindCustom has no built-in
// design and yields the default arrow.
func Builtin(k Kind) *Design {
	switch k {
	case KindPointer:
		return classic(1, pts(0, 0, 0, 16, 4, 12, 6, 18, 9, 17, 7, 11, 12, 11))
	case KindText:
		return classic(1, pts(2, 0, 5, 0, 5, 1, 7, 3, 7, 17, 5, 19, 5, 20, 2, 20, 2, 19, 5, 19, 6, 18, 6, 2, 5, 1, 2, 1))
	case KindCrosshair:
		return classic(0.8, pts(8, 0, 8, 6, 6, 6, 6, 8, 0, 8, 0, 10, 6, 10, 6, 12, 8, 12, 8, 18,
			10, 18, 10, 12, 12, 12, 12, 10, 18, 10, 18, 8, 12, 8, 12, 6, 10, 6, 10, 0))
	case KindWait:
		return classic(1, pts(0, 0, 12, 0, 12, 3, 6, 9, 12, 15, 12, 18, 0, 18, 0, 15))
	case KindGrab:
		return classic(0.87, pts(6, 0, 6, 8, 8, 8, 8, 3, 10, 3, 10, 8, 12, 8, 12, 5, 14, 5, 14, 8,
			16, 8, 16, 7, 18, 7, 18, 16, 12, 20, 4, 20, 0, 16, 0, 12, 4, 12, 4, 0))
	case KindNotAllowed:
		return notAllowed()
	}
	return Default()
}
