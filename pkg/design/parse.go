package design

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/constellation-cursor/constellation-cursor/pkg/geometry"
	"github.com/constellation-cursor/constellation-cursor/pkg/raster"
)

// Defaults applied to fields a design file leaves out.
const (
	DefaultFill         raster.Color = 0xffffffff
	DefaultOutline      raster.Color = 0xff000000
	DefaultShadow       raster.Color = 0x80000000
	DefaultScale                     = 1.5
	DefaultShadowOffset              = 1.0
	DefaultOutlineWidth              = 1.0
)

type fileSettings struct {
	Scale *float64 `json:"scale"`
}

type fileDesign struct {
	Version  float64       `json:"version"`
	Type     string        `json:"type"`
	Scale    *float64      `json:"scale"`
	Rotation float64       `json:"rotation"`
	Settings *fileSettings `json:"settings"`

	// single-layer dialect
	Points       [][]float64 `json:"points"`
	Fill         string      `json:"fill"`
	Outline      string      `json:"outline"`
	Shadow       string      `json:"shadow"`
	ShadowOffset *float64    `json:"shadowOffset"`

	Layers []fileLayer `json:"layers"`
}

type fileLayer struct {
	Name          string      `json:"name"`
	Points        []filePoint `json:"points"`
	Fill          string      `json:"fill"`
	FillAlpha     *float64    `json:"fillAlpha"`
	Outline       string      `json:"outline"`
	OutlineAlpha  *float64    `json:"outlineAlpha"`
	OutlineWidth  *float64    `json:"outlineWidth"`
	Shadow        string      `json:"shadow"`
	ShadowAlpha   *float64    `json:"shadowAlpha"`
	ShadowOffset  *float64    `json:"shadowOffset"`
	Blur          float64     `json:"blur"`
	BlurOutline   bool        `json:"blurOutline"`
	PassthroughTo *int        `json:"passthroughTo"`
	Passthrough   bool        `json:"passthrough"`
}

type filePoint struct {
	Type string   `json:"type"`
	X    float64  `json:"x"`
	Y    float64  `json:"y"`
	CX1  *float64 `json:"cx1"`
	CY1  *float64 `json:"cy1"`
	CX2  *float64 `json:"cx2"`
	CY2  *float64 `json:"cy2"`
}

// Load reads and parses a design file.
func Load(path string) (*Design, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Parse decodes either dialect. Documents declaring version 2 or later, or
// carrying a "layers" array without a version, are multi-layer designs;
// everything else is read as the single-layer form.
func Parse(data []byte) (*Design, error) {
	var f fileDesign
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode design: %w", err)
	}
	if f.Version >= 2 || (f.Version == 0 && f.Layers != nil) {
		return f.layered()
	}
	return f.single()
}

func (f *fileDesign) scale() float64 {
	switch {
	case f.Scale != nil:
		return *f.Scale
	case f.Settings != nil && f.Settings.Scale != nil:
		return *f.Settings.Scale
	}
	return DefaultScale
}

func (f *fileDesign) single() (*Design, error) {
	var points []geometry.Point
	for _, p := range f.Points {
		if len(p) >= 2 {
			points = append(points, geometry.Point{X: p[0], Y: p[1]})
		}
	}
	if len(points) == 0 {
		return nil, ErrNoPoints
	}

	layer := Layer{
		Points:        points,
		Fill:          colorOr(f.Fill, DefaultFill),
		Outline:       colorOr(f.Outline, DefaultOutline),
		OutlineWidth:  DefaultOutlineWidth,
		Shadow:        colorOr(f.Shadow, DefaultShadow),
		ShadowOffset:  floatOr(f.ShadowOffset, DefaultShadowOffset),
		PassthroughTo: -1,
	}
	return &Design{
		Version:  1,
		Scale:    f.scale(),
		Rotation: f.Rotation,
		Layers:   []Layer{layer},
	}, nil
}

func (f *fileDesign) layered() (*Design, error) {
	d := &Design{
		Version:  max(int(f.Version), 2),
		Scale:    f.scale(),
		Rotation: f.Rotation,
		Relative: true,
	}
	for _, fl := range f.Layers {
		points := fl.points()
		if len(points) == 0 {
			continue
		}
		layer := Layer{
			Name:          fl.Name,
			Points:        points,
			Fill:          withPercent(colorOr(fl.Fill, DefaultFill), fl.FillAlpha),
			Outline:       withPercent(colorOr(fl.Outline, DefaultOutline), fl.OutlineAlpha),
			OutlineWidth:  floatOr(fl.OutlineWidth, DefaultOutlineWidth),
			Shadow:        withPercent(colorOr(fl.Shadow, DefaultShadow), fl.ShadowAlpha),
			ShadowOffset:  floatOr(fl.ShadowOffset, DefaultShadowOffset),
			Blur:          fl.Blur,
			BlurOutline:   fl.BlurOutline,
			PassthroughTo: -1,
		}
		switch {
		case fl.PassthroughTo != nil:
			layer.PassthroughTo = *fl.PassthroughTo
		case fl.Passthrough:
			layer.PassthroughTo = 0
		}
		d.Layers = append(d.Layers, layer)
	}
	if len(d.Layers) == 0 {
		return nil, ErrNoPoints
	}
	return d, nil
}

// points flattens curve points into CurveSegments line segments starting at
// the previous point. A curve with no predecessor is a plain point.
func (fl *fileLayer) points() []geometry.Point {
	var out []geometry.Point
	for _, p := range fl.Points {
		end := geometry.Point{X: p.X, Y: p.Y}
		if p.Type != "curve" || len(out) == 0 {
			out = append(out, end)
			continue
		}
		c1 := geometry.Point{X: floatOr(p.CX1, p.X), Y: floatOr(p.CY1, p.Y)}
		c2 := geometry.Point{X: floatOr(p.CX2, p.X), Y: floatOr(p.CY2, p.Y)}
		out = append(out, geometry.Cubic(out[len(out)-1], c1, c2, end)...)
	}
	return out
}

func colorOr(s string, def raster.Color) raster.Color {
	if s == "" {
		return def
	}
	c, err := ParseHexColor(s)
	if err != nil {
		return def
	}
	return c
}

func floatOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

// withPercent replaces the alpha channel with a 0-100 percentage when one is
// given.
func withPercent(c raster.Color, pct *float64) raster.Color {
	if pct == nil {
		return c
	}
	a := math.Min(math.Max(*pct, 0)/100*255, 255)
	return c.WithAlpha(uint8(a))
}
