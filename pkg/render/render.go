// Package render turns the active cursor design into pixels.
package render

import (
	"github.com/rs/zerolog/log"

	"github.com/constellation-cursor/constellation-cursor/pkg/design"
	"github.com/constellation-cursor/constellation-cursor/pkg/geometry"
	"github.com/constellation-cursor/constellation-cursor/pkg/raster"
)

// Options are the settings-file knobs that affect drawing.
type Options struct {
	// FrostIntensity scales every layer blur, 0..1.
	FrostIntensity float64
	// OutlineThickness overrides layer outline widths when positive.
	OutlineThickness float64
}

// Source supplies the externally selected cursor.
type Source interface {
	Kind() design.Kind
	Scale() float64
	Custom() (*design.Design, error)
	Options() Options
}

// Renderer draws the design chosen by its Source.
type Renderer struct {
	source Source
}

func New(source Source) *Renderer {
	return &Renderer{source: source}
}

// Active resolves the design to draw. A custom design that is missing or
// malformed falls back to the default arrow.
func (r *Renderer) Active() *design.Design {
	kind := r.source.Kind()
	if kind != design.KindCustom {
		return design.Builtin(kind)
	}
	d, err := r.source.Custom()
	if err != nil {
		log.Debug().Err(err).Msg("custom cursor unavailable, using default")
		return design.Default()
	}
	return d
}

// Render clears the canvas, draws the active design and returns its
// hotspot offset.
func (r *Renderer) Render(c *raster.Canvas) geometry.Offset {
	c.Clear()
	d := r.Active()
	hot := Draw(c, d, r.source.Scale(), r.source.Options())
	log.Debug().
		Str("kind", r.source.Kind().String()).
		Int("layers", len(d.Layers)).
		Int32("hot_x", hot.X).
		Int32("hot_y", hot.Y).
		Msg("rendered cursor")
	return hot
}

// Draw rasterizes d at the given runtime scale. Layers share one
// normalisation so they stay aligned with each other and with the hotspot.
func Draw(c *raster.Canvas, d *design.Design, scale float64, opts Options) geometry.Offset {
	tr := geometry.NewTransformer(d.Reference(), d.EffectiveScale(scale), d.Rotation)

	for i := range d.Layers {
		l := &d.Layers[i]
		if len(l.Points) < 3 {
			continue
		}
		drawLayer(c, l, tr.Apply(l.Points), opts)
	}
	return tr.Hotspot()
}

func drawLayer(c *raster.Canvas, l *design.Layer, pts []geometry.Point, opts Options) {
	var origin geometry.Point
	frost := l.Blur * opts.FrostIntensity

	if l.Passthrough() {
		if l.Blur != 0 {
			c.FrostedFill(pts, origin, l.Fill, frost)
		} else {
			c.FillPolygon(pts, origin, l.Fill.WithAlpha(l.Fill.A()/2))
		}
		outline(c, l, pts, opts)
		return
	}

	if l.ShadowOffset > 0 && l.Shadow.A() > 0 {
		fill(c, pts, geometry.Point{X: l.ShadowOffset, Y: l.ShadowOffset}, l.Shadow, frost)
	}
	if l.Fill.A() > 0 {
		fill(c, pts, origin, l.Fill, frost)
	}
	outline(c, l, pts, opts)
}

func fill(c *raster.Canvas, pts []geometry.Point, off geometry.Point, col raster.Color, frost float64) {
	if frost == 0 {
		c.FillPolygon(pts, off, col)
		return
	}
	c.FrostedFill(pts, off, col, frost)
}

func outline(c *raster.Canvas, l *design.Layer, pts []geometry.Point, opts Options) {
	if l.OutlineWidth <= 0 || l.Outline.A() == 0 {
		return
	}
	thickness := l.OutlineWidth
	if opts.OutlineThickness > 0 {
		thickness = opts.OutlineThickness
	}
	if l.Blur != 0 && l.BlurOutline {
		c.FrostedStroke(pts, geometry.Point{}, l.Outline, l.Blur, thickness)
		return
	}
	c.StrokePolygon(pts, geometry.Point{}, l.Outline, thickness)
}
