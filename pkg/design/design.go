// Package design describes cursor artwork as layered vector shapes: the
// built-in cursor set and user supplied designs in either the single-layer
// or the multi-layer JSON dialect.
package design

import (
	"errors"

	"github.com/constellation-cursor/constellation-cursor/pkg/geometry"
	"github.com/constellation-cursor/constellation-cursor/pkg/raster"
)

// ErrNoPoints is returned for designs without any drawable geometry.
var ErrNoPoints = errors.New("design has no points")

// BaseScale is the runtime scale a relative design is authored at.
const BaseScale = 1.5

// Layer is one drawable unit of a design.
type Layer struct {
	Name          string
	Points        []geometry.Point
	Fill          raster.Color
	Outline       raster.Color
	OutlineWidth  float64 // 0 disables the outline
	Shadow        raster.Color
	ShadowOffset  float64
	Blur          float64
	BlurOutline   bool
	PassthroughTo int // -1 for an opaque layer
}

// Passthrough reports whether the layer tints existing pixels instead of
// drawing an opaque shape.
func (l *Layer) Passthrough() bool {
	return l.PassthroughTo >= 0
}

// Design is a complete cursor.
type Design struct {
	Version  int
	Scale    float64
	Rotation float64
	// Relative designs are scaled by runtime/BaseScale on top of Scale.
	Relative bool
	// Hotspot, when set, replaces the first layer point as the hotspot.
	Hotspot *geometry.Point
	Layers  []Layer
}

// EffectiveScale combines the design scale with the runtime scale.
func (d *Design) EffectiveScale(runtime float64) float64 {
	if d.Relative {
		return d.Scale * runtime / BaseScale
	}
	return d.Scale
}

// Reference returns the point set that fixes the design's hotspot and
// normalisation: the explicit hotspot if any, then every layer point.
func (d *Design) Reference() []geometry.Point {
	var ref []geometry.Point
	if d.Hotspot != nil {
		ref = append(ref, *d.Hotspot)
	}
	for _, l := range d.Layers {
		ref = append(ref, l.Points...)
	}
	return ref
}
