package render

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/constellation-cursor/constellation-cursor/pkg/design"
	"github.com/constellation-cursor/constellation-cursor/pkg/geometry"
	"github.com/constellation-cursor/constellation-cursor/pkg/raster"
)

type fakeSource struct {
	kind   design.Kind
	scale  float64
	custom *design.Design
	err    error
	opts   Options
}

func (f *fakeSource) Kind() design.Kind               { return f.kind }
func (f *fakeSource) Scale() float64                  { return f.scale }
func (f *fakeSource) Custom() (*design.Design, error) { return f.custom, f.err }
func (f *fakeSource) Options() Options                { return f.opts }

func opaquePixels(c *raster.Canvas) int {
	n := 0
	for _, px := range c.Pix {
		if px>>24 != 0 {
			n++
		}
	}
	return n
}

func TestRenderDefault(t *testing.T) {
	c := raster.NewCanvas(256, 256)
	c.Pix[len(c.Pix)-1] = 0xffffffff

	hot := New(&fakeSource{kind: design.KindDefault, scale: 1.5}).Render(c)
	assert.Equal(t, geometry.Offset{}, hot)
	assert.Equal(t, uint32(0), c.Pix[len(c.Pix)-1], "render clears stale pixels")
	assert.Positive(t, opaquePixels(c))

	// inside the arrow body
	assert.NotZero(t, c.At(8, 18).A())
	// well outside it
	assert.Zero(t, c.At(120, 120).A())
}

func TestRenderScaleGrowsCursor(t *testing.T) {
	small := raster.NewCanvas(256, 256)
	New(&fakeSource{scale: 1}).Render(small)
	large := raster.NewCanvas(256, 256)
	New(&fakeSource{scale: 3}).Render(large)
	assert.Greater(t, opaquePixels(large), opaquePixels(small))
}

func TestRenderBuiltins(t *testing.T) {
	for _, name := range design.KindNames() {
		t.Run(name, func(t *testing.T) {
			c := raster.NewCanvas(256, 256)
			New(&fakeSource{kind: design.ParseKind(name), scale: 1.5, err: errors.New("none")}).Render(c)
			assert.Positive(t, opaquePixels(c))
		})
	}
}

func TestRenderNotAllowedHotspot(t *testing.T) {
	c := raster.NewCanvas(256, 256)
	hot := New(&fakeSource{kind: design.KindNotAllowed, scale: 2}).Render(c)
	assert.Equal(t, geometry.Offset{X: 18, Y: 18}, hot, "the ring centre is the hotspot")
}

func TestRenderCustomFallback(t *testing.T) {
	fallback := raster.NewCanvas(64, 64)
	New(&fakeSource{kind: design.KindCustom, scale: 1.5, err: design.ErrNoPoints}).Render(fallback)

	want := raster.NewCanvas(64, 64)
	New(&fakeSource{kind: design.KindDefault, scale: 1.5}).Render(want)
	assert.Equal(t, want.Pix, fallback.Pix)
}

func TestRenderCustomDesign(t *testing.T) {
	custom, err := design.Parse([]byte(`{"points": [[10,10],[0,10],[0,0],[10,0]], "shadowOffset": 0, "scale": 2}`))
	require.NoError(t, err)

	c := raster.NewCanvas(64, 64)
	hot := New(&fakeSource{kind: design.KindCustom, scale: 5, custom: custom}).Render(c)
	assert.Equal(t, geometry.Offset{X: 20, Y: 20}, hot, "single-layer scale ignores the runtime scale")
	assert.Equal(t, raster.Color(0xffffffff), c.At(10, 10))
	assert.Zero(t, c.At(30, 30).A())
}

func TestDrawPassthroughLayer(t *testing.T) {
	d, err := design.Parse([]byte(`{"version":2,"layers":[
		{"points":[{"x":0,"y":0},{"x":20,"y":0},{"x":20,"y":20},{"x":0,"y":20}],"fill":"#FF0000FF","outlineWidth":0,"shadowOffset":0},
		{"points":[{"x":0,"y":0},{"x":20,"y":0},{"x":20,"y":20},{"x":0,"y":20}],"fill":"#FFFFFFFF","outlineWidth":0,"passthroughTo":0}
	]}`))
	require.NoError(t, err)

	c := raster.NewCanvas(64, 64)
	Draw(c, d, design.BaseScale, Options{})
	px := c.At(5, 5)
	assert.Equal(t, uint8(0xff), px.A())
	assert.NotZero(t, px.R(), "tint layer lightens the blue body")
	assert.NotEqual(t, uint8(0xff), px.R(), "tint is translucent")
}

func TestDrawFrostedLayer(t *testing.T) {
	d, err := design.Parse([]byte(`{"version":2,"layers":[
		{"points":[{"x":0,"y":0},{"x":30,"y":0},{"x":30,"y":30},{"x":0,"y":30}],"fill":"#80C0C0C0","blur":4,"shadowOffset":0,"outlineWidth":0}
	]}`))
	require.NoError(t, err)

	flat := raster.NewCanvas(64, 64)
	Draw(flat, d, design.BaseScale, Options{FrostIntensity: 0})
	frosted := raster.NewCanvas(64, 64)
	Draw(frosted, d, design.BaseScale, Options{FrostIntensity: 1})

	assert.Equal(t, raster.Blend(0, 0x80c0c0c0), flat.At(10, 10), "no frost without intensity")
	assert.NotEqual(t, flat.Pix, frosted.Pix)
}
