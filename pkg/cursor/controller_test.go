package cursor

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/constellation-cursor/constellation-cursor/pkg/geometry"
	"github.com/constellation-cursor/constellation-cursor/pkg/raster"
	"github.com/constellation-cursor/constellation-cursor/pkg/surface"
)

type fakePainter struct {
	hot   geometry.Offset
	calls atomic.Int32

	// With ctrl set, the alpha of every paint is recorded. Render runs
	// under the controller lock, so the field is read directly.
	ctrl   *Controller
	alphas []uint8
}

func (p *fakePainter) Render(c *raster.Canvas) geometry.Offset {
	p.calls.Add(1)
	if p.ctrl != nil {
		p.alphas = append(p.alphas, p.ctrl.alpha)
	}
	c.Clear()
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			c.Set(x, y, 0xffffffff)
		}
	}
	return p.hot
}

type fakeSurfaces struct {
	s *surface.Surface
}

func (f *fakeSurfaces) Current() *surface.Surface { return f.s }

type settingsBox struct {
	mu sync.Mutex
	s  Settings
}

func (b *settingsBox) get() Settings {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.s
}

func newController(t *testing.T, s Settings, opts ...Option) (*Controller, *fakePainter, *surface.Surface) {
	t.Helper()
	p := &fakePainter{}
	surf := surface.Detached(16, 16)
	box := &settingsBox{s: s}
	c := New(p, &fakeSurfaces{s: surf}, box.get, opts...)
	t.Cleanup(c.Wait)
	return c, p, surf
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "hidden", Hidden.String())
	assert.Equal(t, "fading-in", FadingIn.String())
	assert.Equal(t, "unknown", State(42).String())
	assert.True(t, FadingOut.Fading())
	assert.False(t, Visible.Fading())
}

func TestInitialState(t *testing.T) {
	c, _, _ := newController(t, DefaultSettings())
	assert.Equal(t, Hidden, c.State())
	assert.Equal(t, uint8(0), c.Alpha())
	assert.True(t, c.Hide(true), "hiding an already hidden cursor goes to the driver")
}

func TestHideWithoutFade(t *testing.T) {
	c, p, _ := newController(t, DefaultSettings())

	c.Show(true)
	require.Equal(t, Visible, c.State())
	assert.Equal(t, uint8(255), c.Alpha())
	assert.Equal(t, int32(1), p.calls.Load())

	assert.True(t, c.Hide(true))
	assert.Equal(t, Hidden, c.State())
	assert.Equal(t, uint8(0), c.Alpha())
	assert.False(t, c.Animating())
}

func TestShowWhileVisibleDoesNotRepaint(t *testing.T) {
	c, p, _ := newController(t, DefaultSettings())
	c.Show(false)
	c.Show(false)
	assert.Equal(t, int32(1), p.calls.Load())
}

func TestStepFadeOutIsMonotonic(t *testing.T) {
	s := DefaultSettings()
	s.FadeOut = true
	s.FadeStep = 30
	c, _, surf := newController(t, s)

	c.Show(false)
	require.False(t, c.Hide(false))
	require.Equal(t, FadingOut, c.State())
	require.False(t, c.Animating())

	prev := c.Alpha()
	steps := 0
	for {
		alpha, fading := c.StepFadeOut()
		require.True(t, fading)
		require.Less(t, alpha, prev)
		prev = alpha
		steps++
		if alpha == 0 {
			break
		}
		assert.Equal(t, alpha, surf.Canvas().At(0, 0).A(), "buffer follows alpha")
	}
	assert.Equal(t, 9, steps)
	assert.Equal(t, Hidden, c.State())
	assert.Equal(t, raster.Color(0), surf.Canvas().At(0, 0))

	_, fading := c.StepFadeOut()
	assert.False(t, fading)
}

func TestHideWhileFadingKeepsPresenting(t *testing.T) {
	s := DefaultSettings()
	s.FadeOut = true
	c, _, _ := newController(t, s)

	c.Show(false)
	assert.False(t, c.Hide(false))
	assert.False(t, c.Hide(false))
	assert.Equal(t, FadingOut, c.State())
}

func TestShowCancelsFadeOut(t *testing.T) {
	s := DefaultSettings()
	s.FadeOut = true
	c, _, surf := newController(t, s)

	c.Show(false)
	c.Hide(false)
	alpha, _ := c.StepFadeOut()
	require.Equal(t, uint8(225), alpha)

	c.Show(false)
	assert.Equal(t, Visible, c.State())
	assert.Equal(t, uint8(255), c.Alpha())
	assert.Equal(t, uint8(255), surf.Canvas().At(0, 0).A())
}

func TestAsyncFadeOut(t *testing.T) {
	s := DefaultSettings()
	s.FadeOut = true
	s.FadeStep = 60
	c, _, surf := newController(t, s, WithFrameInterval(time.Millisecond))

	c.Show(true)
	require.False(t, c.Hide(true))
	c.Wait()

	assert.Equal(t, Hidden, c.State())
	assert.Equal(t, uint8(0), c.Alpha())
	assert.False(t, c.Animating())
	assert.Equal(t, raster.Color(0), surf.Canvas().At(0, 0))
}

func TestAsyncFadeIn(t *testing.T) {
	s := DefaultSettings()
	s.FadeIn = true
	s.FadeStep = 1
	c, p, surf := newController(t, s, WithFrameInterval(time.Millisecond))

	c.Show(true)
	c.Wait()

	assert.Equal(t, Visible, c.State())
	assert.Equal(t, uint8(255), c.Alpha())
	assert.Equal(t, uint8(255), surf.Canvas().At(0, 0).A())
	// The step is raised to the task minimum: 255/5 ticks plus the first paint.
	assert.Equal(t, int32(52), p.calls.Load())
}

func TestAsyncFadeInAlphaRamp(t *testing.T) {
	s := DefaultSettings()
	s.FadeIn = true
	s.FadeStep = 7
	c, p, _ := newController(t, s, WithFrameInterval(time.Millisecond))
	p.ctrl = c

	c.Show(true)
	c.Wait()

	require.Equal(t, Visible, c.State())
	require.NotEmpty(t, p.alphas)
	assert.Equal(t, uint8(0), p.alphas[0])
	assert.Equal(t, uint8(255), p.alphas[len(p.alphas)-1])
	for i := 1; i < len(p.alphas); i++ {
		assert.GreaterOrEqual(t, p.alphas[i], p.alphas[i-1], "alpha decreased at paint %d: %v", i, p.alphas)
		assert.LessOrEqual(t, p.alphas[i]-p.alphas[i-1], uint8(7))
	}
	// 0, 7, ..., 252, then the clamp to 255.
	assert.Len(t, p.alphas, 38)
}

func TestAsyncFadeOutAlphaRamp(t *testing.T) {
	s := DefaultSettings()
	s.FadeOut = true
	s.FadeStep = 7
	c, p, surf := newController(t, s, WithFrameInterval(time.Millisecond))
	p.ctrl = c

	c.Show(false)
	require.False(t, c.Hide(true))
	c.Wait()

	require.Equal(t, Hidden, c.State())
	assert.Equal(t, uint8(0), c.Alpha())
	assert.Equal(t, raster.Color(0), surf.Canvas().At(0, 0), "the last step clears the buffer")

	require.NotEmpty(t, p.alphas)
	assert.Equal(t, uint8(255), p.alphas[0])
	for i := 1; i < len(p.alphas); i++ {
		assert.LessOrEqual(t, p.alphas[i], p.alphas[i-1], "alpha increased at paint %d: %v", i, p.alphas)
	}
	// 255, 248, ..., 3 painted; the step to 0 clears instead of painting.
	assert.Equal(t, uint8(3), p.alphas[len(p.alphas)-1])
	assert.Len(t, p.alphas, 37)
}

func TestAsyncFadeUsesTaskMinimumStep(t *testing.T) {
	s := DefaultSettings()
	s.FadeOut = true
	s.FadeStep = 2
	c, p, _ := newController(t, s, WithFrameInterval(time.Millisecond))
	p.ctrl = c

	c.Show(false)
	c.Hide(true)
	c.Wait()

	require.Equal(t, Hidden, c.State())
	require.Greater(t, len(p.alphas), 2)
	assert.Equal(t, uint8(minTaskStep), p.alphas[0]-p.alphas[1])
}

func TestHideWhileTaskAliveIsPickedUp(t *testing.T) {
	s := DefaultSettings()
	s.FadeOut = true
	s.FadeStep = 60
	c, _, _ := newController(t, s)

	c.Show(false)
	// A task that has not yet run its final tick.
	c.running.Store(true)
	require.False(t, c.Hide(true))
	require.Equal(t, FadingOut, c.State())

	for !c.tick() {
	}

	assert.Equal(t, Hidden, c.State())
	assert.Equal(t, uint8(0), c.Alpha())
	assert.False(t, c.Animating())
	assert.True(t, c.Hide(true), "a hidden cursor forwards hides")
}

func TestFadeStartsRightAfterPreviousTaskFinishes(t *testing.T) {
	s := DefaultSettings()
	s.FadeIn = true
	s.FadeOut = true
	s.FadeStep = 60
	c, _, _ := newController(t, s, WithFrameInterval(time.Millisecond))

	c.Show(true)
	require.Eventually(t, func() bool { return c.State() == Visible }, time.Second, time.Millisecond)
	assert.False(t, c.Animating(), "the task is released together with its final transition")

	require.False(t, c.Hide(true))
	c.Wait()
	assert.Equal(t, Hidden, c.State())
	assert.True(t, c.Hide(true))
}

func TestFadeInWithoutAsyncIsImmediate(t *testing.T) {
	s := DefaultSettings()
	s.FadeIn = true
	c, _, _ := newController(t, s)

	c.Show(false)
	assert.Equal(t, Visible, c.State())
	assert.False(t, c.Animating())
}

func TestFadeInRefusedWhileTaskRuns(t *testing.T) {
	s := DefaultSettings()
	s.FadeOut = true
	s.FadeIn = true
	s.FadeStep = 5
	c, _, _ := newController(t, s, WithFrameInterval(10*time.Millisecond))

	c.Show(false)
	require.False(t, c.Hide(true))
	require.True(t, c.Animating())

	c.Show(true)
	assert.Equal(t, Visible, c.State())
	assert.Equal(t, uint8(255), c.Alpha())

	c.Wait()
	assert.Equal(t, Visible, c.State(), "cancelled task leaves the state alone")
	assert.Equal(t, uint8(255), c.Alpha())
}

func TestHideNowCancelsAnimation(t *testing.T) {
	s := DefaultSettings()
	s.FadeOut = true
	s.FadeStep = 5
	c, _, _ := newController(t, s, WithFrameInterval(10*time.Millisecond))

	c.Show(false)
	c.Hide(true)
	c.HideNow()
	c.Wait()
	assert.Equal(t, Hidden, c.State())
	assert.False(t, c.Animating())
}

func TestApplyHotspotSmoothing(t *testing.T) {
	c, _, _ := newController(t, DefaultSettings())

	assert.Equal(t, geometry.Offset{}, c.ApplyHotspot(geometry.Offset{}))
	assert.Equal(t, geometry.Offset{X: 10}, c.ApplyHotspot(geometry.Offset{X: 30}))
	assert.Equal(t, geometry.Offset{X: 16}, c.ApplyHotspot(geometry.Offset{X: 30}))
	assert.Equal(t, geometry.Offset{X: 20, Y: 3}, c.ApplyHotspot(geometry.Offset{X: 20, Y: 3}), "small moves apply exactly")
	assert.Equal(t, geometry.Offset{X: 20, Y: 3}, c.Hotspot())
}

func TestApplyHotspotFirstValueIsExact(t *testing.T) {
	c, _, _ := newController(t, DefaultSettings())
	assert.Equal(t, geometry.Offset{X: 40, Y: -12}, c.ApplyHotspot(geometry.Offset{X: 40, Y: -12}))
}

func TestApplyHotspotWithoutSmoothing(t *testing.T) {
	s := DefaultSettings()
	s.Smoothing = false
	c, _, _ := newController(t, s)

	c.ApplyHotspot(geometry.Offset{})
	assert.Equal(t, geometry.Offset{X: 30}, c.ApplyHotspot(geometry.Offset{X: 30}))
}

func TestApplyHotspotAddsDesignHotspot(t *testing.T) {
	c, p, _ := newController(t, DefaultSettings())
	p.hot = geometry.Offset{X: 4, Y: 2}

	c.Repaint()
	assert.Equal(t, geometry.Offset{X: 4, Y: 2}, c.RawHotspot())
	assert.Equal(t, geometry.Offset{X: 5, Y: 3}, c.ApplyHotspot(geometry.Offset{X: 1, Y: 1}))
}

func TestPaintWithoutSurface(t *testing.T) {
	p := &fakePainter{}
	c := New(p, &fakeSurfaces{}, nil)
	c.Show(false)
	c.Repaint()
	assert.Equal(t, int32(0), p.calls.Load())
	assert.Equal(t, Visible, c.State())
}
