// Package cursor drives what the cursor buffer shows: the hidden/visible
// state machine, fade animations and hotspot smoothing.
package cursor

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc"

	"github.com/constellation-cursor/constellation-cursor/pkg/geometry"
	"github.com/constellation-cursor/constellation-cursor/pkg/raster"
	"github.com/constellation-cursor/constellation-cursor/pkg/surface"
)

// FrameInterval is the animation tick, about 60 Hz.
const FrameInterval = 16 * time.Millisecond

// minTaskStep keeps background fades from dragging on at tiny step sizes.
const minTaskStep = 5

// Painter draws the selected design and returns its hotspot offset.
type Painter interface {
	Render(c *raster.Canvas) geometry.Offset
}

// Surfaces yields the cursor buffer, or nil before it exists.
type Surfaces interface {
	Current() *surface.Surface
}

// Controller owns the visual state. One mutex serialises state changes and
// every write into the cursor buffer, including the animation task's.
type Controller struct {
	painter  Painter
	surfaces Surfaces
	settings func() Settings
	frame    time.Duration

	mu         sync.Mutex
	state      State
	alpha      uint8
	raw        geometry.Offset
	applied    geometry.Offset
	hotspotSet bool

	running atomic.Bool
	wg      conc.WaitGroup
}

type Option func(*Controller)

// WithFrameInterval overrides the animation tick.
func WithFrameInterval(d time.Duration) Option {
	return func(c *Controller) { c.frame = d }
}

// New returns a Controller in the Hidden state. A nil settings func uses
// DefaultSettings.
func New(painter Painter, surfaces Surfaces, settings func() Settings, opts ...Option) *Controller {
	if settings == nil {
		settings = DefaultSettings
	}
	c := &Controller{
		painter:  painter,
		surfaces: surfaces,
		settings: settings,
		frame:    FrameInterval,
		state:    Hidden,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Alpha() uint8 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.alpha
}

// Hotspot returns the hotspot last handed to the driver.
func (c *Controller) Hotspot() geometry.Offset {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.applied
}

// RawHotspot returns the design hotspot of the last render.
func (c *Controller) RawHotspot() geometry.Offset {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.raw
}

// Animating reports whether a fade task is alive.
func (c *Controller) Animating() bool {
	return c.running.Load()
}

// Paint renders into s. It is the surface creation hook, so it must not
// look the surface up through Surfaces.
func (c *Controller) Paint(s *surface.Surface) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paintLocked(s)
}

// Repaint re-renders the current surface, e.g. after a design change.
func (c *Controller) Repaint() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paintLocked(c.surfaces.Current())
}

func (c *Controller) paintLocked(s *surface.Surface) {
	if s == nil {
		return
	}
	canvas := s.Canvas()
	c.raw = c.painter.Render(canvas)
	if c.state.Fading() {
		canvas.ScaleAlpha(c.alpha)
	}
}

func (c *Controller) clearLocked() {
	if s := c.surfaces.Current(); s != nil {
		s.Canvas().Clear()
	}
}

func (c *Controller) setState(next State) {
	if c.state != next {
		log.Debug().Stringer("from", c.state).Stringer("to", next).Uint8("alpha", c.alpha).Msg("cursor state")
	}
	c.state = next
	if next == Hidden {
		c.alpha = 0
	}
}

// Hide handles a request to clear the cursor and reports whether that
// request should reach the driver now. With fade-out enabled the cursor
// keeps being presented while alpha ramps down: async starts a background
// task, otherwise the caller drives the ramp with StepFadeOut.
func (c *Controller) Hide(async bool) (forward bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case Hidden:
		return true
	case FadingOut:
		return false
	}

	if !c.settings().FadeOut {
		c.setState(Hidden)
		return true
	}
	c.setState(FadingOut)
	if async {
		c.startLocked()
	}
	return false
}

// HideNow forces the Hidden state, cancelling any fade.
func (c *Controller) HideNow() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setState(Hidden)
}

// Show handles a request to display the cursor. It cancels a fade-out. With
// fade-in enabled and async set the cursor ramps up from its current alpha,
// unless another fade task is still alive: then it is shown at full alpha
// straight away.
func (c *Controller) Show(async bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case Visible, FadingIn:
		return
	}

	if async && c.settings().FadeIn && c.alpha < 255 {
		c.setState(FadingIn)
		if c.startLocked() {
			c.paintLocked(c.surfaces.Current())
			return
		}
		log.Debug().Msg("fade task still running, showing without fade-in")
	}
	c.setState(Visible)
	c.alpha = 255
	c.paintLocked(c.surfaces.Current())
}

// StepFadeOut advances a caller-driven fade by one step. fading is false
// when no fade-out is in progress; alpha reaching zero means the cursor is
// now Hidden and the real hide must be sent.
func (c *Controller) StepFadeOut() (alpha uint8, fading bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != FadingOut {
		return c.alpha, false
	}
	c.alpha = subSat(c.alpha, c.settings().FadeStep)
	if c.alpha == 0 {
		c.setState(Hidden)
		c.clearLocked()
		return 0, true
	}
	c.paintLocked(c.surfaces.Current())
	return c.alpha, true
}

// ApplyHotspot combines a client hotspot with the design hotspot and
// returns the value to hand to the driver. The first value is taken as is;
// later jumps beyond the threshold move a third of the way per call when
// smoothing is on.
func (c *Controller) ApplyHotspot(client geometry.Offset) geometry.Offset {
	c.mu.Lock()
	defer c.mu.Unlock()

	target := client.Add(c.raw)
	s := c.settings()
	switch {
	case !c.hotspotSet:
		c.hotspotSet = true
		c.applied = target
	case !s.Smoothing:
		c.applied = target
	default:
		dx, dy := target.X-c.applied.X, target.Y-c.applied.Y
		if abs(dx) > s.Threshold || abs(dy) > s.Threshold {
			c.applied = geometry.Offset{X: c.applied.X + dx/3, Y: c.applied.Y + dy/3}
			log.Debug().Int32("x", c.applied.X).Int32("y", c.applied.Y).Msg("hotspot smoothed")
		} else {
			c.applied = target
		}
	}
	return c.applied
}

// startLocked launches the fade task unless one is alive.
func (c *Controller) startLocked() bool {
	if !c.running.CompareAndSwap(false, true) {
		return false
	}
	c.wg.Go(c.animate)
	return true
}

func (c *Controller) animate() {
	ticker := time.NewTicker(c.frame)
	defer ticker.Stop()
	for {
		if c.tick() {
			return
		}
		<-ticker.C
	}
}

// tick performs one animation step and reports whether the task is done.
// A state that is no longer fading means the task was cancelled. The running
// flag is cleared under the same lock as the final transition, so a fade
// requested after it starts a new task and one requested before it is
// picked up by this one.
func (c *Controller) tick() (done bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	defer func() {
		if done {
			c.running.Store(false)
		}
	}()

	step := max(c.settings().FadeStep, minTaskStep)
	switch c.state {
	case FadingOut:
		c.alpha = subSat(c.alpha, step)
		if c.alpha == 0 {
			c.setState(Hidden)
			c.clearLocked()
			return true
		}
	case FadingIn:
		c.alpha = addSat(c.alpha, step)
		if c.alpha == 255 {
			c.setState(Visible)
			c.paintLocked(c.surfaces.Current())
			return true
		}
	default:
		return true
	}
	c.paintLocked(c.surfaces.Current())
	return false
}

// Wait blocks until the fade task, if any, has exited.
func (c *Controller) Wait() {
	c.wg.Wait()
}

func subSat(a, b uint8) uint8 {
	if a < b {
		return 0
	}
	return a - b
}

func addSat(a, b uint8) uint8 {
	if int(a)+int(b) > 255 {
		return 255
	}
	return a + b
}

func abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
