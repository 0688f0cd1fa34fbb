// Package interpose holds the process-wide state behind the shadowed DRM
// entry points and decides, call by call, what reaches the real driver.
package interpose

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/constellation-cursor/constellation-cursor/pkg/config"
	"github.com/constellation-cursor/constellation-cursor/pkg/cursor"
	"github.com/constellation-cursor/constellation-cursor/pkg/drm"
	"github.com/constellation-cursor/constellation-cursor/pkg/planes"
	"github.com/constellation-cursor/constellation-cursor/pkg/render"
	"github.com/constellation-cursor/constellation-cursor/pkg/surface"
)

// Context is the single per-process instance wiring every component.
type Context struct {
	driver    Driver
	signals   *config.Signals
	store     *config.Store
	selection *config.Selection
	renderer  *render.Renderer
	surfaces  *surface.Manager
	tracker   *planes.Tracker
	cursor    *cursor.Controller

	fd       atomic.Int64
	disabled atomic.Bool
}

type options struct {
	frame time.Duration
	watch bool
}

type Option func(*options)

// WithFrameInterval sets the fade animation tick.
func WithFrameInterval(d time.Duration) Option {
	return func(o *options) { o.frame = d }
}

// WithoutWatcher disables file events for the settings file so changes
// are found by polling.
func WithoutWatcher() Option {
	return func(o *options) { o.watch = false }
}

// New builds the context. Settings are loaded eagerly; failures only cost
// features, never the compositor's calls.
func New(driver Driver, dev drm.Device, env config.Env, opts ...Option) *Context {
	o := options{frame: cursor.FrameInterval, watch: true}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Context{driver: driver}
	c.fd.Store(-1)

	c.signals = config.NewSignals(env.SignalDir)
	c.store = config.NewStore(env.SettingsPath())
	if err := c.store.Load(); err != nil {
		log.Warn().Err(err).Str("path", c.store.Path()).Msg("failed to load settings, using defaults")
	}
	if o.watch {
		if err := c.store.Watch(); err != nil {
			log.Debug().Err(err).Msg("settings watcher unavailable, polling instead")
		}
	}

	c.selection = config.NewSelection(env, c.signals, c.store)
	c.renderer = render.New(c.selection)
	c.surfaces = surface.NewManager(dev, func(s *surface.Surface) {
		c.cursor.Paint(s)
	})
	c.cursor = cursor.New(c.renderer, c.surfaces, c.selection.Cursor, cursor.WithFrameInterval(o.frame))
	c.tracker = planes.NewTracker(driver)
	return c
}

// FD returns the learned DRM descriptor, or -1.
func (c *Context) FD() int {
	return int(c.fd.Load())
}

// learnFD records the first DRM descriptor seen.
func (c *Context) learnFD(fd int) {
	if fd < 0 || c.fd.Load() >= 0 {
		return
	}
	if c.fd.CompareAndSwap(-1, int64(fd)) {
		log.Debug().Int("fd", fd).Msg("captured DRM fd")
	}
}

// Disabled reports whether a disable signal turned interception off.
func (c *Context) Disabled() bool {
	return c.disabled.Load()
}

func (c *Context) ensureSurface(fd int) (*surface.Surface, error) {
	return c.surfaces.Ensure(fd, surface.BufferSize, surface.BufferSize)
}

// poll handles the out-of-band signals: the one-shot disable and refresh
// markers, then settings file changes.
func (c *Context) poll() {
	if c.signals.ConsumeDisable() {
		c.disable()
		return
	}
	if c.signals.ConsumeRefresh() {
		log.Debug().Stringer("kind", c.selection.Kind()).Msg("cursor refresh requested")
		if err := c.store.Load(); err != nil {
			log.Debug().Err(err).Msg("settings reload failed")
		}
		c.cursor.Repaint()
		return
	}
	if c.store.CheckChanged() {
		c.cursor.Repaint()
	}
}

func (c *Context) disable() {
	if !c.disabled.CompareAndSwap(false, true) {
		return
	}
	log.Info().Msg("disable requested, releasing cursor surface")
	if err := c.Close(); err != nil {
		log.Debug().Err(err).Msg("teardown incomplete")
	}
}

// Close stops animations and the settings watcher and releases the cursor
// surface if one exists.
func (c *Context) Close() error {
	c.cursor.HideNow()
	c.cursor.Wait()
	if err := c.store.Close(); err != nil {
		log.Debug().Err(err).Msg("closing settings watcher")
	}
	if c.surfaces.Current() == nil {
		return nil
	}
	return c.surfaces.Release()
}
