package interpose

import (
	"unsafe"

	"github.com/rs/zerolog/log"

	"github.com/constellation-cursor/constellation-cursor/pkg/drm"
	"github.com/constellation-cursor/constellation-cursor/pkg/geometry"
	"github.com/constellation-cursor/constellation-cursor/pkg/surface"
)

// Ioctl handles the generic device-control entry point. Any DRM request
// teaches us the device fd; legacy cursor requests that set a buffer get
// our buffer and the display size substituted in place.
func (c *Context) Ioctl(fd int, request uintptr, arg unsafe.Pointer) (int, error) {
	if drm.IsDRMRequest(request) {
		c.learnFD(fd)
	}
	if !drm.IsCursorRequest(request) || arg == nil || c.Disabled() {
		return c.driver.Ioctl(fd, request, arg)
	}
	c.poll()
	if c.Disabled() {
		return c.driver.Ioctl(fd, request, arg)
	}

	// MODE_CURSOR2 only appends the hotspot, so both are edited through
	// the common prefix.
	req := (*drm.ModeCursor)(arg)
	if req.Flags&drm.CursorBO == 0 {
		return c.driver.Ioctl(fd, request, arg)
	}
	if req.Handle == 0 {
		log.Debug().Uint32("crtc", req.CrtcID).Msg("compositor hiding cursor, passing through")
		c.cursor.HideNow()
		return c.driver.Ioctl(fd, request, arg)
	}

	s, err := c.ensureSurface(fd)
	if err != nil {
		return c.driver.Ioctl(fd, request, arg)
	}
	c.cursor.Show(false)
	req.Handle = s.Handle
	req.Width = surface.DisplaySize
	req.Height = surface.DisplaySize
	return c.driver.Ioctl(fd, request, arg)
}

func (c *Context) cursor2(fd int, req *drm.ModeCursor2) (int, error) {
	return c.driver.Ioctl(fd, drm.IoctlModeCursor2, unsafe.Pointer(req))
}

// SetCursor handles drmModeSetCursor.
func (c *Context) SetCursor(fd int, crtcID, handle, width, height uint32) (int, error) {
	return c.setCursor(fd, crtcID, handle, width, height, geometry.Offset{})
}

// SetCursor2 handles drmModeSetCursor2.
func (c *Context) SetCursor2(fd int, crtcID, handle, width, height uint32, hotX, hotY int32) (int, error) {
	return c.setCursor(fd, crtcID, handle, width, height, geometry.Offset{X: hotX, Y: hotY})
}

func (c *Context) setCursor(fd int, crtcID, handle, width, height uint32, hot geometry.Offset) (int, error) {
	c.learnFD(fd)
	passthrough := &drm.ModeCursor2{
		Flags:  drm.CursorBO,
		CrtcID: crtcID,
		Width:  width,
		Height: height,
		Handle: handle,
		HotX:   hot.X,
		HotY:   hot.Y,
	}
	if c.Disabled() {
		return c.cursor2(fd, passthrough)
	}
	c.poll()
	if c.Disabled() {
		return c.cursor2(fd, passthrough)
	}

	if handle == 0 {
		if !c.cursor.Hide(false) {
			// fading out: the next moves step the fade and send the hide
			return 0, nil
		}
		return c.cursor2(fd, &drm.ModeCursor2{Flags: drm.CursorBO, CrtcID: crtcID})
	}

	s, err := c.ensureSurface(fd)
	if err != nil {
		return c.cursor2(fd, passthrough)
	}
	c.cursor.Show(false)
	applied := c.cursor.ApplyHotspot(hot)
	return c.cursor2(fd, &drm.ModeCursor2{
		Flags:  drm.CursorBO,
		CrtcID: crtcID,
		Width:  surface.DisplaySize,
		Height: surface.DisplaySize,
		Handle: s.Handle,
		HotX:   applied.X,
		HotY:   applied.Y,
	})
}

// MoveCursor handles drmModeMoveCursor. While a legacy fade-out is in
// progress every move advances it, re-presenting the buffer until alpha
// reaches zero and the real hide is sent.
func (c *Context) MoveCursor(fd int, crtcID uint32, x, y int32) (int, error) {
	c.learnFD(fd)
	move := &drm.ModeCursor2{Flags: drm.CursorMove, CrtcID: crtcID, X: x, Y: y}
	if c.Disabled() {
		return c.cursor2(fd, move)
	}
	c.poll()

	alpha, fading := c.cursor.StepFadeOut()
	s := c.surfaces.Current()
	switch {
	case !fading || c.Disabled():
		return c.cursor2(fd, move)
	case alpha == 0:
		log.Debug().Uint32("crtc", crtcID).Msg("fade out finished, hiding cursor")
		return c.cursor2(fd, &drm.ModeCursor2{Flags: drm.CursorBO, CrtcID: crtcID})
	case s == nil:
		return c.cursor2(fd, move)
	}

	hot := c.cursor.Hotspot()
	return c.cursor2(fd, &drm.ModeCursor2{
		Flags:  drm.CursorBO | drm.CursorMove,
		CrtcID: crtcID,
		X:      x,
		Y:      y,
		Width:  surface.DisplaySize,
		Height: surface.DisplaySize,
		Handle: s.Handle,
		HotX:   hot.X,
		HotY:   hot.Y,
	})
}
