package interpose

import (
	"unsafe"

	"github.com/rs/zerolog/log"

	"github.com/constellation-cursor/constellation-cursor/pkg/surface"
)

// GetPlane handles drmModeGetPlane: the real result is returned untouched,
// but the call teaches us the fd and classifies the plane early.
func (c *Context) GetPlane(fd int, planeID uint32) unsafe.Pointer {
	c.learnFD(fd)
	p, err := c.driver.GetPlane(fd, planeID)
	if err != nil {
		log.Debug().Err(err).Uint32("plane", planeID).Msg("drmModeGetPlane unavailable")
		return nil
	}
	if p != nil && !c.Disabled() {
		c.tracker.Classify(fd, planeID)
	}
	return p
}

// AtomicAddProperty handles drmModeAtomicAddProperty. On tracked cursor
// planes FB_ID is replaced with our framebuffer and the size properties
// with the display size; everything else is forwarded unchanged.
func (c *Context) AtomicAddProperty(req unsafe.Pointer, objectID, propertyID uint32, value uint64) int {
	if c.Disabled() {
		return c.addProperty(req, objectID, propertyID, value)
	}
	fd := c.FD()
	if !c.tracker.Classify(fd, objectID) {
		return c.addProperty(req, objectID, propertyID, value)
	}
	c.poll()
	plane, tracked := c.tracker.Lookup(objectID)
	if !tracked || c.Disabled() {
		return c.addProperty(req, objectID, propertyID, value)
	}

	s, err := c.ensureSurface(fd)
	if err != nil {
		return c.addProperty(req, objectID, propertyID, value)
	}

	if plane.IsFB(propertyID) {
		if value == 0 {
			if c.cursor.Hide(true) {
				return c.addProperty(req, objectID, propertyID, 0)
			}
			// keep presenting our buffer while it fades
			return c.addProperty(req, objectID, propertyID, uint64(s.FBID))
		}
		c.cursor.Show(true)
		return c.addProperty(req, objectID, propertyID, uint64(s.FBID))
	}

	if v, ok := plane.Substitute(propertyID, value, surface.DisplaySize); ok {
		return c.addProperty(req, objectID, propertyID, v)
	}
	return c.addProperty(req, objectID, propertyID, value)
}

func (c *Context) addProperty(req unsafe.Pointer, objectID, propertyID uint32, value uint64) int {
	ret, err := c.driver.AtomicAddProperty(req, objectID, propertyID, value)
	if err != nil {
		log.Debug().Err(err).Msg("drmModeAtomicAddProperty unavailable")
		return -1
	}
	return ret
}
