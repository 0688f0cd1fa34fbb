// Package surface owns the single hardware cursor buffer: a dumb buffer,
// its CPU mapping and the framebuffer object presented to the cursor plane.
package surface

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"

	"github.com/constellation-cursor/constellation-cursor/pkg/drm"
	"github.com/constellation-cursor/constellation-cursor/pkg/raster"
)

const (
	// BufferSize is the edge length of the allocated buffer.
	BufferSize = 256
	// DisplaySize is the edge length reported to the driver. Many drivers
	// only handle small power-of-two cursor planes reliably.
	DisplaySize = 64

	bitsPerPixel = 32
)

var (
	// ErrNoSurface is returned when nothing has been allocated yet.
	ErrNoSurface = errors.New("no cursor surface")
	// ErrNoDevice is returned when no DRM descriptor is known.
	ErrNoDevice = errors.New("no DRM device fd")
)

// Surface is the allocated cursor buffer.
type Surface struct {
	FD     int
	Handle uint32
	FBID   uint32
	Width  uint32
	Height uint32
	Pitch  uint32
	Format uint32

	mem    []byte
	canvas *raster.Canvas
}

// Canvas views the mapped pixels.
func (s *Surface) Canvas() *raster.Canvas {
	return s.canvas
}

// Manager creates the surface on demand and owns it afterwards.
type Manager struct {
	dev      drm.Device
	onCreate func(*Surface)

	mu      sync.Mutex
	current atomic.Pointer[Surface]
}

// NewManager returns a Manager allocating through dev. onCreate, if set,
// runs once for every successfully created surface before Ensure returns
// so the buffer never reaches the display with undefined contents.
func NewManager(dev drm.Device, onCreate func(*Surface)) *Manager {
	return &Manager{dev: dev, onCreate: onCreate}
}

// Current returns the surface, or nil before the first successful Ensure.
func (m *Manager) Current() *Surface {
	return m.current.Load()
}

// Ensure returns the surface, allocating a width x height buffer on fd if
// none exists. A failed allocation releases whatever was created and can be
// retried on a later call.
func (m *Manager) Ensure(fd int, width, height uint32) (*Surface, error) {
	if s := m.current.Load(); s != nil {
		return s, nil
	}
	if fd < 0 {
		return nil, ErrNoDevice
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s := m.current.Load(); s != nil {
		return s, nil
	}

	s, err := m.create(fd, width, height)
	if err != nil {
		log.Debug().Err(err).Int("fd", fd).Msg("cursor surface allocation failed")
		return nil, err
	}
	if m.onCreate != nil {
		m.onCreate(s)
	}
	m.current.Store(s)
	return s, nil
}

func (m *Manager) create(fd int, width, height uint32) (_ *Surface, err error) {
	dumb, err := drm.CreateDumb(m.dev, fd, width, height, bitsPerPixel)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if derr := drm.DestroyDumb(m.dev, fd, dumb.Handle); derr != nil {
				log.Debug().Err(derr).Msg("destroy dumb buffer after failure")
			}
		}
	}()

	offset, err := drm.MapDumb(m.dev, fd, dumb.Handle)
	if err != nil {
		return nil, err
	}

	size := int(dumb.Size)
	if size == 0 {
		size = int(dumb.Pitch) * int(height)
	}
	if size < int(width)*int(height)*4 || dumb.Pitch < width*4 {
		return nil, fmt.Errorf("dumb buffer too small: pitch=%d size=%d", dumb.Pitch, size)
	}
	mem, err := m.dev.Mmap(fd, int64(offset), size)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = m.dev.Munmap(mem)
		}
	}()

	fbID, err := drm.AddFB2(m.dev, fd, width, height, drm.FormatARGB8888, dumb.Handle, dumb.Pitch)
	if err != nil {
		return nil, err
	}

	pix := unsafe.Slice((*uint32)(unsafe.Pointer(&mem[0])), len(mem)/4)
	s := &Surface{
		FD:     fd,
		Handle: dumb.Handle,
		FBID:   fbID,
		Width:  width,
		Height: height,
		Pitch:  dumb.Pitch,
		Format: drm.FormatARGB8888,
		mem:    mem,
		canvas: raster.Wrap(pix, int(width), int(height), int(dumb.Pitch/4)),
	}

	log.Debug().
		Int("fd", fd).
		Uint32("handle", s.Handle).
		Uint32("fb_id", s.FBID).
		Str("size", humanize.IBytes(uint64(size))).
		Msgf("created %dx%d cursor surface", width, height)
	return s, nil
}

// Release tears the surface down: unmap, remove the framebuffer and destroy
// the buffer. A later Ensure allocates a fresh one.
func (m *Manager) Release() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.current.Swap(nil)
	if s == nil {
		return ErrNoSurface
	}
	var errs []error
	if err := m.dev.Munmap(s.mem); err != nil {
		errs = append(errs, fmt.Errorf("munmap: %w", err))
	}
	if err := drm.RemoveFB(m.dev, s.FD, s.FBID); err != nil {
		errs = append(errs, err)
	}
	if err := drm.DestroyDumb(m.dev, s.FD, s.Handle); err != nil {
		errs = append(errs, err)
	}
	log.Debug().Uint32("fb_id", s.FBID).Msg("released cursor surface")
	return errors.Join(errs...)
}

// Detached returns a surface backed by ordinary memory and never presented.
// It has no handle or framebuffer and must not be passed to a Manager.
func Detached(width, height int) *Surface {
	c := raster.NewCanvas(width, height)
	return &Surface{
		FD:     -1,
		Width:  uint32(width),
		Height: uint32(height),
		Pitch:  uint32(c.Stride * 4),
		Format: drm.FormatARGB8888,
		canvas: c,
	}
}
