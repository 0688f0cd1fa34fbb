package drm

import (
	"fmt"
	"unsafe"
)

// CreateDumb allocates a CPU-mappable dumb buffer.
func CreateDumb(dev Device, fd int, width, height, bpp uint32) (ModeCreateDumb, error) {
	req := ModeCreateDumb{Width: width, Height: height, Bpp: bpp}
	if err := dev.Ioctl(fd, IoctlModeCreateDumb, unsafe.Pointer(&req)); err != nil {
		return ModeCreateDumb{}, fmt.Errorf("MODE_CREATE_DUMB %dx%d: %w", width, height, err)
	}
	return req, nil
}

// MapDumb returns the fake mmap offset for a dumb buffer handle.
func MapDumb(dev Device, fd int, handle uint32) (uint64, error) {
	req := ModeMapDumb{Handle: handle}
	if err := dev.Ioctl(fd, IoctlModeMapDumb, unsafe.Pointer(&req)); err != nil {
		return 0, fmt.Errorf("MODE_MAP_DUMB(%d): %w", handle, err)
	}
	return req.Offset, nil
}

// AddFB2 wraps a single-plane buffer object in a framebuffer.
func AddFB2(dev Device, fd int, width, height, format, handle, pitch uint32) (uint32, error) {
	req := ModeFBCmd2{
		Width:       width,
		Height:      height,
		PixelFormat: format,
	}
	req.Handles[0] = handle
	req.Pitches[0] = pitch
	if err := dev.Ioctl(fd, IoctlModeAddFB2, unsafe.Pointer(&req)); err != nil {
		return 0, fmt.Errorf("MODE_ADDFB2(handle=%d): %w", handle, err)
	}
	return req.FBID, nil
}

// RemoveFB destroys a framebuffer object.
func RemoveFB(dev Device, fd int, fbID uint32) error {
	id := fbID
	if err := dev.Ioctl(fd, IoctlModeRmFB, unsafe.Pointer(&id)); err != nil {
		return fmt.Errorf("MODE_RMFB(%d): %w", fbID, err)
	}
	return nil
}

// DestroyDumb releases a dumb buffer handle.
func DestroyDumb(dev Device, fd int, handle uint32) error {
	req := ModeDestroyDumb{Handle: handle}
	if err := dev.Ioctl(fd, IoctlModeDestroyDumb, unsafe.Pointer(&req)); err != nil {
		return fmt.Errorf("MODE_DESTROY_DUMB(%d): %w", handle, err)
	}
	return nil
}
