//go:build linux && cgo

package main

/*
#include <stdint.h>
*/
import "C"

import (
	"unsafe"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/panics"

	"github.com/constellation-cursor/constellation-cursor/pkg/drm"
	"github.com/constellation-cursor/constellation-cursor/pkg/symbols"
)

type result struct {
	ret int
	err error
}

// guard runs f, falling back to the plain forward when it panics. Nothing
// may unwind into the compositor.
func guard[T any](name string, f, fallback func() T) T {
	var pc panics.Catcher
	var ret T
	pc.Try(func() { ret = f() })
	if r := pc.Recovered(); r != nil {
		log.Error().Err(r.AsError()).Str("call", name).Msg("recovered panic, forwarding call")
		return fallback()
	}
	return ret
}

// cResult converts to the libc convention: -1 and errno on failure.
func cResult(r result) C.int {
	if r.err != nil {
		symbols.SetErrno(r.err)
		if r.ret >= 0 {
			return -1
		}
	}
	return C.int(r.ret)
}

func forwardCursor2(fd int, req *drm.ModeCursor2) result {
	ret, err := resolver.Ioctl(fd, drm.IoctlModeCursor2, unsafe.Pointer(req))
	return result{ret, err}
}

//export ioctl
func ioctl(fd C.int, request C.ulong, arg unsafe.Pointer) C.int {
	req := uintptr(request)
	forward := func() result {
		ret, err := resolver.Ioctl(int(fd), req, arg)
		return result{ret, err}
	}
	if !drm.IsDRMRequest(req) {
		return cResult(forward())
	}
	return cResult(guard("ioctl", func() result {
		ret, err := instance().Ioctl(int(fd), req, arg)
		return result{ret, err}
	}, forward))
}

//export drmModeSetCursor
func drmModeSetCursor(fd C.int, crtcID, handle, width, height C.uint32_t) C.int {
	return cResult(guard("drmModeSetCursor", func() result {
		ret, err := instance().SetCursor(int(fd), uint32(crtcID), uint32(handle), uint32(width), uint32(height))
		return result{ret, err}
	}, func() result {
		return forwardCursor2(int(fd), &drm.ModeCursor2{
			Flags: drm.CursorBO, CrtcID: uint32(crtcID),
			Handle: uint32(handle), Width: uint32(width), Height: uint32(height),
		})
	}))
}

//export drmModeSetCursor2
func drmModeSetCursor2(fd C.int, crtcID, handle, width, height C.uint32_t, hotX, hotY C.int32_t) C.int {
	return cResult(guard("drmModeSetCursor2", func() result {
		ret, err := instance().SetCursor2(int(fd), uint32(crtcID), uint32(handle), uint32(width), uint32(height), int32(hotX), int32(hotY))
		return result{ret, err}
	}, func() result {
		return forwardCursor2(int(fd), &drm.ModeCursor2{
			Flags: drm.CursorBO, CrtcID: uint32(crtcID),
			Handle: uint32(handle), Width: uint32(width), Height: uint32(height),
			HotX: int32(hotX), HotY: int32(hotY),
		})
	}))
}

//export drmModeMoveCursor
func drmModeMoveCursor(fd C.int, crtcID C.uint32_t, x, y C.int) C.int {
	return cResult(guard("drmModeMoveCursor", func() result {
		ret, err := instance().MoveCursor(int(fd), uint32(crtcID), int32(x), int32(y))
		return result{ret, err}
	}, func() result {
		return forwardCursor2(int(fd), &drm.ModeCursor2{
			Flags: drm.CursorMove, CrtcID: uint32(crtcID), X: int32(x), Y: int32(y),
		})
	}))
}

//export drmModeGetPlane
func drmModeGetPlane(fd C.int, planeID C.uint32_t) unsafe.Pointer {
	return guard("drmModeGetPlane", func() unsafe.Pointer {
		return instance().GetPlane(int(fd), uint32(planeID))
	}, func() unsafe.Pointer {
		p, _ := resolver.GetPlane(int(fd), uint32(planeID))
		return p
	})
}

//export drmModeAtomicAddProperty
func drmModeAtomicAddProperty(req unsafe.Pointer, objectID, propertyID C.uint32_t, value C.uint64_t) C.int {
	return C.int(guard("drmModeAtomicAddProperty", func() int {
		return instance().AtomicAddProperty(req, uint32(objectID), uint32(propertyID), uint64(value))
	}, func() int {
		ret, err := resolver.AtomicAddProperty(req, uint32(objectID), uint32(propertyID), uint64(value))
		if err != nil {
			return -1
		}
		return ret
	}))
}
