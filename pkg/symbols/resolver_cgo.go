//go:build linux && cgo

package symbols

/*
#cgo LDFLAGS: -ldl
#define _GNU_SOURCE
#include <dlfcn.h>
#include <errno.h>
#include <stdint.h>
#include <stdlib.h>

typedef int (*ioctl_fn)(int, unsigned long, ...);
typedef void *(*get_plane_fn)(int, uint32_t);
typedef int (*atomic_add_fn)(void *, uint32_t, uint32_t, uint64_t);
typedef void *(*get_object_props_fn)(int, uint32_t, uint32_t);
typedef void *(*get_property_fn)(int, uint32_t);
typedef void (*free_fn)(void *);

static void *next_symbol(const char *name) {
	return dlsym(RTLD_NEXT, name);
}

static int call_ioctl(void *fn, int fd, unsigned long request, void *arg) {
	return ((ioctl_fn)fn)(fd, request, arg);
}

static void *call_get_plane(void *fn, int fd, uint32_t id) {
	return ((get_plane_fn)fn)(fd, id);
}

static int call_atomic_add(void *fn, void *req, uint32_t object_id, uint32_t property_id, uint64_t value) {
	return ((atomic_add_fn)fn)(req, object_id, property_id, value);
}

static void *call_get_object_props(void *fn, int fd, uint32_t object_id, uint32_t object_type) {
	return ((get_object_props_fn)fn)(fd, object_id, object_type);
}

static void *call_get_property(void *fn, int fd, uint32_t property_id) {
	return ((get_property_fn)fn)(fd, property_id);
}

static void call_free(void *fn, void *p) {
	((free_fn)fn)(p);
}

static void set_errno(int e) {
	errno = e;
}
*/
import "C"

import (
	"errors"
	"fmt"
	"sync/atomic"
	"syscall"
	"unsafe"

	"github.com/rs/zerolog/log"
	"golang.org/x/sys/unix"

	"github.com/constellation-cursor/constellation-cursor/pkg/drm"
)

// Resolver looks symbols up past this library with dlsym(RTLD_NEXT) on
// first use and caches them. A symbol that is missing is looked up again on
// the next call, since libdrm may be loaded later than the shim.
type Resolver struct {
	cache [symCount]atomic.Pointer[byte]
}

func NewResolver() *Resolver {
	return &Resolver{}
}

func (r *Resolver) lookup(sym int) unsafe.Pointer {
	if p := r.cache[sym].Load(); p != nil {
		return unsafe.Pointer(p)
	}
	name := C.CString(symbolNames[sym])
	defer C.free(unsafe.Pointer(name))
	p := C.next_symbol(name)
	if p == nil {
		log.Debug().Str("symbol", symbolNames[sym]).Msg("real symbol not found")
		return nil
	}
	r.cache[sym].Store((*byte)(p))
	return p
}

// Resolved reports whether the named entry point is available.
func (r *Resolver) Resolved(name string) bool {
	for i, n := range symbolNames {
		if n == name {
			return r.lookup(i) != nil
		}
	}
	return false
}

// Ioctl calls the real ioctl. Without it the request goes straight to the
// kernel, which is what libc would do anyway.
func (r *Resolver) Ioctl(fd int, request uintptr, arg unsafe.Pointer) (int, error) {
	fn := r.lookup(symIoctl)
	if fn == nil {
		ret, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), request, uintptr(arg))
		if errno != 0 {
			return -1, errno
		}
		return int(ret), nil
	}
	ret, err := C.call_ioctl(fn, C.int(fd), C.ulong(request), arg)
	if ret == -1 {
		return -1, errnoOf(err)
	}
	return int(ret), nil
}

// GetPlane calls the real drmModeGetPlane. The result is owned by libdrm.
func (r *Resolver) GetPlane(fd int, planeID uint32) (unsafe.Pointer, error) {
	fn := r.lookup(symGetPlane)
	if fn == nil {
		return nil, ErrUnresolved
	}
	return C.call_get_plane(fn, C.int(fd), C.uint32_t(planeID)), nil
}

// AtomicAddProperty calls the real drmModeAtomicAddProperty.
func (r *Resolver) AtomicAddProperty(req unsafe.Pointer, objectID, propertyID uint32, value uint64) (int, error) {
	fn := r.lookup(symAtomicAddProperty)
	if fn == nil {
		return -1, ErrUnresolved
	}
	ret := C.call_atomic_add(fn, req, C.uint32_t(objectID), C.uint32_t(propertyID), C.uint64_t(value))
	return int(ret), nil
}

// ObjectProperties lists an object's properties with their names and
// current values, freeing every libdrm allocation before returning.
func (r *Resolver) ObjectProperties(fd int, objectID, objectType uint32) ([]drm.Property, error) {
	getProps := r.lookup(symObjectGetProperties)
	freeProps := r.lookup(symFreeObjectProperties)
	getProp := r.lookup(symGetProperty)
	freeProp := r.lookup(symFreeProperty)
	if getProps == nil || freeProps == nil || getProp == nil || freeProp == nil {
		return nil, ErrUnresolved
	}

	raw, err := C.call_get_object_props(getProps, C.int(fd), C.uint32_t(objectID), C.uint32_t(objectType))
	if raw == nil {
		return nil, fmt.Errorf("drmModeObjectGetProperties(%d): %w", objectID, errnoOf(err))
	}
	defer C.call_free(freeProps, raw)

	obj := (*drm.ModeObjectProperties)(raw)
	ids, values := obj.IDs(), obj.Values()
	props := make([]drm.Property, 0, len(ids))
	for i, id := range ids {
		pr := C.call_get_property(getProp, C.int(fd), C.uint32_t(id))
		if pr == nil {
			continue
		}
		props = append(props, drm.Property{
			ID:    id,
			Name:  (*drm.ModePropertyRes)(pr).PropName(),
			Value: values[i],
		})
		C.call_free(freeProp, pr)
	}
	return props, nil
}

// SetErrno sets the calling thread's errno, so a failure reported by a Go
// handler reaches the C caller the way the real call would report it.
func SetErrno(err error) {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		C.set_errno(C.int(errno))
	}
}

func errnoOf(err error) error {
	var errno syscall.Errno
	if errors.As(err, &errno) && errno != 0 {
		return errno
	}
	return unix.EIO
}
