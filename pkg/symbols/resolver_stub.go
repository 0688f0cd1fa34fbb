//go:build !(linux && cgo)

package symbols

import (
	"unsafe"

	"github.com/constellation-cursor/constellation-cursor/pkg/drm"
)

// Resolver is unavailable without cgo on Linux; every call fails with
// ErrUnresolved.
type Resolver struct{}

func NewResolver() *Resolver {
	return &Resolver{}
}

func (r *Resolver) Resolved(string) bool {
	return false
}

func (r *Resolver) Ioctl(int, uintptr, unsafe.Pointer) (int, error) {
	return -1, ErrUnresolved
}

func (r *Resolver) GetPlane(int, uint32) (unsafe.Pointer, error) {
	return nil, ErrUnresolved
}

func (r *Resolver) AtomicAddProperty(unsafe.Pointer, uint32, uint32, uint64) (int, error) {
	return -1, ErrUnresolved
}

func (r *Resolver) ObjectProperties(int, uint32, uint32) ([]drm.Property, error) {
	return nil, ErrUnresolved
}

func SetErrno(error) {}
