package interpose

import (
	"unsafe"

	"github.com/constellation-cursor/constellation-cursor/pkg/drm"
)

//go:generate mockgen -source $GOFILE -destination driver_mocks.go -package $GOPACKAGE

// Driver reaches the real entry points behind the shadowed ones. Errors
// from Ioctl carry the errno; the other calls only fail when the real
// symbol is missing.
type Driver interface {
	Ioctl(fd int, request uintptr, arg unsafe.Pointer) (int, error)
	GetPlane(fd int, planeID uint32) (unsafe.Pointer, error)
	AtomicAddProperty(req unsafe.Pointer, objectID, propertyID uint32, value uint64) (int, error)
	ObjectProperties(fd int, objectID, objectType uint32) ([]drm.Property, error)
}
