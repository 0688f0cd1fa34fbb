package drm

import "unsafe"

//go:generate mockgen -source $GOFILE -destination device_mocks.go -package $GOPACKAGE

// Device issues raw requests against an open DRM file descriptor. The
// descriptor is owned by the compositor; the Device never opens or closes it.
type Device interface {
	Ioctl(fd int, request uintptr, arg unsafe.Pointer) error
	Mmap(fd int, offset int64, length int) ([]byte, error)
	Munmap(data []byte) error
}
