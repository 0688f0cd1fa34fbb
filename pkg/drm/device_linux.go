//go:build linux

package drm

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// SyscallDevice talks to the kernel directly. Going through the system call
// rather than libc keeps the shim's own requests out of its interposed ioctl.
type SyscallDevice struct{}

var _ Device = SyscallDevice{}

func (SyscallDevice) Ioctl(fd int, request uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), request, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}

func (SyscallDevice) Mmap(fd int, offset int64, length int) ([]byte, error) {
	data, err := unix.Mmap(fd, offset, length, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmap fd=%d offset=%#x len=%d: %w", fd, offset, length, err)
	}
	return data, nil
}

func (SyscallDevice) Munmap(data []byte) error {
	return unix.Munmap(data)
}
