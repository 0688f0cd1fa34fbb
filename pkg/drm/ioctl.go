// Package drm describes the slice of the kernel DRM ABI the cursor shim
// touches: ioctl request codes, the structures exchanged with the kernel
// and the libdrm structures returned by the mode-setting helpers.
package drm

// DRM ioctl numbers. The encoding is identical on amd64 and arm64:
//
//	_IO(type, nr)          = (type << 8) | nr
//	_IOR(type, nr, size)   = 0x80000000 | (size << 16) | (type << 8) | nr
//	_IOW(type, nr, size)   = 0x40000000 | (size << 16) | (type << 8) | nr
//	_IOWR(type, nr, size)  = 0xC0000000 | (size << 16) | (type << 8) | nr
const (
	// IoctlModeCursor = _IOWR('d', 0xa3, struct drm_mode_cursor)
	// struct drm_mode_cursor is 28 bytes
	IoctlModeCursor uintptr = 0xc01c64a3

	// IoctlModeCursor2 = _IOWR('d', 0xbb, struct drm_mode_cursor2)
	// struct drm_mode_cursor2 is 36 bytes
	IoctlModeCursor2 uintptr = 0xc02464bb

	// IoctlModeCreateDumb = _IOWR('d', 0xb2, struct drm_mode_create_dumb)
	// struct drm_mode_create_dumb is 32 bytes
	IoctlModeCreateDumb uintptr = 0xc02064b2

	// IoctlModeMapDumb = _IOWR('d', 0xb3, struct drm_mode_map_dumb)
	// struct drm_mode_map_dumb is 16 bytes
	IoctlModeMapDumb uintptr = 0xc01064b3

	// IoctlModeDestroyDumb = _IOWR('d', 0xb4, struct drm_mode_destroy_dumb)
	IoctlModeDestroyDumb uintptr = 0xc00464b4

	// IoctlModeAddFB2 = _IOWR('d', 0xb8, struct drm_mode_fb_cmd2)
	// struct drm_mode_fb_cmd2 is 104 bytes (modifier array is 8-byte aligned)
	IoctlModeAddFB2 uintptr = 0xc06864b8

	// IoctlModeRmFB = _IOWR('d', 0xaf, unsigned int)
	IoctlModeRmFB uintptr = 0xc00464af
)

// IoctlType is the ioctl "type" byte shared by every DRM request.
const IoctlType = 'd'

// IOWR encodes a read/write DRM request for the given command number and
// argument size.
func IOWR(nr, size uintptr) uintptr {
	return 0xC0000000 | (size << 16) | (IoctlType << 8) | nr
}

// IsDRMRequest reports whether an ioctl request code belongs to the DRM
// subsystem.
func IsDRMRequest(request uintptr) bool {
	return (request>>8)&0xff == IoctlType
}

// IsCursorRequest reports whether request is one of the two legacy cursor
// ioctls.
func IsCursorRequest(request uintptr) bool {
	return request == IoctlModeCursor || request == IoctlModeCursor2
}

// Legacy cursor flags (drm_mode_cursor.flags)
const (
	CursorBO   = 0x01
	CursorMove = 0x02
)

// FormatARGB8888 is fourcc('A', 'R', '2', '4').
const FormatARGB8888 = 0x34325241

// Plane "type" property values.
const (
	PlaneTypeOverlay = 0
	PlaneTypePrimary = 1
	PlaneTypeCursor  = 2
)

// ObjectPlane is DRM_MODE_OBJECT_PLANE.
const ObjectPlane = 0xeeeeeeee

// PropNameLen is the fixed size of drm_mode_property name buffers.
const PropNameLen = 32

// Property names the plane tracker looks for.
const (
	PropType   = "type"
	PropFBID   = "FB_ID"
	PropSrcW   = "SRC_W"
	PropSrcH   = "SRC_H"
	PropCrtcW  = "CRTC_W"
	PropCrtcH  = "CRTC_H"
	PropCrtcID = "CRTC_ID"
)
