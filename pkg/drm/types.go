package drm

import (
	"bytes"
	"unsafe"
)

// ModeCursor corresponds to struct drm_mode_cursor.
type ModeCursor struct {
	Flags  uint32
	CrtcID uint32
	X      int32
	Y      int32
	Width  uint32
	Height uint32
	Handle uint32
}

// ModeCursor2 corresponds to struct drm_mode_cursor2. It is ModeCursor
// followed by the hotspot, so either argument can be viewed as a ModeCursor.
type ModeCursor2 struct {
	Flags  uint32
	CrtcID uint32
	X      int32
	Y      int32
	Width  uint32
	Height uint32
	Handle uint32
	HotX   int32
	HotY   int32
}

// ModeCreateDumb corresponds to struct drm_mode_create_dumb.
type ModeCreateDumb struct {
	Height uint32
	Width  uint32
	Bpp    uint32
	Flags  uint32
	Handle uint32
	Pitch  uint32
	Size   uint64
}

// ModeMapDumb corresponds to struct drm_mode_map_dumb.
type ModeMapDumb struct {
	Handle uint32
	Pad    uint32
	Offset uint64
}

// ModeDestroyDumb corresponds to struct drm_mode_destroy_dumb.
type ModeDestroyDumb struct {
	Handle uint32
}

// ModeFBCmd2 corresponds to struct drm_mode_fb_cmd2.
type ModeFBCmd2 struct {
	FBID        uint32
	Width       uint32
	Height      uint32
	PixelFormat uint32
	Flags       uint32
	Handles     [4]uint32
	Pitches     [4]uint32
	Offsets     [4]uint32
	Modifier    [4]uint64
}

// ModePlane mirrors libdrm's drmModePlane. Values of this type are only ever
// read from memory owned by libdrm.
type ModePlane struct {
	CountFormats  uint32
	Formats       *uint32
	PlaneID       uint32
	CrtcID        uint32
	FBID          uint32
	CrtcX         uint32
	CrtcY         uint32
	X             uint32
	Y             uint32
	PossibleCrtcs uint32
	GammaSize     uint32
}

// ModeObjectProperties mirrors libdrm's drmModeObjectProperties.
type ModeObjectProperties struct {
	CountProps uint32
	Props      *uint32
	PropValues *uint64
}

// IDs returns the property ids as a slice over libdrm memory.
func (p *ModeObjectProperties) IDs() []uint32 {
	if p.CountProps == 0 || p.Props == nil {
		return nil
	}
	return unsafe.Slice(p.Props, p.CountProps)
}

// Values returns the current property values as a slice over libdrm memory.
func (p *ModeObjectProperties) Values() []uint64 {
	if p.CountProps == 0 || p.PropValues == nil {
		return nil
	}
	return unsafe.Slice(p.PropValues, p.CountProps)
}

// ModePropertyRes mirrors libdrm's drmModePropertyRes.
type ModePropertyRes struct {
	PropID      uint32
	Flags       uint32
	Name        [PropNameLen]byte
	CountValues int32
	Values      *uint64
	CountEnums  int32
	Enums       unsafe.Pointer
	CountBlobs  int32
	BlobIDs     *uint32
}

// PropName returns the NUL-terminated property name.
func (p *ModePropertyRes) PropName() string {
	name := p.Name[:]
	if i := bytes.IndexByte(name, 0); i >= 0 {
		name = name[:i]
	}
	return string(name)
}

// Property is one property of a DRM object with its current value.
type Property struct {
	ID    uint32
	Name  string
	Value uint64
}
