package drm

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/sys/unix"
)

func TestStructSizes(t *testing.T) {
	assert.Equal(t, uintptr(28), unsafe.Sizeof(ModeCursor{}))
	assert.Equal(t, uintptr(36), unsafe.Sizeof(ModeCursor2{}))
	assert.Equal(t, uintptr(32), unsafe.Sizeof(ModeCreateDumb{}))
	assert.Equal(t, uintptr(16), unsafe.Sizeof(ModeMapDumb{}))
	assert.Equal(t, uintptr(4), unsafe.Sizeof(ModeDestroyDumb{}))
	assert.Equal(t, uintptr(104), unsafe.Sizeof(ModeFBCmd2{}))
}

func TestLibdrmMirrorLayout(t *testing.T) {
	if unsafe.Sizeof(uintptr(0)) != 8 {
		t.Skip("layout offsets below are for 64-bit targets")
	}
	assert.Equal(t, uintptr(8), unsafe.Offsetof(ModePlane{}.Formats))
	assert.Equal(t, uintptr(16), unsafe.Offsetof(ModePlane{}.PlaneID))
	assert.Equal(t, uintptr(24), unsafe.Offsetof(ModePlane{}.FBID))

	assert.Equal(t, uintptr(8), unsafe.Offsetof(ModeObjectProperties{}.Props))
	assert.Equal(t, uintptr(16), unsafe.Offsetof(ModeObjectProperties{}.PropValues))

	assert.Equal(t, uintptr(8), unsafe.Offsetof(ModePropertyRes{}.Name))
	assert.Equal(t, uintptr(40), unsafe.Offsetof(ModePropertyRes{}.CountValues))
	assert.Equal(t, uintptr(48), unsafe.Offsetof(ModePropertyRes{}.Values))
	assert.Equal(t, uintptr(88), unsafe.Sizeof(ModePropertyRes{}))
}

func TestRequestCodes(t *testing.T) {
	tests := []struct {
		name string
		got  uintptr
		nr   uintptr
		size uintptr
	}{
		{"MODE_CURSOR", IoctlModeCursor, 0xa3, unsafe.Sizeof(ModeCursor{})},
		{"MODE_CURSOR2", IoctlModeCursor2, 0xbb, unsafe.Sizeof(ModeCursor2{})},
		{"MODE_CREATE_DUMB", IoctlModeCreateDumb, 0xb2, unsafe.Sizeof(ModeCreateDumb{})},
		{"MODE_MAP_DUMB", IoctlModeMapDumb, 0xb3, unsafe.Sizeof(ModeMapDumb{})},
		{"MODE_DESTROY_DUMB", IoctlModeDestroyDumb, 0xb4, unsafe.Sizeof(ModeDestroyDumb{})},
		{"MODE_ADDFB2", IoctlModeAddFB2, 0xb8, unsafe.Sizeof(ModeFBCmd2{})},
		{"MODE_RMFB", IoctlModeRmFB, 0xaf, unsafe.Sizeof(uint32(0))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, IOWR(tt.nr, tt.size), tt.got, "%#x", tt.got)
			assert.True(t, IsDRMRequest(tt.got))
		})
	}
}

func TestIsDRMRequest(t *testing.T) {
	assert.True(t, IsDRMRequest(0x641e))
	assert.False(t, IsDRMRequest(0x5401)) // TCGETS
	assert.True(t, IsCursorRequest(IoctlModeCursor))
	assert.True(t, IsCursorRequest(IoctlModeCursor2))
	assert.False(t, IsCursorRequest(IoctlModeAddFB2))
}

func TestPropName(t *testing.T) {
	var p ModePropertyRes
	copy(p.Name[:], "FB_ID")
	assert.Equal(t, "FB_ID", p.PropName())

	copy(p.Name[:], "0123456789012345678901234567890123456789")
	assert.Len(t, p.PropName(), PropNameLen)
}

func TestObjectPropertiesSlices(t *testing.T) {
	ids := []uint32{10, 11, 12}
	values := []uint64{2, 0, 7}
	props := ModeObjectProperties{CountProps: 3, Props: &ids[0], PropValues: &values[0]}
	assert.Equal(t, ids, props.IDs())
	assert.Equal(t, values, props.Values())

	assert.Nil(t, (&ModeObjectProperties{}).IDs())
}

func TestDumbBufferRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	dev := NewMockDevice(ctrl)

	dev.EXPECT().Ioctl(3, IoctlModeCreateDumb, gomock.Any()).DoAndReturn(
		func(_ int, _ uintptr, arg unsafe.Pointer) error {
			req := (*ModeCreateDumb)(arg)
			assert.Equal(t, uint32(256), req.Width)
			assert.Equal(t, uint32(32), req.Bpp)
			req.Handle = 5
			req.Pitch = 1024
			req.Size = 256 * 1024
			return nil
		})
	created, err := CreateDumb(dev, 3, 256, 256, 32)
	require.NoError(t, err)
	assert.Equal(t, uint32(5), created.Handle)
	assert.Equal(t, uint32(1024), created.Pitch)

	dev.EXPECT().Ioctl(3, IoctlModeAddFB2, gomock.Any()).DoAndReturn(
		func(_ int, _ uintptr, arg unsafe.Pointer) error {
			req := (*ModeFBCmd2)(arg)
			assert.Equal(t, uint32(FormatARGB8888), req.PixelFormat)
			assert.Equal(t, uint32(5), req.Handles[0])
			assert.Equal(t, uint32(1024), req.Pitches[0])
			req.FBID = 77
			return nil
		})
	fb, err := AddFB2(dev, 3, 256, 256, FormatARGB8888, 5, 1024)
	require.NoError(t, err)
	assert.Equal(t, uint32(77), fb)

	dev.EXPECT().Ioctl(3, IoctlModeMapDumb, gomock.Any()).Return(unix.EACCES)
	_, err = MapDumb(dev, 3, 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, unix.EACCES))
	assert.Contains(t, err.Error(), "MODE_MAP_DUMB(5)")
}
