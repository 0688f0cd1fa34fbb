package raster

// Color is a packed 0xAARRGGBB value, the in-memory layout of an ARGB8888
// framebuffer word.
type Color uint32

// ARGB packs the four channels.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

func (c Color) A() uint8 { return uint8(c >> 24) }
func (c Color) R() uint8 { return uint8(c >> 16) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c) }

// RGB drops the alpha channel.
func (c Color) RGB() Color { return c & 0x00ffffff }

// WithAlpha replaces the alpha channel.
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(a)<<24) | c.RGB()
}

// Blend composites src over dst. Weights are 8-bit integers scaled by 255;
// an opaque source replaces dst and a transparent source leaves it alone.
func Blend(dst, src Color) Color {
	sa := uint32(src.A())
	switch sa {
	case 0:
		return dst
	case 255:
		return src
	}
	inv := 255 - sa
	da := uint32(dst.A())

	a := sa + da*inv/255
	r := (uint32(src.R())*sa + uint32(dst.R())*inv) / 255
	g := (uint32(src.G())*sa + uint32(dst.G())*inv) / 255
	b := (uint32(src.B())*sa + uint32(dst.B())*inv) / 255
	return Color(a<<24 | r<<16 | g<<8 | b)
}

func clampByte(v float64, lo, hi float64) uint8 {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return uint8(v)
}
