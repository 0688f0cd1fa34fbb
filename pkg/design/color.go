package design

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/constellation-cursor/constellation-cursor/pkg/raster"
)

// ParseHexColor parses "#RRGGBB" (opaque) or "#AARRGGBB". The leading '#' is
// optional.
func ParseHexColor(s string) (raster.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 6, 8:
	default:
		return 0, fmt.Errorf("color %q: want 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v |= 0xff000000
	}
	return raster.Color(v), nil
}

// FormatHexColor renders c as "#AARRGGBB", or "#RRGGBB" when it is opaque
// and short is set.
func FormatHexColor(c raster.Color, short bool) string {
	if short && c.A() == 0xff {
		return fmt.Sprintf("#%06X", uint32(c.RGB()))
	}
	return fmt.Sprintf("#%08X", uint32(c))
}
