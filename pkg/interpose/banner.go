package interpose

import (
	"fmt"
	"io"
	"strings"

	"github.com/constellation-cursor/constellation-cursor/pkg/config"
	"github.com/constellation-cursor/constellation-cursor/pkg/design"
	"github.com/constellation-cursor/constellation-cursor/pkg/version"
)

var intercepted = [][2]string{
	{"ioctl", "MODE_CURSOR, MODE_CURSOR2"},
	{"drmModeSetCursor", "legacy cursor set"},
	{"drmModeSetCursor2", "legacy cursor set with hotspot"},
	{"drmModeMoveCursor", "cursor position update"},
	{"drmModeGetPlane", "cursor plane detection"},
	{"drmModeAtomicAddProperty", "FB_ID replacement"},
}

// WriteBanner prints the startup summary shown when INFO is set.
func WriteBanner(w io.Writer) {
	var b strings.Builder
	fmt.Fprintf(&b, "\n  The Constellation Cursor %s\n", version.Get())
	fmt.Fprintf(&b, "  %s\n", strings.Repeat("-", 37))
	b.WriteString("  Intercepted DRM calls:\n")
	for _, e := range intercepted {
		fmt.Fprintf(&b, "    %-26s%s\n", e[0], e[1])
	}
	b.WriteString("\n  Environment variables:\n")
	for _, e := range [][2]string{
		{"DEBUG=1", "verbose logging"},
		{"INFO=1", "show this info"},
		{"FADE=1", "fade out when hiding"},
		{"TYPE=<name>", "cursor type: " + strings.Join(design.KindNames(), ", ")},
		{"SCALE=<f>", "cursor scale"},
	} {
		fmt.Fprintf(&b, "    %-32s%s\n", config.EnvPrefix+"_"+e[0], e[1])
	}
	b.WriteString("\n")
	_, _ = io.WriteString(w, b.String())
}
