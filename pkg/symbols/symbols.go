// Package symbols finds the real implementations of the entry points the
// library shadows and calls them.
package symbols

import "errors"

// ErrUnresolved is returned when a real entry point cannot be found.
var ErrUnresolved = errors.New("symbol not resolved")

// Names of the shadowed and helper entry points, in lookup order.
const (
	symIoctl = iota
	symGetPlane
	symAtomicAddProperty
	symObjectGetProperties
	symFreeObjectProperties
	symGetProperty
	symFreeProperty
	symCount
)

var symbolNames = [symCount]string{
	symIoctl:                "ioctl",
	symGetPlane:             "drmModeGetPlane",
	symAtomicAddProperty:    "drmModeAtomicAddProperty",
	symObjectGetProperties:  "drmModeObjectGetProperties",
	symFreeObjectProperties: "drmModeFreeObjectProperties",
	symGetProperty:          "drmModeGetProperty",
	symFreeProperty:         "drmModeFreeProperty",
}
