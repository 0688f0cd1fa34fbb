// Package planes recognises cursor-type hardware planes on the atomic
// modesetting path and remembers the property ids that need rewriting.
package planes

import (
	"sync"
	"sync/atomic"
)

// Capacity bounds the number of cursor planes tracked per process. Planes
// classified after the registry is full are forwarded untouched.
const Capacity = 8

// Plane is a registered cursor plane. Zero property ids are not tracked.
type Plane struct {
	ID        uint32
	FBProp    uint32
	SrcWProp  uint32
	SrcHProp  uint32
	CrtcWProp uint32
	CrtcHProp uint32
}

// IsFB reports whether propertyID is the plane's FB_ID property.
func (p Plane) IsFB(propertyID uint32) bool {
	return p.FBProp != 0 && propertyID == p.FBProp
}

// Substitute rewrites the sizing properties so the plane always scans out
// a size x size region. The second result is false for properties that are
// forwarded unchanged, FB_ID included.
func (p Plane) Substitute(propertyID uint32, value uint64, size uint32) (uint64, bool) {
	if propertyID == 0 {
		return value, false
	}
	switch propertyID {
	case p.SrcWProp, p.SrcHProp:
		// SRC_* are 16.16 fixed point
		return uint64(size) << 16, true
	case p.CrtcWProp, p.CrtcHProp:
		return uint64(size), true
	}
	return value, false
}

// Registry is an append-only, fixed-size list of cursor planes. Reads are
// lock-free; appends are serialised.
type Registry struct {
	mu      sync.Mutex
	count   atomic.Int32
	entries [Capacity]Plane
}

// Len returns the number of registered planes.
func (r *Registry) Len() int {
	return int(r.count.Load())
}

// Lookup finds a registered plane by id.
func (r *Registry) Lookup(id uint32) (Plane, bool) {
	n := r.count.Load()
	for i := int32(0); i < n; i++ {
		if r.entries[i].ID == id {
			return r.entries[i], true
		}
	}
	return Plane{}, false
}

// Add registers p. Registering an id twice returns the first entry; a full
// registry returns false.
func (r *Registry) Add(p Plane) (Plane, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.Lookup(p.ID); ok {
		return existing, true
	}
	n := r.count.Load()
	if n >= Capacity {
		return Plane{}, false
	}
	r.entries[n] = p
	r.count.Store(n + 1)
	return p, true
}
