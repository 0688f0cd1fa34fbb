package planes

import (
	"errors"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/rs/zerolog/log"
	"golang.org/x/sys/unix"

	"github.com/constellation-cursor/constellation-cursor/pkg/drm"
)

//go:generate mockgen -source $GOFILE -destination tracker_mocks.go -package $GOPACKAGE

// PropertySource enumerates the properties of a DRM object.
type PropertySource interface {
	ObjectProperties(fd int, objectID, objectType uint32) ([]drm.Property, error)
}

// Tracker classifies atomic-commit objects as cursor planes. Each object id
// is enumerated until a definitive answer is known, which is then cached.
type Tracker struct {
	props    PropertySource
	registry Registry
	known    *xsync.MapOf[uint32, bool]
}

func NewTracker(props PropertySource) *Tracker {
	return &Tracker{
		props: props,
		known: xsync.NewMapOf[uint32, bool](),
	}
}

// Lookup returns the registered plane for objectID.
func (t *Tracker) Lookup(objectID uint32) (Plane, bool) {
	return t.registry.Lookup(objectID)
}

// Len returns the number of registered planes.
func (t *Tracker) Len() int {
	return t.registry.Len()
}

// Classify reports whether objectID is a cursor plane, enumerating its
// properties on first sight. Without a known fd, or when the lookup fails
// for any reason other than the object not being a plane, nothing is cached
// and the object is retried on its next use.
func (t *Tracker) Classify(fd int, objectID uint32) bool {
	if _, ok := t.registry.Lookup(objectID); ok {
		return true
	}
	if v, ok := t.known.Load(objectID); ok {
		return v
	}
	if fd < 0 {
		return false
	}
	var isCursor bool
	t.known.Compute(objectID, func(old bool, loaded bool) (bool, bool) {
		if loaded {
			isCursor = old
			return old, false
		}
		var definitive bool
		isCursor, definitive = t.classify(fd, objectID)
		return isCursor, !definitive
	})
	return isCursor
}

// notAPlane reports whether a property lookup failed because the object is
// not a plane, as opposed to a failure worth retrying.
func notAPlane(err error) bool {
	return errors.Is(err, unix.ENOENT) || errors.Is(err, unix.EINVAL)
}

// classify enumerates objectID once. definitive is false when the answer
// must not be cached.
func (t *Tracker) classify(fd int, objectID uint32) (isCursor, definitive bool) {
	props, err := t.props.ObjectProperties(fd, objectID, drm.ObjectPlane)
	if err != nil {
		if notAPlane(err) {
			log.Debug().Err(err).Uint32("object", objectID).Msg("not a plane")
			return false, true
		}
		log.Debug().Err(err).Uint32("object", objectID).Msg("property lookup failed, will retry")
		return false, false
	}

	p := Plane{ID: objectID}
	for _, prop := range props {
		switch prop.Name {
		case drm.PropType:
			isCursor = prop.Value == drm.PlaneTypeCursor
		case drm.PropFBID:
			p.FBProp = prop.ID
		case drm.PropSrcW:
			p.SrcWProp = prop.ID
		case drm.PropSrcH:
			p.SrcHProp = prop.ID
		case drm.PropCrtcW:
			p.CrtcWProp = prop.ID
		case drm.PropCrtcH:
			p.CrtcHProp = prop.ID
		}
	}
	if !isCursor {
		return false, true
	}

	if _, ok := t.registry.Add(p); !ok {
		log.Debug().Uint32("plane", objectID).Int("capacity", Capacity).
			Msg("cursor plane registry full, plane left untouched")
		return true, true
	}
	log.Debug().
		Uint32("plane", objectID).
		Uint32("fb_prop", p.FBProp).
		Uint32("src_w_prop", p.SrcWProp).
		Uint32("crtc_w_prop", p.CrtcWProp).
		Msg("detected cursor plane")
	return true, true
}
