package cursor

// State is the visibility state of the cursor.
type State int

const (
	Hidden State = iota
	Visible
	FadingOut
	FadingIn
)

func (s State) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Visible:
		return "visible"
	case FadingOut:
		return "fading-out"
	case FadingIn:
		return "fading-in"
	}
	return "unknown"
}

// Fading reports whether an animation owns the alpha.
func (s State) Fading() bool {
	return s == FadingOut || s == FadingIn
}

// Settings are the fade and hotspot knobs, re-read on every event so that
// configuration reloads apply immediately.
type Settings struct {
	FadeOut bool
	FadeIn  bool
	// FadeStep is the alpha change per step, 1..255.
	FadeStep uint8
	// Smoothing damps hotspot jumps larger than Threshold pixels.
	Smoothing bool
	Threshold int32
}

// DefaultSettings has fades off and smoothing on.
func DefaultSettings() Settings {
	return Settings{FadeStep: 30, Smoothing: true, Threshold: 5}
}
