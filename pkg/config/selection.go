package config

import (
	"github.com/rs/zerolog/log"

	"github.com/constellation-cursor/constellation-cursor/pkg/cursor"
	"github.com/constellation-cursor/constellation-cursor/pkg/design"
	"github.com/constellation-cursor/constellation-cursor/pkg/render"
)

// Selection combines the environment, the marker files and the settings
// store into the values the renderer and controller consume.
type Selection struct {
	env     Env
	signals *Signals
	store   *Store
}

var _ render.Source = (*Selection)(nil)

func NewSelection(env Env, signals *Signals, store *Store) *Selection {
	return &Selection{env: env, signals: signals, store: store}
}

// Kind resolves the cursor type. An installed custom design wins, then the
// TYPE variable, then the type marker file.
func (s *Selection) Kind() design.Kind {
	if s.signals.CustomPresent() {
		return design.KindCustom
	}
	if s.env.Type != "" {
		return design.ParseKind(s.env.Type)
	}
	if k, ok := s.signals.Type(); ok {
		return k
	}
	return design.KindDefault
}

// Scale resolves the runtime scale: SCALE variable, scale marker file,
// then the settings file.
func (s *Selection) Scale() float64 {
	if s.env.Scale != "" {
		if v, ok := ParseScale(s.env.Scale); ok {
			return v
		}
		log.Debug().Str("scale", s.env.Scale).Msg("ignoring out of range scale variable")
	}
	if v, ok := s.signals.Scale(); ok {
		return v
	}
	return s.store.Settings().CursorScale
}

// Custom loads the installed custom design.
func (s *Selection) Custom() (*design.Design, error) {
	return design.Load(s.signals.Path(CustomFile))
}

func (s *Selection) Options() render.Options {
	return s.store.Settings().RenderOptions()
}

// Cursor returns the controller settings. The FADE variable forces
// fade-out on regardless of the file.
func (s *Selection) Cursor() cursor.Settings {
	c := s.store.Settings().Cursor()
	if s.env.Fade {
		c.FadeOut = true
	}
	return c
}
