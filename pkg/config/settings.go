package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/constellation-cursor/constellation-cursor/pkg/cursor"
	"github.com/constellation-cursor/constellation-cursor/pkg/render"
)

// Settings are the values of the user settings file.
type Settings struct {
	CursorScale      float64
	OutlineThickness float64
	FadeEnabled      bool
	FadeInEnabled    bool
	FadeSpeed        uint8
	FrostIntensity   int
	HotspotSmoothing bool
	HotspotThreshold int32
	ConfigPolling    bool
	PollInterval     int
}

// DefaultSettings apply when no settings file exists or a key is absent.
func DefaultSettings() Settings {
	return Settings{
		CursorScale:      1.5,
		FadeSpeed:        30,
		FrostIntensity:   100,
		HotspotSmoothing: true,
		HotspotThreshold: 5,
		ConfigPolling:    true,
		PollInterval:     50,
	}
}

// defaultFile is written when the settings file is missing.
const defaultFile = `# Constellation Cursor Config
# Edit this file to customize cursor behavior
#
# Changes are detected automatically when you save this file.
# To manually refresh use: touch /tmp/constellation_cursor_refresh

# Cursor size multiplier (default 1.5)
cursor_scale=1.5

# Outline thickness override (0 = use cursor default, 0.5-5.0 for custom)
# outline_thickness=0

# Fade out when the cursor hides
fade_enabled=false

# Fade in when the cursor appears
fade_in_enabled=false

# Fade speed (1-255, higher = faster fade)
fade_speed=30

# Frosted glass intensity (0-100)
frost_intensity=0

# Smooth hotspot transitions between cursor types
hotspot_smoothing=false

# Threshold for hotspot change detection (pixels)
hotspot_threshold=0

# Reload this file automatically when it changes.
# To re-enable after turning it off, set config_polling=true and run:
#   touch /tmp/constellation_cursor_refresh
config_polling=true

# Cursor calls between change checks when file events are unavailable
config_poll_interval=50
`

// DefaultFile returns the documented settings file.
func DefaultFile() []byte {
	return []byte(defaultFile)
}

// WriteDefault creates the settings file with documented defaults. It does
// not overwrite an existing file unless force is set.
func WriteDefault(path string, force bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}
	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if force {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(DefaultFile()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadSettings reads the settings file at path. A missing file is created
// with documented defaults and DefaultSettings are returned.
func LoadSettings(path string) (Settings, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		if werr := WriteDefault(path, false); werr != nil && !errors.Is(werr, fs.ErrExist) {
			log.Debug().Err(werr).Str("path", path).Msg("could not write default settings")
		}
		return DefaultSettings(), nil
	}
	if err != nil {
		return DefaultSettings(), err
	}
	defer f.Close()
	return ReadSettings(f)
}

// ReadSettings parses key=value lines with # comments on top of
// DefaultSettings. Unknown keys and unparsable values are ignored; values
// out of range are clamped.
func ReadSettings(r io.Reader) (Settings, error) {
	values, err := godotenv.Parse(r)
	if err != nil {
		return DefaultSettings(), fmt.Errorf("parse settings: %w", err)
	}
	return settingsFrom(values), nil
}

func settingsFrom(values map[string]string) Settings {
	s := DefaultSettings()
	for key, raw := range values {
		v := strings.TrimSpace(raw)
		switch key {
		case "cursor_scale":
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				s.CursorScale = clamp(f, 0.5, 10)
			}
		case "outline_thickness":
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				s.OutlineThickness = clamp(f, 0, 5)
			}
		case "fade_enabled":
			s.FadeEnabled = parseBool(v)
		case "fade_in_enabled":
			s.FadeInEnabled = parseBool(v)
		case "fade_speed":
			if n, err := strconv.ParseUint(v, 10, 32); err == nil {
				s.FadeSpeed = uint8(clamp(n, 1, 255))
			}
		case "frost_intensity":
			if n, err := strconv.ParseUint(v, 10, 32); err == nil {
				s.FrostIntensity = int(clamp(n, 0, 100))
			}
		case "hotspot_smoothing":
			s.HotspotSmoothing = parseBool(v)
		case "hotspot_threshold":
			if n, err := strconv.ParseInt(v, 10, 32); err == nil {
				s.HotspotThreshold = int32(clamp(n, 0, 50))
			}
		case "config_polling":
			s.ConfigPolling = parseBool(v)
		case "config_poll_interval":
			if n, err := strconv.ParseUint(v, 10, 32); err == nil {
				s.PollInterval = int(clamp(n, 1, 1000))
			}
		}
	}
	return s
}

// Cursor converts the fade and hotspot keys for the cursor controller.
func (s Settings) Cursor() cursor.Settings {
	return cursor.Settings{
		FadeOut:   s.FadeEnabled,
		FadeIn:    s.FadeInEnabled,
		FadeStep:  s.FadeSpeed,
		Smoothing: s.HotspotSmoothing,
		Threshold: s.HotspotThreshold,
	}
}

// RenderOptions converts the drawing keys for the renderer.
func (s Settings) RenderOptions() render.Options {
	return render.Options{
		FrostIntensity:   float64(s.FrostIntensity) / 100,
		OutlineThickness: s.OutlineThickness,
	}
}

func parseBool(v string) bool {
	return v == "true" || v == "1"
}

func clamp[T int64 | uint64 | float64](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
