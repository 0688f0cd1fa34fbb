package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/constellation-cursor/constellation-cursor/pkg/design"
)

// Marker file names inside the signal directory.
const (
	TypeFile    = "constellation_cursor_type"
	ScaleFile   = "constellation_cursor_scale"
	RefreshFile = "constellation_cursor_refresh"
	CustomFile  = "constellation_cursor_custom"
	DisableFile = "constellation_cursor_disable"
)

// MaxScale bounds runtime scale signals.
const MaxScale = 10

// Signals reads the marker files other processes use to steer the cursor.
type Signals struct {
	dir string
}

func NewSignals(dir string) *Signals {
	if dir == "" {
		dir = os.TempDir()
	}
	return &Signals{dir: dir}
}

func (s *Signals) Dir() string {
	return s.dir
}

// Path returns the full path of a marker file.
func (s *Signals) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// Type reads the type marker. ok is false when the file is absent.
func (s *Signals) Type() (kind design.Kind, ok bool) {
	data, err := os.ReadFile(s.Path(TypeFile))
	if err != nil {
		return design.KindDefault, false
	}
	return design.ParseKind(string(data)), true
}

// Scale reads the scale marker. ok is false when the file is absent or its
// value is outside (0, MaxScale].
func (s *Signals) Scale() (float64, bool) {
	data, err := os.ReadFile(s.Path(ScaleFile))
	if err != nil {
		return 0, false
	}
	return ParseScale(string(data))
}

// CustomPresent reports whether a custom design has been installed.
func (s *Signals) CustomPresent() bool {
	_, err := os.Stat(s.Path(CustomFile))
	return err == nil
}

// ConsumeRefresh removes the refresh marker and reports whether it existed.
func (s *Signals) ConsumeRefresh() bool {
	return s.consume(RefreshFile)
}

// ConsumeDisable removes the disable marker and reports whether it existed.
func (s *Signals) ConsumeDisable() bool {
	return s.consume(DisableFile)
}

func (s *Signals) consume(name string) bool {
	err := os.Remove(s.Path(name))
	switch {
	case err == nil:
		return true
	case errors.Is(err, fs.ErrNotExist):
		return false
	}
	// present but not removable, e.g. owned by another user
	return s.exists(name)
}

func (s *Signals) exists(name string) bool {
	_, err := os.Stat(s.Path(name))
	return err == nil
}

// ParseScale parses a runtime scale, accepting values in (0, MaxScale].
func ParseScale(v string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || f <= 0 || f > MaxScale {
		return 0, false
	}
	return f, true
}
