// Package config gathers everything that selects or tunes the cursor from
// outside the compositor: environment toggles, the settings file and the
// marker files in the signal directory.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every variable read by LoadEnv.
const EnvPrefix = "CONSTELLATION_CURSOR"

// Flag is a presence toggle: any value except "0" or "false" enables it,
// including the empty string.
type Flag bool

func (f *Flag) Decode(value string) error {
	v := strings.ToLower(strings.TrimSpace(value))
	*f = Flag(v != "0" && v != "false")
	return nil
}

// Env is read from CONSTELLATION_CURSOR_* variables. Fields carry no
// envconfig names so unprefixed variables such as DEBUG are never consulted.
type Env struct {
	Debug Flag
	Info  Flag
	Fade  Flag

	// Type and Scale take priority over the marker files.
	Type  string
	Scale string

	SignalDir string `split_words:"true" default:"/tmp"`
	// Config overrides the settings file location.
	Config string
}

func LoadEnv() (Env, error) {
	var env Env
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return Env{SignalDir: os.TempDir()}, err
	}
	return env, nil
}

// SettingsPath is the settings file location, or "" when neither an
// override nor a home directory is available.
func (e Env) SettingsPath() string {
	if e.Config != "" {
		return e.Config
	}
	home := os.Getenv("HOME")
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "constellation_cursor", "cursor.conf")
}
