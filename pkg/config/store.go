package config

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc"
)

// Store holds the current settings snapshot and notices when the file
// changes. Readers never block: the snapshot is swapped atomically.
type Store struct {
	path string

	current atomic.Pointer[Settings]
	mtime   atomic.Int64
	dirty   atomic.Bool
	calls   atomic.Uint64

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	wg      conc.WaitGroup
}

// NewStore returns a Store for path holding DefaultSettings until Load.
// An empty path never loads anything.
func NewStore(path string) *Store {
	s := &Store{path: path}
	def := DefaultSettings()
	s.current.Store(&def)
	return s
}

func (s *Store) Path() string {
	return s.path
}

// Settings returns the current snapshot.
func (s *Store) Settings() Settings {
	return *s.current.Load()
}

// Load reads the file, creating it when missing. On error the previous
// snapshot stays in place.
func (s *Store) Load() error {
	if s.path == "" {
		return nil
	}
	settings, err := LoadSettings(s.path)
	if err != nil {
		return err
	}
	s.current.Store(&settings)
	s.mtime.Store(s.modTime())
	log.Debug().
		Str("path", s.path).
		Float64("scale", settings.CursorScale).
		Bool("fade", settings.FadeEnabled).
		Bool("fade_in", settings.FadeInEnabled).
		Uint8("fade_speed", settings.FadeSpeed).
		Msg("loaded settings")
	return nil
}

// Watch starts a file watcher that marks the settings dirty on change. The
// parent directory is watched so editors that replace the file are seen.
func (s *Store) Watch() error {
	if s.path == "" {
		return nil
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(s.path)); err != nil {
		w.Close()
		return err
	}

	s.mu.Lock()
	s.watcher = w
	s.mu.Unlock()

	name := filepath.Clean(s.path)
	s.wg.Go(func() {
		for {
			select {
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) == name && event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					s.dirty.Store(true)
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Debug().Err(err).Msg("settings watcher error")
			}
		}
	})
	return nil
}

func (s *Store) watching() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.watcher != nil
}

// Close stops the watcher.
func (s *Store) Close() error {
	s.mu.Lock()
	w := s.watcher
	s.watcher = nil
	s.mu.Unlock()
	if w == nil {
		return nil
	}
	err := w.Close()
	s.wg.Wait()
	return err
}

// CheckChanged is called on hot paths. It reloads the file when the watcher
// saw a change or, without a watcher, when every PollInterval-th call finds
// a newer modification time. It reports whether a reload happened.
// Disabling config_polling turns both off until an explicit Load.
func (s *Store) CheckChanged() bool {
	settings := s.Settings()
	if !settings.ConfigPolling || s.path == "" {
		return false
	}

	if s.watching() {
		if !s.dirty.Swap(false) {
			return false
		}
		return s.reload()
	}

	n := s.calls.Add(1) - 1
	if n%uint64(max(settings.PollInterval, 1)) != 0 {
		return false
	}
	last := s.mtime.Load()
	if last == 0 || s.modTime() <= last {
		return false
	}
	return s.reload()
}

func (s *Store) reload() bool {
	log.Debug().Str("path", s.path).Msg("settings changed, reloading")
	if err := s.Load(); err != nil {
		log.Debug().Err(err).Msg("settings reload failed")
		return false
	}
	return true
}

func (s *Store) modTime() int64 {
	fi, err := os.Stat(s.path)
	if err != nil {
		return 0
	}
	return fi.ModTime().UnixNano()
}
