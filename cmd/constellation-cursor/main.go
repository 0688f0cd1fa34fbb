// Command constellation-cursor is the preloadable shim. Build it as a
// shared object and load it into the compositor:
//
//	go build -buildmode=c-shared -o libconstellation_cursor.so ./cmd/constellation-cursor
//	LD_PRELOAD=./libconstellation_cursor.so YourCompositor
package main

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/constellation-cursor/constellation-cursor/pkg/config"
	"github.com/constellation-cursor/constellation-cursor/pkg/drm"
	"github.com/constellation-cursor/constellation-cursor/pkg/interpose"
	"github.com/constellation-cursor/constellation-cursor/pkg/symbols"
)

// resolver is shared by the context and by the panic fallbacks.
var resolver = symbols.NewResolver()

// instance is built on the first DRM call.
var instance = sync.OnceValue(func() *interpose.Context {
	env, err := config.LoadEnv()
	setupLogging(env)
	if err != nil {
		log.Warn().Err(err).Msg("ignoring invalid environment")
	}
	if env.Info {
		interpose.WriteBanner(os.Stderr)
	}
	return interpose.New(resolver, drm.SyscallDevice{}, env)
})

func logLevel(env config.Env) zerolog.Level {
	if env.Debug {
		return zerolog.DebugLevel
	}
	return zerolog.WarnLevel
}

func setupLogging(env config.Env) {
	zerolog.SetGlobalLevel(logLevel(env))
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Str("component", "constellation-cursor").Logger()
}

func main() {}
