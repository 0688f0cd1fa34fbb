// Command cursorctl steers a running constellation cursor through its
// marker files and renders previews of cursor designs.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if err := NewRootCmd().Execute(); err != nil {
		log.Fatal().Err(err).Msg("cursorctl failed")
	}
}
