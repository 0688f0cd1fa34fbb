package main

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/constellation-cursor/constellation-cursor/pkg/config"
)

type rootOptions struct {
	signalDir string
	config    string
	debug     bool
}

// env returns the library's view of the environment with flag overrides.
func (o *rootOptions) env() config.Env {
	env, err := config.LoadEnv()
	if err != nil {
		log.Warn().Err(err).Msg("ignoring invalid environment")
	}
	if o.signalDir != "" {
		env.SignalDir = o.signalDir
	}
	if o.config != "" {
		env.Config = o.config
	}
	return env
}

func (o *rootOptions) signals() *config.Signals {
	return config.NewSignals(o.env().SignalDir)
}

func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:          "cursorctl",
		Short:        "Control the constellation cursor",
		Long:         `Switch cursor types, scale and custom designs of a compositor running with the constellation cursor preloaded, and render design previews.`,
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			_ = godotenv.Load()
			if opts.debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.signalDir, "signal-dir", "", "Marker file directory (env: CONSTELLATION_CURSOR_SIGNAL_DIR, default /tmp)")
	rootCmd.PersistentFlags().StringVar(&opts.config, "config", "", "Settings file (env: CONSTELLATION_CURSOR_CONFIG)")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Verbose logging")

	rootCmd.AddCommand(newTypeCmd(opts))
	rootCmd.AddCommand(newScaleCmd(opts))
	rootCmd.AddCommand(newRefreshCmd(opts))
	rootCmd.AddCommand(newCustomCmd(opts))
	rootCmd.AddCommand(newDisableCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newRenderCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}
