package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/constellation-cursor/constellation-cursor/pkg/config"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the settings file",
	}
	cmd.AddCommand(newConfigInitCmd(opts))
	cmd.AddCommand(newConfigShowCmd(opts))
	return cmd
}

func settingsPath(opts *rootOptions) (string, error) {
	path := opts.env().SettingsPath()
	if path == "" {
		return "", errors.New("no settings path: set HOME, CONSTELLATION_CURSOR_CONFIG or --config")
	}
	return path, nil
}

// loadStore reads the settings without creating a missing file.
func loadStore(path string) (*config.Store, error) {
	store := config.NewStore(path)
	if path == "" {
		return store, nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return store, nil
	}
	return store, store.Load()
}

func newConfigInitCmd(opts *rootOptions) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the settings file with documented defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := settingsPath(opts)
			if err != nil {
				return err
			}
			if err := config.WriteDefault(path, force); err != nil {
				if errors.Is(err, fs.ErrExist) {
					return fmt.Errorf("%s already exists, use --force to overwrite", path)
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}

func newConfigShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := settingsPath(opts)
			if err != nil {
				return err
			}
			store, err := loadStore(path)
			if err != nil {
				return err
			}
			s := store.Settings()
			env := opts.env()
			sel := config.NewSelection(env, config.NewSignals(env.SignalDir), store)

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "settings file:        %s\n", path)
			fmt.Fprintf(w, "signal dir:           %s\n", env.SignalDir)
			fmt.Fprintf(w, "cursor type:          %s\n", sel.Kind())
			fmt.Fprintf(w, "cursor scale:         %g\n", sel.Scale())
			fmt.Fprintf(w, "outline thickness:    %g\n", s.OutlineThickness)
			fmt.Fprintf(w, "fade out:             %t\n", sel.Cursor().FadeOut)
			fmt.Fprintf(w, "fade in:              %t\n", s.FadeInEnabled)
			fmt.Fprintf(w, "fade speed:           %d\n", s.FadeSpeed)
			fmt.Fprintf(w, "frost intensity:      %d\n", s.FrostIntensity)
			fmt.Fprintf(w, "hotspot smoothing:    %t (threshold %d)\n", s.HotspotSmoothing, s.HotspotThreshold)
			fmt.Fprintf(w, "config polling:       %t (every %d calls)\n", s.ConfigPolling, s.PollInterval)
			return nil
		},
	}
}
