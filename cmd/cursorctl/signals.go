package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/constellation-cursor/constellation-cursor/pkg/config"
	"github.com/constellation-cursor/constellation-cursor/pkg/design"
)

// writeAtomic replaces path so the library never reads a partial file.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func touch(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return err
	}
	return f.Close()
}

func requestRefresh(sig *config.Signals) error {
	path := sig.Path(config.RefreshFile)
	if err := touch(path); err != nil {
		return fmt.Errorf("failed to request refresh: %w", err)
	}
	log.Debug().Str("path", path).Msg("refresh requested")
	return nil
}

func addRefreshFlag(cmd *cobra.Command, refresh *bool) {
	cmd.Flags().BoolVar(refresh, "refresh", true, "Ask the running cursor to re-render")
}

func newTypeCmd(opts *rootOptions) *cobra.Command {
	var refresh bool
	cmd := &cobra.Command{
		Use:   "type <name>",
		Short: "Select the cursor type",
		Long:  "Select a built-in cursor type. Known types: " + strings.Join(design.KindNames(), ", ") + ".",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, ok := design.LookupKind(args[0])
			if !ok {
				return fmt.Errorf("unknown cursor type %q", args[0])
			}
			sig := opts.signals()
			if err := writeAtomic(sig.Path(config.TypeFile), []byte(kind.String()+"\n")); err != nil {
				return fmt.Errorf("failed to write cursor type: %w", err)
			}
			if sig.CustomPresent() && kind != design.KindCustom {
				fmt.Fprintln(cmd.ErrOrStderr(), "note: a custom design is installed and takes priority; remove it with 'cursorctl custom --clear'")
			}
			if refresh {
				return requestRefresh(sig)
			}
			return nil
		},
	}
	addRefreshFlag(cmd, &refresh)
	return cmd
}

func newScaleCmd(opts *rootOptions) *cobra.Command {
	var refresh bool
	cmd := &cobra.Command{
		Use:   "scale <factor>",
		Short: "Set the cursor scale",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			scale, ok := config.ParseScale(args[0])
			if !ok {
				return fmt.Errorf("scale must be a number in (0, %d], got %q", config.MaxScale, args[0])
			}
			sig := opts.signals()
			value := strconv.FormatFloat(scale, 'f', -1, 64)
			if err := writeAtomic(sig.Path(config.ScaleFile), []byte(value+"\n")); err != nil {
				return fmt.Errorf("failed to write cursor scale: %w", err)
			}
			if refresh {
				return requestRefresh(sig)
			}
			return nil
		},
	}
	addRefreshFlag(cmd, &refresh)
	return cmd
}

func newRefreshCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Reload settings and re-render the cursor",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return requestRefresh(opts.signals())
		},
	}
}

func newCustomCmd(opts *rootOptions) *cobra.Command {
	var clearDesign, refresh bool
	cmd := &cobra.Command{
		Use:   "custom [file]",
		Short: "Install or remove a custom cursor design",
		Long: `Install a custom cursor design. The file is validated before it is
installed; while installed it takes priority over the selected type.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sig := opts.signals()
			target := sig.Path(config.CustomFile)

			switch {
			case clearDesign:
				if err := os.Remove(target); err != nil && !errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("failed to remove custom design: %w", err)
				}
			case len(args) == 1:
				data, err := os.ReadFile(args[0])
				if err != nil {
					return err
				}
				d, err := design.Parse(data)
				if err != nil {
					return fmt.Errorf("invalid design %s: %w", args[0], err)
				}
				if err := writeAtomic(target, data); err != nil {
					return fmt.Errorf("failed to install custom design: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "installed %s (%d layers)\n", args[0], len(d.Layers))
			default:
				return errors.New("either a design file or --clear is required")
			}
			if refresh {
				return requestRefresh(sig)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&clearDesign, "clear", false, "Remove the installed custom design")
	addRefreshFlag(cmd, &refresh)
	return cmd
}

func newDisableCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "disable",
		Short: "Release the cursor buffer and stop intercepting cursor calls",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return touch(opts.signals().Path(config.DisableFile))
		},
	}
}
