package main

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	xdraw "golang.org/x/image/draw"

	"github.com/constellation-cursor/constellation-cursor/pkg/config"
	"github.com/constellation-cursor/constellation-cursor/pkg/design"
	"github.com/constellation-cursor/constellation-cursor/pkg/raster"
	"github.com/constellation-cursor/constellation-cursor/pkg/render"
	"github.com/constellation-cursor/constellation-cursor/pkg/surface"
)

type renderOptions struct {
	output     string
	zoom       int
	kind       string
	scale      float64
	designFile string
	full       bool
	smooth     bool
}

func newRenderCmd(opts *rootOptions) *cobra.Command {
	ro := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a cursor design to PNG",
		Long: `Render the cursor the way the library would and write it as a PNG.
Without --type or --design the current selection (environment, marker files
and settings) is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, opts, ro)
		},
	}
	cmd.Flags().StringVarP(&ro.output, "output", "o", "cursor.png", "Output PNG file")
	cmd.Flags().IntVar(&ro.zoom, "zoom", 4, "Integer upscale factor")
	cmd.Flags().StringVar(&ro.kind, "type", "", "Built-in cursor type to render")
	cmd.Flags().Float64Var(&ro.scale, "scale", 0, "Cursor scale (default: current selection)")
	cmd.Flags().StringVar(&ro.designFile, "design", "", "Design file to render instead of the selection")
	cmd.Flags().BoolVar(&ro.full, "full", false, "Render the whole buffer, not just the displayed region")
	cmd.Flags().BoolVar(&ro.smooth, "smooth", false, "Use Catmull-Rom instead of nearest-neighbour scaling")
	return cmd
}

func runRender(cmd *cobra.Command, opts *rootOptions, ro *renderOptions) error {
	if ro.zoom < 1 || ro.zoom > 32 {
		return fmt.Errorf("zoom must be between 1 and 32, got %d", ro.zoom)
	}
	if ro.scale < 0 || ro.scale > config.MaxScale {
		return fmt.Errorf("scale must be in (0, %d]", config.MaxScale)
	}

	env := opts.env()
	store, err := loadStore(env.SettingsPath())
	if err != nil {
		return err
	}
	sel := config.NewSelection(env, config.NewSignals(env.SignalDir), store)

	d, err := pickDesign(sel, ro)
	if err != nil {
		return err
	}
	scale := ro.scale
	if scale == 0 {
		scale = sel.Scale()
	}

	canvas := raster.NewCanvas(surface.BufferSize, surface.BufferSize)
	hot := render.Draw(canvas, d, scale, sel.Options())

	img := canvas.Image()
	src := image.Rect(0, 0, surface.DisplaySize, surface.DisplaySize)
	if ro.full {
		src = img.Bounds()
	}
	out := scaleImage(img, src, ro.zoom, ro.smooth)

	if err := writePNG(ro.output, out); err != nil {
		return err
	}
	fi, err := os.Stat(ro.output)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: %dx%d (x%d), %s, hotspot %d,%d\n",
		ro.output, src.Dx(), src.Dy(), ro.zoom, humanize.IBytes(uint64(fi.Size())), hot.X, hot.Y)
	return nil
}

func pickDesign(sel *config.Selection, ro *renderOptions) (*design.Design, error) {
	if ro.designFile != "" {
		return design.Load(ro.designFile)
	}
	if ro.kind != "" {
		kind, ok := design.LookupKind(ro.kind)
		if !ok {
			return nil, fmt.Errorf("unknown cursor type %q", ro.kind)
		}
		if kind == design.KindCustom {
			return sel.Custom()
		}
		return design.Builtin(kind), nil
	}
	return render.New(sel).Active(), nil
}

func scaleImage(img *image.NRGBA, src image.Rectangle, zoom int, smooth bool) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, src.Dx()*zoom, src.Dy()*zoom))
	var interp xdraw.Interpolator = xdraw.NearestNeighbor
	if smooth {
		interp = xdraw.CatmullRom
	}
	interp.Scale(dst, dst.Bounds(), img, src, xdraw.Src, nil)
	return dst
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
