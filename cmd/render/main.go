// render is the offline renderer: it computes a single frame of the
// Mandelbrot set through the same worker pipeline the interactive viewer
// uses and saves it as a PNG file.
package main

import (
	"fmt"
	"image/png"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	mandelbrot "github.com/HomelikeBrick42/MandelbrotSet"
)

type options struct {
	width, height int
	workers       int
	zoomTicks     int
	exact         bool
	region        string
	palette       string
	centerX       float64
	centerY       float64
	scale         float64
	out           string
}

func mainCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:  "render",
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return run(opts)
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", mandelbrot.Width, "image width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", mandelbrot.Height, "image height in pixels")
	cmd.Flags().IntVar(&opts.workers, "workers", mandelbrot.Workers(), "render worker count")
	cmd.Flags().IntVar(&opts.zoomTicks, "zoom", 0, "zoom ticks to apply before rendering")
	cmd.Flags().BoolVar(&opts.exact, "exact", false, "use exact rational arithmetic instead of float64")
	cmd.Flags().StringVar(&opts.region, "region", "", "named starting region (seahorse, elephant, ...)")
	cmd.Flags().StringVar(&opts.palette, "palette", "rainbow", "color palette")
	cmd.Flags().Float64Var(&opts.centerX, "center-x", mandelbrot.Home.CenterX, "viewport center, real part")
	cmd.Flags().Float64Var(&opts.centerY, "center-y", mandelbrot.Home.CenterY, "viewport center, imaginary part")
	cmd.Flags().Float64Var(&opts.scale, "scale", mandelbrot.Home.Scale, "viewport scale")
	cmd.Flags().StringVar(&opts.out, "out", "mandel.png", "output file")

	return cmd
}

func main() {
	if err := mainCmd().Execute(); err != nil {
		log.Fatalf("render: %v", err)
	}
}

func run(opts *options) error {
	view := mandelbrot.Viewpoint{
		Name:    "custom",
		CenterX: opts.centerX,
		CenterY: opts.centerY,
		Scale:   opts.scale,
	}
	if opts.region != "" {
		named, ok := mandelbrot.LookupViewpoint(opts.region)
		if !ok {
			return fmt.Errorf("unknown region %q", opts.region)
		}
		view = named
	}
	if opts.workers < 1 {
		return fmt.Errorf("worker count must be positive, got %d", opts.workers)
	}

	vp := view.Viewport(opts.exact)
	buf := mandelbrot.NewBuffer(opts.width, opts.height)
	pool := mandelbrot.NewPool(vp, buf, opts.width, opts.height, opts.workers, mandelbrot.LookupPalette(opts.palette))
	defer pool.Close()

	// Zoom ticks arrive one per frame in the viewer; here they are all
	// applied up front, before the workers run their single pass.
	for i := 0; i < opts.zoomTicks; i++ {
		vp.Apply(mandelbrot.Input{Zoom: mandelbrot.ZoomIn}, 0)
	}

	startTime := time.Now()
	if err := pool.Frame(mandelbrot.Input{}, 0); err != nil {
		return fmt.Errorf("render frame: %w", err)
	}
	log.Printf("rendered %dx%d at scale %g with %d workers in %s",
		opts.width, opts.height, vp.Scale(), opts.workers, time.Since(startTime))

	f, err := os.Create(opts.out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, buf.Image(opts.width, opts.height)); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}

	log.Printf("rendered image saved to %q", opts.out)
	return nil
}
