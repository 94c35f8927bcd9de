// server hosts the interactive Mandelbrot viewer: it serves the browser
// client from ./static and streams rendered frames over a websocket,
// driving one render pool per connection from the client's pan/zoom
// input.
package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"

	mandelbrot "github.com/HomelikeBrick42/MandelbrotSet"
)

type options struct {
	port    int
	workers int
	exact   bool
	region  string
	palette string
}

func mainCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:  "server",
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return run(opts)
		},
	}

	cmd.Flags().IntVar(&opts.port, "port", 8080, "http listen port")
	cmd.Flags().IntVar(&opts.workers, "workers", mandelbrot.Workers(), "render workers per connection")
	cmd.Flags().BoolVar(&opts.exact, "exact", false, "use exact rational arithmetic instead of float64")
	cmd.Flags().StringVar(&opts.region, "region", "home", "starting region")
	cmd.Flags().StringVar(&opts.palette, "palette", "rainbow", "default color palette")

	return cmd
}

func main() {
	if err := mainCmd().Execute(); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func run(opts *options) error {
	view, ok := mandelbrot.LookupViewpoint(opts.region)
	if !ok {
		return fmt.Errorf("unknown region %q", opts.region)
	}
	if opts.workers < 1 {
		return fmt.Errorf("worker count must be positive, got %d", opts.workers)
	}

	srv := webServer(opts.port, sessionConfig{
		workers: opts.workers,
		exact:   opts.exact,
		view:    view,
		palette: opts.palette,
	})

	log.Printf("viewer listening on http://localhost:%d", opts.port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("httpServer: %w", err)
	}
	return nil
}
