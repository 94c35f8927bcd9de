package main

import (
	"context"
	"fmt"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	mandelbrot "github.com/HomelikeBrick42/MandelbrotSet"
)

type sessionConfig struct {
	workers int
	exact   bool
	view    mandelbrot.Viewpoint
	palette string
}

// frameRequest is one frame's worth of client input: held pan keys, an
// optional zoom tick, and the wall-clock seconds since the client's
// previous frame.
type frameRequest struct {
	Input   mandelbrot.Input `json:"input"`
	Elapsed float64          `json:"elapsed"`
	Palette string           `json:"palette,omitempty"`
}

// session ties one websocket connection to one render pool. The client
// paces the loop: it sends a frameRequest, the session renders exactly
// one frame and replies with the raw RGBA bytes, top row first.
type session struct {
	cfg  sessionConfig
	buf  mandelbrot.Buffer
	pool *mandelbrot.Pool
}

func newSession(cfg sessionConfig) *session {
	buf := mandelbrot.NewBuffer(mandelbrot.Width, mandelbrot.Height)
	vp := cfg.view.Viewport(cfg.exact)
	pool := mandelbrot.NewPool(vp, buf, mandelbrot.Width, mandelbrot.Height, cfg.workers, mandelbrot.LookupPalette(cfg.palette))
	return &session{cfg: cfg, buf: buf, pool: pool}
}

func (s *session) close() {
	s.pool.Close()
}

func (s *session) serve(ctx context.Context, c *websocket.Conn) error {
	for {
		var req frameRequest
		if err := wsjson.Read(ctx, c, &req); err != nil {
			return fmt.Errorf("read frame request: %w", err)
		}

		if pal, ok := mandelbrot.Palettes[req.Palette]; ok {
			s.pool.SetPalette(pal)
		}
		if err := s.pool.Frame(req.Input, req.Elapsed); err != nil {
			return fmt.Errorf("render frame: %w", err)
		}

		img := s.buf.Image(mandelbrot.Width, mandelbrot.Height)
		if err := c.Write(ctx, websocket.MessageBinary, img.Pix); err != nil {
			return fmt.Errorf("write frame: %w", err)
		}
	}
}
