package mandelbrot

import (
	"math"
	"testing"
)

func TestPixelCoordsRoundTrip(t *testing.T) {
	grids := []struct{ w, h int }{
		{8, 6},
		{640, 480},
		{7, 5},
		{1, 1},
	}
	for _, g := range grids {
		for i := 0; i < g.w*g.h; i++ {
			x, y := PixelCoords(i, g.w, g.h)
			if x < 0 || x >= g.w || y < 0 || y >= g.h {
				t.Fatalf("grid %dx%d index %d: coords (%d,%d) out of range", g.w, g.h, i, x, y)
			}
			if got := PixelIndex(x, y, g.w, g.h); got != i {
				t.Fatalf("grid %dx%d: index %d -> (%d,%d) -> %d", g.w, g.h, i, x, y, got)
			}
		}
	}
}

func TestPixelCoordsBottomUp(t *testing.T) {
	// Buffer index 0 is the bottom-left pixel; the last index is the
	// top-right one.
	if x, y := PixelCoords(0, 640, 480); x != 0 || y != 479 {
		t.Errorf("index 0 = (%d,%d), want (0,479)", x, y)
	}
	if x, y := PixelCoords(640*480-1, 640, 480); x != 639 || y != 0 {
		t.Errorf("last index = (%d,%d), want (639,0)", x, y)
	}
}

func TestPlanePoint(t *testing.T) {
	tests := []struct {
		name   string
		x, y   int
		w, h   int
		px, py float64
	}{
		{"bottom left", 0, 0, 640, 480, -4.0 / 3.0, -1},
		{"center-ish", 320, 240, 640, 480, 0, 0},
		{"aspect only on x", 640, 480, 640, 480, 4.0 / 3.0, 1},
		{"square", 0, 50, 100, 100, -1, 0},
	}
	for _, tt := range tests {
		px, py := PlanePoint(tt.x, tt.y, tt.w, tt.h)
		if math.Abs(px-tt.px) > 1e-12 || math.Abs(py-tt.py) > 1e-12 {
			t.Errorf("%s: PlanePoint(%d,%d) = (%g,%g), want (%g,%g)",
				tt.name, tt.x, tt.y, px, py, tt.px, tt.py)
		}
	}
}

func TestPartitions(t *testing.T) {
	tests := []struct {
		total, n int
	}{
		{640 * 480, 1},
		{640 * 480, 8},
		{640 * 480, 7}, // remainder folded into last span
		{100, 3},
		{5, 5},
		{3, 4}, // more workers than pixels
	}
	for _, tt := range tests {
		spans := Partitions(tt.total, tt.n)
		if len(spans) != tt.n {
			t.Fatalf("Partitions(%d,%d): got %d spans", tt.total, tt.n, len(spans))
		}
		next := 0
		for i, s := range spans {
			if s.Start != next {
				t.Fatalf("Partitions(%d,%d): span %d starts at %d, want %d (gap or overlap)",
					tt.total, tt.n, i, s.Start, next)
			}
			if s.End < s.Start {
				t.Fatalf("Partitions(%d,%d): span %d is inverted: %+v", tt.total, tt.n, i, s)
			}
			next = s.End
		}
		if next != tt.total {
			t.Fatalf("Partitions(%d,%d): spans cover [0,%d), want [0,%d)", tt.total, tt.n, next, tt.total)
		}
	}
}
