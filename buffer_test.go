package mandelbrot

import (
	"image/color"
	"testing"
)

func TestBufferImageFlipsRows(t *testing.T) {
	b := NewBuffer(2, 2)
	b.Set(0, color.RGBA{R: 255, A: 255}) // bottom-left in core order
	b.Set(3, color.RGBA{B: 255, A: 255}) // top-right in core order

	img := b.Image(2, 2)
	if got := img.RGBAAt(0, 1); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("bottom-left pixel landed at %v, want red at (0,1)", got)
	}
	if got := img.RGBAAt(1, 0); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("top-right pixel landed at %v, want blue at (1,0)", got)
	}
}
