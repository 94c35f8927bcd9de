package mandelbrot

import (
	"image"
	"image/color"
)

// Buffer is a w×h RGBA pixel buffer, 4 bytes per pixel, row-major with
// the bottom row first (the order PixelCoords iterates in). It is owned
// by the pool's caller and lives for the whole run; workers write to
// disjoint index ranges of it.
type Buffer []uint8

func NewBuffer(w, h int) Buffer {
	return make(Buffer, w*h*4)
}

// Set writes the pixel at buffer index i.
func (b Buffer) Set(i int, c color.RGBA) {
	o := i * 4
	b[o+0] = c.R
	b[o+1] = c.G
	b[o+2] = c.B
	b[o+3] = c.A
}

// Image copies the buffer into a conventional top-row-first image.RGBA
// for presentation. Only call between frames, after the coordinator's
// end-barrier wait.
func (b Buffer) Image(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	row := w * 4
	for y := 0; y < h; y++ {
		src := (h - 1 - y) * row
		copy(img.Pix[y*img.Stride:y*img.Stride+row], b[src:src+row])
	}
	return img
}
