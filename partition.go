package mandelbrot

// Span is one worker's half-open slice [Start, End) of pixel buffer
// indices, assigned at startup and never reassigned.
type Span struct {
	Start, End int
}

// Partitions splits [0, total) into n contiguous spans of total/n pixels
// each, folding the remainder into the last span. The spans are disjoint
// and cover the range with no gaps, which is what makes concurrent buffer
// writes race-free without locks.
func Partitions(total, n int) []Span {
	if n < 1 {
		panic("partition count must be positive")
	}
	size := total / n
	spans := make([]Span, n)
	for i := range spans {
		spans[i] = Span{Start: i * size, End: (i + 1) * size}
	}
	spans[n-1].End = total
	return spans
}

// PixelCoords maps a buffer index to screen coordinates on a w×h grid.
// Rows are stored bottom-up: buffer index 0 lands on the bottom row, so
// the vertical axis is inverted here. This determines on-screen
// orientation and must match the presentation-side row flip.
func PixelCoords(i, w, h int) (x, y int) {
	x = i % w
	y = (w*h - i - 1) / w
	return x, y
}

// PixelIndex is the inverse of PixelCoords.
func PixelIndex(x, y, w, h int) int {
	return (h-1-y)*w + x
}

// PlanePoint maps screen coordinates to viewport-relative plane
// coordinates in [-1, 1], with aspect correction applied to the x axis
// only. The complex sample for a pixel is plane*scale + center.
func PlanePoint(x, y, w, h int) (px, py float64) {
	px = (float64(x)/float64(w)*2 - 1) * (float64(w) / float64(h))
	py = float64(y)/float64(h)*2 - 1
	return px, py
}
