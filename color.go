package mandelbrot

import (
	"image/color"
	"math"
)

// Map converts an iteration count to a color on a repeating six-segment
// rainbow ramp. Points that never escaped are black; otherwise the hue
// advances by 0.01 per iteration and wraps around the hue circle.
func Map(iterations int) color.RGBA {
	if iterations >= MaxIterations {
		return color.RGBA{A: 255}
	}
	hue := float64(iterations) * 0.01
	return color.RGBA{
		R: ramp(5, hue),
		G: ramp(3, hue),
		B: ramp(1, hue),
		A: 255,
	}
}

// ramp evaluates one triangular channel function. The three channels use
// phases 5, 3 and 1, i.e. 120° apart on the six-segment hue circle.
func ramp(phase, hue float64) uint8 {
	k := math.Mod(phase+hue*6, 6)
	v := 1 - clamp(math.Min(k, 4-k), 0, 1)
	return uint8(math.Round(clamp(v*255.999, 0, 255)))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
