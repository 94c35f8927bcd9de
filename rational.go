package mandelbrot

import (
	"fmt"
	"math/big"
)

// ratPrecisionBits caps the numerator/denominator size of the iterated z
// terms. big.Rat reduces every result to lowest terms, but squaring still
// doubles the term size each iteration, so an uncapped evaluation would
// exhaust memory within a few dozen iterations. Once a term exceeds the
// cap it is rounded to a nearby rational of bounded size; arithmetic is
// exact up to that point and ~4096-bit fixed precision beyond it, still
// far past anything float64 can resolve.
const ratPrecisionBits = 4096

// ratHardLimitBits is the sanity bound on term size. Crossing it means
// the precision cap failed to hold and the process aborts rather than
// exhausting memory.
const ratHardLimitBits = 16 * ratPrecisionBits

var (
	ratFour    = big.NewRat(4, 1)
	ratZoomIn  = big.NewRat(4, 5)
	ratZoomOut = big.NewRat(5, 4)
)

// RatViewport is the arbitrary-precision viewport variant: center and
// scale are exact rationals, so panning and zooming never accumulate
// round-off no matter how deep the zoom goes.
type RatViewport struct {
	scale, cx, cy *big.Rat
}

func NewRatViewport(scale, centerX, centerY float64) *RatViewport {
	return &RatViewport{
		scale: new(big.Rat).SetFloat64(scale),
		cx:    new(big.Rat).SetFloat64(centerX),
		cy:    new(big.Rat).SetFloat64(centerY),
	}
}

func (v *RatViewport) Apply(in Input, elapsed float64) {
	// Every float64 is an exact dyadic rational, so the conversion here
	// loses nothing.
	d := new(big.Rat).SetFloat64(elapsed)
	if d == nil {
		return
	}
	d.Mul(d, v.scale)
	if in.Up {
		v.cy.Add(v.cy, d)
	}
	if in.Down {
		v.cy.Sub(v.cy, d)
	}
	if in.Left {
		v.cx.Sub(v.cx, d)
	}
	if in.Right {
		v.cx.Add(v.cx, d)
	}
	switch in.Zoom {
	case ZoomIn:
		v.scale.Mul(v.scale, ratZoomIn)
	case ZoomOut:
		v.scale.Mul(v.scale, ratZoomOut)
	}
}

func (v *RatViewport) Scale() float64 {
	f, _ := v.scale.Float64()
	return f
}

// ScaleRat exposes the exact scale, for tests and diagnostics.
func (v *RatViewport) ScaleRat() *big.Rat { return v.scale }

func (v *RatViewport) Evaluator(w, h int) Evaluator {
	return &ratEvaluator{vp: v, w: w, h: h}
}

// ratEvaluator holds one worker's scratch space. Every temporary a step
// needs (squares, cross term, norm) is a preallocated field reused across
// iterations and pixels, so the per-pixel iteration allocates nothing
// beyond growth inside big.Int, and the early return on escape releases
// nothing because nothing was acquired.
type ratEvaluator struct {
	vp   *RatViewport
	w, h int

	cx, cy            big.Rat
	zx, zy            big.Rat
	zx2, zy2, norm, t big.Rat
	pixel, iteration  int
}

func (e *ratEvaluator) Evaluate(i int) Result {
	x, y := PixelCoords(i, e.w, e.h)

	// The [-1,1] plane mapping with x aspect correction reduces to
	// (2x-w)/h and (2y-h)/h exactly.
	e.cx.SetFrac64(int64(2*x-e.w), int64(e.h))
	e.cx.Mul(&e.cx, e.vp.scale)
	e.cx.Add(&e.cx, e.vp.cx)
	e.cy.SetFrac64(int64(2*y-e.h), int64(e.h))
	e.cy.Mul(&e.cy, e.vp.scale)
	e.cy.Add(&e.cy, e.vp.cy)

	// Standard Mandelbrot seed.
	e.zx.SetInt64(0)
	e.zy.SetInt64(0)

	e.pixel = i
	return e.escape()
}

// escape iterates z' = z² + c on the scratch fields until |z|² >= 4 or
// the iteration bound is hit.
func (e *ratEvaluator) escape() Result {
	for n := 0; n < MaxIterations; n++ {
		e.iteration = n
		e.zx2.Mul(&e.zx, &e.zx)
		e.zy2.Mul(&e.zy, &e.zy)
		e.norm.Add(&e.zx2, &e.zy2)
		if e.norm.Cmp(ratFour) >= 0 {
			return Result{Escaped: true, Iterations: n}
		}

		e.t.Mul(&e.zx, &e.zy)
		e.zx.Sub(&e.zx2, &e.zy2)
		e.zx.Add(&e.zx, &e.cx)
		e.zy.Add(&e.t, &e.t)
		e.zy.Add(&e.zy, &e.cy)

		e.limit(&e.zx)
		e.limit(&e.zy)
	}
	return Result{Iterations: MaxIterations}
}

// limit rounds r to a nearby rational whose numerator and denominator fit
// in ratPrecisionBits, keeping term growth bounded across iterations.
func (e *ratEvaluator) limit(r *big.Rat) {
	bits := r.Denom().BitLen()
	if n := r.Num().BitLen(); n > bits {
		bits = n
	}
	if bits <= ratPrecisionBits {
		return
	}
	if bits > ratHardLimitBits {
		panic(fmt.Sprintf("mandelbrot: rational term exploded to %d bits at pixel %d iteration %d",
			bits, e.pixel, e.iteration))
	}
	shift := uint(bits - ratPrecisionBits)
	num := new(big.Int).Rsh(r.Num(), shift)
	den := new(big.Int).Rsh(r.Denom(), shift)
	if den.Sign() == 0 {
		den.SetInt64(1)
	}
	r.SetFrac(num, den)
}
