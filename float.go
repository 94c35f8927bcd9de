package mandelbrot

// FloatViewport is the fixed-precision viewport variant: plain float64
// arithmetic, fast, but subject to round-off once the scale drops below
// roughly 1e-14.
type FloatViewport struct {
	scale  float64
	cx, cy float64
}

func NewFloatViewport(scale, centerX, centerY float64) *FloatViewport {
	return &FloatViewport{scale: scale, cx: centerX, cy: centerY}
}

func (v *FloatViewport) Apply(in Input, elapsed float64) {
	d := v.scale * elapsed
	if in.Up {
		v.cy += d
	}
	if in.Down {
		v.cy -= d
	}
	if in.Left {
		v.cx -= d
	}
	if in.Right {
		v.cx += d
	}
	switch in.Zoom {
	case ZoomIn:
		v.scale *= 0.8
	case ZoomOut:
		v.scale /= 0.8
	}
}

func (v *FloatViewport) Scale() float64 { return v.scale }

func (v *FloatViewport) Evaluator(w, h int) Evaluator {
	return &floatEvaluator{vp: v, w: w, h: h}
}

type floatEvaluator struct {
	vp   *FloatViewport
	w, h int
}

func (e *floatEvaluator) Evaluate(i int) Result {
	x, y := PixelCoords(i, e.w, e.h)
	px, py := PlanePoint(x, y, e.w, e.h)
	cx := px*e.vp.scale + e.vp.cx
	cy := py*e.vp.scale + e.vp.cy
	return escapeFloat(cx, cy, 0, 0)
}

// escapeFloat iterates z' = z² + c from z = (zx, zy) and reports the
// first n with |z_n|² >= 4. The test is inclusive, so a seed exactly on
// the escape radius reports iteration 0.
func escapeFloat(cx, cy, zx, zy float64) Result {
	for n := 0; n < MaxIterations; n++ {
		if zx*zx+zy*zy >= 4 {
			return Result{Escaped: true, Iterations: n}
		}
		tr := zx*zx - zy*zy + cx
		zy = 2*zx*zy + cy
		zx = tr
	}
	return Result{Iterations: MaxIterations}
}
