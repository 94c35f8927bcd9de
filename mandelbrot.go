// Package mandelbrot implements a parallel escape-time renderer for the
// Mandelbrot set. A fixed pool of workers owns disjoint slices of an RGBA
// pixel buffer and recomputes the full image every frame from a shared
// viewport, synchronizing with a frame coordinator through a pair of
// cyclic barriers.
package mandelbrot

import "runtime"

// Fixed render parameters of the interactive viewer.
const (
	Width         = 640
	Height        = 480
	MaxIterations = 1000
)

// FallbackWorkers is used when the logical CPU count cannot be determined.
const FallbackWorkers = 8

// Workers returns the worker pool size: one worker per logical CPU.
func Workers() int {
	if n := runtime.NumCPU(); n >= 1 {
		return n
	}
	return FallbackWorkers
}

// Result is the outcome of iterating one plane point.
// Iterations is in [0, MaxIterations]; a non-escaped point reports
// MaxIterations.
type Result struct {
	Escaped    bool
	Iterations int
}

// Zoom is a discrete zoom tick from the input collaborator.
type Zoom int

const (
	ZoomNone Zoom = iota
	ZoomIn
	ZoomOut
)

// Input carries one frame's accumulated input deltas: held pan directions
// and at most one zoom tick.
type Input struct {
	Up    bool `json:"up"`
	Down  bool `json:"down"`
	Left  bool `json:"left"`
	Right bool `json:"right"`
	Zoom  Zoom `json:"zoom"`
}

// Viewport is the visible region of the plane: a center point and a zoom
// scale. The frame coordinator applies one Input per frame between worker
// passes; workers only ever read it, through Evaluators, during a pass.
type Viewport interface {
	// Apply folds one frame's input into the viewport. Pan moves the
	// center by scale*elapsed per held direction; a zoom tick multiplies
	// or divides the scale by 0.8.
	Apply(in Input, elapsed float64)

	// Scale reports the current zoom scale, rounded to float64 for
	// display purposes.
	Scale() float64

	// Evaluator returns a per-worker evaluator bound to this viewport
	// for a w×h pixel grid. Evaluators are not safe for concurrent use;
	// each worker gets its own.
	Evaluator(w, h int) Evaluator
}

// Evaluator iterates the quadratic recurrence z' = z² + c for single
// pixels, where c is derived from the pixel's buffer index and the bound
// viewport. Implementations choose the numeric representation (float64 or
// exact rationals) but satisfy the same contract.
type Evaluator interface {
	// Evaluate derives the plane point for buffer index i, iterates from
	// the standard (0,0) seed, and reports when |z|² first reaches 4.
	Evaluate(i int) Result
}
