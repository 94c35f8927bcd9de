package mandelbrot

import (
	"context"
	"fmt"
	"sync"

	"github.com/marusama/cyclicbarrier"
)

// Pool is a fixed set of render workers plus the frame coordinator state.
// Workers are started once and live until Close; each owns one static
// Span of the buffer and re-renders it every frame. All synchronization
// goes through two reusable barriers of workers+1 parties: the start
// barrier releases a pass, the end barrier marks the buffer consistent.
// No worker can begin frame n+1 before the coordinator has passed frame
// n's end barrier and applied the next frame's input, because the
// coordinator is a mandatory party at both barriers.
type Pool struct {
	vp      Viewport
	buf     Buffer
	palette Palette

	start cyclicbarrier.CyclicBarrier
	end   cyclicbarrier.CyclicBarrier

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPool partitions a w×h buffer across workers goroutines and starts
// them. The workers park on the start barrier until the first Frame call.
func NewPool(vp Viewport, buf Buffer, w, h, workers int, palette Palette) *Pool {
	if palette == nil {
		palette = Map
	}
	ctx, cancel := context.WithCancel(context.Background())
	p := &Pool{
		vp:      vp,
		buf:     buf,
		palette: palette,
		start:   cyclicbarrier.New(workers + 1),
		end:     cyclicbarrier.New(workers + 1),
		ctx:     ctx,
		cancel:  cancel,
	}
	for _, span := range Partitions(w*h, workers) {
		p.wg.Add(1)
		go p.worker(span, vp.Evaluator(w, h))
	}
	return p
}

// Frame renders one frame: the coordinator applies the frame's input to
// the viewport, releases the workers, and blocks until every partition is
// written. On return the buffer is a complete, consistent frame. The
// viewport is never touched while workers run.
func (p *Pool) Frame(in Input, elapsed float64) error {
	p.vp.Apply(in, elapsed)
	if err := p.start.Await(p.ctx); err != nil {
		return fmt.Errorf("start barrier: %w", err)
	}
	if err := p.end.Await(p.ctx); err != nil {
		return fmt.Errorf("end barrier: %w", err)
	}
	return nil
}

// SetPalette swaps the color palette for subsequent frames. Like
// viewport input, it must only be called between Frame calls; the
// barriers order the write against worker reads.
func (p *Pool) SetPalette(pal Palette) {
	if pal != nil {
		p.palette = pal
	}
}

// Close stops the workers and waits for them to return. The pool cannot
// render after Close.
func (p *Pool) Close() {
	p.cancel()
	p.wg.Wait()
}

func (p *Pool) worker(span Span, eval Evaluator) {
	defer p.wg.Done()
	for {
		if err := p.start.Await(p.ctx); err != nil {
			return
		}
		for i := span.Start; i < span.End; i++ {
			p.buf.Set(i, p.palette(eval.Evaluate(i).Iterations))
		}
		if err := p.end.Await(p.ctx); err != nil {
			return
		}
	}
}
