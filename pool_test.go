package mandelbrot

import (
	"bytes"
	"math"
	"testing"
)

// renderOnce runs one frame through a fresh pool and returns the buffer.
func renderOnce(t *testing.T, view Viewpoint, exact bool, w, h, workers int) Buffer {
	t.Helper()
	buf := NewBuffer(w, h)
	pool := NewPool(view.Viewport(exact), buf, w, h, workers, Map)
	defer pool.Close()
	if err := pool.Frame(Input{}, 0); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	return buf
}

func TestFrameIdenticalAcrossWorkerCounts(t *testing.T) {
	const w, h = 64, 48
	single := renderOnce(t, Home, false, w, h, 1)
	for _, workers := range []int{2, 7, 8} {
		got := renderOnce(t, Home, false, w, h, workers)
		if !bytes.Equal(single, got) {
			t.Errorf("%d workers produced a different frame than 1 worker", workers)
		}
	}
}

func TestFrameIdenticalAcrossWorkerCountsRational(t *testing.T) {
	if testing.Short() {
		t.Skip("rational evaluation of a full grid is slow")
	}
	const w, h = 8, 6
	single := renderOnce(t, Home, true, w, h, 1)
	if got := renderOnce(t, Home, true, w, h, 3); !bytes.Equal(single, got) {
		t.Error("rational variant is not deterministic across worker counts")
	}
}

func TestZoomSequence(t *testing.T) {
	const w, h = 8, 6
	buf := NewBuffer(w, h)
	vp := Home.Viewport(false)
	pool := NewPool(vp, buf, w, h, 2, Map)
	defer pool.Close()

	for i := 0; i < 3; i++ {
		if err := pool.Frame(Input{Zoom: ZoomIn}, 0); err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
	}
	want := 1.5 * 0.8 * 0.8 * 0.8
	if got := vp.Scale(); math.Abs(got-want) > 1e-12 {
		t.Errorf("scale after three zoom-in frames = %g, want %g", got, want)
	}
}

func TestPanMovesCenter(t *testing.T) {
	vp := NewFloatViewport(1.5, 0, 0)
	vp.Apply(Input{Up: true, Right: true}, 0.5)
	if vp.cx != 0.75 || vp.cy != 0.75 {
		t.Errorf("center after pan = (%g,%g), want (0.75,0.75)", vp.cx, vp.cy)
	}
	vp.Apply(Input{Down: true, Left: true}, 0.5)
	if vp.cx != 0 || vp.cy != 0 {
		t.Errorf("opposite pan did not return to origin: (%g,%g)", vp.cx, vp.cy)
	}
}

// Close must unblock workers parked on the start barrier; a hang here
// fails the test by timeout.
func TestCloseReleasesWorkers(t *testing.T) {
	buf := NewBuffer(8, 6)
	pool := NewPool(Home.Viewport(false), buf, 8, 6, 4, Map)
	if err := pool.Frame(Input{}, 0); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	pool.Close()
}

func TestFrameWritesEveryPixel(t *testing.T) {
	const w, h = 16, 12
	buf := renderOnce(t, Home, false, w, h, 5)
	for i := 0; i < w*h; i++ {
		if buf[i*4+3] != 255 {
			t.Fatalf("pixel %d has alpha %d, want 255 (unwritten?)", i, buf[i*4+3])
		}
	}
}
