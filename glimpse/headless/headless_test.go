package headless

import (
	"testing"
)

func TestElementSize(t *testing.T) {
	h := New("#canvas", 800.5, 600.25)

	w, hh := h.ElementSize("#canvas")
	if w != 800.5 || hh != 600.25 {
		t.Errorf("ElementSize(#canvas) = (%v, %v), expected (800.5, 600.25)", w, hh)
	}

	w, hh = h.ElementSize("#other")
	if w != 0 || hh != 0 {
		t.Errorf("ElementSize(#other) = (%v, %v), expected (0, 0)", w, hh)
	}

	h.Remove()

	w, hh = h.ElementSize("#canvas")
	if w != 0 || hh != 0 {
		t.Errorf("ElementSize after Remove = (%v, %v), expected (0, 0)", w, hh)
	}
}

func TestResizeDispatchOrder(t *testing.T) {
	h := New("#canvas", 0, 0)

	var trace []string
	h.OnResize(func() bool {
		trace = append(trace, "first")
		return false
	})

	h.OnResize(func() bool {
		trace = append(trace, "second")
		return false
	})

	h.SetSize(10, 10)
	if len(trace) != 0 {
		t.Fatalf("SetSize should not raise an event, got %v", trace)
	}

	h.Resize(640, 480)

	if len(trace) != 2 || trace[0] != "first" || trace[1] != "second" {
		t.Errorf("handlers called as %v, expected [first second]", trace)
	}

	if w, hh := h.ElementSize("#canvas"); w != 640 || hh != 480 {
		t.Errorf("ElementSize = (%v, %v), expected (640, 480)", w, hh)
	}
}

func TestMainLoopFrames(t *testing.T) {
	h := New("#canvas", 0, 0)
	h.Frames = 5

	var calls int
	if err := h.MainLoop(func() { calls++ }, 0, true); err != nil {
		t.Fatalf("MainLoop returned %v", err)
	}

	if calls != 5 {
		t.Errorf("update called %d times, expected 5", calls)
	}

	if h.FrameCount() != 5 {
		t.Errorf("FrameCount() = %d, expected 5", h.FrameCount())
	}

	if !h.Forever() || h.Interval() != 0 {
		t.Errorf("recorded (interval=%v, forever=%v), expected (0, true)", h.Interval(), h.Forever())
	}
}

func TestMainLoopStop(t *testing.T) {
	h := New("#canvas", 0, 0)

	var calls int
	_ = h.MainLoop(func() {
		calls++
		if calls == 3 {
			h.Stop()
		}
	}, 0, true)

	if calls != 3 {
		t.Errorf("update called %d times, expected 3", calls)
	}
}

func TestMainLoopOnce(t *testing.T) {
	h := New("#canvas", 0, 0)
	h.Frames = 10

	var calls int
	_ = h.MainLoop(func() { calls++ }, 0, false)

	if calls != 1 {
		t.Errorf("update called %d times without forever, expected 1", calls)
	}
}
