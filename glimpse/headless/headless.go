// Package headless implements a glimpse.Host without any window. Surfaces
// are plain named sizes, resize events are raised by calling Resize and the
// main loop runs for a fixed number of frames. It is used for tests and for
// running a game without a display.
package headless

import (
	"time"

	"github.com/oliverbestmann/webloop/glimpse"
)

var _ glimpse.Host = (*Host)(nil)

type size struct {
	width, height float64
}

type Host struct {
	// number of frames MainLoop runs. Zero means until Stop is called.
	Frames int

	surfaces map[string]size
	selector string
	handlers []glimpse.ResizeHandler

	stopped    bool
	frameCount int

	interval   time.Duration
	forever    bool
	terminated bool
}

// New creates a host with a single surface identified by selector.
func New(selector string, width, height float64) *Host {
	h := &Host{
		surfaces: map[string]size{},
		selector: selector,
	}

	h.SetSize(width, height)

	return h
}

// SetSize changes the size of the primary surface without raising an event.
func (h *Host) SetSize(width, height float64) {
	h.surfaces[h.selector] = size{width, height}
}

// Remove drops the primary surface, it is then reported as 0x0.
func (h *Host) Remove() {
	delete(h.surfaces, h.selector)
}

// Resize changes the size of the primary surface and then invokes all
// resize handlers in the order they were registered.
func (h *Host) Resize(width, height float64) {
	h.SetSize(width, height)

	for _, handler := range h.handlers {
		handler()
	}
}

func (h *Host) ElementSize(selector string) (float64, float64) {
	s := h.surfaces[selector]
	return s.width, s.height
}

func (h *Host) OnResize(handler glimpse.ResizeHandler) {
	h.handlers = append(h.handlers, handler)
}

// Handlers returns the number of registered resize handlers.
func (h *Host) Handlers() int {
	return len(h.handlers)
}

func (h *Host) MainLoop(update func(), interval time.Duration, forever bool) error {
	h.interval = interval
	h.forever = forever

	for !h.stopped && (h.Frames <= 0 || h.frameCount < h.Frames) {
		h.frameCount += 1
		update()

		if !forever {
			break
		}

		if interval > 0 {
			time.Sleep(interval)
		}
	}

	return nil
}

// Stop ends the main loop after the current frame.
func (h *Host) Stop() {
	h.stopped = true
}

// FrameCount returns the number of frames run so far.
func (h *Host) FrameCount() int {
	return h.frameCount
}

// Interval returns the interval MainLoop was last called with.
func (h *Host) Interval() time.Duration {
	return h.interval
}

// Forever reports the looping flag MainLoop was last called with.
func (h *Host) Forever() bool {
	return h.forever
}

func (h *Host) Terminate() {
	h.terminated = true
}

func (h *Host) Terminated() bool {
	return h.terminated
}
