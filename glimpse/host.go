package glimpse

import (
	"time"
)

// DefaultSelector identifies the drawing surface if nothing else is configured.
const DefaultSelector = "#canvas"

// SurfaceQuery reports the logical size of a drawing surface.
// A surface that can not be found is reported as 0x0.
type SurfaceQuery interface {
	ElementSize(selector string) (width, height float64)
}

// ResizeHandler is invoked when the size of the window changes. The return
// value tells the host if the event was consumed.
type ResizeHandler func() (consumed bool)

// ResizeEvents dispatches window resize events to all registered handlers,
// in the order they were registered.
type ResizeEvents interface {
	OnResize(handler ResizeHandler)
}

type Scheduler interface {
	// MainLoop calls update repeatedly. An interval of zero lets the host
	// choose its own pacing, usually the display refresh rate. If forever is set,
	// MainLoop does not return until the host shuts down.
	MainLoop(update func(), interval time.Duration, forever bool) error
}

type Host interface {
	SurfaceQuery
	ResizeEvents
	Scheduler

	Terminate()
}

type HostOptions struct {
	// selector of the drawing surface. Only meaningful in the browser.
	Selector string

	Width  int
	Height int
	Title  string

	// write a cpu profile while the host is alive
	Profile bool
}

// WithDefaults returns a copy of opts with all unset fields filled in.
func (opts HostOptions) WithDefaults() HostOptions {
	if opts.Selector == "" {
		opts.Selector = DefaultSelector
	}

	if opts.Width == 0 {
		opts.Width = 1000
	}

	if opts.Height == 0 {
		opts.Height = 600
	}

	if opts.Title == "" {
		opts.Title = "webloop"
	}

	return opts
}
