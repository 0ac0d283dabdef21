// Package ebitenhost runs the game loop inside ebiten.RunGame. The outside
// size ebiten hands to LayoutF is the size of the drawing surface.
package ebitenhost

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/webloop/glimpse"
)

var _ glimpse.Host = (*Host)(nil)

type Host struct {
	width, height float64

	handlers []glimpse.ResizeHandler
}

func New(opts glimpse.HostOptions) *Host {
	opts = opts.WithDefaults()

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return &Host{
		width:  float64(opts.Width),
		height: float64(opts.Height),
	}
}

// ElementSize returns the last outside size ebiten reported. Before the
// first layout this is the requested window size.
func (h *Host) ElementSize(selector string) (float64, float64) {
	return h.width, h.height
}

func (h *Host) OnResize(handler glimpse.ResizeHandler) {
	h.handlers = append(h.handlers, handler)
}

// MainLoop hands the loop to ebiten. ebiten owns the main thread, so
// this always blocks until the window is closed.
func (h *Host) MainLoop(update func(), interval time.Duration, forever bool) error {
	if interval > 0 {
		ebiten.SetTPS(max(1, int(time.Second/interval)))
	} else {
		ebiten.SetTPS(ebiten.SyncWithFPS)
	}

	if err := ebiten.RunGame(&runner{host: h, update: update}); err != nil {
		return fmt.Errorf("run ebiten: %w", err)
	}

	return nil
}

func (h *Host) Terminate() {
	// do nothing
}

func (h *Host) layout(width, height float64) {
	if width == h.width && height == h.height {
		return
	}

	slog.Debug("Outside size changed",
		slog.Float64("width", width),
		slog.Float64("height", height),
	)

	h.width = width
	h.height = height

	for _, handler := range h.handlers {
		handler()
	}
}

type runner struct {
	host   *Host
	update func()
}

func (r *runner) Update() error {
	r.update()
	return nil
}

func (r *runner) Draw(screen *ebiten.Image) {
}

func (r *runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func (r *runner) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	r.host.layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
