//go:build !js

package window

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/oliverbestmann/webgpu/wgpu"
	"github.com/oliverbestmann/webgpu/wgpuglfw"
	"github.com/oliverbestmann/webloop/glimpse"
	"github.com/oliverbestmann/webloop/pulse"
	"github.com/pkg/profile"
)

func init() {
	// glfw must only be called from the main thread
	runtime.LockOSThread()
}

const fallbackRefreshRate = 60

type glfwHost struct {
	win      *glfw.Window
	prof     interface{ Stop() }
	handlers []glimpse.ResizeHandler
}

var _ pulse.SurfaceProvider = (*glfwHost)(nil)

func NewHost(opts glimpse.HostOptions) (glimpse.Host, error) {
	opts = opts.WithDefaults()

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	window, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	h := &glfwHost{win: window}

	if opts.Profile {
		h.prof = profile.Start(profile.CPUProfile)
	}

	window.SetSizeCallback(func(_win *glfw.Window, width int, height int) {
		for _, handler := range h.handlers {
			handler()
		}
	})

	return h, nil
}

// ElementSize returns the logical size of the window. A desktop host only
// ever has one drawing surface, so the selector is not used.
func (h *glfwHost) ElementSize(selector string) (float64, float64) {
	width, height := h.win.GetSize()
	return float64(width), float64(height)
}

func (h *glfwHost) OnResize(handler glimpse.ResizeHandler) {
	h.handlers = append(h.handlers, handler)
}

// MainLoop runs until the window is closed, no matter the value of forever:
// the loop occupies the main thread and can not be handed back to the caller.
func (h *glfwHost) MainLoop(update func(), interval time.Duration, forever bool) error {
	if interval <= 0 {
		interval = time.Second / time.Duration(refreshRate())
	}

	slog.Debug("Start main loop", slog.Duration("interval", interval))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for !h.win.ShouldClose() {
		glfw.PollEvents()
		update()

		<-ticker.C
	}

	return nil
}

func (h *glfwHost) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(h.win)
}

func (h *glfwHost) Terminate() {
	if h.prof != nil {
		h.prof.Stop()
	}

	h.win.Destroy()
	glfw.Terminate()
}

func refreshRate() int {
	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		return fallbackRefreshRate
	}

	mode := monitor.GetVideoMode()
	if mode == nil || mode.RefreshRate <= 0 {
		return fallbackRefreshRate
	}

	return mode.RefreshRate
}
