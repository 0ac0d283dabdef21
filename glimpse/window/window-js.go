//go:build js

package window

import (
	"log/slog"
	"strings"
	"syscall/js"
	"time"

	"github.com/oliverbestmann/webgpu/wgpu"
	"github.com/oliverbestmann/webloop/glimpse"
	"github.com/oliverbestmann/webloop/pulse"
)

type jsHost struct {
	selector string

	// keep the callbacks alive for as long as the host lives
	resize []js.Func
	loop   []js.Func
}

var _ pulse.SurfaceProvider = (*jsHost)(nil)

func NewHost(opts glimpse.HostOptions) (glimpse.Host, error) {
	opts = opts.WithDefaults()

	document := js.Global().Get("document")
	document.Set("title", opts.Title)

	if canvas := document.Call("querySelector", opts.Selector); canvas.IsNull() {
		// only id selectors can be turned into a new element
		if id, ok := strings.CutPrefix(opts.Selector, "#"); ok {
			slog.Info("Create missing canvas", slog.String("id", id))

			canvas = document.Call("createElement", "canvas")
			canvas.Set("id", id)
			canvas.Set("style", "width:100vw; height:100vh")
			document.Get("body").Call("appendChild", canvas)
		}
	}

	return &jsHost{selector: opts.Selector}, nil
}

func (h *jsHost) ElementSize(selector string) (float64, float64) {
	element := js.Global().Get("document").Call("querySelector", selector)
	if element.IsNull() || element.IsUndefined() {
		return 0, 0
	}

	rect := element.Call("getBoundingClientRect")
	return rect.Get("width").Float(), rect.Get("height").Float()
}

func (h *jsHost) OnResize(handler glimpse.ResizeHandler) {
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		if handler() && len(args) > 0 {
			args[0].Call("preventDefault")
		}

		return nil
	})

	h.resize = append(h.resize, fn)

	js.Global().Call("addEventListener", "resize", fn)
}

func (h *jsHost) MainLoop(update func(), interval time.Duration, forever bool) error {
	helper := js.Global().Call("eval", `({
        async run(runOnce, intervalMillis) {
            while (true) {
                if (intervalMillis > 0) {
                    await new Promise(resolve => setTimeout(resolve, intervalMillis))
                } else {
                    await new Promise(resolve => requestAnimationFrame(resolve))
                }

                runOnce();
            }
        }
	})`)

	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		update()
		return nil
	})

	h.loop = append(h.loop, fn)

	helper.Call("run", fn, interval.Milliseconds())

	if !forever {
		return nil
	}

	// block forever
	select {}
}

func (h *jsHost) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	canvas := js.Global().Get("document").Call("querySelector", h.selector)
	return &wgpu.SurfaceDescriptor{Canvas: canvas}
}

func (h *jsHost) Terminate() {
	// the loop callbacks stay registered with the page, only
	// resize listeners can be detached
	for _, fn := range h.resize {
		js.Global().Call("removeEventListener", "resize", fn)
		fn.Release()
	}

	h.resize = nil
}
