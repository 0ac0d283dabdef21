package pulse

import (
	"fmt"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// ClearSurface fills the current surface texture with the given color and
// presents it.
func (d *Context) ClearSurface(color wgpu.Color) error {
	surface, err := d.Surface.GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("get current texture: %w", err)
	}

	surfaceGuard := NewReleaseGuard(surface)
	defer surfaceGuard.Release()

	view, err := surface.CreateView(nil)
	if err != nil {
		return fmt.Errorf("create view: %w", err)
	}

	defer view.Release()

	enc, err := d.Device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{
		Label: "ClearSurface",
	})

	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}

	defer enc.Release()

	pass := enc.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "ClearSurface",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: color,
			},
		},
	})

	passGuard := NewReleaseGuard(pass)
	defer passGuard.Release()

	if err := pass.End(); err != nil {
		return fmt.Errorf("end render pass: %w", err)
	}

	passGuard.Release()

	// encode into a command buffer
	buf, err := enc.Finish(&wgpu.CommandBufferDescriptor{Label: "ClearSurface"})
	if err != nil {
		return fmt.Errorf("finish encoder: %w", err)
	}

	defer buf.Release()

	d.Queue.Submit(buf)
	d.Surface.Present()

	// no need to release the texture after it was presented
	surfaceGuard.Keep()

	return nil
}

type Releaser interface {
	Release()
}

type ReleaseGuard struct {
	delegate Releaser
}

func NewReleaseGuard(delegate Releaser) ReleaseGuard {
	return ReleaseGuard{delegate: delegate}
}

func (r *ReleaseGuard) Keep() {
	r.delegate = nil
}

func (r *ReleaseGuard) Release() {
	if r.delegate != nil {
		r.delegate.Release()
		r.delegate = nil
	}
}
