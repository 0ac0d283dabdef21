package pulse

import "github.com/oliverbestmann/webgpu/wgpu"

// SurfaceProvider is implemented by hosts that can hand out a surface
// to render into.
type SurfaceProvider interface {
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
}
