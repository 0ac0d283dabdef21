// Package window provides the native glimpse.Host: a canvas element when
// running in the browser, a glfw window everywhere else. Both hosts
// implement pulse.SurfaceProvider.
package window
