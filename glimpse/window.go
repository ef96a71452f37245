package glimpse

import (
	"time"

	"github.com/cogentcore/webgpu/wgpu"
)

// Window is the platform window the engine renders into. It delivers
// close, resize and redraw events and hands out the native surface
// a graphics backend can draw to.
type Window interface {
	// GetSize returns the current framebuffer size in pixels
	GetSize() (uint32, uint32)

	// SurfaceDescriptor describes the native surface of this window.
	// Returns nil if the window has no native handle a backend could render to.
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// NextEvent polls the platform without blocking and returns the next pending
	// event. ok is false if no event is pending.
	NextEvent() (event Event, ok bool)

	// WaitEvents blocks until the platform delivers an event or the timeout expired.
	WaitEvents(timeout time.Duration)

	// RequestRedraw schedules a RedrawRequested event. Multiple requests
	// are coalesced until the event was delivered.
	RequestRedraw()

	// Terminate destroys the window
	Terminate()
}
