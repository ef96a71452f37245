package glimpse

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

type glfwWindow struct {
	win    *glfw.Window
	events EventQueue

	// last framebuffer size reported to the event queue
	width, height uint32
}

// NewWindow creates a window without a client api, the surface is
// provided to webgpu through SurfaceDescriptor.
// Must be called from the main thread.
func NewWindow(width, height int, title string) (Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	w := &glfwWindow{win: window}
	w.width, w.height = w.GetSize()

	configureCallbacks(window, w)

	slog.Info("Window created",
		slog.String("title", title),
		slog.Int("width", int(w.width)),
		slog.Int("height", int(w.height)),
	)

	return w, nil
}

func (g *glfwWindow) GetSize() (uint32, uint32) {
	width, height := g.win.GetFramebufferSize()
	return uint32(max(width, 0)), uint32(max(height, 0))
}

func (g *glfwWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(g.win)
}

func (g *glfwWindow) NextEvent() (Event, bool) {
	if g.events.Len() == 0 {
		glfw.PollEvents()
	}

	return g.events.Pop()
}

func (g *glfwWindow) WaitEvents(timeout time.Duration) {
	if g.events.Len() > 0 {
		return
	}

	if timeout <= 0 {
		glfw.PollEvents()
		return
	}

	glfw.WaitEventsTimeout(timeout.Seconds())
}

func (g *glfwWindow) RequestRedraw() {
	g.events.Push(RedrawRequested())
}

func (g *glfwWindow) Terminate() {
	g.win.Destroy()
	glfw.Terminate()
}

func (g *glfwWindow) resized(width, height int) {
	w, h := uint32(max(width, 0)), uint32(max(height, 0))

	// glfw repeats the size while the user drags the window border
	if w == g.width && h == g.height {
		return
	}

	g.width, g.height = w, h
	g.events.Push(Resized(w, h))
}

func configureCallbacks(window *glfw.Window, w *glfwWindow) {
	window.SetFramebufferSizeCallback(func(_win *glfw.Window, width, height int) {
		w.resized(width, height)
	})

	window.SetCloseCallback(func(_win *glfw.Window) {
		w.events.Push(CloseRequested())
	})

	window.SetRefreshCallback(func(_win *glfw.Window) {
		w.events.Push(RedrawRequested())
	})

	window.SetKeyCallback(func(_win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			slog.Info("Escape pressed, requesting close")
			w.events.Push(CloseRequested())
		}
	})
}
