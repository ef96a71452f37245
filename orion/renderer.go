package orion

import (
	"fmt"
	"slices"
	"sync"

	"github.com/oliverbestmann/meme/glimpse"
	"github.com/oliverbestmann/meme/glm"
	"github.com/oliverbestmann/meme/scene"
)

// RenderFrame is the input of one rendered frame. It is built fresh for every
// frame and does not own any gpu resources.
type RenderFrame struct {
	ClearColor glm.Vec4f

	// wall clock seconds since the loop started
	Time float32

	Camera scene.Camera
}

// Renderer is implemented by every rendering backend. The loop only
// talks to the renderer through this interface.
type Renderer interface {
	// Resize adapts the swapchain to a new framebuffer size. An error marks a
	// degraded but usable renderer.
	Resize(width, height uint32) error

	// Render draws and presents a single frame.
	Render(frame RenderFrame) error

	// Release frees all gpu resources. Must be called before the window is destroyed.
	Release()
}

// Backend creates a Renderer drawing into the given window, sized width x height.
type Backend func(win glimpse.Window, width, height uint32) (Renderer, error)

var backends = struct {
	sync.Mutex
	byName map[string]Backend
}{byName: map[string]Backend{}}

// RegisterBackend makes a backend available under the given name.
// Backends usually register themselves from an init function.
func RegisterBackend(name string, backend Backend) {
	backends.Lock()
	defer backends.Unlock()

	if _, exists := backends.byName[name]; exists {
		panic(fmt.Sprintf("backend %q registered twice", name))
	}

	backends.byName[name] = backend
}

// LookupBackend returns the backend registered under name. Fails with
// ErrUnsupportedPlatform if no such backend exists.
func LookupBackend(name string) (Backend, error) {
	backends.Lock()
	defer backends.Unlock()

	backend, ok := backends.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: no backend %q, available: %v", ErrUnsupportedPlatform, name, backendNamesLocked())
	}

	return backend, nil
}

func backendNamesLocked() []string {
	var names []string
	for name := range backends.byName {
		names = append(names, name)
	}

	slices.Sort(names)
	return names
}
