package orion

import (
	"errors"
	"fmt"
	"time"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/meme/glimpse"
	"github.com/oliverbestmann/meme/glm"
	"github.com/oliverbestmann/meme/scene"
)

// callLog records calls across all fakes in the order they happened
type callLog struct {
	calls []string
}

func (c *callLog) add(format string, args ...any) {
	c.calls = append(c.calls, fmt.Sprintf(format, args...))
}

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

// step is one scripted interaction of the fake window. The clock is advanced
// before the event is delivered. idle steps report that no event is pending.
type step struct {
	advance time.Duration
	event   glimpse.Event
	idle    bool
}

func after(d time.Duration, event glimpse.Event) step {
	return step{advance: d, event: event}
}

func idleAfter(d time.Duration) step {
	return step{advance: d, idle: true}
}

type fakeWindow struct {
	log    *callLog
	clock  *fakeClock
	script []step

	width, height uint32

	redrawRequests int
	waits          []time.Duration
}

func (w *fakeWindow) GetSize() (uint32, uint32) {
	return w.width, w.height
}

func (w *fakeWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return nil
}

// NextEvent delivers the scripted events. Once the script is exhausted
// the window requests to be closed.
func (w *fakeWindow) NextEvent() (glimpse.Event, bool) {
	if len(w.script) == 0 {
		return glimpse.CloseRequested(), true
	}

	next := w.script[0]
	w.script = w.script[1:]

	w.clock.now = w.clock.now.Add(next.advance)

	if next.idle {
		return glimpse.Event{}, false
	}

	return next.event, true
}

func (w *fakeWindow) WaitEvents(timeout time.Duration) {
	w.waits = append(w.waits, timeout)
}

func (w *fakeWindow) RequestRedraw() {
	w.redrawRequests += 1
}

func (w *fakeWindow) Terminate() {
	w.log.add("window.Terminate")
}

type fakeRenderer struct {
	log *callLog

	frames []RenderFrame

	renderErr error
	resizeErr error
}

func (r *fakeRenderer) Resize(width, height uint32) error {
	r.log.add("renderer.Resize %dx%d", width, height)
	return r.resizeErr
}

func (r *fakeRenderer) Render(frame RenderFrame) error {
	r.log.add("renderer.Render")
	r.frames = append(r.frames, frame)
	return r.renderErr
}

func (r *fakeRenderer) Release() {
	r.log.add("renderer.Release")
}

type fakePhysics struct {
	log    *callLog
	deltas []float32
}

func (p *fakePhysics) Step(deltaSeconds float32) {
	p.log.add("physics.Step")
	p.deltas = append(p.deltas, deltaSeconds)
}

type fakeScene struct {
	log    *callLog
	deltas []float32
	color  glm.Vec4f
}

func (s *fakeScene) Update(deltaSeconds float32) {
	s.log.add("scene.Update")
	s.deltas = append(s.deltas, deltaSeconds)
}

func (s *fakeScene) ClearColor() glm.Vec4f {
	return s.color
}

func (s *fakeScene) Camera() scene.Camera {
	return scene.DefaultCamera()
}

// harness wires a loop to fakes
type harness struct {
	log      *callLog
	clock    *fakeClock
	window   *fakeWindow
	renderer *fakeRenderer
	physics  *fakePhysics
	scene    *fakeScene

	backendWidth, backendHeight uint32
	backendErr                  error
	windowErr                   error
}

func newHarness(script ...step) *harness {
	log := &callLog{}
	clock := newFakeClock()

	return &harness{
		log:      log,
		clock:    clock,
		window:   &fakeWindow{log: log, clock: clock, script: script, width: 1280, height: 720},
		renderer: &fakeRenderer{log: log},
		physics:  &fakePhysics{log: log},
		scene:    &fakeScene{log: log, color: glm.Vec4f{0.1, 0.2, 0.3, 1}},
	}
}

func (h *harness) options(config EngineConfig) LoopOptions {
	return LoopOptions{
		Config:  config,
		Physics: h.physics,
		Scene:   h.scene,
		Clock:   h.clock.Now,

		OpenWindow: func(config EngineConfig) (glimpse.Window, error) {
			if h.windowErr != nil {
				return nil, h.windowErr
			}

			h.log.add("window.Open %dx%d", config.Width, config.Height)
			return h.window, nil
		},

		Backend: func(win glimpse.Window, width, height uint32) (Renderer, error) {
			h.backendWidth, h.backendHeight = width, height

			if h.backendErr != nil {
				return nil, h.backendErr
			}

			return h.renderer, nil
		},
	}
}

func (h *harness) loop(config EngineConfig) *Loop {
	loop, err := NewLoop(h.options(config))
	if err != nil {
		panic(err)
	}

	return loop
}

var errPresent = errors.New("present failed: device removed")
