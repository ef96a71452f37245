package orion

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/oliverbestmann/meme/glimpse"
	"github.com/oliverbestmann/meme/glm"
	"github.com/oliverbestmann/meme/scene"
)

//go:generate go tool stringer -type=State -trimprefix=State

type State uint8

const (
	// window and renderer not yet created
	StateCreated State = iota

	// processing events
	StateRunning

	// close was requested, resources are released. Terminal.
	StateShuttingDown

	// startup failed. Terminal.
	StateFailed
)

// Physics is stepped once per advanced frame, before the scene is updated.
type Physics interface {
	Step(deltaSeconds float32)
}

// Scene is updated once per advanced frame and provides the per frame render inputs.
type Scene interface {
	Update(deltaSeconds float32)
	ClearColor() glm.Vec4f
	Camera() scene.Camera
}

// OpenWindow creates the platform window for a run.
type OpenWindow func(config EngineConfig) (glimpse.Window, error)

type LoopOptions struct {
	Config EngineConfig

	Physics Physics
	Scene   Scene

	// creates the window, defaults to a glfw window
	OpenWindow OpenWindow

	// Backend overrides the backend looked up by Config.Backend
	Backend Backend

	// Clock returns the current time, defaults to time.Now
	Clock func() time.Time

	Logger *slog.Logger
}

// Loop owns the window, the renderer and the frame timing of one run.
// It is single threaded and must be run on the main thread.
type Loop struct {
	config  EngineConfig
	physics Physics
	scene   Scene

	openWindow OpenWindow
	backend    Backend
	clock      func() time.Time
	log        *slog.Logger

	state    State
	window   glimpse.Window
	renderer Renderer

	startTime time.Time
	timing    FrameTiming
	stats     FrameTimes
}

func NewLoop(opts LoopOptions) (*Loop, error) {
	if opts.Physics == nil {
		return nil, errors.New("Physics must not be nil")
	}

	if opts.Scene == nil {
		return nil, errors.New("Scene must not be nil")
	}

	if opts.OpenWindow == nil {
		opts.OpenWindow = openGlfwWindow
	}

	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &Loop{
		config:     opts.Config.withDefaults(),
		physics:    opts.Physics,
		scene:      opts.Scene,
		openWindow: opts.OpenWindow,
		backend:    opts.Backend,
		clock:      opts.Clock,
		log:        opts.Logger,
	}, nil
}

func openGlfwWindow(config EngineConfig) (glimpse.Window, error) {
	return glimpse.NewWindow(int(config.Width), int(config.Height), config.Title)
}

func (l *Loop) State() State {
	return l.state
}

func (l *Loop) Config() EngineConfig {
	return l.config
}

// Run creates the window and the renderer and processes events until a close is requested.
// Startup failures are returned, per frame failures are logged and do not stop the loop.
func (l *Loop) Run() error {
	if l.state != StateCreated {
		return fmt.Errorf("loop can only run once, state is %s", l.state)
	}

	if err := l.startup(); err != nil {
		l.state = StateFailed
		return err
	}

	l.state = StateRunning
	l.log.Info("engine startup",
		slog.String("backend", l.config.Backend),
		slog.Int("targetFPS", int(l.config.EffectiveFPS())),
	)

	for l.state == StateRunning {
		event, ok := l.window.NextEvent()
		if !ok {
			l.idle()
			continue
		}

		l.handle(event)
	}

	l.shutdown()

	return nil
}

func (l *Loop) startup() error {
	backend := l.backend
	if backend == nil {
		var err error
		backend, err = LookupBackend(l.config.Backend)
		if err != nil {
			return err
		}
	}

	window, err := l.openWindow(l.config)
	if err != nil {
		return WrapKind(ErrWindowCreation, err)
	}

	width, height := window.GetSize()

	renderer, err := backend(window, width, height)
	if err != nil {
		window.Terminate()
		return WrapKind(ErrRendererInit, err)
	}

	l.window = window
	l.renderer = renderer

	l.startTime = l.clock()
	l.timing = NewFrameTiming(l.config.TargetFPS, l.startTime)

	return nil
}

func (l *Loop) handle(event glimpse.Event) {
	switch event.Kind {
	case glimpse.EventCloseRequested:
		l.log.Info("engine shutdown")
		l.state = StateShuttingDown

	case glimpse.EventResized:
		l.log.Debug("Resize",
			slog.Int("width", int(event.Width)),
			slog.Int("height", int(event.Height)),
		)

		if err := l.renderer.Resize(event.Width, event.Height); err != nil {
			l.log.Warn("resize error", slog.Any("err", err))
		}

	case glimpse.EventRedrawRequested:
		l.redraw()
	}
}

func (l *Loop) redraw() {
	now := l.clock()

	delta, ok := l.timing.Advance(now)
	if !ok {
		return
	}

	deltaSeconds := float32(delta.Seconds())

	l.physics.Step(deltaSeconds)
	l.scene.Update(deltaSeconds)

	frame := RenderFrame{
		ClearColor: l.scene.ClearColor(),
		Time:       float32(now.Sub(l.startTime).Seconds()),
		Camera:     l.scene.Camera(),
	}

	if err := l.renderer.Render(frame); err != nil {
		l.log.Error("render error", slog.Any("err", err))
	}

	if l.stats.Tick(now) {
		l.log.Debug("Frame times",
			slog.Float64("fps", l.stats.FPS()),
			slog.Duration("average", l.stats.AverageDuration),
			slog.Duration("max", l.stats.MaxDuration),
		)
	}
}

// idle is called when no event is pending. Busy polling requests the next
// redraw right away, otherwise we sleep until either the platform delivers an
// event or the next frame is due.
func (l *Loop) idle() {
	if !l.config.Poll {
		if remaining := l.timing.Remaining(l.clock()); remaining > 0 {
			l.window.WaitEvents(remaining)
		}
	}

	l.window.RequestRedraw()
}

// shutdown releases the renderer before the window it renders to.
func (l *Loop) shutdown() {
	if l.renderer != nil {
		l.renderer.Release()
		l.renderer = nil
	}

	if l.window != nil {
		l.window.Terminate()
		l.window = nil
	}
}
