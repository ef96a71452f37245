package pulse

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/meme/glimpse"
	"github.com/oliverbestmann/meme/orion"
)

func init() {
	orion.RegisterBackend("wgpu", func(win glimpse.Window, width, height uint32) (orion.Renderer, error) {
		return NewRenderer(win, width, height)
	})
}

// frameEncoder records and submits the draw commands of one frame into
// an acquired back buffer.
type frameEncoder interface {
	Encode(frame orion.RenderFrame, backBuffer *BackBuffer) error
}

// Renderer draws the spinning cube into the swapchain of a window.
type Renderer struct {
	ctx       *Context
	swapchain *Swapchain
	resources *ResourceSet
	encoder   frameEncoder
}

var _ orion.Renderer = (*Renderer)(nil)

// NewRenderer creates the device, the swapchain and all resources needed to
// render into win. Any failure releases what was created so far.
func NewRenderer(win glimpse.Window, width, height uint32) (r *Renderer, err error) {
	sd := win.SurfaceDescriptor()
	if sd == nil {
		return nil, orion.WrapKind(orion.ErrUnsupportedPlatform, errors.New("window has no native surface"))
	}

	defer func() {
		if err != nil && r != nil {
			r.Release()
			r = nil
		}
	}()

	r = &Renderer{}

	r.ctx, err = New(sd)
	if err != nil {
		return r, orion.WrapKind(orion.ErrRendererInit, fmt.Errorf("create device: %w", err))
	}

	r.swapchain, err = NewSwapchain(r.ctx, width, height)
	if err != nil {
		return r, orion.WrapKind(orion.ErrRendererInit, fmt.Errorf("create swapchain: %w", err))
	}

	r.resources, err = NewResourceSet(r.ctx, r.swapchain.Format())
	if err != nil {
		return r, orion.WrapKind(orion.ErrRendererInit, fmt.Errorf("create resources: %w", err))
	}

	r.encoder = &cubeEncoder{ctx: r.ctx, swapchain: r.swapchain, resources: r.resources}

	slog.Info("Renderer ready",
		slog.Int("width", int(max(width, 1))),
		slog.Int("height", int(max(height, 1))),
		slog.Any("format", r.swapchain.Format()),
	)

	return r, nil
}

func (r *Renderer) Resize(width, height uint32) error {
	return r.swapchain.Resize(width, height)
}

// Render draws one frame and presents it. The back buffer is released
// again if anything fails before it was presented.
func (r *Renderer) Render(frame orion.RenderFrame) error {
	backBuffer, err := r.swapchain.Acquire()
	if err != nil {
		return err
	}

	// no-op once the back buffer was presented
	defer r.swapchain.UnbindTargets()

	if err := r.encoder.Encode(frame, backBuffer); err != nil {
		return orion.WrapKind(orion.ErrRuntime, err)
	}

	return r.swapchain.Present()
}

// cubeEncoder draws the cube with a single render pass.
type cubeEncoder struct {
	ctx       *Context
	swapchain *Swapchain
	resources *ResourceSet
}

func (r *cubeEncoder) Encode(frame orion.RenderFrame, backBuffer *BackBuffer) error {
	enc, err := r.ctx.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{
		Label: "Cube",
	})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}

	defer enc.Release()

	targets := r.swapchain.Targets()
	color := frame.ClearColor

	// bind color and depth targets, clear both
	pass := enc.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "Cube",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:    backBuffer.View,
				LoadOp:  wgpu.LoadOpClear,
				StoreOp: wgpu.StoreOpStore,
				ClearValue: wgpu.Color{
					R: float64(color[0]),
					G: float64(color[1]),
					B: float64(color[2]),
					A: float64(color[3]),
				},
			},
		},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:              targets.DepthView(),
			DepthLoadOp:       wgpu.LoadOpClear,
			DepthStoreOp:      wgpu.StoreOpStore,
			DepthClearValue:   1.0,
			StencilLoadOp:     wgpu.LoadOpClear,
			StencilStoreOp:    wgpu.StoreOpStore,
			StencilClearValue: 0,
		},
	})

	passGuard := NewReleaseGuard(pass)
	defer passGuard.Release()

	viewport := r.swapchain.Viewport()
	pass.SetViewport(viewport.X, viewport.Y, viewport.Width, viewport.Height, viewport.MinDepth, viewport.MaxDepth)

	r.resources.BindPipeline(pass)

	mvp := CubeTransform(frame.Camera, viewport.Aspect(), frame.Time)
	if err := r.resources.WriteTransform(r.ctx.Queue, mvp); err != nil {
		return fmt.Errorf("write transform: %w", err)
	}

	r.resources.BindUniforms(pass)
	r.resources.Draw(pass)

	if err := pass.End(); err != nil {
		return fmt.Errorf("end render pass: %w", err)
	}

	passGuard.Release()

	// encode into a command buffer
	commands, err := enc.Finish(&wgpu.CommandBufferDescriptor{Label: "Cube"})
	if err != nil {
		return fmt.Errorf("finish commands: %w", err)
	}

	defer commands.Release()

	r.ctx.Queue.Submit(commands)

	return nil
}

// Release releases the resources, the swapchain and the device, in that order.
func (r *Renderer) Release() {
	r.encoder = nil

	r.resources.Release()
	r.resources = nil

	r.swapchain.Release()
	r.swapchain = nil

	r.ctx.Release()
	r.ctx = nil
}
