package pulse

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/meme/orion"
)

// swapchainDevice is the part of the gpu the swapchain talks to.
type swapchainDevice interface {
	// Format is the texture format of the back buffers
	Format() wgpu.TextureFormat

	// Configure resizes the back buffers
	Configure(width, height uint32) error

	CreateTargets(width, height uint32) (*Targets, error)

	Acquire() (*BackBuffer, error)

	// Discard releases a back buffer that will not be presented
	Discard(buffer *BackBuffer)

	Present(buffer *BackBuffer) error
}

// Swapchain owns the back buffers of the surface and the render targets
// sized to match them.
type Swapchain struct {
	device swapchainDevice

	// size of the back buffers
	width  uint32
	height uint32

	// built for the size of the last successful resize. Might be stale
	// if building the targets for the current size failed.
	targets  *Targets
	viewport Viewport

	// back buffer of the frame in flight
	acquired *BackBuffer
}

// NewSwapchain configures the surface of ctx for the given size. A zero
// width or height is treated as one.
func NewSwapchain(ctx *Context, width, height uint32) (*Swapchain, error) {
	device, err := newSurfaceDevice(ctx)
	if err != nil {
		return nil, orion.WrapKind(orion.ErrRendererInit, err)
	}

	return newSwapchain(device, width, height)
}

func newSwapchain(device swapchainDevice, width, height uint32) (*Swapchain, error) {
	width, height = max(width, 1), max(height, 1)

	if err := device.Configure(width, height); err != nil {
		return nil, orion.WrapKind(orion.ErrRendererInit, fmt.Errorf("configure surface: %w", err))
	}

	targets, err := device.CreateTargets(width, height)
	if err != nil {
		return nil, orion.WrapKind(orion.ErrRendererInit, fmt.Errorf("create targets: %w", err))
	}

	sc := &Swapchain{
		device:   device,
		width:    width,
		height:   height,
		targets:  targets,
		viewport: viewportOf(targets),
	}

	return sc, nil
}

func (s *Swapchain) Format() wgpu.TextureFormat {
	return s.device.Format()
}

// Size returns the size of the back buffers.
func (s *Swapchain) Size() (width, height uint32) {
	return s.width, s.height
}

func (s *Swapchain) Targets() *Targets {
	return s.targets
}

func (s *Swapchain) Viewport() Viewport {
	return s.viewport
}

// Resize resizes the back buffers and rebuilds the targets. Resizing to the
// current size or to an empty size does nothing.
//
// If the targets can not be rebuilt, the previous targets and viewport are
// kept and an orion.ErrRuntime is returned. Rendering continues into the stale
// targets until the next successful resize. Resizing a released swapchain
// does nothing.
func (s *Swapchain) Resize(width, height uint32) error {
	if width == 0 || height == 0 || s.targets == nil {
		return nil
	}

	if width == s.width && height == s.height {
		return nil
	}

	// views into the old back buffers must be gone before they are resized
	s.UnbindTargets()

	s.width, s.height = width, height

	if err := s.device.Configure(width, height); err != nil {
		return orion.WrapKind(orion.ErrRuntime, fmt.Errorf("resize buffers to %dx%d: %w", width, height, err))
	}

	targets, err := s.device.CreateTargets(width, height)
	if err != nil {
		slog.Warn("Keeping stale render targets",
			slog.Int("width", int(s.targets.Width)),
			slog.Int("height", int(s.targets.Height)),
		)

		return orion.WrapKind(orion.ErrRuntime, fmt.Errorf("create targets for %dx%d: %w", width, height, err))
	}

	s.targets.Release()
	s.targets = targets
	s.viewport = viewportOf(targets)

	return nil
}

// Acquire gets the back buffer for the next frame.
func (s *Swapchain) Acquire() (*BackBuffer, error) {
	s.UnbindTargets()

	buffer, err := s.device.Acquire()
	if err != nil {
		return nil, orion.WrapKind(orion.ErrRuntime, fmt.Errorf("acquire back buffer: %w", err))
	}

	s.acquired = buffer

	return buffer, nil
}

// UnbindTargets drops the back buffer of the frame in flight, if any.
func (s *Swapchain) UnbindTargets() {
	if s.acquired != nil {
		s.device.Discard(s.acquired)
		s.acquired = nil
	}
}

// Present shows the acquired back buffer once the next vertical blank is reached.
func (s *Swapchain) Present() error {
	if s.acquired == nil {
		return orion.WrapKind(orion.ErrRuntime, errors.New("present: no back buffer acquired"))
	}

	buffer := s.acquired
	s.acquired = nil

	if err := s.device.Present(buffer); err != nil {
		s.device.Discard(buffer)
		return orion.WrapKind(orion.ErrRuntime, fmt.Errorf("present: %w", err))
	}

	return nil
}

func (s *Swapchain) Release() {
	if s == nil {
		return
	}

	s.UnbindTargets()

	s.targets.Release()
	s.targets = nil
}

// surfaceDevice implements swapchainDevice on a webgpu surface.
type surfaceDevice struct {
	ctx    *Context
	config *wgpu.SurfaceConfiguration
}

func newSurfaceDevice(ctx *Context) (*surfaceDevice, error) {
	caps := ctx.Surface.GetCapabilities(ctx.Adapter)
	if len(caps.Formats) == 0 || len(caps.AlphaModes) == 0 {
		return nil, errors.New("surface is not compatible with the adapter")
	}

	// Print the available render formats
	slog.Info("Available surface formats", slog.Any("formats", caps.Formats))

	format := caps.Formats[0]
	if slices.Contains(caps.Formats, wgpu.TextureFormatBGRA8Unorm) {
		format = wgpu.TextureFormatBGRA8Unorm
	}

	config := &wgpu.SurfaceConfiguration{
		Usage:  wgpu.TextureUsageRenderAttachment,
		Format: format,

		// double buffered, present waits for the vertical blank
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   caps.AlphaModes[0],
	}

	return &surfaceDevice{ctx: ctx, config: config}, nil
}

func (d *surfaceDevice) Format() wgpu.TextureFormat {
	return d.config.Format
}

func (d *surfaceDevice) Configure(width, height uint32) error {
	d.config.Width = width
	d.config.Height = height
	d.ctx.Surface.Configure(d.ctx.Adapter, d.ctx.Device, d.config)
	return nil
}

func (d *surfaceDevice) CreateTargets(width, height uint32) (*Targets, error) {
	return createTargets(d.ctx, width, height)
}

func (d *surfaceDevice) Acquire() (*BackBuffer, error) {
	texture, err := d.ctx.Surface.GetCurrentTexture()
	if err != nil {
		return nil, fmt.Errorf("get current texture: %w", err)
	}

	textureGuard := NewReleaseGuard(texture)
	defer textureGuard.Release()

	view, err := texture.CreateView(nil)
	if err != nil {
		return nil, fmt.Errorf("create back buffer view: %w", err)
	}

	textureGuard.Keep()

	return &BackBuffer{texture: texture, View: view}, nil
}

func (d *surfaceDevice) Discard(buffer *BackBuffer) {
	buffer.Release()
}

func (d *surfaceDevice) Present(buffer *BackBuffer) error {
	d.ctx.Surface.Present()

	// we do not need to release the surface texture if present was successful
	buffer.View.Release()
	buffer.View = nil

	return nil
}
