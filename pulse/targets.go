package pulse

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// DepthFormat is the format of the depth stencil target.
const DepthFormat = wgpu.TextureFormatDepth24PlusStencil8

// Targets are the size dependent render targets of the swapchain. The color
// target is the back buffer acquired for each frame, Targets holds everything
// that must be rebuilt when the back buffers change size. A Targets value is
// always built for exactly one size and replaced as a whole.
type Targets struct {
	Width  uint32
	Height uint32

	// depth stencil attachment, Width x Height
	Depth *Texture
}

func (t *Targets) DepthView() *wgpu.TextureView {
	if t == nil || t.Depth == nil {
		return nil
	}

	return t.Depth.View()
}

func (t *Targets) Release() {
	if t == nil {
		return
	}

	t.Depth.Release()
	t.Depth = nil
}

func createTargets(ctx *Context, width, height uint32) (*Targets, error) {
	depth, err := NewTextureFromDesc(ctx, &wgpu.TextureDescriptor{
		Label:     "DepthStencil",
		Usage:     wgpu.TextureUsageRenderAttachment,
		Dimension: wgpu.TextureDimension2D,
		Size: wgpu.Extent3D{
			Width:              width,
			Height:             height,
			DepthOrArrayLayers: 1,
		},
		Format:        DepthFormat,
		MipLevelCount: 1,
		SampleCount:   1,
	})

	if err != nil {
		return nil, err
	}

	return &Targets{Width: width, Height: height, Depth: depth}, nil
}

// BackBuffer is the surface texture acquired for the current frame.
type BackBuffer struct {
	texture *wgpu.Texture
	View    *wgpu.TextureView
}

// Release gives up the back buffer without presenting it.
func (b *BackBuffer) Release() {
	if b == nil {
		return
	}

	if b.View != nil {
		b.View.Release()
		b.View = nil
	}

	if b.texture != nil {
		b.texture.Release()
		b.texture = nil
	}
}

// Viewport maps normalized device coordinates to the render targets.
type Viewport struct {
	X, Y          float32
	Width, Height float32

	MinDepth, MaxDepth float32
}

func viewportOf(targets *Targets) Viewport {
	return Viewport{
		Width:    float32(targets.Width),
		Height:   float32(targets.Height),
		MinDepth: 0,
		MaxDepth: 1,
	}
}

func (v Viewport) Aspect() float32 {
	if v.Height == 0 {
		return 1
	}

	return v.Width / v.Height
}
