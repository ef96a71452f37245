package pulse

import (
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/meme/glm"
)

// cubePipelineConfig selects the pipeline variant for a set of target formats.
type cubePipelineConfig struct {
	ColorFormat wgpu.TextureFormat
	DepthFormat wgpu.TextureFormat
	SampleCount uint32

	VertexShader   *wgpu.ShaderModule
	FragmentShader *wgpu.ShaderModule
}

func (conf cubePipelineConfig) Specialize(dev *wgpu.Device) (*wgpu.RenderPipeline, error) {
	slog.Info(
		"Create RenderPipeline for cube",
		slog.Any("format", conf.ColorFormat),
		slog.Any("depthFormat", conf.DepthFormat),
	)

	desc := &wgpu.RenderPipelineDescriptor{
		Label: fmt.Sprintf("Cube.%s", conf.ColorFormat),
		Vertex: wgpu.VertexState{
			Module:     conf.VertexShader,
			EntryPoint: CubeVertexShader.EntryPoint,
			Buffers:    []wgpu.VertexBufferLayout{cubeVertexLayout},
		},
		Fragment: &wgpu.FragmentState{
			Module:     conf.FragmentShader,
			EntryPoint: CubeFragmentShader.EntryPoint,
			Targets: []wgpu.ColorTargetState{
				{
					Format:    conf.ColorFormat,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeBack,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            conf.DepthFormat,
			DepthWriteEnabled: true,
			DepthCompare:      wgpu.CompareFunctionLess,
			StencilFront: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
			StencilBack: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
		},
		Multisample: wgpu.MultisampleState{
			Count: conf.SampleCount,
			Mask:  0xFFFFFFFF,
		},
	}

	pipeline, err := dev.CreateRenderPipeline(desc)
	if err != nil {
		return nil, fmt.Errorf("create cube pipeline for %v: %w", conf.ColorFormat, err)
	}

	return pipeline, nil
}

// ResourceSet holds the gpu objects needed to draw the cube. They are created
// once and do not depend on the size of the swapchain. Only the uniform buffer
// changes, it is overwritten every frame.
type ResourceSet struct {
	vertexShader   *wgpu.ShaderModule
	fragmentShader *wgpu.ShaderModule

	pipelines *PipelineCache[cubePipelineConfig]
	pipeline  *wgpu.RenderPipeline

	vertexBuffer  *wgpu.Buffer
	indexBuffer   *wgpu.Buffer
	uniformBuffer *wgpu.Buffer

	bindGroup *wgpu.BindGroup

	indexCount uint32
}

// NewResourceSet creates the shaders, the pipeline and the buffers for
// drawing into targets of the given color format.
func NewResourceSet(ctx *Context, colorFormat wgpu.TextureFormat) (rs *ResourceSet, err error) {
	defer func() {
		if err != nil && rs != nil {
			rs.Release()
			rs = nil
		}
	}()

	rs = &ResourceSet{indexCount: uint32(len(CubeIndices))}

	rs.vertexShader, err = createShaderModule(ctx, CubeVertexShader)
	if err != nil {
		return
	}

	rs.fragmentShader, err = createShaderModule(ctx, CubeFragmentShader)
	if err != nil {
		return
	}

	rs.pipelines = NewPipelineCache[cubePipelineConfig](ctx)

	rs.pipeline, err = rs.pipelines.Get(cubePipelineConfig{
		ColorFormat:    colorFormat,
		DepthFormat:    DepthFormat,
		SampleCount:    1,
		VertexShader:   rs.vertexShader,
		FragmentShader: rs.fragmentShader,
	})
	if err != nil {
		return
	}

	rs.vertexBuffer, err = ctx.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Cube.Vertices",
		Contents: SliceAsBytes(CubeVertices),
		Usage:    wgpu.BufferUsageVertex,
	})
	if err != nil {
		return rs, fmt.Errorf("create vertex buffer: %w", err)
	}

	rs.indexBuffer, err = ctx.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Cube.Indices",
		Contents: SliceAsBytes(CubeIndices),
		Usage:    wgpu.BufferUsageIndex,
	})
	if err != nil {
		return rs, fmt.Errorf("create index buffer: %w", err)
	}

	identity := glm.IdentityMat4[float32]()

	rs.uniformBuffer, err = ctx.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Cube.Transform",
		Contents: AsByteSlice(&identity),
		Usage:    wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return rs, fmt.Errorf("create uniform buffer: %w", err)
	}

	layout := rs.pipeline.GetBindGroupLayout(0)
	defer layout.Release()

	rs.bindGroup, err = ctx.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Cube.BindGroup",
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  rs.uniformBuffer,
				Size:    wgpu.WholeSize,
			},
		},
	})
	if err != nil {
		return rs, fmt.Errorf("create bind group: %w", err)
	}

	return rs, nil
}

// WriteTransform overwrites the uniform buffer with the given transform.
func (rs *ResourceSet) WriteTransform(queue *wgpu.Queue, mvp glm.Mat4f) error {
	return queue.WriteBuffer(rs.uniformBuffer, 0, AsByteSlice(&mvp))
}

// BindPipeline binds the pipeline together with the vertex and index buffers.
func (rs *ResourceSet) BindPipeline(pass *wgpu.RenderPassEncoder) {
	pass.SetPipeline(rs.pipeline)
	pass.SetVertexBuffer(0, rs.vertexBuffer, 0, wgpu.WholeSize)
	pass.SetIndexBuffer(rs.indexBuffer, wgpu.IndexFormatUint16, 0, wgpu.WholeSize)
}

// BindUniforms binds the transform to the vertex stage.
func (rs *ResourceSet) BindUniforms(pass *wgpu.RenderPassEncoder) {
	pass.SetBindGroup(0, rs.bindGroup, nil)
}

func (rs *ResourceSet) Draw(pass *wgpu.RenderPassEncoder) {
	pass.DrawIndexed(rs.indexCount, 1, 0, 0, 0)
}

// Release releases all resources in reverse order of creation.
// The pipeline is owned by the pipeline cache.
func (rs *ResourceSet) Release() {
	if rs == nil {
		return
	}

	if rs.bindGroup != nil {
		rs.bindGroup.Release()
		rs.bindGroup = nil
	}

	for _, buf := range []**wgpu.Buffer{&rs.uniformBuffer, &rs.indexBuffer, &rs.vertexBuffer} {
		if *buf != nil {
			(*buf).Release()
			*buf = nil
		}
	}

	if rs.pipelines != nil {
		rs.pipelines.Release()
		rs.pipelines = nil
		rs.pipeline = nil
	}

	if rs.fragmentShader != nil {
		rs.fragmentShader.Release()
		rs.fragmentShader = nil
	}

	if rs.vertexShader != nil {
		rs.vertexShader.Release()
		rs.vertexShader = nil
	}
}
