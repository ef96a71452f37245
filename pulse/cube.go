package pulse

import (
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/meme/glm"
)

// Vertex is the vertex format of the cube, as uploaded to the vertex buffer.
type Vertex struct {
	Position glm.Vec3f
	Color    glm.Vec3f
}

// CubeVertices are the corners of a unit cube centered at the origin,
// each with its own color.
var CubeVertices = []Vertex{
	{Position: glm.Vec3f{-0.5, -0.5, -0.5}, Color: glm.Vec3f{0, 0, 0}},
	{Position: glm.Vec3f{0.5, -0.5, -0.5}, Color: glm.Vec3f{1, 0, 0}},
	{Position: glm.Vec3f{0.5, 0.5, -0.5}, Color: glm.Vec3f{1, 1, 0}},
	{Position: glm.Vec3f{-0.5, 0.5, -0.5}, Color: glm.Vec3f{0, 1, 0}},
	{Position: glm.Vec3f{-0.5, -0.5, 0.5}, Color: glm.Vec3f{0, 0, 1}},
	{Position: glm.Vec3f{0.5, -0.5, 0.5}, Color: glm.Vec3f{1, 0, 1}},
	{Position: glm.Vec3f{0.5, 0.5, 0.5}, Color: glm.Vec3f{1, 1, 1}},
	{Position: glm.Vec3f{-0.5, 0.5, 0.5}, Color: glm.Vec3f{0, 1, 1}},
}

// CubeIndices describe the twelve triangles of the cube, counter-clockwise
// when looking at a face from outside.
var CubeIndices = []uint16{
	// front, z = -0.5
	0, 3, 2, 0, 2, 1,
	// back, z = +0.5
	4, 5, 6, 4, 6, 7,
	// left
	0, 4, 7, 0, 7, 3,
	// right
	1, 2, 6, 1, 6, 5,
	// bottom
	0, 1, 5, 0, 5, 4,
	// top
	3, 7, 6, 3, 6, 2,
}

var cubeVertexLayout = wgpu.VertexBufferLayout{
	ArrayStride: uint64(unsafe.Sizeof(Vertex{})),
	StepMode:    wgpu.VertexStepModeVertex,
	Attributes: []wgpu.VertexAttribute{
		{
			// position
			Format:         wgpu.VertexFormatFloat32x3,
			Offset:         uint64(unsafe.Offsetof(Vertex{}.Position)),
			ShaderLocation: 0,
		},
		{
			// color
			Format:         wgpu.VertexFormatFloat32x3,
			Offset:         uint64(unsafe.Offsetof(Vertex{}.Color)),
			ShaderLocation: 1,
		},
	},
}
