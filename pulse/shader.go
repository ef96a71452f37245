package pulse

import (
	_ "embed"
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gogpu/naga"
)

//go:embed shaders/cube.vert.wgsl
var cubeVertexCode string

//go:embed shaders/cube.frag.wgsl
var cubeFragmentCode string

// ShaderSource is the wgsl source of a single shader stage.
type ShaderSource struct {
	Label      string
	Code       string
	EntryPoint string
}

var (
	CubeVertexShader   = ShaderSource{Label: "cube.vert.wgsl", Code: cubeVertexCode, EntryPoint: "vs_main"}
	CubeFragmentShader = ShaderSource{Label: "cube.frag.wgsl", Code: cubeFragmentCode, EntryPoint: "fs_main"}
)

// Validate compiles the source with naga. The returned error carries the
// compiler diagnostic.
func (s ShaderSource) Validate() error {
	if _, err := naga.Compile(s.Code); err != nil {
		return fmt.Errorf("compile %s: %w", s.Label, err)
	}

	return nil
}

func createShaderModule(ctx *Context, src ShaderSource) (*wgpu.ShaderModule, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}

	module, err := ctx.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          src.Label,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: src.Code},
	})

	if err != nil {
		return nil, fmt.Errorf("create shader module %s: %w", src.Label, err)
	}

	return module, nil
}
