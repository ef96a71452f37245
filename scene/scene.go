// Package scene holds the state the renderer consumes each frame: the
// environment clear color and the main camera.
package scene

import "github.com/oliverbestmann/meme/glm"

type Environment struct {
	ClearColor glm.Vec4f
}

func DefaultClearColor() glm.Vec4f {
	return glm.Vec4f{0.08, 0.09, 0.14, 1.0}
}

type Scene struct {
	Environment Environment
	MainCamera  Camera
}

func New() *Scene {
	return &Scene{
		Environment: Environment{ClearColor: DefaultClearColor()},
		MainCamera:  DefaultCamera(),
	}
}

// Update lets the clear color drift towards red, proportional to the elapsed time.
func (s *Scene) Update(deltaSeconds float32) {
	t := min(deltaSeconds*0.2, 1)
	shift := glm.Vec4f{t * 0.1, 0, 0, 0}

	s.Environment.ClearColor = s.Environment.ClearColor.
		Add(shift).
		Clamp(glm.Vec4f{0, 0, 0, 0}, glm.Vec4f{1, 1, 1, 1})
}

func (s *Scene) ClearColor() glm.Vec4f {
	return s.Environment.ClearColor
}

func (s *Scene) Camera() Camera {
	return s.MainCamera
}
