package pulse

import (
	"github.com/oliverbestmann/meme/glm"
	"github.com/oliverbestmann/meme/scene"
)

// rotation speed of the cube in radians per second
const (
	yawSpeed   = 0.8
	pitchSpeed = 0.6
)

// CubeTransform returns the model view projection matrix of the cube t seconds
// after the start, as seen by camera on a target with the given aspect ratio.
func CubeTransform(camera scene.Camera, aspect float32, t float32) glm.Mat4f {
	model := glm.YawPitchMat4[float32](glm.Rad(t*yawSpeed), glm.Rad(t*pitchSpeed))
	return camera.ViewProjection(aspect).Mul(model)
}
