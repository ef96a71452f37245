package scene

import "github.com/oliverbestmann/meme/glm"

// Camera describes a perspective camera looking from Position at Target.
type Camera struct {
	Position glm.Vec3f
	Target   glm.Vec3f
	Up       glm.Vec3f

	// vertical field of view
	FovY glm.Rad

	Near float32
	Far  float32
}

// DefaultCamera looks at the origin from five units in front of it.
func DefaultCamera() Camera {
	return Camera{
		Position: glm.Vec3f{0, 0, -5},
		Target:   glm.Vec3f{0, 0, 0},
		Up:       glm.Vec3f{0, 1, 0},
		FovY:     glm.DegToRad[float32](45),
		Near:     0.1,
		Far:      100,
	}
}

func (c Camera) View() glm.Mat4f {
	return glm.LookAt(c.Position, c.Target, c.Up)
}

func (c Camera) Projection(aspect float32) glm.Mat4f {
	return glm.Perspective(c.FovY, aspect, c.Near, c.Far)
}

// ViewProjection returns projection × view for the given aspect ratio.
func (c Camera) ViewProjection(aspect float32) glm.Mat4f {
	return c.Projection(aspect).Mul(c.View())
}
