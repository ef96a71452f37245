package glm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityIsNeutral(t *testing.T) {
	m := Mat4Of([4][4]float32{
		{2, 0, 0, 0},
		{0, 2, 0, 0},
		{0, 0, 2, 0},
		{1, 2, 3, 1},
	})

	assert.Equal(t, m, m.Mul(IdentityMat4[float32]()))
	assert.Equal(t, m, IdentityMat4[float32]().Mul(m))
}

func TestZeroRotationIsIdentity(t *testing.T) {
	assert.Equal(t, IdentityMat4[float32](), YawPitchMat4[float32](0, 0))
}

func TestYawRotatesAroundY(t *testing.T) {
	m := RotationYMat4[float32](math.Pi / 2)
	v := m.Transform(Vec4f{1, 0, 0, 1})

	assert.InDelta(t, 0, v[0], 1e-6)
	assert.InDelta(t, 0, v[1], 1e-6)
	assert.InDelta(t, -1, v[2], 1e-6)
}

func TestPitchRotatesAroundX(t *testing.T) {
	m := RotationXMat4[float32](math.Pi / 2)
	v := m.Transform(Vec4f{0, 1, 0, 1})

	assert.InDelta(t, 0, v[0], 1e-6)
	assert.InDelta(t, 0, v[1], 1e-6)
	assert.InDelta(t, 1, v[2], 1e-6)
}

func TestRotationKeepsLength(t *testing.T) {
	m := YawPitchMat4[float32](1.3, -0.4)
	v := m.Transform(Vec4f{1, 2, 3, 0})

	assert.InDelta(t, Vec3f{1, 2, 3}.Length(), v.Truncate().Length(), 1e-5)
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	eye := Vec3f{0, 0, -5}
	view := LookAt(eye, Vec3f{}, Vec3f{0, 1, 0})

	atEye := view.Transform(eye.Extend(1))
	assert.InDelta(t, 0, atEye.Truncate().Length(), 1e-6)

	// the target ends up straight ahead, which is -z in view space
	atTarget := view.Transform(Vec4f{0, 0, 0, 1})
	assert.InDelta(t, 0, atTarget[0], 1e-6)
	assert.InDelta(t, 0, atTarget[1], 1e-6)
	assert.InDelta(t, -5, atTarget[2], 1e-6)
}

func TestPerspectiveDepthRange(t *testing.T) {
	proj := Perspective[float32](DegToRad(45.0), 16.0/9.0, 0.1, 100)

	near := proj.Transform(Vec4f{0, 0, -0.1, 1})
	require.NotZero(t, near[3])
	assert.InDelta(t, 0, near[2]/near[3], 1e-5)

	far := proj.Transform(Vec4f{0, 0, -100, 1})
	require.NotZero(t, far[3])
	assert.InDelta(t, 1, far[2]/far[3], 1e-5)
}

func TestDegToRad(t *testing.T) {
	assert.InDelta(t, math.Pi/4, float64(DegToRad(45.0)), 1e-7)
}

func TestVec4Clamp(t *testing.T) {
	v := Vec4f{-1, 0.5, 2, 1}
	assert.Equal(t, Vec4f{0, 0.5, 1, 1}, v.Clamp(Vec4f{}, Vec4f{1, 1, 1, 1}))
}

func TestNormalizeZero(t *testing.T) {
	assert.Equal(t, Vec3f{}, Vec3f{}.Normalize())
}
