package glm

import (
	"golang.org/x/mobile/exp/f32"
)

// sincos is exact for zero: sin(0) = 0 and cos(0) = 1, so a zero
// rotation always yields the identity matrix.
func sincos(r Rad) (float32, float32) {
	return f32.Sin(float32(r)), f32.Cos(float32(r))
}

func tan(r Rad) float32 {
	return f32.Tan(float32(r))
}
