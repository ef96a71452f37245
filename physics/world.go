// Package physics owns the rigid body simulation stepped by the frame loop.
package physics

import (
	"log/slog"

	b2 "github.com/oliverbestmann/box2d-go"
)

const subSteps = 4

// World is a box2d world with a static ground and a single dynamic body
// dropped onto it.
type World struct {
	world  b2.World
	ground b2.Body
	body   b2.Body

	steps uint64
}

func New() *World {
	worldDef := b2.DefaultWorldDef()
	worldDef.Gravity = b2.Vec2{X: 0, Y: -9.81}

	w := &World{world: b2.CreateWorld(worldDef)}
	w.ground = w.createGround()
	w.body = w.createBody()

	return w
}

func (w *World) createGround() b2.Body {
	def := b2.DefaultBodyDef()
	def.Type1 = b2.StaticBody
	def.Position = b2.Vec2{X: 0, Y: -1}
	body := w.world.CreateBody(def)

	hull, ok := b2.ComputeHull([]b2.Vec2{
		{X: -50, Y: -0.5},
		{X: 50, Y: -0.5},
		{X: 50, Y: 0.5},
		{X: -50, Y: 0.5},
	})
	if !ok {
		panic("ground hull is degenerate")
	}

	body.CreatePolygonShape(b2.DefaultShapeDef(), b2.MakePolygon(hull, 0))

	return body
}

func (w *World) createBody() b2.Body {
	def := b2.DefaultBodyDef()
	def.Type1 = b2.DynamicBody
	def.Position = b2.Vec2{X: 0, Y: 4}
	body := w.world.CreateBody(def)

	shape := b2.DefaultShapeDef()
	body.CreateCircleShape(shape, b2.Circle{Radius: 0.5})

	return body
}

// Step advances the simulation by deltaSeconds. Non positive deltas are ignored.
func (w *World) Step(deltaSeconds float32) {
	if deltaSeconds <= 0 {
		return
	}

	w.world.Step(deltaSeconds, subSteps)
	w.steps += 1

	if w.steps%600 == 0 {
		x, y := w.BodyPosition()
		slog.Debug("Physics stepped",
			slog.Uint64("steps", w.steps),
			slog.Float64("bodyX", float64(x)),
			slog.Float64("bodyY", float64(y)),
		)
	}
}

// Steps returns the number of simulation steps taken.
func (w *World) Steps() uint64 {
	return w.steps
}

// BodyPosition returns the position of the dynamic body.
func (w *World) BodyPosition() (x, y float32) {
	pos := w.body.GetPosition()
	return pos.X, pos.Y
}
