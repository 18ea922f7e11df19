// Package observer models the position and viewing parameters of whoever
// the streamer, ray caster, and frustum culler operate around — grounded
// on the teacher's Camera (internal/graphics/camera.go) and the
// yaw/pitch-to-front-vector math in internal/player/camera.go, stripped of
// the player's movement, collision, and head-bob state that belong to
// physics rather than this spec's core (spec.md §6).
package observer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"voxelcore/internal/voxel"
)

// Observer is a position plus perspective parameters: everything the
// streamer, ray caster, and frustum culler need to operate, and nothing
// else (no velocity, no collision box, no inventory).
type Observer struct {
	Position mgl32.Vec3
	Yaw      float32 // degrees
	Pitch    float32 // degrees, clamped to [-89,89] by SetPitch

	FOV    float32 // degrees
	Aspect float32
	Near   float32
	Far    float32
}

// New creates an Observer with the teacher's default perspective
// parameters (internal/graphics/camera.go's NewCamera).
func New(position mgl32.Vec3, aspect float32) Observer {
	return Observer{
		Position: position,
		FOV:      60.0,
		Aspect:   aspect,
		Near:     0.1,
		Far:      1000.0,
	}
}

// SetPitch clamps pitch to [-89,89] degrees, the teacher's
// gimbal-lock guard (internal/player/camera.go's UpdateCamera).
func (o *Observer) SetPitch(pitch float32) {
	switch {
	case pitch > 89:
		pitch = 89
	case pitch < -89:
		pitch = -89
	}
	o.Pitch = pitch
}

// Front returns the unit look direction for the current yaw/pitch.
func (o Observer) Front() mgl32.Vec3 {
	y := mgl32.DegToRad(o.Yaw)
	p := mgl32.DegToRad(o.Pitch)
	x := float32(math.Cos(float64(y)) * math.Cos(float64(p)))
	fy := float32(math.Sin(float64(p)))
	z := float32(math.Sin(float64(y)) * math.Cos(float64(p)))
	return mgl32.Vec3{x, fy, z}.Normalize()
}

// ViewMatrix returns the look-at matrix for the observer's current pose.
func (o Observer) ViewMatrix() mgl32.Mat4 {
	target := o.Position.Add(o.Front())
	return mgl32.LookAtV(o.Position, target, mgl32.Vec3{0, 1, 0})
}

// ProjectionMatrix returns the perspective projection for the observer's
// FOV/aspect/near/far.
func (o Observer) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(o.FOV), o.Aspect, o.Near, o.Far)
}

// ViewProjection returns ProjectionMatrix * ViewMatrix, the matrix the
// frustum culler extracts planes from.
func (o Observer) ViewProjection() mgl32.Mat4 {
	return o.ProjectionMatrix().Mul4(o.ViewMatrix())
}

// ChunkCoord returns the chunk coordinate containing the observer's
// position, the center the streamer streams chunks around.
func (o Observer) ChunkCoord() voxel.ChunkCoord {
	coord, _ := voxel.ChunkOf(int32(math.Floor(float64(o.Position.X()))), int32(math.Floor(float64(o.Position.Y()))), int32(math.Floor(float64(o.Position.Z()))))
	return coord
}
