// Package frustum culls chunk bounding boxes (and arbitrary spheres)
// against a camera's view-projection matrix, grounded on the teacher's
// plane-extraction and p/n-vertex AABB test
// (internal/graphics/renderables/blocks/frustum.go), generalized into a
// standalone, exported API (spec.md §4.8).
package frustum

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Plane is ax+by+cz+d, in the convention that a point is "inside" the
// half-space when the expression is >= 0.
type Plane struct {
	A, B, C, D float32
}

// Planes are ordered Left, Right, Bottom, Top, Near, Far — the same order
// the teacher extracts them in.
const (
	PlaneLeft = iota
	PlaneRight
	PlaneBottom
	PlaneTop
	PlaneNear
	PlaneFar
)

// Frustum is six half-space planes. Extract produces unnormalized planes;
// IntersectsAABB works correctly either way (only the sign of the
// half-space test matters), but IntersectsSphere needs true Euclidean
// distances and requires a Normalized frustum.
type Frustum struct {
	Planes [6]Plane
}

// Extract builds the six frustum planes from a combined
// projection*view ("clip") matrix, using mgl32's column-major layout.
func Extract(clip mgl32.Mat4) Frustum {
	m00, m01, m02, m03 := clip[0], clip[4], clip[8], clip[12]
	m10, m11, m12, m13 := clip[1], clip[5], clip[9], clip[13]
	m20, m21, m22, m23 := clip[2], clip[6], clip[10], clip[14]
	m30, m31, m32, m33 := clip[3], clip[7], clip[11], clip[15]

	return Frustum{Planes: [6]Plane{
		PlaneLeft:   {m30 + m00, m31 + m01, m32 + m02, m33 + m03},
		PlaneRight:  {m30 - m00, m31 - m01, m32 - m02, m33 - m03},
		PlaneBottom: {m30 + m10, m31 + m11, m32 + m12, m33 + m13},
		PlaneTop:    {m30 - m10, m31 - m11, m32 - m12, m33 - m13},
		PlaneNear:   {m30 + m20, m31 + m21, m32 + m22, m33 + m23},
		PlaneFar:    {m30 - m20, m31 - m21, m32 - m22, m33 - m23},
	}}
}

func (p Plane) normalized() Plane {
	length := float32(math.Sqrt(float64(p.A*p.A + p.B*p.B + p.C*p.C)))
	if length == 0 {
		return p
	}
	return Plane{p.A / length, p.B / length, p.C / length, p.D / length}
}

// Normalized returns f with every plane's normal scaled to unit length, a
// prerequisite for IntersectsSphere's distance test.
func (f Frustum) Normalized() Frustum {
	var out Frustum
	for i, p := range f.Planes {
		out.Planes[i] = p.normalized()
	}
	return out
}

// IntersectsAABB reports whether the axis-aligned box [min,max] is at
// least partially inside the frustum, using the standard p-vertex trick:
// for each plane, test only the box corner most likely to be inside (the
// one chosen by each axis's plane-normal sign), which is sufficient to
// reject a box that the frustum fully excludes (spec.md §4.8).
func (f Frustum) IntersectsAABB(min, max mgl32.Vec3) bool {
	for _, p := range f.Planes {
		px := max.X()
		if p.A < 0 {
			px = min.X()
		}
		py := max.Y()
		if p.B < 0 {
			py = min.Y()
		}
		pz := max.Z()
		if p.C < 0 {
			pz = min.Z()
		}
		if p.A*px+p.B*py+p.C*pz+p.D < 0 {
			return false
		}
	}
	return true
}

// IntersectsSphere reports whether the sphere at center with radius is at
// least partially inside the frustum. f must be Normalized(): the test
// relies on A,B,C forming a unit normal so that the plane expression
// equals the signed Euclidean distance from center to the plane.
func (f Frustum) IntersectsSphere(center mgl32.Vec3, radius float32) bool {
	for _, p := range f.Planes {
		dist := p.A*center.X() + p.B*center.Y() + p.C*center.Z() + p.D
		if dist < -radius {
			return false
		}
	}
	return true
}
