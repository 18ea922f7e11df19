// Package raycast finds the first solid block along a ray using the
// Amanatides-Woo 3D DDA algorithm, replacing the teacher's fixed-step
// marching raycast (internal/physics/raycast.go) with an algorithm that
// visits every voxel the ray actually crosses, however far or however
// shallow the ray's angle (spec.md §4.7).
package raycast

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"voxelcore/internal/voxel"
)

// MinReach and MaxReach bound the interaction range the same way the
// teacher's MinReachDistance/MaxReachDistance do (internal/physics/raycast.go),
// kept here as defaults callers may use but are not enforced by Cast itself.
const (
	MinReach = 0.1
	MaxReach = 5.0
)

// Source answers what block occupies a world-space voxel. It is the query
// surface the caster needs and nothing else, so it can be backed by a
// chunkstore.Store, a single chunk, or a test fixture.
type Source interface {
	BlockAt(x, y, z int32) voxel.Block
}

// Hit describes the first solid voxel struck by a ray.
type Hit struct {
	Block    [3]int32
	Adjacent [3]int32 // voxel immediately before Block along the ray, i.e. where a placed block would go
	Face     voxel.Direction
	Distance float32
}

// Cast walks the ray (origin, dir) up to maxDist world units and returns
// the first voxel along it for which src reports a solid block. dir need
// not be normalized; distances are reported in units of dir's own length so
// callers should pass a normalized direction if they want world-unit
// distances.
func Cast(origin, dir mgl32.Vec3, maxDist float32, src Source) (Hit, bool) {
	bx, by, bz := int32(math.Floor(float64(origin.X()))), int32(math.Floor(float64(origin.Y()))), int32(math.Floor(float64(origin.Z())))

	if src.BlockAt(bx, by, bz).IsSolid() {
		return Hit{Block: [3]int32{bx, by, bz}, Adjacent: [3]int32{bx, by, bz}, Distance: 0}, true
	}

	stepX, tMaxX, tDeltaX := axisStep(origin.X(), dir.X(), bx)
	stepY, tMaxY, tDeltaY := axisStep(origin.Y(), dir.Y(), by)
	stepZ, tMaxZ, tDeltaZ := axisStep(origin.Z(), dir.Z(), bz)

	prevX, prevY, prevZ := bx, by, bz

	for {
		var axis int
		var t float32
		switch {
		case tMaxX <= tMaxY && tMaxX <= tMaxZ:
			axis, t = 0, tMaxX
		case tMaxY <= tMaxZ:
			axis, t = 1, tMaxY
		default:
			axis, t = 2, tMaxZ
		}

		if t > maxDist {
			return Hit{}, false
		}

		prevX, prevY, prevZ = bx, by, bz
		var face voxel.Direction
		switch axis {
		case 0:
			bx += stepX
			tMaxX += tDeltaX
			if stepX > 0 {
				face = voxel.Left
			} else {
				face = voxel.Right
			}
		case 1:
			by += stepY
			tMaxY += tDeltaY
			if stepY > 0 {
				face = voxel.Bottom
			} else {
				face = voxel.Top
			}
		default:
			bz += stepZ
			tMaxZ += tDeltaZ
			if stepZ > 0 {
				face = voxel.Back
			} else {
				face = voxel.Front
			}
		}

		if src.BlockAt(bx, by, bz).IsSolid() {
			return Hit{
				Block:    [3]int32{bx, by, bz},
				Adjacent: [3]int32{prevX, prevY, prevZ},
				Face:     face,
				Distance: t,
			}, true
		}
	}
}

// axisStep computes one axis's initial step direction, distance to the
// first voxel boundary (tMax), and the per-voxel boundary-crossing
// distance (tDelta), per Amanatides & Woo 1987.
func axisStep(origin, d float32, voxelCoord int32) (step int32, tMax, tDelta float32) {
	switch {
	case d > 0:
		boundary := float32(voxelCoord + 1)
		return 1, (boundary - origin) / d, 1 / d
	case d < 0:
		boundary := float32(voxelCoord)
		return -1, (boundary - origin) / d, -1 / d
	default:
		return 0, float32(math.Inf(1)), float32(math.Inf(1))
	}
}
