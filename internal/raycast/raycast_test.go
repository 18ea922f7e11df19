package raycast

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"voxelcore/internal/voxel"
)

// mapSource is a sparse in-memory block source for tests, grounded on the
// teacher's raycast_test.go use of a simple map-backed world fixture.
type mapSource map[[3]int32]voxel.Block

func (m mapSource) BlockAt(x, y, z int32) voxel.Block {
	if b, ok := m[[3]int32{x, y, z}]; ok {
		return b
	}
	return voxel.Air
}

func TestCastMissWhenNothingInRange(t *testing.T) {
	src := mapSource{}
	_, hit := Cast(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, 10, src)
	if hit {
		t.Fatal("expected no hit in an empty world")
	}
}

func TestCastHitsAdjacentBlockAlongAxis(t *testing.T) {
	src := mapSource{{5, 0, 0}: voxel.Stone}
	hit, ok := Cast(mgl32.Vec3{0.5, 0.5, 0.5}, mgl32.Vec3{1, 0, 0}, 10, src)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Block != [3]int32{5, 0, 0} {
		t.Fatalf("expected hit at (5,0,0), got %v", hit.Block)
	}
	if hit.Adjacent != [3]int32{4, 0, 0} {
		t.Fatalf("expected adjacent voxel (4,0,0), got %v", hit.Adjacent)
	}
	if hit.Face != voxel.Left {
		t.Fatalf("expected entry face Left (ray moving +X), got %v", hit.Face)
	}
}

func TestCastRespectsMaxDistance(t *testing.T) {
	src := mapSource{{50, 0, 0}: voxel.Stone}
	_, hit := Cast(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, 5, src)
	if hit {
		t.Fatal("expected the block beyond maxDist to be missed")
	}
}

func TestCastNegativeDirectionFace(t *testing.T) {
	src := mapSource{{-5, 0, 0}: voxel.Stone}
	hit, ok := Cast(mgl32.Vec3{0.5, 0.5, 0.5}, mgl32.Vec3{-1, 0, 0}, 10, src)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Face != voxel.Right {
		t.Fatalf("expected entry face Right (ray moving -X), got %v", hit.Face)
	}
}

func TestCastStartingInsideSolidIsImmediateHit(t *testing.T) {
	src := mapSource{{0, 0, 0}: voxel.Stone}
	hit, ok := Cast(mgl32.Vec3{0.5, 0.5, 0.5}, mgl32.Vec3{1, 0, 0}, 10, src)
	if !ok {
		t.Fatal("expected an immediate hit")
	}
	if hit.Distance != 0 {
		t.Fatalf("expected distance 0, got %v", hit.Distance)
	}
}

func TestCastAxisRayCrossesChunkSeamConsistently(t *testing.T) {
	// A block placed just across a chunk boundary (x=32) must be reachable
	// exactly like any other block: the DDA has no notion of chunk seams.
	src := mapSource{{voxel.ChunkSize, 10, 10}: voxel.Stone}
	hit, ok := Cast(mgl32.Vec3{31.5, 10.5, 10.5}, mgl32.Vec3{1, 0, 0}, 10, src)
	if !ok {
		t.Fatal("expected a hit across the chunk seam")
	}
	if hit.Block != [3]int32{voxel.ChunkSize, 10, 10} {
		t.Fatalf("expected hit at the seam block, got %v", hit.Block)
	}
}
