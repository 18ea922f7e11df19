package mesher

import (
	"testing"

	"voxelcore/internal/voxel"
)

// airFallback always reports Air, used where a test chunk is meant to be
// surrounded by open space.
type airFallback struct{}

func (airFallback) BlockAtWorld(x, y, z int32) voxel.Block { return voxel.Air }

func singleStoneChunk() *voxel.Chunk {
	c := voxel.NewChunk(voxel.ChunkCoord{})
	c.Set(5, 5, 5, voxel.Stone)
	return c
}

func TestBuildEmptyChunkIsNil(t *testing.T) {
	c := voxel.NewChunk(voxel.ChunkCoord{})
	if m := Build(c, Neighbors{}, airFallback{}); m != nil {
		t.Fatalf("expected nil mesh for all-air chunk, got %d vertices", len(m.Vertices))
	}
}

func TestBuildSingleBlockSixFaces(t *testing.T) {
	c := singleStoneChunk()
	m := Build(c, Neighbors{}, airFallback{})
	if m == nil {
		t.Fatal("expected a mesh")
	}
	if len(m.Vertices) != 6*4 {
		t.Fatalf("expected 24 vertices (6 faces * 4 corners), got %d", len(m.Vertices))
	}
	if len(m.Indices) != 6*6 {
		t.Fatalf("expected 36 indices (6 faces * 6), got %d", len(m.Indices))
	}
}

func TestBuildDeterministic(t *testing.T) {
	c := singleStoneChunk()
	m1 := Build(c, Neighbors{}, airFallback{})
	m2 := Build(c, Neighbors{}, airFallback{})
	if len(m1.Vertices) != len(m2.Vertices) {
		t.Fatalf("vertex count differs across builds: %d vs %d", len(m1.Vertices), len(m2.Vertices))
	}
	for i := range m1.Vertices {
		if m1.Vertices[i] != m2.Vertices[i] {
			t.Fatalf("vertex %d differs: %#x vs %#x", i, m1.Vertices[i], m2.Vertices[i])
		}
	}
}

func TestAOMonotonicWithOccluders(t *testing.T) {
	bare := voxel.NewChunk(voxel.ChunkCoord{})
	bare.Set(10, 10, 10, voxel.Stone)

	occluded := voxel.NewChunk(voxel.ChunkCoord{})
	occluded.Set(10, 10, 10, voxel.Stone)
	// Pack two occluders against the Top face's neighborhood to push at
	// least one corner to a higher (darker) AO level.
	occluded.Set(10, 11, 11, voxel.Stone)
	occluded.Set(11, 11, 10, voxel.Stone)

	mBare := Build(bare, Neighbors{}, airFallback{})
	mOccluded := Build(occluded, Neighbors{}, airFallback{})

	maxAO := func(m *Mesh, dir voxel.Direction) int {
		max := -1
		for _, v := range m.Vertices {
			if voxel.Direction((v>>dirShift)&dirMask) != dir {
				continue
			}
			level := int((v >> aoShift) & aoMask)
			if level > max {
				max = level
			}
		}
		return max
	}

	bareTop := maxAO(mBare, voxel.Top)
	occludedTop := maxAO(mOccluded, voxel.Top)
	if occludedTop < bareTop {
		t.Fatalf("adding occluders decreased AO darkness: bare=%d occluded=%d", bareTop, occludedTop)
	}
}

func TestBuildUsesNeighborChunkAtSeam(t *testing.T) {
	c := voxel.NewChunk(voxel.ChunkCoord{})
	c.Set(0, 0, 0, voxel.Stone) // at the Left seam (local x == 0)

	leftNeighbor := voxel.NewChunk(voxel.ChunkCoord{X: -1})
	leftNeighbor.Set(voxel.ChunkSize-1, 0, 0, voxel.Stone) // abuts (0,0,0) across the seam

	var neighbors Neighbors
	neighbors[voxel.Left] = leftNeighbor

	m := Build(c, neighbors, airFallback{})
	if m == nil {
		t.Fatal("expected a mesh")
	}
	for _, v := range m.Vertices {
		if voxel.Direction((v>>dirShift)&dirMask) == voxel.Left {
			t.Fatalf("left face should be suppressed: neighbor chunk has a solid block across the seam")
		}
	}
}

func TestBuildFallsBackToGeneratorAtSeamWithoutNeighbor(t *testing.T) {
	c := voxel.NewChunk(voxel.ChunkCoord{})
	c.Set(0, 0, 0, voxel.Stone)

	m := Build(c, Neighbors{}, airFallback{})
	if m == nil {
		t.Fatal("expected a mesh")
	}
	found := false
	for _, v := range m.Vertices {
		if voxel.Direction((v>>dirShift)&dirMask) == voxel.Left {
			found = true
		}
	}
	if !found {
		t.Fatal("left face should be emitted: fallback reports air across the seam")
	}
}
