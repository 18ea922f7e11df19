package chunkstore

import (
	"sync"
	"testing"

	"voxelcore/internal/voxel"
)

func TestMarkLoadingThenInsertClearsLoading(t *testing.T) {
	s := New()
	coord := voxel.ChunkCoord{X: 1, Y: 2, Z: 3}

	if !s.MarkLoading(coord) {
		t.Fatal("first MarkLoading should succeed")
	}
	if !s.IsLoading(coord) {
		t.Fatal("expected coord to be loading")
	}
	if s.MarkLoading(coord) {
		t.Fatal("second MarkLoading for the same coord should fail")
	}

	s.Insert(coord, voxel.NewChunk(coord))

	if s.IsLoading(coord) {
		t.Fatal("Insert should clear the loading mark")
	}
	if !s.Contains(coord) {
		t.Fatal("expected coord to be loaded after Insert")
	}
}

func TestAtMostOneOfLoadedOrLoading(t *testing.T) {
	s := New()
	coord := voxel.ChunkCoord{}
	s.Insert(coord, voxel.NewChunk(coord))

	if s.MarkLoading(coord) {
		t.Fatal("MarkLoading must fail for an already-loaded coord")
	}
}

func TestCancelLoadingAllowsRetry(t *testing.T) {
	s := New()
	coord := voxel.ChunkCoord{X: 5}
	s.MarkLoading(coord)
	s.CancelLoading(coord)

	if s.IsLoading(coord) {
		t.Fatal("expected loading mark to be cleared")
	}
	if !s.MarkLoading(coord) {
		t.Fatal("expected MarkLoading to succeed again after cancel")
	}
}

func TestNeighbors6(t *testing.T) {
	s := New()
	center := voxel.ChunkCoord{X: 0, Y: 0, Z: 0}
	right := voxel.ChunkCoord{X: 1, Y: 0, Z: 0}
	s.Insert(right, voxel.NewChunk(right))

	nbs := s.Neighbors6(center)
	if nbs[voxel.Right] == nil {
		t.Fatal("expected Right neighbor to be resolved")
	}
	if nbs[voxel.Left] != nil {
		t.Fatal("expected Left neighbor to be nil (not loaded)")
	}
}

func TestEvictOutsideRadius(t *testing.T) {
	s := New()
	near := voxel.ChunkCoord{X: 0, Y: 0, Z: 0}
	far := voxel.ChunkCoord{X: 100, Y: 0, Z: 100}
	s.Insert(near, voxel.NewChunk(near))
	s.Insert(far, voxel.NewChunk(far))

	removed := s.EvictOutsideRadius(voxel.ChunkCoord{}, 5)
	if len(removed) != 1 || removed[0] != far {
		t.Fatalf("expected only the far chunk removed, got %v", removed)
	}
	if !s.Contains(near) {
		t.Fatal("near chunk should still be present")
	}
	if s.Contains(far) {
		t.Fatal("far chunk should have been evicted")
	}
}

func TestEvictOutsideRadiusKeepsBoxCorner(t *testing.T) {
	s := New()
	corner := voxel.ChunkCoord{X: 2, Y: 2, Z: 2} // Euclidean dist sqrt(12) > 2, Chebyshev dist == 2
	s.Insert(corner, voxel.NewChunk(corner))

	removed := s.EvictOutsideRadius(voxel.ChunkCoord{}, 2)
	if len(removed) != 0 {
		t.Fatalf("expected box-corner chunk within the Chebyshev radius to survive, got removed=%v", removed)
	}
	if !s.Contains(corner) {
		t.Fatal("expected box-corner chunk to remain resident")
	}
}

func TestCoordsReflectsResidentSet(t *testing.T) {
	s := New()
	a := voxel.ChunkCoord{X: 1}
	b := voxel.ChunkCoord{X: 2}
	s.Insert(a, voxel.NewChunk(a))
	s.Insert(b, voxel.NewChunk(b))

	coords := s.Coords()
	if len(coords) != 2 {
		t.Fatalf("expected 2 coords, got %d", len(coords))
	}
	if _, ok := coords[a]; !ok {
		t.Fatal("expected a to be present")
	}
	if _, ok := coords[b]; !ok {
		t.Fatal("expected b to be present")
	}

	s.Remove(a)
	if _, ok := s.Coords()[a]; ok {
		t.Fatal("expected a to be absent after Remove")
	}
}

func TestConcurrentAccess(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int32) {
			defer wg.Done()
			coord := voxel.ChunkCoord{X: i}
			if s.MarkLoading(coord) {
				s.Insert(coord, voxel.NewChunk(coord))
			}
			s.Get(coord)
			s.Contains(coord)
		}(int32(i % 10))
	}
	wg.Wait()
}
