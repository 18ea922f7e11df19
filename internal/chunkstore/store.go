// Package chunkstore holds the set of currently-resident chunks and tracks
// which coordinates are mid-build, guarded by a single RWMutex in the same
// double-checked-locking style the teacher's world.ChunkStore uses (spec.md
// §4.3).
package chunkstore

import (
	"sync"

	"voxelcore/internal/voxel"
)

// Store is a concurrent ChunkCoord -> *voxel.Chunk map plus a "loading" set
// recording coordinates whose build has been dispatched but not yet
// applied. A coordinate is in at most one of {loaded, loading} at any
// instant (spec.md §4.3 invariant); Insert atomically moves a coordinate
// out of loading and into loaded.
type Store struct {
	mu      sync.RWMutex
	chunks  map[voxel.ChunkCoord]*voxel.Chunk
	loading map[voxel.ChunkCoord]struct{}
}

// New creates an empty store.
func New() *Store {
	return &Store{
		chunks:  make(map[voxel.ChunkCoord]*voxel.Chunk),
		loading: make(map[voxel.ChunkCoord]struct{}),
	}
}

// Get returns the chunk at coord and whether it is present. The returned
// pointer is the stored chunk itself, not a copy; the only writer of a
// resident chunk's block data is internal/interaction, through
// voxel.Chunk.Set.
func (s *Store) Get(coord voxel.ChunkCoord) (*voxel.Chunk, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.chunks[coord]
	return c, ok
}

// Contains reports whether coord currently has a loaded chunk.
func (s *Store) Contains(coord voxel.ChunkCoord) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.chunks[coord]
	return ok
}

// IsLoading reports whether coord has an in-flight build that has not yet
// been inserted.
func (s *Store) IsLoading(coord voxel.ChunkCoord) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.loading[coord]
	return ok
}

// MarkLoading records coord as in-flight. It returns false without
// changing any state if coord is already loaded or already loading, so a
// caller never dispatches two builds for the same coordinate (spec.md §5
// ordering rule 1).
func (s *Store) MarkLoading(coord voxel.ChunkCoord) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.chunks[coord]; ok {
		return false
	}
	if _, ok := s.loading[coord]; ok {
		return false
	}
	s.loading[coord] = struct{}{}
	return true
}

// Insert installs a freshly-built chunk and clears its loading mark. The
// chunk is installed whether or not the coordinate was marked loading
// first, so a caller that builds speculatively outside the normal
// MarkLoading/Insert pairing still gets it stored.
func (s *Store) Insert(coord voxel.ChunkCoord, c *voxel.Chunk) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chunks[coord] = c
	delete(s.loading, coord)
}

// CancelLoading clears coord's loading mark without installing a chunk,
// used when a dispatched build comes back as a transient failure (spec.md
// §7) and the coordinate should become eligible for a retry.
func (s *Store) CancelLoading(coord voxel.ChunkCoord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.loading, coord)
}

// Remove evicts coord's chunk, if any, and returns whether it existed.
func (s *Store) Remove(coord voxel.ChunkCoord) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.chunks[coord]; !ok {
		return false
	}
	delete(s.chunks, coord)
	return true
}

// Coords returns the set of currently-resident chunk coordinates, used by
// a renderer to know which coordinates it should have GPU buffers for.
func (s *Store) Coords() map[voxel.ChunkCoord]struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[voxel.ChunkCoord]struct{}, len(s.chunks))
	for coord := range s.chunks {
		out[coord] = struct{}{}
	}
	return out
}

// Len returns the number of loaded chunks.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.chunks)
}

// Neighbors6 resolves the six face-adjacent chunks of coord as a
// mesher.Neighbors-shaped array, leaving an entry nil where that neighbor
// is not currently resident. Exposed here (rather than in mesher) because
// only the store knows what is loaded.
func (s *Store) Neighbors6(coord voxel.ChunkCoord) [6]*voxel.Chunk {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out [6]*voxel.Chunk
	for _, d := range voxel.Directions {
		n := d.Normal()
		nc := coord.Add(int32(n[0]), int32(n[1]), int32(n[2]))
		out[d] = s.chunks[nc]
	}
	return out
}

// EvictOutsideRadius removes every loaded chunk outside the axis-aligned
// box center±radius on any axis, grounded on the teacher's EvictFarChunks
// (internal/world/chunk_store.go) but generalized from an XZ-column test
// to all three axes, per spec.md's Chebyshev radius: "despawn anything
// outside pc±R on any axis". It returns the removed coordinates so the
// caller can release any GPU-side mesh buffers.
func (s *Store) EvictOutsideRadius(center voxel.ChunkCoord, radius int32) []voxel.ChunkCoord {
	s.mu.Lock()
	defer s.mu.Unlock()
	var removed []voxel.ChunkCoord
	for coord := range s.chunks {
		dx := abs32(coord.X - center.X)
		dy := abs32(coord.Y - center.Y)
		dz := abs32(coord.Z - center.Z)
		if dx > radius || dy > radius || dz > radius {
			delete(s.chunks, coord)
			removed = append(removed, coord)
		}
	}
	return removed
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
