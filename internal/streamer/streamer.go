// Package streamer drives chunk loading, meshing, and eviction around a
// moving observer with a bounded amount of work per frame, so no single
// frame stalls on a burst of newly-visible chunks (spec.md §4.6).
package streamer

import (
	"sort"

	"voxelcore/internal/chunkstore"
	"voxelcore/internal/mesher"
	"voxelcore/internal/terrain"
	"voxelcore/internal/voxel"
)

// Streamer owns the generation and meshing worker pools and the policy
// that decides, each tick, which coordinates to request, poll, or evict. It
// is grounded on the teacher's ChunkStreamer (internal/world/chunk_streamer.go),
// generalized from an XZ-column radius to a full 3D Chebyshev box radius
// (spec.md's R is defined as a Chebyshev radius: a box, not a sphere, and
// clamped to never go below world-chunk y=0) and from a single generation
// stage to the two-stage generate-then-mesh pipeline spec.md §4.6
// describes.
type Streamer struct {
	store  *chunkstore.Store
	gen    *terrain.WorkerPool
	mesh   *mesher.WorkerPool
	field  mesher.Fallback // terrain.Generator satisfies this via BlockAtWorld
	radius int32

	genResults  chan terrain.BuildResult
	meshResults chan mesher.MeshResult

	meshes map[voxel.ChunkCoord]*mesher.Mesh
}

// New creates a Streamer over store, using gen to build chunk contents and
// mesh to mesh them, keeping resident the axis-aligned box of chunks
// within radius (Chebyshev, in chunk units) of any given observer
// position, clamped so no coordinate below world-chunk y=0 is ever
// requested or kept.
func New(store *chunkstore.Store, gen *terrain.WorkerPool, mesh *mesher.WorkerPool, fallback mesher.Fallback, radius int32) *Streamer {
	return &Streamer{
		store:       store,
		gen:         gen,
		mesh:        mesh,
		field:       fallback,
		radius:      radius,
		genResults:  make(chan terrain.BuildResult, 256),
		meshResults: make(chan mesher.MeshResult, 256),
		meshes:      make(map[voxel.ChunkCoord]*mesher.Mesh),
	}
}

// Mesh returns the most recently built mesh for coord, if any.
func (s *Streamer) Mesh(coord voxel.ChunkCoord) (*mesher.Mesh, bool) {
	m, ok := s.meshes[coord]
	return m, ok
}

// Tick performs one frame's bounded slice of streaming work around center:
// it requests up to genCap new chunk builds, drains up to genCap completed
// builds into the store (queueing each for a mesh rebuild, along with its
// resident neighbors), drains up to meshCap completed mesh builds into the
// mesh cache, and evicts chunks that fell outside the radius. None of these
// steps block, so a frame's total streaming cost is bounded by
// genCap+meshCap regardless of how many coordinates are newly in view
// (spec.md §4.6, §5).
func (s *Streamer) Tick(center voxel.ChunkCoord, genCap, meshCap int) {
	s.requestMissing(center, genCap)
	s.drainGenerated(genCap)
	s.drainMeshed(meshCap)
	s.evict(center)
}

// requestMissing dispatches generation jobs for up to cap coordinates
// within radius of center that are neither loaded nor already loading,
// nearest first so a shrinking radius always finishes the closest ring.
func (s *Streamer) requestMissing(center voxel.ChunkCoord, cap int) {
	if cap <= 0 {
		return
	}
	dispatched := 0
	for _, coord := range s.coordsInRadius(center) {
		if dispatched >= cap {
			return
		}
		if s.store.Contains(coord) || s.store.IsLoading(coord) {
			continue
		}
		if !s.store.MarkLoading(coord) {
			continue
		}
		if !s.gen.Submit(coord, s.genResults) {
			s.store.CancelLoading(coord)
			continue
		}
		dispatched++
	}
}

// drainGenerated applies up to cap completed generation results to the
// store and enqueues a mesh rebuild for each newly-installed chunk and for
// any already-resident neighbor that shares a face with it (since that
// neighbor's mesh may have been built with a generator-fallback face that
// is now wrong, spec.md §4.6 step 3 "seam invalidation on arrival").
func (s *Streamer) drainGenerated(cap int) {
	for i := 0; i < cap; i++ {
		select {
		case res := <-s.genResults:
			if !res.Ok {
				s.store.CancelLoading(res.Coord)
				continue
			}
			s.store.Insert(res.Coord, res.Chunk)
			s.requestMesh(res.Coord)
			for _, d := range voxel.Directions {
				n := d.Normal()
				nc := res.Coord.Add(int32(n[0]), int32(n[1]), int32(n[2]))
				if s.store.Contains(nc) {
					s.requestMesh(nc)
				}
			}
		default:
			return
		}
	}
}

// drainMeshed applies up to cap completed mesh builds to the mesh cache.
func (s *Streamer) drainMeshed(cap int) {
	for i := 0; i < cap; i++ {
		select {
		case res := <-s.meshResults:
			if !res.Ok {
				continue
			}
			if res.Mesh == nil {
				delete(s.meshes, res.Coord)
				continue
			}
			s.meshes[res.Coord] = res.Mesh
		default:
			return
		}
	}
}

// RequestMesh submits a mesh rebuild job for coord, exposed so a caller
// editing a loaded chunk directly (internal/interaction's place/break) can
// ask for a remesh without waiting for the next Tick to notice the edit.
func (s *Streamer) RequestMesh(coord voxel.ChunkCoord) {
	s.requestMesh(coord)
}

// requestMesh submits a mesh rebuild job for coord using its currently
// resident neighbors; it is a no-op if coord is not loaded or the mesh
// queue is momentarily full. A request dropped for a full queue is not
// resubmitted: the chunk keeps its previous mesh (or none) until a later
// requestMesh call for it succeeds.
func (s *Streamer) requestMesh(coord voxel.ChunkCoord) {
	c, ok := s.store.Get(coord)
	if !ok {
		return
	}
	s.mesh.Submit(mesher.MeshJob{
		Coord:     coord,
		Chunk:     c,
		Neighbors: s.store.Neighbors6(coord),
		Fallback:  s.field,
		Result:    s.meshResults,
	})
}

// evict drops chunks and cached meshes outside the streaming radius.
func (s *Streamer) evict(center voxel.ChunkCoord) {
	removed := s.store.EvictOutsideRadius(center, s.radius)
	for _, coord := range removed {
		delete(s.meshes, coord)
	}
}

// coordsInRadius lists every chunk coordinate in the axis-aligned box
// center±s.radius (Chebyshev, chunk units, inclusive on every axis),
// nearest-first, with the y axis clamped so no coordinate with a negative
// world-chunk y is ever produced: y runs over [max(0,center.Y-R), center.Y+R].
func (s *Streamer) coordsInRadius(center voxel.ChunkCoord) []voxel.ChunkCoord {
	r := s.radius
	type candidate struct {
		coord voxel.ChunkCoord
		dist  int32
	}
	var candidates []candidate
	for dy := -r; dy <= r; dy++ {
		y := center.Y + dy
		if y < 0 {
			continue
		}
		for dx := -r; dx <= r; dx++ {
			for dz := -r; dz <= r; dz++ {
				candidates = append(candidates, candidate{
					coord: voxel.ChunkCoord{X: center.X + dx, Y: y, Z: center.Z + dz},
					dist:  chebyshev(dx, dy, dz),
				})
			}
		}
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].dist < candidates[j].dist })
	out := make([]voxel.ChunkCoord, len(candidates))
	for i, c := range candidates {
		out[i] = c.coord
	}
	return out
}

func chebyshev(dx, dy, dz int32) int32 {
	m := abs32(dx)
	if v := abs32(dy); v > m {
		m = v
	}
	if v := abs32(dz); v > m {
		m = v
	}
	return m
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
