// Package interaction implements place-block and break-block, including
// the seam invalidation that keeps neighboring chunks' meshes in sync with
// a cross-chunk edit (spec.md §4.9). It is grounded on the teacher's
// Player.HandleMouseButton (internal/player/interaction.go) for the
// raycast-then-mutate shape, stripped of inventory/item/entity concerns
// that are out of scope here, and on chunk_store.go's Set, which marks a
// touched border block's neighbor chunk dirty the same way invalidateSeams
// does below.
package interaction

import (
	"github.com/go-gl/mathgl/mgl32"

	"voxelcore/internal/chunkstore"
	"voxelcore/internal/raycast"
	"voxelcore/internal/voxel"
)

// RemeshRequester is notified of every chunk whose mesh may now be stale.
// The streamer satisfies this by submitting a mesh rebuild job for coord.
type RemeshRequester func(coord voxel.ChunkCoord)

// storeSource adapts a chunkstore.Store to raycast.Source, resolving
// unloaded coordinates as Air so a ray simply passes through chunks that
// have not finished generating yet.
type storeSource struct {
	store *chunkstore.Store
}

func (s storeSource) BlockAt(x, y, z int32) voxel.Block {
	coord, local := voxel.ChunkOf(x, y, z)
	c, ok := s.store.Get(coord)
	if !ok {
		return voxel.Air
	}
	return c.At(local[0], local[1], local[2])
}

// Reach bounds how far place/break can act, mirroring the teacher's
// MinReachDistance/MaxReachDistance. Only Max is applied by Break and
// Place; Min is not consulted.
type Reach struct {
	Min, Max float32
}

// DefaultReach matches the teacher's constants.
var DefaultReach = Reach{Min: 0.1, Max: 5.0}

// targetedBlock runs the caster against store and returns the hit, if any.
func targetedBlock(origin, dir mgl32.Vec3, reach Reach, store *chunkstore.Store) (raycast.Hit, bool) {
	return raycast.Cast(origin, dir, reach.Max, storeSource{store})
}

// Break removes the block the ray first strikes, if any is in reach, and
// notifies requestRemesh for the edited chunk and for any face-adjacent
// chunk that shares the edited coordinate's boundary. It reports the
// removed block and the world position, or ok=false if nothing was in
// range.
func Break(origin, dir mgl32.Vec3, reach Reach, store *chunkstore.Store, requestRemesh RemeshRequester) (removed voxel.Block, at [3]int32, ok bool) {
	hit, found := targetedBlock(origin, dir, reach, store)
	if !found {
		return voxel.Air, [3]int32{}, false
	}

	coord, local := voxel.ChunkOf(hit.Block[0], hit.Block[1], hit.Block[2])
	c, loaded := store.Get(coord)
	if !loaded {
		return voxel.Air, [3]int32{}, false
	}

	removed = c.At(local[0], local[1], local[2])
	c.Set(local[0], local[1], local[2], voxel.Air)
	invalidateSeams(coord, local, requestRemesh)
	return removed, hit.Block, true
}

// Place installs kind at the empty voxel immediately adjacent to the ray's
// first hit (the face the ray entered), mirroring the teacher's
// "place against AdjacentPosition" rule. It reports false if nothing was
// in range, the adjacent voxel's chunk is not loaded, or that voxel is
// already occupied.
func Place(origin, dir mgl32.Vec3, reach Reach, store *chunkstore.Store, kind voxel.Block, requestRemesh RemeshRequester) (at [3]int32, ok bool) {
	hit, found := targetedBlock(origin, dir, reach, store)
	if !found {
		return [3]int32{}, false
	}

	target := hit.Adjacent
	coord, local := voxel.ChunkOf(target[0], target[1], target[2])
	c, loaded := store.Get(coord)
	if !loaded {
		return [3]int32{}, false
	}

	if !c.At(local[0], local[1], local[2]).IsAir() {
		return [3]int32{}, false
	}

	c.Set(local[0], local[1], local[2], kind)
	invalidateSeams(coord, local, requestRemesh)
	return target, true
}

// invalidateSeams requests a remesh of coord and of every face-adjacent
// chunk whose mesh could have used the edited voxel as a seam neighbor,
// i.e. whenever local sits on that axis's boundary (spec.md §4.9's "seam
// invalidation": a chunk meshed against a fallback-generated guess at its
// boundary must be rebuilt once the real neighbor data changes).
func invalidateSeams(coord voxel.ChunkCoord, local [3]int, requestRemesh RemeshRequester) {
	requestRemesh(coord)

	const last = voxel.ChunkSize - 1
	if local[0] == 0 {
		requestRemesh(coord.Add(-1, 0, 0))
	} else if local[0] == last {
		requestRemesh(coord.Add(1, 0, 0))
	}
	if local[1] == 0 {
		requestRemesh(coord.Add(0, -1, 0))
	} else if local[1] == last {
		requestRemesh(coord.Add(0, 1, 0))
	}
	if local[2] == 0 {
		requestRemesh(coord.Add(0, 0, -1))
	} else if local[2] == last {
		requestRemesh(coord.Add(0, 0, 1))
	}
}
