package terrain

import (
	"voxelcore/internal/noise"
	"voxelcore/internal/voxel"
)

// Overrides overlays a sparse set of block overrides onto freshly generated
// chunk data. It is the seam between the Generator and the optional
// persistence layer (spec.md §6): when non-nil, Load is consulted after
// generation and before the chunk is handed back to the caller.
type Overrides interface {
	// Load returns the sparse local-index -> Block overrides saved for
	// coord, or nil if none exist.
	Load(coord voxel.ChunkCoord) map[int]voxel.Block
}

// Generator builds chunk contents from a shared, immutable NoiseField. A
// Generator has no mutable state of its own beyond what NoiseField already
// guarantees is safe for concurrent reads, so the same *Generator is shared
// by every worker in the pool (spec.md §4.4: "must not read or write any
// other chunk").
type Generator struct {
	field     *noise.Field
	overrides Overrides
}

// New creates a Generator over the given noise field. overrides may be nil.
func New(field *noise.Field, overrides Overrides) *Generator {
	return &Generator{field: field, overrides: overrides}
}

// HeightAt exposes the column height function for world column (x,z)
// without building a full chunk.
func (g *Generator) HeightAt(worldX, worldZ int32) int32 {
	return HeightAt(g.field, worldX, worldZ)
}

// Build produces a fully-populated chunk at coord. The traversal order is
// arbitrary (spec.md §4.4); this implementation walks columns so the height
// lookup is amortized per (x,z) rather than per block.
func (g *Generator) Build(coord voxel.ChunkCoord) *voxel.Chunk {
	c := voxel.NewChunk(coord)
	baseX, baseY, baseZ := coord.WorldOrigin()

	for lx := 0; lx < voxel.ChunkSize; lx++ {
		worldX := baseX + int32(lx)
		for lz := 0; lz < voxel.ChunkSize; lz++ {
			worldZ := baseZ + int32(lz)
			maxY := HeightAt(g.field, worldX, worldZ)
			for ly := 0; ly < voxel.ChunkSize; ly++ {
				worldY := baseY + int32(ly)
				c.Set(lx, ly, lz, BlockAt(worldY, maxY))
			}
		}
	}

	if g.overrides != nil {
		for idx, b := range g.overrides.Load(coord) {
			c.Blocks[idx] = b
		}
	}

	return c
}

// BlockAtWorld evaluates the generator's pure function at a single world
// coordinate without allocating a chunk. The Mesher uses this to resolve
// faces at chunk seams whose neighbor is not yet in the store (spec.md
// §4.5's fallback rule).
func (g *Generator) BlockAtWorld(worldX, worldY, worldZ int32) voxel.Block {
	maxY := HeightAt(g.field, worldX, worldZ)
	return BlockAt(worldY, maxY)
}
