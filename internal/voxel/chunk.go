package voxel

// ChunkSize is the fixed chunk edge length S. Vertex packing reserves 6 bits
// per local axis (see mesher.packVertex), so S must stay at or below 64; 32
// is the value this engine is built around (spec.md §9 open question).
const ChunkSize = 32

// chunkVolume is S^3, the number of blocks in a chunk.
const chunkVolume = ChunkSize * ChunkSize * ChunkSize

// ChunkCoord is a signed chunk-grid coordinate. The chunk at ChunkCoord{X,Y,Z}
// spans world block coordinates [X*S, X*S+S) on each axis.
type ChunkCoord struct {
	X, Y, Z int32
}

// Add returns the coordinate offset by dx,dy,dz chunks.
func (c ChunkCoord) Add(dx, dy, dz int32) ChunkCoord {
	return ChunkCoord{c.X + dx, c.Y + dy, c.Z + dz}
}

// WorldOrigin returns the world-space block coordinate of this chunk's
// minimum corner.
func (c ChunkCoord) WorldOrigin() (x, y, z int32) {
	return c.X * ChunkSize, c.Y * ChunkSize, c.Z * ChunkSize
}

// ChunkOf returns the chunk coordinate containing world block (x,y,z) and the
// block's chunk-local coordinate (always in [0,S)).
func ChunkOf(x, y, z int32) (coord ChunkCoord, local [3]int) {
	cx, lx := floorDivMod(x, ChunkSize)
	cy, ly := floorDivMod(y, ChunkSize)
	cz, lz := floorDivMod(z, ChunkSize)
	return ChunkCoord{cx, cy, cz}, [3]int{int(lx), int(ly), int(lz)}
}

// floorDivMod returns a floor-divided quotient and a strictly non-negative
// remainder (Euclidean division), matching spec.md §4.7's requirement that
// chunk-relative coordinates use Euclidean remainder rather than truncation.
func floorDivMod(a int32, b int32) (q, r int32) {
	q = a / b
	r = a % b
	if r < 0 {
		q--
		r += b
	}
	return q, r
}

// Idx maps a local coordinate in [0,S)^3 to a flat block-array index. The
// fixed bijection required by spec.md §3: idx(x,y,z) = x + y*S + z*S^2.
func Idx(x, y, z int) int {
	return x + y*ChunkSize + z*ChunkSize*ChunkSize
}

// PosOf is the inverse of Idx; it MUST round-trip for every i in [0,S^3).
func PosOf(i int) (x, y, z int) {
	z = i / (ChunkSize * ChunkSize)
	rem := i - z*ChunkSize*ChunkSize
	y = rem / ChunkSize
	x = rem - y*ChunkSize
	return x, y, z
}

// Chunk owns S^3 blocks and its position. It is created by the Streamer,
// mutated only by the Generator (while building) and Interaction, and
// destroyed when the Streamer evicts it.
type Chunk struct {
	Pos    ChunkCoord
	Blocks []Block // always exactly S^3 entries
}

// NewChunk allocates a chunk with all-air blocks at pos.
func NewChunk(pos ChunkCoord) *Chunk {
	return &Chunk{
		Pos:    pos,
		Blocks: make([]Block, chunkVolume),
	}
}

// At returns the block at local (x,y,z). Coordinates outside [0,S) are a
// programming error in callers; Chunk itself does no bounds checking so hot
// meshing loops avoid a branch per lookup (the mesher and generator both
// guarantee in-range calls via their own loop bounds).
func (c *Chunk) At(x, y, z int) Block {
	return c.Blocks[Idx(x, y, z)]
}

// Set writes the block at local (x,y,z).
func (c *Chunk) Set(x, y, z int, b Block) {
	c.Blocks[Idx(x, y, z)] = b
}

// InBounds reports whether local coordinate (x,y,z) is a valid chunk index.
func InBounds(x, y, z int) bool {
	return x >= 0 && x < ChunkSize && y >= 0 && y < ChunkSize && z >= 0 && z < ChunkSize
}

// AABB is an axis-aligned bounding box in the owning entity's local space.
type AABB struct {
	Min, Max [3]float32
}

// ChunkAABB is the AABB shared by every chunk entity: {0..S, 0..S, 0..S}.
func ChunkAABB() AABB {
	return AABB{
		Min: [3]float32{0, 0, 0},
		Max: [3]float32{ChunkSize, ChunkSize, ChunkSize},
	}
}
