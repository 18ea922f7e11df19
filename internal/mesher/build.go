package mesher

import "voxelcore/internal/voxel"

// Fallback resolves a block at an arbitrary world coordinate when no loaded
// neighbor chunk can answer a seam query. In practice this is
// terrain.Generator.BlockAtWorld (spec.md §4.5's fallback rule); it is an
// interface here so the mesher package does not import terrain.
type Fallback interface {
	BlockAtWorld(worldX, worldY, worldZ int32) voxel.Block
}

// Neighbors holds the up-to-six chunks directly adjacent to the chunk being
// meshed, indexed by Direction. A nil entry means that neighbor is not
// currently resident in the store, in which case Fallback is consulted
// instead (spec.md §4.5, §6: "read access to c and any of its six
// face-adjacent neighbors").
type Neighbors [6]*voxel.Chunk

// quadOffset is a single vertex corner expressed as the 0/1 offset applied
// to the owning cube's minimum corner. aoTangent is the corresponding pair
// of signed tangential offsets (-1/+1) used to locate the three AO sample
// cells for that corner.
type quadOffset struct {
	dx, dy, dz int
	aoU, aoV   int
}

// faceTable is grounded on the teacher's cube vertex data
// (internal/graphics/renderables/blocks/meshing.go CubeVertices): each
// direction's four corners are taken in the same order the teacher emits
// them, which is already wound correctly for back-face culling. Offsets of
// -0.5/+0.5 around a unit cube become 0/1 around its minimum corner.
var faceTable = map[voxel.Direction][4]quadOffset{
	voxel.Left: {
		{0, 0, 0, -1, -1},
		{0, 0, 1, -1, +1},
		{0, 1, 1, +1, +1},
		{0, 1, 0, +1, -1},
	},
	voxel.Right: {
		{1, 0, 1, -1, +1},
		{1, 0, 0, -1, -1},
		{1, 1, 0, +1, -1},
		{1, 1, 1, +1, +1},
	},
	voxel.Bottom: {
		{0, 0, 0, -1, -1},
		{1, 0, 0, +1, -1},
		{1, 0, 1, +1, +1},
		{0, 0, 1, -1, +1},
	},
	voxel.Top: {
		{0, 1, 1, -1, +1},
		{1, 1, 1, +1, +1},
		{1, 1, 0, +1, -1},
		{0, 1, 0, -1, -1},
	},
	voxel.Back: {
		{1, 0, 0, +1, -1},
		{0, 0, 0, -1, -1},
		{0, 1, 0, -1, +1},
		{1, 1, 0, +1, +1},
	},
	voxel.Front: {
		{0, 0, 1, -1, -1},
		{1, 0, 1, +1, -1},
		{1, 1, 1, +1, +1},
		{0, 1, 1, -1, +1},
	},
}

// tangentAxes returns the two world-axis unit vectors spanning a face of
// the given orientation, in the same (first, second) order the aoU/aoV
// signs in faceTable were derived against.
func tangentAxes(dir voxel.Direction) (u, v [3]int) {
	switch dir {
	case voxel.Left, voxel.Right:
		return [3]int{0, 1, 0}, [3]int{0, 0, 1} // Y, Z
	case voxel.Bottom, voxel.Top:
		return [3]int{1, 0, 0}, [3]int{0, 0, 1} // X, Z
	default: // Back, Front
		return [3]int{1, 0, 0}, [3]int{0, 1, 0} // X, Y
	}
}

// builder carries the read-only context needed to answer block queries for
// one chunk's mesh build, including queries that land in a neighbor chunk
// or require the generator fallback.
type builder struct {
	chunk     *voxel.Chunk
	neighbors Neighbors
	fallback  Fallback
	baseX     int32
	baseY     int32
	baseZ     int32
}

// blockAt resolves a local coordinate that may fall outside [0,S) on at
// most the axes being traversed. Per spec.md §4.5, out-of-range queries are
// resolved by consulting the face-adjacent neighbor chunk if present, else
// by asking the generator for that exact world coordinate. A coordinate out
// of range on more than one axis (a diagonal AO sample) always falls back
// to the generator, since only face neighbors are held here.
func (b *builder) blockAt(x, y, z int) voxel.Block {
	if voxel.InBounds(x, y, z) {
		return b.chunk.At(x, y, z)
	}

	const s = voxel.ChunkSize
	outCount := 0
	var dir voxel.Direction
	nx, ny, nz := x, y, z

	switch {
	case x < 0:
		outCount++
		dir, nx = voxel.Left, x+s
	case x >= s:
		outCount++
		dir, nx = voxel.Right, x-s
	}
	switch {
	case y < 0:
		outCount++
		dir, ny = voxel.Bottom, y+s
	case y >= s:
		outCount++
		dir, ny = voxel.Top, y-s
	}
	switch {
	case z < 0:
		outCount++
		dir, nz = voxel.Back, z+s
	case z >= s:
		outCount++
		dir, nz = voxel.Front, z-s
	}

	if outCount == 1 {
		if nb := b.neighbors[dir]; nb != nil {
			return nb.At(nx, ny, nz)
		}
	}
	return b.fallback.BlockAtWorld(b.baseX+int32(x), b.baseY+int32(y), b.baseZ+int32(z))
}

// ao computes the baked ambient-occlusion level (0-3, 3 darkest) for one
// quad corner: the count of non-air cells among the two edge-adjacent
// samples and the diagonal, clamped to 3 whenever both edge samples are
// non-air regardless of the diagonal (spec.md §4.5).
func (b *builder) ao(outsideX, outsideY, outsideZ int, u, v [3]int, signU, signV int) int {
	side1 := b.blockAt(outsideX+u[0]*signU, outsideY+u[1]*signU, outsideZ+u[2]*signU)
	side2 := b.blockAt(outsideX+v[0]*signV, outsideY+v[1]*signV, outsideZ+v[2]*signV)
	s1, s2 := !side1.IsAir(), !side2.IsAir()
	if s1 && s2 {
		return 3
	}
	corner := b.blockAt(
		outsideX+u[0]*signU+v[0]*signV,
		outsideY+u[1]*signU+v[1]*signV,
		outsideZ+u[2]*signU+v[2]*signV,
	)
	level := 0
	if s1 {
		level++
	}
	if s2 {
		level++
	}
	if !corner.IsAir() {
		level++
	}
	return level
}

// emitFace appends one quad's four vertices and six indices for block kind
// at owner-cube minimum corner (ox,oy,oz), oriented dir.
func (b *builder) emitFace(m *Mesh, ox, oy, oz int, dir voxel.Direction, kind voxel.Block) {
	normal := dir.Normal()
	outsideX, outsideY, outsideZ := ox+normal[0], oy+normal[1], oz+normal[2]
	u, v := tangentAxes(dir)

	base := uint32(len(m.Vertices))
	for _, c := range faceTable[dir] {
		level := b.ao(outsideX, outsideY, outsideZ, u, v, c.aoU, c.aoV)
		m.Vertices = append(m.Vertices, packVertex(ox+c.dx, oy+c.dy, oz+c.dz, dir, level, kind))
	}
	m.Indices = append(m.Indices,
		base, base+1, base+2,
		base, base+2, base+3,
	)
}

// Build meshes one chunk's exposed faces against its cell data and the
// context given in neighbors/fallback, producing a single baked-AO surface
// mesh, or nil if the chunk contributes no visible geometry (spec.md §4.5).
func Build(c *voxel.Chunk, neighbors Neighbors, fallback Fallback) *Mesh {
	baseX, baseY, baseZ := c.Pos.WorldOrigin()
	b := &builder{chunk: c, neighbors: neighbors, fallback: fallback, baseX: baseX, baseY: baseY, baseZ: baseZ}

	m := &Mesh{}
	const s = voxel.ChunkSize

	for x := 0; x < s; x++ {
		for y := 0; y < s; y++ {
			for z := 0; z < s; z++ {
				considerAxis(b, m, x, y, z, 0, voxel.Right, voxel.Left)
				considerAxis(b, m, x, y, z, 1, voxel.Top, voxel.Bottom)
				considerAxis(b, m, x, y, z, 2, voxel.Front, voxel.Back)
			}
		}
	}

	if len(m.Vertices) == 0 {
		return nil
	}
	return m
}

// considerAxis compares cell (x,y,z) against its predecessor along one axis
// and emits a face for whichever side is solid, per spec.md §4.5's
// "A = block(p), B = block(p - axis)" rule generalized from X to X/Y/Z.
func considerAxis(b *builder, m *Mesh, x, y, z int, axis int, posDir, negDir voxel.Direction) {
	px, py, pz := x, y, z
	switch axis {
	case 0:
		px--
	case 1:
		py--
	default:
		pz--
	}

	a := b.blockAt(x, y, z)
	prev := b.blockAt(px, py, pz)

	switch {
	case a.IsAir() && !prev.IsAir():
		b.emitFace(m, px, py, pz, posDir, prev)
	case !a.IsAir() && prev.IsAir():
		b.emitFace(m, x, y, z, negDir, a)
	}
}
