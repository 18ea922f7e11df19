// Package mesher turns a chunk's block data into a packed GPU-ready surface
// mesh with baked ambient occlusion (spec.md §4.5).
package mesher

import "voxelcore/internal/voxel"

// Mesh is the packed, GPU-ready output of a mesh build: one 32-bit word per
// vertex and a triangle-list index buffer. A chunk with no exposed faces
// produces a nil Mesh rather than an empty one, per spec.md §4.5.
type Mesh struct {
	Vertices []uint32
	Indices  []uint32
}

// Vertex bit layout (spec.md §3), little-endian semantics, opaque to the
// host — the GPU shader unpacks by bit shift regardless of host endianness:
//
//	bits 0-5   local x (0..S)
//	bits 6-11  local y
//	bits 12-17 local z
//	bits 18-20 Direction (0-5)
//	bits 21-22 AO level (0-3, 3 = darkest)
//	bits 23-31 Block kind
const (
	xShift   = 0
	yShift   = 6
	zShift   = 12
	dirShift = 18
	aoShift  = 21
	kindShift = 23

	coordMask = 0x3F // 6 bits
	dirMask   = 0x7  // 3 bits
	aoMask    = 0x3  // 2 bits
	kindMask  = 0x1FF
)

// packVertex encodes one vertex's local position, face orientation, AO
// level, and block kind into a single uint32.
func packVertex(x, y, z int, dir voxel.Direction, ao int, block voxel.Block) uint32 {
	return uint32(x&coordMask)<<xShift |
		uint32(y&coordMask)<<yShift |
		uint32(z&coordMask)<<zShift |
		uint32(dir)&dirMask<<dirShift |
		uint32(ao&aoMask)<<aoShift |
		uint32(block)&kindMask<<kindShift
}
