package main

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"voxelcore/internal/frustum"
	"voxelcore/internal/graphics"
	"voxelcore/internal/mesher"
	"voxelcore/internal/voxel"
)

// chunkGPU is the uploaded GL representation of one chunk's mesh,
// grounded on the teacher's chunkMesh (internal/graphics/renderables/blocks/types.go).
type chunkGPU struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

// Renderer uploads mesher.Mesh results to GL buffers and draws the
// frustum-visible ones each frame, grounded on the teacher's Renderer
// (internal/graphics/renderer.go), with per-column atlasing dropped since
// this demo does not need the teacher's draw-call-coalescing scheme.
type Renderer struct {
	shader *graphics.Shader
	chunks map[voxel.ChunkCoord]chunkGPU
}

func NewRenderer() (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, err
	}

	shader, err := graphics.NewShader(
		"assets/shaders/voxel/main.vert",
		"assets/shaders/voxel/main.frag",
	)
	if err != nil {
		return nil, err
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.ClearColor(0.53, 0.80, 0.92, 1.0)

	return &Renderer{shader: shader, chunks: make(map[voxel.ChunkCoord]chunkGPU)}, nil
}

// Upload creates or replaces the GL buffers for coord's mesh. Passing a
// nil or empty mesh frees any existing buffers for that chunk without
// installing a new one (an all-air or fully-occluded chunk).
func (r *Renderer) Upload(coord voxel.ChunkCoord, mesh *mesher.Mesh) {
	r.free(coord)
	if mesh == nil || len(mesh.Indices) == 0 {
		return
	}

	var g chunkGPU
	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*4, gl.Ptr(mesh.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribIPointer(0, 1, gl.UNSIGNED_INT, 4, gl.PtrOffset(0))

	g.indexCount = int32(len(mesh.Indices))
	r.chunks[coord] = g
}

// free releases the GL buffers for coord, if any are installed.
func (r *Renderer) free(coord voxel.ChunkCoord) {
	g, ok := r.chunks[coord]
	if !ok {
		return
	}
	gl.DeleteBuffers(1, &g.vbo)
	gl.DeleteBuffers(1, &g.ebo)
	gl.DeleteVertexArrays(1, &g.vao)
	delete(r.chunks, coord)
}

// Draw clears the frame and draws every uploaded chunk whose AABB passes
// culled's frustum test.
func (r *Renderer) Draw(projection, view mgl32.Mat4, lightDirView mgl32.Vec3, culled frustum.Frustum) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.shader.Use()
	r.shader.SetMatrix4("uProjection", &projection[0])
	r.shader.SetMatrix4("uView", &view[0])
	r.shader.SetVector3("uLightDirView", lightDirView.X(), lightDirView.Y(), lightDirView.Z())

	for coord, g := range r.chunks {
		ox, oy, oz := coord.WorldOrigin()
		min := mgl32.Vec3{float32(ox), float32(oy), float32(oz)}
		max := min.Add(mgl32.Vec3{voxel.ChunkSize, voxel.ChunkSize, voxel.ChunkSize})
		if !culled.IntersectsAABB(min, max) {
			continue
		}

		r.shader.SetVector3("uChunkOrigin", min.X(), min.Y(), min.Z())
		gl.BindVertexArray(g.vao)
		gl.DrawElements(gl.TRIANGLES, g.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
	}
}

// Prune frees GL buffers for any uploaded chunk whose coordinate is not
// in present, the chunks the streamer has since evicted.
func (r *Renderer) Prune(present map[voxel.ChunkCoord]struct{}) {
	for coord := range r.chunks {
		if _, ok := present[coord]; !ok {
			r.free(coord)
		}
	}
}

// Close releases every chunk's GL buffers.
func (r *Renderer) Close() {
	for coord := range r.chunks {
		r.free(coord)
	}
}
