package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"voxelcore/internal/chunkstore"
	"voxelcore/internal/input"
	"voxelcore/internal/interaction"
	"voxelcore/internal/observer"
	"voxelcore/internal/persist"
	"voxelcore/internal/streamer"
	"voxelcore/internal/terrain"
	"voxelcore/internal/voxel"
)

const flySpeed = 12.0 // world units per second

// handleMovement moves obs as a free-flying spectator camera along its own
// front/right/up axes, grounded on the teacher's Player.Update movement
// integration (internal/player/movement.go) with gravity/collision
// dropped — there is no physics in this engine's scope.
func handleMovement(window *glfw.Window, im *input.Manager, obs *observer.Observer, dt float64) {
	front := obs.Front()
	worldUp := mgl32.Vec3{0, 1, 0}
	right := front.Cross(worldUp).Normalize()

	var move mgl32.Vec3
	if im.IsActive(input.ActionMoveForward) {
		move = move.Add(front)
	}
	if im.IsActive(input.ActionMoveBackward) {
		move = move.Sub(front)
	}
	if im.IsActive(input.ActionMoveRight) {
		move = move.Add(right)
	}
	if im.IsActive(input.ActionMoveLeft) {
		move = move.Sub(right)
	}
	if im.IsActive(input.ActionJump) {
		move = move.Add(worldUp)
	}
	if im.IsActive(input.ActionSneak) {
		move = move.Sub(worldUp)
	}

	if move.Len() == 0 {
		return
	}
	speed := float32(flySpeed)
	if im.IsActive(input.ActionSprint) {
		speed *= 2
	}

	obs.Position = obs.Position.Add(move.Normalize().Mul(speed * float32(dt)))
}

// handleInteraction drives place/break from the left/right mouse buttons,
// requesting a remesh of every affected chunk through stream and, if
// saveStore is non-nil, persisting the edited chunk's override set
// (spec.md §4.9, §6).
func handleInteraction(im *input.Manager, obs *observer.Observer, store *chunkstore.Store, stream *streamer.Streamer, gen *terrain.Generator, saveStore *persist.Store) {
	dir := obs.Front()

	if im.JustPressed(input.ActionMouseLeft) {
		_, at, ok := interaction.Break(obs.Position, dir, interaction.DefaultReach, store, stream.RequestMesh)
		if ok {
			persistEditedChunk(at, store, gen, saveStore)
		}
	}
	if im.JustPressed(input.ActionMouseRight) {
		at, ok := interaction.Place(obs.Position, dir, interaction.DefaultReach, store, voxel.Stone, stream.RequestMesh)
		if ok {
			persistEditedChunk(at, store, gen, saveStore)
		}
	}
}

// persistEditedChunk saves the sparse override set for the chunk
// containing at, if persistence is enabled.
func persistEditedChunk(at [3]int32, store *chunkstore.Store, gen *terrain.Generator, saveStore *persist.Store) {
	if saveStore == nil {
		return
	}
	coord, _ := voxel.ChunkOf(at[0], at[1], at[2])
	current, ok := store.Get(coord)
	if !ok {
		return
	}
	overrides := persist.DiffAgainstGenerated(current, regeneratePure(gen, coord))
	_ = saveStore.Save(coord, overrides)
}

// regeneratePure rebuilds coord from the generator alone, ignoring any
// previously-saved overrides (unlike Generator.Build), so diffing against
// it captures every override ever applied rather than just the ones made
// since the last save.
func regeneratePure(gen *terrain.Generator, coord voxel.ChunkCoord) *voxel.Chunk {
	c := voxel.NewChunk(coord)
	baseX, baseY, baseZ := coord.WorldOrigin()
	for lx := 0; lx < voxel.ChunkSize; lx++ {
		for lz := 0; lz < voxel.ChunkSize; lz++ {
			for ly := 0; ly < voxel.ChunkSize; ly++ {
				c.Set(lx, ly, lz, gen.BlockAtWorld(baseX+int32(lx), baseY+int32(ly), baseZ+int32(lz)))
			}
		}
	}
	return c
}
