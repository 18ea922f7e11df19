// Command voxeldemo is a minimal GLFW+GL consumer of the core engine: it
// opens a window, streams chunks around a moving observer, meshes and
// draws them with frustum culling, and lets the player place/break blocks.
// It is a concrete but swappable implementation of the GPU/window
// boundary (spec.md §6); none of the core packages import it.
package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"voxelcore/internal/chunkstore"
	"voxelcore/internal/config"
	"voxelcore/internal/frustum"
	"voxelcore/internal/input"
	"voxelcore/internal/interaction"
	"voxelcore/internal/mesher"
	"voxelcore/internal/noise"
	"voxelcore/internal/observer"
	"voxelcore/internal/persist"
	"voxelcore/internal/profiling"
	"voxelcore/internal/streamer"
	"voxelcore/internal/terrain"
	"voxelcore/internal/tick"
)

func init() {
	// GLFW and GL calls must all happen from the thread that created the
	// context.
	runtime.LockOSThread()
}

func main() {
	seed := flag.Int64("seed", 1, "world generation seed")
	savePath := flag.String("save", "", "path to a LevelDB directory for persisting edits (disabled if empty)")
	flag.Parse()

	if err := glfw.Init(); err != nil {
		log.Fatalf("glfw init: %v", err)
	}
	defer glfw.Terminate()

	window, err := setupWindow(1280, 720, "voxeldemo")
	if err != nil {
		log.Fatalf("window setup: %v", err)
	}

	renderer, err := NewRenderer()
	if err != nil {
		log.Fatalf("renderer setup: %v", err)
	}
	defer renderer.Close()

	var overrides terrain.Overrides
	var saveStore *persist.Store
	if *savePath != "" {
		saveStore, err = persist.Open(filepath.Clean(*savePath))
		if err != nil {
			log.Fatalf("persist open: %v", err)
		}
		defer saveStore.Close()
		overrides = saveStore
	}

	config.SetSeed(*seed)
	field := noise.New(config.GetSeed())

	gen := terrain.New(field, overrides)
	genPool := terrain.NewWorkerPool(gen, config.GetGenWorkers(), 256)
	defer genPool.Close()

	meshPool := mesher.NewWorkerPool(config.GetMeshWorkers(), 256)
	defer meshPool.Close()

	store := chunkstore.New()
	stream := streamer.New(store, genPool, meshPool, gen, int32(config.GetRenderDistance()))

	obs := observer.New(mgl32.Vec3{0, float32(terrain.Sea) + 4, 0}, float32(1280)/float32(720))
	im := input.New()
	im.SetCallbacks(window)

	loop := tick.New(60, 5)
	loop.Startup(func() { log.Println("voxeldemo: simulation starting") })
	defer loop.Shutdown(func() { log.Println("voxeldemo: simulation stopped") })

	lastX, lastY := 0.0, 0.0
	firstMouse := true
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		if firstMouse {
			lastX, lastY = xpos, ypos
			firstMouse = false
		}
		dx := float32(xpos - lastX)
		dy := float32(lastY - ypos)
		lastX, lastY = xpos, ypos

		const sensitivity = 0.1
		obs.Yaw += dx * sensitivity
		obs.SetPitch(obs.Pitch + dy*sensitivity)
	})

	lastFrame := time.Now()
	frameCount := 0
	for !window.ShouldClose() {
		now := time.Now()
		frameDt := now.Sub(lastFrame).Seconds()
		lastFrame = now
		profiling.ResetFrame()

		glfw.PollEvents()
		handleMovement(window, im, &obs, frameDt)
		handleInteraction(im, &obs, store, stream, gen, saveStore)

		func() {
			defer profiling.Track("stream.Tick")()
			loop.Advance(frameDt, func(dt float64) {
				stream.Tick(obs.ChunkCoord(), config.GetGenCap(), config.GetMeshCap())
			}, nil)
		}()

		// Re-upload every resident chunk's current mesh each frame. A
		// longer-running client would track which coordinates actually
		// changed since the last upload; this demo favors simplicity.
		resident := store.Coords()
		renderer.Prune(resident)
		func() {
			defer profiling.Track("renderer.Upload")()
			for coord := range resident {
				mesh, ok := stream.Mesh(coord)
				if !ok {
					continue
				}
				renderer.Upload(coord, mesh)
			}
		}()

		view := obs.ViewMatrix()
		projection := obs.ProjectionMatrix()
		lightDirWorld := mgl32.Vec3{-0.4, -1.0, -0.3}.Normalize()
		lightDirView4 := view.Mul4x1(mgl32.Vec4{lightDirWorld[0], lightDirWorld[1], lightDirWorld[2], 0})
		lightDirView := mgl32.Vec3{lightDirView4[0], lightDirView4[1], lightDirView4[2]}
		culled := frustum.Extract(projection.Mul4(view)).Normalized()

		func() {
			defer profiling.Track("renderer.Draw")()
			renderer.Draw(projection, view, lightDirView, culled)
		}()

		window.SwapBuffers()
		im.PostUpdate()

		frameCount++
		if frameCount%300 == 0 {
			log.Printf("voxeldemo: frame cost %s", profiling.TopN(3))
		}
	}

	fmt.Println("voxeldemo: window closed")
}
