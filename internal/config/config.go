// Package config exposes the tunable knobs the core engine runs with —
// render/stream radius, per-frame work caps, and worker-pool sizing —
// behind an RWMutex-guarded global, the same shape as the teacher's
// RenderSettings (internal/config/config.go).
package config

import (
	"runtime"
	"sync"
)

// EngineSettings holds the engine's tunable knobs: streaming radius,
// per-frame caps, and worker-pool sizing.
type EngineSettings struct {
	mu sync.RWMutex

	renderDistance int // R, in chunks
	genCap         int // K: chunk builds applied per streamer.Tick
	meshCap        int // K: mesh builds applied per streamer.Tick
	genWorkers     int
	meshWorkers    int
}

var globalSettings = &EngineSettings{
	renderDistance: 8,
	genCap:         15,
	meshCap:        15,
	genWorkers:     runtime.NumCPU(),
	meshWorkers:    runtime.NumCPU(),
}

// GetRenderDistance returns R, the streaming/render radius in chunks.
func GetRenderDistance() int {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.renderDistance
}

// SetRenderDistance sets R, clamped to a sane range.
func SetRenderDistance(distance int) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()
	if distance < 1 {
		distance = 1
	}
	if distance > 64 {
		distance = 64
	}
	globalSettings.renderDistance = distance
}

// GetChunkLoadRadius returns the radius streamer.Tick loads and evicts
// chunks within (equal to R; unlike the teacher there is no separate
// "slightly larger" evict radius, since spec.md defines a single Chebyshev
// radius R governing both the load box and the despawn box).
func GetChunkLoadRadius() int {
	return GetRenderDistance()
}

// GetGenCap returns K, the maximum number of chunk generation requests
// dispatched and completed builds applied per streamer.Tick call.
func GetGenCap() int {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.genCap
}

// SetGenCap sets the generation per-frame cap.
func SetGenCap(cap int) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()
	if cap < 1 {
		cap = 1
	}
	globalSettings.genCap = cap
}

// GetMeshCap returns K, the maximum number of completed mesh builds
// applied per streamer.Tick call.
func GetMeshCap() int {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.meshCap
}

// SetMeshCap sets the meshing per-frame cap.
func SetMeshCap(cap int) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()
	if cap < 1 {
		cap = 1
	}
	globalSettings.meshCap = cap
}

// GetGenWorkers returns the worker count for terrain.WorkerPool.
func GetGenWorkers() int {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.genWorkers
}

// SetGenWorkers sets the worker count for terrain.WorkerPool.
func SetGenWorkers(workers int) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()
	if workers < 1 {
		workers = 1
	}
	globalSettings.genWorkers = workers
}

// GetMeshWorkers returns the worker count for mesher.WorkerPool.
func GetMeshWorkers() int {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.meshWorkers
}

// SetMeshWorkers sets the worker count for mesher.WorkerPool.
func SetMeshWorkers(workers int) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()
	if workers < 1 {
		workers = 1
	}
	globalSettings.meshWorkers = workers
}
