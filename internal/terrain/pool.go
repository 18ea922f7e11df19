package terrain

import (
	"log"
	"sync"

	"voxelcore/internal/voxel"
)

// BuildJob requests a chunk build at Coord; Result receives exactly one
// BuildResult. Close lets every already-queued job run before returning.
type BuildJob struct {
	Coord  voxel.ChunkCoord
	Result chan<- BuildResult
}

// BuildResult is what a worker posts back after attempting a build. Ok is
// false for a transient failure (panic recovered at the worker boundary,
// spec.md §7); the coord is simply left available for a later retry.
type BuildResult struct {
	Coord voxel.ChunkCoord
	Chunk *voxel.Chunk
	Ok    bool
}

// WorkerPool runs Generator.Build calls on a fixed set of goroutines. It is
// grounded on the teacher's ChunkStreamer worker-per-CPU pattern
// (internal/world/chunk_streamer.go) generalized to report results back
// through a channel instead of writing directly into a store, so the
// Streamer retains sole authority over when results are applied (spec.md
// §4.6 step 4, §5 ordering rule 2).
type WorkerPool struct {
	gen  *Generator
	jobs chan BuildJob
	wg   sync.WaitGroup
}

// NewWorkerPool starts workers goroutines draining jobs of queue depth
// queueSize.
func NewWorkerPool(gen *Generator, workers, queueSize int) *WorkerPool {
	if workers < 1 {
		workers = 1
	}
	p := &WorkerPool{
		gen:  gen,
		jobs: make(chan BuildJob, queueSize),
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

func (p *WorkerPool) worker() {
	defer p.wg.Done()
	for job := range p.jobs {
		result := p.runJob(job.Coord)
		job.Result <- result
	}
}

// runJob recovers from a panicking generator (e.g. noise producing NaN that
// trips an invariant downstream) and reports it as a transient failure
// rather than crashing the worker goroutine (spec.md §7).
func (p *WorkerPool) runJob(coord voxel.ChunkCoord) (result BuildResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("terrain: build panic for %+v: %v", coord, r)
			result = BuildResult{Coord: coord, Ok: false}
		}
	}()
	chunk := p.gen.Build(coord)
	return BuildResult{Coord: coord, Chunk: chunk, Ok: true}
}

// Submit enqueues coord for a background build; it returns false without
// blocking if the queue is full, so callers can retry on a later tick
// (spec.md §5 backpressure).
func (p *WorkerPool) Submit(coord voxel.ChunkCoord, result chan<- BuildResult) bool {
	select {
	case p.jobs <- BuildJob{Coord: coord, Result: result}:
		return true
	default:
		return false
	}
}

// Close stops accepting jobs and waits for in-flight builds to finish.
func (p *WorkerPool) Close() {
	close(p.jobs)
	p.wg.Wait()
}
