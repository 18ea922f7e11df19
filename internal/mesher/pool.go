package mesher

import (
	"log"
	"sync"

	"voxelcore/internal/voxel"
)

// MeshJob requests a mesh rebuild for a chunk snapshot plus its currently
// known neighbors. Result receives exactly one MeshResult.
type MeshJob struct {
	Coord     voxel.ChunkCoord
	Chunk     *voxel.Chunk
	Neighbors Neighbors
	Fallback  Fallback
	Result    chan<- MeshResult
}

// MeshResult is what a worker posts back after attempting a mesh build.
type MeshResult struct {
	Coord voxel.ChunkCoord
	Mesh  *Mesh
	Ok    bool
}

// WorkerPool runs Build calls on a fixed set of goroutines, mirroring
// terrain.WorkerPool's shape (spec.md §4.6 step 4: meshing is polled for
// completed results under the same per-frame cap as generation).
type WorkerPool struct {
	jobs chan MeshJob
	wg   sync.WaitGroup
}

// NewWorkerPool starts workers goroutines draining jobs of queue depth
// queueSize.
func NewWorkerPool(workers, queueSize int) *WorkerPool {
	if workers < 1 {
		workers = 1
	}
	p := &WorkerPool{jobs: make(chan MeshJob, queueSize)}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

func (p *WorkerPool) worker() {
	defer p.wg.Done()
	for job := range p.jobs {
		result := p.runJob(job)
		job.Result <- result
	}
}

func (p *WorkerPool) runJob(job MeshJob) (result MeshResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("mesher: build panic for %+v: %v", job.Coord, r)
			result = MeshResult{Coord: job.Coord, Ok: false}
		}
	}()
	m := Build(job.Chunk, job.Neighbors, job.Fallback)
	return MeshResult{Coord: job.Coord, Mesh: m, Ok: true}
}

// Submit enqueues job for a background mesh build; returns false without
// blocking if the queue is full.
func (p *WorkerPool) Submit(job MeshJob) bool {
	select {
	case p.jobs <- job:
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
