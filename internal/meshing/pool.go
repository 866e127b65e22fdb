package meshing

import (
	"context"
	"sync"

	"cubic/internal/render"
	"cubic/internal/world"
)

// ModelJob represents a chunk model build request
type ModelJob struct {
	Pos       world.ChunkPos
	Chunk     world.BlockReader
	Connected world.ConnectedChunks
	Camera    render.Camera
	// Index lets the caller put results back in submission order
	Index int
	// Result channel - will be sent the result when done
	ResultChan chan ModelResult
}

// ModelResult contains the result of a model build
type ModelResult struct {
	Pos    world.ChunkPos
	Index  int
	Model  render.ChunkModel
	Culled bool
}

// WorkerPool manages goroutines for chunk model builds
type WorkerPool struct {
	jobQueue chan ModelJob
	workers  int
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewWorkerPool creates a new worker pool
func NewWorkerPool(workers int, queueSize int) *WorkerPool {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())

	pool := &WorkerPool{
		jobQueue: make(chan ModelJob, queueSize),
		workers:  workers,
		ctx:      ctx,
		cancel:   cancel,
	}

	for i := range workers {
		pool.wg.Add(1)
		go pool.worker(i)
	}

	return pool
}

// Workers returns the number of worker goroutines.
func (p *WorkerPool) Workers() int { return p.workers }

// Submit queues a job without blocking.
// Returns true if job was submitted successfully, false if queue is full
func (p *WorkerPool) Submit(job ModelJob) bool {
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

// SubmitBlocking blocks until the job is queued, ctx is done, or the pool
// shuts down.
func (p *WorkerPool) SubmitBlocking(ctx context.Context, job ModelJob) error {
	select {
	case p.jobQueue <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.ctx.Done():
		return context.Canceled
	}
}

// BuildModel runs one job on the calling goroutine.
func BuildModel(job ModelJob) ModelResult {
	res := ModelResult{Pos: job.Pos, Index: job.Index}
	if render.ChunkCulled(job.Camera, job.Pos) {
		res.Culled = true
		return res
	}
	res.Model = render.BuildChunkModel(job.Camera, job.Pos, job.Chunk, job.Connected)
	return res
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	for {
		select {
		case job := <-p.jobQueue:
			result := BuildModel(job)

			select {
			case job.ResultChan <- result:
			case <-p.ctx.Done():
				return
			}

		case <-p.ctx.Done():
			return
		}
	}
}

// Shutdown stops the workers and waits for them to exit. Queued jobs that
// were not started are dropped.
func (p *WorkerPool) Shutdown() {
	p.cancel()
	p.wg.Wait()
}

// QueueLength returns the current number of jobs in the queue
func (p *WorkerPool) QueueLength() int {
	return len(p.jobQueue)
}
