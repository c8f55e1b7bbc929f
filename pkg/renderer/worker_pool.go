package renderer

import (
	"runtime"
	"sync"

	"github.com/mkbrown/photonmap/pkg/core"
)

// TileTask is one tile of camera-pass work submitted to the pool.
type TileTask struct {
	Tile   Tile
	TaskID int
}

// TileResult reports completion of a TileTask.
type TileResult struct {
	TaskID int
}

// WorkerPool renders tiles of a single Renderer across a fixed set of
// worker goroutines. Tiles are non-overlapping so no coordination is
// needed beyond the task queue; each tile's random source is seeded
// from the tile's own index rather than from the worker that renders
// it, so output does not depend on scheduling order.
type WorkerPool struct {
	renderer    *Renderer
	taskQueue   chan TileTask
	resultQueue chan TileResult
	numWorkers  int
	wg          sync.WaitGroup
}

// NewWorkerPool creates a pool of numWorkers workers over renderer. If
// numWorkers <= 0, runtime.NumCPU() is used.
func NewWorkerPool(r *Renderer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		renderer:    r,
		taskQueue:   make(chan TileTask, 4096),
		resultQueue: make(chan TileResult, 4096),
		numWorkers:  numWorkers,
	}
}

// Start launches the worker goroutines. baseSeed derives each tile's
// random source as baseSeed * (tile.Index + 1): the stream a tile gets
// depends only on the tile, never on which worker goroutine the runtime
// scheduler happens to hand it to, so identical seed and tile layout
// always reproduce the same PPM output regardless of scheduling order.
func (wp *WorkerPool) Start(baseSeed int64) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.runWorker(baseSeed)
	}
}

func (wp *WorkerPool) runWorker(baseSeed int64) {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		sampler := core.NewRandomSampler(core.NewSeededRandom(baseSeed, task.Tile.Index))
		wp.renderer.RenderTile(task.Tile, sampler)
		wp.resultQueue <- TileResult{TaskID: task.TaskID}
	}
}

// SubmitTask enqueues a tile for rendering.
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// Stop closes the task queue, waits for all workers to drain it, then
// closes the result queue.
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// GetResult retrieves one completed tile result.
func (wp *WorkerPool) GetResult() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// RenderAll starts the pool, submits every tile, and blocks until all
// tiles have rendered.
func (wp *WorkerPool) RenderAll(tiles []Tile, baseSeed int64) {
	wp.Start(baseSeed)

	drained := make(chan struct{})
	go func() {
		for range wp.resultQueue {
		}
		close(drained)
	}()

	for i, t := range tiles {
		wp.SubmitTask(TileTask{Tile: t, TaskID: i})
	}
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
	<-drained
}
