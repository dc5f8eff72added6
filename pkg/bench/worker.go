package bench

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/golang/glog"
)

// WorkerPool runs timing tasks across a fixed number of goroutines and
// reports aggregate progress on a ticker, the same shape the originating
// search tooling used to parallelize target-sequence verification.
type WorkerPool struct {
	NumWorkers  int
	MinDuration time.Duration
	Results     *Table

	completed atomic.Int64
	measured  atomic.Int64 // total algorithm invocations timed, across all tasks
}

// NewWorkerPool creates a pool with the given number of workers and a
// default minimum measurement window per task. numWorkers<=0 uses
// runtime.NumCPU.
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		NumWorkers:  numWorkers,
		MinDuration: 50 * time.Millisecond,
		Results:     NewTable(),
	}
}

// Stats returns the number of completed tasks and total timed invocations.
func (wp *WorkerPool) Stats() (completed, measured int64) {
	return wp.completed.Load(), wp.measured.Load()
}

// RunTasks distributes the given timing tasks across the pool's workers
// and blocks until every task has been measured or ctx is canceled. On
// cancellation, workers finish their in-flight task and stop picking up
// new ones; already-recorded results stay in wp.Results so a caller can
// checkpoint and resume.
func (wp *WorkerPool) RunTasks(ctx context.Context, tasks []Task) {
	total := int64(len(tasks))

	ch := make(chan Task, len(tasks))
	for _, task := range tasks {
		ch <- task
	}
	close(ch)

	done := make(chan struct{})
	start := time.Now()
	go func() {
		ticker := time.NewTicker(10 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				comp := wp.completed.Load()
				pct := float64(comp) / float64(total) * 100
				glog.Infof("  [%s] %d/%d cases (%.1f%%)", time.Since(start).Round(time.Second), comp, total, pct)
			}
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < wp.NumWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case task, ok := <-ch:
					if !ok || ctx.Err() != nil {
						return
					}
					wp.measureOne(task)
					wp.completed.Add(1)
				}
			}
		}()
	}
	wg.Wait()

	close(done)
	comp := wp.completed.Load()
	glog.Infof("  [%s] %d/%d cases (%.1f%%) | %s", time.Since(start).Round(time.Second), comp, total,
		float64(comp)/float64(total)*100, doneOrCanceled(ctx))
}

func doneOrCanceled(ctx context.Context) string {
	if ctx.Err() != nil {
		return "CANCELED"
	}
	return "DONE"
}

// measureOne times task.Algo against task.Case until MinDuration has
// elapsed, restoring the rotated slice to its original order between
// iterations so every iteration starts from the same state.
func (wp *WorkerPool) measureOne(task Task) {
	n, left := task.Case.N, task.Case.Left
	base := make([]int, n)
	for i := range base {
		base[i] = i
	}
	work := make([]int, n)
	scratch := make([]int, n)

	var iterations int
	var elapsed time.Duration
	for elapsed < wp.MinDuration {
		copy(work, base)
		start := time.Now()
		task.Algo.Run(work, left, scratch)
		elapsed += time.Since(start)
		iterations++
		wp.measured.Add(1)
		if iterations > 5_000_000 {
			break // guards against a pathologically fast no-op case never hitting MinDuration
		}
	}

	nsPerOp := float64(elapsed.Nanoseconds()) / float64(iterations)
	wp.Results.Add(Result{
		Algo:       task.Algo.Name,
		N:          n,
		Left:       left,
		Iterations: iterations,
		NsPerOp:    nsPerOp,
		BytesMoved: int64(n) * 8, // elements moved per rotation, int64-sized on most platforms
	})
}
