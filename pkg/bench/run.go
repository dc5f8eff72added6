package bench

import (
	"context"
	"time"

	"github.com/golang/glog"
	"github.com/oisee/rotate/pkg/rotate"
)

// Config holds sweep configuration.
type Config struct {
	Sizes           []int     // size ladder to sweep; defaults to DefaultSizes
	Fractions       []float64 // left/n fractions to sample at each size; defaults to DefaultFractions
	NumWorkers      int       // defaults to runtime.NumCPU
	MinDuration     time.Duration
	IncludeBuffered bool // whether to also time aux/naive-aux/bridge/trinity
	Verbose         bool

	// Resume, if non-nil, seeds the result table with prior results and
	// skips any task whose (Algo, N, Left) already appears in them.
	Resume *Checkpoint
}

// Run builds the case matrix implied by cfg, times every algorithm
// against every case not already present in cfg.Resume, and returns the
// accumulated result table. Canceling ctx stops the sweep early; results
// gathered so far remain in the returned table.
func Run(ctx context.Context, cfg Config) *Table {
	sizes := cfg.Sizes
	if sizes == nil {
		sizes = DefaultSizes
	}
	fractions := cfg.Fractions
	if fractions == nil {
		fractions = DefaultFractions
	}

	cases := BuildMatrix(sizes, fractions)
	tasks := BuildTasks(cases, rotate.Algorithms[int](), cfg.IncludeBuffered)

	pool := NewWorkerPool(cfg.NumWorkers)
	if cfg.MinDuration > 0 {
		pool.MinDuration = cfg.MinDuration
	}

	if cfg.Resume != nil {
		done := make(map[resultKey]bool, len(cfg.Resume.Results))
		for _, r := range cfg.Resume.Results {
			pool.Results.Add(r)
			done[resultKey{r.Algo, r.N, r.Left}] = true
		}
		filtered := tasks[:0]
		for _, tk := range tasks {
			if !done[resultKey{tk.Algo.Name, tk.Case.N, tk.Case.Left}] {
				filtered = append(filtered, tk)
			}
		}
		if cfg.Verbose {
			glog.Infof("resuming: %d/%d tasks already complete, %d remaining", len(tasks)-len(filtered), len(tasks), len(filtered))
		}
		tasks = filtered
	}

	if cfg.Verbose {
		glog.Infof("sweeping %d cases, %d tasks remaining", len(cases), len(tasks))
	}

	pool.RunTasks(ctx, tasks)
	return pool.Results
}

type resultKey struct {
	algo string
	n    int
	left int
}
