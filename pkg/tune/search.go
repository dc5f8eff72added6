package tune

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/golang/glog"
)

// Config holds tuning search configuration.
type Config struct {
	Init       Thresholds // starting point; defaults to Default()
	Cases      []Case     // defaults to DefaultCases()
	Chains     int        // independent parallel chains; defaults to 1
	Iterations int        // steps per chain; defaults to 2000
	Decay      float64    // temperature decay per step; defaults to 0.999
	Verbose    bool
}

// Result is one chain's outcome.
type Result struct {
	ChainID    int
	Thresholds Thresholds
	Cost       float64
	Accepted   int64
	Rejected   int64
}

// Run launches cfg.Chains independent annealing chains in parallel and
// returns each chain's best result, mirroring the originating STOKE
// search's one-goroutine-per-chain shape with a 10-second progress
// ticker. Canceling ctx stops every chain at its next iteration
// boundary; each chain still reports its best threshold set found so far.
func Run(ctx context.Context, cfg Config) []Result {
	if cfg.Init == (Thresholds{}) {
		cfg.Init = Default()
	}
	if cfg.Cases == nil {
		cfg.Cases = DefaultCases()
	}
	if cfg.Chains <= 0 {
		cfg.Chains = 1
	}
	if cfg.Iterations <= 0 {
		cfg.Iterations = 2000
	}
	if cfg.Decay <= 0 || cfg.Decay >= 1 {
		cfg.Decay = 0.999
	}

	results := make([]Result, cfg.Chains)
	baseSeed := rand.Uint64()

	done := make(chan struct{})
	start := time.Now()
	if cfg.Verbose {
		go func() {
			ticker := time.NewTicker(10 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					glog.Infof("  [%s] tuning in progress", time.Since(start).Round(time.Second))
				}
			}
		}()
	}

	var wg sync.WaitGroup
	for i := 0; i < cfg.Chains; i++ {
		wg.Add(1)
		go func(chainID int) {
			defer wg.Done()
			seed := baseSeed + uint64(chainID)*0x9E3779B97F4A7C15
			chain := NewChain(cfg.Init, cfg.Cases, 1.0, seed)
			for iter := 0; iter < cfg.Iterations; iter++ {
				if ctx.Err() != nil {
					break
				}
				chain.Step(cfg.Decay)
			}
			best, bestCost := chain.Best()
			results[chainID] = Result{
				ChainID:    chainID,
				Thresholds: best,
				Cost:       bestCost,
				Accepted:   chain.Accepted,
				Rejected:   chain.Rejected,
			}
		}(i)
	}
	wg.Wait()
	close(done)

	if cfg.Verbose {
		glog.Infof("tuning complete in %s", time.Since(start).Round(time.Millisecond))
	}

	return results
}

// Winner returns the lowest-cost result across all chains.
func Winner(results []Result) Result {
	best := results[0]
	for _, r := range results[1:] {
		if r.Cost < best.Cost {
			best = r
		}
	}
	return best
}
