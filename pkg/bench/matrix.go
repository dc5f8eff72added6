// Package bench drives timing comparisons across every rotation strategy
// in pkg/rotate over a matrix of sizes and rotation amounts, in the same
// worker-pool-plus-progress-ticker shape the originating search tooling
// used to sweep instruction sequences.
package bench

import "github.com/oisee/rotate/pkg/rotate"

// Case is one (n, left) point in the benchmark matrix.
type Case struct {
	N    int
	Left int
}

// DefaultSizes is the size ladder swept by default: small sizes dense
// enough to characterize the dispatcher's thresholds, then a log-spaced
// tail out to sizes where cache effects dominate.
var DefaultSizes = []int{
	8, 16, 24, 32, 64, 128, 256, 512,
	1024, 4096, 16384, 65536, 262144, 1 << 20,
}

// DefaultFractions is the set of left/n ratios sampled at each size: the
// two edges, the midpoint, and two skewed points on either side of it.
var DefaultFractions = []float64{0, 0.01, 0.25, 0.5, 0.75, 0.99, 1}

// BuildMatrix expands a size ladder and a set of left/n fractions into the
// concrete (n, left) cases a sweep should run, deduplicating left values
// that round to the same integer at small n.
func BuildMatrix(sizes []int, fractions []float64) []Case {
	var cases []Case
	for _, n := range sizes {
		seen := make(map[int]bool, len(fractions))
		for _, f := range fractions {
			left := int(float64(n) * f)
			if left > n {
				left = n
			}
			if seen[left] {
				continue
			}
			seen[left] = true
			cases = append(cases, Case{N: n, Left: left})
		}
	}
	return cases
}

// Task is one unit of sweep work: time one algorithm against one case.
type Task struct {
	Case Case
	Algo rotate.Algorithm[int]
}

// BuildTasks cross-joins a case matrix against the full algorithm
// registry, skipping buffered algorithms unless includeBuffered is true.
func BuildTasks(cases []Case, algos []rotate.Algorithm[int], includeBuffered bool) []Task {
	var tasks []Task
	for _, c := range cases {
		for _, a := range algos {
			if a.Buffered && !includeBuffered {
				continue
			}
			tasks = append(tasks, Task{Case: c, Algo: a})
		}
	}
	return tasks
}
