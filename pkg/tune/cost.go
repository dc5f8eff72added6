package tune

import (
	"time"

	"github.com/oisee/rotate/pkg/rotate"
)

// Case is one (n, left) point the cost function measures thresholds
// against - deliberately smaller and denser than pkg/bench's default
// sweep, since Cost runs once per MCMC step and needs to be cheap.
type Case struct {
	N    int
	Left int
}

// DefaultCases spans the region where threshold choice actually matters:
// sizes near stableMinLen and near typical scratch-buffer budgets, at a
// spread of left/n ratios.
func DefaultCases() []Case {
	var cases []Case
	for _, n := range []int{8, 16, 24, 32, 48, 64, 96, 128, 256, 1024} {
		for _, f := range []float64{0.01, 0.1, 0.3, 0.5, 0.7, 0.9, 0.99} {
			left := int(float64(n) * f)
			if left < 1 {
				left = 1
			}
			if left >= n {
				left = n - 1
			}
			cases = append(cases, Case{N: n, Left: left})
		}
	}
	return cases
}

// Cost times Thresholds against cases, summing nanoseconds across both
// tunable dispatchers. Lower is better. Each case is measured repeatedly
// and averaged, since a single run at these sizes is too short to read
// reliably off the clock. The trinity dispatcher is given scratch as long
// as the whole case, so it always takes its auxiliary branch and
// t.TrinityMinDiff does not change the cost.
func Cost(t Thresholds, cases []Case) float64 {
	const repeats = 64
	var total float64

	for _, c := range cases {
		base := make([]int, c.N)
		for i := range base {
			base[i] = i
		}
		work := make([]int, c.N)
		scratch := make([]int, c.N)

		copy(work, base)
		start := time.Now()
		for i := 0; i < repeats; i++ {
			copy(work, base)
			rotate.StableRotateTuned(work, c.Left, t.StableMinLen, t.StableBufWords)
		}
		total += float64(time.Since(start).Nanoseconds()) / repeats

		copy(work, base)
		start = time.Now()
		for i := 0; i < repeats; i++ {
			copy(work, base)
			rotate.TrinityRotateWithMinDiff(work, c.Left, scratch, t.TrinityMinDiff)
		}
		total += float64(time.Since(start).Nanoseconds()) / repeats
	}

	return total
}
