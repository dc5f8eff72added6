// Package oracle verifies rotation algorithms against a reference
// implementation: a cheap fixed-vector QuickCheck for fast rejection, a
// compact Fingerprint for batch comparison, and an ExhaustiveCheck sweep
// for full confidence before an algorithm is trusted by pkg/bench or
// pkg/tune.
package oracle

// Reference computes the definitive left-rotation of s by copying: it is
// never the thing under test, only the ground truth everything else is
// checked against.
func Reference[T any](s []T, left int) []T {
	n := len(s)
	out := make([]T, n)
	if n == 0 {
		return out
	}
	left = ((left % n) + n) % n
	copy(out, s[left:])
	copy(out[n-left:], s[:left])
	return out
}

// FixtureCase is one fixed (size, left) pair used for quick rejection
// before paying for a full exhaustive sweep.
type FixtureCase struct {
	N    int
	Left int
}

// QuickVectors mirrors the originating verifier's small fixed
// test-vector set: cheap to run on every candidate, catches almost every
// wrong implementation immediately. Chosen to hit both rotation edges,
// the midpoint, and a handful of odd/prime sizes that stress gcd-based
// algorithms.
var QuickVectors = []FixtureCase{
	{0, 0}, {1, 0}, {1, 1},
	{2, 0}, {2, 1}, {2, 2},
	{7, 3}, {13, 5}, {17, 1}, {17, 16},
	{100, 37}, {101, 50}, {128, 64},
}
