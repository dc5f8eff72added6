package oracle

import (
	"fmt"

	"github.com/oisee/rotate/pkg/rotate"
)

// Mismatch describes the first case where an algorithm disagreed with
// the reference rotation.
type Mismatch struct {
	N    int
	Left int
	Got  []int
	Want []int
}

func (m *Mismatch) Error() string {
	return fmt.Sprintf("rotate mismatch at n=%d left=%d: got %v, want %v", m.N, m.Left, m.Got, m.Want)
}

// QuickCheck runs algo against the fixed QuickVectors fixture set and
// returns the first disagreement with the reference, or nil if algo
// agrees on every vector. Cheap enough to run before every exhaustive
// sweep or tuning trial.
func QuickCheck(algo rotate.Algorithm[int]) error {
	for _, c := range QuickVectors {
		if err := checkOne(algo, c.N, c.Left); err != nil {
			return err
		}
	}
	return nil
}

// ExhaustiveCheck sweeps every (n, left) pair with n from 0 to maxN
// inclusive and left from 0 to n inclusive, failing on the first
// disagreement with the reference rotation. This is the oracle's full
// confidence check; VerifyAll runs it for every registered algorithm that
// passes QuickCheck.
func ExhaustiveCheck(algo rotate.Algorithm[int], maxN int) error {
	for n := 0; n <= maxN; n++ {
		for left := 0; left <= n; left++ {
			if err := checkOne(algo, n, left); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkOne(algo rotate.Algorithm[int], n, left int) error {
	s := seqOf(n)
	want := Reference(s, left)

	scratch := make([]int, n)
	algo.Run(s, left, scratch)

	for i := range want {
		if s[i] != want[i] {
			return &Mismatch{N: n, Left: left, Got: append([]int(nil), s...), Want: want}
		}
	}
	return nil
}

// VerifyAll runs QuickCheck then ExhaustiveCheck against every algorithm
// in the registry, returning a map of algorithm name to the error that
// failed it (algorithms absent from the map passed both checks).
func VerifyAll(maxN int) map[string]error {
	failures := make(map[string]error)
	for _, algo := range rotate.Algorithms[int]() {
		if err := QuickCheck(algo); err != nil {
			failures[algo.Name] = err
			continue
		}
		if err := ExhaustiveCheck(algo, maxN); err != nil {
			failures[algo.Name] = err
		}
	}
	return failures
}
