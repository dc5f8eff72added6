package rotate

import "testing"

// TestStableEdgeBranchUnreachable documents the resolution of the dispatch
// open question: StableRotate has no special-cased left==1||right==1
// branch of its own. Below stableMinLen DirectRotate rotates those shapes;
// at or above it a one-element side always fits the auxiliary budget, so
// AuxRotate hands them to EdgeRotate. This test checks the rotated result
// for left==1 and right==1 across sizes both below and above stableMinLen;
// it does not record which branch ran.
func TestStableEdgeBranchUnreachable(t *testing.T) {
	sizes := []int{2, 3, stableMinLen - 1, stableMinLen, stableMinLen + 1, 500, 100000}
	for _, n := range sizes {
		if n < 1 {
			continue
		}
		left := seq(n)
		StableRotate(left, 1)
		checkRotated(t, left, 1)

		right := seq(n)
		StableRotate(right, n-1)
		checkRotated(t, right, n-1)
	}
}

func TestStableRotateUsesDirectBelowMinLen(t *testing.T) {
	for n := 1; n < stableMinLen; n++ {
		for l := 0; l <= n; l++ {
			s := seq(n)
			StableRotate(s, l)
			checkRotated(t, s, l)
		}
	}
}

func TestStableRotateLargeElementFallsBackToDirect(t *testing.T) {
	// A struct wider than 4 machine words forces the direct branch
	// regardless of n, per the size-based policy in StableRotate.
	type wide struct{ a, b, c, d, e, f [2]int64 }
	n, left := 200, 77
	s := make([]wide, n)
	for i := range s {
		s[i].a[0] = int64(i)
	}
	StableRotate(s, left)
	for i, v := range s {
		want := int64((i + left) % n)
		if v.a[0] != want {
			t.Fatalf("wide-element rotate: index %d = %d, want %d", i, v.a[0], want)
		}
	}
}
