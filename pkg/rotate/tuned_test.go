package rotate

import "testing"

func TestTrinityRotateWithMinDiffAgreesAtDefault(t *testing.T) {
	for n := 1; n <= 100; n += 3 {
		for left := 0; left <= n; left++ {
			a := seq(n)
			b := seq(n)
			TrinityRotate(a, left, make([]int, n))
			TrinityRotateWithMinDiff(b, left, make([]int, n), TrinityBridgeMinDiff)
			for i := range a {
				if a[i] != b[i] {
					t.Fatalf("TrinityRotate/TrinityRotateWithMinDiff disagree at n=%d left=%d", n, left)
				}
			}
		}
	}
}

func TestTrinityRotateWithMinDiffStaysCorrectAcrossThresholds(t *testing.T) {
	for _, minDiff := range []int{0, 1, 2, 3, 5, 10, 1000} {
		for n := 1; n <= 60; n += 5 {
			for left := 0; left <= n; left++ {
				s := seq(n)
				TrinityRotateWithMinDiff(s, left, make([]int, n), minDiff)
				checkRotated(t, s, left)
			}
		}
	}
}

func TestStableRotateTunedAgreesAtDefault(t *testing.T) {
	for n := 1; n <= 150; n += 4 {
		for left := 0; left <= n; left++ {
			a := seq(n)
			b := seq(n)
			StableRotate(a, left)
			StableRotateTuned(b, left, stableMinLen, stableBufWords)
			for i := range a {
				if a[i] != b[i] {
					t.Fatalf("StableRotate/StableRotateTuned disagree at n=%d left=%d", n, left)
				}
			}
		}
	}
}

func TestStableRotateTunedStaysCorrectAcrossThresholds(t *testing.T) {
	for _, minLen := range []int{0, 1, 8, 24, 64} {
		for _, bufWords := range []int{1, 4, 32, 128} {
			for n := 0; n <= 90; n += 7 {
				for left := 0; left <= n; left++ {
					s := seq(n)
					StableRotateTuned(s, left, minLen, bufWords)
					checkRotated(t, s, left)
				}
			}
		}
	}
}
