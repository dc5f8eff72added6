package rotate

// TrinityBridgeMinDiff is the trinity dispatch's bridge-eligibility floor:
// bridge rotate is only chosen when |left-right| exceeds this many
// elements. Empirically tuned in the reference implementation; pkg/tune
// searches for alternative values of it against a benchmark corpus.
const TrinityBridgeMinDiff = 3

// TrinityRotate is a policy composite over the three buffered rotations:
// auxiliary when the smaller side fits the scratch buffer, bridge when the
// difference between the sides fits (and is large enough to be worth the
// extra swap), otherwise contrev (which needs no scratch at all).
func TrinityRotate[T any](s []T, left int, scratch []T) {
	TrinityRotateWithMinDiff(s, left, scratch, TrinityBridgeMinDiff)
}

// TrinityRotateWithMinDiff is TrinityRotate with the bridge-eligibility
// floor taken as a parameter rather than the package constant, so
// pkg/tune can search for a better threshold without rebuilding the
// package for every trial.
func TrinityRotateWithMinDiff[T any](s []T, left int, scratch []T, bridgeMinDiff int) {
	n := len(s)
	right := n - left

	if min(left, right) <= len(scratch) {
		AuxRotate(s, left, scratch)
		return
	}

	d := left - right
	if d < 0 {
		d = -d
	}
	if d <= len(scratch) && d > bridgeMinDiff {
		BridgeRotate(s, left, scratch)
		return
	}

	ContrevRotate(s, left)
}
