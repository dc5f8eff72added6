package rotate

// BridgeRotate reduces the scratch requirement to bridge = |left-(n-left)|
// when that is smaller than min(left, n-left): the overhanging "bridge"
// elements on the larger side are swapped into place against the smaller
// side first, which leaves a strictly smaller sub-rotation of size
// bridge+min(left,n-left) that AuxRotate finishes using only bridge-sized
// scratch. Falls back to AuxRotate outright when the bridge isn't smaller
// than the smaller side.
func BridgeRotate[T any](s []T, left int, scratch []T) {
	n := len(s)
	right := n - left
	bridge := left - right
	if bridge < 0 {
		bridge = -bridge
	}
	if min(left, right) <= bridge {
		AuxRotate(s, left, scratch)
		return
	}
	if left > right {
		SwapForward(s[bridge:left], s[left:])
		AuxRotate(s[:left], bridge, scratch)
	} else {
		SwapForward(s[:left], s[left:2*left])
		AuxRotate(s[left:], left, scratch)
	}
}
