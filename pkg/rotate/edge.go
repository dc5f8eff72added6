package rotate

// EdgeRotate handles the degenerate splits: left or right being 0, 1, or
// equal. Most algorithms in this package hand such splits to it, either up
// front or once their own reduction has shrunk a side to 1; DirectRotate
// and DrillRotate never call it. For any other split it falls back to
// DirectRotate, the simplest total rotation.
func EdgeRotate[T any](s []T, left int) {
	n := len(s)
	right := n - left

	switch {
	case left == 0 || right == 0:
		return
	case left == right:
		SwapForward(s[:left], s[left:])
	case left == 1:
		tmp := s[0]
		CopyForward(s[0:right], s[1:left+right])
		s[right] = tmp
	case right == 1:
		tmp := s[n-1]
		CopyBackward(s[1:left+1], s[0:left])
		s[0] = tmp
	default:
		DirectRotate(s, left)
	}
}
