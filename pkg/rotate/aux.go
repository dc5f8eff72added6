package rotate

// AuxRotate copies the smaller block into scratch, shifts the larger block
// over to close the gap, and copies the buffered block back into place.
// Required scratch capacity: min(left, n-left). Delegates to EdgeRotate
// whenever either side has 2 or fewer elements — wider than the generic
// edge policy's threshold of 1, because the buffered round-trip only pays
// for itself once the smaller side has at least a few elements.
func AuxRotate[T any](s []T, left int, scratch []T) {
	n := len(s)
	right := n - left
	if left <= 2 || right <= 2 {
		EdgeRotate(s, left)
		return
	}
	if left <= right {
		buf := scratch[:left]
		copy(buf, s[:left])
		CopyForward(s[:right], s[left:])
		copy(s[right:], buf)
	} else {
		buf := scratch[:right]
		copy(buf, s[left:])
		CopyBackward(s[right:], s[:left])
		copy(s[:right], buf)
	}
}

// NaiveAuxRotate is AuxRotate with the directional CopyForward/CopyBackward
// pair replaced by Go's built-in copy (direction-oblivious, like memmove).
// Kept as the baseline AuxRotate is compared against, per the reference
// implementation's own naive variant.
func NaiveAuxRotate[T any](s []T, left int, scratch []T) {
	n := len(s)
	right := n - left
	if left <= 2 || right <= 2 {
		EdgeRotate(s, left)
		return
	}
	if left <= right {
		buf := scratch[:left]
		copy(buf, s[:left])
		copy(s[:right], s[left:])
		copy(s[right:], buf)
	} else {
		buf := scratch[:right]
		copy(buf, s[left:])
		copy(s[right:], s[:left])
		copy(s[:right], buf)
	}
}
