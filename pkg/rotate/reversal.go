package rotate

// ReversalRotate rotates s by reversing the left block, reversing the right
// block, then reversing the whole region (the classic "three reversals"
// rotation). No scratch buffer is needed.
func ReversalRotate[T any](s []T, left int) {
	n := len(s)
	right := n - left
	if left <= 1 || right <= 1 {
		EdgeRotate(s, left)
		return
	}
	if left == right {
		SwapForward(s[:left], s[left:])
		return
	}
	ReverseSlice(s[:left])
	ReverseSlice(s[left:])
	ReverseSlice(s)
}

// BlockReversalRotate is ReversalRotate performed at block granularity: it
// reverses the order of gcd(left,right)-sized blocks instead of individual
// elements, cutting the element-move count whenever left and right share a
// large common factor. Degenerates to ReversalRotate when gcd(left,right)
// is 1.
func BlockReversalRotate[T any](s []T, left int) {
	n := len(s)
	right := n - left
	if left <= 1 || right <= 1 {
		EdgeRotate(s, left)
		return
	}
	if left == right {
		SwapForward(s[:left], s[left:])
		return
	}
	g := gcdBinary(left, right)
	if g == 1 {
		ReversalRotate(s, left)
		return
	}
	reverseBlocks(s[:left], g)
	reverseBlocks(s[left:], g)
	reverseBlocks(s, g)
}

// reverseBlocks reverses the order of the len(s)/blockSize contiguous
// blocks of blockSize elements each, swapping whole blocks rather than
// individual elements. len(s) must be a multiple of blockSize.
func reverseBlocks[T any](s []T, blockSize int) {
	nBlocks := len(s) / blockSize
	for i, j := 0, nBlocks-1; i < j; i, j = i+1, j-1 {
		SwapForward(s[i*blockSize:(i+1)*blockSize], s[j*blockSize:(j+1)*blockSize])
	}
}
