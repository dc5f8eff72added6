package rotate

// ReverseSlice reverses s in place. A no-op for len(s) <= 1.
func ReverseSlice[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// CopyForward copies len(src) elements from src to dst in ascending index
// order. Safe when dst starts at or before src within the same backing
// array (a leftward shift); using it for the opposite overlap duplicates
// elements instead of shifting them. Callers must pick CopyForward or
// CopyBackward to match the overlap direction — see CopyBackward.
func CopyForward[T any](dst, src []T) {
	for i := 0; i < len(src); i++ {
		dst[i] = src[i]
	}
}

// CopyBackward copies len(src) elements from src to dst in descending index
// order. Safe when dst starts after src within the same backing array (a
// rightward shift), because the higher destination positions are written
// before the corresponding source positions are read.
func CopyBackward[T any](dst, src []T) {
	for i := len(src) - 1; i >= 0; i-- {
		dst[i] = src[i]
	}
}

// SwapForward swaps x[i] with y[i] for i = 0..len(x) in ascending order.
// len(x) must equal len(y). When x and y are overlapping views into the
// same backing array (y starting k elements after x, 0 < k < len(x)), the
// first len(x) positions of the combined range end up holding its elements
// shifted left by k; the whole range is a cyclic rotation by k only when
// len(x) is a multiple of k.
func SwapForward[T any](x, y []T) {
	for i := 0; i < len(x); i++ {
		x[i], y[i] = y[i], x[i]
	}
}

// SwapBackward swaps x[i] with y[i] starting from the high end and working
// down to index 0. len(x) must equal len(y).
func SwapBackward[T any](x, y []T) {
	for i := len(x) - 1; i >= 0; i-- {
		x[i], y[i] = y[i], x[i]
	}
}
