package rotate

// HelixRotate maintains three running cursors (start, mid, end) and on each
// iteration reduces the larger side modulo the smaller one, folding a
// Gries-Mills-style block swap and a modulo reduction into a single step.
func HelixRotate[T any](s []T, left int) {
	start, mid, end := 0, left, len(s)
	for {
		l, r := mid-start, end-mid

		if l >= r {
			if r <= 1 {
				break
			}
			if l == r {
				SwapForward(s[start:mid], s[mid:end])
				return
			}
			oldL := l
			newL := oldL % r
			SwapBackward(s[start:start+oldL], s[end-oldL:end])
			end -= oldL
			mid = start + newL
		} else {
			if l <= 1 {
				break
			}
			if l == r {
				SwapForward(s[start:mid], s[mid:end])
				return
			}
			oldR := r
			newR := oldR % l
			SwapForward(s[start:start+oldR], s[end-oldR:end])
			start += oldR
			mid = end - newR
		}
	}
	EdgeRotate(s[start:end], mid-start)
}
