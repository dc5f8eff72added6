package rotate

// DirectRotate rotates s by following the gcd(n, left) independent cycles
// of the permutation i -> (i+left) mod n directly ("juggling" or "dolphin"
// rotate). Uses O(1) scratch: one saved element per cycle. This is the
// fallback every edge-case delegate in this package reduces to, so it must
// be correct standalone for every (left, n-left) split, including the
// degenerate ones.
func DirectRotate[T any](s []T, left int) {
	n := len(s)
	if left == 0 || n-left == 0 {
		return
	}

	g := gcdBinary(left, n)
	for i := 0; i < g; i++ {
		tmp := s[i]
		j := i
		for {
			k := j + left
			if k >= n {
				k -= n
			}
			if k == i {
				break
			}
			s[j] = s[k]
			j = k
		}
		s[j] = tmp
	}
}
