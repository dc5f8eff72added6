package rotate

import "testing"

func TestReverseSliceTwiceIsIdentity(t *testing.T) {
	s := []int{1, 2, 3, 4, 5, 6, 7}
	orig := append([]int(nil), s...)
	ReverseSlice(s)
	ReverseSlice(s)
	for i := range s {
		if s[i] != orig[i] {
			t.Fatalf("reverse twice: got %v, want %v", s, orig)
		}
	}
}

func TestSwapForwardTwiceIsIdentity(t *testing.T) {
	s := []int{1, 2, 3, 4, 5, 6, 7, 8}
	orig := append([]int(nil), s...)
	x, y := s[0:3], s[3:6]
	SwapForward(x, y)
	SwapForward(x, y)
	for i := range s {
		if s[i] != orig[i] {
			t.Fatalf("swap forward twice: got %v, want %v", s, orig)
		}
	}
}

func TestCopyForwardSelfIsIdentity(t *testing.T) {
	s := []int{1, 2, 3, 4, 5}
	orig := append([]int(nil), s...)
	CopyForward(s, s)
	for i := range s {
		if s[i] != orig[i] {
			t.Fatalf("copy forward onto self: got %v, want %v", s, orig)
		}
	}
}

func TestCopyForwardLeftwardShift(t *testing.T) {
	s := []int{1, 2, 3, 4, 5, 6}
	// shift [2:6) onto [0:4) - a leftward shift, dst < src.
	CopyForward(s[:4], s[2:])
	want := []int{3, 4, 5, 6, 5, 6}
	for i := range want {
		if s[i] != want[i] {
			t.Fatalf("copy forward: got %v, want %v", s, want)
		}
	}
}

func TestCopyBackwardRightwardShift(t *testing.T) {
	s := []int{1, 2, 3, 4, 5, 6}
	// shift [0:4) onto [2:6) - a rightward shift, dst > src.
	CopyBackward(s[2:], s[:4])
	want := []int{1, 2, 1, 2, 3, 4}
	for i := range want {
		if s[i] != want[i] {
			t.Fatalf("copy backward: got %v, want %v", s, want)
		}
	}
}

func TestSwapForwardOverlapShiftsLeadingElements(t *testing.T) {
	// swap_forward over an overlapping range by k=2 shifts the first
	// len(x)=3 positions of the combined 5-element range left by k; since 3
	// is not a multiple of 2, the trailing two are not a plain rotation.
	s := []int{1, 2, 3, 4, 5}
	SwapForward(s[0:3], s[2:5])
	want := []int{3, 4, 5, 2, 1}
	for i := range want {
		if s[i] != want[i] {
			t.Fatalf("overlapping swap_forward: got %v, want %v", s, want)
		}
	}
}
