package oracle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oisee/rotate/pkg/rotate"
)

func TestReferenceMatchesDirectDefinition(t *testing.T) {
	s := []int{10, 20, 30, 40, 50}
	got := Reference(s, 2)
	assert.Equal(t, []int{30, 40, 50, 10, 20}, got)
}

func TestReferenceDoesNotMutateInput(t *testing.T) {
	s := []int{1, 2, 3, 4}
	orig := append([]int(nil), s...)
	Reference(s, 1)
	assert.Equal(t, orig, s, "Reference must not mutate its input")
}

func TestVerifyAllPassesEveryRegisteredAlgorithm(t *testing.T) {
	failures := VerifyAll(80)
	for name, err := range failures {
		assert.NoError(t, err, "algorithm %q failed exhaustive check", name)
	}
}

func TestQuickCheckCatchesWrongAlgorithm(t *testing.T) {
	broken := rotate.Algorithm[int]{
		Name: "broken",
		Run: func(s []int, left int, _ []int) {
			// Deliberately reverses the slice instead of rotating it.
			rotate.ReverseSlice(s)
		},
	}
	require.Error(t, QuickCheck(broken), "expected QuickCheck to reject a broken algorithm")
}

func TestFingerprintSetRecognizesReferenceOutputs(t *testing.T) {
	fs := NewFingerprintSet()
	for _, c := range QuickVectors {
		fs.Add(c)
	}
	for _, c := range QuickVectors {
		ref := Reference(seqOf(c.N), c.Left)
		assert.True(t, fs.Has(Fingerprint(ref)), "fingerprint set missed known-good case %+v", c)
	}
}

func TestFingerprintDistinguishesDifferentRotations(t *testing.T) {
	a := Reference(seqOf(10), 3)
	b := Reference(seqOf(10), 4)
	assert.NotEqual(t, Fingerprint(a), Fingerprint(b), "expected different rotations to produce different fingerprints")
}
