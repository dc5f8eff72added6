package oracle

import (
	"encoding/binary"
	"hash/fnv"
)

// Fingerprint computes a compact hash of an int slice's contents and
// order. Two outputs with different fingerprints are guaranteed to
// differ; used to batch-compare many algorithm outputs against the
// reference without keeping every full slice around.
func Fingerprint(s []int) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for _, v := range s {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		h.Write(buf[:])
	}
	return h.Sum64()
}

// FingerprintSet builds a lookup table from fingerprint to the case that
// produced it, the same shape as the originating fingerprint map: add
// every reference fingerprint once, then look up candidate fingerprints
// in O(1) instead of comparing full slices.
type FingerprintSet struct {
	m map[uint64][]FixtureCase
}

// NewFingerprintSet creates an empty set.
func NewFingerprintSet() *FingerprintSet {
	return &FingerprintSet{m: make(map[uint64][]FixtureCase)}
}

// Add registers the reference fingerprint for the given case.
func (fs *FingerprintSet) Add(c FixtureCase) {
	ref := Reference(seqOf(c.N), c.Left)
	fp := Fingerprint(ref)
	fs.m[fp] = append(fs.m[fp], c)
}

// Has reports whether fp matches a known reference fingerprint.
func (fs *FingerprintSet) Has(fp uint64) bool {
	return len(fs.m[fp]) > 0
}

func seqOf(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}
