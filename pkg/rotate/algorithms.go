package rotate

// Algorithm describes one rotation strategy as a uniform callable, so that
// benchmark and correctness-oracle code can iterate every strategy without
// a per-algorithm switch statement. Unbuffered algorithms ignore scratch.
type Algorithm[T any] struct {
	Name     string
	Buffered bool
	Run      func(s []T, left int, scratch []T)
}

// Algorithms returns every rotation strategy in this package as a uniform
// registry, in the order §4 of the design spec describes them, except that
// direct comes first.
func Algorithms[T any]() []Algorithm[T] {
	return []Algorithm[T]{
		{Name: "direct", Run: func(s []T, left int, _ []T) { DirectRotate(s, left) }},
		{Name: "reversal", Run: func(s []T, left int, _ []T) { ReversalRotate(s, left) }},
		{Name: "block-reversal", Run: func(s []T, left int, _ []T) { BlockReversalRotate(s, left) }},
		{Name: "gries-mills", Run: func(s []T, left int, _ []T) { GriesMillsRotate(s, left) }},
		{Name: "gries-mills-rec", Run: func(s []T, left int, _ []T) { GriesMillsRotateRec(s, left) }},
		{Name: "grail", Run: func(s []T, left int, _ []T) { GrailRotate(s, left) }},
		{Name: "drill", Run: func(s []T, left int, _ []T) { DrillRotate(s, left) }},
		{Name: "helix", Run: func(s []T, left int, _ []T) { HelixRotate(s, left) }},
		{Name: "piston", Run: func(s []T, left int, _ []T) { PistonRotate(s, left) }},
		{Name: "piston-rec", Run: func(s []T, left int, _ []T) { PistonRotateRec(s, left) }},
		{Name: "contrev", Run: func(s []T, left int, _ []T) { ContrevRotate(s, left) }},
		{Name: "block-contrev", Run: func(s []T, left int, _ []T) { BlockContrevRotate(s, left) }},
		{Name: "aux", Buffered: true, Run: func(s []T, left int, scratch []T) { AuxRotate(s, left, scratch) }},
		{Name: "naive-aux", Buffered: true, Run: func(s []T, left int, scratch []T) { NaiveAuxRotate(s, left, scratch) }},
		{Name: "bridge", Buffered: true, Run: func(s []T, left int, scratch []T) { BridgeRotate(s, left, scratch) }},
		{Name: "trinity", Buffered: true, Run: func(s []T, left int, scratch []T) { TrinityRotate(s, left, scratch) }},
		{Name: "stable", Run: func(s []T, left int, _ []T) { StableRotate(s, left) }},
	}
}
