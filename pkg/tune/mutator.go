package tune

import "math/rand/v2"

// Mutator applies random local perturbations to a Thresholds value.
type Mutator struct {
	rng *rand.Rand
}

// NewMutator creates a Mutator driven by rng.
func NewMutator(rng *rand.Rand) *Mutator {
	return &Mutator{rng: rng}
}

// Mutate returns a new Thresholds with exactly one field nudged by a
// random step, clamped back into Bounds. The input is never modified.
func (m *Mutator) Mutate(t Thresholds) Thresholds {
	switch m.rng.IntN(3) {
	case 0:
		t.StableMinLen += m.step(t.StableMinLen)
	case 1:
		t.StableBufWords += m.step(t.StableBufWords)
	default:
		t.TrinityMinDiff += m.step(t.TrinityMinDiff)
	}
	return t.Clamp()
}

// step picks a signed perturbation scaled to the current value, so the
// chain takes large strides early when a field is large and fine strides
// once it's small - a coarse-to-fine search rather than a fixed step.
func (m *Mutator) step(current int) int {
	scale := current/4 + 1
	delta := m.rng.IntN(2*scale+1) - scale
	if delta == 0 {
		delta = 1
		if m.rng.IntN(2) == 0 {
			delta = -1
		}
	}
	return delta
}
