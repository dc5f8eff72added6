package tune

import (
	"math"
	"math/rand/v2"
)

// Chain is a single Metropolis-Hastings MCMC chain with simulated
// annealing over Thresholds, mirroring the originating STOKE search's
// accept/anneal loop but over a three-integer parameter space instead of
// instruction sequences.
type Chain struct {
	current  Thresholds
	best     Thresholds
	cost     float64
	bestCost float64

	temperature float64
	rng         *rand.Rand
	mutator     *Mutator
	cases       []Case

	Accepted int64
	Rejected int64
}

// NewChain creates a chain starting from init, seeded deterministically
// from seed so a tuning run can be reproduced.
func NewChain(init Thresholds, cases []Case, temperature float64, seed uint64) *Chain {
	rng := rand.New(rand.NewPCG(seed, seed^0xA5A5A5A5A5A5A5A5))
	cost := Cost(init, cases)
	return &Chain{
		current:     init,
		best:        init,
		cost:        cost,
		bestCost:    cost,
		temperature: temperature,
		rng:         rng,
		mutator:     NewMutator(rng),
		cases:       cases,
	}
}

// Step performs one MCMC iteration: mutate, measure, accept or reject,
// then anneal the temperature by decay. Returns true if accepted.
func (c *Chain) Step(decay float64) bool {
	candidate := c.mutator.Mutate(c.current)
	newCost := Cost(candidate, c.cases)
	delta := newCost - c.cost

	accepted := false
	switch {
	case delta <= 0:
		accepted = true
	case c.temperature > 0:
		prob := math.Exp(-delta / c.temperature)
		if c.rng.Float64() < prob {
			accepted = true
		}
	}

	if accepted {
		c.current = candidate
		c.cost = newCost
		c.Accepted++
		if newCost < c.bestCost {
			c.best = candidate
			c.bestCost = newCost
		}
	} else {
		c.Rejected++
	}

	c.temperature *= decay
	return accepted
}

// Best returns the lowest-cost thresholds the chain has found and their cost.
func (c *Chain) Best() (Thresholds, float64) {
	return c.best, c.bestCost
}
