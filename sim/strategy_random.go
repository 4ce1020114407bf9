package sim

import "math/rand"

// RandomStrategy assigns each work item to a uniformly random host. The
// baseline the other two strategies are measured against.
type RandomStrategy struct {
	rng *rand.Rand
}

// NewRandomStrategy creates a random strategy drawing from rng.
func NewRandomStrategy(rng *rand.Rand) *RandomStrategy {
	return &RandomStrategy{rng: rng}
}

// Name returns the canonical strategy name.
func (s *RandomStrategy) Name() string { return StrategyRandom }

// Decide assigns every item to a uniform random host, independently per item.
// With no hosts, every item stays unassigned.
func (s *RandomStrategy) Decide(_ int, items []*WorkItem, hosts []*Host, _ CostMatrix) Assignment {
	assignment := make(Assignment, len(items))
	if len(hosts) == 0 {
		return assignment
	}
	for _, item := range items {
		assignment[item.ID] = hosts[s.rng.Intn(len(hosts))].ID
	}
	return assignment
}
