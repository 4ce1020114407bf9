package sim

import (
	"fmt"
	"math/rand"
)

// Assignment maps work item ID to host ID. Only real placements appear; an
// unassigned item is simply absent. Recomputed from scratch every iteration.
type Assignment map[string]string

// Canonical strategy names.
const (
	StrategyGameTheory = "game_theory"
	StrategyGreedy     = "greedy"
	StrategyRandom     = "random"
)

// Strategy defines the interface for per-iteration allocation decisions.
type Strategy interface {
	// Name returns the canonical strategy name.
	Name() string

	// Decide turns the current populations into an assignment. Host load
	// visible through costs.Dynamic is the residue of the previous iteration;
	// Decide must not mutate items or hosts.
	Decide(iteration int, items []*WorkItem, hosts []*Host, costs CostMatrix) Assignment
}

// NewStrategy creates a strategy by canonical name. rng is only consumed by
// the random strategy; the other two are deterministic.
func NewStrategy(name string, rng *rand.Rand) (Strategy, error) {
	switch name {
	case StrategyGameTheory:
		return NewNegotiationStrategy(), nil
	case StrategyGreedy:
		return NewGreedyStrategy(), nil
	case StrategyRandom:
		return NewRandomStrategy(rng), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
}

// AvailableStrategies returns the list of supported strategy names, in the
// canonical benchmark order.
func AvailableStrategies() []string {
	return []string{StrategyGameTheory, StrategyGreedy, StrategyRandom}
}

// replicatesAfterFirstIteration reports whether a strategy only performs real
// work at iteration 0, with later iterations replaying iteration 0's metrics.
func replicatesAfterFirstIteration(s Strategy) bool {
	return s.Name() == StrategyGreedy || s.Name() == StrategyRandom
}
