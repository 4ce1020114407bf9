package sim

import "math"

// GreedyStrategy assigns each work item to the host maximizing the item's own
// cost utility, with no trust multiplier and no host-side say. Myopic: items
// do not see each other's choices within an iteration.
type GreedyStrategy struct{}

// NewGreedyStrategy creates the greedy strategy.
func NewGreedyStrategy() *GreedyStrategy {
	return &GreedyStrategy{}
}

// Name returns the canonical strategy name.
func (s *GreedyStrategy) Name() string { return StrategyGreedy }

// Decide picks, per item, the host with the best load-aware dynamic cost
// utility. Ties go to the first host in slice order. With no hosts, every item
// stays unassigned.
func (s *GreedyStrategy) Decide(_ int, items []*WorkItem, hosts []*Host, costs CostMatrix) Assignment {
	assignment := make(Assignment, len(items))
	for _, item := range items {
		var best *Host
		maxUtility := math.Inf(-1)
		for _, host := range hosts {
			dc := costs.Dynamic(item, host)
			if utility := item.Utility(dc.Latency, dc.Energy); utility > maxUtility {
				maxUtility, best = utility, host
			}
		}
		if best != nil {
			assignment[item.ID] = best.ID
		}
	}
	return assignment
}
