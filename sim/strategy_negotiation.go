package sim

import (
	"math"
	"sort"
)

// NegotiationStrategy is the trust-aware game-theoretic strategy: work items
// propose to their highest-utility host, then each host runs a guarded local
// search over its proposers in trust order.
type NegotiationStrategy struct{}

// NewNegotiationStrategy creates the negotiation strategy.
func NewNegotiationStrategy() *NegotiationStrategy {
	return &NegotiationStrategy{}
}

// Name returns the canonical strategy name.
func (s *NegotiationStrategy) Name() string { return StrategyGameTheory }

// Decide runs the two-phase negotiation.
//
// Proposal phase: every item evaluates every host with the load-aware dynamic
// cost and proposes to the host maximizing utility × trust score. The strict
// comparison means the first host reaching the maximum wins ties. With no
// hosts, the item proposes to none and stays unassigned.
//
// Acceptance phase: each host scans its proposers sorted by trust score
// descending (stable, so ties keep proposal order), starting from the empty
// set's utility. A candidate is accepted iff adding it strictly improves on
// the best utility seen so far in the scan; rejected candidates are skipped
// but the scan continues, so lower-trust proposers still get considered.
func (s *NegotiationStrategy) Decide(_ int, items []*WorkItem, hosts []*Host, costs CostMatrix) Assignment {
	proposals := make(map[string][]*WorkItem, len(hosts))
	for _, item := range items {
		var best *Host
		maxUtility := math.Inf(-1)
		for _, host := range hosts {
			dc := costs.Dynamic(item, host)
			utility := item.Utility(dc.Latency, dc.Energy) * item.TrustScore
			if utility > maxUtility {
				maxUtility, best = utility, host
			}
		}
		if best != nil {
			proposals[best.ID] = append(proposals[best.ID], item)
		}
	}

	assignment := make(Assignment)
	for _, host := range hosts {
		proposers := proposals[host.ID]
		if len(proposers) == 0 {
			continue
		}
		sort.SliceStable(proposers, func(i, j int) bool {
			return proposers[i].TrustScore > proposers[j].TrustScore
		})

		var accepted []*WorkItem
		best := host.Utility(nil)
		for _, candidate := range proposers {
			// Full-capacity slice expression so the append below never
			// clobbers a previously accepted set.
			trial := append(accepted[:len(accepted):len(accepted)], candidate)
			if utility := host.Utility(trial); utility > best {
				accepted, best = trial, utility
			}
		}
		for _, item := range accepted {
			assignment[item.ID] = host.ID
		}
	}
	return assignment
}
