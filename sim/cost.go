package sim

import (
	"math"
	"math/rand"
)

// Base cost distribution parameters. Latency is log-normal, energy uniform.
const (
	latencyLogMean  = 2.5
	latencyLogSigma = 0.8
	energyMin       = 1.0
	energyMax       = 5.0
)

// CostEntry is the fixed base cost of running one work item on one host.
type CostEntry struct {
	Latency float64
	Energy  float64
}

// CostMatrix holds base costs keyed by work item ID, then host ID. It is drawn
// once per Simulation and fixed for its lifetime, across iterations and across
// all strategies run against it.
type CostMatrix map[string]map[string]CostEntry

// NewCostMatrix draws base costs for every (item, host) pair from rng.
// Iteration order over the slices is fixed, so a given rng state always yields
// the same matrix.
func NewCostMatrix(items []*WorkItem, hosts []*Host, rng *rand.Rand) CostMatrix {
	m := make(CostMatrix, len(items))
	for _, item := range items {
		row := make(map[string]CostEntry, len(hosts))
		for _, host := range hosts {
			row[host.ID] = CostEntry{
				Latency: math.Exp(latencyLogMean + latencyLogSigma*rng.NormFloat64()),
				Energy:  energyMin + rng.Float64()*(energyMax-energyMin),
			}
		}
		m[item.ID] = row
	}
	return m
}

// Base returns the precomputed cost entry for the pair, and whether it exists.
func (m CostMatrix) Base(itemID, hostID string) (CostEntry, bool) {
	row, ok := m[itemID]
	if !ok {
		return CostEntry{}, false
	}
	entry, ok := row[hostID]
	return entry, ok
}

// DynamicCost is a load-adjusted cost estimate for a (work item, host) pair.
type DynamicCost struct {
	Latency        float64
	Energy         float64
	ProcessingTime float64
}

// Dynamic combines the base cost with the host's current load: latency scales
// with (1 + load), energy is unmodified, and processing time is demand over
// capacity (+Inf for a zero-capacity host). The load reflects the host's state
// before the new assignment is applied.
func (m CostMatrix) Dynamic(item *WorkItem, host *Host) DynamicCost {
	base := m[item.ID][host.ID]
	proc := math.Inf(1)
	if host.Capacity > 0 {
		proc = item.Demand / host.Capacity
	}
	return DynamicCost{
		Latency:        base.Latency * (1 + host.CurrentLoad()),
		Energy:         base.Energy,
		ProcessingTime: proc,
	}
}
