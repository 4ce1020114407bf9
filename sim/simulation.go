package sim

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Assignment-integrity faults. An assignment naming an unknown ID means a
// strategy produced placements for a population it was not given; that is a
// bug, not a condition to skip over.
var (
	ErrUnknownWorkItem = errors.New("assignment references unknown work item")
	ErrUnknownHost     = errors.New("assignment references unknown host")
)

// Simulation is one trial's engine: pristine populations plus a cost matrix
// drawn once and shared by every strategy run against it.
//
// Run clones the pristine populations per call, so each strategy starts from
// identical initial trust state rather than inheriting the previous strategy's
// mutations.
type Simulation struct {
	items []*WorkItem
	hosts []*Host
	costs CostMatrix
}

// NewSimulation builds a trial engine over the given populations. The base
// cost matrix is drawn immediately from rng's costs subsystem and stays fixed
// for the Simulation's lifetime.
func NewSimulation(items []*WorkItem, hosts []*Host, rng *PartitionedRNG) *Simulation {
	return &Simulation{
		items: items,
		hosts: hosts,
		costs: NewCostMatrix(items, hosts, rng.ForSubsystem(SubsystemCosts)),
	}
}

// Costs exposes the trial's fixed base cost matrix.
func (s *Simulation) Costs() CostMatrix {
	return s.costs
}

// Run executes the strategy for the given number of iterations and returns the
// per-iteration metric history.
//
// Each iteration: decide → update trust → record metrics → apply assignment.
// For the greedy and random strategies only iteration 0 is computed; later
// iterations replay its metrics verbatim.
func (s *Simulation) Run(strategy Strategy, iterations int) (History, error) {
	items, hosts := clonePopulation(s.items, s.hosts)
	itemByID := make(map[string]*WorkItem, len(items))
	for _, item := range items {
		itemByID[item.ID] = item
	}
	hostByID := make(map[string]*Host, len(hosts))
	for _, host := range hosts {
		hostByID[host.ID] = host
	}

	logrus.Debugf("running %s for %d iterations over %d items, %d hosts",
		strategy.Name(), iterations, len(items), len(hosts))

	history := NewHistory()
	replicated := replicatesAfterFirstIteration(strategy)

	for i := 0; i < iterations; i++ {
		if replicated && i > 0 {
			history.replicateFirst()
			continue
		}

		assignment := strategy.Decide(i, items, hosts, s.costs)
		if err := validateAssignment(assignment, itemByID, hostByID); err != nil {
			return nil, fmt.Errorf("%s iteration %d: %w", strategy.Name(), i, err)
		}

		for _, item := range items {
			_, assigned := assignment[item.ID]
			item.UpdateTrust(assigned)
		}

		m := s.measure(items, assignment, hostByID)
		applyAssignment(assignment, items, hosts, hostByID)
		m.ServerLoadStdDev = hostLoadStdDev(hosts)
		history.record(m)
	}
	return history, nil
}

// measure computes the pre-application metrics for one iteration: the cost
// walk uses each host's load left over from the previous iteration, and trust
// averages see the scores just updated for this iteration's outcome.
func (s *Simulation) measure(items []*WorkItem, assignment Assignment, hostByID map[string]*Host) IterationMetrics {
	var totalUtility, totalEnergy float64
	assignedCount, deadlinesMet, maliciousAssigned, maliciousTotal := 0, 0, 0, 0

	for _, item := range items {
		if item.Malicious {
			maliciousTotal++
		}
		hostID, ok := assignment[item.ID]
		if !ok {
			continue
		}
		assignedCount++
		dc := s.costs.Dynamic(item, hostByID[hostID])
		totalUtility += item.Utility(dc.Latency, dc.Energy)
		totalEnergy += dc.Energy
		if dc.Latency+dc.ProcessingTime <= item.Deadline {
			deadlinesMet++
		}
		if item.Malicious {
			maliciousAssigned++
		}
	}

	m := IterationMetrics{
		AvgTrustHonest:    meanTrust(items, false),
		AvgTrustMalicious: meanTrust(items, true),
		TotalEnergy:       totalEnergy,
	}
	// Zero denominators all fall back to 0 rather than faulting.
	if len(items) > 0 {
		m.AvgDeviceUtility = totalUtility / float64(len(items))
		m.CompletionRatio = float64(assignedCount) / float64(len(items))
	}
	if assignedCount > 0 {
		m.DeadlineAdherence = float64(deadlinesMet) / float64(assignedCount)
	}
	if maliciousTotal > 0 {
		m.MaliciousAccepted = float64(maliciousAssigned) / float64(maliciousTotal)
	}
	return m
}

// validateAssignment checks every referenced ID against the current
// populations before any state is touched.
func validateAssignment(assignment Assignment, itemByID map[string]*WorkItem, hostByID map[string]*Host) error {
	for itemID, hostID := range assignment {
		if _, ok := itemByID[itemID]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownWorkItem, itemID)
		}
		if _, ok := hostByID[hostID]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownHost, hostID)
		}
	}
	return nil
}

// applyAssignment materializes the assignment: every host's hosted set is
// reset, then rebuilt in item slice order. Never partially applied; callers
// validate first.
func applyAssignment(assignment Assignment, items []*WorkItem, hosts []*Host, hostByID map[string]*Host) {
	for _, host := range hosts {
		host.Hosted = host.Hosted[:0]
	}
	for _, item := range items {
		if hostID, ok := assignment[item.ID]; ok {
			host := hostByID[hostID]
			host.Hosted = append(host.Hosted, item)
		}
	}
}

// clonePopulation deep-copies both populations, remapping any hosted items
// onto their clones so no pointer escapes back to the pristine state.
func clonePopulation(items []*WorkItem, hosts []*Host) ([]*WorkItem, []*Host) {
	clonedItems := make([]*WorkItem, len(items))
	byID := make(map[string]*WorkItem, len(items))
	for i, item := range items {
		c := item.Clone()
		clonedItems[i] = c
		byID[c.ID] = c
	}
	clonedHosts := make([]*Host, len(hosts))
	for i, host := range hosts {
		c := host.Clone()
		for _, hosted := range host.Hosted {
			if clone, ok := byID[hosted.ID]; ok {
				c.Hosted = append(c.Hosted, clone)
			}
		}
		clonedHosts[i] = c
	}
	return clonedItems, clonedHosts
}
