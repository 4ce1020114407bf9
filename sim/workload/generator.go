package workload

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/trustbench/trustbench/sim"
)

// Generate builds the host and work item populations described by spec,
// drawing every random value from rng. A fixed rng state always produces the
// same populations.
//
// The first ⌊count × malicious_fraction⌋ items are flagged malicious before
// the optional shuffle, so shuffling randomizes their positions but not their
// count.
func Generate(spec *ScenarioSpec, rng *rand.Rand) ([]*sim.WorkItem, []*sim.Host, error) {
	if err := spec.Validate(); err != nil {
		return nil, nil, err
	}

	capacity, err := samplerOrZero(spec.Hosts.Capacity)
	if err != nil {
		return nil, nil, fmt.Errorf("hosts.capacity: %w", err)
	}
	memCapacity, err := samplerOrZero(spec.Hosts.MemoryCapacity)
	if err != nil {
		return nil, nil, fmt.Errorf("hosts.memory_capacity: %w", err)
	}
	demand, err := samplerOrZero(spec.Items.Demand)
	if err != nil {
		return nil, nil, fmt.Errorf("work_items.demand: %w", err)
	}
	memDemand, err := samplerOrZero(spec.Items.MemoryDemand)
	if err != nil {
		return nil, nil, fmt.Errorf("work_items.memory_demand: %w", err)
	}

	hostPrefix, itemPrefix := namePrefixes(spec.Domain)

	hosts := make([]*sim.Host, spec.Hosts.Count)
	for i := range hosts {
		hosts[i] = sim.NewHost(
			fmt.Sprintf("%s-%d", hostPrefix, i),
			spec.Domain,
			capacity.Sample(rng),
			memCapacity.Sample(rng),
		)
	}

	numMalicious := int(float64(spec.Items.Count) * spec.MaliciousFraction)
	items := make([]*sim.WorkItem, spec.Items.Count)
	for i := range items {
		deadline := spec.Deadline.Min + rng.Float64()*(spec.Deadline.Max-spec.Deadline.Min)
		items[i] = sim.NewWorkItem(
			fmt.Sprintf("%s-%d", itemPrefix, i),
			spec.Domain,
			demand.Sample(rng),
			memDemand.Sample(rng),
			deadline,
			i < numMalicious,
		)
	}
	if spec.Shuffle {
		rng.Shuffle(len(items), func(i, j int) {
			items[i], items[j] = items[j], items[i]
		})
	}

	logrus.Debugf("generated scenario %q: %d items (%d malicious), %d hosts",
		spec.Name, len(items), numMalicious, len(hosts))
	return items, hosts, nil
}

// samplerOrZero builds the sampler for spec, or a constant 0 when the spec is
// absent. Zero capacities clamp to the host minimum downstream.
func samplerOrZero(spec DistSpec) (ValueSampler, error) {
	if spec.Type == "" {
		return &ConstantSampler{value: 0}, nil
	}
	return NewValueSampler(spec)
}

// namePrefixes returns the entity ID prefixes for a domain.
func namePrefixes(domain string) (hostPrefix, itemPrefix string) {
	switch domain {
	case sim.DomainSensor:
		return "mote", "task"
	case sim.DomainEdge:
		return "edge-device", "module"
	default:
		return "host", "item"
	}
}
