package workload

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/trustbench/trustbench/sim"
)

// ScenarioSpec is the top-level scenario configuration.
// Loaded from YAML via LoadScenarioSpec(path).
type ScenarioSpec struct {
	Name              string    `yaml:"name,omitempty"`
	Domain            string    `yaml:"domain"`
	Hosts             HostSpec  `yaml:"hosts"`
	Items             ItemSpec  `yaml:"work_items"`
	MaliciousFraction float64   `yaml:"malicious_fraction"`
	Deadline          RangeSpec `yaml:"deadline"`
	Shuffle           bool      `yaml:"shuffle"`
}

// HostSpec defines the host population.
type HostSpec struct {
	Count          int      `yaml:"count"`
	Capacity       DistSpec `yaml:"capacity"`
	MemoryCapacity DistSpec `yaml:"memory_capacity,omitempty"`
}

// ItemSpec defines the work item population.
type ItemSpec struct {
	Count        int      `yaml:"count"`
	Demand       DistSpec `yaml:"demand"`
	MemoryDemand DistSpec `yaml:"memory_demand,omitempty"`
}

// RangeSpec is a bounded uniform range.
type RangeSpec struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// DistSpec parameterizes a scalar value distribution.
type DistSpec struct {
	Type   string             `yaml:"type"`
	Params map[string]float64 `yaml:"params,omitempty"`
}

// LoadScenarioSpec reads and validates a scenario spec from a YAML file.
func LoadScenarioSpec(path string) (*ScenarioSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario spec: %w", err)
	}
	var spec ScenarioSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing scenario spec %s: %w", path, err)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario spec %s: %w", path, err)
	}
	return &spec, nil
}

// Validate checks structural constraints and fills the default domain.
func (s *ScenarioSpec) Validate() error {
	if s.Domain == "" {
		s.Domain = sim.DomainEdge
	}
	if s.Domain != sim.DomainSensor && s.Domain != sim.DomainEdge {
		return fmt.Errorf("unknown domain %q", s.Domain)
	}
	if s.Hosts.Count < 0 {
		return fmt.Errorf("hosts.count must be >= 0, got %d", s.Hosts.Count)
	}
	if s.Items.Count < 0 {
		return fmt.Errorf("work_items.count must be >= 0, got %d", s.Items.Count)
	}
	if s.Hosts.Count > 0 && s.Hosts.Capacity.Type == "" {
		return fmt.Errorf("hosts.capacity distribution is required")
	}
	if s.Items.Count > 0 && s.Items.Demand.Type == "" {
		return fmt.Errorf("work_items.demand distribution is required")
	}
	if s.MaliciousFraction < 0 || s.MaliciousFraction > 1 {
		return fmt.Errorf("malicious_fraction must be in [0,1], got %v", s.MaliciousFraction)
	}
	if s.Deadline.Min > s.Deadline.Max {
		return fmt.Errorf("deadline range inverted: min %v > max %v", s.Deadline.Min, s.Deadline.Max)
	}
	return nil
}
