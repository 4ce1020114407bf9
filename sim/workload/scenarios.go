package workload

// Built-in scenario presets for the two domain flavors.
// Each returns a valid ScenarioSpec ready for use with Generate.

import (
	"fmt"
	"sort"

	"github.com/trustbench/trustbench/sim"
)

// ScenarioEdgeDeployment models an IoT edge fleet: 10 edge devices hosting 200
// modules, 15% of them malicious.
func ScenarioEdgeDeployment() *ScenarioSpec {
	return &ScenarioSpec{
		Name:   "edge-deployment",
		Domain: sim.DomainEdge,
		Hosts: HostSpec{
			Count:          10,
			Capacity:       DistSpec{Type: "uniform", Params: map[string]float64{"min": 2.0, "max": 8.0}},
			MemoryCapacity: DistSpec{Type: "uniform", Params: map[string]float64{"min": 4.0, "max": 16.0}},
		},
		Items: ItemSpec{
			Count:        200,
			Demand:       DistSpec{Type: "uniform", Params: map[string]float64{"min": 0.1, "max": 1.0}},
			MemoryDemand: DistSpec{Type: "uniform", Params: map[string]float64{"min": 0.1, "max": 0.5}},
		},
		MaliciousFraction: 0.15,
		Deadline:          RangeSpec{Min: 20, Max: 40},
		Shuffle:           true,
	}
}

// ScenarioSensorNetwork models a sensor network: motes hosting voltage-reading
// tasks, a smaller population with a lighter adversarial share.
func ScenarioSensorNetwork() *ScenarioSpec {
	return &ScenarioSpec{
		Name:   "sensor-network",
		Domain: sim.DomainSensor,
		Hosts: HostSpec{
			Count:    12,
			Capacity: DistSpec{Type: "uniform", Params: map[string]float64{"min": 1.0, "max": 4.0}},
		},
		Items: ItemSpec{
			Count:  150,
			Demand: DistSpec{Type: "uniform", Params: map[string]float64{"min": 0.05, "max": 0.8}},
		},
		MaliciousFraction: 0.10,
		Deadline:          RangeSpec{Min: 25, Max: 50},
		Shuffle:           true,
	}
}

// presets maps preset names to their constructors.
var presets = map[string]func() *ScenarioSpec{
	"edge":   ScenarioEdgeDeployment,
	"sensor": ScenarioSensorNetwork,
}

// Preset returns the named built-in scenario.
func Preset(name string) (*ScenarioSpec, error) {
	ctor, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown scenario preset %q (available: %v)", name, PresetNames())
	}
	return ctor(), nil
}

// PresetNames returns the available preset names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
