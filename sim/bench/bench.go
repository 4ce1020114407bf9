// Package bench runs the three allocation strategies over repeated independent
// trials and reduces the per-iteration metric histories to mean and population
// standard deviation per strategy.
package bench

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/trustbench/trustbench/sim"
	"github.com/trustbench/trustbench/sim/workload"
)

// Configuration faults.
var (
	// ErrNoTrials is returned when a benchmark or aggregation has nothing to
	// average.
	ErrNoTrials = errors.New("benchmark requires at least one trial")

	// ErrHistoryMismatch is returned when trials produced histories of unequal
	// iteration counts; they cannot be averaged elementwise.
	ErrHistoryMismatch = errors.New("trial histories have mismatched iteration counts")
)

// Options configures a benchmark run.
type Options struct {
	Trials     int
	Iterations int
	Seed       int64
	Strategies []string // nil means sim.AvailableStrategies()
}

// Results maps strategy name → metric name with _mean/_std suffix → one value
// per iteration.
type Results map[string]map[string][]float64

// ScenarioFunc produces one trial's populations from a trial-local RNG.
// Called once per trial with an independent rng so trials stay statistically
// independent and reproducible.
type ScenarioFunc func(rng *rand.Rand) ([]*sim.WorkItem, []*sim.Host, error)

// Run executes the full benchmark over a declarative scenario spec. See
// RunWithGenerator for the underlying mechanics.
func Run(spec *workload.ScenarioSpec, opts Options) (Results, error) {
	return RunWithGenerator(func(rng *rand.Rand) ([]*sim.WorkItem, []*sim.Host, error) {
		return workload.Generate(spec, rng)
	}, opts)
}

// RunWithGenerator executes the full benchmark: for each trial it derives a
// trial seed from the master seed, generates a fresh scenario and cost matrix,
// runs every strategy against them, then aggregates across trials.
func RunWithGenerator(generate ScenarioFunc, opts Options) (Results, error) {
	if opts.Trials <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNoTrials, opts.Trials)
	}
	if opts.Iterations <= 0 {
		return nil, fmt.Errorf("iterations must be positive, got %d", opts.Iterations)
	}
	strategies := opts.Strategies
	if len(strategies) == 0 {
		strategies = sim.AvailableStrategies()
	}

	master := sim.NewPartitionedRNG(sim.NewSimulationKey(opts.Seed))
	histories := make(map[string][]sim.History, len(strategies))

	for t := 0; t < opts.Trials; t++ {
		trialKey := sim.NewSimulationKey(master.DeriveSeed(sim.SubsystemTrial(t)))
		trialRNG := sim.NewPartitionedRNG(trialKey)

		items, hosts, err := generate(trialRNG.ForSubsystem(sim.SubsystemScenario))
		if err != nil {
			return nil, fmt.Errorf("trial %d: %w", t, err)
		}
		logrus.Infof("benchmark trial %d/%d: %d work items, %d hosts",
			t+1, opts.Trials, len(items), len(hosts))

		simulation := sim.NewSimulation(items, hosts, trialRNG)
		for _, name := range strategies {
			strategy, err := sim.NewStrategy(name, trialRNG.ForSubsystem(sim.SubsystemPlacement))
			if err != nil {
				return nil, err
			}
			history, err := simulation.Run(strategy, opts.Iterations)
			if err != nil {
				return nil, fmt.Errorf("trial %d: %w", t, err)
			}
			histories[name] = append(histories[name], history)
		}
	}

	return Aggregate(histories)
}
