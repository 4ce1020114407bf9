package bench

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/trustbench/trustbench/sim"
)

// Aggregate reduces per-trial histories to elementwise mean and population
// standard deviation per iteration, per metric, per strategy. Every strategy
// must have at least one history, and all histories must cover the same
// number of iterations.
func Aggregate(histories map[string][]sim.History) (Results, error) {
	if len(histories) == 0 {
		return nil, ErrNoTrials
	}

	results := make(Results, len(histories))
	for strategy, trials := range histories {
		if len(trials) == 0 {
			return nil, fmt.Errorf("%w: strategy %q has no trial histories", ErrNoTrials, strategy)
		}
		iterations := trials[0].Len()
		for t, h := range trials {
			for _, metric := range sim.MetricNames() {
				if len(h[metric]) != iterations {
					return nil, fmt.Errorf("%w: strategy %q trial %d metric %q has %d iterations, want %d",
						ErrHistoryMismatch, strategy, t, metric, len(h[metric]), iterations)
				}
			}
		}

		series := make(map[string][]float64, 2*len(sim.MetricNames()))
		sample := make([]float64, len(trials))
		for _, metric := range sim.MetricNames() {
			means := make([]float64, iterations)
			stds := make([]float64, iterations)
			for i := 0; i < iterations; i++ {
				for t, h := range trials {
					sample[t] = h[metric][i]
				}
				means[i] = stat.Mean(sample, nil)
				stds[i] = stat.PopStdDev(sample, nil)
			}
			series[metric+"_mean"] = means
			series[metric+"_std"] = stds
		}
		results[strategy] = series
	}
	return results, nil
}
