package bench

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trustbench/trustbench/sim"
)

// constHistory builds a history where every metric holds val for iters
// iterations.
func constHistory(iters int, val float64) sim.History {
	h := sim.NewHistory()
	for _, name := range sim.MetricNames() {
		series := make([]float64, iters)
		for i := range series {
			series[i] = val
		}
		h[name] = series
	}
	return h
}

func TestAggregate_HandComputedFixture(t *testing.T) {
	// Three trials, two iterations. completion_ratio varies per trial at
	// iteration 0 and is constant at iteration 1; every other metric carries
	// the trial index as a constant.
	trials := []sim.History{
		constHistory(2, 0),
		constHistory(2, 1),
		constHistory(2, 2),
	}
	trials[0][sim.MetricCompletionRatio] = []float64{0.2, 1}
	trials[1][sim.MetricCompletionRatio] = []float64{0.5, 1}
	trials[2][sim.MetricCompletionRatio] = []float64{0.8, 1}

	results, err := Aggregate(map[string][]sim.History{sim.StrategyGameTheory: trials})
	require.NoError(t, err)

	series := results[sim.StrategyGameTheory]
	require.NotNil(t, series)

	// completion_ratio: iteration 0 mean 0.5, population std sqrt(0.06);
	// iteration 1 mean 1, std 0.
	compMean := series[sim.MetricCompletionRatio+"_mean"]
	compStd := series[sim.MetricCompletionRatio+"_std"]
	require.Len(t, compMean, 2)
	assert.InDelta(t, 0.5, compMean[0], 1e-12)
	assert.InDelta(t, 1.0, compMean[1], 1e-12)
	assert.InDelta(t, 0.2449489743, compStd[0], 1e-9)
	assert.InDelta(t, 0.0, compStd[1], 1e-12)

	// Constant metrics over trial values {0,1,2}: mean 1, pop std sqrt(2/3).
	energyMean := series[sim.MetricTotalEnergy+"_mean"]
	energyStd := series[sim.MetricTotalEnergy+"_std"]
	assert.InDelta(t, 1.0, energyMean[0], 1e-12)
	assert.InDelta(t, 0.8164965809, energyStd[1], 1e-9)

	// Every metric gets a _mean and _std series of full length.
	assert.Len(t, series, 2*len(sim.MetricNames()))
}

func TestAggregate_SingleTrial_ZeroStd(t *testing.T) {
	trials := []sim.History{constHistory(3, 4.2)}

	results, err := Aggregate(map[string][]sim.History{sim.StrategyGreedy: trials})
	require.NoError(t, err)

	series := results[sim.StrategyGreedy]
	for _, name := range sim.MetricNames() {
		for i, v := range series[name+"_std"] {
			assert.Equal(t, 0.0, v, "%s_std[%d]", name, i)
		}
		for i, v := range series[name+"_mean"] {
			assert.InDelta(t, 4.2, v, 1e-12, "%s_mean[%d]", name, i)
		}
	}
}

func TestAggregate_NoTrials(t *testing.T) {
	_, err := Aggregate(nil)
	assert.True(t, errors.Is(err, ErrNoTrials), "got %v", err)

	_, err = Aggregate(map[string][]sim.History{sim.StrategyRandom: nil})
	assert.True(t, errors.Is(err, ErrNoTrials), "got %v", err)
}

func TestAggregate_MismatchedHistoryLengths(t *testing.T) {
	trials := []sim.History{constHistory(2, 0), constHistory(3, 0)}

	_, err := Aggregate(map[string][]sim.History{sim.StrategyRandom: trials})
	assert.True(t, errors.Is(err, ErrHistoryMismatch), "got %v", err)
}
