package sim

import "gonum.org/v1/gonum/stat"

// Metric names recorded once per iteration, per strategy.
const (
	MetricAvgDeviceUtility  = "avg_device_utility"
	MetricServerLoadStdDev  = "server_load_std_dev"
	MetricAvgTrustHonest    = "avg_trust_honest"
	MetricAvgTrustMalicious = "avg_trust_malicious"
	MetricCompletionRatio   = "completion_ratio"
	MetricDeadlineAdherence = "deadline_adherence"
	MetricMaliciousAccepted = "malicious_accepted"
	MetricTotalEnergy       = "total_energy"
)

// MetricNames returns all metric names in canonical reporting order.
func MetricNames() []string {
	return []string{
		MetricAvgDeviceUtility,
		MetricServerLoadStdDev,
		MetricAvgTrustHonest,
		MetricAvgTrustMalicious,
		MetricCompletionRatio,
		MetricDeadlineAdherence,
		MetricMaliciousAccepted,
		MetricTotalEnergy,
	}
}

// History holds one value series per metric, one element per iteration.
type History map[string][]float64

// NewHistory creates an empty History with every metric present.
func NewHistory() History {
	h := make(History, len(MetricNames()))
	for _, name := range MetricNames() {
		h[name] = []float64{}
	}
	return h
}

// Len returns the number of recorded iterations.
func (h History) Len() int {
	return len(h[MetricAvgDeviceUtility])
}

// IterationMetrics is one iteration's worth of scalar metrics.
type IterationMetrics struct {
	AvgDeviceUtility  float64
	ServerLoadStdDev  float64
	AvgTrustHonest    float64
	AvgTrustMalicious float64
	CompletionRatio   float64
	DeadlineAdherence float64
	MaliciousAccepted float64
	TotalEnergy       float64
}

// record appends one iteration's metrics to the history.
func (h History) record(m IterationMetrics) {
	h[MetricAvgDeviceUtility] = append(h[MetricAvgDeviceUtility], m.AvgDeviceUtility)
	h[MetricServerLoadStdDev] = append(h[MetricServerLoadStdDev], m.ServerLoadStdDev)
	h[MetricAvgTrustHonest] = append(h[MetricAvgTrustHonest], m.AvgTrustHonest)
	h[MetricAvgTrustMalicious] = append(h[MetricAvgTrustMalicious], m.AvgTrustMalicious)
	h[MetricCompletionRatio] = append(h[MetricCompletionRatio], m.CompletionRatio)
	h[MetricDeadlineAdherence] = append(h[MetricDeadlineAdherence], m.DeadlineAdherence)
	h[MetricMaliciousAccepted] = append(h[MetricMaliciousAccepted], m.MaliciousAccepted)
	h[MetricTotalEnergy] = append(h[MetricTotalEnergy], m.TotalEnergy)
}

// replicateFirst re-appends iteration 0's value for every metric. Used by the
// greedy and random strategies, which only compute iteration 0 for real.
func (h History) replicateFirst() {
	for _, name := range MetricNames() {
		if series := h[name]; len(series) > 0 {
			h[name] = append(series, series[0])
		}
	}
}

// hostLoadStdDev is the population standard deviation of host loads.
func hostLoadStdDev(hosts []*Host) float64 {
	if len(hosts) == 0 {
		return 0
	}
	loads := make([]float64, len(hosts))
	for i, host := range hosts {
		loads[i] = host.CurrentLoad()
	}
	return stat.PopStdDev(loads, nil)
}

// meanTrust averages trust over the subpopulation with the given malicious
// flag. Empty subpopulations report their initial score (ceiling for honest,
// floor for malicious).
func meanTrust(items []*WorkItem, malicious bool) float64 {
	sum, n := 0.0, 0
	for _, item := range items {
		if item.Malicious == malicious {
			sum += item.TrustScore
			n++
		}
	}
	if n == 0 {
		if malicious {
			return TrustFloor
		}
		return TrustCeiling
	}
	return sum / float64(n)
}
