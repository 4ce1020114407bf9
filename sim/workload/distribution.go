package workload

import (
	"fmt"
	"math"
	"math/rand"
)

// ValueSampler generates scalar samples for capacities, demands, and other
// scenario parameters.
type ValueSampler interface {
	Sample(rng *rand.Rand) float64
}

// UniformSampler draws uniformly from [min, max).
type UniformSampler struct {
	min, max float64
}

func (s *UniformSampler) Sample(rng *rand.Rand) float64 {
	return s.min + rng.Float64()*(s.max-s.min)
}

// GaussianSampler produces clamped Gaussian samples.
type GaussianSampler struct {
	mean, stdDev float64
	min, max     float64
}

func (s *GaussianSampler) Sample(rng *rand.Rand) float64 {
	val := rng.NormFloat64()*s.stdDev + s.mean
	return math.Min(s.max, math.Max(s.min, val))
}

// LogNormalSampler produces log-normal samples: exp(mu + sigma * Z).
type LogNormalSampler struct {
	mu, sigma float64
}

func (s *LogNormalSampler) Sample(rng *rand.Rand) float64 {
	return math.Exp(s.mu + s.sigma*rng.NormFloat64())
}

// ConstantSampler always returns the same fixed value.
type ConstantSampler struct {
	value float64
}

func (s *ConstantSampler) Sample(_ *rand.Rand) float64 {
	return s.value
}

// requireParam checks that all required keys exist in a params map.
func requireParam(params map[string]float64, keys ...string) error {
	for _, k := range keys {
		if _, ok := params[k]; !ok {
			return fmt.Errorf("distribution requires parameter %q", k)
		}
	}
	return nil
}

// NewValueSampler creates a ValueSampler from a DistSpec.
func NewValueSampler(spec DistSpec) (ValueSampler, error) {
	switch spec.Type {
	case "uniform":
		if err := requireParam(spec.Params, "min", "max"); err != nil {
			return nil, err
		}
		if spec.Params["min"] > spec.Params["max"] {
			return nil, fmt.Errorf("uniform range inverted: min %v > max %v",
				spec.Params["min"], spec.Params["max"])
		}
		return &UniformSampler{
			min: spec.Params["min"],
			max: spec.Params["max"],
		}, nil

	case "gaussian":
		if err := requireParam(spec.Params, "mean", "std_dev", "min", "max"); err != nil {
			return nil, err
		}
		if spec.Params["std_dev"] < 0 {
			return nil, fmt.Errorf("gaussian std_dev must be >= 0, got %v", spec.Params["std_dev"])
		}
		if spec.Params["min"] > spec.Params["max"] {
			return nil, fmt.Errorf("gaussian clamp range inverted: min %v > max %v",
				spec.Params["min"], spec.Params["max"])
		}
		return &GaussianSampler{
			mean:   spec.Params["mean"],
			stdDev: spec.Params["std_dev"],
			min:    spec.Params["min"],
			max:    spec.Params["max"],
		}, nil

	case "lognormal":
		if err := requireParam(spec.Params, "mu", "sigma"); err != nil {
			return nil, err
		}
		return &LogNormalSampler{
			mu:    spec.Params["mu"],
			sigma: spec.Params["sigma"],
		}, nil

	case "constant":
		if err := requireParam(spec.Params, "value"); err != nil {
			return nil, err
		}
		return &ConstantSampler{value: spec.Params["value"]}, nil

	default:
		return nil, fmt.Errorf("unknown distribution type %q", spec.Type)
	}
}
