// Package montecarlo estimates the NPV distribution of a cash-flow sequence
// under uncertainty in both the discount rate and the individual flows.
package montecarlo

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/mfigueroa/finlib/tvm"
)

// Config parameterizes a simulation run.
type Config struct {
	// RateMean is the expected per-period discount rate.
	RateMean float64
	// RateVol is the absolute standard deviation of the discount rate.
	RateVol float64
	// FlowVol is the relative standard deviation of each future flow
	// (e.g. 0.15 means flows vary around ±15% of their expected value).
	FlowVol float64
	// Simulations is the number of scenarios to generate.
	Simulations int
	// Seed fixes the random source so runs are reproducible.
	Seed uint64
}

// Result holds the simulated NPV per scenario.
type Result struct {
	NPVs []float64
}

// NPV simulates the sequence's net present value. flows[0] is the fixed
// initial investment; each later flow and the discount rate are drawn from
// normal distributions around their expected values. Sampled rates are
// floored at 0.001 to keep discount factors sane.
func NPV(flows []float64, cfg Config) (Result, error) {
	if len(flows) < 2 {
		return Result{}, fmt.Errorf("montecarlo.NPV: need an initial flow and at least one future flow: %w", tvm.ErrEmptySequence)
	}
	if cfg.RateMean <= -1 {
		return Result{}, fmt.Errorf("montecarlo.NPV: rate mean %g <= -1: %w", cfg.RateMean, tvm.ErrInvalidRate)
	}
	if cfg.RateVol < 0 || cfg.FlowVol < 0 {
		return Result{}, fmt.Errorf("montecarlo.NPV: volatilities must be non-negative: %w", tvm.ErrInvalidRate)
	}
	if cfg.Simulations <= 0 {
		return Result{}, fmt.Errorf("montecarlo.NPV: simulations must be positive, got %d: %w", cfg.Simulations, tvm.ErrInvalidPeriod)
	}

	src := rand.NewPCG(cfg.Seed, cfg.Seed+1)

	npvs := make([]float64, cfg.Simulations)
	for i := range npvs {
		r := cfg.RateMean
		if cfg.RateVol > 0 {
			r = distuv.Normal{Mu: cfg.RateMean, Sigma: cfg.RateVol, Src: src}.Rand()
		}
		if r < 0.001 {
			r = 0.001
		}

		npv := flows[0]
		for t := 1; t < len(flows); t++ {
			cf := flows[t]
			if cfg.FlowVol > 0 && cf != 0 {
				cf = distuv.Normal{Mu: cf, Sigma: math.Abs(cf) * cfg.FlowVol, Src: src}.Rand()
			}
			npv += cf / math.Pow(1+r, float64(t))
		}
		npvs[i] = npv
	}

	return Result{NPVs: npvs}, nil
}

// Mean is the expected NPV across scenarios.
func (r Result) Mean() float64 {
	return stat.Mean(r.NPVs, nil)
}

// StdDev measures the dispersion of the simulated NPVs.
func (r Result) StdDev() float64 {
	if len(r.NPVs) < 2 {
		return 0
	}
	return stat.StdDev(r.NPVs, nil)
}

// ProbPositive is the fraction of scenarios with NPV >= 0.
func (r Result) ProbPositive() float64 {
	if len(r.NPVs) == 0 {
		return 0
	}
	var n int
	for _, v := range r.NPVs {
		if v >= 0 {
			n++
		}
	}
	return float64(n) / float64(len(r.NPVs))
}

// Quantile returns the p-quantile (0..1) of the simulated distribution.
func (r Result) Quantile(p float64) float64 {
	sorted := make([]float64, len(r.NPVs))
	copy(sorted, r.NPVs)
	sort.Float64s(sorted)
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}
