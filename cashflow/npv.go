// Package cashflow analyses period-indexed cash-flow sequences: net present
// value, internal rate of return, payback and related project metrics.
//
// A sequence is a non-empty slice of signed flows where index = period number
// (0-based). Period 0 conventionally holds the initial investment, usually
// negative. All functions are pure; they are safe for concurrent use.
package cashflow

import (
	"fmt"
	"math"

	"github.com/mfigueroa/finlib/tvm"
)

// NetPresentValue discounts a sequence at the given per-period rate:
//
//	NPV = Σ flows[t] / (1+rate)^t
//
// The sign of the result carries the economic interpretation (accept iff
// NPV > 0 at the hurdle rate); no decision is made here.
func NetPresentValue(flows []float64, rate float64) (float64, error) {
	if len(flows) == 0 {
		return 0, fmt.Errorf("NetPresentValue: %w", tvm.ErrEmptySequence)
	}
	if rate <= -1 {
		return 0, fmt.Errorf("NetPresentValue: rate %g <= -1: %w", rate, tvm.ErrInvalidRate)
	}
	return npv(flows, rate), nil
}

// npv assumes validated inputs.
func npv(flows []float64, rate float64) float64 {
	var sum float64
	for t, cf := range flows {
		sum += cf / math.Pow(1+rate, float64(t))
	}
	return sum
}

// npvAndDeriv returns (NPV, dNPV/drate) in one pass for the Newton solver.
func npvAndDeriv(flows []float64, rate float64) (float64, float64) {
	var sum, deriv float64
	for t, cf := range flows {
		ft := float64(t)
		sum += cf / math.Pow(1+rate, ft)
		deriv += -ft * cf / math.Pow(1+rate, ft+1)
	}
	return sum, deriv
}

// ProfitabilityIndex is the PV of the future flows divided by the initial
// outlay:
//
//	PI = Σ_{t>=1} flows[t]/(1+rate)^t / -flows[0]
//
// flows[0] must be a negative outlay; otherwise there is nothing to index
// against.
func ProfitabilityIndex(flows []float64, rate float64) (float64, error) {
	if len(flows) < 2 {
		return 0, fmt.Errorf("ProfitabilityIndex: need an outlay and at least one future flow: %w", tvm.ErrEmptySequence)
	}
	if rate <= -1 {
		return 0, fmt.Errorf("ProfitabilityIndex: rate %g <= -1: %w", rate, tvm.ErrInvalidRate)
	}
	if flows[0] >= 0 {
		return 0, fmt.Errorf("ProfitabilityIndex: flows[0] = %g is not an outlay: %w", flows[0], tvm.ErrNoSignChange)
	}
	var pv float64
	for t := 1; t < len(flows); t++ {
		pv += flows[t] / math.Pow(1+rate, float64(t))
	}
	return pv / -flows[0], nil
}

// SensitivityNPV evaluates the sequence's NPV at each candidate rate,
// preserving order. Used for hurdle-rate sensitivity tables.
func SensitivityNPV(flows []float64, rates []float64) ([]float64, error) {
	if len(flows) == 0 {
		return nil, fmt.Errorf("SensitivityNPV: %w", tvm.ErrEmptySequence)
	}
	out := make([]float64, len(rates))
	for i, r := range rates {
		if r <= -1 {
			return nil, fmt.Errorf("SensitivityNPV: rates[%d] = %g <= -1: %w", i, r, tvm.ErrInvalidRate)
		}
		out[i] = npv(flows, r)
	}
	return out, nil
}
