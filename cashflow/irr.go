package cashflow

import (
	"fmt"
	"math"

	"github.com/mfigueroa/finlib/cashflow/config"
	"github.com/mfigueroa/finlib/tvm"
)

// InternalRateOfReturn finds the rate r with NetPresentValue(flows, r) == 0.
//
// The sequence must contain at least one sign change; that is the necessary
// condition for a real root under the standard single-root assumption. With
// multiple sign changes more than one root may exist, and the returned rate is
// whichever the search converges to inside the configured bracket.
//
// The solver runs Newton-Raphson with analytic derivative and falls back to
// bisection whenever a Newton step leaves the bracket or the derivative
// degenerates. Tolerance, iteration cap and bracket come from the active
// cashflow/config settings; callers hitting ErrConvergence can widen the
// bracket there and retry.
func InternalRateOfReturn(flows []float64) (float64, error) {
	return InternalRateOfReturnWithConfig(flows, config.GetConfig())
}

// InternalRateOfReturnWithConfig is InternalRateOfReturn with explicit solver
// parameters.
func InternalRateOfReturnWithConfig(flows []float64, cfg config.Config) (float64, error) {
	if len(flows) == 0 {
		return 0, fmt.Errorf("InternalRateOfReturn: %w", tvm.ErrEmptySequence)
	}
	if err := cfg.Validate(); err != nil {
		return 0, fmt.Errorf("InternalRateOfReturn: %w", err)
	}
	if !hasSignChange(flows) {
		return 0, fmt.Errorf("InternalRateOfReturn: %w", tvm.ErrNoSignChange)
	}

	lo, hi := cfg.BracketLow, cfg.BracketHigh
	fLo := npv(flows, lo)
	fHi := npv(flows, hi)

	r := clampRate(cfg.InitialGuess, lo, hi)
	for iter := 0; iter < cfg.MaxIterations; iter++ {
		f, df := npvAndDeriv(flows, r)
		if math.Abs(f) < cfg.ConvergenceTolerance {
			return r, nil
		}

		// Maintain the bisection bracket when the endpoint NPVs straddle
		// zero. With multiple roots the endpoints may agree in sign; then
		// only Newton steps make progress.
		if fLo*f < 0 {
			hi, fHi = r, f
		} else if fHi*f < 0 {
			lo, fLo = r, f
		}

		next := r
		usable := math.Abs(df) >= cfg.DerivativeThreshold
		if usable {
			next = r - f/df
		}
		if !usable || next <= lo || next >= hi {
			// Newton stalled or escaped; bisect instead.
			next = (lo + hi) / 2
		}
		if next == r {
			// Bracket collapsed to working precision without meeting
			// the NPV tolerance.
			break
		}
		r = next
	}

	return 0, fmt.Errorf("InternalRateOfReturn: no root within tolerance %g after %d iterations in [%g, %g]: %w",
		cfg.ConvergenceTolerance, cfg.MaxIterations, cfg.BracketLow, cfg.BracketHigh, tvm.ErrConvergence)
}

// ModifiedIRR computes the modified internal rate of return, compounding
// positive flows forward at reinvestRate and discounting negative flows back
// at financeRate:
//
//	MIRR = (FV_pos / -PV_neg)^(1/(n-1)) - 1
func ModifiedIRR(flows []float64, financeRate, reinvestRate float64) (float64, error) {
	if len(flows) < 2 {
		return 0, fmt.Errorf("ModifiedIRR: need at least two flows: %w", tvm.ErrEmptySequence)
	}
	if financeRate <= -1 {
		return 0, fmt.Errorf("ModifiedIRR: finance rate %g <= -1: %w", financeRate, tvm.ErrInvalidRate)
	}
	if reinvestRate <= -1 {
		return 0, fmt.Errorf("ModifiedIRR: reinvest rate %g <= -1: %w", reinvestRate, tvm.ErrInvalidRate)
	}

	n := len(flows)
	var fvPos, pvNeg float64
	for t, cf := range flows {
		switch {
		case cf > 0:
			fvPos += cf * math.Pow(1+reinvestRate, float64(n-1-t))
		case cf < 0:
			pvNeg += cf / math.Pow(1+financeRate, float64(t))
		}
	}
	if fvPos == 0 || pvNeg == 0 {
		return 0, fmt.Errorf("ModifiedIRR: %w", tvm.ErrNoSignChange)
	}

	return math.Pow(fvPos/-pvNeg, 1/float64(n-1)) - 1, nil
}

// hasSignChange reports whether the sequence contains both a positive and a
// negative flow. Zeros are ignored.
func hasSignChange(flows []float64) bool {
	var pos, neg bool
	for _, cf := range flows {
		if cf > 0 {
			pos = true
		} else if cf < 0 {
			neg = true
		}
		if pos && neg {
			return true
		}
	}
	return false
}

func clampRate(v, lo, hi float64) float64 {
	if v <= lo {
		return lo + (hi-lo)*1e-3
	}
	if v >= hi {
		return hi - (hi-lo)*1e-3
	}
	return v
}
