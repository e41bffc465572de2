package cashflow

import (
	"fmt"
	"math"

	"github.com/mfigueroa/finlib/tvm"
)

// Payback locates the period in which cumulative cash flow first turns
// non-negative. WholePeriods is the last period index before the crossing;
// Fraction interpolates linearly inside the crossing period.
type Payback struct {
	WholePeriods int
	Fraction     float64
}

// Periods returns the payback as a single real number of periods.
func (p Payback) Periods() float64 {
	return float64(p.WholePeriods) + p.Fraction
}

// PaybackPeriod walks the cumulative sum of the sequence until it reaches
// zero. The time value of money is ignored; see DiscountedPayback for the
// discounted variant.
func PaybackPeriod(flows []float64) (Payback, error) {
	if len(flows) == 0 {
		return Payback{}, fmt.Errorf("PaybackPeriod: %w", tvm.ErrEmptySequence)
	}
	return paybackScan("PaybackPeriod", flows)
}

// DiscountedPayback is PaybackPeriod over flows discounted at rate, so the
// recovery point accounts for the time value of money.
func DiscountedPayback(flows []float64, rate float64) (Payback, error) {
	if len(flows) == 0 {
		return Payback{}, fmt.Errorf("DiscountedPayback: %w", tvm.ErrEmptySequence)
	}
	if rate <= -1 {
		return Payback{}, fmt.Errorf("DiscountedPayback: rate %g <= -1: %w", rate, tvm.ErrInvalidRate)
	}
	discounted := make([]float64, len(flows))
	for t, cf := range flows {
		discounted[t] = cf / math.Pow(1+rate, float64(t))
	}
	return paybackScan("DiscountedPayback", discounted)
}

func paybackScan(op string, flows []float64) (Payback, error) {
	cumulative := flows[0]
	if cumulative >= 0 {
		// Recovered at inception; nothing was ever outstanding.
		return Payback{}, nil
	}

	for t := 1; t < len(flows); t++ {
		prev := cumulative
		cumulative += flows[t]
		if cumulative >= 0 {
			// prev < 0 <= cumulative, so flows[t] > 0 here.
			return Payback{
				WholePeriods: t - 1,
				Fraction:     -prev / flows[t],
			}, nil
		}
	}

	return Payback{}, fmt.Errorf("%s: cumulative flow still %g after period %d: %w",
		op, cumulative, len(flows)-1, tvm.ErrNotRecovered)
}
