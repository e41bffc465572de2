package tvm

import (
	"fmt"
	"math"
)

// PresentValue discounts a single future amount back over periods at rate:
//
//	PV = FV / (1 + rate)^periods
//
// periods may be fractional. Negative periods compound forward instead; that
// is a domain choice for the caller, not an error.
func PresentValue(futureAmount, rate, periods float64) (float64, error) {
	if rate <= -1 {
		return 0, fmt.Errorf("PresentValue: rate %g <= -1: %w", rate, ErrInvalidRate)
	}
	return futureAmount / math.Pow(1+rate, periods), nil
}

// FutureValue compounds a single present amount forward over periods at rate:
//
//	FV = PV * (1 + rate)^periods
func FutureValue(presentAmount, rate, periods float64) (float64, error) {
	if rate <= -1 {
		return 0, fmt.Errorf("FutureValue: rate %g <= -1: %w", rate, ErrInvalidRate)
	}
	return presentAmount * math.Pow(1+rate, periods), nil
}

// AnnuityPresentValue values an ordinary annuity (payments at period end):
//
//	PV = C * (1 - (1+rate)^-n) / rate
//
// At rate == 0 the closed form degenerates to C * n.
func AnnuityPresentValue(payment, rate, periods float64) (float64, error) {
	if rate <= -1 {
		return 0, fmt.Errorf("AnnuityPresentValue: rate %g <= -1: %w", rate, ErrInvalidRate)
	}
	if periods < 0 {
		return 0, fmt.Errorf("AnnuityPresentValue: periods %g < 0: %w", periods, ErrInvalidPeriod)
	}
	if rate == 0 {
		return payment * periods, nil
	}
	return payment * (1 - math.Pow(1+rate, -periods)) / rate, nil
}

// AnnuityFutureValue accumulates an ordinary annuity to the end of the last
// period:
//
//	FV = C * ((1+rate)^n - 1) / rate
func AnnuityFutureValue(payment, rate, periods float64) (float64, error) {
	if rate <= -1 {
		return 0, fmt.Errorf("AnnuityFutureValue: rate %g <= -1: %w", rate, ErrInvalidRate)
	}
	if periods < 0 {
		return 0, fmt.Errorf("AnnuityFutureValue: periods %g < 0: %w", periods, ErrInvalidPeriod)
	}
	if rate == 0 {
		return payment * periods, nil
	}
	return payment * (math.Pow(1+rate, periods) - 1) / rate, nil
}
