package tvm

import (
	"fmt"
	"math"
)

// NominalToPeriodic converts an annual nominal rate to the effective rate per
// compounding period: r / m.
func NominalToPeriodic(nominal float64, periodsPerYear int) (float64, error) {
	if periodsPerYear <= 0 {
		return 0, fmt.Errorf("NominalToPeriodic: periodsPerYear must be positive, got %d: %w", periodsPerYear, ErrInvalidPeriod)
	}
	return nominal / float64(periodsPerYear), nil
}

// EffectiveAnnual computes the effective annual rate implied by an annual
// nominal rate compounded m times per year:
//
//	EAR = (1 + r/m)^m - 1
func EffectiveAnnual(nominal float64, periodsPerYear int) (float64, error) {
	if periodsPerYear <= 0 {
		return 0, fmt.Errorf("EffectiveAnnual: periodsPerYear must be positive, got %d: %w", periodsPerYear, ErrInvalidPeriod)
	}
	periodic := nominal / float64(periodsPerYear)
	if periodic <= -1 {
		return 0, fmt.Errorf("EffectiveAnnual: periodic rate %g <= -1: %w", periodic, ErrInvalidRate)
	}
	return math.Pow(1+periodic, float64(periodsPerYear)) - 1, nil
}

// Annualized compounds a periodic rate to its annual equivalent:
//
//	annual = (1 + i)^m - 1
func Annualized(periodic float64, periodsPerYear int) (float64, error) {
	if periodsPerYear <= 0 {
		return 0, fmt.Errorf("Annualized: periodsPerYear must be positive, got %d: %w", periodsPerYear, ErrInvalidPeriod)
	}
	if periodic <= -1 {
		return 0, fmt.Errorf("Annualized: periodic rate %g <= -1: %w", periodic, ErrInvalidRate)
	}
	return math.Pow(1+periodic, float64(periodsPerYear)) - 1, nil
}
