package tvm

import "errors"

// Sentinel errors shared by all calculation packages. Every invalid-domain
// input surfaces one of these rather than a NaN or a silent garbage result.
var (
	// ErrInvalidRate means a rate argument is outside its domain,
	// typically rate <= -1 where the discount factor degenerates.
	ErrInvalidRate = errors.New("invalid rate")

	// ErrInvalidPeriod means a period/frequency argument is outside its
	// domain, e.g. zero compounding periods per year.
	ErrInvalidPeriod = errors.New("invalid period")

	// ErrEmptySequence means a cash-flow sequence has zero length.
	ErrEmptySequence = errors.New("empty cash-flow sequence")

	// ErrNoSignChange means a cash-flow sequence has no sign change, so no
	// real IRR root can exist under the single-root assumption.
	ErrNoSignChange = errors.New("cash flows have no sign change")

	// ErrConvergence means an iterative solver hit its iteration cap
	// before meeting tolerance.
	ErrConvergence = errors.New("solver did not converge")

	// ErrNotRecovered means cumulative cash flow never turned non-negative
	// within the sequence horizon.
	ErrNotRecovered = errors.New("investment not recovered within horizon")
)
