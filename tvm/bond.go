package tvm

import (
	"fmt"
	"math"
)

// Bond is a level-coupon bond on a per-period grid: Periods coupon payments
// remain, each of Face*CouponRate/Frequency, with Face redeemed alongside the
// final coupon.
type Bond struct {
	// Face is the redemption amount (e.g. 100 or 1000).
	Face float64
	// CouponRate is the annual coupon as a fraction (e.g. 0.05 for 5%).
	CouponRate float64
	// Frequency is coupons per year (1 = annual, 2 = semi-annual).
	Frequency int
	// Periods is the number of coupon payments remaining.
	Periods int
}

// YieldResult is the output of Bond.Yield.
type YieldResult struct {
	// Yield is the per-period yield as a fraction.
	Yield float64
	// Iterations is the number of Newton-Raphson steps taken.
	Iterations int
}

const (
	bondYieldTolerance = 1e-12
	bondYieldMaxIter   = 100
	bondYieldFloor     = -0.05
	bondYieldCeiling   = 0.50
)

func (b Bond) validate() error {
	if b.Frequency <= 0 {
		return fmt.Errorf("Bond: Frequency must be positive, got %d: %w", b.Frequency, ErrInvalidPeriod)
	}
	if b.Periods <= 0 {
		return fmt.Errorf("Bond: Periods must be positive, got %d: %w", b.Periods, ErrInvalidPeriod)
	}
	return nil
}

// coupon is the per-period coupon payment.
func (b Bond) coupon() float64 {
	return b.Face * b.CouponRate / float64(b.Frequency)
}

// Price discounts the remaining coupons and the redemption at the given
// per-period yield.
func (b Bond) Price(yield float64) (float64, error) {
	if err := b.validate(); err != nil {
		return 0, err
	}
	if yield <= -1 {
		return 0, fmt.Errorf("Bond.Price: yield %g <= -1: %w", yield, ErrInvalidRate)
	}
	price, _ := b.priceAndDeriv(yield)
	return price, nil
}

// Yield solves for the per-period yield y such that Price(y) equals the given
// price, via Newton-Raphson with analytic first derivative. Steps are clamped
// to [bondYieldFloor, bondYieldCeiling].
func (b Bond) Yield(price float64) (YieldResult, error) {
	if err := b.validate(); err != nil {
		return YieldResult{}, err
	}
	if price <= 0 {
		return YieldResult{}, fmt.Errorf("Bond.Yield: price must be positive, got %g: %w", price, ErrInvalidRate)
	}

	// Initial guess: current yield, clamped to the search band.
	y := clamp(b.coupon()/price, bondYieldFloor, bondYieldCeiling)
	if y == 0 {
		y = 0.025
	}

	for iter := 0; iter < bondYieldMaxIter; iter++ {
		p, dPdy := b.priceAndDeriv(y)
		f := p - price

		if math.Abs(f) < bondYieldTolerance {
			return YieldResult{Yield: y, Iterations: iter + 1}, nil
		}
		if math.Abs(dPdy) < 1e-15 {
			return YieldResult{}, fmt.Errorf("Bond.Yield: derivative too small at iter %d: %w", iter, ErrConvergence)
		}

		y = clamp(y-f/dPdy, bondYieldFloor, bondYieldCeiling)
	}

	return YieldResult{}, fmt.Errorf("Bond.Yield: did not converge after %d iterations: %w", bondYieldMaxIter, ErrConvergence)
}

// priceAndDeriv returns (price, dPrice/dy) at per-period yield y.
//
//	price = Σ C / (1+y)^k  +  F / (1+y)^n
//	dP/dy = Σ −k·C / (1+y)^(k+1)  −  n·F / (1+y)^(n+1)
func (b Bond) priceAndDeriv(y float64) (float64, float64) {
	c := b.coupon()
	var price, deriv float64
	for k := 1; k <= b.Periods; k++ {
		amt := c
		if k == b.Periods {
			amt += b.Face
		}
		t := float64(k)
		price += amt / math.Pow(1+y, t)
		deriv += -t * amt / math.Pow(1+y, t+1)
	}
	return price, deriv
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
