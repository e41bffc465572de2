// Package loan computes level-payment amortizing loan figures: the periodic
// payment, its interest/principal split, and full schedules.
package loan

import (
	"fmt"
	"math"

	"github.com/mfigueroa/finlib/tvm"
)

// Payment is the level periodic payment that amortizes principal over the
// given number of periods at the per-period rate:
//
//	PMT = P * r / (1 - (1+r)^-n)
//
// At rate == 0 the loan amortizes straight-line, P / n.
func Payment(principal, rate float64, periods int) (float64, error) {
	if rate <= -1 {
		return 0, fmt.Errorf("Payment: rate %g <= -1: %w", rate, tvm.ErrInvalidRate)
	}
	if periods <= 0 {
		return 0, fmt.Errorf("Payment: periods must be positive, got %d: %w", periods, tvm.ErrInvalidPeriod)
	}
	if rate == 0 {
		return principal / float64(periods), nil
	}
	return principal * rate / (1 - math.Pow(1+rate, -float64(periods))), nil
}

// InterestPortion is the interest component of the payment due in the given
// period (1-based): the per-period rate applied to the balance outstanding
// after period-1 payments.
func InterestPortion(principal, rate float64, period, periods int) (float64, error) {
	if err := checkPeriod(period, periods); err != nil {
		return 0, fmt.Errorf("InterestPortion: %w", err)
	}
	if rate <= -1 {
		return 0, fmt.Errorf("InterestPortion: rate %g <= -1: %w", rate, tvm.ErrInvalidRate)
	}
	if rate == 0 {
		return 0, nil
	}
	return balanceAfter(principal, rate, period-1, periods) * rate, nil
}

// PrincipalPortion is the principal component of the payment due in the given
// period (1-based). Payment = InterestPortion + PrincipalPortion for every
// period.
func PrincipalPortion(principal, rate float64, period, periods int) (float64, error) {
	if err := checkPeriod(period, periods); err != nil {
		return 0, fmt.Errorf("PrincipalPortion: %w", err)
	}
	pmt, err := Payment(principal, rate, periods)
	if err != nil {
		return 0, fmt.Errorf("PrincipalPortion: %w", err)
	}
	if rate == 0 {
		return pmt, nil
	}
	return pmt - balanceAfter(principal, rate, period-1, periods)*rate, nil
}

// Installment is one row of an amortization schedule.
type Installment struct {
	// Period is 1-based.
	Period    int
	Payment   float64
	Interest  float64
	Principal float64
	// Balance is the amount outstanding after this installment.
	Balance float64
}

// Schedule builds the full amortization table. The final balance is forced to
// exactly zero to absorb accumulated rounding.
func Schedule(principal, rate float64, periods int) ([]Installment, error) {
	pmt, err := Payment(principal, rate, periods)
	if err != nil {
		return nil, fmt.Errorf("Schedule: %w", err)
	}

	rows := make([]Installment, 0, periods)
	balance := principal
	for p := 1; p <= periods; p++ {
		interest := balance * rate
		paid := pmt - interest
		balance -= paid
		if p == periods {
			paid += balance
			balance = 0
		}
		rows = append(rows, Installment{
			Period:    p,
			Payment:   interest + paid,
			Interest:  interest,
			Principal: paid,
			Balance:   balance,
		})
	}
	return rows, nil
}

// Summary aggregates the headline figures of a loan.
type Summary struct {
	Payment        float64
	FirstInterest  float64
	FirstPrincipal float64
	TotalPaid      float64
	TotalInterest  float64
	// InterestRatio is TotalInterest / principal.
	InterestRatio float64
}

// Analyze computes the Summary for one loan.
func Analyze(principal, rate float64, periods int) (Summary, error) {
	pmt, err := Payment(principal, rate, periods)
	if err != nil {
		return Summary{}, fmt.Errorf("Analyze: %w", err)
	}
	firstInterest := principal * rate
	totalPaid := pmt * float64(periods)
	totalInterest := totalPaid - principal

	var ratio float64
	if principal != 0 {
		ratio = totalInterest / principal
	}
	return Summary{
		Payment:        pmt,
		FirstInterest:  firstInterest,
		FirstPrincipal: pmt - firstInterest,
		TotalPaid:      totalPaid,
		TotalInterest:  totalInterest,
		InterestRatio:  ratio,
	}, nil
}

// AnalyzeBatch runs Analyze over parallel slices of loan parameters. The
// slices must share one length.
func AnalyzeBatch(principals, rates []float64, periods []int) ([]Summary, error) {
	if len(principals) == 0 {
		return nil, fmt.Errorf("AnalyzeBatch: %w", tvm.ErrEmptySequence)
	}
	if len(rates) != len(principals) || len(periods) != len(principals) {
		return nil, fmt.Errorf("AnalyzeBatch: mismatched lengths: %d principals, %d rates, %d periods",
			len(principals), len(rates), len(periods))
	}
	out := make([]Summary, len(principals))
	for i := range principals {
		s, err := Analyze(principals[i], rates[i], periods[i])
		if err != nil {
			return nil, fmt.Errorf("AnalyzeBatch: loan %d: %w", i, err)
		}
		out[i] = s
	}
	return out, nil
}

// balanceAfter is the outstanding balance after k payments:
//
//	B_k = P*(1+r)^k - PMT*((1+r)^k - 1)/r
func balanceAfter(principal, rate float64, k, periods int) float64 {
	pmt := principal * rate / (1 - math.Pow(1+rate, -float64(periods)))
	growth := math.Pow(1+rate, float64(k))
	return principal*growth - pmt*(growth-1)/rate
}

func checkPeriod(period, periods int) error {
	if periods <= 0 {
		return fmt.Errorf("periods must be positive, got %d: %w", periods, tvm.ErrInvalidPeriod)
	}
	if period < 1 || period > periods {
		return fmt.Errorf("period %d outside 1..%d: %w", period, periods, tvm.ErrInvalidPeriod)
	}
	return nil
}
