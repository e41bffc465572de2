// Package pmtcmd implements `tvmcalc pmt`.
package pmtcmd

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/mfigueroa/finlib/cmd/tvmcalc/internal/cliio"
	"github.com/mfigueroa/finlib/loan"
)

type result struct {
	Principal float64            `json:"principal"`
	Rate      float64            `json:"rate"`
	Periods   int                `json:"periods"`
	Summary   loan.Summary       `json:"summary"`
	Schedule  []loan.Installment `json:"schedule,omitempty"`
}

func Run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("tvmcalc pmt", flag.ContinueOnError)
	fs.SetOutput(stderr)
	principal := fs.Float64("principal", 0, "loan amount")
	rate := fs.Float64("rate", 0, "per-period interest rate as a fraction (0.005 = 0.5%)")
	periods := fs.Int("periods", 0, "number of payments")
	withSchedule := fs.Bool("schedule", false, "include the full amortization table")
	asJSON := fs.Bool("json", false, "emit JSON")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if *principal <= 0 || *periods <= 0 {
		fmt.Fprintln(stderr, "tvmcalc pmt: -principal and -periods are required and must be positive")
		return 2
	}

	summary, err := loan.Analyze(*principal, *rate, *periods)
	if err != nil {
		fmt.Fprintf(stderr, "tvmcalc pmt: %v\n", err)
		return 1
	}

	res := result{Principal: *principal, Rate: *rate, Periods: *periods, Summary: summary}
	if *withSchedule {
		res.Schedule, err = loan.Schedule(*principal, *rate, *periods)
		if err != nil {
			fmt.Fprintf(stderr, "tvmcalc pmt: %v\n", err)
			return 1
		}
	}

	if err := cliio.WriteResult(stdout, *asJSON, res, func(w io.Writer) {
		fmt.Fprintf(w, "Payment:        %.2f\n", summary.Payment)
		fmt.Fprintf(w, "Total paid:     %.2f\n", summary.TotalPaid)
		fmt.Fprintf(w, "Total interest: %.2f (%.2f%% of principal)\n", summary.TotalInterest, summary.InterestRatio*100)
		if res.Schedule != nil {
			fmt.Fprintln(w)
			fmt.Fprintln(w, "Period    Payment   Interest  Principal    Balance")
			for _, row := range res.Schedule {
				fmt.Fprintf(w, "%6d %10.2f %10.2f %10.2f %10.2f\n",
					row.Period, row.Payment, row.Interest, row.Principal, row.Balance)
			}
		}
	}); err != nil {
		fmt.Fprintf(stderr, "tvmcalc pmt: %v\n", err)
		return 1
	}
	return 0
}
