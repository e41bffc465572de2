// Package paybackcmd implements `tvmcalc payback`.
package paybackcmd

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/mfigueroa/finlib/cashflow"
	"github.com/mfigueroa/finlib/cmd/tvmcalc/internal/cliio"
	"github.com/mfigueroa/finlib/tvm"
)

type result struct {
	Flows        []float64 `json:"flows"`
	WholePeriods int       `json:"whole_periods"`
	Fraction     float64   `json:"fraction"`
	Periods      float64   `json:"periods"`
	Discounted   bool      `json:"discounted"`
	Rate         float64   `json:"rate,omitempty"`
}

func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("tvmcalc payback", flag.ContinueOnError)
	fs.SetOutput(stderr)
	flowSpec := fs.String("flows", "", `comma-separated cash flows starting at period 0, or "-" for stdin`)
	rate := fs.Float64("rate", 0, "discount rate; with -discounted, payback runs over discounted flows")
	discounted := fs.Bool("discounted", false, "compute discounted payback")
	asJSON := fs.Bool("json", false, "emit JSON")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if *flowSpec == "" {
		fmt.Fprintln(stderr, "tvmcalc payback: -flows is required")
		return 2
	}

	flows, err := cliio.ParseFlows(*flowSpec, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "tvmcalc payback: %v\n", err)
		return 2
	}

	var pb cashflow.Payback
	if *discounted {
		pb, err = cashflow.DiscountedPayback(flows, *rate)
	} else {
		pb, err = cashflow.PaybackPeriod(flows)
	}
	if err != nil {
		if errors.Is(err, tvm.ErrNotRecovered) {
			fmt.Fprintln(stdout, "Not recovered within the cash-flow horizon.")
		}
		fmt.Fprintf(stderr, "tvmcalc payback: %v\n", err)
		return 1
	}

	res := result{
		Flows:        flows,
		WholePeriods: pb.WholePeriods,
		Fraction:     pb.Fraction,
		Periods:      pb.Periods(),
		Discounted:   *discounted,
		Rate:         *rate,
	}
	if err := cliio.WriteResult(stdout, *asJSON, res, func(w io.Writer) {
		fmt.Fprintf(w, "Payback: %.4f periods (%d whole + %.4f)\n", pb.Periods(), pb.WholePeriods, pb.Fraction)
	}); err != nil {
		fmt.Fprintf(stderr, "tvmcalc payback: %v\n", err)
		return 1
	}
	return 0
}
