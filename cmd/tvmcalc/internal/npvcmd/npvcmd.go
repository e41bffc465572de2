// Package npvcmd implements `tvmcalc npv`.
package npvcmd

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/mfigueroa/finlib/cashflow"
	"github.com/mfigueroa/finlib/cmd/tvmcalc/internal/cliio"
)

type result struct {
	Rate  float64   `json:"rate"`
	Flows []float64 `json:"flows"`
	NPV   float64   `json:"npv"`
}

func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("tvmcalc npv", flag.ContinueOnError)
	fs.SetOutput(stderr)
	flowSpec := fs.String("flows", "", `comma-separated cash flows starting at period 0, or "-" for stdin`)
	rate := fs.Float64("rate", 0, "per-period discount rate as a fraction (0.05 = 5%)")
	asJSON := fs.Bool("json", false, "emit JSON")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if *flowSpec == "" {
		fmt.Fprintln(stderr, "tvmcalc npv: -flows is required")
		return 2
	}

	flows, err := cliio.ParseFlows(*flowSpec, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "tvmcalc npv: %v\n", err)
		return 2
	}

	npv, err := cashflow.NetPresentValue(flows, *rate)
	if err != nil {
		fmt.Fprintf(stderr, "tvmcalc npv: %v\n", err)
		return 1
	}

	res := result{Rate: *rate, Flows: flows, NPV: npv}
	if err := cliio.WriteResult(stdout, *asJSON, res, func(w io.Writer) {
		fmt.Fprintf(w, "NPV at %.4f%%: %.4f\n", *rate*100, npv)
	}); err != nil {
		fmt.Fprintf(stderr, "tvmcalc npv: %v\n", err)
		return 1
	}
	return 0
}
