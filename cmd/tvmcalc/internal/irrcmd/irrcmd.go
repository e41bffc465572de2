// Package irrcmd implements `tvmcalc irr`.
package irrcmd

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/mfigueroa/finlib/cashflow"
	"github.com/mfigueroa/finlib/cashflow/config"
	"github.com/mfigueroa/finlib/cmd/tvmcalc/internal/cliio"
)

type result struct {
	Flows []float64 `json:"flows"`
	IRR   float64   `json:"irr"`
}

func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("tvmcalc irr", flag.ContinueOnError)
	fs.SetOutput(stderr)
	flowSpec := fs.String("flows", "", `comma-separated cash flows starting at period 0, or "-" for stdin`)
	cfgPath := fs.String("config", "", "YAML solver configuration (tolerance, bracket, iteration cap)")
	asJSON := fs.Bool("json", false, "emit JSON")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if *flowSpec == "" {
		fmt.Fprintln(stderr, "tvmcalc irr: -flows is required")
		return 2
	}

	cfg := config.GetConfig()
	if *cfgPath != "" {
		var err error
		cfg, err = config.LoadFile(*cfgPath)
		if err != nil {
			fmt.Fprintf(stderr, "tvmcalc irr: %v\n", err)
			return 2
		}
	}

	flows, err := cliio.ParseFlows(*flowSpec, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "tvmcalc irr: %v\n", err)
		return 2
	}

	irr, err := cashflow.InternalRateOfReturnWithConfig(flows, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "tvmcalc irr: %v\n", err)
		return 1
	}

	res := result{Flows: flows, IRR: irr}
	if err := cliio.WriteResult(stdout, *asJSON, res, func(w io.Writer) {
		fmt.Fprintf(w, "IRR: %.6f (%.4f%%)\n", irr, irr*100)
	}); err != nil {
		fmt.Fprintf(stderr, "tvmcalc irr: %v\n", err)
		return 1
	}
	return 0
}
