// Command tvmcalc exposes the cash-flow and loan calculations on the command
// line. Exit codes: 0 ok, 1 computation error, 2 usage error.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mfigueroa/finlib/cmd/tvmcalc/internal/irrcmd"
	"github.com/mfigueroa/finlib/cmd/tvmcalc/internal/npvcmd"
	"github.com/mfigueroa/finlib/cmd/tvmcalc/internal/paybackcmd"
	"github.com/mfigueroa/finlib/cmd/tvmcalc/internal/pmtcmd"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}

	switch strings.ToLower(strings.TrimSpace(args[0])) {
	case "npv":
		return npvcmd.Run(args[1:], stdin, stdout, stderr)
	case "irr":
		return irrcmd.Run(args[1:], stdin, stdout, stderr)
	case "payback":
		return paybackcmd.Run(args[1:], stdin, stdout, stderr)
	case "pmt":
		return pmtcmd.Run(args[1:], stdout, stderr)
	case "-h", "--help", "help":
		usage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: tvmcalc <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  npv      Net present value of a cash-flow sequence")
	fmt.Fprintln(w, "  irr      Internal rate of return of a cash-flow sequence")
	fmt.Fprintln(w, "  payback  Payback period (plain or discounted)")
	fmt.Fprintln(w, "  pmt      Loan payment and amortization summary")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run `tvmcalc <command> -h` for command-specific help.")
}
