package main

import (
	"fmt"
	"log"

	"github.com/mfigueroa/finlib/cashflow"
	"github.com/mfigueroa/finlib/loan"
	"github.com/mfigueroa/finlib/montecarlo"
)

func main() {
	// Equipment project: 100k outlay, three years of inflows.
	flows := []float64{-100000, 35000, 45000, 55000}
	hurdle := 0.10

	npv, err := cashflow.NetPresentValue(flows, hurdle)
	if err != nil {
		log.Fatal(err)
	}
	irr, err := cashflow.InternalRateOfReturn(flows)
	if err != nil {
		log.Fatal(err)
	}
	pb, err := cashflow.PaybackPeriod(flows)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("NPV at %.0f%%: %.2f\n", hurdle*100, npv)
	fmt.Printf("IRR: %.4f%%\n", irr*100)
	fmt.Printf("Payback: %.2f periods\n", pb.Periods())

	sim, err := montecarlo.NPV(flows, montecarlo.Config{
		RateMean:    hurdle,
		RateVol:     0.025,
		FlowVol:     0.20,
		Simulations: 10000,
		Seed:        42,
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Simulated NPV: mean %.0f, sd %.0f, P(NPV>=0) %.1f%%\n",
		sim.Mean(), sim.StdDev(), sim.ProbPositive()*100)

	// Mortgage-style loan for comparison.
	summary, err := loan.Analyze(100000, 0.005, 360)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Loan payment: %.2f (total interest %.2f)\n", summary.Payment, summary.TotalInterest)
}
