package cashflow_test

import (
	"errors"
	"math"
	"testing"

	"github.com/mfigueroa/finlib/cashflow"
	"github.com/mfigueroa/finlib/cashflow/config"
	"github.com/mfigueroa/finlib/tvm"
)

func TestInternalRateOfReturn_SinglePeriod(t *testing.T) {
	t.Parallel()

	irr, err := cashflow.InternalRateOfReturn([]float64{-100, 110})
	if err != nil {
		t.Fatalf("InternalRateOfReturn error: %v", err)
	}
	if math.Abs(irr-0.10) > 1e-6 {
		t.Fatalf("expected 0.10, got %g", irr)
	}
}

func TestInternalRateOfReturn_ZeroNPVAtRoot(t *testing.T) {
	t.Parallel()

	cases := [][]float64{
		{-100000, 35000, 45000, 55000},
		{-1000, 300, 400, 500},
		{-50, 20, 20, 20, 20},
		{-100, -20, 80, 90},
	}
	for _, flows := range cases {
		irr, err := cashflow.InternalRateOfReturn(flows)
		if err != nil {
			t.Fatalf("InternalRateOfReturn(%v): %v", flows, err)
		}
		npv, err := cashflow.NetPresentValue(flows, irr)
		if err != nil {
			t.Fatalf("NetPresentValue error: %v", err)
		}
		if math.Abs(npv) > 1e-6 {
			t.Fatalf("NPV at IRR %g is %g, want ~0 for %v", irr, npv, flows)
		}
	}
}

func TestInternalRateOfReturn_NegativeRoot(t *testing.T) {
	t.Parallel()

	// Total inflows below the outlay force a negative rate.
	irr, err := cashflow.InternalRateOfReturn([]float64{-10000, 2000, 3000, 4000})
	if err != nil {
		t.Fatalf("InternalRateOfReturn error: %v", err)
	}
	if irr >= 0 {
		t.Fatalf("expected negative IRR, got %g", irr)
	}
}

func TestInternalRateOfReturn_NoSignChange(t *testing.T) {
	t.Parallel()

	if _, err := cashflow.InternalRateOfReturn([]float64{-100, -50}); !errors.Is(err, tvm.ErrNoSignChange) {
		t.Fatalf("expected ErrNoSignChange, got %v", err)
	}
	if _, err := cashflow.InternalRateOfReturn([]float64{100, 50}); !errors.Is(err, tvm.ErrNoSignChange) {
		t.Fatalf("expected ErrNoSignChange, got %v", err)
	}
}

func TestInternalRateOfReturn_Empty(t *testing.T) {
	t.Parallel()

	if _, err := cashflow.InternalRateOfReturn(nil); !errors.Is(err, tvm.ErrEmptySequence) {
		t.Fatalf("expected ErrEmptySequence, got %v", err)
	}
}

func TestInternalRateOfReturn_IterationCap(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig
	cfg.MaxIterations = 1
	cfg.ConvergenceTolerance = 1e-12

	_, err := cashflow.InternalRateOfReturnWithConfig([]float64{-100, 50, 50, 50}, cfg)
	if !errors.Is(err, tvm.ErrConvergence) {
		t.Fatalf("expected ErrConvergence, got %v", err)
	}
}

func TestInternalRateOfReturn_BadConfig(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig
	cfg.BracketLow = -2

	if _, err := cashflow.InternalRateOfReturnWithConfig([]float64{-100, 110}, cfg); err == nil {
		t.Fatal("expected config validation error")
	}
}

func TestModifiedIRR(t *testing.T) {
	t.Parallel()

	// FV of inflows at 12%: 300*1.12^2 + 400*1.12 + 500 = 1324.32.
	// MIRR = (1324.32/1000)^(1/3) - 1.
	mirr, err := cashflow.ModifiedIRR([]float64{-1000, 300, 400, 500}, 0.10, 0.12)
	if err != nil {
		t.Fatalf("ModifiedIRR error: %v", err)
	}
	want := math.Pow(1324.32/1000.0, 1.0/3.0) - 1 // ~0.098157
	if math.Abs(mirr-want) > 1e-9 {
		t.Fatalf("expected %g, got %g", want, mirr)
	}
}

func TestModifiedIRR_Errors(t *testing.T) {
	t.Parallel()

	if _, err := cashflow.ModifiedIRR([]float64{-1000}, 0.1, 0.1); !errors.Is(err, tvm.ErrEmptySequence) {
		t.Fatalf("expected ErrEmptySequence, got %v", err)
	}
	if _, err := cashflow.ModifiedIRR([]float64{-1000, -300}, 0.1, 0.1); !errors.Is(err, tvm.ErrNoSignChange) {
		t.Fatalf("expected ErrNoSignChange, got %v", err)
	}
	if _, err := cashflow.ModifiedIRR([]float64{-1000, 300}, -1, 0.1); !errors.Is(err, tvm.ErrInvalidRate) {
		t.Fatalf("expected ErrInvalidRate, got %v", err)
	}
}
