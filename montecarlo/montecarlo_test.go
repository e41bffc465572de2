package montecarlo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfigueroa/finlib/cashflow"
	"github.com/mfigueroa/finlib/montecarlo"
	"github.com/mfigueroa/finlib/tvm"
)

var projectFlows = []float64{-100000, 35000, 45000, 55000}

func TestNPV_ZeroVolIsDeterministic(t *testing.T) {
	res, err := montecarlo.NPV(projectFlows, montecarlo.Config{
		RateMean:    0.10,
		Simulations: 100,
		Seed:        1,
	})
	require.NoError(t, err)
	require.Len(t, res.NPVs, 100)

	analytic, err := cashflow.NetPresentValue(projectFlows, 0.10)
	require.NoError(t, err)
	for _, v := range res.NPVs {
		assert.InDelta(t, analytic, v, 1e-9)
	}
	assert.InDelta(t, analytic, res.Mean(), 1e-9)
	assert.Zero(t, res.StdDev())
}

func TestNPV_SeedReproducibility(t *testing.T) {
	cfg := montecarlo.Config{
		RateMean:    0.10,
		RateVol:     0.025,
		FlowVol:     0.20,
		Simulations: 500,
		Seed:        42,
	}
	a, err := montecarlo.NPV(projectFlows, cfg)
	require.NoError(t, err)
	b, err := montecarlo.NPV(projectFlows, cfg)
	require.NoError(t, err)
	assert.Equal(t, a.NPVs, b.NPVs)

	cfg.Seed = 43
	c, err := montecarlo.NPV(projectFlows, cfg)
	require.NoError(t, err)
	assert.NotEqual(t, a.NPVs, c.NPVs)
}

func TestNPV_DistributionShape(t *testing.T) {
	res, err := montecarlo.NPV(projectFlows, montecarlo.Config{
		RateMean:    0.10,
		RateVol:     0.025,
		FlowVol:     0.20,
		Simulations: 20000,
		Seed:        7,
	})
	require.NoError(t, err)

	analytic, err := cashflow.NetPresentValue(projectFlows, 0.10)
	require.NoError(t, err)

	// The simulated mean should land near the analytic NPV, well inside
	// one standard error of the run.
	assert.InDelta(t, analytic, res.Mean(), res.StdDev()/10)
	assert.Greater(t, res.StdDev(), 0.0)

	p := res.ProbPositive()
	assert.Greater(t, p, 0.0)
	assert.Less(t, p, 1.0)

	assert.Less(t, res.Quantile(0.05), res.Quantile(0.95))
}

func TestNPV_InvalidInputs(t *testing.T) {
	_, err := montecarlo.NPV([]float64{-100}, montecarlo.Config{RateMean: 0.1, Simulations: 10})
	assert.ErrorIs(t, err, tvm.ErrEmptySequence)

	_, err = montecarlo.NPV(projectFlows, montecarlo.Config{RateMean: -1.5, Simulations: 10})
	assert.ErrorIs(t, err, tvm.ErrInvalidRate)

	_, err = montecarlo.NPV(projectFlows, montecarlo.Config{RateMean: 0.1, FlowVol: -0.2, Simulations: 10})
	assert.ErrorIs(t, err, tvm.ErrInvalidRate)

	_, err = montecarlo.NPV(projectFlows, montecarlo.Config{RateMean: 0.1})
	assert.ErrorIs(t, err, tvm.ErrInvalidPeriod)
}
