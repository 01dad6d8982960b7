package integrator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

// decay is dy/dt = -y with the exact solution y0 * exp(-t).
func decay(t float64, q, dq *mat.Dense) {
	dq.Set(0, 0, -q.At(0, 0))
}

func TestRK4Exponential(t *testing.T) {
	q := mat.NewDense(1, 1, []float64{1})
	rk := NewRK4(decay, 1, 1)
	rk.Integrate(0, 1, 100, q)
	assert.InDelta(t, math.Exp(-1), q.At(0, 0), 1e-9)
}

func TestRK4ConvergenceOrder(t *testing.T) {
	errAt := func(steps int) float64 {
		q := mat.NewDense(1, 1, []float64{1})
		rk := NewRK4(decay, 1, 1)
		rk.Integrate(0, 1, steps, q)
		return math.Abs(q.At(0, 0) - math.Exp(-1))
	}

	ratio := errAt(10) / errAt(20)
	assert.Greater(t, ratio, 12.0, "fourth order: halving dt should shrink the error by ~16")
}

func TestRK4MultiRowState(t *testing.T) {
	// Harmonic oscillator written as two rows: x' = p, p' = -x.
	f := func(t float64, q, dq *mat.Dense) {
		dq.Set(0, 0, q.At(1, 0))
		dq.Set(1, 0, -q.At(0, 0))
	}
	q := mat.NewDense(2, 1, []float64{1, 0})
	rk := NewRK4(f, 2, 1)
	rk.Integrate(0, 2*math.Pi, 500, q)
	assert.InDelta(t, 1, q.At(0, 0), 1e-7)
	assert.InDelta(t, 0, q.At(1, 0), 1e-7)
}

func TestRK4Panics(t *testing.T) {
	assert.Panics(t, func() { NewRK4(nil, 1, 1) })

	rk := NewRK4(decay, 1, 1)
	q := mat.NewDense(1, 1, []float64{1})
	assert.Panics(t, func() { rk.Integrate(0, 1, 0, q) })
}
