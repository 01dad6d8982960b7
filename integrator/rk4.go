package integrator

import "gonum.org/v1/gonum/mat"

// RHSFunc evaluates the time derivative of the state q into dq. Both
// matrices have the shape the RK4 instance was created with.
type RHSFunc func(t float64, q, dq *mat.Dense)

// RK4 is a fixed-step fourth-order Runge-Kutta integrator over a dense
// matrix state. Stage storage is allocated once at construction and reused
// on every step; an instance must not serve overlapping integrations.
type RK4 struct {
	f                  RHSFunc
	k1, k2, k3, k4, ys *mat.Dense
}

// NewRK4 creates an integrator for states of shape (rows, cols).
func NewRK4(f RHSFunc, rows, cols int) *RK4 {
	if f == nil {
		panic("integrator: rhs function may not be nil")
	}
	return &RK4{
		f:  f,
		k1: mat.NewDense(rows, cols, nil),
		k2: mat.NewDense(rows, cols, nil),
		k3: mat.NewDense(rows, cols, nil),
		k4: mat.NewDense(rows, cols, nil),
		ys: mat.NewDense(rows, cols, nil),
	}
}

// Step advances q in place from t by one step of size dt.
func (r *RK4) Step(t, dt float64, q *mat.Dense) {
	var (
		y  = q.RawMatrix().Data
		ys = r.ys.RawMatrix().Data
		k1 = r.k1.RawMatrix().Data
		k2 = r.k2.RawMatrix().Data
		k3 = r.k3.RawMatrix().Data
		k4 = r.k4.RawMatrix().Data
	)

	r.f(t, q, r.k1)
	for i := range ys {
		ys[i] = y[i] + 0.5*dt*k1[i]
	}
	r.f(t+0.5*dt, r.ys, r.k2)
	for i := range ys {
		ys[i] = y[i] + 0.5*dt*k2[i]
	}
	r.f(t+0.5*dt, r.ys, r.k3)
	for i := range ys {
		ys[i] = y[i] + dt*k3[i]
	}
	r.f(t+dt, r.ys, r.k4)
	for i := range y {
		y[i] += dt / 6 * (k1[i] + 2*k2[i] + 2*k3[i] + k4[i])
	}
}

// Integrate advances q in place from t0 to tEnd in nSteps equal steps.
func (r *RK4) Integrate(t0, tEnd float64, nSteps int, q *mat.Dense) {
	if nSteps <= 0 {
		panic("integrator: step count must be positive")
	}
	dt := (tEnd - t0) / float64(nSteps)
	for i := 0; i < nSteps; i++ {
		r.Step(t0+float64(i)*dt, dt, q)
	}
}
