package equations

import (
	"fmt"

	"github.com/notargets/bbm1d/mesh"
	"github.com/notargets/bbm1d/operators"
	"gonum.org/v1/gonum/mat"
)

// InitialCondition maps (x, t) to a primitive node state (eta, v, d). The
// d component is sampled once at t = 0 to populate the bathymetry, which is
// constant for the whole run.
type InitialCondition func(x, t float64) (eta, v, d float64)

// SourceFunc evaluates external source terms pointwise. The third component
// (bathymetry source) is ignored: topography carries no time derivative.
type SourceFunc func(eta, v, d, x, t float64) (s1, s2, s3 float64)

// BBMBBM evaluates the right-hand side of the BBM-BBM dispersive
// shallow-water system on a periodic mesh. Construction precomputes the
// dense inverses of the elliptic operators
//
//	I - 1/6 * D1 * K * D1   and   I - 1/6 * D2 * K,   K = diag(D_i^2),
//
// (D1Minus * K * D1Plus for the upwind family) so that each RHS call costs
// two matrix-vector products instead of a linear solve. The inverses and the
// bathymetry are fixed for the lifetime of the solver; only rebuilding the
// solver can change them.
//
// A solver instance reuses internal scratch storage and therefore must not
// serve overlapping RHS calls. Distinct instances are independent.
type BBMBBM struct {
	Params Parameters

	// Source, if non-nil, is added to the hyperbolic update before the
	// elliptic correction.
	Source SourceFunc

	mesh *mesh.Mesh1D
	x    []float64

	// Hyperbolic derivative pair, bound once at construction: (D1, D1) for
	// the central family, (D1Minus, D1Plus) for the upwind family.
	op1, op2 *operators.Stencil

	invImDKD *mat.Dense
	invImD2K *mat.Dense

	tmp1, tmp2 []float64
}

// NewBBMBBM builds the solver cache for the given operator family. The
// initial condition is sampled at t = 0 on every node; its depth component
// becomes the invariant bathymetry vector. An operator set of unknown kind
// is a configuration error and is rejected here, before any time stepping.
func NewBBMBBM(p Parameters, m *mesh.Mesh1D, ops *operators.Set, ic InitialCondition) (*BBMBBM, error) {
	var op1, op2 *operators.Stencil
	switch ops.Kind {
	case operators.Central:
		op1, op2 = ops.D1, ops.D1
	case operators.Upwind:
		op1, op2 = ops.D1Minus, ops.D1Plus
	default:
		return nil, fmt.Errorf("equations: unsupported operator kind %s", ops.Kind)
	}

	n := m.N
	x := m.Coordinates()

	// Bathymetry is sampled here and nowhere else.
	k2 := make([]float64, n)
	for i := range k2 {
		_, _, d := ic(x[i], 0)
		k2[i] = d * d
	}

	b := &BBMBBM{
		Params: p,
		mesh:   m,
		x:      x,
		op1:    op1,
		op2:    op2,
		tmp1:   make([]float64, n),
		tmp2:   make([]float64, n),
	}
	b.invImDKD = invertImDKD(op1.Dense(), op2.Dense(), k2)
	b.invImD2K = invertImD2K(ops.D2.Dense(), k2)
	return b, nil
}

// invertImDKD computes (I - 1/6 * left * K * right)^-1 for K = diag(k2).
func invertImDKD(left, right *mat.Dense, k2 []float64) *mat.Dense {
	n := len(k2)

	// K * right scales row i of right by k2[i].
	kr := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		row := kr.RawRowView(i)
		src := right.RawRowView(i)
		for j := range row {
			row[j] = k2[i] * src[j]
		}
	}

	var prod mat.Dense
	prod.Mul(left, kr)

	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := -prod.At(i, j) / 6
			if i == j {
				v++
			}
			a.Set(i, j, v)
		}
	}

	inv := mat.NewDense(n, n, nil)
	if err := inv.Inverse(a); err != nil {
		panic(err)
	}
	return inv
}

// invertImD2K computes (I - 1/6 * d2 * K)^-1 for K = diag(k2).
func invertImD2K(d2 *mat.Dense, k2 []float64) *mat.Dense {
	n := len(k2)

	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := -d2.At(i, j) * k2[j] / 6
			if i == j {
				v++
			}
			a.Set(i, j, v)
		}
	}

	inv := mat.NewDense(n, n, nil)
	if err := inv.Inverse(a); err != nil {
		panic(err)
	}
	return inv
}

// RHS writes the time derivative of q into dq. Both are (3, N) matrices
// with rows [eta, v, D]. The bathymetry row of dq is zeroed.
func (b *BBMBBM) RHS(t float64, q, dq *mat.Dense) {
	var (
		eta  = q.RawRowView(0)
		v    = q.RawRowView(1)
		d    = q.RawRowView(2)
		deta = dq.RawRowView(0)
		dv   = dq.RawRowView(1)
		dd   = dq.RawRowView(2)
		g    = b.Params.Gravity
		n    = len(eta)
	)

	// Hyperbolic update: fluxes formed pointwise, then the bound derivative
	// pair applied.
	for i := 0; i < n; i++ {
		b.tmp1[i] = d[i]*v[i] + eta[i]*v[i]
		b.tmp2[i] = g*eta[i] + 0.5*v[i]*v[i]
	}
	b.op1.Apply(deta, b.tmp1)
	b.op2.Apply(dv, b.tmp2)
	for i := 0; i < n; i++ {
		deta[i] = -deta[i]
		dv[i] = -dv[i]
	}

	if b.Source != nil {
		for i := 0; i < n; i++ {
			s1, s2, _ := b.Source(eta[i], v[i], d[i], b.x[i], t)
			deta[i] += s1
			dv[i] += s2
		}
	}

	// Elliptic correction: the precomputed inverses turn the explicit
	// residual into the time derivative implied by the dispersive terms.
	copy(b.tmp1, deta)
	copy(b.tmp2, dv)
	detaVec := mat.NewVecDense(n, deta)
	dvVec := mat.NewVecDense(n, dv)
	detaVec.MulVec(b.invImDKD, mat.NewVecDense(n, b.tmp1))
	dvVec.MulVec(b.invImD2K, mat.NewVecDense(n, b.tmp2))

	for i := 0; i < n; i++ {
		dd[i] = 0
	}
}

// StateFromInitialCondition samples ic at time t on every node of m into a
// freshly allocated (3, N) state matrix with rows [eta, v, D].
func StateFromInitialCondition(ic InitialCondition, m *mesh.Mesh1D, t float64) *mat.Dense {
	q := mat.NewDense(3, m.N, nil)
	var (
		eta = q.RawRowView(0)
		v   = q.RawRowView(1)
		d   = q.RawRowView(2)
	)
	for i, xi := range m.Coordinates() {
		eta[i], v[i], d[i] = ic(xi, t)
	}
	return q
}
