package operators

import (
	"fmt"

	"github.com/notargets/bbm1d/mesh"
	"gonum.org/v1/gonum/mat"
)

// Stencil is a periodic (circulant) finite-difference operator on a uniform
// grid: row i of the equivalent matrix carries the same coefficients shifted
// by i, wrapping around the grid ends.
type Stencil struct {
	n       int
	offsets []int
	coeffs  []float64
}

func newStencil(n int, offsets []int, coeffs []float64) (*Stencil, error) {
	// Wrap-around must not fold two stencil points onto the same node.
	span := offsets[len(offsets)-1] - offsets[0] + 1
	if n < span {
		return nil, fmt.Errorf("operators: grid of %d nodes too small for a stencil spanning %d", n, span)
	}
	return &Stencil{n: n, offsets: offsets, coeffs: coeffs}, nil
}

// Len returns the number of grid nodes the operator acts on.
func (s *Stencil) Len() int { return s.n }

// Apply computes dst = S*src with periodic wrap-around. dst and src must
// both have length Len and must not alias.
func (s *Stencil) Apply(dst, src []float64) {
	if len(dst) != s.n || len(src) != s.n {
		panic("operators: vector length does not match operator size")
	}
	for i := 0; i < s.n; i++ {
		var acc float64
		for j, off := range s.offsets {
			idx := i + off
			if idx < 0 {
				idx += s.n
			} else if idx >= s.n {
				idx -= s.n
			}
			acc += s.coeffs[j] * src[idx]
		}
		dst[i] = acc
	}
}

// Dense materializes the operator as an n x n matrix.
func (s *Stencil) Dense() *mat.Dense {
	d := mat.NewDense(s.n, s.n, nil)
	for i := 0; i < s.n; i++ {
		for j, off := range s.offsets {
			idx := i + off
			if idx < 0 {
				idx += s.n
			} else if idx >= s.n {
				idx -= s.n
			}
			d.Set(i, idx, s.coeffs[j])
		}
	}
	return d
}

// FirstDerivative returns the periodic central first-derivative operator of
// the given accuracy order (2 or 4).
func FirstDerivative(order int, m *mesh.Mesh1D) (*Stencil, error) {
	h := m.Dx()
	switch order {
	case 2:
		return newStencil(m.N,
			[]int{-1, 1},
			[]float64{-0.5 / h, 0.5 / h})
	case 4:
		return newStencil(m.N,
			[]int{-2, -1, 1, 2},
			[]float64{1. / (12 * h), -2. / (3 * h), 2. / (3 * h), -1. / (12 * h)})
	}
	return nil, fmt.Errorf("operators: unsupported first-derivative order %d", order)
}

// SecondDerivative returns the periodic second-derivative operator of the
// given accuracy order (2 or 4).
func SecondDerivative(order int, m *mesh.Mesh1D) (*Stencil, error) {
	h := m.Dx()
	h2 := h * h
	switch order {
	case 2:
		return newStencil(m.N,
			[]int{-1, 0, 1},
			[]float64{1 / h2, -2 / h2, 1 / h2})
	case 4:
		return newStencil(m.N,
			[]int{-2, -1, 0, 1, 2},
			[]float64{-1. / (12 * h2), 4. / (3 * h2), -5. / (2 * h2), 4. / (3 * h2), -1. / (12 * h2)})
	}
	return nil, fmt.Errorf("operators: unsupported second-derivative order %d", order)
}

// UpwindPair returns the one-sided first-derivative pair (backward-biased
// minus, forward-biased plus) of the given accuracy order (1 or 2).
// The average (minus+plus)/2 of the order-1 pair is the order-2 central
// operator.
func UpwindPair(order int, m *mesh.Mesh1D) (minus, plus *Stencil, err error) {
	h := m.Dx()
	switch order {
	case 1:
		minus, err = newStencil(m.N,
			[]int{-1, 0},
			[]float64{-1 / h, 1 / h})
		if err != nil {
			return nil, nil, err
		}
		plus, err = newStencil(m.N,
			[]int{0, 1},
			[]float64{-1 / h, 1 / h})
		return minus, plus, err
	case 2:
		minus, err = newStencil(m.N,
			[]int{-2, -1, 0},
			[]float64{1 / (2 * h), -4 / (2 * h), 3 / (2 * h)})
		if err != nil {
			return nil, nil, err
		}
		plus, err = newStencil(m.N,
			[]int{0, 1, 2},
			[]float64{-3 / (2 * h), 4 / (2 * h), -1 / (2 * h)})
		return minus, plus, err
	}
	return nil, nil, fmt.Errorf("operators: unsupported upwind order %d", order)
}
