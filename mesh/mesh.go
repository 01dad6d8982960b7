package mesh

import "fmt"

// Mesh1D is a uniform grid of N nodes on the periodic interval [Xmin, Xmax).
// Node i sits at Xmin + i*dx with dx = (Xmax-Xmin)/N; the right endpoint is
// identified with the left one.
type Mesh1D struct {
	N          int
	Xmin, Xmax float64
}

// NewMesh1D creates a periodic mesh with n nodes on [xmin, xmax).
func NewMesh1D(xmin, xmax float64, n int) (*Mesh1D, error) {
	if n < 2 {
		return nil, fmt.Errorf("mesh: need at least 2 nodes, got %d", n)
	}
	if xmax <= xmin {
		return nil, fmt.Errorf("mesh: empty interval [%g, %g]", xmin, xmax)
	}
	return &Mesh1D{N: n, Xmin: xmin, Xmax: xmax}, nil
}

// Dx returns the uniform node spacing.
func (m *Mesh1D) Dx() float64 {
	return (m.Xmax - m.Xmin) / float64(m.N)
}

// Coordinates returns the N node coordinates.
func (m *Mesh1D) Coordinates() []float64 {
	x := make([]float64, m.N)
	dx := m.Dx()
	for i := range x {
		x[i] = m.Xmin + float64(i)*dx
	}
	return x
}

func (m *Mesh1D) String() string {
	return fmt.Sprintf("Mesh1D{N: %d, [%g, %g), dx: %g}", m.N, m.Xmin, m.Xmax, m.Dx())
}
