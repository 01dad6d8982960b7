package operators

import (
	"fmt"

	"github.com/notargets/bbm1d/mesh"
)

// Kind enumerates the supported derivative-operator families. The set is
// closed; anything else is rejected when a solver is constructed.
type Kind uint8

const (
	// Central pairs a single first-derivative operator with itself in the
	// hyperbolic update.
	Central Kind = iota
	// Upwind applies the one-sided pair asymmetrically: the backward-biased
	// operator to the mass flux, the forward-biased one to the momentum flux.
	Upwind
)

func (k Kind) String() string {
	switch k {
	case Central:
		return "central"
	case Upwind:
		return "upwind"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Set bundles the derivative operators of one discretization family.
type Set struct {
	Kind Kind

	// Central family.
	D1 *Stencil

	// Upwind family.
	D1Minus, D1Plus *Stencil

	// Used by both families.
	D2 *Stencil
}

// NewCentralSet builds the central/coupled operator family of the given
// accuracy order (2 or 4) on m.
func NewCentralSet(order int, m *mesh.Mesh1D) (*Set, error) {
	d1, err := FirstDerivative(order, m)
	if err != nil {
		return nil, err
	}
	d2, err := SecondDerivative(order, m)
	if err != nil {
		return nil, err
	}
	return &Set{Kind: Central, D1: d1, D2: d2}, nil
}

// NewUpwindSet builds the upwind operator family of the given accuracy
// order (1 or 2) on m. The second-derivative operator is the order-2
// central one.
func NewUpwindSet(order int, m *mesh.Mesh1D) (*Set, error) {
	minus, plus, err := UpwindPair(order, m)
	if err != nil {
		return nil, err
	}
	d2, err := SecondDerivative(2, m)
	if err != nil {
		return nil, err
	}
	return &Set{Kind: Upwind, D1Minus: minus, D1Plus: plus, D2: d2}, nil
}
