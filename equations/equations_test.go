package equations

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrimConsRoundTrip(t *testing.T) {
	states := [][3]float64{
		{0, 0, 2},
		{0.8, 0, 1.5},
		{-0.3, 1.2, 2.5},
		{2, -4, 0.1},
	}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		states = append(states, [3]float64{
			rng.NormFloat64(),
			2 * rng.NormFloat64(),
			3 + rng.Float64(), // keep h = eta + d away from zero
		})
	}

	for _, s := range states {
		eta, v, d := s[0], s[1], s[2]
		h, hv, b := PrimToCons(eta, v, d)
		eta2, v2, d2 := ConsToPrim(h, hv, b)
		assert.InDelta(t, eta, eta2, 1e-13)
		assert.InDelta(t, v, v2, 1e-13)
		assert.Equal(t, d, d2)
	}
}

func TestPrimToCons(t *testing.T) {
	h, hv, b := PrimToCons(0.5, 2, 1.5)
	assert.Equal(t, 2.0, h)
	assert.Equal(t, 4.0, hv)
	assert.Equal(t, -1.5, b)
}

func TestDiagnostics(t *testing.T) {
	const (
		eta = 0.4
		v   = 1.5
		d   = 2.0
	)
	p := Parameters{Gravity: 9.81, Eta0: 0.1}

	assert.Equal(t, eta, Waterheight(eta, v, d))
	assert.Equal(t, v, Velocity(eta, v, d))
	assert.Equal(t, -d, Bathymetry(eta, v, d))
	assert.Equal(t, eta+d, WaterheightAboveBathymetry(eta, v, d))

	want := 0.5 * (9.81*eta*eta + (d+eta)*v*v)
	assert.InDelta(t, want, p.EnergyTotal(eta, v, d), 1e-15)
	assert.Equal(t, p.EnergyTotal(eta, v, d), p.Entropy(eta, v, d))

	assert.InDelta(t, 0.3, p.LakeAtRestError(eta), 1e-15)
	assert.Equal(t, 0.0, p.LakeAtRestError(0.1))
}
