package equations

import "math"

// Parameters holds the physical constants of the BBM-BBM system: the
// gravitational constant and the reference ("lake-at-rest") total water
// height. Constructed once, read-only thereafter.
type Parameters struct {
	Gravity float64
	Eta0    float64
}

// The primitive state at a node is (eta, v, d): total water height,
// velocity, and still-water depth (negative bathymetry). The conservative
// form is (h, hv, b) with h = eta + d and b = -d.

// PrimToCons converts a primitive node state to conservative variables.
func PrimToCons(eta, v, d float64) (h, hv, b float64) {
	h = eta + d
	return h, h * v, -d
}

// ConsToPrim converts a conservative node state back to primitive
// variables. Undefined for h == 0 (dry state); callers must keep h > 0.
func ConsToPrim(h, hv, b float64) (eta, v, d float64) {
	return h + b, hv / h, -b
}

// Waterheight returns the total water height.
func Waterheight(eta, v, d float64) float64 { return eta }

// Velocity returns the flow velocity.
func Velocity(eta, v, d float64) float64 { return v }

// Bathymetry returns the bottom topography.
func Bathymetry(eta, v, d float64) float64 { return -d }

// WaterheightAboveBathymetry returns the thickness of the water column,
// eta - (-d) = eta + d.
func WaterheightAboveBathymetry(eta, v, d float64) float64 { return eta + d }

// EnergyTotal returns the total energy density at a node. It doubles as the
// mathematical entropy of the system.
func (p Parameters) EnergyTotal(eta, v, d float64) float64 {
	return 0.5 * (p.Gravity*eta*eta + (d+eta)*v*v)
}

// Entropy is an alias for EnergyTotal.
func (p Parameters) Entropy(eta, v, d float64) float64 {
	return p.EnergyTotal(eta, v, d)
}

// LakeAtRestError returns the deviation of the water surface from the
// reference still-water height.
func (p Parameters) LakeAtRestError(eta float64) float64 {
	return math.Abs(p.Eta0 - eta)
}
