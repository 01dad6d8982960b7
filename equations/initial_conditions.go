package equations

import "math"

// Manufactured traveling profile over flat bathymetry, periodic on any
// interval of length 2. Together with SourceTermsManufactured it is an
// exact solution of the forced system, used for convergence testing.
const (
	manufacturedA  = 0.04
	manufacturedB  = 0.02
	manufacturedD0 = 2.0
	manufacturedK  = math.Pi
)

// InitialConditionManufactured returns the manufactured solution state at
// (x, t):
//
//	eta = A*cos(k*x - t),  v = B*sin(k*x - t),  D = D0.
func InitialConditionManufactured(x, t float64) (eta, v, d float64) {
	u := manufacturedK*x - t
	return manufacturedA * math.Cos(u), manufacturedB * math.Sin(u), manufacturedD0
}

// ManufacturedDerivative returns the exact time derivative of the
// manufactured solution at (x, t).
func ManufacturedDerivative(x, t float64) (deta, dv float64) {
	u := manufacturedK*x - t
	return manufacturedA * math.Sin(u), -manufacturedB * math.Cos(u)
}

// SourceTermsManufactured returns the source terms matching
// InitialConditionManufactured for the given parameters, derived by
// substituting the profile into the forced BBM-BBM system:
//
//	(I - 1/6 dx(D0^2 dx)) eta_t + ((D0+eta) v)_x         = s1
//	(I - 1/6 D0^2 dxx)    v_t   + (g eta + 1/2 v^2)_x    = s2
func SourceTermsManufactured(p Parameters) SourceFunc {
	var (
		a  = manufacturedA
		b  = manufacturedB
		d0 = manufacturedD0
		k  = manufacturedK
		g  = p.Gravity
	)
	disp := 1 + d0*d0*k*k/6
	return func(eta, v, d, x, t float64) (s1, s2, s3 float64) {
		u := k*x - t
		sin, cos := math.Sincos(u)
		sin2, cos2 := math.Sincos(2 * u)
		s1 = a*disp*sin + d0*b*k*cos + a*b*k*cos2
		s2 = -b*disp*cos - g*a*k*sin + 0.5*b*b*k*sin2
		return s1, s2, 0
	}
}

// InitialConditionLakeAtRest returns the stationary state over the given
// depth profile: flat surface at eta0, zero velocity.
func InitialConditionLakeAtRest(eta0 float64, depth func(x float64) float64) InitialCondition {
	return func(x, t float64) (eta, v, d float64) {
		return eta0, 0, depth(x)
	}
}

// InitialConditionGaussianHump returns a Gaussian surface perturbation of
// amplitude amp and width sigma centered at x0, at rest over the given
// depth profile.
func InitialConditionGaussianHump(eta0, amp, x0, sigma float64, depth func(x float64) float64) InitialCondition {
	return func(x, t float64) (eta, v, d float64) {
		r := (x - x0) / sigma
		return eta0 + amp*math.Exp(-r*r), 0, depth(x)
	}
}
