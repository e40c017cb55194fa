package physics

import "math"

// Deflect applies an idealized instantaneous prograde (or retrograde, for
// negative deltaV) velocity change and returns the perturbed elements. The
// model reshapes only the semi-major axis from the new speed; it is not a
// full post-burn state solve.
//
// The input is never mutated. A retrograde burn at or beyond the circular
// orbital speed is unsupported and returns the elements unchanged.
func Deflect(el OrbitalElements, deltaV float64) OrbitalElements {
	deflected := el
	if el.A <= 0 {
		return deflected
	}

	mu := G * EarthMass
	vOrbital := math.Sqrt(mu / el.A)
	vNew := vOrbital + deltaV
	if vNew <= 0 {
		return deflected
	}

	deflected.A = mu / (vNew * vNew)
	return deflected
}
