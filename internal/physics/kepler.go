package physics

import (
	"errors"
	"math"
)

// OrbitalElements are classical Keplerian elements in SI units.
// Angles are radians; callers normalize degrees at the ingestion boundary
// before constructing one of these. Values are never mutated after
// construction; Deflect returns a distinct copy.
type OrbitalElements struct {
	A     float64 `json:"a"`     // semi-major axis, meters
	E     float64 `json:"e"`     // eccentricity, 0 <= e < 1
	I     float64 `json:"i"`     // inclination, radians
	Omega float64 `json:"omega"` // longitude of ascending node, radians
	W     float64 `json:"w"`     // argument of periapsis, radians
	M     float64 `json:"m"`     // mean anomaly at epoch, radians
}

// ErrUnsupportedOrbit is returned for orbital regimes the propagator does
// not model: hyperbolic/parabolic orbits (e >= 1) and degenerate elements.
var ErrUnsupportedOrbit = errors.New("physics: unsupported orbital regime (need a > 0 and 0 <= e < 1)")

// solveKepler solves Kepler's equation M = E - e*sin(E) for the eccentric
// anomaly by fixed-point iteration. Converges quickly for the bound,
// moderately eccentric orbits this service deals with.
func solveKepler(meanAnomaly, eccentricity float64) float64 {
	e := meanAnomaly
	for i := 0; i < 100; i++ {
		next := meanAnomaly + eccentricity*math.Sin(e)
		if math.Abs(next-e) < 1e-8 {
			return next
		}
		e = next
	}
	return e
}

// orbitalToInertial rotates a position in the orbital plane into the
// inertial frame via the standard 3-1-3 rotation (argument of periapsis,
// inclination, longitude of ascending node).
func orbitalToInertial(x, y float64, i, omega, w float64) Vec3 {
	cosI, sinI := math.Cos(i), math.Sin(i)
	cosO, sinO := math.Cos(omega), math.Sin(omega)
	cosW, sinW := math.Cos(w), math.Sin(w)

	return Vec3{
		X: x*(cosW*cosO-sinW*sinO*cosI) - y*(sinW*cosO+cosW*sinO*cosI),
		Y: x*(cosW*sinO+sinW*cosO*cosI) + y*(cosW*cosO-sinW*sinO*cosI),
		Z: x*(sinW*sinI) + y*(cosW*sinI),
	}
}

// Propagate traces one full orbit as a sequence of 3D positions. The mean
// anomaly is swept from M to M+2pi inclusive over samples points; each
// sample solves Kepler's equation, evaluates the conic radius and rotates
// the orbital-plane position into the inertial frame.
//
// samples <= 1 falls back to DefaultTrajectorySamples.
func Propagate(el OrbitalElements, samples int) ([]Vec3, error) {
	if el.A <= 0 || el.E < 0 || el.E >= 1 || math.IsNaN(el.A) || math.IsNaN(el.E) {
		return nil, ErrUnsupportedOrbit
	}
	if samples <= 1 {
		samples = DefaultTrajectorySamples
	}

	trajectory := make([]Vec3, 0, samples)
	for k := 0; k < samples; k++ {
		frac := float64(k) / float64(samples-1)
		meanAnomaly := el.M + 2*math.Pi*frac

		ecc := solveKepler(meanAnomaly, el.E)
		r := el.A * (1 - el.E*math.Cos(ecc))
		xOrb := r * math.Cos(ecc)
		yOrb := r * math.Sin(ecc)

		trajectory = append(trajectory, orbitalToInertial(xOrb, yOrb, el.I, el.Omega, el.W))
	}

	return trajectory, nil
}

// MissDistance returns the minimum distance in kilometers between paired
// samples of two trajectories. Zero when either trajectory is empty.
func MissDistance(original, deflected []Vec3) float64 {
	n := len(original)
	if len(deflected) < n {
		n = len(deflected)
	}
	if n == 0 {
		return 0
	}

	min := math.Inf(1)
	for i := 0; i < n; i++ {
		if d := original[i].Minus(deflected[i]).Magnitude(); d < min {
			min = d
		}
	}

	return min / 1000
}
