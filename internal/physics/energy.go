package physics

import "math"

// KineticEnergy returns the impact energy of an asteroid in megatons of TNT.
// Mass is derived from the diameter assuming a sphere of rocky density.
// Degenerate inputs (diameter or velocity <= 0) yield 0 rather than an error.
func KineticEnergy(diameterM, velocityMS float64) float64 {
	if diameterM <= 0 || velocityMS <= 0 {
		return 0
	}

	radius := diameterM / 2
	volume := (4.0 / 3.0) * math.Pi * radius * radius * radius
	mass := volume * AsteroidDensity

	joules := 0.5 * mass * velocityMS * velocityMS

	return joules / MegatonInJoules
}
