package physics

// Physical constants used across the impact and orbital calculations.
const (
	EarthRadius = 6371000.0   // meters
	EarthMass   = 5.972e24    // kg
	G           = 6.67430e-11 // gravitational constant, m^3 kg^-1 s^-2

	// AsteroidDensity is the assumed bulk density for rocky asteroids.
	AsteroidDensity = 3000.0 // kg/m^3

	// TNTEnergyPerTon is the energy released by one ton of TNT.
	TNTEnergyPerTon = 4.184e9 // joules
	// MegatonInJoules is one megaton of TNT equivalent.
	MegatonInJoules = TNTEnergyPerTon * 1e6

	// DefaultTrajectorySamples is the sample count for one full orbit.
	DefaultTrajectorySamples = 100
)
