package physics

import "math"

// Target types derived from site elevation.
const (
	TargetWater = "water"
	TargetRock  = "rock"
)

// tsunamiThresholdMt is the minimum energy for an ocean impact to raise
// the tsunami flag.
const tsunamiThresholdMt = 10.0

// ImpactEffects holds the estimated surface consequences of a single impact.
type ImpactEffects struct {
	CraterDiameterKm float64 `json:"crater_diameter_km"`
	TsunamiRisk      bool    `json:"tsunami_risk"`
	SeismicMagnitude float64 `json:"seismic_magnitude"`
	FireballRadiusKm float64 `json:"fireball_radius_km"`
	TargetType       string  `json:"target_type"`
	EnergyMegatons   float64 `json:"energy_megatons"`
}

// CraterDiameter estimates the crater diameter in kilometers from impact
// energy using Holsapple-Schmidt style scaling. Water targets cushion the
// impact and produce smaller craters.
func CraterDiameter(energyMt float64, targetType string) float64 {
	if energyMt <= 0 {
		return 0
	}

	joules := energyMt * MegatonInJoules
	coefficient := 1.8
	if targetType == TargetWater {
		coefficient = 1.2
	}

	meters := coefficient * math.Pow(joules/1e12, 0.294)
	return meters / 1000
}

// CalculateImpactEffects derives crater size, seismic magnitude, fireball
// radius and tsunami risk from impact energy and site elevation. The target
// is classified as water below sea level, rock otherwise. Non-positive
// energy is clamped to zero effects.
func CalculateImpactEffects(energyMt, lat, lon, elevationM float64) ImpactEffects {
	targetType := TargetRock
	if elevationM < 0 {
		targetType = TargetWater
	}

	if energyMt <= 0 {
		return ImpactEffects{TargetType: targetType}
	}

	seismic := 4.5 + 0.67*math.Log10(energyMt)
	if seismic < 0 {
		seismic = 0
	} else if seismic > 10 {
		seismic = 10
	}

	return ImpactEffects{
		CraterDiameterKm: CraterDiameter(energyMt, targetType),
		TsunamiRisk:      targetType == TargetWater && energyMt > tsunamiThresholdMt,
		SeismicMagnitude: seismic,
		FireballRadiusKm: 1.5 * math.Pow(energyMt, 0.4),
		TargetType:       targetType,
		EnergyMegatons:   energyMt,
	}
}
