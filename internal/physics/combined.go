package physics

import (
	"fmt"
	"math"
)

// MaxSimultaneousImpacts bounds a multi-impact scenario.
const MaxSimultaneousImpacts = 5

// CombinedEffects aggregates per-event impact effects across a
// multi-impact scenario.
type CombinedEffects struct {
	TotalEnergyMt      float64 `json:"total_energy_mt"`
	MaxCraterKm        float64 `json:"max_crater_km"`
	TotalCraterAreaKm2 float64 `json:"total_crater_area_km2"`
	CombinedSeismic    float64 `json:"combined_seismic"`
	MaxFireballKm      float64 `json:"max_fireball_km"`
	TsunamiRisk        bool    `json:"tsunami_risk"`
	ImpactCount        int     `json:"impact_count"`
}

// gutenbergRichter relates seismic magnitude to radiated energy:
// log10(E) = 1.5*M + 4.8. Used to sum magnitudes in the energy domain.
const gutenbergRichterOffset = 4.8

// CalculateCombinedEffects combines 1 to MaxSimultaneousImpacts individual
// effect results. Energies and crater areas sum, craters and fireballs take
// the maximum, tsunami risk ORs. Seismic magnitudes are logarithmic, so the
// combined magnitude is computed by summing the energy-equivalent moments
// and converting back, never by adding magnitudes directly.
func CalculateCombinedEffects(events []ImpactEffects) (CombinedEffects, error) {
	if len(events) < 1 || len(events) > MaxSimultaneousImpacts {
		return CombinedEffects{}, fmt.Errorf("physics: need 1-%d impact events, got %d", MaxSimultaneousImpacts, len(events))
	}

	combined := CombinedEffects{ImpactCount: len(events)}
	seismicEnergy := 0.0

	for _, ev := range events {
		combined.TotalEnergyMt += ev.EnergyMegatons
		if ev.CraterDiameterKm > combined.MaxCraterKm {
			combined.MaxCraterKm = ev.CraterDiameterKm
		}
		radius := ev.CraterDiameterKm / 2
		combined.TotalCraterAreaKm2 += math.Pi * radius * radius
		if ev.FireballRadiusKm > combined.MaxFireballKm {
			combined.MaxFireballKm = ev.FireballRadiusKm
		}
		combined.TsunamiRisk = combined.TsunamiRisk || ev.TsunamiRisk

		if ev.SeismicMagnitude > 0 {
			seismicEnergy += math.Pow(10, 1.5*ev.SeismicMagnitude+gutenbergRichterOffset)
		}
	}

	if seismicEnergy > 0 {
		combined.CombinedSeismic = (math.Log10(seismicEnergy) - gutenbergRichterOffset) / 1.5
	}

	return combined, nil
}
