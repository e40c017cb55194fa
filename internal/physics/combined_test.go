package physics

import (
	"math"
	"testing"
)

func TestCombinedEffectsRejectsBadCounts(t *testing.T) {
	if _, err := CalculateCombinedEffects(nil); err == nil {
		t.Errorf("empty event list should be rejected")
	}
	six := make([]ImpactEffects, 6)
	if _, err := CalculateCombinedEffects(six); err == nil {
		t.Errorf("six events should be rejected")
	}
}

func TestCombinedEffectsSingleEventIsIdentity(t *testing.T) {
	ev := CalculateImpactEffects(50, 0, 0, -3000)

	combined, err := CalculateCombinedEffects([]ImpactEffects{ev})
	if err != nil {
		t.Fatalf("CalculateCombinedEffects: %v", err)
	}

	if combined.TotalEnergyMt != ev.EnergyMegatons {
		t.Errorf("total energy %v, want %v", combined.TotalEnergyMt, ev.EnergyMegatons)
	}
	if combined.MaxCraterKm != ev.CraterDiameterKm {
		t.Errorf("max crater %v, want %v", combined.MaxCraterKm, ev.CraterDiameterKm)
	}
	if combined.MaxFireballKm != ev.FireballRadiusKm {
		t.Errorf("max fireball %v, want %v", combined.MaxFireballKm, ev.FireballRadiusKm)
	}
	if combined.TsunamiRisk != ev.TsunamiRisk {
		t.Errorf("tsunami %v, want %v", combined.TsunamiRisk, ev.TsunamiRisk)
	}
	if math.Abs(combined.CombinedSeismic-ev.SeismicMagnitude) > 1e-9 {
		t.Errorf("combined seismic %v, want %v", combined.CombinedSeismic, ev.SeismicMagnitude)
	}
	if combined.ImpactCount != 1 {
		t.Errorf("impact count %d, want 1", combined.ImpactCount)
	}
}

func TestCombinedSeismicLogarithmicSubAdditivity(t *testing.T) {
	ev := CalculateImpactEffects(100, 0, 0, 200)

	combined, err := CalculateCombinedEffects([]ImpactEffects{ev, ev})
	if err != nil {
		t.Fatalf("CalculateCombinedEffects: %v", err)
	}

	if combined.CombinedSeismic <= ev.SeismicMagnitude {
		t.Errorf("two equal events should exceed one: %v <= %v", combined.CombinedSeismic, ev.SeismicMagnitude)
	}
	if combined.CombinedSeismic >= 2*ev.SeismicMagnitude {
		t.Errorf("magnitudes are logarithmic, sum must stay below double: %v >= %v", combined.CombinedSeismic, 2*ev.SeismicMagnitude)
	}

	// Doubling the moment raises magnitude by log10(2)/1.5.
	want := ev.SeismicMagnitude + math.Log10(2)/1.5
	if math.Abs(combined.CombinedSeismic-want) > 1e-9 {
		t.Errorf("combined seismic %v, want %v", combined.CombinedSeismic, want)
	}
}

func TestCombinedCraterArea(t *testing.T) {
	events := []ImpactEffects{
		{CraterDiameterKm: 10, EnergyMegatons: 100, SeismicMagnitude: 5},
		{CraterDiameterKm: 20, EnergyMegatons: 200, SeismicMagnitude: 6},
	}

	combined, err := CalculateCombinedEffects(events)
	if err != nil {
		t.Fatalf("CalculateCombinedEffects: %v", err)
	}

	want := math.Pi*5*5 + math.Pi*10*10
	if math.Abs(combined.TotalCraterAreaKm2-want) > 1e-9 {
		t.Errorf("total crater area %v, want %v", combined.TotalCraterAreaKm2, want)
	}
	if combined.MaxCraterKm != 20 {
		t.Errorf("max crater %v, want 20", combined.MaxCraterKm)
	}
	if combined.TotalEnergyMt != 300 {
		t.Errorf("total energy %v, want 300", combined.TotalEnergyMt)
	}
}

func TestCombinedTsunamiIsUnion(t *testing.T) {
	events := []ImpactEffects{
		{EnergyMegatons: 5, SeismicMagnitude: 4},
		{EnergyMegatons: 50, SeismicMagnitude: 5, TsunamiRisk: true},
		{EnergyMegatons: 1, SeismicMagnitude: 3},
	}

	combined, err := CalculateCombinedEffects(events)
	if err != nil {
		t.Fatalf("CalculateCombinedEffects: %v", err)
	}
	if !combined.TsunamiRisk {
		t.Errorf("any tsunami-positive event should set combined risk")
	}
	if combined.ImpactCount != 3 {
		t.Errorf("impact count %d, want 3", combined.ImpactCount)
	}
}
