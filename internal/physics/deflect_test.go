package physics

import (
	"math"
	"testing"
)

func TestDeflectZeroDeltaVIsIdentity(t *testing.T) {
	el := OrbitalElements{A: 1.5e11, E: 0.1, I: 0.2, Omega: 0.3, W: 0.4, M: 0.5}

	deflected := Deflect(el, 0)
	if math.Abs(deflected.A-el.A)/el.A > 1e-12 {
		t.Errorf("deltaV=0 changed semi-major axis: %v -> %v", el.A, deflected.A)
	}

	// Trajectories must match within floating tolerance.
	orig, err := Propagate(el, 100)
	if err != nil {
		t.Fatalf("Propagate original: %v", err)
	}
	defl, err := Propagate(deflected, 100)
	if err != nil {
		t.Fatalf("Propagate deflected: %v", err)
	}
	if miss := MissDistance(orig, defl); miss > 1e-3 {
		t.Errorf("deltaV=0 produced miss distance %v km, want ~0", miss)
	}
}

func TestDeflectDoesNotMutateInput(t *testing.T) {
	el := OrbitalElements{A: 1.5e11, E: 0.1, I: 0.2, Omega: 0.3, W: 0.4, M: 0.5}
	before := el

	Deflect(el, 500)
	if el != before {
		t.Errorf("Deflect mutated its input: %+v -> %+v", before, el)
	}
}

func TestDeflectBurnReshapesAxis(t *testing.T) {
	// In this simplified model a' = mu/(v+dv)^2, so a prograde burn
	// reduces the derived semi-major axis and a retrograde burn raises it.
	el := OrbitalElements{A: 1.5e11, E: 0.1}

	prograde := Deflect(el, 1000)
	if prograde.A >= el.A {
		t.Errorf("prograde burn did not change axis: %v -> %v", el.A, prograde.A)
	}

	retrograde := Deflect(el, -1000)
	if retrograde.A <= el.A {
		t.Errorf("retrograde burn did not change axis: %v -> %v", el.A, retrograde.A)
	}
}

func TestDeflectOpensMissDistance(t *testing.T) {
	el := OrbitalElements{A: 1.5e11, E: 0.1, I: 0.05, M: 0.2}

	orig, err := Propagate(el, 100)
	if err != nil {
		t.Fatalf("Propagate original: %v", err)
	}
	defl, err := Propagate(Deflect(el, 100), 100)
	if err != nil {
		t.Fatalf("Propagate deflected: %v", err)
	}

	if miss := MissDistance(orig, defl); miss <= 0 {
		t.Errorf("100 m/s burn produced no miss distance")
	}
}

func TestDeflectRejectsBurnBeyondOrbitalSpeed(t *testing.T) {
	el := OrbitalElements{A: 1.5e11, E: 0.1}
	vOrbital := math.Sqrt(G * EarthMass / el.A)

	deflected := Deflect(el, -2*vOrbital)
	if deflected != el {
		t.Errorf("burn past standstill should return elements unchanged, got %+v", deflected)
	}
}
