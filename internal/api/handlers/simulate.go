package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/astroguard/backend/internal/config"
	"github.com/astroguard/backend/internal/elevation"
	"github.com/astroguard/backend/internal/nasa"
	"github.com/astroguard/backend/internal/observability"
	"github.com/astroguard/backend/internal/physics"
	"github.com/astroguard/backend/internal/store"
	"github.com/astroguard/backend/internal/units"
)

// simulateRequest accepts loosely typed numeric fields; external callers
// send both numbers and strings.
type simulateRequest struct {
	AsteroidID       string      `json:"asteroidId"`
	ImpactLat        interface{} `json:"impactLat"`
	ImpactLon        interface{} `json:"impactLon"`
	MitigationDeltaV interface{} `json:"mitigationDeltaV"`
}

// points flattens a trajectory into the [[x,y,z], ...] wire shape.
func points(traj []physics.Vec3) [][3]float64 {
	out := make([][3]float64, len(traj))
	for i, p := range traj {
		out[i] = [3]float64{p.X, p.Y, p.Z}
	}
	return out
}

// SimulateImpact runs the full single-impact pipeline: SBDB lookup (with
// fallback data), kinetic energy, site elevation, impact effects, and the
// original vs. deflected trajectories. When propagation fails the handler
// substitutes a fixed demo result instead of returning an error.
func SimulateImpact(nasaClient *nasa.Client, elevClient *elevation.Client, st *store.Store, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()

		var req simulateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			observability.Simulations.WithLabelValues("single", "error").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
			return
		}

		impactLat := units.ToFloat(req.ImpactLat, 34.05)
		impactLon := units.ToFloat(req.ImpactLon, -118.24)
		deltaV := units.ToFloat(req.MitigationDeltaV, 0)
		ctx := c.Request.Context()

		details, err := nasaClient.Lookup(ctx, req.AsteroidID)
		if err != nil {
			log.Printf("[SIM] SBDB failed for %s, using fallback data: %v", req.AsteroidID, err)
			details = nasa.FallbackDetails(req.AsteroidID)
		}

		energyMt := physics.KineticEnergy(details.DiameterM, details.VelocityMS)
		elev := elevClient.Lookup(ctx, impactLat, impactLon)
		effects := physics.CalculateImpactEffects(energyMt, impactLat, impactLon, elev)

		original, err := physics.Propagate(details.Elements, cfg.TrajectorySamples)
		if err != nil {
			log.Printf("[SIM] Propagation failed for %s: %v", req.AsteroidID, err)
			observability.Simulations.WithLabelValues("single", "fallback").Inc()
			c.JSON(http.StatusOK, mockSimulationResult(req.AsteroidID))
			return
		}

		deflected := original
		if deltaV > 0 {
			deflected, err = physics.Propagate(physics.Deflect(details.Elements, deltaV), cfg.TrajectorySamples)
			if err != nil {
				log.Printf("[SIM] Deflected propagation failed for %s: %v", req.AsteroidID, err)
				observability.Simulations.WithLabelValues("single", "fallback").Inc()
				c.JSON(http.StatusOK, mockSimulationResult(req.AsteroidID))
				return
			}
		}

		missKm := physics.MissDistance(original, deflected)

		if st != nil {
			saveSimulation(st, &store.SimulationRecord{
				AsteroidID:       req.AsteroidID,
				AsteroidName:     details.Name,
				ImpactLat:        impactLat,
				ImpactLon:        impactLon,
				MitigationDeltaV: deltaV,
				EnergyMt:         energyMt,
				CraterKm:         effects.CraterDiameterKm,
				SeismicMagnitude: effects.SeismicMagnitude,
				FireballKm:       effects.FireballRadiusKm,
				TsunamiRisk:      effects.TsunamiRisk,
				TargetType:       effects.TargetType,
				MissDistanceKm:   missKm,
			})
		}

		observability.Simulations.WithLabelValues("single", "ok").Inc()
		observability.SimulationDuration.Observe(time.Since(started).Seconds())

		c.JSON(http.StatusOK, gin.H{
			"success":              true,
			"impact_energy_mt":     energyMt,
			"crater_diameter_km":   effects.CraterDiameterKm,
			"tsunami_risk":         effects.TsunamiRisk,
			"seismic_magnitude":    effects.SeismicMagnitude,
			"fireball_radius_km":   effects.FireballRadiusKm,
			"target_type":          effects.TargetType,
			"original_trajectory":  points(original),
			"deflected_trajectory": points(deflected),
			"miss_distance_km":     missKm,
			"asteroid_name":        details.Name,
		})
	}
}

// saveSimulation persists a record with its own timeout so a slow
// database never delays the response path it runs after.
func saveSimulation(st *store.Store, rec *store.SimulationRecord) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := st.SaveSimulation(ctx, rec); err != nil {
			log.Printf("[DB] Failed to save simulation for %s: %v", rec.AsteroidID, err)
		}
	}()
}

// mockSimulationResult is the fixed demo payload served when the
// simulation pipeline fails.
func mockSimulationResult(asteroidID string) gin.H {
	if asteroidID == "" {
		asteroidID = "Unknown"
	}
	return gin.H{
		"success":            true,
		"impact_energy_mt":   1500,
		"crater_diameter_km": 10.5,
		"tsunami_risk":       false,
		"seismic_magnitude":  6.2,
		"fireball_radius_km": 2.1,
		"target_type":        "rock",
		"original_trajectory": [][3]float64{
			{1e11, 0, 0}, {0, 1e11, 0}, {0, 0, 1e11},
		},
		"deflected_trajectory": [][3]float64{
			{1.1e11, 0, 0}, {0, 1.1e11, 0}, {0, 0, 1.1e11},
		},
		"miss_distance_km": 1000,
		"asteroid_name":    asteroidID,
	}
}
