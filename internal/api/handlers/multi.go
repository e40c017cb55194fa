package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/astroguard/backend/internal/config"
	"github.com/astroguard/backend/internal/observability"
	"github.com/astroguard/backend/internal/physics"
	"github.com/astroguard/backend/internal/units"
)

// displayColors cycle across events for frontend rendering.
var displayColors = []string{"#ef4444", "#f59e0b", "#10b981", "#3b82f6", "#8b5cf6"}

type multiAsteroidParams struct {
	AsteroidID       string      `json:"asteroidId"`
	Name             string      `json:"name"`
	ImpactLat        interface{} `json:"impactLat"`
	ImpactLon        interface{} `json:"impactLon"`
	MitigationDeltaV interface{} `json:"mitigationDeltaV"`
	DiameterKm       interface{} `json:"diameter"`
	VelocityKms      interface{} `json:"velocity"`
}

type multiSimulateRequest struct {
	Asteroids []multiAsteroidParams `json:"asteroids"`
}

// SimulateMultiImpact runs 1-5 simultaneous impact scenarios and combines
// their effects. Each event gets synthetic orbital elements spread by
// index so the rendered trajectories do not overlap.
func SimulateMultiImpact(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()

		var req multiSimulateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			observability.Simulations.WithLabelValues("multi", "error").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
			return
		}

		if len(req.Asteroids) < 1 || len(req.Asteroids) > physics.MaxSimultaneousImpacts {
			observability.Simulations.WithLabelValues("multi", "error").Inc()
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Please provide 1-5 asteroids",
			})
			return
		}

		allResults := make([]gin.H, 0, len(req.Asteroids))
		allTrajectories := make([]gin.H, 0, len(req.Asteroids))
		allEffects := make([]physics.ImpactEffects, 0, len(req.Asteroids))

		for idx, params := range req.Asteroids {
			asteroidID := params.AsteroidID
			if asteroidID == "" {
				asteroidID = fmt.Sprintf("asteroid-%d", idx)
			}
			name := params.Name
			if name == "" {
				name = asteroidID
			}

			impactLat := units.ToFloat(params.ImpactLat, 34.05+float64(idx)*10)
			impactLon := units.ToFloat(params.ImpactLon, -118.24+float64(idx)*15)
			deltaV := units.ToFloat(params.MitigationDeltaV, 0)
			diameterM := units.KmToMeters(params.DiameterKm, 0.1)
			velocityMS := units.KmsToMs(params.VelocityKms, 20)

			energyMt := physics.KineticEnergy(diameterM, velocityMS)

			// Multi-impact sites skip the elevation lookup and assume
			// sea-level rock.
			effects := physics.CalculateImpactEffects(energyMt, impactLat, impactLon, 0)
			allEffects = append(allEffects, effects)

			elements := physics.OrbitalElements{
				A:     1.5e11 + float64(idx)*0.2e11,
				E:     0.1 + float64(idx)*0.05,
				I:     0.1 * float64(idx),
				Omega: 0.5 * float64(idx),
				W:     0.3 * float64(idx),
				M:     0.2 * float64(idx),
			}

			original, err := physics.Propagate(elements, cfg.TrajectorySamples)
			if err != nil {
				log.Printf("[SIM] Multi propagation failed at index %d: %v", idx, err)
				observability.Simulations.WithLabelValues("multi", "error").Inc()
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
				return
			}
			deflected := original
			if deltaV > 0 {
				deflected, err = physics.Propagate(physics.Deflect(elements, deltaV), cfg.TrajectorySamples)
				if err != nil {
					log.Printf("[SIM] Multi deflected propagation failed at index %d: %v", idx, err)
					observability.Simulations.WithLabelValues("multi", "error").Inc()
					c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
					return
				}
			}

			color := displayColors[idx%len(displayColors)]
			allResults = append(allResults, gin.H{
				"asteroid_id":        asteroidID,
				"asteroid_name":      name,
				"impact_lat":         impactLat,
				"impact_lon":         impactLon,
				"impact_energy_mt":   energyMt,
				"crater_diameter_km": effects.CraterDiameterKm,
				"tsunami_risk":       effects.TsunamiRisk,
				"seismic_magnitude":  effects.SeismicMagnitude,
				"fireball_radius_km": effects.FireballRadiusKm,
				"target_type":        effects.TargetType,
				"color":              color,
			})
			allTrajectories = append(allTrajectories, gin.H{
				"asteroid_id":          asteroidID,
				"color":                color,
				"original_trajectory":  points(original),
				"deflected_trajectory": points(deflected),
			})
		}

		combined, err := physics.CalculateCombinedEffects(allEffects)
		if err != nil {
			observability.Simulations.WithLabelValues("multi", "error").Inc()
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}

		observability.Simulations.WithLabelValues("multi", "ok").Inc()
		observability.SimulationDuration.Observe(time.Since(started).Seconds())

		c.JSON(http.StatusOK, gin.H{
			"success":            true,
			"individual_results": allResults,
			"trajectories":       allTrajectories,
			"combined_effects":   combined,
		})
	}
}
