package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/astroguard/backend/internal/history"
	"github.com/astroguard/backend/internal/units"
)

// GetHistoricalImpacts returns the full reference catalog.
func GetHistoricalImpacts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"impacts": history.All(),
	})
}

// CompareToHistorical matches a simulated impact against the catalog.
func CompareToHistorical(c *gin.Context) {
	var req struct {
		EnergyMt interface{} `json:"energy_mt"`
		CraterKm interface{} `json:"crater_km"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	energyMt := units.ToFloat(req.EnergyMt, 0)
	craterKm := units.ToFloat(req.CraterKm, 0)

	result := history.ClosestComparison(energyMt, craterKm)
	if result == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid energy value",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":              true,
		"closest_impact":       result.ClosestImpact,
		"energy_ratio":         result.EnergyRatio,
		"comparison_text":      result.ComparisonText,
		"hiroshima_equivalent": result.HiroshimaEquivalent,
		"hiroshima_text":       result.HiroshimaText,
	})
}
