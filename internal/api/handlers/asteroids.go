package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/astroguard/backend/internal/nasa"
)

// GetAsteroids lists potentially hazardous asteroids from the Sentry risk
// feed.
func GetAsteroids(nasaClient *nasa.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		asteroids, err := nasaClient.PotentiallyHazardous(c.Request.Context())
		if err != nil {
			log.Printf("[NASA] Sentry list failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"asteroids": asteroids,
		})
	}
}

// GetAsteroidDetails returns the SI-normalized orbital elements for a
// specific asteroid designation.
func GetAsteroidDetails(nasaClient *nasa.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		designation := c.Param("id")

		details, err := nasaClient.Lookup(c.Request.Context(), designation)
		if err != nil {
			log.Printf("[NASA] SBDB lookup failed for %s: %v", designation, err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":          true,
			"orbital_elements": details.Elements,
			"name":             details.Name,
		})
	}
}
