package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/astroguard/backend/internal/elevation"
	"github.com/astroguard/backend/internal/units"
)

// GetElevation resolves the terrain elevation for an impact site.
func GetElevation(elevClient *elevation.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		latStr := c.Query("lat")
		lonStr := c.Query("lon")
		if latStr == "" || lonStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Latitude and longitude required"})
			return
		}

		lat := units.ToFloat(latStr, 0)
		lon := units.ToFloat(lonStr, 0)

		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"elevation": elevClient.Lookup(c.Request.Context(), lat, lon),
		})
	}
}
