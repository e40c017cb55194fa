package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/astroguard/backend/internal/nasa"
)

// GetCloseApproaches serves the upcoming close-approach feed. When the
// upstream NeoWs API is unreachable a demo feed is returned so the
// endpoint stays usable offline.
func GetCloseApproaches(nasaClient *nasa.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		feed, err := nasaClient.CloseApproaches(c.Request.Context())
		if err != nil {
			log.Printf("[NEO] feed fetch failed, serving demo data: %v", err)
			feed = nasa.DemoCloseApproaches()
		}

		c.JSON(http.StatusOK, gin.H{
			"success":          true,
			"count":            len(feed.Approaches),
			"start_date":       feed.StartDate,
			"end_date":         feed.EndDate,
			"close_approaches": feed.Approaches,
		})
	}
}
