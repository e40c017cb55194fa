package api

import (
	"github.com/gin-gonic/gin"

	"github.com/astroguard/backend/internal/api/handlers"
	"github.com/astroguard/backend/internal/auth"
	"github.com/astroguard/backend/internal/cache"
	"github.com/astroguard/backend/internal/config"
	"github.com/astroguard/backend/internal/elevation"
	"github.com/astroguard/backend/internal/nasa"
	"github.com/astroguard/backend/internal/observability"
	"github.com/astroguard/backend/internal/store"
	"github.com/astroguard/backend/internal/ws"
)

// SetupRoutes wires every endpoint onto the router. st may be nil when
// no database is configured; the admin history endpoint reports that.
func SetupRoutes(
	router *gin.Engine,
	nasaClient *nasa.Client,
	elevClient *elevation.Client,
	st *store.Store,
	cc cache.Cache,
	hub *ws.Hub,
	cfg *config.Config,
) {
	router.GET("/health", handlers.HealthCheck)
	router.GET("/metrics", gin.WrapH(observability.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", handlers.HealthCheck)

		v1.GET("/asteroids", handlers.GetAsteroids(nasaClient))
		v1.GET("/asteroid/:id", handlers.GetAsteroidDetails(nasaClient))

		v1.GET("/elevation", handlers.GetElevation(elevClient))

		v1.POST("/simulate", handlers.SimulateImpact(nasaClient, elevClient, st, cfg))
		v1.POST("/simulate/multi", handlers.SimulateMultiImpact(cfg))

		v1.GET("/historical-impacts", handlers.GetHistoricalImpacts)
		v1.POST("/historical-impacts/compare", handlers.CompareToHistorical)

		v1.GET("/neo/close-approaches", handlers.GetCloseApproaches(nasaClient))
		v1.GET("/neo/live", func(c *gin.Context) {
			hub.ServeFeed(c.Writer, c.Request)
		})

		v1.POST("/auth/token", handlers.IssueToken(cfg))

		admin := v1.Group("/admin")
		admin.Use(auth.RequireAdmin(cfg))
		{
			admin.POST("/cache/flush", handlers.FlushCache(cc))
			admin.GET("/simulations", handlers.RecentSimulations(st, cfg))
		}
	}
}
