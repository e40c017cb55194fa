package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/astroguard/backend/internal/auth"
	"github.com/astroguard/backend/internal/cache"
	"github.com/astroguard/backend/internal/config"
	"github.com/astroguard/backend/internal/store"
)

// IssueToken exchanges the admin password for a short-lived JWT.
func IssueToken(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Password is required"})
			return
		}

		if !auth.CheckAdminPassword(cfg, req.Password) {
			log.Println("[AUTH] admin login rejected")
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid credentials"})
			return
		}

		token, expiresAt, err := auth.IssueAdminToken(cfg)
		if err != nil {
			log.Printf("[AUTH] token issue failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Could not issue token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"token":      token,
			"expires_at": expiresAt.UTC(),
		})
	}
}

// FlushCache clears every cached upstream response.
func FlushCache(cc cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := cc.Clear(); err != nil {
			log.Printf("[ADMIN] cache flush failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Cache flush failed"})
			return
		}
		log.Println("[ADMIN] cache flushed")
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cache cleared"})
	}
}

// RecentSimulations lists the most recent persisted simulation runs.
func RecentSimulations(st *store.Store, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if st == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"success": false,
				"error":   "Simulation history is not enabled",
			})
			return
		}

		records, err := st.RecentSimulations(c.Request.Context(), cfg.SimHistoryPageSize)
		if err != nil {
			log.Printf("[ADMIN] history query failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Could not load history"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":     true,
			"count":       len(records),
			"simulations": records,
		})
	}
}
