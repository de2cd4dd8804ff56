package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yearcompass/internal/config"
)

// GET /health
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// GET /config
func configHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Only return non-sensitive config fields
		c.JSON(http.StatusOK, gin.H{
			"server": gin.H{
				"host":    cfg.Server.Host,
				"port":    cfg.Server.Port,
				"subpath": cfg.Server.Subpath,
			},
			"ai": gin.H{
				"mock":  cfg.AI.Mock,
				"model": cfg.AI.Model,
			},
			"streaks": gin.H{
				"strict_recompute": cfg.Streaks.StrictRecompute,
			},
		})
	}
}
