package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"press-maintenance-backend/internal/mw"
)

// RouterConfig carries the limits applied to the /api group.
type RouterConfig struct {
	RateLimitPerSec float64
	RateLimitBurst  int
}

// NewRouter creates and configures a new Gin router.
func NewRouter(h *Handler, cfg RouterConfig) *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)

	// API group
	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.GET("/machines", h.ListMachines)
		api.POST("/machines", h.CreateMachine)
		api.GET("/machines/:id", h.GetMachine)
		api.PUT("/machines/:id", h.UpdateMachine)
		api.DELETE("/machines/:id", h.DeleteMachine)

		api.GET("/maintenance", h.ListMaintenance)
		api.POST("/maintenance", h.CreateMaintenance)
		api.GET("/maintenance/:id", h.GetMaintenance)
		api.PUT("/maintenance/:id", h.UpdateMaintenance)
		api.DELETE("/maintenance/:id", h.DeleteMaintenance)

		api.GET("/statistics", h.GetStatistics)
		api.GET("/reports/machines", h.PrintMachines)
		api.GET("/reports/maintenance", h.PrintMaintenance)
		api.GET("/reports/statistics", h.PrintStatistics)
	}

	return r
}
