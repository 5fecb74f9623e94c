package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// registerHealthRoutes registers health check endpoints.
func registerHealthRoutes(r *gin.Engine, h *handler) {
	r.GET("/api/health", h.handleHealth)
}

func (h *handler) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"bankVersion": h.engine.BankVersion(),
		"cache":       h.cache != nil,
	})
}
