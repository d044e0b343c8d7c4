package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health reports process liveness.
// GET /health
func (h Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DBCheck pings the store so deploys can verify connectivity.
// GET /db-check
func (h Handlers) DBCheck(c *gin.Context) {
	if h.DB == nil {
		RespondError(c, http.StatusServiceUnavailable, "database not configured", nil)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.DB.PingContext(ctx); err != nil {
		RespondError(c, http.StatusServiceUnavailable, "database unreachable", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
