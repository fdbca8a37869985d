package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/courtlab/racketfit/internal/database"
)

// HealthHandler reports service and database health
type HealthHandler struct {
	db *database.DB
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *database.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// GetHealth returns overall service health
func (h *HealthHandler) GetHealth(c *gin.Context) {
	status := "ok"
	dbStatus := "ok"

	if err := h.db.HealthCheck(); err != nil {
		status = "degraded"
		dbStatus = "unavailable"
	}

	code := http.StatusOK
	if status != "ok" {
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":    status,
		"database":  dbStatus,
		"timestamp": time.Now(),
	})
}
