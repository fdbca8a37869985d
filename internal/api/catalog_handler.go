package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/courtlab/racketfit/internal/models"
	"github.com/courtlab/racketfit/internal/repository"
	"github.com/courtlab/racketfit/internal/services"
)

// CatalogHandler handles admin racket catalog operations
type CatalogHandler struct {
	catalogService services.CatalogService
}

// NewCatalogHandler creates a new catalog handler with service injection
func NewCatalogHandler(catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// GetRackets lists catalog entries with optional filters
func (h *CatalogHandler) GetRackets(c *gin.Context) {
	filters := repository.RacketFilters{
		Brand:      c.Query("brand"),
		ActiveOnly: c.Query("active") == "true",
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil {
		filters.Limit = limit
	}
	if offset, err := strconv.Atoi(c.Query("offset")); err == nil {
		filters.Offset = offset
	}

	rackets, err := h.catalogService.GetAll(filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list rackets: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rackets":   rackets,
		"count":     len(rackets),
		"timestamp": time.Now(),
	})
}

// GetRacket returns a single catalog entry
func (h *CatalogHandler) GetRacket(c *gin.Context) {
	id, err := parseRacketID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid racket ID"})
		return
	}

	racket, err := h.catalogService.GetByID(id)
	if err != nil {
		if err == repository.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Racket not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get racket: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"racket": racket})
}

// CreateRacket creates a new catalog entry
func (h *CatalogHandler) CreateRacket(c *gin.Context) {
	var form models.RacketForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	racket, err := h.catalogService.Create(&form)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Racket created successfully",
		"racket":  racket,
	})
}

// UpdateRacket applies a partial update to a catalog entry
func (h *CatalogHandler) UpdateRacket(c *gin.Context) {
	id, err := parseRacketID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid racket ID"})
		return
	}

	var form models.RacketForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	racket, err := h.catalogService.Update(id, &form)
	if err != nil {
		if err == repository.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Racket not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Racket updated successfully",
		"racket":  racket,
	})
}

// DeleteRacket removes a catalog entry
func (h *CatalogHandler) DeleteRacket(c *gin.Context) {
	id, err := parseRacketID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid racket ID"})
		return
	}

	if err := h.catalogService.Delete(id); err != nil {
		if err == repository.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Racket not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete racket: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Racket deleted successfully"})
}

func parseRacketID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
