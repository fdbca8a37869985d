package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/courtlab/racketfit/internal/services"
)

// HistoryHandler handles admin recommendation-history listings
type HistoryHandler struct {
	historyService services.HistoryService
}

// NewHistoryHandler creates a new history handler with service injection
func NewHistoryHandler(historyService services.HistoryService) *HistoryHandler {
	return &HistoryHandler{
		historyService: historyService,
	}
}

// queryLimit reads the limit query parameter, 0 when absent or invalid.
// The repository clamps the final value.
func queryLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		return 0
	}
	return limit
}

// GetHandMeasurements lists recent hand measurements
func (h *HistoryHandler) GetHandMeasurements(c *gin.Context) {
	measurements, err := h.historyService.ListHandMeasurements(queryLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list hand measurements: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"measurements": measurements,
		"count":        len(measurements),
		"timestamp":    time.Now(),
	})
}

// GetSurveyResponses lists recent survey responses
func (h *HistoryHandler) GetSurveyResponses(c *gin.Context) {
	surveys, err := h.historyService.ListSurveyResponses(queryLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list survey responses: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"surveys":   surveys,
		"count":     len(surveys),
		"timestamp": time.Now(),
	})
}

// GetRecommendationLogs lists recent recommendation log rows, optionally
// filtered by racket
func (h *HistoryHandler) GetRecommendationLogs(c *gin.Context) {
	limit := queryLimit(c)

	if racketParam := c.Query("racketId"); racketParam != "" {
		racketID, err := strconv.ParseInt(racketParam, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid racket ID"})
			return
		}

		logs, err := h.historyService.ListLogsByRacket(racketID, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list recommendation logs: " + err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"logs":      logs,
			"count":     len(logs),
			"timestamp": time.Now(),
		})
		return
	}

	logs, err := h.historyService.ListLogs(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list recommendation logs: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"logs":      logs,
		"count":     len(logs),
		"timestamp": time.Now(),
	})
}
