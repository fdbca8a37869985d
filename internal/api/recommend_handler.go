package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/courtlab/racketfit/internal/services"
)

// RecommendHandler handles the public recommendation endpoint
type RecommendHandler struct {
	recommendService services.RecommendService
}

// NewRecommendHandler creates a new recommendation handler
func NewRecommendHandler(recommendService services.RecommendService) *RecommendHandler {
	return &RecommendHandler{
		recommendService: recommendService,
	}
}

// Recommend runs a recommendation from hand metrics and survey answers.
// Two payload shapes are accepted:
//
//	{ "handMetrics": {...}, "survey": {...} }
//	{ "handLengthMm": ..., ..., "survey": {...} }
//
// In the second shape every top-level key except "survey" is treated as
// a hand metric.
func (h *RecommendHandler) Recommend(c *gin.Context) {
	payload := map[string]interface{}{}
	if err := c.ShouldBindJSON(&payload); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	req := splitRecommendPayload(payload)

	resp, err := h.recommendService.Recommend(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute recommendation: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// splitRecommendPayload separates the survey section from the hand
// metrics, supporting both the nested and the flattened payload shape.
func splitRecommendPayload(payload map[string]interface{}) *services.RecommendRequest {
	req := &services.RecommendRequest{}
	if payload == nil {
		return req
	}

	if survey, ok := payload["survey"].(map[string]interface{}); ok {
		req.Survey = survey
	}

	if metrics, ok := payload["handMetrics"].(map[string]interface{}); ok {
		req.HandMetrics = metrics
		return req
	}

	// Flattened shape: everything except the survey is a hand metric
	metrics := map[string]interface{}{}
	for k, v := range payload {
		if k == "survey" {
			continue
		}
		metrics[k] = v
	}
	req.HandMetrics = metrics

	return req
}
