package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"skillforge/models"
)

var startTime = time.Now()

// Health handles GET /health.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.OkResponse(gin.H{
		"status":         "healthy",
		"uptime_seconds": int(time.Since(startTime).Seconds()),
	}, "Service is running"))
}

// ServicesStatus handles GET /services/status and reports which
// capabilities are live versus template-only.
func (h *Handler) ServicesStatus(c *gin.Context) {
	aiAvailable := h.Gen != nil
	mode := "ai"
	if !aiAvailable {
		mode = "template"
	}
	c.JSON(http.StatusOK, models.OkResponse(gin.H{
		"ai_provider_configured": aiAvailable,
		"generation_mode":        mode,
		"services": gin.H{
			"quiz_generation": "available",
			"learning_paths":  "available",
			"resume_analysis": "available",
			"ai_tutor":        mode,
		},
	}, "Service status"))
}

// ModelsInfo handles GET /models/info.
func (h *Handler) ModelsInfo(c *gin.Context) {
	model := "none"
	if h.Gen != nil {
		model = h.Gen.Model()
	}
	c.JSON(http.StatusOK, models.OkResponse(gin.H{
		"provider": "perplexity",
		"model":    model,
		"capabilities": []string{
			"quiz generation",
			"learning path planning",
			"resume insights",
			"tutoring",
		},
	}, "Model information"))
}
