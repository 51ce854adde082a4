package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillforge/models"
)

// GenerateLearningPath handles POST /generate-learning-path.
func (h *Handler) GenerateLearningPath(c *gin.Context) {
	var req models.LearningPathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request body: "+err.Error()))
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
		return
	}

	path := h.Paths.Generate(c.Request.Context(), req)
	h.Log.Info("learning path generated",
		"goal", req.Goal,
		"modules", path.TotalModules,
		"generated_by", path.GeneratedBy)
	c.JSON(http.StatusOK, models.OkResponse(path, "Learning path generated successfully"))
}
