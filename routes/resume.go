package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillforge/models"
)

// AnalyzeResume handles POST /analyze-resume.
func (h *Handler) AnalyzeResume(c *gin.Context) {
	var req models.ResumeAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request body: "+err.Error()))
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
		return
	}

	analysis := h.Resume.Analyze(c.Request.Context(), req)
	h.Log.Info("resume analyzed",
		"skills", len(analysis.Skills.Identified),
		"score", analysis.Score.Overall)
	c.JSON(http.StatusOK, models.OkResponse(analysis, "Resume analyzed successfully"))
}
