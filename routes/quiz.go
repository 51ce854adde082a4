package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillforge/models"
)

// GenerateQuiz handles POST /generate-quiz. Generation itself cannot
// fail: only an invalid request produces an error response.
func (h *Handler) GenerateQuiz(c *gin.Context) {
	var req models.QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request body: "+err.Error()))
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
		return
	}

	quiz := h.Quiz.Generate(c.Request.Context(), req)
	h.Log.Info("quiz generated",
		"topic", req.Topic,
		"questions", quiz.TotalQuestions,
		"generated_by", quiz.GeneratedBy)
	c.JSON(http.StatusOK, models.OkResponse(quiz, "Quiz generated successfully"))
}
