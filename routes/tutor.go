package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillforge/models"
)

// TutorAsk handles POST /tutor/ask. A provider outage still returns
// HTTP 200: the answer carries an error flag instead so clients can
// render the degradation.
func (h *Handler) TutorAsk(c *gin.Context) {
	var req models.TutorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request body: "+err.Error()))
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
		return
	}

	answer := h.Tutor.Ask(c.Request.Context(), req)
	h.Log.Info("tutor turn completed",
		"conversation_id", answer.ConversationID,
		"degraded", answer.Error)
	c.JSON(http.StatusOK, models.OkResponse(answer, "Question answered"))
}
