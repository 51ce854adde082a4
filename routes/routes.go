package routes

import (
	"github.com/gin-gonic/gin"

	"skillforge/logger"
	"skillforge/services"
)

// Handler wires the generation services to the HTTP surface.
type Handler struct {
	Quiz   *services.QuizGenerator
	Paths  *services.PathGenerator
	Resume *services.ResumeAnalyzer
	Tutor  *services.Tutor
	Gen    services.TextGenerator
	Log    *logger.Logger
}

// Register mounts all endpoints. The generation endpoints take the
// supplied middleware (rate limiting); status endpoints stay open.
func (h *Handler) Register(r *gin.Engine, generationMiddleware ...gin.HandlerFunc) {
	r.GET("/health", h.Health)
	r.GET("/services/status", h.ServicesStatus)
	r.GET("/models/info", h.ModelsInfo)

	g := r.Group("/", generationMiddleware...)
	g.POST("/generate-quiz", h.GenerateQuiz)
	g.POST("/generate-learning-path", h.GenerateLearningPath)
	g.POST("/analyze-resume", h.AnalyzeResume)
	g.POST("/tutor/ask", h.TutorAsk)
}
