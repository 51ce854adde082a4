package main

import (
	"log"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"skillforge/config"
	"skillforge/logger"
	"skillforge/middlewares"
	"skillforge/routes"
	"skillforge/services"
)

func main() {
	cfg, err := config.LoadConfig("./config/config.yml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	lg, err := logger.New(cfg.Server.Mode)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer lg.Sync()

	// A missing API key is not fatal: every service degrades to its
	// template fallback and /services/status reports the mode.
	var gen services.TextGenerator
	client, err := services.NewPerplexityClient(cfg.Perplexity, services.DefaultBackoff(), lg)
	if err != nil {
		lg.Warn("AI provider not configured, running in template mode", "error", err)
	} else {
		gen = client
	}

	handler := &routes.Handler{
		Quiz:   services.NewQuizGenerator(gen, lg),
		Paths:  services.NewPathGenerator(gen, lg),
		Resume: services.NewResumeAnalyzer(gen, lg),
		Tutor:  services.NewTutor(gen, services.NewMemoryConversationStore(), lg),
		Gen:    gen,
		Log:    lg,
	}

	router := setupRouter(cfg, handler)
	port := strconv.Itoa(cfg.Server.Port)
	lg.Info("server starting", "port", port, "mode", cfg.Server.Mode)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(cfg *config.Config, handler *routes.Handler) *gin.Engine {
	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	origins := cfg.Cors.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:5173"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	router.OPTIONS("/*path", func(c *gin.Context) { c.Status(204) })

	limiter := middlewares.NewRateLimiter(middlewares.DefaultRateLimitConfig())
	handler.Register(router, limiter.Middleware())
	return router
}
