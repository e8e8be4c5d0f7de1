package routes

import (
	"net/http"

	"scorecast/handlers"
	"scorecast/middleware"
	"scorecast/services"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	gameHandler *handlers.GameHandler,
	scoreHandler *handlers.ScoreHandler,
	authService *services.AuthService,
) {
	// Login is the only public endpoint
	router.POST("/auth", authHandler.Login)

	protected := router.Group("/")
	protected.Use(middleware.RequireAuth(authService))
	{
		protected.GET("/games", gameHandler.ListGames)
		protected.POST("/games", gameHandler.SubmitScore)
		protected.GET("/scores", scoreHandler.GetScores)
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
