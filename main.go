package main

import (
	"scorecast/config"
	"scorecast/handlers"
	"scorecast/middleware"
	"scorecast/routes"
	"scorecast/services"
	"scorecast/store"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", "err", err)
	}

	// Open the data store, seeding the league on first run
	st, err := store.Open(cfg.DataFile)
	if err != nil {
		log.Fatal("Failed to open data store", "err", err)
	}

	// Initialize services
	authService := services.NewAuthService(st, cfg.JWTSecret, cfg.TokenTTL)
	gameService := services.NewGameService(st)
	scoreService := services.NewScoreService(st)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	gameHandler := handlers.NewGameHandler(gameService)
	scoreHandler := handlers.NewScoreHandler(scoreService)

	// Setup Gin router
	router := gin.Default()
	router.Use(middleware.CORS())
	routes.SetupRoutes(router, authHandler, gameHandler, scoreHandler, authService)

	// Start server
	log.Info("Server starting", "listen", cfg.Listen, "data_file", cfg.DataFile)
	if err := router.Run(cfg.Listen); err != nil {
		log.Fatal("Failed to start server", "err", err)
	}
}
