package handlers

import (
	"errors"
	"net/http"

	"scorecast/middleware"
	"scorecast/services"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	gameService *services.GameService
}

func NewGameHandler(gameService *services.GameService) *GameHandler {
	return &GameHandler{
		gameService: gameService,
	}
}

func (h *GameHandler) ListGames(c *gin.Context) {
	games, err := h.gameService.ListGames()
	if err != nil {
		log.Error("Failed to list games", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, games)
}

func (h *GameHandler) SubmitScore(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req services.SubmitScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Game ID and score are required"})
		return
	}

	if err := h.gameService.SubmitScore(claims, &req); err != nil {
		respondSubmitError(c, err)
		return
	}

	switch req.Type {
	case services.UpdateTypeActualScore:
		c.JSON(http.StatusOK, gin.H{"message": "Actual score updated and player scores calculated"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Prediction submitted"})
	}
}

func respondSubmitError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrGameNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Operation not allowed for this role"})
	case errors.Is(err, services.ErrInvalidScore):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Score must be between 1 and 100"})
	case errors.Is(err, services.ErrAlreadyReleased):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Game has already been released"})
	case errors.Is(err, services.ErrInvalidType):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update type"})
	default:
		log.Error("Failed to submit score", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
