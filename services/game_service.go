package services

import (
	"time"

	"scorecast/models"
	"scorecast/store"

	"github.com/charmbracelet/log"
)

type GameService struct {
	store *store.Store
}

func NewGameService(st *store.Store) *GameService {
	return &GameService{store: st}
}

const (
	UpdateTypePrediction  = "prediction"
	UpdateTypeActualScore = "actualScore"
)

type SubmitScoreRequest struct {
	GameID int    `json:"gameId" binding:"required"`
	Score  int    `json:"score" binding:"required"`
	Type   string `json:"type" binding:"required"`
}

func (s *GameService) ListGames() ([]models.Game, error) {
	return s.store.Games()
}

// SubmitScore applies a score submission to a game: a player's prediction or
// the admin's actual score. The game must exist before the type is
// dispatched, so an unknown game is reported as not found even when the type
// is bogus.
func (s *GameService) SubmitScore(claims *Claims, req *SubmitScoreRequest) error {
	return s.store.Update(func(doc *store.Document) error {
		game := doc.GameByID(req.GameID)
		if game == nil {
			return ErrGameNotFound
		}

		switch req.Type {
		case UpdateTypePrediction:
			return s.applyPrediction(game, claims, req.Score)
		case UpdateTypeActualScore:
			return s.settle(doc, game, claims, req.Score)
		default:
			return ErrInvalidType
		}
	})
}

// applyPrediction upserts the caller's prediction on an unreleased game.
// One prediction per user per game; resubmission replaces the score.
func (s *GameService) applyPrediction(game *models.Game, claims *Claims, score int) error {
	if !claims.Role.Can(models.OpSubmitPrediction) {
		return ErrForbidden
	}
	if score < 1 || score > 100 {
		return ErrInvalidScore
	}
	if game.Released {
		return ErrAlreadyReleased
	}

	if i := game.PredictionByUser(claims.UserID); i >= 0 {
		game.Predictions[i].Score = score
		return nil
	}

	game.Predictions = append(game.Predictions, models.Prediction{
		UserID:   claims.UserID,
		Username: claims.Username,
		Score:    score,
	})
	return nil
}

// settle publishes the actual score for a game and converts every prediction
// into a score record and a total-score credit. A game settles exactly once:
// resubmitting for a released game is rejected, which keeps each user's
// total equal to the sum of their earned points. The whole settlement runs
// inside one store update, so a failure leaves the document untouched.
func (s *GameService) settle(doc *store.Document, game *models.Game, claims *Claims, actualScore int) error {
	if !claims.Role.Can(models.OpSetActualScore) {
		return ErrForbidden
	}
	if actualScore < 1 || actualScore > 100 {
		return ErrInvalidScore
	}
	if game.Released {
		return ErrAlreadyReleased
	}

	game.ActualScore = &actualScore
	game.Released = true

	now := time.Now().UTC()
	for _, p := range game.Predictions {
		points := ComputePoints(p.Score, actualScore)

		record := models.ScoreRecord{
			GameID:          game.ID,
			UserID:          p.UserID,
			Username:        p.Username,
			PredictionScore: p.Score,
			ActualScore:     actualScore,
			PointsEarned:    points,
			ScoredAt:        now,
		}
		upsertScoreRecord(doc, record)

		if user := doc.UserByID(p.UserID); user != nil {
			user.TotalScore += points
		} else {
			log.Warn("Prediction references unknown user", "game_id", game.ID, "user_id", p.UserID)
		}
	}

	log.Info("Game settled",
		"game_id", game.ID,
		"actual_score", actualScore,
		"predictions", len(game.Predictions))
	return nil
}

// upsertScoreRecord replaces the existing (game, user) record or appends a
// new one.
func upsertScoreRecord(doc *store.Document, record models.ScoreRecord) {
	for i := range doc.PlayerScores {
		existing := &doc.PlayerScores[i]
		if existing.GameID == record.GameID && existing.UserID == record.UserID {
			*existing = record
			return
		}
	}
	doc.PlayerScores = append(doc.PlayerScores, record)
}
