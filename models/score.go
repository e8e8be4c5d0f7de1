package models

import "time"

// ScoreRecord is the settled outcome of one prediction: what the player
// predicted, what the game actually scored, and the points awarded. There is
// at most one record per (game, user).
type ScoreRecord struct {
	GameID          int       `json:"gameId"`
	UserID          int       `json:"userId"`
	Username        string    `json:"username"`
	PredictionScore int       `json:"predictionScore"`
	ActualScore     int       `json:"actualScore"`
	PointsEarned    int       `json:"pointsEarned"`
	ScoredAt        time.Time `json:"scoredAt"`
}
