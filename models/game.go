package models

// Game is an upcoming (or released) title players predict review scores for.
// Released transitions false to true exactly once, when the admin submits the
// actual score; ActualScore stays nil until then.
type Game struct {
	ID          int          `json:"id"`
	Title       string       `json:"title"`
	CoverArt    string       `json:"coverArt"`
	ReleaseDate string       `json:"releaseDate"`
	Released    bool         `json:"released"`
	ActualScore *int         `json:"actualScore"`
	Predictions []Prediction `json:"predictions"`
}

// Prediction is one player's forecasted review score for a game, at most one
// per user per game. Resubmitting replaces the score in place.
type Prediction struct {
	UserID   int    `json:"userId"`
	Username string `json:"username"`
	Score    int    `json:"score"`
}

// PredictionByUser returns the index of the user's prediction on the game,
// or -1 if they have not predicted yet.
func (g *Game) PredictionByUser(userID int) int {
	for i, p := range g.Predictions {
		if p.UserID == userID {
			return i
		}
	}
	return -1
}
