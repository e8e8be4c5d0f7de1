package store

import "scorecast/models"

// seedDocument builds the initial league: five players, one admin and two
// unreleased games with empty prediction lists. Used only when the data file
// does not exist yet.
func seedDocument() *Document {
	users := []models.User{
		{ID: 1, Username: "player1", Password: "player1", Role: models.RolePlayer},
		{ID: 2, Username: "player2", Password: "player2", Role: models.RolePlayer},
		{ID: 3, Username: "player3", Password: "player3", Role: models.RolePlayer},
		{ID: 4, Username: "player4", Password: "player4", Role: models.RolePlayer},
		{ID: 5, Username: "player5", Password: "player5", Role: models.RolePlayer},
		{ID: 6, Username: "admin", Password: "admin", Role: models.RoleAdmin},
	}

	games := []models.Game{
		{
			ID:          1,
			Title:       "DOOM: The Dark Ages",
			CoverArt:    "/images/doom.jpg",
			ReleaseDate: "2025-06-15",
			Predictions: []models.Prediction{},
		},
		{
			ID:          2,
			Title:       "Elden Ring: Nightreign",
			CoverArt:    "/images/elden-ring.jpg",
			ReleaseDate: "2025-07-22",
			Predictions: []models.Prediction{},
		},
	}

	return &Document{
		Users:        users,
		Games:        games,
		PlayerScores: []models.ScoreRecord{},
	}
}
