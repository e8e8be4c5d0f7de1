package services

import (
	"scorecast/models"
	"scorecast/store"
)

type ScoreService struct {
	store *store.Store
}

func NewScoreService(st *store.Store) *ScoreService {
	return &ScoreService{store: st}
}

type PlayerTotal struct {
	UserID     int    `json:"userId"`
	Username   string `json:"username"`
	TotalScore int    `json:"totalScore"`
}

type ScoresView struct {
	PlayerScores []models.ScoreRecord `json:"playerScores"`
	TotalScores  []PlayerTotal        `json:"totalScores"`
}

// GetScoresView assembles the score history and the leaderboard totals.
// Players only see their own score records; admins see everyone's. The
// totals always cover every player regardless of the history filter, with
// players who never earned points listed at 0. Sorting is left to the
// presentation layer.
func (s *ScoreService) GetScoresView(claims *Claims) (*ScoresView, error) {
	records, err := s.store.PlayerScores()
	if err != nil {
		return nil, err
	}
	users, err := s.store.Users()
	if err != nil {
		return nil, err
	}

	filtered := records
	if !claims.Role.Can(models.OpViewAllScores) {
		filtered = make([]models.ScoreRecord, 0, len(records))
		for _, r := range records {
			if r.UserID == claims.UserID {
				filtered = append(filtered, r)
			}
		}
	}
	if filtered == nil {
		filtered = []models.ScoreRecord{}
	}

	totals := make([]PlayerTotal, 0, len(users))
	for _, u := range users {
		if u.Role != models.RolePlayer {
			continue
		}
		totals = append(totals, PlayerTotal{
			UserID:     u.ID,
			Username:   u.Username,
			TotalScore: u.TotalScore,
		})
	}

	return &ScoresView{
		PlayerScores: filtered,
		TotalScores:  totals,
	}, nil
}
