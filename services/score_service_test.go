package services

import (
	"testing"
	"time"

	"scorecast/models"
	"scorecast/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedScores(t *testing.T, st *store.Store) {
	t.Helper()
	now := time.Now().UTC()
	err := st.Update(func(doc *store.Document) error {
		doc.PlayerScores = []models.ScoreRecord{
			{GameID: 1, UserID: 1, Username: "alice", PredictionScore: 80, ActualScore: 82, PointsEarned: 3, ScoredAt: now},
			{GameID: 2, UserID: 1, Username: "alice", PredictionScore: 90, ActualScore: 90, PointsEarned: 6, ScoredAt: now},
			{GameID: 1, UserID: 2, Username: "bob", PredictionScore: 85, ActualScore: 82, PointsEarned: 1, ScoredAt: now},
		}
		if u := doc.UserByID(1); u != nil {
			u.TotalScore = 9
		}
		if u := doc.UserByID(2); u != nil {
			u.TotalScore = 1
		}
		return nil
	})
	require.NoError(t, err)
}

func TestGetScoresViewPlayerSeesOwnRecords(t *testing.T) {
	st := newTestStore(t)
	seedScores(t, st)
	svc := NewScoreService(st)

	view, err := svc.GetScoresView(playerClaims(1, "alice"))
	require.NoError(t, err)

	require.Len(t, view.PlayerScores, 2)
	for _, r := range view.PlayerScores {
		assert.Equal(t, 1, r.UserID)
	}
}

func TestGetScoresViewAdminSeesEverything(t *testing.T) {
	st := newTestStore(t)
	seedScores(t, st)
	svc := NewScoreService(st)

	view, err := svc.GetScoresView(adminClaims())
	require.NoError(t, err)
	assert.Len(t, view.PlayerScores, 3)
}

func TestGetScoresViewTotals(t *testing.T) {
	st := newTestStore(t)
	seedScores(t, st)
	svc := NewScoreService(st)

	// Totals cover every player regardless of the record filter
	view, err := svc.GetScoresView(playerClaims(2, "bob"))
	require.NoError(t, err)

	totals := map[int]PlayerTotal{}
	for _, pt := range view.TotalScores {
		totals[pt.UserID] = pt
	}

	require.Len(t, totals, 3)
	assert.Equal(t, 9, totals[1].TotalScore)
	assert.Equal(t, 1, totals[2].TotalScore)
	// carol never earned points, defaults to 0
	assert.Equal(t, 0, totals[3].TotalScore)
	// admin is not on the leaderboard
	assert.NotContains(t, totals, 9)
}

func TestGetScoresViewEmptyLeague(t *testing.T) {
	st := newTestStore(t)
	svc := NewScoreService(st)

	view, err := svc.GetScoresView(playerClaims(1, "alice"))
	require.NoError(t, err)

	assert.NotNil(t, view.PlayerScores)
	assert.Empty(t, view.PlayerScores)
	for _, pt := range view.TotalScores {
		assert.Zero(t, pt.TotalScore)
	}
}
