package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"scorecast/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSeedsOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "data.json")

	st, err := Open(path)
	require.NoError(t, err)

	users, err := st.Users()
	require.NoError(t, err)
	assert.Len(t, users, 6)

	games, err := st.Games()
	require.NoError(t, err)
	require.Len(t, games, 2)
	for _, g := range games {
		assert.False(t, g.Released)
		assert.Nil(t, g.ActualScore)
		assert.Empty(t, g.Predictions)
	}

	// Seed file must exist on disk after Open
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestOpenKeepsExistingData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	st, err := Open(path)
	require.NoError(t, err)
	err = st.Update(func(doc *Document) error {
		doc.Users = append(doc.Users, models.User{ID: 7, Username: "newbie", Password: "pw", Role: models.RolePlayer})
		return nil
	})
	require.NoError(t, err)

	// Reopening must load the written state, not the seed
	st2, err := Open(path)
	require.NoError(t, err)
	users, err := st2.Users()
	require.NoError(t, err)
	assert.Len(t, users, 7)
}

func TestUpdateErrorChangesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	st, err := Open(path)
	require.NoError(t, err)

	boom := errors.New("boom")
	err = st.Update(func(doc *Document) error {
		doc.Users = nil
		doc.Games[0].Released = true
		return boom
	})
	assert.ErrorIs(t, err, boom)

	users, err := st.Users()
	require.NoError(t, err)
	assert.Len(t, users, 6)

	games, err := st.Games()
	require.NoError(t, err)
	assert.False(t, games[0].Released)
}

func TestReadsReturnCopies(t *testing.T) {
	st, err := Open(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)

	games, err := st.Games()
	require.NoError(t, err)
	games[0].Released = true
	games[0].Predictions = append(games[0].Predictions, models.Prediction{UserID: 1, Username: "x", Score: 50})

	fresh, err := st.Games()
	require.NoError(t, err)
	assert.False(t, fresh[0].Released)
	assert.Empty(t, fresh[0].Predictions)
}

func TestUserByCredentials(t *testing.T) {
	st, err := Open(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)

	user, err := st.UserByCredentials("player1", "player1")
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, models.RolePlayer, user.Role)

	_, err = st.UserByCredentials("player1", "wrong")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = st.UserByCredentials("Player1", "player1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOpenRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Open(path)
	assert.Error(t, err)
}
