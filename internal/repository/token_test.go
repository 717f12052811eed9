package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/model"
)

func TestTokenRepository_CreateAndByUser(t *testing.T) {
	conn := newTestDB(t)
	createUser(t, NewUserRepository(conn), "alice", "a@b.co")
	repo := NewTokenRepository(conn)

	created := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	require.NoError(t, repo.Create(&model.Token{Username: "alice", Email: "a@b.co", Token: "abc", CreatedAt: created}))

	tok, err := repo.ByUser("alice", "a@b.co")
	require.NoError(t, err)
	assert.Equal(t, "abc", tok.Token)
	assert.True(t, created.Equal(tok.CreatedAt))
}

func TestTokenRepository_OneRowPerUser(t *testing.T) {
	conn := newTestDB(t)
	createUser(t, NewUserRepository(conn), "alice", "a@b.co")
	repo := NewTokenRepository(conn)

	require.NoError(t, repo.Create(&model.Token{Username: "alice", Email: "a@b.co", Token: "first"}))

	err := repo.Create(&model.Token{Username: "alice", Email: "a@b.co", Token: "second"})
	assert.ErrorIs(t, err, ErrDuplicateToken)

	require.NoError(t, repo.Replace(&model.Token{Username: "alice", Email: "a@b.co", Token: "third"}))

	var count int
	require.NoError(t, conn.Get(&count, `SELECT COUNT(*) FROM tokens`))
	assert.Equal(t, 1, count)

	tok, err := repo.ByUser("alice", "a@b.co")
	require.NoError(t, err)
	assert.Equal(t, "third", tok.Token)
}

func TestTokenRepository_DeleteByUser(t *testing.T) {
	conn := newTestDB(t)
	createUser(t, NewUserRepository(conn), "alice", "a@b.co")
	repo := NewTokenRepository(conn)

	require.NoError(t, repo.Create(&model.Token{Username: "alice", Email: "a@b.co", Token: "abc"}))
	require.NoError(t, repo.DeleteByUser("alice", "a@b.co"))

	_, err := repo.ByUser("alice", "a@b.co")
	assert.ErrorIs(t, err, ErrTokenNotFound)

	// deleting nothing is not an error
	assert.NoError(t, repo.DeleteByUser("alice", "a@b.co"))
}

func TestTokenRepository_Redeem(t *testing.T) {
	conn := newTestDB(t)
	users := NewUserRepository(conn)
	createUser(t, users, "alice", "a@b.co")
	repo := NewTokenRepository(conn)

	tok := &model.Token{Username: "alice", Email: "a@b.co", Token: "abc"}
	require.NoError(t, repo.Create(tok))

	require.NoError(t, repo.Redeem(tok, "s2", "h2"))

	_, err := repo.ByUser("alice", "a@b.co")
	assert.ErrorIs(t, err, ErrTokenNotFound)

	user, err := users.ByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, "h2", user.PasswordHash)
}

func TestTokenRepository_RedeemReplacedTokenChangesNothing(t *testing.T) {
	conn := newTestDB(t)
	users := NewUserRepository(conn)
	createUser(t, users, "alice", "a@b.co")
	repo := NewTokenRepository(conn)

	stale := &model.Token{Username: "alice", Email: "a@b.co", Token: "old"}
	require.NoError(t, repo.Create(stale))
	require.NoError(t, repo.Replace(&model.Token{Username: "alice", Email: "a@b.co", Token: "new"}))

	err := repo.Redeem(stale, "s2", "h2")
	assert.ErrorIs(t, err, ErrTokenNotFound)

	user, err := users.ByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, "hash", user.PasswordHash)

	tok, err := repo.ByUser("alice", "a@b.co")
	require.NoError(t, err)
	assert.Equal(t, "new", tok.Token)
}
