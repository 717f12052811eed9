package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/model"
)

func TestUserRepository_CreateAndLookup(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	user := createUser(t, repo, "alice", "a@b.co")
	assert.NotZero(t, user.ID)

	byName, err := repo.ByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, "a@b.co", byName.Email)

	byEmail, err := repo.ByEmail("a@b.co")
	require.NoError(t, err)
	assert.Equal(t, "alice", byEmail.Username)
}

func TestUserRepository_NotFound(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	_, err := repo.ByUsername("ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.ByEmail("ghost@b.co")
	assert.ErrorIs(t, err, ErrUserNotFound)

	err = repo.UpdatePassword("ghost", "ghost@b.co", "s", "h")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_Duplicates(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	createUser(t, repo, "alice", "a@b.co")

	err := repo.Create(&model.User{Username: "alice", Email: "other@b.co", Salt: "s", PasswordHash: "h"})
	assert.ErrorIs(t, err, ErrDuplicateUsername)

	err = repo.Create(&model.User{Username: "bob", Email: "a@b.co", Salt: "s", PasswordHash: "h"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestUserRepository_UpdatePassword(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	createUser(t, repo, "alice", "a@b.co")

	require.NoError(t, repo.UpdatePassword("alice", "a@b.co", "new-salt", "new-hash"))

	user, err := repo.ByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, "new-salt", user.Salt)
	assert.Equal(t, "new-hash", user.PasswordHash)
}
