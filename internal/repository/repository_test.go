package repository

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/db"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/model"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_pragma=foreign_keys(1)"
	conn, err := db.Init("sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(conn) })

	require.NoError(t, db.RunMigrations(conn.DB, "sqlite"))
	return conn
}

func createUser(t *testing.T, repo UserRepository, username, email string) *model.User {
	t.Helper()

	user := &model.User{Username: username, Email: email, Salt: "salt", PasswordHash: "hash"}
	require.NoError(t, repo.Create(user))
	return user
}
