package db

import "embed"

// migrationsFS holds one migration set per goose dialect.
//
//go:embed migrations/sqlite3/*.sql migrations/postgres/*.sql
var migrationsFS embed.FS
