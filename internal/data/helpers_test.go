//go:build integration

package data

import (
	"testing"

	"go-cms-app/internal/config"

	"github.com/jmoiron/sqlx"
)

// setupTestDB opens a private in-memory SQLite database with the schema applied.
func setupTestDB(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	cfg := config.DBConfig{Driver: DriverSQLite, DSN: "file::memory:"}
	db, err := NewDB(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to sqlite test database: %v", err)
	}
	if err := NewMigrator(db, cfg).Up(); err != nil {
		t.Fatalf("Failed to apply migrations: %v", err)
	}

	teardown := func() {
		db.Close()
	}
	return db, teardown
}
