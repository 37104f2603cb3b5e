// Package testutil provides shared database fixtures for tests.
package testutil

import (
	"context"
	"path/filepath"
	"regexp"
	"testing"

	"questionsdb/internal/config"
	"questionsdb/internal/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// SQLiteDrivers lists the local file drivers every behavioral test runs against.
var SQLiteDrivers = []string{config.DriverSQLite3, config.DriverSQLite}

// NewSQLiteDB opens a fresh database file under t.TempDir() with the forum
// schema applied. The handle is closed when the test ends.
func NewSQLiteDB(t *testing.T, driver string) *gorm.DB {
	t.Helper()

	db, err := database.Connect(&config.Config{
		DBDriver: driver,
		DBPath:   filepath.Join(t.TempDir(), "questions.db"),
	})
	require.NoError(t, err)
	require.NoError(t, database.ApplySchema(context.Background(), db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// NewMockDB returns a gorm handle on a postgres dialect backed by sqlmock,
// so tests can pin the exact SQL and bound arguments.
func NewMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })
	return gormDB, mock
}

// QuoteSQL escapes query for sqlmock's regexp matcher.
func QuoteSQL(query string) string {
	return regexp.QuoteMeta(query)
}
