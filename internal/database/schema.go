package database

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"strings"

	"questionsdb/internal/observability"

	"gorm.io/gorm"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// Tables lists the forum tables in dependency order.
var Tables = []string{"users", "questions", "question_follows", "replies", "question_likes"}

// SchemaStatements returns the CREATE TABLE statements for the given gorm
// dialect name ("sqlite" or "postgres").
func SchemaStatements(dialect string) ([]string, error) {
	file := "schema/sqlite.sql"
	if dialect == "postgres" {
		file = "schema/postgres.sql"
	}

	raw, err := schemaFS.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file, err)
	}

	var stmts []string
	for _, part := range strings.Split(string(raw), ";") {
		if stmt := strings.TrimSpace(part); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts, nil
}

// ApplySchema provisions the forum tables if they do not exist yet. It is
// used by tooling and tests; the repository layer never calls it.
func ApplySchema(ctx context.Context, db *gorm.DB) error {
	dialect := db.Dialector.Name()
	stmts, err := SchemaStatements(dialect)
	if err != nil {
		return err
	}

	for _, stmt := range stmts {
		if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	observability.GlobalLogger.Info("Schema applied",
		slog.String("dialect", dialect),
		slog.Int("statements", len(stmts)),
	)
	return nil
}
