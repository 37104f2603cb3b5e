// Package repository implements the data access layer for the forum.
//
// Every method issues exactly one parameterized statement against the
// injected handle and returns once the full result set is materialized.
// Lookups signal absence with a nil record or an empty slice; driver errors
// are returned as-is. The handle is shared and not locked here, so callers
// must not use a Store from several goroutines at once.
package repository

import (
	"context"

	"questionsdb/internal/models"
	"questionsdb/internal/observability"

	"gorm.io/gorm"
)

// executor runs statements for one table and records logs, metrics and spans.
type executor struct {
	db      *gorm.DB
	table   string
	logger  *observability.RepoLogger
	metrics *observability.DatabaseMetrics
	traces  *observability.TraceLayer
}

func newExecutor(db *gorm.DB, table string) executor {
	return executor{
		db:      db,
		table:   table,
		logger:  observability.NewRepoLogger(table),
		metrics: observability.NewDatabaseMetrics(),
		traces:  observability.GetTraceLayer(dbSystem(db)),
	}
}

func dbSystem(db *gorm.DB) string {
	if db.Dialector != nil && db.Dialector.Name() == "postgres" {
		return "postgresql"
	}
	return "sqlite"
}

// selectRows runs query and returns every row keyed by column name.
func (e executor) selectRows(ctx context.Context, method, query string, args ...interface{}) ([]models.Row, error) {
	rows, err := e.queryRows(ctx, method, "read", query, args...)
	if err == nil {
		e.logger.LogRead(ctx, map[string]interface{}{"method": method, "rows": len(rows)})
	}
	return rows, err
}

func (e executor) queryRows(ctx context.Context, method, operation, query string, args ...interface{}) ([]models.Row, error) {
	ctx, span := e.traces.TraceRepositoryMethod(ctx, method, e.table)
	done := e.metrics.TrackQuery(operation, e.table)

	var raw []map[string]interface{}
	err := e.db.WithContext(ctx).Raw(query, args...).Scan(&raw).Error
	done()
	observability.EndSpan(span, err)
	if err != nil {
		e.metrics.CountError(operation, e.table)
		e.logger.LogError(ctx, err, method)
		return nil, err
	}

	rows := make([]models.Row, len(raw))
	for i, r := range raw {
		rows[i] = models.NewRow(r)
	}
	return rows, nil
}

// selectRow runs query and returns its first row, or nil when there is none.
func (e executor) selectRow(ctx context.Context, method, query string, args ...interface{}) (models.Row, error) {
	rows, err := e.selectRows(ctx, method, query, args...)
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return rows[0], nil
}

// exec runs a statement that returns no rows.
func (e executor) exec(ctx context.Context, method, operation, query string, args ...interface{}) error {
	ctx, span := e.traces.TraceRepositoryMethod(ctx, method, e.table)
	done := e.metrics.TrackQuery(operation, e.table)

	err := e.db.WithContext(ctx).Exec(query, args...).Error
	done()
	observability.EndSpan(span, err)
	if err != nil {
		e.metrics.CountError(operation, e.table)
		e.logger.LogError(ctx, err, method)
	}
	return err
}

// mapRows converts every row with fn, stopping at the first row that does
// not decode.
func mapRows[T any](rows []models.Row, fn func(models.Row) (T, error)) ([]T, error) {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		v, err := fn(row)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func mapUsers(rows []models.Row) ([]models.User, error) {
	return mapRows(rows, models.UserFromRow)
}

func mapQuestions(rows []models.Row) ([]models.Question, error) {
	return mapRows(rows, models.QuestionFromRow)
}

func mapReplies(rows []models.Row) ([]models.Reply, error) {
	return mapRows(rows, models.ReplyFromRow)
}
