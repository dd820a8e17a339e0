package publish

import (
	"context"
	"database/sql"
	"fmt"

	"uts2ctrf/internal/domain"
)

// Publisher stores a report somewhere outside the local file system
type Publisher interface {
	Publish(ctx context.Context, source string, report *domain.Report) (int64, error)
}

// MySQLPublisher inserts reports into the ctrf_runs and ctrf_tests tables
type MySQLPublisher struct {
	manager *DatabaseManager
}

// NewMySQLPublisher creates a new MySQLPublisher
func NewMySQLPublisher(manager *DatabaseManager) *MySQLPublisher {
	return &MySQLPublisher{manager: manager}
}

// Publish writes the report in one transaction and returns the new run id.
// source is the path the report was loaded from.
func (p *MySQLPublisher) Publish(ctx context.Context, source string, report *domain.Report) (int64, error) {
	db, err := p.manager.Open(ctx)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	runID, err := insertReport(ctx, tx, source, report)
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit report: %w", err)
	}
	return runID, nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertReport(ctx context.Context, tx execer, source string, report *domain.Report) (int64, error) {
	s := report.Results.Summary
	res, err := tx.ExecContext(ctx,
		"INSERT INTO ctrf_runs (name, tool, spec_version, tests, passed, failed, skipped, source) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		s.Name, report.Results.Tool.Name, report.SpecVersion, s.Tests, s.Passed, s.Failed, s.Skipped, source,
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}

	for i, tc := range report.Results.Tests {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO ctrf_tests (run_id, position, name, classname, status, message, file_path, line) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			testRow(runID, i, tc)...,
		); err != nil {
			return 0, fmt.Errorf("insert test %q: %w", tc.Name, err)
		}
	}
	return runID, nil
}

// testRow returns the ctrf_tests column values for a test case; failure columns are NULL for passed tests
func testRow(runID int64, position int, tc domain.TestCase) []any {
	var message, filePath sql.NullString
	var line sql.NullInt64
	if tc.FailureDetail != nil {
		message = sql.NullString{String: tc.Message, Valid: true}
		filePath = sql.NullString{String: tc.FilePath, Valid: true}
		line = sql.NullInt64{Int64: int64(tc.Line), Valid: true}
	}
	return []any{runID, position, tc.Name, tc.Classname, string(tc.Status), message, filePath, line}
}
