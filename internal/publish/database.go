package publish

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"uts2ctrf/internal/config"
)

// DatabaseManager prepares the report database
type DatabaseManager struct {
	config *config.Config
}

// NewDatabaseManager creates a new DatabaseManager
func NewDatabaseManager(cfg *config.Config) *DatabaseManager {
	return &DatabaseManager{config: cfg}
}

var schema = []string{
	"CREATE TABLE IF NOT EXISTS ctrf_runs (" +
		"id BIGINT AUTO_INCREMENT PRIMARY KEY, " +
		"name VARCHAR(255) NOT NULL, " +
		"tool VARCHAR(255) NOT NULL, " +
		"spec_version VARCHAR(32) NOT NULL, " +
		"tests INT NOT NULL, " +
		"passed INT NOT NULL, " +
		"failed INT NOT NULL, " +
		"skipped INT NOT NULL, " +
		"source VARCHAR(1024) NOT NULL, " +
		"created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP)",
	"CREATE TABLE IF NOT EXISTS ctrf_tests (" +
		"id BIGINT AUTO_INCREMENT PRIMARY KEY, " +
		"run_id BIGINT NOT NULL, " +
		"position INT NOT NULL, " +
		"name VARCHAR(1024) NOT NULL, " +
		"classname VARCHAR(255) NOT NULL, " +
		"status VARCHAR(16) NOT NULL, " +
		"message TEXT NULL, " +
		"file_path VARCHAR(1024) NULL, " +
		"line INT NULL, " +
		"INDEX idx_ctrf_tests_run (run_id), " +
		"FOREIGN KEY (run_id) REFERENCES ctrf_runs(id) ON DELETE CASCADE)",
}

// Open ensures the configured database and tables exist and returns a connection to it
func (dm *DatabaseManager) Open(ctx context.Context) (*sql.DB, error) {
	dbName := dm.config.Database.Name
	if !isValidDatabaseName(dbName) {
		return nil, fmt.Errorf("invalid database name: %q", dbName)
	}

	server, err := sql.Open("mysql", dm.config.Database.DSN(false))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database server: %w", err)
	}
	defer server.Close()

	if err := server.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database server: %w", err)
	}

	exists, err := databaseExists(ctx, server, dbName)
	if err != nil {
		return nil, fmt.Errorf("failed to check database %s: %w", dbName, err)
	}
	if !exists {
		if _, err := server.ExecContext(ctx, fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", dbName)); err != nil {
			return nil, fmt.Errorf("failed to create database %s: %w", dbName, err)
		}
	}

	db, err := sql.Open("mysql", dm.config.Database.DSN(true))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database %s: %w", dbName, err)
	}
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create tables: %w", err)
		}
	}
	return db, nil
}

func databaseExists(ctx context.Context, db *sql.DB, dbName string) (bool, error) {
	var exists bool
	query := "SELECT EXISTS(SELECT SCHEMA_NAME FROM INFORMATION_SCHEMA.SCHEMATA WHERE SCHEMA_NAME = ?)"
	err := db.QueryRowContext(ctx, query, dbName).Scan(&exists)
	return exists, err
}

// isValidDatabaseName allows letters, digits, underscore and dollar, up to 64 characters
func isValidDatabaseName(name string) bool {
	if len(name) == 0 || len(name) > 64 {
		return false
	}
	return strings.IndexFunc(name, func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '$':
			return false
		}
		return true
	}) < 0
}
