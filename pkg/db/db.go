package db

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/glebarez/go-sqlite" // SQLite driver ("sqlite") for local runs and tests
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver for database/sql
	log "github.com/sirupsen/logrus"
)

// Driver names understood by Open.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

func init() {
	// sqlx only knows "sqlite3" out of the box.
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

// Open connects to the database described by dsn. Postgres URLs/DSNs use lib/pq,
// anything else is treated as a SQLite file path or "file:" URI.
func Open(dsn string) (*sqlx.DB, error) {
	trimmed := strings.TrimSpace(dsn)
	if trimmed == "" {
		return nil, fmt.Errorf("db: empty dsn")
	}

	driver := DetectDriver(trimmed)
	if driver == DriverSQLite {
		if err := ensureSQLiteDir(trimmed); err != nil {
			return nil, err
		}
	}

	conn, err := sqlx.Open(driver, trimmed)
	if err != nil {
		log.Errorf("Failed to open %s database: %v", driver, err)
		return nil, fmt.Errorf("db: open: %w", err)
	}

	if driver == DriverSQLite {
		// SQLite serializes writers anyway; one connection also keeps in-memory databases alive.
		conn.SetMaxOpenConns(1)
		if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
			conn.Close()
			return nil, fmt.Errorf("db: sqlite pragma: %w", err)
		}
	} else {
		conn.SetMaxOpenConns(25)
		conn.SetMaxIdleConns(10)
		conn.SetConnMaxLifetime(30 * time.Minute)
	}

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		log.Errorf("Failed to ping database: %v", err)
		conn.Close()
		return nil, fmt.Errorf("db: ping: %w", err)
	}

	log.Infof("Database connection pool initialized successfully (driver=%s).", driver)
	return conn, nil
}

// DetectDriver infers the driver from a DSN string.
func DetectDriver(dsn string) string {
	lower := strings.ToLower(strings.TrimSpace(dsn))
	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return DriverPostgres
	case strings.Contains(lower, "host=") || strings.Contains(lower, "dbname=") || strings.Contains(lower, "sslmode="):
		return DriverPostgres
	default:
		return DriverSQLite
	}
}

// Close closes the connection pool and logs the outcome.
func Close(conn *sqlx.DB) {
	if conn == nil {
		return
	}
	if err := conn.Close(); err != nil {
		log.Errorf("Error closing database connection: %v", err)
		return
	}
	log.Info("Database connection pool closed.")
}

func ensureSQLiteDir(dsn string) error {
	path := dsn
	if strings.HasPrefix(strings.ToLower(path), "file:") {
		path = path[len("file:"):]
	}
	if idx := strings.Index(path, "?"); idx >= 0 {
		path = path[:idx]
	}
	if path == "" || path == ":memory:" || strings.Contains(dsn, "mode=memory") {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("db: create sqlite dir: %w", err)
	}
	return nil
}
