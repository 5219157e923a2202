package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"
)

// SingletonID is the fixed primary key of the About, Contact and Intro rows.
const SingletonID = 1

// schemaStatements use {{pk}}, {{ts}} and {{date}} placeholders so the same
// definitions serve PostgreSQL and SQLite.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS admin_users (
		id {{pk}},
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at {{ts}} NOT NULL,
		updated_at {{ts}} NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		id {{pk}},
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		technologies TEXT NOT NULL DEFAULT '[]',
		github_link TEXT NOT NULL DEFAULT '',
		live_link TEXT NOT NULL DEFAULT '',
		youtube_link TEXT NOT NULL DEFAULT '',
		image_urls TEXT NOT NULL DEFAULT '[]',
		created_at {{ts}} NOT NULL,
		updated_at {{ts}} NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS about (
		id INTEGER PRIMARY KEY,
		full_name TEXT NOT NULL DEFAULT '',
		title TEXT NOT NULL DEFAULT '',
		specialties TEXT NOT NULL DEFAULT '[]',
		content TEXT NOT NULL DEFAULT '',
		photo_url TEXT NOT NULL DEFAULT '',
		skills TEXT NOT NULL DEFAULT '[]',
		updated_at {{ts}} NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS contact_info (
		id INTEGER PRIMARY KEY,
		email TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		linkedin TEXT NOT NULL DEFAULT '',
		github TEXT NOT NULL DEFAULT '',
		twitter TEXT NOT NULL DEFAULT '',
		facebook TEXT NOT NULL DEFAULT '',
		instagram TEXT NOT NULL DEFAULT '',
		created_at {{ts}} NOT NULL,
		updated_at {{ts}} NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS intro (
		id INTEGER PRIMARY KEY,
		title TEXT NOT NULL DEFAULT '',
		subtitle TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		button_text TEXT NOT NULL DEFAULT '',
		button_link TEXT NOT NULL DEFAULT '',
		created_at {{ts}} NOT NULL,
		updated_at {{ts}} NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS messages (
		id {{pk}},
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		message TEXT NOT NULL,
		sent_at {{ts}} NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS experiences (
		id {{pk}},
		title TEXT NOT NULL,
		company TEXT NOT NULL,
		location TEXT NOT NULL DEFAULT '',
		start_date {{date}} NOT NULL,
		end_date {{date}},
		is_current BOOLEAN NOT NULL DEFAULT FALSE,
		description TEXT NOT NULL DEFAULT '',
		created_at {{ts}} NOT NULL,
		updated_at {{ts}} NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS skills (
		id {{pk}},
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		level INTEGER NOT NULL DEFAULT 80 CHECK (level >= 0 AND level <= 100),
		sort_order INTEGER NOT NULL DEFAULT 0,
		created_at {{ts}} NOT NULL,
		updated_at {{ts}} NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_skills_category ON skills (category, sort_order, name)`,
	`CREATE INDEX IF NOT EXISTS idx_experiences_start_date ON experiences (start_date)`,
}

func dialectReplacer(driver string) *strings.Replacer {
	if driver == DriverPostgres {
		return strings.NewReplacer(
			"{{pk}}", "BIGSERIAL PRIMARY KEY",
			"{{ts}}", "TIMESTAMPTZ",
			"{{date}}", "TIMESTAMPTZ",
		)
	}
	// The sqlite driver only converts columns declared DATETIME/TIMESTAMP/DATE to time.Time.
	return strings.NewReplacer(
		"{{pk}}", "INTEGER PRIMARY KEY AUTOINCREMENT",
		"{{ts}}", "DATETIME",
		"{{date}}", "DATETIME",
	)
}

// Migrate creates every table the API needs. It is idempotent.
func Migrate(ctx context.Context, conn *sqlx.DB) error {
	replacer := dialectReplacer(conn.DriverName())
	for _, stmt := range schemaStatements {
		if _, err := conn.ExecContext(ctx, replacer.Replace(stmt)); err != nil {
			log.Errorf("Migrate: statement failed: %v", err)
			return fmt.Errorf("db: migrate: %w", err)
		}
	}
	log.Info("Database schema is up to date.")
	return nil
}
