// Package queries holds the SQL for every table, one file per entity.
// Finders return (nil, nil) when no row matches; updates and deletes that
// touch no row return sql.ErrNoRows.
package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

type Queries struct {
	db *sqlx.DB
}

func New(conn *sqlx.DB) *Queries {
	return &Queries{db: conn}
}

// DB exposes the underlying pool for health checks.
func (q *Queries) DB() *sqlx.DB {
	return q.db
}

func now() time.Time {
	return time.Now().UTC()
}

// insertReturningID runs a named INSERT and returns the generated primary key.
func (q *Queries) insertReturningID(ctx context.Context, query string, arg any) (int64, error) {
	rows, err := q.db.NamedQueryContext(ctx, query+" RETURNING id", arg)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return 0, err
		}
		return 0, errors.New("no id returned after insert")
	}
	var id int64
	if err := rows.Scan(&id); err != nil {
		return 0, fmt.Errorf("scan inserted id: %w", err)
	}
	return id, nil
}

// getOne wraps Get so a missing row is (false, nil).
func (q *Queries) getOne(ctx context.Context, dest any, query string, args ...any) (bool, error) {
	err := q.db.GetContext(ctx, dest, q.db.Rebind(query), args...)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func checkAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
