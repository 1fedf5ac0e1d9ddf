package preference

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/lib/pq"
)

type PostgresStore struct {
	db *sql.DB
}

const (
	createPreferencesTable = `
		CREATE TABLE IF NOT EXISTS visitor_preferences (
			visitor_id TEXT NOT NULL,
			key        TEXT NOT NULL,
			value      TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (visitor_id, key)
		)
	`
	getPreferenceQuery = `
		SELECT value FROM visitor_preferences
		WHERE visitor_id = $1 AND key = $2
	`
	getPreferencesQuery = `
		SELECT key, value FROM visitor_preferences
		WHERE visitor_id = $1 AND key = ANY($2::text[])
	`
	upsertPreferenceQuery = `
		INSERT INTO visitor_preferences (visitor_id, key, value, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (visitor_id, key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = now()
	`
	// corrupted counters restart at 1, like a missing one
	incrementPreferenceQuery = `
		INSERT INTO visitor_preferences (visitor_id, key, value, updated_at)
		VALUES ($1, $2, '1', now())
		ON CONFLICT (visitor_id, key) DO UPDATE
		SET value = (CASE WHEN visitor_preferences.value ~ '^[0-9]+$'
			THEN visitor_preferences.value::bigint + 1 ELSE 1 END)::text,
			updated_at = now()
		RETURNING value
	`
)

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the preferences table when missing.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, createPreferencesTable)
	return err
}

func (s *PostgresStore) Get(ctx context.Context, visitorID, key string) (string, bool, error) {
	var v string
	err := s.db.QueryRowContext(ctx, getPreferenceQuery, visitorID, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *PostgresStore) GetMany(ctx context.Context, visitorID string, keys []string) (map[string]string, error) {
	out := make(map[string]string, len(keys))
	if len(keys) == 0 {
		return out, nil
	}
	rows, err := s.db.QueryContext(ctx, getPreferencesQuery, visitorID, pq.Array(keys))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, rows.Err()
}

func (s *PostgresStore) Set(ctx context.Context, visitorID, key, value string) error {
	_, err := s.db.ExecContext(ctx, upsertPreferenceQuery, visitorID, key, value)
	return err
}

func (s *PostgresStore) Increment(ctx context.Context, visitorID, key string) (int, error) {
	var v string
	if err := s.db.QueryRowContext(ctx, incrementPreferenceQuery, visitorID, key).Scan(&v); err != nil {
		return 0, err
	}
	return strconv.Atoi(v)
}
