package settings

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

// SettingsRepository persists opaque JSON configuration blobs keyed by scope.
type SettingsRepository interface {
	// Get returns (nil, nil) when the scope has never been written.
	Get(ctx context.Context, scope string) (json.RawMessage, error)
	Upsert(ctx context.Context, scope string, data json.RawMessage) error
}

func NewSettingsRepository(conn *sqlx.DB) SettingsRepository {
	return &SQL{conn: conn}
}

func (s *SQL) Get(ctx context.Context, scope string) (json.RawMessage, error) {
	var data string
	err := s.conn.QueryRowxContext(ctx, "SELECT data FROM settings WHERE scope = ?", scope).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}

func (s *SQL) Upsert(ctx context.Context, scope string, data json.RawMessage) error {
	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO settings (scope, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(scope) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`,
		scope, string(data))
	return err
}
