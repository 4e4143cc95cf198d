package content

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/td051191/MinhPhat/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ContentRepository interface {
	List(ctx context.Context) ([]model.Content, error)
	ListBySection(ctx context.Context, section string) ([]model.Content, error)
	// GetByID and GetByKey return (nil, nil) when no entry matches.
	GetByID(ctx context.Context, id string) (*model.Content, error)
	GetByKey(ctx context.Context, key string) (*model.Content, error)
	Create(ctx context.Context, c *model.Content) error
	Update(ctx context.Context, c *model.Content) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	// SubscribeNewsletter is idempotent: re-subscribing an email is a no-op.
	SubscribeNewsletter(ctx context.Context, email string) error
}

func NewContentRepository(conn *sqlx.DB) ContentRepository {
	return &SQL{conn: conn}
}

type contentRow struct {
	ID      string `db:"id"`
	Key     string `db:"key"`
	Section string `db:"section"`
	ValueEn string `db:"value_en"`
	ValueVi string `db:"value_vi"`
}

func (r contentRow) toModel() model.Content {
	return model.Content{
		ID:      r.ID,
		Key:     r.Key,
		Section: r.Section,
		Value:   model.LocalizedText{En: r.ValueEn, Vi: r.ValueVi},
	}
}

const selectContent = `SELECT id, key, section, value_en, value_vi FROM content`

func (s *SQL) List(ctx context.Context) ([]model.Content, error) {
	return s.queryContent(ctx, selectContent+" ORDER BY section, key")
}

func (s *SQL) ListBySection(ctx context.Context, section string) ([]model.Content, error) {
	return s.queryContent(ctx, selectContent+" WHERE section = ? ORDER BY key", section)
}

func (s *SQL) queryContent(ctx context.Context, query string, args ...interface{}) ([]model.Content, error) {
	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]model.Content, 0)
	for rows.Next() {
		var r contentRow
		if err := rows.StructScan(&r); err != nil {
			return nil, err
		}
		entries = append(entries, r.toModel())
	}
	return entries, rows.Err()
}

func (s *SQL) GetByID(ctx context.Context, id string) (*model.Content, error) {
	return s.getOne(ctx, selectContent+" WHERE id = ?", id)
}

func (s *SQL) GetByKey(ctx context.Context, key string) (*model.Content, error) {
	return s.getOne(ctx, selectContent+" WHERE key = ?", key)
}

func (s *SQL) getOne(ctx context.Context, query string, arg interface{}) (*model.Content, error) {
	var r contentRow
	err := s.conn.QueryRowxContext(ctx, query, arg).StructScan(&r)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c := r.toModel()
	return &c, nil
}

func (s *SQL) Create(ctx context.Context, c *model.Content) error {
	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO content (id, key, section, value_en, value_vi) VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.Key, c.Section, c.Value.En, c.Value.Vi)
	return err
}

func (s *SQL) Update(ctx context.Context, c *model.Content) (bool, error) {
	res, err := s.conn.ExecContext(ctx,
		`UPDATE content SET key = ?, section = ?, value_en = ?, value_vi = ? WHERE id = ?`,
		c.Key, c.Section, c.Value.En, c.Value.Vi, c.ID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (s *SQL) Delete(ctx context.Context, id string) (bool, error) {
	res, err := s.conn.ExecContext(ctx, "DELETE FROM content WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (s *SQL) SubscribeNewsletter(ctx context.Context, email string) error {
	_, err := s.conn.ExecContext(ctx,
		"INSERT OR IGNORE INTO newsletter_subscribers (email) VALUES (?)", email)
	return err
}
