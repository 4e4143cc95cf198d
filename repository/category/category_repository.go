package category

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

type CategoryRepository interface {
	List(ctx context.Context) ([]model.Category, error)
	// GetByID and GetBySlug return (nil, nil) when no category matches.
	GetByID(ctx context.Context, id string) (*model.Category, error)
	GetBySlug(ctx context.Context, slug string) (*model.Category, error)
	Create(ctx context.Context, c *model.Category) error
	Update(ctx context.Context, c *model.Category) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

func NewCategoryRepository(conn *sqlx.DB) CategoryRepository {
	return &SQL{conn: conn}
}

type categoryRow struct {
	ID            string `db:"id"`
	Slug          string `db:"slug"`
	NameEn        string `db:"name_en"`
	NameVi        string `db:"name_vi"`
	DescriptionEn string `db:"description_en"`
	DescriptionVi string `db:"description_vi"`
}

func (r categoryRow) toModel() model.Category {
	return model.Category{
		ID:          r.ID,
		Slug:        r.Slug,
		Name:        model.LocalizedText{En: r.NameEn, Vi: r.NameVi},
		Description: model.LocalizedText{En: r.DescriptionEn, Vi: r.DescriptionVi},
	}
}

const selectCategory = `SELECT id, slug, name_en, name_vi, description_en, description_vi FROM categories`

func (s *SQL) List(ctx context.Context) ([]model.Category, error) {
	rows, err := s.conn.QueryxContext(ctx, selectCategory+" ORDER BY name_en")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]model.Category, 0)
	for rows.Next() {
		var r categoryRow
		if err := rows.StructScan(&r); err != nil {
			return nil, err
		}
		categories = append(categories, r.toModel())
	}
	return categories, rows.Err()
}

func (s *SQL) GetByID(ctx context.Context, id string) (*model.Category, error) {
	return s.getOne(ctx, selectCategory+" WHERE id = ?", id)
}

func (s *SQL) GetBySlug(ctx context.Context, slug string) (*model.Category, error) {
	return s.getOne(ctx, selectCategory+" WHERE slug = ?", slug)
}

func (s *SQL) getOne(ctx context.Context, query string, arg interface{}) (*model.Category, error) {
	var r categoryRow
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

func (s *SQL) Create(ctx context.Context, c *model.Category) error {
	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO categories (id, slug, name_en, name_vi, description_en, description_vi) VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, c.Slug, c.Name.En, c.Name.Vi, c.Description.En, c.Description.Vi)
	return err
}

func (s *SQL) Update(ctx context.Context, c *model.Category) (bool, error) {
	res, err := s.conn.ExecContext(ctx,
		`UPDATE categories SET slug = ?, name_en = ?, name_vi = ?, description_en = ?, description_vi = ? WHERE id = ?`,
		c.Slug, c.Name.En, c.Name.Vi, c.Description.En, c.Description.Vi, c.ID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (s *SQL) Delete(ctx context.Context, id string) (bool, error) {
	res, err := s.conn.ExecContext(ctx, "DELETE FROM categories WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
