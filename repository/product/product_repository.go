package product

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

type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	ListByCategory(ctx context.Context, categoryID string) ([]model.Product, error)
	// GetByID returns (nil, nil) when no product exists with the given id.
	GetByID(ctx context.Context, id string) (*model.Product, error)
	Create(ctx context.Context, p *model.Product) error
	// Update reports whether a row was actually updated.
	Update(ctx context.Context, p *model.Product) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

type productRow struct {
	ID            string  `db:"id"`
	NameEn        string  `db:"name_en"`
	NameVi        string  `db:"name_vi"`
	DescriptionEn string  `db:"description_en"`
	DescriptionVi string  `db:"description_vi"`
	Price         float64 `db:"price"`
	ImageURL      string  `db:"image_url"`
	CategoryID    *string `db:"category_id"`
	Featured      bool    `db:"featured"`
	InStock       bool    `db:"in_stock"`
}

func (r productRow) toModel() model.Product {
	p := model.Product{
		ID:          r.ID,
		Name:        model.LocalizedText{En: r.NameEn, Vi: r.NameVi},
		Description: model.LocalizedText{En: r.DescriptionEn, Vi: r.DescriptionVi},
		Price:       r.Price,
		ImageURL:    r.ImageURL,
		Featured:    r.Featured,
		InStock:     r.InStock,
	}
	if r.CategoryID != nil {
		p.CategoryID = *r.CategoryID
	}
	return p
}

const selectProduct = `SELECT id, name_en, name_vi, description_en, description_vi, price, image_url, category_id, featured, in_stock FROM products`

func (s *SQL) List(ctx context.Context) ([]model.Product, error) {
	return s.queryProducts(ctx, selectProduct+" ORDER BY name_en")
}

func (s *SQL) ListByCategory(ctx context.Context, categoryID string) ([]model.Product, error) {
	return s.queryProducts(ctx, selectProduct+" WHERE category_id = ? ORDER BY name_en", categoryID)
}

func (s *SQL) queryProducts(ctx context.Context, query string, args ...interface{}) ([]model.Product, error) {
	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]model.Product, 0)
	for rows.Next() {
		var r productRow
		if err := rows.StructScan(&r); err != nil {
			return nil, err
		}
		products = append(products, r.toModel())
	}
	return products, rows.Err()
}

func (s *SQL) GetByID(ctx context.Context, id string) (*model.Product, error) {
	var r productRow
	err := s.conn.QueryRowxContext(ctx, selectProduct+" WHERE id = ?", id).StructScan(&r)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p := r.toModel()
	return &p, nil
}

func (s *SQL) Create(ctx context.Context, p *model.Product) error {
	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO products (id, name_en, name_vi, description_en, description_vi, price, image_url, category_id, featured, in_stock)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name.En, p.Name.Vi, p.Description.En, p.Description.Vi,
		p.Price, p.ImageURL, nullableString(p.CategoryID), p.Featured, p.InStock)
	return err
}

func (s *SQL) Update(ctx context.Context, p *model.Product) (bool, error) {
	res, err := s.conn.ExecContext(ctx,
		`UPDATE products SET name_en = ?, name_vi = ?, description_en = ?, description_vi = ?, price = ?, image_url = ?, category_id = ?, featured = ?, in_stock = ?
		 WHERE id = ?`,
		p.Name.En, p.Name.Vi, p.Description.En, p.Description.Vi,
		p.Price, p.ImageURL, nullableString(p.CategoryID), p.Featured, p.InStock, p.ID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (s *SQL) Delete(ctx context.Context, id string) (bool, error) {
	res, err := s.conn.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
