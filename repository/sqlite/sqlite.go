package sqlite

import (
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
	"github.com/td051191/MinhPhat/cmd/config"
)

// SQLite files self-initialize: the schema is applied idempotently on every
// start instead of through a migration tool.
const schema = `
CREATE TABLE IF NOT EXISTS categories (
	id             TEXT PRIMARY KEY,
	slug           TEXT NOT NULL UNIQUE,
	name_en        TEXT NOT NULL DEFAULT '',
	name_vi        TEXT NOT NULL DEFAULT '',
	description_en TEXT NOT NULL DEFAULT '',
	description_vi TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS products (
	id             TEXT PRIMARY KEY,
	name_en        TEXT NOT NULL,
	name_vi        TEXT NOT NULL DEFAULT '',
	description_en TEXT NOT NULL DEFAULT '',
	description_vi TEXT NOT NULL DEFAULT '',
	price          REAL NOT NULL,
	image_url      TEXT NOT NULL DEFAULT '',
	category_id    TEXT,
	featured       INTEGER NOT NULL DEFAULT 0,
	in_stock       INTEGER NOT NULL DEFAULT 1
);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id);

CREATE TABLE IF NOT EXISTS content (
	id       TEXT PRIMARY KEY,
	key      TEXT NOT NULL UNIQUE,
	section  TEXT NOT NULL,
	value_en TEXT NOT NULL DEFAULT '',
	value_vi TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_content_section ON content(section);

CREATE TABLE IF NOT EXISTS newsletter_subscribers (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	email      TEXT NOT NULL UNIQUE,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS users (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	name          TEXT NOT NULL,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at    TIMESTAMP
);

CREATE TABLE IF NOT EXISTS settings (
	scope      TEXT PRIMARY KEY,
	data       TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS orders (
	id             TEXT PRIMARY KEY,
	status         TEXT NOT NULL,
	total_amount   REAL NOT NULL,
	currency       TEXT NOT NULL,
	customer_name  TEXT NOT NULL,
	email          TEXT,
	phone          TEXT,
	address        TEXT NOT NULL,
	payment_method TEXT NOT NULL,
	created_at     TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS order_items (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	order_id   TEXT NOT NULL REFERENCES orders(id),
	product_id TEXT NOT NULL,
	name_en    TEXT NOT NULL DEFAULT '',
	name_vi    TEXT NOT NULL DEFAULT '',
	price      REAL NOT NULL,
	quantity   INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id);
`

// Open connects to the SQLite database, applies pool settings and ensures
// the schema exists.
func Open(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite3", cfg.GetDSN())
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// IsDuplicate reports whether err is a UNIQUE or PRIMARY KEY constraint
// violation, e.g. a reused category slug or content key.
func IsDuplicate(err error) bool {
	var se sqlite3.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.ExtendedCode == sqlite3.ErrConstraintUnique ||
		se.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}
