// Package sqlrepo backs the document repositories with a single-file
// embedded SQLite database. Records are identifier-addressed; the
// position column preserves document order so the legacy whole-document
// endpoints round-trip byte-for-byte.
package sqlrepo

import (
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"ayurveda/internal/repos"
)

const timeLayout = time.RFC3339Nano

func Open(dsn string) (*repos.Stores, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	return repos.NewStores(
		&ProductRepo{db: db},
		&UserRepo{db: db},
		&OrderRepo{db: db},
		&CategoryRepo{db: db},
		db.Close,
	), nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS products(
  id INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  category TEXT NOT NULL,
  price NUMERIC NOT NULL CHECK (price >= 0),
  discount NUMERIC NOT NULL DEFAULT 0 CHECK (discount >= 0 AND discount <= 100),
  image TEXT NOT NULL DEFAULT '',
  description TEXT NOT NULL DEFAULT '',
  position INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);

CREATE TABLE IF NOT EXISTS users(
  user_id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  mobile TEXT NOT NULL UNIQUE,
  email TEXT NOT NULL DEFAULT '',
  address TEXT NOT NULL DEFAULT '',
  registered_on TEXT NOT NULL,
  position INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS orders(
  id TEXT PRIMARY KEY,
  product_id INTEGER NOT NULL,
  product_name TEXT NOT NULL,
  product_image TEXT NOT NULL DEFAULT '',
  price NUMERIC NOT NULL,
  original_price NUMERIC NOT NULL,
  discount NUMERIC NOT NULL,
  customer_name TEXT NOT NULL,
  customer_mobile TEXT NOT NULL,
  customer_address TEXT NOT NULL,
  customer_email TEXT NOT NULL DEFAULT '',
  order_date TEXT NOT NULL,
  delivery_date TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'in-progress' CHECK (status IN ('in-progress','completed','cancelled')),
  payment_method TEXT NOT NULL DEFAULT '',
  cancelled_at TEXT,
  cancellation_reason TEXT NOT NULL DEFAULT '',
  position INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_orders_mobile ON orders(customer_mobile);
CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status);

CREATE TABLE IF NOT EXISTS categories(
  position INTEGER PRIMARY KEY,
  name TEXT NOT NULL
);
`
	_, err := db.Exec(schema)
	return err
}

// seedIfEmpty inserts the baseline catalog and category list on first
// open (idempotent). Once seeded, stored rows are authoritative: an
// admin emptying either collection stays emptied for the process.
func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if n == 0 {
		tx, err := db.Beginx()
		if err != nil {
			return err
		}
		defer func() { _ = tx.Rollback() }()
		for i, p := range repos.DefaultProducts() {
			if _, err := tx.Exec(`
				INSERT INTO products(id, name, category, price, discount, image, description, position)
				VALUES(?,?,?,?,?,?,?,?)
			`, p.ID, p.Name, p.Category, p.Price, p.Discount, p.Image, p.Description, i+1); err != nil {
				return err
			}
		}
		if err := tx.Commit(); err != nil {
			return err
		}
	}

	if err := db.Get(&n, `SELECT COUNT(*) FROM categories`); err != nil {
		return err
	}
	if n == 0 {
		tx, err := db.Beginx()
		if err != nil {
			return err
		}
		defer func() { _ = tx.Rollback() }()
		for i, name := range repos.DefaultCategories() {
			if _, err := tx.Exec(`INSERT INTO categories(position, name) VALUES(?,?)`, i+1, name); err != nil {
				return err
			}
		}
		if err := tx.Commit(); err != nil {
			return err
		}
	}
	return nil
}
