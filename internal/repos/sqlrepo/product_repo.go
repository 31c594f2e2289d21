package sqlrepo

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"ayurveda/internal/domain"
	"ayurveda/internal/repos"
)

type ProductRepo struct{ db *sqlx.DB }

func (r *ProductRepo) List() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT id, name, category, price, discount, image, description
	  FROM products
	  ORDER BY position
	`)
	return out, err
}

func (r *ProductRepo) Get(id int64) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
	  SELECT id, name, category, price, discount, image, description
	  FROM products WHERE id = ?
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, repos.ErrNotFound
	}
	return p, err
}

func (r *ProductRepo) Create(p domain.Product) error {
	_, err := r.db.Exec(`
	  INSERT INTO products(id, name, category, price, discount, image, description, position)
	  VALUES(?,?,?,?,?,?,?, (SELECT COALESCE(MAX(position),0)+1 FROM products))
	`, p.ID, p.Name, p.Category, p.Price, p.Discount, p.Image, p.Description)
	return err
}

func (r *ProductRepo) Update(p domain.Product) error {
	res, err := r.db.Exec(`
	  UPDATE products SET name=?, category=?, price=?, discount=?, image=?, description=?
	  WHERE id=?
	`, p.Name, p.Category, p.Price, p.Discount, p.Image, p.Description, p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repos.ErrNotFound
	}
	return nil
}

func (r *ProductRepo) Delete(id int64) error {
	res, err := r.db.Exec(`DELETE FROM products WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repos.ErrNotFound
	}
	return nil
}

func (r *ProductRepo) ReplaceAll(ps []domain.Product) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()
	if _, err := tx.Exec(`DELETE FROM products`); err != nil {
		return err
	}
	for i, p := range ps {
		if _, err := tx.Exec(`
		  INSERT INTO products(id, name, category, price, discount, image, description, position)
		  VALUES(?,?,?,?,?,?,?,?)
		`, p.ID, p.Name, p.Category, p.Price, p.Discount, p.Image, p.Description, i+1); err != nil {
			return err
		}
	}
	return tx.Commit()
}
