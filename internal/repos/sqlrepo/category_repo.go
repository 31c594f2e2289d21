package sqlrepo

import (
	"github.com/jmoiron/sqlx"
)

type CategoryRepo struct{ db *sqlx.DB }

// List returns the stored rows as-is; the defaults are seeded at Open,
// so an emptied list stays empty.
func (r *CategoryRepo) List() ([]string, error) {
	out := []string{}
	if err := r.db.Select(&out, `SELECT name FROM categories ORDER BY position`); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CategoryRepo) ReplaceAll(cats []string) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()
	if _, err := tx.Exec(`DELETE FROM categories`); err != nil {
		return err
	}
	for i, name := range cats {
		if _, err := tx.Exec(`INSERT INTO categories(position, name) VALUES(?,?)`, i+1, name); err != nil {
			return err
		}
	}
	return tx.Commit()
}
