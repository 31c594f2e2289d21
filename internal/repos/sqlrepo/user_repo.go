package sqlrepo

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"ayurveda/internal/domain"
	"ayurveda/internal/repos"
)

type UserRepo struct{ db *sqlx.DB }

type userRow struct {
	UserID       string `db:"user_id"`
	Name         string `db:"name"`
	Mobile       string `db:"mobile"`
	Email        string `db:"email"`
	Address      string `db:"address"`
	RegisteredOn string `db:"registered_on"`
}

func (row userRow) toDomain() domain.User {
	ts, _ := time.Parse(timeLayout, row.RegisteredOn)
	return domain.User{
		UserID:       row.UserID,
		Name:         row.Name,
		Mobile:       row.Mobile,
		Email:        row.Email,
		Address:      row.Address,
		RegisteredOn: ts,
	}
}

const userCols = `user_id, name, mobile, email, address, registered_on`

func (r *UserRepo) List() ([]domain.User, error) {
	var rows []userRow
	if err := r.db.Select(&rows, `SELECT `+userCols+` FROM users ORDER BY position`); err != nil {
		return nil, err
	}
	out := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *UserRepo) ByMobile(mobile string) (domain.User, error) {
	var row userRow
	err := r.db.Get(&row, `SELECT `+userCols+` FROM users WHERE mobile=?`, mobile)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, repos.ErrNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return row.toDomain(), nil
}

func (r *UserRepo) Upsert(u domain.User) (domain.User, error) {
	existing, err := r.ByMobile(u.Mobile)
	if err == nil {
		existing.Name = u.Name
		existing.Email = u.Email
		existing.Address = u.Address
		_, err = r.db.Exec(`UPDATE users SET name=?, email=?, address=? WHERE mobile=?`,
			u.Name, u.Email, u.Address, u.Mobile)
		return existing, err
	}
	if !errors.Is(err, repos.ErrNotFound) {
		return domain.User{}, err
	}
	if u.UserID == "" {
		u.UserID = fmt.Sprintf("USER%d", time.Now().UnixMilli())
	}
	if u.RegisteredOn.IsZero() {
		u.RegisteredOn = time.Now()
	}
	_, err = r.db.Exec(`
	  INSERT INTO users(`+userCols+`, position)
	  VALUES(?,?,?,?,?,?, (SELECT COALESCE(MAX(position),0)+1 FROM users))
	`, u.UserID, u.Name, u.Mobile, u.Email, u.Address, u.RegisteredOn.Format(timeLayout))
	return u, err
}

func (r *UserRepo) ReplaceAll(us []domain.User) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()
	if _, err := tx.Exec(`DELETE FROM users`); err != nil {
		return err
	}
	for i, u := range us {
		if _, err := tx.Exec(`
		  INSERT INTO users(`+userCols+`, position) VALUES(?,?,?,?,?,?,?)
		`, u.UserID, u.Name, u.Mobile, u.Email, u.Address, u.RegisteredOn.Format(timeLayout), i+1); err != nil {
			return err
		}
	}
	return tx.Commit()
}
