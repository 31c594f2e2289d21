package repos

import (
	"errors"

	"ayurveda/internal/domain"
)

// ErrNotFound is returned by Get/Update/Delete when no record matches.
var ErrNotFound = errors.New("record not found")

// ProductRepo is the identifier-addressed view over the products document.
// ReplaceAll backs the legacy whole-document save endpoint.
type ProductRepo interface {
	List() ([]domain.Product, error)
	Get(id int64) (domain.Product, error)
	Create(p domain.Product) error
	Update(p domain.Product) error
	Delete(id int64) error
	ReplaceAll(ps []domain.Product) error
}

// UserRepo keys records by mobile number. Upsert keeps the original
// userId and registeredOn when the mobile is already known.
type UserRepo interface {
	List() ([]domain.User, error)
	ByMobile(mobile string) (domain.User, error)
	Upsert(u domain.User) (domain.User, error)
	ReplaceAll(us []domain.User) error
}

type OrderRepo interface {
	List() ([]domain.Order, error)
	Get(id string) (domain.Order, error)
	Create(o domain.Order) error
	Update(o domain.Order) error
	ReplaceAll(os []domain.Order) error
}

// CategoryRepo holds the plain category name list. List falls back to
// the built-in defaults when nothing has been stored yet.
type CategoryRepo interface {
	List() ([]string, error)
	ReplaceAll(cats []string) error
}

// Stores bundles the four document repositories behind one handle.
type Stores struct {
	Products   ProductRepo
	Users      UserRepo
	Orders     OrderRepo
	Categories CategoryRepo

	closer func() error
}

func NewStores(p ProductRepo, u UserRepo, o OrderRepo, c CategoryRepo, closer func() error) *Stores {
	return &Stores{Products: p, Users: u, Orders: o, Categories: c, closer: closer}
}

func (s *Stores) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}
