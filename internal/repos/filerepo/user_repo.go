package filerepo

import (
	"encoding/json"
	"fmt"
	"time"

	"ayurveda/internal/domain"
	"ayurveda/internal/repos"
)

type UserRepo struct{ doc document }

func (r *UserRepo) load() ([]domain.User, error) {
	b, err := r.doc.readBytes()
	if err != nil || len(b) == 0 {
		return nil, err
	}
	var out []domain.User
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *UserRepo) save(us []domain.User) error {
	if us == nil {
		us = []domain.User{}
	}
	b, err := marshalDoc(us)
	if err != nil {
		return err
	}
	return r.doc.writeBytes(b)
}

func (r *UserRepo) List() ([]domain.User, error) {
	r.doc.mu.RLock()
	defer r.doc.mu.RUnlock()
	return r.load()
}

func (r *UserRepo) ByMobile(mobile string) (domain.User, error) {
	us, err := r.List()
	if err != nil {
		return domain.User{}, err
	}
	for _, u := range us {
		if u.Mobile == mobile {
			return u, nil
		}
	}
	return domain.User{}, repos.ErrNotFound
}

// Upsert updates the record matching u.Mobile in place, keeping its
// userId and registeredOn; otherwise it appends a new record.
func (r *UserRepo) Upsert(u domain.User) (domain.User, error) {
	r.doc.mu.Lock()
	defer r.doc.mu.Unlock()
	us, err := r.load()
	if err != nil {
		return domain.User{}, err
	}
	for i := range us {
		if us[i].Mobile == u.Mobile {
			us[i].Name = u.Name
			us[i].Email = u.Email
			us[i].Address = u.Address
			return us[i], r.save(us)
		}
	}
	if u.UserID == "" {
		u.UserID = fmt.Sprintf("USER%d", time.Now().UnixMilli())
	}
	if u.RegisteredOn.IsZero() {
		u.RegisteredOn = time.Now()
	}
	us = append(us, u)
	return u, r.save(us)
}

func (r *UserRepo) ReplaceAll(us []domain.User) error {
	r.doc.mu.Lock()
	defer r.doc.mu.Unlock()
	return r.save(us)
}
