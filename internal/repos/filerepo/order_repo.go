package filerepo

import (
	"encoding/json"

	"ayurveda/internal/domain"
	"ayurveda/internal/repos"
)

type OrderRepo struct{ doc document }

func (r *OrderRepo) load() ([]domain.Order, error) {
	b, err := r.doc.readBytes()
	if err != nil || len(b) == 0 {
		return nil, err
	}
	var out []domain.Order
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *OrderRepo) save(os []domain.Order) error {
	if os == nil {
		os = []domain.Order{}
	}
	b, err := marshalDoc(os)
	if err != nil {
		return err
	}
	return r.doc.writeBytes(b)
}

func (r *OrderRepo) List() ([]domain.Order, error) {
	r.doc.mu.RLock()
	defer r.doc.mu.RUnlock()
	return r.load()
}

func (r *OrderRepo) Get(id string) (domain.Order, error) {
	os, err := r.List()
	if err != nil {
		return domain.Order{}, err
	}
	for _, o := range os {
		if o.ID == id {
			return o, nil
		}
	}
	return domain.Order{}, repos.ErrNotFound
}

func (r *OrderRepo) Create(o domain.Order) error {
	r.doc.mu.Lock()
	defer r.doc.mu.Unlock()
	os, err := r.load()
	if err != nil {
		return err
	}
	return r.save(append(os, o))
}

func (r *OrderRepo) Update(o domain.Order) error {
	r.doc.mu.Lock()
	defer r.doc.mu.Unlock()
	os, err := r.load()
	if err != nil {
		return err
	}
	for i := range os {
		if os[i].ID == o.ID {
			os[i] = o
			return r.save(os)
		}
	}
	return repos.ErrNotFound
}

func (r *OrderRepo) ReplaceAll(os []domain.Order) error {
	r.doc.mu.Lock()
	defer r.doc.mu.Unlock()
	return r.save(os)
}
