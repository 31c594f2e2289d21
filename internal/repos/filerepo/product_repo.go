package filerepo

import (
	"encoding/json"

	"ayurveda/internal/domain"
	"ayurveda/internal/repos"
)

type ProductRepo struct{ doc document }

func (r *ProductRepo) load() ([]domain.Product, error) {
	b, err := r.doc.readBytes()
	if err != nil || len(b) == 0 {
		return nil, err
	}
	var out []domain.Product
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ProductRepo) save(ps []domain.Product) error {
	if ps == nil {
		ps = []domain.Product{}
	}
	b, err := marshalDoc(ps)
	if err != nil {
		return err
	}
	return r.doc.writeBytes(b)
}

func (r *ProductRepo) seedIfEmpty() error {
	r.doc.mu.Lock()
	defer r.doc.mu.Unlock()
	ps, err := r.load()
	if err != nil {
		return err
	}
	if len(ps) > 0 {
		return nil
	}
	return r.save(repos.DefaultProducts())
}

func (r *ProductRepo) List() ([]domain.Product, error) {
	r.doc.mu.RLock()
	defer r.doc.mu.RUnlock()
	return r.load()
}

func (r *ProductRepo) Get(id int64) (domain.Product, error) {
	ps, err := r.List()
	if err != nil {
		return domain.Product{}, err
	}
	for _, p := range ps {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, repos.ErrNotFound
}

func (r *ProductRepo) Create(p domain.Product) error {
	r.doc.mu.Lock()
	defer r.doc.mu.Unlock()
	ps, err := r.load()
	if err != nil {
		return err
	}
	return r.save(append(ps, p))
}

func (r *ProductRepo) Update(p domain.Product) error {
	r.doc.mu.Lock()
	defer r.doc.mu.Unlock()
	ps, err := r.load()
	if err != nil {
		return err
	}
	for i := range ps {
		if ps[i].ID == p.ID {
			ps[i] = p
			return r.save(ps)
		}
	}
	return repos.ErrNotFound
}

func (r *ProductRepo) Delete(id int64) error {
	r.doc.mu.Lock()
	defer r.doc.mu.Unlock()
	ps, err := r.load()
	if err != nil {
		return err
	}
	kept := ps[:0]
	for _, p := range ps {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(ps) {
		return repos.ErrNotFound
	}
	return r.save(kept)
}

func (r *ProductRepo) ReplaceAll(ps []domain.Product) error {
	r.doc.mu.Lock()
	defer r.doc.mu.Unlock()
	return r.save(ps)
}
