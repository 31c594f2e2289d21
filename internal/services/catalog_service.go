package services

import (
	"errors"
	"strings"
	"time"

	"ayurveda/internal/domain"
	"ayurveda/internal/repos"
	"ayurveda/internal/validate"
)

var (
	ErrProductFields   = errors.New("name, category and image are required")
	ErrBadPrice        = errors.New("price cannot be negative")
	ErrBadDiscount     = errors.New("discount must be between 0 and 100")
	ErrCategoryExists  = errors.New("category already exists")
	ErrCategoryMissing = errors.New("category not found")
)

type CatalogService struct {
	Products   repos.ProductRepo
	Categories repos.CategoryRepo
}

func NewCatalogService(products repos.ProductRepo, categories repos.CategoryRepo) *CatalogService {
	return &CatalogService{Products: products, Categories: categories}
}

// ProductFilter holds the four storefront predicates; empty fields
// match everything. PriceRange buckets compare against the unrounded
// discounted price.
type ProductFilter struct {
	Search      string
	Category    string
	PriceRange  string // "0-500" | "500-1000" | "1000-2000" | "2000+"
	MinDiscount float64
}

func (f ProductFilter) matches(p domain.Product) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			return false
		}
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.PriceRange != "" {
		price := p.RawDiscountedPrice()
		switch f.PriceRange {
		case "0-500":
			if price > 500 {
				return false
			}
		case "500-1000":
			if price <= 500 || price > 1000 {
				return false
			}
		case "1000-2000":
			if price <= 1000 || price > 2000 {
				return false
			}
		case "2000+":
			if price <= 2000 {
				return false
			}
		}
	}
	if f.MinDiscount > 0 && p.Discount < f.MinDiscount {
		return false
	}
	return true
}

func (s *CatalogService) List() ([]domain.Product, error) {
	return s.Products.List()
}

// Filter evaluates all predicates over the full product list per call.
func (s *CatalogService) Filter(f ProductFilter) ([]domain.Product, error) {
	ps, err := s.Products.List()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Product, 0, len(ps))
	for _, p := range ps {
		if f.matches(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *CatalogService) Get(id int64) (domain.Product, error) {
	return s.Products.Get(id)
}

func validateProduct(p domain.Product) error {
	if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Category) == "" || strings.TrimSpace(p.Image) == "" {
		return ErrProductFields
	}
	if !validate.Price(p.Price) {
		return ErrBadPrice
	}
	if !validate.Discount(p.Discount) {
		return ErrBadDiscount
	}
	return nil
}

// Create assigns a millisecond id when none is given, matching the ids
// the legacy admin bundle generated.
func (s *CatalogService) Create(p domain.Product) (domain.Product, error) {
	if err := validateProduct(p); err != nil {
		return domain.Product{}, err
	}
	if p.ID == 0 {
		p.ID = time.Now().UnixMilli()
	}
	return p, s.Products.Create(p)
}

func (s *CatalogService) Update(p domain.Product) error {
	if err := validateProduct(p); err != nil {
		return err
	}
	return s.Products.Update(p)
}

func (s *CatalogService) Delete(id int64) error {
	return s.Products.Delete(id)
}

func (s *CatalogService) ListCategories() ([]string, error) {
	return s.Categories.List()
}

func (s *CatalogService) AddCategory(name string) error {
	cats, err := s.Categories.List()
	if err != nil {
		return err
	}
	for _, c := range cats {
		if strings.EqualFold(c, name) {
			return ErrCategoryExists
		}
	}
	return s.Categories.ReplaceAll(append(cats, name))
}

func (s *CatalogService) RenameCategory(oldName, newName string) error {
	cats, err := s.Categories.List()
	if err != nil {
		return err
	}
	idx := -1
	for i, c := range cats {
		if strings.EqualFold(c, newName) && !strings.EqualFold(c, oldName) {
			return ErrCategoryExists
		}
		if strings.EqualFold(c, oldName) {
			idx = i
		}
	}
	if idx < 0 {
		return ErrCategoryMissing
	}
	cats[idx] = newName
	return s.Categories.ReplaceAll(cats)
}

func (s *CatalogService) DeleteCategory(name string) error {
	cats, err := s.Categories.List()
	if err != nil {
		return err
	}
	kept := make([]string, 0, len(cats))
	found := false
	for _, c := range cats {
		if strings.EqualFold(c, name) {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return ErrCategoryMissing
	}
	return s.Categories.ReplaceAll(kept)
}
