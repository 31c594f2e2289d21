// Package filerepo persists each collection as one flat document under
// a data directory: JSON for products/users/orders, a newline-joined
// list for categories. Every operation reads or rewrites the whole
// document; a per-document lock plus temp-file-and-rename writes keep
// concurrent requests from tearing a file mid-write.
package filerepo

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"ayurveda/internal/repos"
)

type document struct {
	path string
	mu   sync.RWMutex
}

// readBytes returns nil with no error when the file does not exist;
// callers treat that as an empty collection.
func (d *document) readBytes() ([]byte, error) {
	b, err := os.ReadFile(d.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	return b, err
}

func (d *document) writeBytes(b []byte) error {
	tmp := d.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, d.path)
}

func marshalDoc(v any) ([]byte, error) {
	// Same on-disk shape as JSON.stringify(v, null, 2).
	return json.MarshalIndent(v, "", "  ")
}

// Open prepares the data directory and seeds the baseline catalog when
// no products document exists yet.
func Open(dir string) (*repos.Stores, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	products := &ProductRepo{doc: document{path: filepath.Join(dir, "products.txt")}}
	users := &UserRepo{doc: document{path: filepath.Join(dir, "users.txt")}}
	orders := &OrderRepo{doc: document{path: filepath.Join(dir, "orders.txt")}}
	categories := &CategoryRepo{doc: document{path: filepath.Join(dir, "category.txt")}}

	if err := products.seedIfEmpty(); err != nil {
		return nil, err
	}

	return repos.NewStores(products, users, orders, categories, nil), nil
}
