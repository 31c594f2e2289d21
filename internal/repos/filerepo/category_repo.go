package filerepo

import (
	"strings"

	"ayurveda/internal/repos"
)

// CategoryRepo stores the list as newline-joined text, unlike the JSON
// documents. Blank lines are dropped on read.
type CategoryRepo struct{ doc document }

func (r *CategoryRepo) List() ([]string, error) {
	r.doc.mu.RLock()
	defer r.doc.mu.RUnlock()
	b, err := r.doc.readBytes()
	if err != nil {
		return nil, err
	}
	if b == nil {
		return repos.DefaultCategories(), nil
	}
	// An existing file with no usable lines is an emptied list, not an
	// unseeded one.
	out := []string{}
	for _, line := range strings.Split(string(b), "\n") {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out, nil
}

func (r *CategoryRepo) ReplaceAll(cats []string) error {
	r.doc.mu.Lock()
	defer r.doc.mu.Unlock()
	return r.doc.writeBytes([]byte(strings.Join(cats, "\n")))
}
