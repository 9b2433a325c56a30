package catalog

import (
	"fmt"
	"strings"
)

// Search returns catalog products in catalog order. Category must match
// exactly unless it is empty or "all"; query matches name or description
// case-insensitively. No match yields an empty slice.
func Search(query, category string) ([]Product, error) {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		category = CategoryAll
	}
	if !isCategory(category) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	needle := strings.ToLower(query)

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if category != CategoryAll && p.Category != category {
			continue
		}
		if !strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) {
			continue
		}
		out = append(out, p.clone())
	}
	return out, nil
}

// Lookup returns the product with the exact name.
func Lookup(name string) (Product, bool) {
	for _, p := range products {
		if p.Name == name {
			return p.clone(), true
		}
	}
	return Product{}, false
}
