package product

import (
	"cmp"
	"context"
	"slices"
)

type memoryRepository struct {
	items []Product
}

// NewMemoryRepository serves a fixed catalog, ordered by ID like the
// Postgres repository.
func NewMemoryRepository(items ...Product) Repository {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b Product) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return &memoryRepository{items: sorted}
}

func (r *memoryRepository) List(_ context.Context) ([]Product, error) {
	return slices.Clone(r.items), nil
}

func (r *memoryRepository) GetByID(_ context.Context, id int64) (Product, error) {
	for _, p := range r.items {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrProductNotFound
}
