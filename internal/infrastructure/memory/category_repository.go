package memory

import (
	"sort"
	"sync"

	"github.com/jhoicas/erp-inventory/internal/domain/entity"
	"github.com/jhoicas/erp-inventory/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepository)(nil)

// CategoryRepository guarda categorías y sus buckets de talla en memoria.
type CategoryRepository struct {
	mu         sync.RWMutex
	categories map[string]*entity.Category
}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{categories: make(map[string]*entity.Category)}
}

func copyCategory(c *entity.Category) *entity.Category {
	out := *c
	out.Sizes = append([]entity.SizeBucket(nil), c.Sizes...)
	return &out
}

func (r *CategoryRepository) Create(category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories[category.ID] = copyCategory(category)
	return nil
}

func (r *CategoryRepository) GetByID(id string) (*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	category, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	return copyCategory(category), nil
}

func (r *CategoryRepository) Update(category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[category.ID]; !ok {
		return nil
	}
	r.categories[category.ID] = copyCategory(category)
	return nil
}

func (r *CategoryRepository) ListByCompany(companyID string) ([]*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Category
	for _, category := range r.categories {
		if category.CompanyID == companyID {
			out = append(out, copyCategory(category))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	for _, category := range out {
		sizes := category.Sizes
		sort.Slice(sizes, func(i, j int) bool { return sizes[i].Position < sizes[j].Position })
	}
	return out, nil
}

func (r *CategoryRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.categories, id)
	return nil
}
