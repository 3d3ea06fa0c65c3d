package memory

import (
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/erp-inventory/internal/domain/entity"
	"github.com/jhoicas/erp-inventory/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepository)(nil)

// ItemRepository guarda artículos en memoria, indexados por ID.
type ItemRepository struct {
	mu    sync.RWMutex
	items map[string]*entity.Item
}

func NewItemRepository() *ItemRepository {
	return &ItemRepository{items: make(map[string]*entity.Item)}
}

func (r *ItemRepository) Create(item *entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *item
	r.items[item.ID] = &stored
	return nil
}

func (r *ItemRepository) GetByID(id string) (*entity.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	c := *item
	return &c, nil
}

func (r *ItemRepository) GetByCompanyAndSKU(companyID, sku string) (*entity.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, item := range r.items {
		if item.CompanyID == companyID && strings.EqualFold(item.SKU, sku) {
			c := *item
			return &c, nil
		}
	}
	return nil, nil
}

func (r *ItemRepository) Update(item *entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; !ok {
		return nil
	}
	stored := *item
	r.items[item.ID] = &stored
	return nil
}

// ListByCompany devuelve artículos ordenados por SKU para listados estables.
func (r *ItemRepository) ListByCompany(companyID string, limit, offset int) ([]*entity.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Item
	for _, item := range r.items {
		if item.CompanyID == companyID {
			c := *item
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SKU < out[j].SKU })
	return paginate(out, limit, offset), nil
}

func (r *ItemRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}
