package memory

import (
	"sort"
	"sync"

	"github.com/jhoicas/erp-inventory/internal/domain/entity"
	"github.com/jhoicas/erp-inventory/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepository)(nil)

// WarehouseRepository guarda bodegas en memoria.
type WarehouseRepository struct {
	mu         sync.RWMutex
	warehouses map[string]*entity.Warehouse
}

func NewWarehouseRepository() *WarehouseRepository {
	return &WarehouseRepository{warehouses: make(map[string]*entity.Warehouse)}
}

func (r *WarehouseRepository) Create(warehouse *entity.Warehouse) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *warehouse
	r.warehouses[warehouse.ID] = &stored
	return nil
}

func (r *WarehouseRepository) GetByID(id string) (*entity.Warehouse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	warehouse, ok := r.warehouses[id]
	if !ok {
		return nil, nil
	}
	c := *warehouse
	return &c, nil
}

func (r *WarehouseRepository) Update(warehouse *entity.Warehouse) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.warehouses[warehouse.ID]; !ok {
		return nil
	}
	stored := *warehouse
	r.warehouses[warehouse.ID] = &stored
	return nil
}

func (r *WarehouseRepository) ListByCompany(companyID string, limit, offset int) ([]*entity.Warehouse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Warehouse
	for _, warehouse := range r.warehouses {
		if warehouse.CompanyID == companyID {
			c := *warehouse
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return paginate(out, limit, offset), nil
}

func (r *WarehouseRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.warehouses, id)
	return nil
}
