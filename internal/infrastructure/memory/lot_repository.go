// Package memory implementa los puertos de persistencia en memoria: es el
// Lot Store de referencia para desarrollo y tests. Los lotes se guardan
// append-only en estricto orden de llegada; las mutaciones se serializan a
// través del TxRunner del paquete.
package memory

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/erp-inventory/internal/domain/entity"
	"github.com/jhoicas/erp-inventory/internal/domain/inventory"
	"github.com/jhoicas/erp-inventory/internal/domain/repository"
)

var _ repository.LotRepository = (*LotRepository)(nil)

// LotRepository almacena lotes en memoria con secuencia de inserción
// monotónica (desempate FIFO ante timestamps iguales).
type LotRepository struct {
	mu   sync.RWMutex
	lots []*entity.Lot
	seq  int64
}

// NewLotRepository construye el Lot Store en memoria.
func NewLotRepository() *LotRepository {
	return &LotRepository{}
}

// Create agrega un lote nuevo asignándole la siguiente secuencia.
func (r *LotRepository) Create(lot *entity.Lot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	lot.Seq = r.seq
	stored := *lot
	r.lots = append(r.lots, &stored)
	return nil
}

// GetByID devuelve una copia del lote, o nil si no existe.
func (r *LotRepository) GetByID(id string) (*entity.Lot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, lot := range r.lots {
		if lot.ID == id {
			c := *lot
			return &c, nil
		}
	}
	return nil, nil
}

// ListByItem devuelve todos los lotes del artículo (incluidos agotados) en
// orden FIFO. Vacío si el artículo no tiene lotes.
func (r *LotRepository) ListByItem(itemID string) ([]*entity.Lot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Lot
	for _, lot := range r.lots {
		if lot.ItemID == itemID {
			c := *lot
			out = append(out, &c)
		}
	}
	inventory.SortFIFO(out)
	return out, nil
}

// ListByItemForUpdate en memoria equivale a ListByItem: la exclusión mutua la
// da el TxRunner, que serializa todas las mutaciones.
func (r *LotRepository) ListByItemForUpdate(itemID string) ([]*entity.Lot, error) {
	return r.ListByItem(itemID)
}

// UpdateRemaining fija el remanente de un lote consumido.
func (r *LotRepository) UpdateRemaining(lotID string, remaining decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, lot := range r.lots {
		if lot.ID == lotID {
			lot.Remaining = remaining
			return nil
		}
	}
	return nil
}

// OnHandByCompany devuelve cantidad disponible por itemID.
func (r *LotRepository) OnHandByCompany(companyID string) (map[string]decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]decimal.Decimal)
	for _, lot := range r.lots {
		if lot.CompanyID != companyID {
			continue
		}
		out[lot.ItemID] = out[lot.ItemID].Add(lot.Remaining)
	}
	return out, nil
}

// ValuationByCompany devuelve el valor FIFO en libros por itemID.
func (r *LotRepository) ValuationByCompany(companyID string) (map[string]decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]decimal.Decimal)
	for _, lot := range r.lots {
		if lot.CompanyID != companyID {
			continue
		}
		out[lot.ItemID] = out[lot.ItemID].Add(lot.BookValue())
	}
	return out, nil
}

// StatsByWarehouse devuelve resumen disponible/valor por warehouseID.
func (r *LotRepository) StatsByWarehouse(companyID string) (map[string]repository.WarehouseStock, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]repository.WarehouseStock)
	for _, lot := range r.lots {
		if lot.CompanyID != companyID {
			continue
		}
		s := out[lot.WarehouseID]
		s.OnHand = s.OnHand.Add(lot.Remaining)
		s.Value = s.Value.Add(lot.BookValue())
		out[lot.WarehouseID] = s
	}
	return out, nil
}
