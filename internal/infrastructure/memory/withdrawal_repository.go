package memory

import (
	"sort"
	"sync"

	"github.com/jhoicas/erp-inventory/internal/domain/entity"
	"github.com/jhoicas/erp-inventory/internal/domain/repository"
)

var _ repository.WithdrawalRepository = (*WithdrawalRepository)(nil)

// WithdrawalRepository guarda retiros FIFO en memoria (registro de auditoría).
type WithdrawalRepository struct {
	mu          sync.RWMutex
	withdrawals []*entity.Withdrawal
}

func NewWithdrawalRepository() *WithdrawalRepository {
	return &WithdrawalRepository{}
}

func (r *WithdrawalRepository) Create(w *entity.Withdrawal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *w
	stored.Consumptions = append([]entity.LotConsumption(nil), w.Consumptions...)
	r.withdrawals = append(r.withdrawals, &stored)
	return nil
}

func (r *WithdrawalRepository) GetByID(id string) (*entity.Withdrawal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, w := range r.withdrawals {
		if w.ID == id {
			c := *w
			c.Consumptions = append([]entity.LotConsumption(nil), w.Consumptions...)
			return &c, nil
		}
	}
	return nil, nil
}

// ListByItem devuelve retiros del artículo, más recientes primero.
func (r *WithdrawalRepository) ListByItem(itemID string, limit, offset int) ([]*entity.Withdrawal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Withdrawal
	for _, w := range r.withdrawals {
		if w.ItemID == itemID {
			c := *w
			c.Consumptions = append([]entity.LotConsumption(nil), w.Consumptions...)
			out = append(out, &c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return paginate(out, limit, offset), nil
}

// paginate aplica limit/offset sobre un slice ya ordenado.
func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
