package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/erp-inventory/internal/application/inventory"
	"github.com/jhoicas/erp-inventory/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner serializa las mutaciones del motor FIFO con un mutex global: dos
// retiros concurrentes nunca planifican contra un total obsoleto. El caso de
// uso planifica sin mutar, así que una verificación fallida no deja cambios
// parciales aunque no exista rollback.
type TxRunner struct {
	mu          sync.Mutex
	lots        repository.LotRepository
	withdrawals repository.WithdrawalRepository
}

func NewTxRunner(lots repository.LotRepository, withdrawals repository.WithdrawalRepository) *TxRunner {
	return &TxRunner{lots: lots, withdrawals: withdrawals}
}

func (t *TxRunner) Run(ctx context.Context, fn func(
	lotRepo repository.LotRepository,
	withdrawalRepo repository.WithdrawalRepository,
) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(t.lots, t.withdrawals)
}
