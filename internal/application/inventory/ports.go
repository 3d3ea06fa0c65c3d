package inventory

import (
	"context"

	"github.com/jhoicas/erp-inventory/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción, pasando repositorios
// atados a esa transacción. Garantiza atomicidad y serialización por artículo
// para el motor FIFO: dos retiros concurrentes sobre el mismo artículo no
// pueden pasar ambos la verificación de stock contra un total obsoleto.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		lotRepo repository.LotRepository,
		withdrawalRepo repository.WithdrawalRepository,
	) error) error
}
