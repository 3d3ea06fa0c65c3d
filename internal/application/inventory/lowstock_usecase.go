package inventory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/erp-inventory/internal/application/dto"
	"github.com/jhoicas/erp-inventory/internal/domain/entity"
	"github.com/jhoicas/erp-inventory/internal/domain/repository"
)

// LowStockUseCase genera la lista de reposición: artículos en estado de
// alerta (critical/warning) con la cantidad sugerida de pedido, ordenados por
// severidad.
type LowStockUseCase struct {
	itemRepo repository.ItemRepository
	lotRepo  repository.LotRepository
}

// NewLowStockUseCase construye el caso de uso de reposición.
func NewLowStockUseCase(itemRepo repository.ItemRepository, lotRepo repository.LotRepository) *LowStockUseCase {
	return &LowStockUseCase{itemRepo: itemRepo, lotRepo: lotRepo}
}

// List devuelve los artículos bajo alerta de stock. La cantidad sugerida
// lleva el stock al doble del nivel mínimo (stock ideal = 2 * mínimo).
func (uc *LowStockUseCase) List(ctx context.Context, companyID string) ([]dto.LowStockRow, error) {
	items, err := uc.itemRepo.ListByCompany(companyID, 500, 0)
	if err != nil {
		return nil, err
	}
	onHand, err := uc.lotRepo.OnHandByCompany(companyID)
	if err != nil {
		return nil, err
	}

	two := decimal.NewFromInt(2)
	rows := make([]dto.LowStockRow, 0)
	for _, item := range items {
		qty, ok := onHand[item.ID]
		if !ok {
			qty = decimal.Zero
		}
		status := item.StockStatus(qty)
		if status == entity.StockStatusHealthy {
			continue
		}
		suggested := item.MinStockLevel.Mul(two).Sub(qty)
		if suggested.LessThan(decimal.Zero) {
			suggested = decimal.Zero
		}
		rows = append(rows, dto.LowStockRow{
			Item:          toItemResponse(item),
			OnHand:        qty,
			MinStockLevel: item.MinStockLevel,
			SuggestedQty:  suggested,
			StockStatus:   status,
		})
	}

	// Critical primero; dentro del mismo estado, menor cobertura primero.
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].StockStatus != rows[j].StockStatus {
			return rows[i].StockStatus == entity.StockStatusCritical
		}
		return rows[i].OnHand.LessThan(rows[j].OnHand)
	})
	return rows, nil
}
