package report

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/erp-inventory/internal/application/dto"
	"github.com/jhoicas/erp-inventory/internal/domain/entity"
)

// ValuationPDFGenerator genera la representación PDF del inventario valorado.
// Implementado en infrastructure/pdf con Maroto.
type ValuationPDFGenerator interface {
	GenerateValuationPDF(
		ctx context.Context,
		company *entity.Company,
		rows []dto.OnHandRow,
		totalValue decimal.Decimal,
	) ([]byte, error)
}
