package report

import (
	"context"

	"github.com/shopspring/decimal"

	appinventory "github.com/jhoicas/erp-inventory/internal/application/inventory"
	"github.com/jhoicas/erp-inventory/internal/domain"
	"github.com/jhoicas/erp-inventory/internal/domain/repository"
)

// ExportPDFUseCase genera el reporte de inventario valorado en PDF (botón
// "Export" de las pantallas de inventario).
type ExportPDFUseCase struct {
	stockUC     *appinventory.StockUseCase
	companyRepo repository.CompanyRepository
	generator   ValuationPDFGenerator
}

// NewExportPDFUseCase construye el caso de uso de exportación.
func NewExportPDFUseCase(
	stockUC *appinventory.StockUseCase,
	companyRepo repository.CompanyRepository,
	generator ValuationPDFGenerator,
) *ExportPDFUseCase {
	return &ExportPDFUseCase{stockUC: stockUC, companyRepo: companyRepo, generator: generator}
}

// Export devuelve los bytes del PDF con las existencias y el valor FIFO en
// libros de todos los artículos de la empresa.
func (uc *ExportPDFUseCase) Export(ctx context.Context, companyID string) ([]byte, error) {
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.stockUC.ListOnHand(companyID, "", 500, 0)
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	for _, row := range list.Items {
		total = total.Add(row.Valuation)
	}
	return uc.generator.GenerateValuationPDF(ctx, company, list.Items, total)
}
