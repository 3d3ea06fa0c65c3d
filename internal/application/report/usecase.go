// Package report implementa los reportes de solo lectura sobre el Lot Store:
// la posición de stock por categoría y talla, y la exportación a PDF del
// inventario valorado. No posee datos canónicos propios.
package report

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/erp-inventory/internal/application/dto"
	"github.com/jhoicas/erp-inventory/internal/domain/entity"
	"github.com/jhoicas/erp-inventory/internal/domain/repository"
)

// StockPositionUseCase arma el rollup categoría → talla → cantidad disponible.
type StockPositionUseCase struct {
	categoryRepo repository.CategoryRepository
	itemRepo     repository.ItemRepository
	lotRepo      repository.LotRepository
}

// NewStockPositionUseCase construye el caso de uso.
func NewStockPositionUseCase(
	categoryRepo repository.CategoryRepository,
	itemRepo repository.ItemRepository,
	lotRepo repository.LotRepository,
) *StockPositionUseCase {
	return &StockPositionUseCase{
		categoryRepo: categoryRepo,
		itemRepo:     itemRepo,
		lotRepo:      lotRepo,
	}
}

// Report devuelve, por categoría en orden estable, los buckets de talla con
// la cantidad disponible sumada sobre los artículos de ese par
// (categoría, talla). Los buckets con stock cero se conservan; artículos con
// talla que no coincide con ningún bucket van al bucket por defecto.
func (uc *StockPositionUseCase) Report(ctx context.Context, companyID string) (*dto.StockPositionResponse, error) {
	categories, err := uc.categoryRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items, err := uc.itemRepo.ListByCompany(companyID, 500, 0)
	if err != nil {
		return nil, err
	}
	onHand, err := uc.lotRepo.OnHandByCompany(companyID)
	if err != nil {
		return nil, err
	}

	// Agrupar artículos por categoría
	itemsByCategory := make(map[string][]*entity.Item)
	for _, item := range items {
		itemsByCategory[item.CategoryID] = append(itemsByCategory[item.CategoryID], item)
	}

	reports := make([]dto.CategoryReportDTO, 0, len(categories))
	for _, cat := range categories {
		report := dto.CategoryReportDTO{
			CategoryID:   cat.ID,
			CategoryName: cat.Name,
			Sizes:        make([]dto.SizeBucketDTO, 0, len(cat.Sizes)+1),
		}
		index := make(map[string]int, len(cat.Sizes))
		for _, bucket := range cat.Sizes {
			index[bucket.Label] = len(report.Sizes)
			report.Sizes = append(report.Sizes, dto.SizeBucketDTO{Label: bucket.Label, OnHand: decimal.Zero})
		}

		fallback := decimal.Zero
		hasFallback := false
		for _, item := range itemsByCategory[cat.ID] {
			qty, ok := onHand[item.ID]
			if !ok || qty.IsZero() {
				continue
			}
			if i, ok := index[item.SizeLabel]; ok {
				report.Sizes[i].OnHand = report.Sizes[i].OnHand.Add(qty)
			} else {
				// Talla desconocida: bucket por defecto, nunca fallar
				fallback = fallback.Add(qty)
				hasFallback = true
			}
		}
		if hasFallback {
			report.Sizes = append(report.Sizes, dto.SizeBucketDTO{
				Label:  entity.DefaultSizeLabel,
				OnHand: fallback,
			})
		}
		reports = append(reports, report)
	}
	return &dto.StockPositionResponse{Data: reports}, nil
}
