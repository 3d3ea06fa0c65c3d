package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/erp-inventory/internal/application/dto"
	"github.com/jhoicas/erp-inventory/internal/domain/entity"
	"github.com/jhoicas/erp-inventory/internal/domain/repository"
)

// WarehouseUseCase casos de uso CRUD para bodegas, con el resumen de stock
// por bodega para el directorio (conteo disponible y valor de compra).
type WarehouseUseCase struct {
	repo    repository.WarehouseRepository
	lotRepo repository.LotRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository, lotRepo repository.LotRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo, lotRepo: lotRepo}
}

// Create crea una nueva bodega.
func (uc *WarehouseUseCase) Create(companyID string, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	now := time.Now()
	warehouse := &entity.Warehouse{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		Name:          in.Name,
		Address:       in.Address,
		InchargeName:  in.InchargeName,
		InchargePhone: in.InchargePhone,
		InchargeEmail: in.InchargeEmail,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse, repository.WarehouseStock{OnHand: decimal.Zero, Value: decimal.Zero}), nil
}

// GetByID obtiene una bodega por ID con su resumen de stock.
func (uc *WarehouseUseCase) GetByID(id string) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, nil
	}
	stats, err := uc.lotRepo.StatsByWarehouse(warehouse.CompanyID)
	if err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse, stats[warehouse.ID]), nil
}

// Update actualiza una bodega.
func (uc *WarehouseUseCase) Update(id string, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, nil
	}
	if in.Name != nil {
		warehouse.Name = *in.Name
	}
	if in.Address != nil {
		warehouse.Address = *in.Address
	}
	if in.InchargeName != nil {
		warehouse.InchargeName = *in.InchargeName
	}
	if in.InchargePhone != nil {
		warehouse.InchargePhone = *in.InchargePhone
	}
	if in.InchargeEmail != nil {
		warehouse.InchargeEmail = *in.InchargeEmail
	}
	warehouse.UpdatedAt = time.Now()
	if err := uc.repo.Update(warehouse); err != nil {
		return nil, err
	}
	stats, err := uc.lotRepo.StatsByWarehouse(warehouse.CompanyID)
	if err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse, stats[warehouse.ID]), nil
}

// List lista bodegas por empresa enriquecidas con el resumen de stock.
func (uc *WarehouseUseCase) List(companyID string, limit, offset int) (*dto.WarehouseListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	stats, err := uc.lotRepo.StatsByWarehouse(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseResponse(w, stats[w.ID]))
	}
	return &dto.WarehouseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una bodega por ID.
func (uc *WarehouseUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toWarehouseResponse(w *entity.Warehouse, stock repository.WarehouseStock) *dto.WarehouseResponse {
	if w == nil {
		return nil
	}
	return &dto.WarehouseResponse{
		ID:            w.ID,
		CompanyID:     w.CompanyID,
		Name:          w.Name,
		Address:       w.Address,
		InchargeName:  w.InchargeName,
		InchargePhone: w.InchargePhone,
		InchargeEmail: w.InchargeEmail,
		ItemsInStock:  stock.OnHand,
		PurchaseValue: stock.Value,
		CreatedAt:     w.CreatedAt,
		UpdatedAt:     w.UpdatedAt,
	}
}
