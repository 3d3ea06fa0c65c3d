package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/erp-inventory/internal/application/dto"
	"github.com/jhoicas/erp-inventory/internal/domain"
	"github.com/jhoicas/erp-inventory/internal/domain/entity"
	"github.com/jhoicas/erp-inventory/internal/domain/repository"
)

// ItemUseCase casos de uso CRUD para artículos de inventario.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// Create crea un artículo. Devuelve domain.ErrDuplicate si el SKU ya existe
// en la empresa.
func (uc *ItemUseCase) Create(companyID string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.SKU == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCompanyAndSKU(companyID, in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	item := &entity.Item{
		ID:             uuid.New().String(),
		CompanyID:      companyID,
		SKU:            in.SKU,
		Name:           in.Name,
		CategoryID:     in.CategoryID,
		SizeLabel:      in.SizeLabel,
		Unit:           in.Unit,
		Price:          in.Price,
		WholesalePrice: in.WholesalePrice,
		MinStockLevel:  in.MinStockLevel,
		Supplier:       in.Supplier,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID obtiene un artículo por ID.
func (uc *ItemUseCase) GetByID(id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toItemResponse(item), nil
}

// Update actualiza atributos de presentación; la identidad (ID, SKU) no cambia.
func (uc *ItemUseCase) Update(id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.CategoryID != nil {
		item.CategoryID = *in.CategoryID
	}
	if in.SizeLabel != nil {
		item.SizeLabel = *in.SizeLabel
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	if in.Price != nil {
		item.Price = *in.Price
	}
	if in.WholesalePrice != nil {
		item.WholesalePrice = in.WholesalePrice
	}
	if in.MinStockLevel != nil {
		item.MinStockLevel = *in.MinStockLevel
	}
	if in.Supplier != nil {
		item.Supplier = *in.Supplier
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// List lista artículos por empresa con paginación.
func (uc *ItemUseCase) List(companyID string, limit, offset int) (*dto.ItemListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, i := range list {
		items = append(items, *toItemResponse(i))
	}
	return &dto.ItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un artículo por ID.
func (uc *ItemUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toItemResponse(i *entity.Item) *dto.ItemResponse {
	if i == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:             i.ID,
		CompanyID:      i.CompanyID,
		SKU:            i.SKU,
		Name:           i.Name,
		CategoryID:     i.CategoryID,
		SizeLabel:      i.SizeLabel,
		Unit:           i.Unit,
		Price:          i.Price,
		WholesalePrice: i.WholesalePrice,
		MinStockLevel:  i.MinStockLevel,
		Supplier:       i.Supplier,
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
	}
}
