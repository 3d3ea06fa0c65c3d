package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/erp-inventory/internal/application/dto"
	"github.com/jhoicas/erp-inventory/internal/domain"
	"github.com/jhoicas/erp-inventory/internal/domain/entity"
	"github.com/jhoicas/erp-inventory/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías y sus buckets de talla.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría. Las tallas llegan ya normalizadas por la
// deserialización tolerante de dto.SizeInput; las vacías se descartan.
func (uc *CategoryUseCase) Create(companyID string, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	category := &entity.Category{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Position:  len(existing), // al final del orden estable
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, size := range in.Sizes {
		if size.Label == "" {
			continue
		}
		category.Sizes = append(category.Sizes, entity.SizeBucket{
			ID:       uuid.New().String(),
			Label:    size.Label,
			Position: len(category.Sizes),
		})
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	return toCategoryResponse(category), nil
}

// List lista categorías en orden estable.
func (uc *CategoryUseCase) List(companyID string) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}

// Delete elimina una categoría por ID.
func (uc *CategoryUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	sizes := make([]string, 0, len(c.Sizes))
	for _, s := range c.Sizes {
		sizes = append(sizes, s.Label)
	}
	return &dto.CategoryResponse{
		ID:       c.ID,
		Name:     c.Name,
		Position: c.Position,
		Sizes:    sizes,
	}
}
