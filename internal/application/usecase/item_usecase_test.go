package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-inventory/internal/application/dto"
	"github.com/jhoicas/erp-inventory/internal/application/usecase"
	"github.com/jhoicas/erp-inventory/internal/domain"
	"github.com/jhoicas/erp-inventory/internal/domain/entity"
	"github.com/jhoicas/erp-inventory/internal/infrastructure/memory"
)

const companyID = "company-1"

// repo que falla en la consulta de duplicados, simulando una caída de
// infraestructura.
type failingItemRepo struct {
	*memory.ItemRepository
}

var errRepoDown = errors.New("conexión perdida")

func (r *failingItemRepo) GetByCompanyAndSKU(companyID, sku string) (*entity.Item, error) {
	return nil, errRepoDown
}

func TestCreateItem_SKUDuplicadoRetornaErrDuplicate(t *testing.T) {
	uc := usecase.NewItemUseCase(memory.NewItemRepository())

	_, err := uc.Create(companyID, dto.CreateItemRequest{SKU: "ITM001", Name: "Camisa Oxford"})
	require.NoError(t, err)

	_, err = uc.Create(companyID, dto.CreateItemRequest{SKU: "ITM001", Name: "Otra camisa"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Una falla del repositorio en el chequeo de duplicados debe propagarse, no
// leerse como "no hay duplicado".
func TestCreateItem_FallaDelRepoSePropaga(t *testing.T) {
	uc := usecase.NewItemUseCase(&failingItemRepo{memory.NewItemRepository()})

	_, err := uc.Create(companyID, dto.CreateItemRequest{SKU: "ITM001", Name: "Camisa Oxford"})
	assert.ErrorIs(t, err, errRepoDown)
}
