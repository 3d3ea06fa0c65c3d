package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinventory "github.com/jhoicas/erp-inventory/internal/application/inventory"
	"github.com/jhoicas/erp-inventory/internal/domain/entity"
	"github.com/jhoicas/erp-inventory/internal/infrastructure/memory"
)

type lowStockFixture struct {
	uc    *appinventory.LowStockUseCase
	items *memory.ItemRepository
	lots  *memory.LotRepository
}

func newLowStockFixture() *lowStockFixture {
	items := memory.NewItemRepository()
	lots := memory.NewLotRepository()
	return &lowStockFixture{
		uc:    appinventory.NewLowStockUseCase(items, lots),
		items: items,
		lots:  lots,
	}
}

func (f *lowStockFixture) addItem(t *testing.T, id string, minLevel, onHand int64) {
	t.Helper()
	require.NoError(t, f.items.Create(&entity.Item{
		ID:            id,
		CompanyID:     companyID,
		SKU:           id,
		Name:          id,
		MinStockLevel: decimal.NewFromInt(minLevel),
	}))
	if onHand > 0 {
		q := decimal.NewFromInt(onHand)
		require.NoError(t, f.lots.Create(&entity.Lot{
			ID:         "lot-" + id,
			CompanyID:  companyID,
			ItemID:     id,
			Quantity:   q,
			Remaining:  q,
			UnitCost:   decimal.NewFromInt(100),
			ReceivedAt: time.Now(),
		}))
	}
}

// La sugerencia lleva el stock al doble del mínimo; los artículos sanos no
// aparecen.
func TestLowStock_SugerenciaYFiltrado(t *testing.T) {
	f := newLowStockFixture()
	f.addItem(t, "critico", 10, 4)   // <= min: critical, sugerido 16
	f.addItem(t, "alerta", 10, 15)   // <= 2*min: warning, sugerido 5
	f.addItem(t, "sano", 10, 30)     // > 2*min: healthy
	f.addItem(t, "sin-minimo", 0, 0) // sin umbral nunca alerta

	rows, err := f.uc.List(context.Background(), companyID)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "critico", rows[0].Item.SKU)
	assert.Equal(t, entity.StockStatusCritical, rows[0].StockStatus)
	assert.True(t, rows[0].SuggestedQty.Equal(decimal.NewFromInt(16)))

	assert.Equal(t, "alerta", rows[1].Item.SKU)
	assert.Equal(t, entity.StockStatusWarning, rows[1].StockStatus)
	assert.True(t, rows[1].SuggestedQty.Equal(decimal.NewFromInt(5)))
}

// Critical antes que warning; a igual estado, menos stock primero.
func TestLowStock_OrdenPorSeveridad(t *testing.T) {
	f := newLowStockFixture()
	f.addItem(t, "alerta", 10, 18)
	f.addItem(t, "critico-b", 10, 7)
	f.addItem(t, "critico-a", 10, 2)

	rows, err := f.uc.List(context.Background(), companyID)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "critico-a", rows[0].Item.SKU)
	assert.Equal(t, "critico-b", rows[1].Item.SKU)
	assert.Equal(t, "alerta", rows[2].Item.SKU)
}

// Artículo sin lotes cuenta como stock cero.
func TestLowStock_SinLotesEsStockCero(t *testing.T) {
	f := newLowStockFixture()
	f.addItem(t, "nunca-recibido", 10, 0)

	rows, err := f.uc.List(context.Background(), companyID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].OnHand.IsZero())
	assert.True(t, rows[0].SuggestedQty.Equal(decimal.NewFromInt(20)))
}
