package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-inventory/internal/application/dto"
	appinventory "github.com/jhoicas/erp-inventory/internal/application/inventory"
	"github.com/jhoicas/erp-inventory/internal/domain"
	"github.com/jhoicas/erp-inventory/internal/domain/entity"
	"github.com/jhoicas/erp-inventory/internal/infrastructure/memory"
)

const (
	companyID = "company-1"
	userID    = "user-1"
)

// fixture arma el caso de uso completo sobre el backend en memoria.
type fixture struct {
	stock *appinventory.StockUseCase
	items *memory.ItemRepository
	lots  *memory.LotRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	items := memory.NewItemRepository()
	lots := memory.NewLotRepository()
	withdrawals := memory.NewWithdrawalRepository()
	tx := memory.NewTxRunner(lots, withdrawals)
	return &fixture{
		stock: appinventory.NewStockUseCase(tx, items, lots, withdrawals),
		items: items,
		lots:  lots,
	}
}

func (f *fixture) addItem(t *testing.T, id, sku, name string) {
	t.Helper()
	require.NoError(t, f.items.Create(&entity.Item{
		ID:        id,
		CompanyID: companyID,
		SKU:       sku,
		Name:      name,
		Unit:      "PCS",
	}))
}

func (f *fixture) receive(t *testing.T, itemID string, qty, cost int64, receivedAt time.Time) *dto.LotResponse {
	t.Helper()
	out, err := f.stock.Receive(context.Background(), companyID, userID, dto.ReceiveStockRequest{
		ItemID:     itemID,
		Quantity:   decimal.NewFromInt(qty),
		UnitCost:   decimal.NewFromInt(cost),
		ReceivedAt: &receivedAt,
	})
	require.NoError(t, err)
	return out
}

// Dos recepciones a costos distintos; el retiro cruza la primera capa y el
// costo sale parte a 480 y parte a 500.
func TestWithdraw_CostoFIFOEntreCapas(t *testing.T) {
	f := newFixture(t)
	f.addItem(t, "item-1", "ITM001", "Camisa Oxford")
	base := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	f.receive(t, "item-1", 50, 480, base)
	f.receive(t, "item-1", 70, 500, base.Add(time.Hour))

	out, err := f.stock.Withdraw(context.Background(), companyID, userID, dto.WithdrawRequest{
		ItemID:   "item-1",
		Quantity: decimal.NewFromInt(60),
	})
	require.NoError(t, err)

	// 50*480 + 10*500 = 29000
	assert.True(t, out.TotalCost.Equal(decimal.NewFromInt(29000)),
		"costo esperado 29000, obtenido %s", out.TotalCost)
	require.Len(t, out.Consumptions, 2)
	assert.True(t, out.Consumptions[0].Quantity.Equal(decimal.NewFromInt(50)))
	assert.True(t, out.Consumptions[1].Quantity.Equal(decimal.NewFromInt(10)))

	// La primera capa quedó agotada; queda 60 @ 500.
	val, err := f.stock.Valuation(companyID, "item-1")
	require.NoError(t, err)
	assert.True(t, val.OnHand.Equal(decimal.NewFromInt(60)))
	assert.True(t, val.Valuation.Equal(decimal.NewFromInt(30000)))
}

// Retirar exactamente todo lo recibido agota el artículo: disponible y
// valoración quedan en cero exacto, y las capas vivas desaparecen.
func TestWithdraw_AgotarTodoDejaCeroExacto(t *testing.T) {
	f := newFixture(t)
	f.addItem(t, "item-1", "ITM001", "Camisa Oxford")
	base := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	f.receive(t, "item-1", 50, 480, base)
	f.receive(t, "item-1", 70, 500, base.Add(time.Hour))
	f.receive(t, "item-1", 30, 510, base.Add(2*time.Hour))

	out, err := f.stock.Withdraw(context.Background(), companyID, userID, dto.WithdrawRequest{
		ItemID:   "item-1",
		Quantity: decimal.NewFromInt(150),
	})
	require.NoError(t, err)
	require.Len(t, out.Consumptions, 3)
	// 50*480 + 70*500 + 30*510 = 74300
	assert.True(t, out.TotalCost.Equal(decimal.NewFromInt(74300)))

	val, err := f.stock.Valuation(companyID, "item-1")
	require.NoError(t, err)
	assert.True(t, val.OnHand.IsZero(), "disponible esperado 0, obtenido %s", val.OnHand)
	assert.True(t, val.Valuation.IsZero(), "valoración esperada 0, obtenida %s", val.Valuation)

	layers, err := f.stock.GetLayers(companyID, "item-1")
	require.NoError(t, err)
	assert.Empty(t, layers.Layers, "no deben quedar capas vivas")
}

// Retiro por más del disponible: error y ningún lote mutado.
func TestWithdraw_StockInsuficienteNoMutaNada(t *testing.T) {
	f := newFixture(t)
	f.addItem(t, "item-1", "ITM001", "Camisa Oxford")
	base := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	f.receive(t, "item-1", 30, 480, base)
	f.receive(t, "item-1", 20, 500, base.Add(time.Hour))

	_, err := f.stock.Withdraw(context.Background(), companyID, userID, dto.WithdrawRequest{
		ItemID:   "item-1",
		Quantity: decimal.NewFromInt(51),
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	val, err := f.stock.Valuation(companyID, "item-1")
	require.NoError(t, err)
	assert.True(t, val.OnHand.Equal(decimal.NewFromInt(50)), "el stock no debe cambiar")
	assert.True(t, val.Valuation.Equal(decimal.NewFromInt(24400)))
}

func TestWithdraw_CantidadInvalida(t *testing.T) {
	f := newFixture(t)
	f.addItem(t, "item-1", "ITM001", "Camisa Oxford")

	_, err := f.stock.Withdraw(context.Background(), companyID, userID, dto.WithdrawRequest{
		ItemID:   "item-1",
		Quantity: decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestWithdraw_ArticuloDesconocido(t *testing.T) {
	f := newFixture(t)

	_, err := f.stock.Withdraw(context.Background(), companyID, userID, dto.WithdrawRequest{
		ItemID:   "no-existe",
		Quantity: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrUnknownItem)
}

func TestReceive_Validaciones(t *testing.T) {
	f := newFixture(t)
	f.addItem(t, "item-1", "ITM001", "Camisa Oxford")
	ctx := context.Background()

	_, err := f.stock.Receive(ctx, companyID, userID, dto.ReceiveStockRequest{
		ItemID:   "item-1",
		Quantity: decimal.Zero,
		UnitCost: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = f.stock.Receive(ctx, companyID, userID, dto.ReceiveStockRequest{
		ItemID:   "item-1",
		Quantity: decimal.NewFromInt(10),
		UnitCost: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCost)

	// Costo cero es legítimo (muestras gratis, bonificaciones).
	_, err = f.stock.Receive(ctx, companyID, userID, dto.ReceiveStockRequest{
		ItemID:   "item-1",
		Quantity: decimal.NewFromInt(10),
		UnitCost: decimal.Zero,
	})
	assert.NoError(t, err)
}

func TestReceive_ArticuloDeOtraEmpresa(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.items.Create(&entity.Item{
		ID:        "item-ajeno",
		CompanyID: "company-2",
		SKU:       "EXT001",
		Name:      "Ajeno",
	}))

	_, err := f.stock.Receive(context.Background(), companyID, userID, dto.ReceiveStockRequest{
		ItemID:   "item-ajeno",
		Quantity: decimal.NewFromInt(5),
		UnitCost: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Las capas vivas excluyen lotes agotados y llegan en orden FIFO.
func TestGetLayers_SoloCapasVivasEnOrden(t *testing.T) {
	f := newFixture(t)
	f.addItem(t, "item-1", "ITM001", "Camisa Oxford")
	base := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	f.receive(t, "item-1", 20, 480, base)
	f.receive(t, "item-1", 30, 500, base.Add(time.Hour))

	// Agota la primera capa.
	_, err := f.stock.Withdraw(context.Background(), companyID, userID, dto.WithdrawRequest{
		ItemID:   "item-1",
		Quantity: decimal.NewFromInt(20),
	})
	require.NoError(t, err)

	out, err := f.stock.GetLayers(companyID, "item-1")
	require.NoError(t, err)
	require.Len(t, out.Layers, 1, "la capa agotada no debe listarse")
	assert.True(t, out.Layers[0].UnitCost.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, "Camisa Oxford", out.ItemName)
}

// Artículo desconocido degrada a lista vacía, no a error.
func TestGetLayers_ArticuloDesconocidoDevuelveVacio(t *testing.T) {
	f := newFixture(t)

	out, err := f.stock.GetLayers(companyID, "no-existe")
	require.NoError(t, err)
	assert.Empty(t, out.Layers)
}

func TestValuation_ArticuloDesconocidoDevuelveCeros(t *testing.T) {
	f := newFixture(t)

	out, err := f.stock.Valuation(companyID, "no-existe")
	require.NoError(t, err)
	assert.True(t, out.OnHand.IsZero())
	assert.True(t, out.Valuation.IsZero())
}

// Recepciones con el mismo received_at se consumen en orden de inserción.
func TestWithdraw_DesempatePorInsercionConFechasIguales(t *testing.T) {
	f := newFixture(t)
	f.addItem(t, "item-1", "ITM001", "Camisa Oxford")
	same := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	first := f.receive(t, "item-1", 10, 100, same)
	f.receive(t, "item-1", 10, 200, same)

	out, err := f.stock.Withdraw(context.Background(), companyID, userID, dto.WithdrawRequest{
		ItemID:   "item-1",
		Quantity: decimal.NewFromInt(5),
	})
	require.NoError(t, err)
	require.Len(t, out.Consumptions, 1)
	assert.Equal(t, first.ID, out.Consumptions[0].LotID,
		"debe consumirse primero el lote insertado primero")
	assert.True(t, out.TotalCost.Equal(decimal.NewFromInt(500)))
}

func TestListOnHand_FiltroPorNombreOSKU(t *testing.T) {
	f := newFixture(t)
	f.addItem(t, "item-1", "ITM001", "Camisa Oxford")
	f.addItem(t, "item-2", "PNT001", "Pantalón Chino")
	base := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	f.receive(t, "item-1", 10, 480, base)
	f.receive(t, "item-2", 4, 900, base)

	out, err := f.stock.ListOnHand(companyID, "camisa", 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "ITM001", out.Items[0].Item.SKU)
	assert.True(t, out.Items[0].OnHand.Equal(decimal.NewFromInt(10)))
	assert.True(t, out.Items[0].Valuation.Equal(decimal.NewFromInt(4800)))

	bySKU, err := f.stock.ListOnHand(companyID, "pnt", 20, 0)
	require.NoError(t, err)
	require.Len(t, bySKU.Items, 1)
	assert.Equal(t, "PNT001", bySKU.Items[0].Item.SKU)

	all, err := f.stock.ListOnHand(companyID, "", 20, 0)
	require.NoError(t, err)
	assert.Len(t, all.Items, 2)
}

func TestGetPurchase_DevuelveElLoteConTotal(t *testing.T) {
	f := newFixture(t)
	f.addItem(t, "item-1", "ITM001", "Camisa Oxford")
	base := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	lot := f.receive(t, "item-1", 50, 480, base)

	out, err := f.stock.GetPurchase(companyID, lot.ID)
	require.NoError(t, err)
	assert.Equal(t, "Camisa Oxford", out.ItemName)
	assert.Equal(t, "ITM001", out.SKU)
	assert.True(t, out.Total.Equal(decimal.NewFromInt(24000)))

	_, err = f.stock.GetPurchase(companyID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
