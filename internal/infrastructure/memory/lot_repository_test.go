package memory

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-inventory/internal/domain/entity"
)

func newLot(id, itemID string, qty, cost int64, receivedAt time.Time) *entity.Lot {
	q := decimal.NewFromInt(qty)
	return &entity.Lot{
		ID:          id,
		CompanyID:   "company-1",
		ItemID:      itemID,
		WarehouseID: "wh-1",
		Quantity:    q,
		Remaining:   q,
		UnitCost:    decimal.NewFromInt(cost),
		ReceivedAt:  receivedAt,
	}
}

func TestLotRepository_CreateAsignaSecuenciaMonotonica(t *testing.T) {
	repo := NewLotRepository()
	now := time.Now()

	a := newLot("lot-a", "item-1", 10, 100, now)
	b := newLot("lot-b", "item-1", 10, 100, now)
	require.NoError(t, repo.Create(a))
	require.NoError(t, repo.Create(b))

	assert.Equal(t, int64(1), a.Seq)
	assert.Equal(t, int64(2), b.Seq)
}

func TestLotRepository_ListByItemOrdenFIFO(t *testing.T) {
	repo := NewLotRepository()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	// El segundo lote llega con fecha anterior: debe listarse primero.
	require.NoError(t, repo.Create(newLot("lot-b", "item-1", 5, 500, base.Add(time.Hour))))
	require.NoError(t, repo.Create(newLot("lot-a", "item-1", 5, 480, base)))
	require.NoError(t, repo.Create(newLot("lot-x", "item-2", 5, 10, base)))

	lots, err := repo.ListByItem("item-1")
	require.NoError(t, err)
	require.Len(t, lots, 2)
	assert.Equal(t, "lot-a", lots[0].ID)
	assert.Equal(t, "lot-b", lots[1].ID)
}

func TestLotRepository_ListByItemIncluyeAgotados(t *testing.T) {
	repo := NewLotRepository()
	now := time.Now()

	lot := newLot("lot-a", "item-1", 10, 100, now)
	require.NoError(t, repo.Create(lot))
	require.NoError(t, repo.UpdateRemaining("lot-a", decimal.Zero))

	lots, err := repo.ListByItem("item-1")
	require.NoError(t, err)
	require.Len(t, lots, 1)
	assert.True(t, lots[0].Depleted())
	// La cantidad original se conserva para auditoría.
	assert.True(t, lots[0].Quantity.Equal(decimal.NewFromInt(10)))
}

func TestLotRepository_AgregadosPorEmpresa(t *testing.T) {
	repo := NewLotRepository()
	now := time.Now()

	require.NoError(t, repo.Create(newLot("lot-a", "item-1", 50, 480, now)))
	require.NoError(t, repo.Create(newLot("lot-b", "item-1", 70, 500, now)))
	otra := newLot("lot-c", "item-9", 3, 10, now)
	otra.CompanyID = "company-2"
	require.NoError(t, repo.Create(otra))

	onHand, err := repo.OnHandByCompany("company-1")
	require.NoError(t, err)
	assert.True(t, onHand["item-1"].Equal(decimal.NewFromInt(120)))
	_, ok := onHand["item-9"]
	assert.False(t, ok)

	valuation, err := repo.ValuationByCompany("company-1")
	require.NoError(t, err)
	// 50*480 + 70*500 = 59000
	assert.True(t, valuation["item-1"].Equal(decimal.NewFromInt(59000)))

	stats, err := repo.StatsByWarehouse("company-1")
	require.NoError(t, err)
	assert.True(t, stats["wh-1"].OnHand.Equal(decimal.NewFromInt(120)))
	assert.True(t, stats["wh-1"].Value.Equal(decimal.NewFromInt(59000)))
}

func TestLotRepository_GetByIDDevuelveCopia(t *testing.T) {
	repo := NewLotRepository()
	require.NoError(t, repo.Create(newLot("lot-a", "item-1", 10, 100, time.Now())))

	got, err := repo.GetByID("lot-a")
	require.NoError(t, err)
	require.NotNil(t, got)

	got.Remaining = decimal.Zero
	again, err := repo.GetByID("lot-a")
	require.NoError(t, err)
	assert.True(t, again.Remaining.Equal(decimal.NewFromInt(10)))
}
