package inventory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-inventory/internal/domain"
	"github.com/jhoicas/erp-inventory/internal/domain/entity"
	"github.com/jhoicas/erp-inventory/internal/domain/inventory"
)

func lot(id string, remaining, cost int64, receivedAt time.Time, seq int64) *entity.Lot {
	return &entity.Lot{
		ID:         id,
		ItemID:     "item-1",
		Quantity:   decimal.NewFromInt(remaining),
		Remaining:  decimal.NewFromInt(remaining),
		UnitCost:   decimal.NewFromInt(cost),
		ReceivedAt: receivedAt,
		Seq:        seq,
	}
}

// Escenario del par de capas clásico: L1(50 @ 480) y L2(70 @ 500).
// Retirar 60 debe consumir las 50 de L1 y 10 de L2: costo = 29000.
func TestConsume_OrdenFIFOEntreLotes(t *testing.T) {
	t0 := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	lots := []*entity.Lot{
		lot("L1", 50, 480, t0, 1),
		lot("L2", 70, 500, t0.AddDate(0, 1, 0), 2),
	}

	cons, err := inventory.Consume(lots, decimal.NewFromInt(60))
	require.NoError(t, err)
	require.Len(t, cons, 2)

	assert.Equal(t, "L1", cons[0].LotID)
	assert.True(t, cons[0].Quantity.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, "L2", cons[1].LotID)
	assert.True(t, cons[1].Quantity.Equal(decimal.NewFromInt(10)))

	total := inventory.TotalCost(cons)
	assert.True(t, total.Equal(decimal.NewFromInt(29000)),
		"costo total esperado 50*480 + 10*500 = 29000, obtenido %s", total)
}

// Con timestamps idénticos decide la secuencia de inserción, no el reloj.
func TestConsume_DesempatePorSecuenciaDeInsercion(t *testing.T) {
	t0 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	lots := []*entity.Lot{
		lot("B", 10, 200, t0, 2),
		lot("A", 10, 100, t0, 1),
	}
	inventory.SortFIFO(lots)
	require.Equal(t, "A", lots[0].ID)

	cons, err := inventory.Consume(lots, decimal.NewFromInt(15))
	require.NoError(t, err)
	require.Len(t, cons, 2)
	assert.Equal(t, "A", cons[0].LotID)
	assert.True(t, cons[0].Quantity.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, "B", cons[1].LotID)
	assert.True(t, cons[1].Quantity.Equal(decimal.NewFromInt(5)))
}

// Pedir más de lo disponible: error y ningún consumo (todo-o-nada).
func TestConsume_StockInsuficiente(t *testing.T) {
	t0 := time.Now()
	lots := []*entity.Lot{lot("L1", 30, 100, t0, 1)}

	cons, err := inventory.Consume(lots, decimal.NewFromInt(31))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Nil(t, cons)
	// Los lotes no se mutan
	assert.True(t, lots[0].Remaining.Equal(decimal.NewFromInt(30)))
}

func TestConsume_CantidadInvalida(t *testing.T) {
	lots := []*entity.Lot{lot("L1", 30, 100, time.Now(), 1)}

	_, err := inventory.Consume(lots, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = inventory.Consume(lots, decimal.NewFromInt(-5))
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

// Los lotes agotados se omiten al consumir pero cuentan cero en OnHand.
func TestConsume_IgnoraLotesAgotados(t *testing.T) {
	t0 := time.Now()
	depleted := lot("L0", 0, 50, t0, 1)
	available := lot("L1", 20, 75, t0.Add(time.Hour), 2)
	lots := []*entity.Lot{depleted, available}

	cons, err := inventory.Consume(lots, decimal.NewFromInt(20))
	require.NoError(t, err)
	require.Len(t, cons, 1)
	assert.Equal(t, "L1", cons[0].LotID)
}

func TestValuation_SumaRemanentePorCosto(t *testing.T) {
	t0 := time.Now()
	lots := []*entity.Lot{
		lot("L1", 120, 500, t0, 1),
		lot("L2", 0, 999, t0, 2), // agotado: no aporta valor
	}
	assert.True(t, inventory.Valuation(lots).Equal(decimal.NewFromInt(60000)))
	assert.True(t, inventory.OnHand(lots).Equal(decimal.NewFromInt(120)))
}

func TestValuation_SinLotesEsCero(t *testing.T) {
	assert.True(t, inventory.Valuation(nil).IsZero())
	assert.True(t, inventory.OnHand(nil).IsZero())
}
