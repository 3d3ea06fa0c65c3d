package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LotConsumption registra cuánto se tomó de un lote en un retiro, en el orden
// en que se consumió.
type LotConsumption struct {
	LotID    string
	Quantity decimal.Decimal
	UnitCost decimal.Decimal
}

// Cost devuelve Quantity * UnitCost.
func (c LotConsumption) Cost() decimal.Decimal {
	return c.Quantity.Mul(c.UnitCost)
}

// Withdrawal es el resultado de consumir cantidad de uno o más lotes en orden
// FIFO. Se persiste como registro de auditoría del costo de venta.
type Withdrawal struct {
	ID            string
	CompanyID     string
	ItemID        string
	Consumptions  []LotConsumption
	TotalQuantity decimal.Decimal
	TotalCost     decimal.Decimal
	Date          time.Time
	CreatedBy     string
	CreatedAt     time.Time
}
