package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lot representa un lote (capa FIFO): una recepción de mercancía a un costo
// específico. Los lotes son append-only: nunca se eliminan, solo se agotan
// (Remaining llega a cero) para conservar el historial de valoración.
//
// Invariante: 0 <= Remaining <= Quantity.
type Lot struct {
	ID          string
	CompanyID   string
	ItemID      string
	WarehouseID string
	Supplier    string
	Quantity    decimal.Decimal // cantidad original recibida
	Remaining   decimal.Decimal // cantidad aún disponible
	UnitCost    decimal.Decimal
	ReceivedAt  time.Time // define el orden FIFO junto con Seq
	Seq         int64     // secuencia de inserción; desempate cuando ReceivedAt coincide
	CreatedBy   string
	CreatedAt   time.Time
}

// Depleted informa si el lote está agotado.
func (l *Lot) Depleted() bool {
	return l.Remaining.LessThanOrEqual(decimal.Zero)
}

// BookValue devuelve el valor en libros del remanente (Remaining * UnitCost).
func (l *Lot) BookValue() decimal.Decimal {
	return l.Remaining.Mul(l.UnitCost)
}
