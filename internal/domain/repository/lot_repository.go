package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/erp-inventory/internal/domain/entity"
)

// WarehouseStock resumen de stock por bodega (conteo disponible y valor de compra).
type WarehouseStock struct {
	OnHand decimal.Decimal
	Value  decimal.Decimal
}

// LotRepository define el puerto de persistencia del Lot Store: lotes
// append-only por artículo en estricto orden de llegada (ReceivedAt, Seq).
type LotRepository interface {
	// Create agrega un lote nuevo; la implementación asigna Seq monotónico.
	Create(lot *entity.Lot) error
	GetByID(id string) (*entity.Lot, error)
	// ListByItem devuelve TODOS los lotes del artículo (incluidos agotados,
	// para auditoría) en orden FIFO. Vacío si el artículo no existe.
	ListByItem(itemID string) ([]*entity.Lot, error)
	// ListByItemForUpdate igual que ListByItem pero bloqueando las filas
	// dentro de la transacción en curso (SELECT FOR UPDATE en Postgres).
	ListByItemForUpdate(itemID string) ([]*entity.Lot, error)
	// UpdateRemaining decrementa el remanente de un lote consumido.
	UpdateRemaining(lotID string, remaining decimal.Decimal) error
	// OnHandByCompany devuelve cantidad disponible por itemID (para listados).
	OnHandByCompany(companyID string) (map[string]decimal.Decimal, error)
	// ValuationByCompany devuelve el valor FIFO en libros por itemID.
	ValuationByCompany(companyID string) (map[string]decimal.Decimal, error)
	// StatsByWarehouse devuelve resumen disponible/valor por warehouseID.
	StatsByWarehouse(companyID string) (map[string]WarehouseStock, error)
}

// WithdrawalRepository define el puerto de persistencia para retiros FIFO
// (registro de auditoría del costo de venta).
type WithdrawalRepository interface {
	Create(w *entity.Withdrawal) error
	GetByID(id string) (*entity.Withdrawal, error)
	ListByItem(itemID string, limit, offset int) ([]*entity.Withdrawal, error)
}
