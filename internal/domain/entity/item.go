package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de stock derivados de MinStockLevel (para alertas en listados).
const (
	StockStatusHealthy  = "healthy"
	StockStatusWarning  = "warning"
	StockStatusCritical = "critical"
)

// Item representa un artículo de inventario (identidad inmutable, atributos
// de presentación mutables). El stock no vive aquí: se deriva de los lotes.
type Item struct {
	ID             string
	CompanyID      string
	SKU            string // código único por empresa (ej. ITM001)
	Name           string
	CategoryID     string
	SizeLabel      string          // talla/tamaño para el reporte por categoría (ej. SM, M, XL)
	Unit           string          // PCS, KG, etc.
	Price          decimal.Decimal // precio de venta
	WholesalePrice *decimal.Decimal
	MinStockLevel  decimal.Decimal // umbral de alerta de stock
	Supplier       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// StockStatus clasifica el stock disponible frente al nivel mínimo:
// critical si onHand <= min, warning si onHand <= 2*min, healthy en otro caso.
func (i *Item) StockStatus(onHand decimal.Decimal) string {
	if i.MinStockLevel.LessThanOrEqual(decimal.Zero) {
		return StockStatusHealthy
	}
	if onHand.LessThanOrEqual(i.MinStockLevel) {
		return StockStatusCritical
	}
	if onHand.LessThanOrEqual(i.MinStockLevel.Mul(decimal.NewFromInt(2))) {
		return StockStatusWarning
	}
	return StockStatusHealthy
}
