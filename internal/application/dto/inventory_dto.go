package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceiveStockRequest entrada para registrar una recepción (crea un lote FIFO).
type ReceiveStockRequest struct {
	ItemID      string          `json:"item_id"`
	WarehouseID string          `json:"warehouse_id"`
	Supplier    string          `json:"supplier"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	// ReceivedAt opcional; vacío = ahora. El orden FIFO ante timestamps
	// iguales lo decide la secuencia de inserción.
	ReceivedAt *time.Time `json:"received_at,omitempty"`
}

// WithdrawRequest entrada para registrar una salida (venta) a costo FIFO.
type WithdrawRequest struct {
	ItemID   string          `json:"item_id"`
	Quantity decimal.Decimal `json:"quantity"`
}

// LotResponse un lote/capa FIFO.
type LotResponse struct {
	ID          string          `json:"id"`
	ItemID      string          `json:"item_id"`
	WarehouseID string          `json:"warehouse_id,omitempty"`
	Supplier    string          `json:"supplier,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	Remaining   decimal.Decimal `json:"remaining"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	ReceivedAt  time.Time       `json:"received_at"`
}

// LayersResponse las capas FIFO vivas de un artículo (vista "FIFO Layers").
type LayersResponse struct {
	ItemID   string        `json:"item_id"`
	ItemName string        `json:"item_name"`
	Layers   []LotResponse `json:"layers"`
}

// ConsumptionDTO cuánto se tomó de cada lote en un retiro, en orden consumido.
type ConsumptionDTO struct {
	LotID    string          `json:"lot_id"`
	Quantity decimal.Decimal `json:"quantity"`
	UnitCost decimal.Decimal `json:"unit_cost"`
	Cost     decimal.Decimal `json:"cost"`
}

// WithdrawalResponse resultado de un retiro FIFO.
type WithdrawalResponse struct {
	ID            string           `json:"id"`
	ItemID        string           `json:"item_id"`
	Consumptions  []ConsumptionDTO `json:"consumptions"`
	TotalQuantity decimal.Decimal  `json:"total_quantity"`
	TotalCost     decimal.Decimal  `json:"total_cost"`
	Date          time.Time        `json:"date"`
}

// OnHandRow una fila del listado de existencias.
type OnHandRow struct {
	Item        ItemResponse    `json:"item"`
	OnHand      decimal.Decimal `json:"on_hand"`
	Valuation   decimal.Decimal `json:"valuation"`
	StockStatus string          `json:"stock_status"`
}

// OnHandListResponse listado de existencias con filtro aplicado.
type OnHandListResponse struct {
	Items []OnHandRow  `json:"items"`
	Page  PageResponse `json:"page"`
}

// ValuationResponse valor FIFO en libros de un artículo.
type ValuationResponse struct {
	ItemID    string          `json:"item_id"`
	OnHand    decimal.Decimal `json:"on_hand"`
	Valuation decimal.Decimal `json:"valuation"`
}

// PurchaseResponse un registro de compra: el lote con su proveedor y costo.
type PurchaseResponse struct {
	Lot      LotResponse     `json:"lot"`
	ItemName string          `json:"item_name"`
	SKU      string          `json:"sku"`
	Total    decimal.Decimal `json:"total"`
}

// LowStockRow artículo bajo el nivel mínimo con cantidad sugerida de pedido.
type LowStockRow struct {
	Item          ItemResponse    `json:"item"`
	OnHand        decimal.Decimal `json:"on_hand"`
	MinStockLevel decimal.Decimal `json:"min_stock_level"`
	SuggestedQty  decimal.Decimal `json:"suggested_qty"`
	StockStatus   string          `json:"stock_status"`
}
