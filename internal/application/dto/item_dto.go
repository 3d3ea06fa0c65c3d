package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest entrada para crear un artículo de inventario.
type CreateItemRequest struct {
	SKU            string           `json:"sku"`
	Name           string           `json:"name"`
	CategoryID     string           `json:"category_id"`
	SizeLabel      string           `json:"size_label"`
	Unit           string           `json:"unit"` // PCS, KG, etc.
	Price          decimal.Decimal  `json:"price"`
	WholesalePrice *decimal.Decimal `json:"wholesale_price,omitempty"`
	MinStockLevel  decimal.Decimal  `json:"min_stock_level"`
	Supplier       string           `json:"supplier"`
}

// UpdateItemRequest campos opcionales para actualizar un artículo.
// La identidad (ID, SKU) es inmutable.
type UpdateItemRequest struct {
	Name           *string          `json:"name,omitempty"`
	CategoryID     *string          `json:"category_id,omitempty"`
	SizeLabel      *string          `json:"size_label,omitempty"`
	Unit           *string          `json:"unit,omitempty"`
	Price          *decimal.Decimal `json:"price,omitempty"`
	WholesalePrice *decimal.Decimal `json:"wholesale_price,omitempty"`
	MinStockLevel  *decimal.Decimal `json:"min_stock_level,omitempty"`
	Supplier       *string          `json:"supplier,omitempty"`
}

// ItemResponse representación HTTP de un artículo.
type ItemResponse struct {
	ID             string           `json:"id"`
	CompanyID      string           `json:"company_id"`
	SKU            string           `json:"sku"`
	Name           string           `json:"name"`
	CategoryID     string           `json:"category_id,omitempty"`
	SizeLabel      string           `json:"size_label,omitempty"`
	Unit           string           `json:"unit"`
	Price          decimal.Decimal  `json:"price"`
	WholesalePrice *decimal.Decimal `json:"wholesale_price,omitempty"`
	MinStockLevel  decimal.Decimal  `json:"min_stock_level"`
	Supplier       string           `json:"supplier,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// ItemListResponse listado paginado de artículos.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
