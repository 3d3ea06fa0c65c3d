package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateWarehouseRequest entrada para crear una bodega con su encargado.
type CreateWarehouseRequest struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	InchargeName  string `json:"incharge_name"`
	InchargePhone string `json:"incharge_phone"`
	InchargeEmail string `json:"incharge_email"`
}

// UpdateWarehouseRequest campos opcionales para actualizar una bodega.
type UpdateWarehouseRequest struct {
	Name          *string `json:"name,omitempty"`
	Address       *string `json:"address,omitempty"`
	InchargeName  *string `json:"incharge_name,omitempty"`
	InchargePhone *string `json:"incharge_phone,omitempty"`
	InchargeEmail *string `json:"incharge_email,omitempty"`
}

// WarehouseResponse representación HTTP de una bodega, enriquecida con el
// resumen de stock (conteo disponible y valor de compra) del directorio.
type WarehouseResponse struct {
	ID            string          `json:"id"`
	CompanyID     string          `json:"company_id"`
	Name          string          `json:"name"`
	Address       string          `json:"address"`
	InchargeName  string          `json:"incharge_name,omitempty"`
	InchargePhone string          `json:"incharge_phone,omitempty"`
	InchargeEmail string          `json:"incharge_email,omitempty"`
	ItemsInStock  decimal.Decimal `json:"items_in_stock"`
	PurchaseValue decimal.Decimal `json:"purchase_value"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// WarehouseListResponse listado paginado de bodegas.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
