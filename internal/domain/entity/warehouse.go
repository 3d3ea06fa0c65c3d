package entity

import "time"

// Warehouse representa una bodega o sucursal donde se almacena inventario,
// con los datos del encargado para el directorio de bodegas.
type Warehouse struct {
	ID            string
	CompanyID     string
	Name          string
	Address       string
	InchargeName  string
	InchargePhone string
	InchargeEmail string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
