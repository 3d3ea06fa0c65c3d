package entity

import "time"

// DefaultSizeLabel agrupa artículos cuya talla no coincide con ningún bucket
// declarado en la categoría (el reporte nunca falla por datos sucios).
const DefaultSizeLabel = "OTHER"

// SizeBucket es un bucket de talla dentro de una categoría, en orden estable
// definido por Position (ej. SM, M, L, XL, 2XL).
type SizeBucket struct {
	ID       string
	Label    string
	Position int
}

// Category agrupa artículos y declara el conjunto ordenado de buckets de talla
// para el reporte de posición de stock.
type Category struct {
	ID        string
	CompanyID string
	Name      string
	Position  int // orden estable de presentación en reportes
	Sizes     []SizeBucket
	CreatedAt time.Time
	UpdatedAt time.Time
}
