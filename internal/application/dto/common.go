package dto

// Límites de paginación de los listados (artículos, bodegas, retiros). Las
// tablas del ERP muestran 20 filas por página; 100 es el tope que acepta la
// API aunque el cliente pida más.
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=1,max=100"`
	Offset int `query:"offset" validate:"min=0"`
}

// DefaultPage normaliza la página: aplica el límite por defecto, recorta al
// tope y corrige offsets negativos.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
