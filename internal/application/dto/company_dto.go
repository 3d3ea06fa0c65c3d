package dto

import "time"

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	Name    string `json:"name"`
	TaxID   string `json:"tax_id"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// CompanyResponse representación HTTP de una empresa.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id,omitempty"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// CompanyListResponse listado paginado de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// RoleAccessResponse una fila de la matriz rol x módulo.
type RoleAccessResponse struct {
	RoleName  string          `json:"role_name"`
	Modules   map[string]bool `json:"modules"`
	Visible   bool            `json:"visible"`
	UpdatedAt time.Time       `json:"last_updated"`
}

// ToggleModuleRequest alterna un módulo para un rol.
type ToggleModuleRequest struct {
	RoleName string `json:"role_name"`
	Module   string `json:"module"`
}

// ToggleVisibilityRequest alterna la visibilidad de un rol.
type ToggleVisibilityRequest struct {
	RoleName string `json:"role_name"`
}
