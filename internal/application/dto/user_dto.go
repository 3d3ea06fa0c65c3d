package dto

import "time"

// RegisterRequest entrada de registro de usuario.
type RegisterRequest struct {
	CompanyID string `json:"company_id"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Name      string `json:"name"`
	Role      string `json:"role"` // admin, salesman, accountant
}

// LoginRequest entrada de login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse representación HTTP de un usuario (sin hash de password).
type UserResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse token JWT + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// SwitchCompanyRequest cambia la empresa activa del token (selector de empresa).
type SwitchCompanyRequest struct {
	CompanyID string `json:"company_id"`
}
