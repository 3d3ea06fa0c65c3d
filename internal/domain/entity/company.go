package entity

import "time"

// Company representa una organización/tenant del sistema.
type Company struct {
	ID        string
	Name      string
	TaxID     string
	Address   string
	Phone     string
	Email     string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Módulos funcionales del ERP (deben coincidir con el CHECK de role_access).
const (
	ModuleSales      = "sales"
	ModulePurchase   = "purchase"
	ModuleStock      = "stock"
	ModuleAccounting = "accounting"
)

// Modules lista los módulos en orden estable de presentación.
var Modules = []string{ModuleSales, ModulePurchase, ModuleStock, ModuleAccounting}

// RoleAccess define qué módulos puede usar un rol dentro de una empresa
// (matriz rol x módulo de la pantalla de configuración de accesos).
type RoleAccess struct {
	ID        string
	CompanyID string
	RoleName  string
	Modules   map[string]bool // módulo -> habilitado
	Visible   bool            // ocultar el rol sin borrarlo
	UpdatedAt time.Time
	CreatedAt time.Time
}

// HasModule informa si el rol tiene habilitado el módulo.
func (r *RoleAccess) HasModule(module string) bool {
	if r == nil {
		return false
	}
	return r.Modules[module]
}
