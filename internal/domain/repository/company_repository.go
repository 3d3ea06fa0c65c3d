package repository

import "github.com/jhoicas/erp-inventory/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company y la matriz
// de accesos por rol (DIP).
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	List(limit, offset int) ([]*entity.Company, error)

	// Matriz rol x módulo (pantalla de configuración de accesos).
	GetRoleAccess(companyID, roleName string) (*entity.RoleAccess, error)
	ListRoleAccess(companyID string) ([]*entity.RoleAccess, error)
	UpsertRoleAccess(access *entity.RoleAccess) error
}
