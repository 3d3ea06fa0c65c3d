package repository

import "github.com/jhoicas/erp-inventory/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	GetByEmailAndCompany(email, companyID string) (*entity.User, error)
	// ListCompaniesByEmail devuelve las empresas donde el email está
	// registrado (selector de empresa del login).
	ListCompaniesByEmail(email string) ([]*entity.Company, error)
	Update(user *entity.User) error
}
