package repository

import "github.com/jhoicas/erp-inventory/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category y sus
// buckets de talla (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	Update(category *entity.Category) error
	// ListByCompany devuelve las categorías en orden estable (Position) con
	// sus buckets de talla ordenados.
	ListByCompany(companyID string) ([]*entity.Category, error)
	Delete(id string) error
}
