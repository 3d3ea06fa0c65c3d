package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/erp-inventory/internal/domain"
	"github.com/jhoicas/erp-inventory/internal/domain/entity"
	"github.com/jhoicas/erp-inventory/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo persiste empresas y la matriz rol x módulo. Los módulos
// habilitados se guardan como JSONB (módulo -> habilitado).
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de empresas. Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persiste una empresa nueva.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (id, name, tax_id, address, phone, email, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, company.TaxID, company.Address, company.Phone,
		company.Email, company.Status, company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	query := `
		SELECT id, name, tax_id, address, phone, email, status, created_at, updated_at
		FROM companies WHERE id = $1`
	var c entity.Company
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.TaxID, &c.Address, &c.Phone, &c.Email, &c.Status,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// List lista empresas con paginación.
func (r *CompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	query := `
		SELECT id, name, tax_id, address, phone, email, status, created_at, updated_at
		FROM companies ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.TaxID, &c.Address, &c.Phone, &c.Email,
			&c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// GetRoleAccess obtiene la fila de acceso de un rol, o nil si no está configurada.
func (r *CompanyRepo) GetRoleAccess(companyID, roleName string) (*entity.RoleAccess, error) {
	query := `
		SELECT id, company_id, role_name, modules, visible, created_at, updated_at
		FROM role_access WHERE company_id = $1 AND role_name = $2`
	var a entity.RoleAccess
	err := r.q.QueryRow(context.Background(), query, companyID, roleName).Scan(
		&a.ID, &a.CompanyID, &a.RoleName, &a.Modules, &a.Visible, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role access: %w", err)
	}
	return &a, nil
}

// ListRoleAccess lista la matriz completa de una empresa.
func (r *CompanyRepo) ListRoleAccess(companyID string) ([]*entity.RoleAccess, error) {
	query := `
		SELECT id, company_id, role_name, modules, visible, created_at, updated_at
		FROM role_access WHERE company_id = $1 ORDER BY role_name`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list role access: %w", err)
	}
	defer rows.Close()
	var list []*entity.RoleAccess
	for rows.Next() {
		var a entity.RoleAccess
		if err := rows.Scan(&a.ID, &a.CompanyID, &a.RoleName, &a.Modules, &a.Visible,
			&a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan role access: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// UpsertRoleAccess inserta o actualiza la fila de acceso de un rol.
func (r *CompanyRepo) UpsertRoleAccess(access *entity.RoleAccess) error {
	query := `
		INSERT INTO role_access (id, company_id, role_name, modules, visible, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (company_id, role_name)
		DO UPDATE SET modules = EXCLUDED.modules, visible = EXCLUDED.visible, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		access.ID, access.CompanyID, access.RoleName, access.Modules, access.Visible,
		access.CreatedAt, access.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert role access: %w", err)
	}
	return nil
}
