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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, company_id, email, password_hash, name, role, status, created_at, updated_at`

// Create persiste un usuario nuevo.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.CompanyID, user.Email, user.PasswordHash, user.Name,
		user.Role, user.Status, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get user")
}

// FindByEmail obtiene el usuario más antiguo con ese email (el selector de
// empresa resuelve el resto vía SwitchCompany).
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1) ORDER BY created_at LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, email), "get user by email")
}

// GetByEmailAndCompany obtiene un usuario por email y empresa.
func (r *UserRepo) GetByEmailAndCompany(email, companyID string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1) AND company_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, email, companyID), "get user by email and company")
}

// ListCompaniesByEmail devuelve las empresas donde el email está registrado.
func (r *UserRepo) ListCompaniesByEmail(email string) ([]*entity.Company, error) {
	query := `
		SELECT c.id, c.name, c.tax_id, c.address, c.phone, c.email, c.status, c.created_at, c.updated_at
		FROM companies c
		JOIN users u ON u.company_id = c.id
		WHERE LOWER(u.email) = LOWER($1)
		ORDER BY c.name`
	rows, err := r.q.Query(context.Background(), query, email)
	if err != nil {
		return nil, fmt.Errorf("list companies by email: %w", err)
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

// Update actualiza un usuario existente.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET email = $2, password_hash = $3, name = $4, role = $5, status = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Email, user.PasswordHash, user.Name, user.Role, user.Status, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func (r *UserRepo) scanOne(row pgx.Row, op string) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.CompanyID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.Status,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}
