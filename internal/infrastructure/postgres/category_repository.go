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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo persiste categorías y sus buckets de talla (tabla hija
// category_sizes, ordenada por position).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de categorías. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste la categoría con sus buckets.
func (r *CategoryRepo) Create(category *entity.Category) error {
	ctx := context.Background()
	query := `
		INSERT INTO categories (id, company_id, name, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.q.Exec(ctx, query,
		category.ID, category.CompanyID, category.Name, category.Position,
		category.CreatedAt, category.UpdatedAt,
	); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return r.replaceSizes(ctx, category)
}

// GetByID obtiene una categoría con sus buckets.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	ctx := context.Background()
	query := `
		SELECT id, company_id, name, position, created_at, updated_at
		FROM categories WHERE id = $1`
	var c entity.Category
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.CompanyID, &c.Name, &c.Position, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	if err := r.loadSizes(ctx, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Update actualiza la categoría y reemplaza sus buckets.
func (r *CategoryRepo) Update(category *entity.Category) error {
	ctx := context.Background()
	query := `
		UPDATE categories SET name = $2, position = $3, updated_at = $4 WHERE id = $1`
	if _, err := r.q.Exec(ctx, query,
		category.ID, category.Name, category.Position, category.UpdatedAt,
	); err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	if _, err := r.q.Exec(ctx,
		`DELETE FROM category_sizes WHERE category_id = $1`, category.ID,
	); err != nil {
		return fmt.Errorf("clear category sizes: %w", err)
	}
	return r.replaceSizes(ctx, category)
}

// ListByCompany devuelve las categorías en orden estable (position) con sus
// buckets de talla ordenados.
func (r *CategoryRepo) ListByCompany(companyID string) ([]*entity.Category, error) {
	ctx := context.Background()
	query := `
		SELECT id, company_id, name, position, created_at, updated_at
		FROM categories WHERE company_id = $1 ORDER BY position, name`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.CompanyID, &c.Name, &c.Position, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, c := range list {
		if err := r.loadSizes(ctx, c); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// Delete elimina la categoría (los buckets caen por ON DELETE CASCADE).
func (r *CategoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

func (r *CategoryRepo) replaceSizes(ctx context.Context, category *entity.Category) error {
	for _, size := range category.Sizes {
		if _, err := r.q.Exec(ctx,
			`INSERT INTO category_sizes (id, category_id, label, position) VALUES ($1, $2, $3, $4)`,
			size.ID, category.ID, size.Label, size.Position,
		); err != nil {
			return fmt.Errorf("insert category size: %w", err)
		}
	}
	return nil
}

func (r *CategoryRepo) loadSizes(ctx context.Context, category *entity.Category) error {
	rows, err := r.q.Query(ctx,
		`SELECT id, label, position FROM category_sizes WHERE category_id = $1 ORDER BY position`,
		category.ID,
	)
	if err != nil {
		return fmt.Errorf("list category sizes: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var s entity.SizeBucket
		if err := rows.Scan(&s.ID, &s.Label, &s.Position); err != nil {
			return fmt.Errorf("scan category size: %w", err)
		}
		category.Sizes = append(category.Sizes, s)
	}
	return rows.Err()
}
