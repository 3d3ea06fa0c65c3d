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

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL.
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia para artículos. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `id, company_id, sku, name, category_id, size_label, unit, price, wholesale_price, min_stock_level, supplier, created_at, updated_at`

// Create persiste un artículo nuevo. El stock no vive aquí: se deriva de los lotes.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.CompanyID, item.SKU, item.Name, item.CategoryID, item.SizeLabel,
		item.Unit, item.Price, item.WholesalePrice, item.MinStockLevel, item.Supplier,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	item, err := scanItem(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// GetByCompanyAndSKU obtiene un artículo por empresa y SKU.
func (r *ItemRepo) GetByCompanyAndSKU(companyID, sku string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE company_id = $1 AND UPPER(sku) = UPPER($2)`
	item, err := scanItem(r.q.QueryRow(context.Background(), query, companyID, sku))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item by sku: %w", err)
	}
	return item, nil
}

// Update actualiza los atributos de presentación de un artículo.
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items SET name = $2, category_id = $3, size_label = $4, unit = $5, price = $6,
			wholesale_price = $7, min_stock_level = $8, supplier = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.CategoryID, item.SizeLabel, item.Unit, item.Price,
		item.WholesalePrice, item.MinStockLevel, item.Supplier, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// ListByCompany lista artículos por empresa con paginación.
func (r *ItemRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE company_id = $1 ORDER BY sku LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// Delete elimina un artículo por ID.
func (r *ItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

func scanItem(row pgx.Row) (*entity.Item, error) {
	var i entity.Item
	err := row.Scan(
		&i.ID, &i.CompanyID, &i.SKU, &i.Name, &i.CategoryID, &i.SizeLabel,
		&i.Unit, &i.Price, &i.WholesalePrice, &i.MinStockLevel, &i.Supplier,
		&i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}
