package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/erp-inventory/internal/domain/entity"
	"github.com/jhoicas/erp-inventory/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador de bodegas. Pasar pool o tx (Querier).
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

const warehouseColumns = `id, company_id, name, address, incharge_name, incharge_phone, incharge_email, created_at, updated_at`

// Create persiste una bodega nueva.
func (r *WarehouseRepo) Create(warehouse *entity.Warehouse) error {
	query := `
		INSERT INTO warehouses (` + warehouseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		warehouse.ID, warehouse.CompanyID, warehouse.Name, warehouse.Address,
		warehouse.InchargeName, warehouse.InchargePhone, warehouse.InchargeEmail,
		warehouse.CreatedAt, warehouse.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert warehouse: %w", err)
	}
	return nil
}

// GetByID obtiene una bodega por ID.
func (r *WarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	query := `SELECT ` + warehouseColumns + ` FROM warehouses WHERE id = $1`
	warehouse, err := scanWarehouse(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return warehouse, nil
}

// Update actualiza una bodega existente.
func (r *WarehouseRepo) Update(warehouse *entity.Warehouse) error {
	query := `
		UPDATE warehouses SET name = $2, address = $3, incharge_name = $4,
			incharge_phone = $5, incharge_email = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		warehouse.ID, warehouse.Name, warehouse.Address, warehouse.InchargeName,
		warehouse.InchargePhone, warehouse.InchargeEmail, warehouse.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update warehouse: %w", err)
	}
	return nil
}

// ListByCompany lista bodegas por empresa con paginación.
func (r *WarehouseRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Warehouse, error) {
	query := `SELECT ` + warehouseColumns + ` FROM warehouses WHERE company_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Warehouse
	for rows.Next() {
		warehouse, err := scanWarehouse(rows)
		if err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		list = append(list, warehouse)
	}
	return list, rows.Err()
}

// Delete elimina una bodega por ID.
func (r *WarehouseRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM warehouses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete warehouse: %w", err)
	}
	return nil
}

func scanWarehouse(row pgx.Row) (*entity.Warehouse, error) {
	var w entity.Warehouse
	err := row.Scan(
		&w.ID, &w.CompanyID, &w.Name, &w.Address,
		&w.InchargeName, &w.InchargePhone, &w.InchargeEmail,
		&w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}
