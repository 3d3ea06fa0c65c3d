package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/erp-inventory/internal/domain/entity"
	"github.com/jhoicas/erp-inventory/internal/domain/repository"
)

var _ repository.LotRepository = (*LotRepo)(nil)

// LotRepo implementación del Lot Store sobre PostgreSQL (usable con pool o tx).
// La columna seq es BIGSERIAL: la base asigna la secuencia de inserción que
// desempata lotes con received_at idéntico.
type LotRepo struct {
	q Querier
}

// NewLotRepository construye el adaptador de lotes. Pasar pool o tx (Querier).
func NewLotRepository(q Querier) *LotRepo {
	return &LotRepo{q: q}
}

const lotColumns = `id, company_id, item_id, warehouse_id, supplier, quantity, remaining, unit_cost, received_at, seq, created_by, created_at`

// Create persiste un lote nuevo y recupera la secuencia asignada por la base.
func (r *LotRepo) Create(lot *entity.Lot) error {
	query := `
		INSERT INTO lots (id, company_id, item_id, warehouse_id, supplier, quantity, remaining, unit_cost, received_at, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING seq`
	err := r.q.QueryRow(context.Background(), query,
		lot.ID, lot.CompanyID, lot.ItemID, lot.WarehouseID, lot.Supplier,
		lot.Quantity, lot.Remaining, lot.UnitCost, lot.ReceivedAt, lot.CreatedBy, lot.CreatedAt,
	).Scan(&lot.Seq)
	if err != nil {
		return fmt.Errorf("insert lot: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID.
func (r *LotRepo) GetByID(id string) (*entity.Lot, error) {
	query := `SELECT ` + lotColumns + ` FROM lots WHERE id = $1`
	lot, err := scanLot(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lot: %w", err)
	}
	return lot, nil
}

// ListByItem devuelve todos los lotes del artículo (incluidos agotados) en
// orden FIFO: received_at y seq como desempate.
func (r *LotRepo) ListByItem(itemID string) ([]*entity.Lot, error) {
	return r.listByItem(itemID, false)
}

// ListByItemForUpdate igual que ListByItem pero bloqueando las filas con
// FOR UPDATE. Solo tiene sentido dentro de una transacción.
func (r *LotRepo) ListByItemForUpdate(itemID string) ([]*entity.Lot, error) {
	return r.listByItem(itemID, true)
}

func (r *LotRepo) listByItem(itemID string, forUpdate bool) ([]*entity.Lot, error) {
	query := `SELECT ` + lotColumns + ` FROM lots WHERE item_id = $1 ORDER BY received_at, seq`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	rows, err := r.q.Query(context.Background(), query, itemID)
	if err != nil {
		return nil, fmt.Errorf("list lots: %w", err)
	}
	defer rows.Close()
	var list []*entity.Lot
	for rows.Next() {
		lot, err := scanLot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lot: %w", err)
		}
		list = append(list, lot)
	}
	return list, rows.Err()
}

// UpdateRemaining fija el remanente de un lote consumido.
func (r *LotRepo) UpdateRemaining(lotID string, remaining decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE lots SET remaining = $2 WHERE id = $1`,
		lotID, remaining,
	)
	if err != nil {
		return fmt.Errorf("update lot remaining: %w", err)
	}
	return nil
}

// OnHandByCompany devuelve cantidad disponible por item_id en una sola consulta.
func (r *LotRepo) OnHandByCompany(companyID string) (map[string]decimal.Decimal, error) {
	query := `
		SELECT item_id, COALESCE(SUM(remaining), 0)
		FROM lots WHERE company_id = $1 GROUP BY item_id`
	return r.sumByKey(query, companyID)
}

// ValuationByCompany devuelve el valor FIFO en libros por item_id.
func (r *LotRepo) ValuationByCompany(companyID string) (map[string]decimal.Decimal, error) {
	query := `
		SELECT item_id, COALESCE(SUM(remaining * unit_cost), 0)
		FROM lots WHERE company_id = $1 GROUP BY item_id`
	return r.sumByKey(query, companyID)
}

func (r *LotRepo) sumByKey(query, companyID string) (map[string]decimal.Decimal, error) {
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("aggregate lots: %w", err)
	}
	defer rows.Close()
	out := make(map[string]decimal.Decimal)
	for rows.Next() {
		var key string
		var sum decimal.Decimal
		if err := rows.Scan(&key, &sum); err != nil {
			return nil, fmt.Errorf("scan aggregate: %w", err)
		}
		out[key] = sum
	}
	return out, rows.Err()
}

// StatsByWarehouse devuelve resumen disponible/valor por warehouse_id.
func (r *LotRepo) StatsByWarehouse(companyID string) (map[string]repository.WarehouseStock, error) {
	query := `
		SELECT warehouse_id, COALESCE(SUM(remaining), 0), COALESCE(SUM(remaining * unit_cost), 0)
		FROM lots WHERE company_id = $1 GROUP BY warehouse_id`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("warehouse stats: %w", err)
	}
	defer rows.Close()
	out := make(map[string]repository.WarehouseStock)
	for rows.Next() {
		var warehouseID string
		var s repository.WarehouseStock
		if err := rows.Scan(&warehouseID, &s.OnHand, &s.Value); err != nil {
			return nil, fmt.Errorf("scan warehouse stats: %w", err)
		}
		out[warehouseID] = s
	}
	return out, rows.Err()
}

func scanLot(row pgx.Row) (*entity.Lot, error) {
	var l entity.Lot
	err := row.Scan(
		&l.ID, &l.CompanyID, &l.ItemID, &l.WarehouseID, &l.Supplier,
		&l.Quantity, &l.Remaining, &l.UnitCost, &l.ReceivedAt, &l.Seq,
		&l.CreatedBy, &l.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
