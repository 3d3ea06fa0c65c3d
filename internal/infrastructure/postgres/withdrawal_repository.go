package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/erp-inventory/internal/domain/entity"
	"github.com/jhoicas/erp-inventory/internal/domain/repository"
)

var _ repository.WithdrawalRepository = (*WithdrawalRepo)(nil)

// WithdrawalRepo persiste retiros FIFO y sus consumos por lote (tabla hija
// withdrawal_consumptions, con position para conservar el orden de consumo).
type WithdrawalRepo struct {
	q Querier
}

// NewWithdrawalRepository construye el adaptador de retiros. Pasar pool o tx (Querier).
func NewWithdrawalRepository(q Querier) *WithdrawalRepo {
	return &WithdrawalRepo{q: q}
}

// Create persiste el retiro y sus consumos.
func (r *WithdrawalRepo) Create(w *entity.Withdrawal) error {
	ctx := context.Background()
	query := `
		INSERT INTO withdrawals (id, company_id, item_id, total_quantity, total_cost, date, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err := r.q.Exec(ctx, query,
		w.ID, w.CompanyID, w.ItemID, w.TotalQuantity, w.TotalCost, w.Date, w.CreatedBy, w.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert withdrawal: %w", err)
	}
	for i, c := range w.Consumptions {
		if _, err := r.q.Exec(ctx,
			`INSERT INTO withdrawal_consumptions (withdrawal_id, position, lot_id, quantity, unit_cost)
			 VALUES ($1, $2, $3, $4, $5)`,
			w.ID, i, c.LotID, c.Quantity, c.UnitCost,
		); err != nil {
			return fmt.Errorf("insert withdrawal consumption: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un retiro con sus consumos.
func (r *WithdrawalRepo) GetByID(id string) (*entity.Withdrawal, error) {
	ctx := context.Background()
	query := `
		SELECT id, company_id, item_id, total_quantity, total_cost, date, created_by, created_at
		FROM withdrawals WHERE id = $1`
	var w entity.Withdrawal
	err := r.q.QueryRow(ctx, query, id).Scan(
		&w.ID, &w.CompanyID, &w.ItemID, &w.TotalQuantity, &w.TotalCost, &w.Date, &w.CreatedBy, &w.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get withdrawal: %w", err)
	}
	if err := r.loadConsumptions(ctx, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// ListByItem devuelve retiros del artículo, más recientes primero.
func (r *WithdrawalRepo) ListByItem(itemID string, limit, offset int) ([]*entity.Withdrawal, error) {
	ctx := context.Background()
	query := `
		SELECT id, company_id, item_id, total_quantity, total_cost, date, created_by, created_at
		FROM withdrawals WHERE item_id = $1 ORDER BY date DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, itemID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list withdrawals: %w", err)
	}
	defer rows.Close()
	var list []*entity.Withdrawal
	for rows.Next() {
		var w entity.Withdrawal
		if err := rows.Scan(&w.ID, &w.CompanyID, &w.ItemID, &w.TotalQuantity, &w.TotalCost,
			&w.Date, &w.CreatedBy, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan withdrawal: %w", err)
		}
		list = append(list, &w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, w := range list {
		if err := r.loadConsumptions(ctx, w); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (r *WithdrawalRepo) loadConsumptions(ctx context.Context, w *entity.Withdrawal) error {
	rows, err := r.q.Query(ctx,
		`SELECT lot_id, quantity, unit_cost
		 FROM withdrawal_consumptions WHERE withdrawal_id = $1 ORDER BY position`,
		w.ID,
	)
	if err != nil {
		return fmt.Errorf("list withdrawal consumptions: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var c entity.LotConsumption
		if err := rows.Scan(&c.LotID, &c.Quantity, &c.UnitCost); err != nil {
			return fmt.Errorf("scan withdrawal consumption: %w", err)
		}
		w.Consumptions = append(w.Consumptions, c)
	}
	return rows.Err()
}
