// Package postgres implementa los puertos de persistencia sobre PostgreSQL
// (pgx/v5). Es el backend de producción del Lot Store: la secuencia de
// inserción la da un BIGSERIAL y la serialización por artículo se logra con
// SELECT ... FOR UPDATE dentro de la transacción del TxRunner.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier abstrae pool y transacción: los repositorios aceptan cualquiera de
// los dos, así el TxRunner puede atarlos a una tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
