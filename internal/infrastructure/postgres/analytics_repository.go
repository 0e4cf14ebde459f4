package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/labstock-api/internal/domain/entity"
	"github.com/jhoicas/labstock-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard. Trabaja sobre el
// pool directamente: las proyecciones aceptan consistencia de snapshot y no
// necesitan la transacción del motor de stock.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// ListComponents devuelve el snapshot completo del catálogo ordenado por nombre.
func (r *AnalyticsRepo) ListComponents(ctx context.Context) ([]*entity.Component, error) {
	query := `SELECT ` + componentColumns + ` FROM components ORDER BY name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, wrapStoreErr("analytics: list components", err)
	}
	defer rows.Close()

	var list []*entity.Component
	for rows.Next() {
		c, err := scanComponent(rows)
		if err != nil {
			return nil, wrapStoreErr("analytics: scan component", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreErr("analytics: list components", err)
	}
	return list, nil
}

// ListMovements devuelve cantidad y fecha de las entradas de una dirección
// desde `from`, en orden ascendente. Solo materializa lo que necesita el
// histograma.
func (r *AnalyticsRepo) ListMovements(ctx context.Context, direction string, from time.Time) ([]*entity.LedgerEntry, error) {
	const query = `
		SELECT quantity, occurred_at
		FROM ledger_entries
		WHERE direction = $1 AND occurred_at >= $2
		ORDER BY occurred_at`
	rows, err := r.pool.Query(ctx, query, direction, from)
	if err != nil {
		return nil, wrapStoreErr("analytics: list movements", err)
	}
	defer rows.Close()

	var list []*entity.LedgerEntry
	for rows.Next() {
		var e entity.LedgerEntry
		if err := rows.Scan(&e.Quantity, &e.OccurredAt); err != nil {
			return nil, wrapStoreErr("analytics: scan movement", err)
		}
		e.Direction = direction
		list = append(list, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreErr("analytics: list movements", err)
	}
	return list, nil
}
