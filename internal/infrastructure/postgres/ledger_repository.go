package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/labstock-api/internal/domain/entity"
	"github.com/jhoicas/labstock-api/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

const ledgerColumns = `id, component_id, direction, quantity, reason, notes,
	performed_by, occurred_at, created_at`

// LedgerRepo implementación del ledger append-only sobre PostgreSQL
// (usable con pool o tx). No expone Update ni Delete: las entradas son
// inmutables una vez confirmadas.
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// Create añade una entrada al ledger.
func (r *LedgerRepo) Create(entry *entity.LedgerEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	query := `
		INSERT INTO ledger_entries (` + ledgerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	notes := (*string)(nil)
	if entry.Notes != "" {
		notes = &entry.Notes
	}
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.ComponentID, entry.Direction, entry.Quantity, entry.Reason,
		notes, entry.PerformedBy, entry.OccurredAt, entry.CreatedAt,
	)
	if err != nil {
		return wrapStoreErr("insert ledger entry", err)
	}
	return nil
}

// List devuelve entradas filtradas, ordenadas por occurred_at descendente.
func (r *LedgerRepo) List(filter repository.LedgerFilter, limit, offset int) ([]*entity.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE component_id = $1`
	args := []any{filter.ComponentID}
	if filter.Direction != "" {
		args = append(args, filter.Direction)
		query += fmt.Sprintf(` AND direction = $%d`, len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += fmt.Sprintf(` AND occurred_at >= $%d`, len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += fmt.Sprintf(` AND occurred_at <= $%d`, len(args))
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(` ORDER BY occurred_at DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	return r.queryEntries(query, args, "list ledger entries")
}

// ListForReplay devuelve todas las entradas de un componente en orden
// ascendente de occurred_at, para reconstruir el balance por replay.
func (r *LedgerRepo) ListForReplay(componentID string) ([]*entity.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries
		WHERE component_id = $1 ORDER BY occurred_at, created_at`
	return r.queryEntries(query, []any{componentID}, "list ledger entries for replay")
}

func (r *LedgerRepo) queryEntries(query string, args []any, op string) ([]*entity.LedgerEntry, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, wrapStoreErr(op, err)
	}
	defer rows.Close()

	var list []*entity.LedgerEntry
	for rows.Next() {
		var e entity.LedgerEntry
		var notes *string
		if err := rows.Scan(
			&e.ID, &e.ComponentID, &e.Direction, &e.Quantity, &e.Reason,
			&notes, &e.PerformedBy, &e.OccurredAt, &e.CreatedAt,
		); err != nil {
			return nil, wrapStoreErr("scan ledger entry", err)
		}
		if notes != nil {
			e.Notes = *notes
		}
		list = append(list, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreErr(op, err)
	}
	return list, nil
}
