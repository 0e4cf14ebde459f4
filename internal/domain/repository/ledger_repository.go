package repository

import (
	"time"

	"github.com/jhoicas/labstock-api/internal/domain/entity"
)

// LedgerFilter filtros de consulta sobre el ledger.
type LedgerFilter struct {
	ComponentID string
	Direction   string // inward | outward; vacío = ambas
	From        *time.Time
	To          *time.Time
}

// LedgerRepository define el puerto de persistencia del ledger de movimientos.
// El ledger es append-only: no hay Update ni Delete.
type LedgerRepository interface {
	Create(entry *entity.LedgerEntry) error
	// List devuelve entradas filtradas, ordenadas por occurred_at descendente.
	List(filter LedgerFilter, limit, offset int) ([]*entity.LedgerEntry, error)
	// ListForReplay devuelve todas las entradas de un componente en orden
	// ascendente de occurred_at, para reconstruir el balance.
	ListForReplay(componentID string) ([]*entity.LedgerEntry, error)
}
