package repository

import (
	"context"
	"time"

	"github.com/jhoicas/labstock-api/internal/domain/entity"
)

// AnalyticsRepository define las consultas de solo lectura del dashboard.
// Las implementaciones no modifican datos; las lecturas son snapshot
// (pueden reflejar estado justo antes o después de un commit concurrente,
// nunca una escritura parcial).
type AnalyticsRepository interface {
	// ListComponents devuelve el snapshot completo del catálogo,
	// ordenado por nombre de componente.
	ListComponents(ctx context.Context) ([]*entity.Component, error)

	// ListMovements devuelve las entradas del ledger de una dirección con
	// occurred_at >= from, en orden ascendente. Solo se materializan los
	// campos necesarios para el histograma (cantidad y fecha).
	ListMovements(ctx context.Context, direction string, from time.Time) ([]*entity.LedgerEntry, error)
}
