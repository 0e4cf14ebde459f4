package inventory

import (
	"context"

	"github.com/jhoicas/labstock-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de stock:
// la lectura validada de la cantidad, el append al ledger y la actualización
// de la caché se confirman o se revierten como una unidad.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		ledgerRepo repository.LedgerRepository,
		componentRepo repository.ComponentRepository,
	) error) error
}
