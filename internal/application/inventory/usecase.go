package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/labstock-api/internal/domain"
	"github.com/jhoicas/labstock-api/internal/domain/entity"
	"github.com/jhoicas/labstock-api/internal/domain/repository"
)

// ApplyMovementUseCase es el único camino que puede cambiar la cantidad de un
// componente. Aplica un movimiento de forma transaccional con bloqueo de fila
// (SELECT FOR UPDATE) y Commit/Rollback: el check de stock suficiente y la
// escritura son una unidad indivisible por componente, y movimientos sobre
// componentes distintos no se bloquean entre sí.
type ApplyMovementUseCase struct {
	txRunner TxRunner
}

// NewApplyMovementUseCase construye el caso de uso.
func NewApplyMovementUseCase(txRunner TxRunner) *ApplyMovementUseCase {
	return &ApplyMovementUseCase{txRunner: txRunner}
}

// MovementInput entrada para aplicar un movimiento de stock.
type MovementInput struct {
	ComponentID string
	Direction   string // inward | outward
	Quantity    int64
	Reason      string
	Notes       string
	PerformedBy string
}

// ApplyMovement valida y aplica un movimiento. Orden de validación:
// (1) el componente existe, si no ErrNotFound; (2) cantidad positiva,
// dirección válida y reason no vacío, si no ErrInvalidInput; (3) en salidas,
// cantidad <= stock actual leído bajo bloqueo, si no ErrInsufficientStock.
//
// En éxito: una entrada en el ledger con OccurredAt = momento de commit, la
// cantidad cacheada ajustada y la fecha de último movimiento de la dirección
// correspondiente actualizada. En fallo no queda ningún efecto parcial.
func (uc *ApplyMovementUseCase) ApplyMovement(ctx context.Context, input MovementInput) (*entity.LedgerEntry, error) {
	var entry *entity.LedgerEntry

	err := uc.txRunner.Run(ctx, func(
		ledgerRepo repository.LedgerRepository,
		componentRepo repository.ComponentRepository,
	) error {
		// Bloquea la fila del componente: serializa movimientos concurrentes
		// sobre el mismo componente (check-then-act atómico).
		component, err := componentRepo.GetForUpdate(input.ComponentID)
		if err != nil {
			return err
		}
		if component == nil {
			return domain.ErrNotFound
		}

		if input.Quantity <= 0 {
			return domain.ErrInvalidInput
		}
		if !entity.IsValidDirection(input.Direction) {
			return domain.ErrInvalidInput
		}
		if strings.TrimSpace(input.Reason) == "" {
			return domain.ErrInvalidInput
		}

		now := time.Now()
		switch input.Direction {
		case entity.DirectionInward:
			component.CurrentQuantity += input.Quantity
			component.LastInwardDate = &now
		case entity.DirectionOutward:
			if input.Quantity > component.CurrentQuantity {
				return domain.ErrInsufficientStock
			}
			component.CurrentQuantity -= input.Quantity
			component.LastOutwardDate = &now
		}
		component.UpdatedAt = now

		entry = &entity.LedgerEntry{
			ID:          uuid.New().String(),
			ComponentID: component.ID,
			Direction:   input.Direction,
			Quantity:    input.Quantity,
			Reason:      input.Reason,
			Notes:       input.Notes,
			PerformedBy: input.PerformedBy,
			OccurredAt:  now,
			CreatedAt:   now,
		}
		if err := ledgerRepo.Create(entry); err != nil {
			return err
		}
		return componentRepo.UpdateStock(component)
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}
