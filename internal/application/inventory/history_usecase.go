package inventory

import (
	"github.com/jhoicas/labstock-api/internal/application/dto"
	"github.com/jhoicas/labstock-api/internal/domain"
	"github.com/jhoicas/labstock-api/internal/domain/entity"
	domaininv "github.com/jhoicas/labstock-api/internal/domain/inventory"
	"github.com/jhoicas/labstock-api/internal/domain/repository"
)

// HistoryUseCase consultas de lectura sobre el ledger de un componente.
type HistoryUseCase struct {
	componentRepo repository.ComponentRepository
	ledgerRepo    repository.LedgerRepository
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(componentRepo repository.ComponentRepository, ledgerRepo repository.LedgerRepository) *HistoryUseCase {
	return &HistoryUseCase{componentRepo: componentRepo, ledgerRepo: ledgerRepo}
}

// ListMovements devuelve el historial de movimientos de un componente,
// filtrado por dirección y rango de fechas, ordenado por occurred_at
// descendente.
func (uc *HistoryUseCase) ListMovements(filter repository.LedgerFilter, limit, offset int) (*dto.LedgerListResponse, error) {
	if filter.Direction != "" && !entity.IsValidDirection(filter.Direction) {
		return nil, domain.ErrInvalidInput
	}
	component, err := uc.componentRepo.GetByID(filter.ComponentID)
	if err != nil {
		return nil, err
	}
	if component == nil {
		return nil, domain.ErrNotFound
	}

	entries, err := uc.ledgerRepo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LedgerEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.LedgerEntryResponse{
			ID:          e.ID,
			ComponentID: e.ComponentID,
			Direction:   e.Direction,
			Quantity:    e.Quantity,
			Reason:      e.Reason,
			Notes:       e.Notes,
			PerformedBy: e.PerformedBy,
			OccurredAt:  e.OccurredAt,
		})
	}
	return &dto.LedgerListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// AuditBalance reconstruye el balance de un componente por replay del ledger
// (saldo de apertura + entradas - salidas, en orden de occurred_at) y lo
// compara con la cantidad cacheada. La caché debe ser siempre derivable del
// ledger; una discrepancia aquí es un bug de consistencia, no un estado válido.
func (uc *HistoryUseCase) AuditBalance(componentID string) (*dto.BalanceAuditDTO, error) {
	component, err := uc.componentRepo.GetByID(componentID)
	if err != nil {
		return nil, err
	}
	if component == nil {
		return nil, domain.ErrNotFound
	}

	entries, err := uc.ledgerRepo.ListForReplay(componentID)
	if err != nil {
		return nil, err
	}

	replayed, err := domaininv.ReplayBalance(component.InitialQuantity, entries)
	if err != nil {
		return nil, err
	}
	return &dto.BalanceAuditDTO{
		ComponentID:      componentID,
		CachedQuantity:   component.CurrentQuantity,
		ReplayedQuantity: replayed,
		EntryCount:       len(entries),
		Consistent:       replayed == component.CurrentQuantity,
	}, nil
}
