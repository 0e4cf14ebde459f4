package dto

import "time"

// ApplyMovementRequest body para POST /api/components/:id/movements.
type ApplyMovementRequest struct {
	Direction string `json:"direction"` // inward | outward
	Quantity  int64  `json:"quantity"`
	Reason    string `json:"reason"` // proyecto o motivo, obligatorio
	Notes     string `json:"notes,omitempty"`
}

// LedgerEntryResponse representación HTTP de una entrada del ledger.
type LedgerEntryResponse struct {
	ID          string    `json:"id"`
	ComponentID string    `json:"component_id"`
	Direction   string    `json:"direction"`
	Quantity    int64     `json:"quantity"`
	Reason      string    `json:"reason"`
	Notes       string    `json:"notes,omitempty"`
	PerformedBy string    `json:"performed_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// LedgerListResponse historial paginado de movimientos de un componente.
type LedgerListResponse struct {
	Items []LedgerEntryResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// BalanceAuditDTO resultado de la auditoría de consistencia de caché:
// compara la cantidad cacheada con la reconstruida por replay del ledger.
type BalanceAuditDTO struct {
	ComponentID      string `json:"component_id"`
	CachedQuantity   int64  `json:"cached_quantity"`
	ReplayedQuantity int64  `json:"replayed_quantity"`
	EntryCount       int    `json:"entry_count"`
	Consistent       bool   `json:"consistent"`
}
