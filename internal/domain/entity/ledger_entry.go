package entity

import "time"

// Direcciones de movimiento de stock.
const (
	DirectionInward  = "inward"  // entrada de stock
	DirectionOutward = "outward" // salida de stock
)

// IsValidDirection verifica que la dirección sea inward u outward.
func IsValidDirection(direction string) bool {
	return direction == DirectionInward || direction == DirectionOutward
}

// LedgerEntry representa un movimiento de stock sobre un componente.
// El ledger es append-only: las entradas nunca se editan ni se borran,
// y es la fuente de verdad del historial de cantidades.
type LedgerEntry struct {
	ID          string
	ComponentID string
	Direction   string // inward | outward
	Quantity    int64  // siempre positivo; la dirección da el signo
	Reason      string // proyecto o motivo, obligatorio
	Notes       string
	PerformedBy string // UserID del principal
	OccurredAt  time.Time // asignada por el servidor al confirmar
	CreatedAt   time.Time
}
