package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Proyecciones de solo lectura recalculadas bajo demanda; si una consulta
// falla, la sección correspondiente se devuelve vacía (comportamiento del
// sistema de referencia: el dashboard muestra "sin datos" en vez de fallar).
type DashboardSummaryDTO struct {
	TotalUnits int64           `json:"total_units"` // Σ current_quantity
	TotalValue decimal.Decimal `json:"total_value"` // Σ current_quantity × unit_price

	LowStock   []ComponentAlertDTO `json:"low_stock"`
	StaleStock []StaleComponentDTO `json:"stale_stock"`

	MonthlyInward  []MonthlyBucketDTO `json:"monthly_inward"`
	MonthlyOutward []MonthlyBucketDTO `json:"monthly_outward"`
}

// ComponentAlertDTO componente por debajo de su umbral de stock bajo.
type ComponentAlertDTO struct {
	ID                string `json:"id"`
	Name              string `json:"component_name"`
	CurrentQuantity   int64  `json:"current_quantity"`
	LowStockThreshold int64  `json:"low_stock_threshold"`
}

// StaleComponentDTO componente sin salidas dentro de la ventana configurada.
type StaleComponentDTO struct {
	ID              string     `json:"id"`
	Name            string     `json:"component_name"`
	CurrentQuantity int64      `json:"current_quantity"`
	LastOutwardDate *time.Time `json:"last_outward_date,omitempty"` // nil = nunca
}

// MonthlyBucketDTO bucket del histograma mensual (clave "YYYY-MM").
type MonthlyBucketDTO struct {
	Month    string `json:"month"`
	Quantity int64  `json:"quantity"`
}
