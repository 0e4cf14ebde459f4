package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateComponentRequest body para POST /api/components.
// InitialQuantity es el saldo de apertura: participa en el invariante de
// balance como entrada sintética inicial.
type CreateComponentRequest struct {
	Name              string          `json:"component_name"`
	PartNumber        string          `json:"part_number"`
	Manufacturer      string          `json:"manufacturer"`
	Description       string          `json:"description"`
	Category          string          `json:"category"`
	InitialQuantity   int64           `json:"initial_quantity"`
	LocationBin       string          `json:"location_bin"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	LowStockThreshold int64           `json:"low_stock_threshold"`
	DatasheetLink     string          `json:"datasheet_link,omitempty"`
}

// UpdateComponentRequest body para PUT /api/components/:id.
// Solo campos descriptivos: la cantidad y las fechas de movimiento no se
// editan por este camino.
type UpdateComponentRequest struct {
	Name              *string          `json:"component_name,omitempty"`
	PartNumber        *string          `json:"part_number,omitempty"`
	Manufacturer      *string          `json:"manufacturer,omitempty"`
	Description       *string          `json:"description,omitempty"`
	Category          *string          `json:"category,omitempty"`
	LocationBin       *string          `json:"location_bin,omitempty"`
	UnitPrice         *decimal.Decimal `json:"unit_price,omitempty"`
	LowStockThreshold *int64           `json:"low_stock_threshold,omitempty"`
	DatasheetLink     *string          `json:"datasheet_link,omitempty"`
}

// ComponentResponse representación HTTP de un componente del catálogo.
type ComponentResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"component_name"`
	PartNumber        string          `json:"part_number"`
	Manufacturer      string          `json:"manufacturer"`
	Description       string          `json:"description"`
	Category          string          `json:"category"`
	CurrentQuantity   int64           `json:"current_quantity"`
	LocationBin       string          `json:"location_bin"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	LowStockThreshold int64           `json:"low_stock_threshold"`
	DatasheetLink     string          `json:"datasheet_link,omitempty"`
	LastInwardDate    *time.Time      `json:"last_inward_date,omitempty"`
	LastOutwardDate   *time.Time      `json:"last_outward_date,omitempty"`
	CreatedBy         string          `json:"created_by"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ComponentListResponse listado paginado de componentes.
type ComponentListResponse struct {
	Items []ComponentResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
