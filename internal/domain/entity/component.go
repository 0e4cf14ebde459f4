package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Component representa un componente electrónico del catálogo del laboratorio.
// CurrentQuantity es una caché materializada del ledger: solo el motor de
// movimientos (Stock Mutator) puede modificarla, junto con las fechas de
// último movimiento. El resto de campos se editan por el camino de catálogo.
type Component struct {
	ID                string
	Name              string
	PartNumber        string
	Manufacturer      string
	Description       string
	Category          string // una de las categorías fijas (ver category.go)
	InitialQuantity   int64  // saldo de apertura registrado en la creación
	CurrentQuantity   int64  // siempre >= 0; igual a InitialQuantity + neto del ledger
	LocationBin       string
	UnitPrice         decimal.Decimal
	LowStockThreshold int64
	DatasheetLink     string
	LastInwardDate    *time.Time // nil = nunca ha entrado stock
	LastOutwardDate   *time.Time // nil = nunca ha salido stock
	CreatedBy         string     // UserID del principal que lo creó
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
