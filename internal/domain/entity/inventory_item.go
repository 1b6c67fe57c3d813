package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de cadena de frío.
const (
	StatusCold = "COLD"
	StatusHot  = "HOT"
)

// Categorías de inventario.
const (
	CategoryFreshMilk  = "FRESH_MILK"
	CategoryProcessing = "PROCESSING"
	CategoryStored     = "STORED"
)

// InventoryItem representa un lote de leche en inventario. Quantity es un
// caché derivado: el valor autoritativo es el fold de sus movimientos, y solo
// lo muta la aplicación de movimientos (nunca un update directo).
type InventoryItem struct {
	ID        string
	CompanyID string
	BatchID   string // único por empresa
	Quantity  decimal.Decimal
	Category  string
	Status    string
	MilkingID string // ordeño de origen, opcional
	Notes     string
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}
