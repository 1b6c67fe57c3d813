package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeIN         = "IN"         // entrada: suma al caché
	MovementTypeOUT        = "OUT"        // salida: resta, requiere stock suficiente
	MovementTypeADJUSTMENT = "ADJUSTMENT" // ajuste: fija la cantidad en valor absoluto
)

// InventoryMovement es un registro append-only que cambia la cantidad de un
// item de inventario. Nunca se muta ni se borra; las correcciones son
// movimientos nuevos.
type InventoryMovement struct {
	ID              string
	CompanyID       string
	InventoryItemID string
	Type            string
	Quantity        decimal.Decimal
	Reason          string
	Notes           string
	CreatedBy       string
	CreatedAt       time.Time
}
