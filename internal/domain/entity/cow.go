package entity

import "github.com/shopspring/decimal"

// Cow es la forma mínima de una vaca que el núcleo necesita leer. Su CRUD
// pertenece a otro módulo; aquí solo se consulta.
//
// DailyProduction es un campo mantenido externamente (no se recalcula desde el
// ledger de producción); el ranking de top productoras lo lee tal cual.
type Cow struct {
	ID              string
	CompanyID       string
	Tag             string // identificador visible en el hato (ej. "V-042")
	Name            string
	Breed           string
	DailyProduction decimal.Decimal
	IsActive        bool
}

// Employee es la forma mínima de un empleado para los cálculos de eficiencia
// y el historial por empleado.
type Employee struct {
	ID        string
	CompanyID string
	Name      string
	IsActive  bool
}
