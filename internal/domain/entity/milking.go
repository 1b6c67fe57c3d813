package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Turnos de ordeño.
const (
	ShiftAM = "AM"
	ShiftPM = "PM"
)

// Modos de captura de un ordeño.
const (
	CaptureModeCounted   = "COUNTED"   // solo conteo de vacas y litros totales
	CaptureModeItemized  = "ITEMIZED"  // litros exactos por vaca
	CaptureModeAggregate = "AGGREGATE" // total medido, repartido por igual entre vacas
)

// Milking representa un evento de recolección de leche. Inmutable una vez
// escrito, salvo su eliminación (borrado duro con cascada a los registros
// individuales).
type Milking struct {
	ID          string
	CompanyID   string
	EmployeeID  string // vacío = captura desatendida
	CaptureMode string
	Shift       string
	CowCount    int
	TotalLiters decimal.Decimal
	Date        string // YYYY-MM-DD
	Time        string // HH:MM
	Notes       string
	CreatedAt   time.Time
}

// IndividualMilking es el registro hijo por vaca de un Milking. Existe solo
// para los modos ITEMIZED y AGGREGATE.
type IndividualMilking struct {
	ID        string
	MilkingID string
	CowID     string
	Liters    decimal.Decimal
}

// CowHistoryEntry es el modelo de lectura del historial por vaca: registro
// individual unido con los metadatos del ordeño padre.
type CowHistoryEntry struct {
	Record      IndividualMilking
	Shift       string
	CaptureMode string
	Date        string
	Time        string
	EmployeeID  string
}
