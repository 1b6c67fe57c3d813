package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// QualityTest es una prueba de calidad de leche. El motor de agregación la
// consume solo en lectura; el módulo de calidad es su dueño.
type QualityTest struct {
	ID                string
	CompanyID         string
	MilkingID         string // ordeño asociado, opcional
	TestID            string // único por empresa
	FatPercentage     decimal.Decimal
	ProteinPercentage decimal.Decimal
	Lactose           decimal.Decimal
	Acidity           decimal.Decimal
	UFC               int64 // unidades formadoras de colonias
	Observations      string
	TestDate          string // YYYY-MM-DD
	CreatedAt         time.Time
}
