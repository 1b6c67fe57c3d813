package dto

import "github.com/shopspring/decimal"

// CreateQualityTestRequest alta de una prueba de calidad.
type CreateQualityTestRequest struct {
	TestID            string          `json:"test_id"`
	MilkingID         string          `json:"milking_id,omitempty"`
	FatPercentage     decimal.Decimal `json:"fat_percentage"`
	ProteinPercentage decimal.Decimal `json:"protein_percentage"`
	Lactose           decimal.Decimal `json:"lactose"`
	Acidity           decimal.Decimal `json:"acidity"`
	UFC               int64           `json:"ufc"`
	Observations      string          `json:"observations,omitempty"`
	TestDate          string          `json:"test_date"` // YYYY-MM-DD
}

// UpdateQualityTestRequest actualización parcial; nil = sin cambio.
type UpdateQualityTestRequest struct {
	FatPercentage     *decimal.Decimal `json:"fat_percentage,omitempty"`
	ProteinPercentage *decimal.Decimal `json:"protein_percentage,omitempty"`
	Lactose           *decimal.Decimal `json:"lactose,omitempty"`
	Acidity           *decimal.Decimal `json:"acidity,omitempty"`
	UFC               *int64           `json:"ufc,omitempty"`
	Observations      *string          `json:"observations,omitempty"`
	TestDate          *string          `json:"test_date,omitempty"`
}

// QualityTestResponse representación de una prueba en respuestas.
type QualityTestResponse struct {
	ID                string          `json:"id"`
	TestID            string          `json:"test_id"`
	MilkingID         string          `json:"milking_id,omitempty"`
	FatPercentage     decimal.Decimal `json:"fat_percentage"`
	ProteinPercentage decimal.Decimal `json:"protein_percentage"`
	Lactose           decimal.Decimal `json:"lactose"`
	Acidity           decimal.Decimal `json:"acidity"`
	UFC               int64           `json:"ufc"`
	Observations      string          `json:"observations,omitempty"`
	TestDate          string          `json:"test_date"`
}

// QualityStatsResponse promedios sobre todas las pruebas del tenant.
type QualityStatsResponse struct {
	Total      int             `json:"total"`
	AvgFat     decimal.Decimal `json:"avg_fat"`
	AvgProtein decimal.Decimal `json:"avg_protein"`
	AvgUFC     int64           `json:"avg_ufc"`
}
