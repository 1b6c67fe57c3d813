package dto

import "github.com/shopspring/decimal"

// CreateMilkingCountedRequest ordeño rápido: solo conteo y total, sin desglose
// por vaca.
type CreateMilkingCountedRequest struct {
	Shift       string          `json:"shift"`
	CowCount    int             `json:"cow_count"`
	TotalLiters decimal.Decimal `json:"total_liters"`
	Date        string          `json:"date"` // YYYY-MM-DD
	Time        string          `json:"time"` // HH:MM
	Notes       string          `json:"notes,omitempty"`
}

// CowLitersDTO litros exactos de una vaca en un ordeño individual.
type CowLitersDTO struct {
	CowID  string          `json:"cow_id"`
	Liters decimal.Decimal `json:"liters"`
}

// CreateMilkingItemizedRequest ordeño individual: litros medidos por vaca;
// el total se deriva como la suma exacta.
type CreateMilkingItemizedRequest struct {
	Shift string         `json:"shift"`
	Cows  []CowLitersDTO `json:"cows"`
	Date  string         `json:"date"`
	Time  string         `json:"time"`
	Notes string         `json:"notes,omitempty"`
}

// CreateMilkingAggregateRequest ordeño masivo: total medido repartido por
// igual entre las vacas listadas.
type CreateMilkingAggregateRequest struct {
	Shift       string          `json:"shift"`
	CowIDs      []string        `json:"cow_ids"`
	TotalLiters decimal.Decimal `json:"total_liters"`
	Date        string          `json:"date"`
	Time        string          `json:"time"`
	Notes       string          `json:"notes,omitempty"`
}

// MilkingResponse representación de un ordeño en respuestas.
type MilkingResponse struct {
	ID          string          `json:"id"`
	CaptureMode string          `json:"capture_mode"`
	Shift       string          `json:"shift"`
	CowCount    int             `json:"cow_count"`
	TotalLiters decimal.Decimal `json:"total_liters"`
	Date        string          `json:"date"`
	Time        string          `json:"time"`
	EmployeeID  string          `json:"employee_id,omitempty"`
	Notes       string          `json:"notes,omitempty"`
}

// CowHistoryEntryDTO registro individual unido con su ordeño padre.
type CowHistoryEntryDTO struct {
	ID          string          `json:"id"`
	MilkingID   string          `json:"milking_id"`
	Liters      decimal.Decimal `json:"liters"`
	Shift       string          `json:"shift"`
	CaptureMode string          `json:"capture_mode"`
	Date        string          `json:"date"`
	Time        string          `json:"time"`
	EmployeeID  string          `json:"employee_id,omitempty"`
}

// EmployeeHistorySummaryDTO resumen derivado del historial de un empleado.
type EmployeeHistorySummaryDTO struct {
	TotalMilkings int             `json:"total_milkings"`
	TotalLiters   decimal.Decimal `json:"total_liters"`
	AvgPerMilking decimal.Decimal `json:"avg_per_milking"`
}

// EmployeeHistoryResponse historial de ordeños de un empleado más su resumen.
type EmployeeHistoryResponse struct {
	Milkings []MilkingResponse         `json:"milkings"`
	Summary  EmployeeHistorySummaryDTO `json:"summary"`
}

// ShiftStatsDTO conteo y litros de un turno.
type ShiftStatsDTO struct {
	Count  int             `json:"count"`
	Liters decimal.Decimal `json:"liters"`
}

// DailyStatsResponse totales de un día calendario con desglose AM/PM.
type DailyStatsResponse struct {
	Date        string          `json:"date"`
	TotalLiters decimal.Decimal `json:"total_liters"`
	AM          ShiftStatsDTO   `json:"am"`
	PM          ShiftStatsDTO   `json:"pm"`
}
