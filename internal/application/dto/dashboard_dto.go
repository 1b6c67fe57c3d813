package dto

import "github.com/shopspring/decimal"

// TodaySummaryDTO métricas del día en curso.
type TodaySummaryDTO struct {
	TotalLiters decimal.Decimal `json:"total_liters"`
	MilkingsAM  int             `json:"milkings_am"`
	MilkingsPM  int             `json:"milkings_pm"`
	ActiveCows  int             `json:"active_cows"`
	AvgPerCow   decimal.Decimal `json:"avg_per_cow"`
}

// DailyProductionDTO un día de la serie de 7 días.
type DailyProductionDTO struct {
	Date          string          `json:"date"`
	DayName       string          `json:"day_name"`
	TotalLiters   decimal.Decimal `json:"total_liters"`
	MilkingsCount int             `json:"milkings_count"`
}

// WeekSummaryDTO métricas de la semana en curso (inicia domingo).
type WeekSummaryDTO struct {
	TotalLiters     decimal.Decimal      `json:"total_liters"`
	AvgDaily        decimal.Decimal      `json:"avg_daily"`
	Trend           string               `json:"trend"`
	DailyProduction []DailyProductionDTO `json:"daily_production"`
}

// TopProducerDTO vaca en el ranking de producción diaria.
type TopProducerDTO struct {
	ID              string          `json:"id"`
	Tag             string          `json:"tag"`
	Name            string          `json:"name"`
	DailyProduction decimal.Decimal `json:"daily_production"`
}

// DashboardSummaryResponse respuesta de GET /api/dashboard/summary.
type DashboardSummaryResponse struct {
	Today          TodaySummaryDTO   `json:"today"`
	ThisWeek       WeekSummaryDTO    `json:"this_week"`
	TopProducers   []TopProducerDTO  `json:"top_producers"`
	RecentMilkings []MilkingResponse `json:"recent_milkings"`
	Alerts         []string          `json:"alerts"`
}

// ProductionMetricsDTO totales día/semana/mes (alineados a calendario).
type ProductionMetricsDTO struct {
	Daily   decimal.Decimal `json:"daily"`
	Weekly  decimal.Decimal `json:"weekly"`
	Monthly decimal.Decimal `json:"monthly"`
}

// EfficiencyMetricsDTO ratios de eficiencia del hato y del personal.
type EfficiencyMetricsDTO struct {
	AvgPerCow      decimal.Decimal `json:"avg_per_cow"`
	AvgPerEmployee decimal.Decimal `json:"avg_per_employee"`
}

// QualityMetricsDTO promedios de calidad del mes en curso.
type QualityMetricsDTO struct {
	AvgFat     decimal.Decimal `json:"avg_fat"`
	AvgProtein decimal.Decimal `json:"avg_protein"`
	TestsCount int             `json:"tests_count"`
}

// DashboardMetricsResponse respuesta de GET /api/dashboard/metrics.
type DashboardMetricsResponse struct {
	Production ProductionMetricsDTO `json:"production"`
	Efficiency EfficiencyMetricsDTO `json:"efficiency"`
	Quality    QualityMetricsDTO    `json:"quality"`
}

// PeriodPointDTO un bucket de la serie por período.
type PeriodPointDTO struct {
	Date          string          `json:"date"`
	Label         string          `json:"label"`
	TotalLiters   decimal.Decimal `json:"total_liters"`
	MilkingsCount int             `json:"milkings_count"`
}

// PeriodSummaryDTO total y promedio por bucket de la serie.
type PeriodSummaryDTO struct {
	TotalLiters     decimal.Decimal `json:"total_liters"`
	AvgLiters       decimal.Decimal `json:"avg_liters"`
	DataPointsCount int             `json:"data_points_count"`
}

// ProductionByPeriodResponse respuesta de GET /api/dashboard/production.
type ProductionByPeriodResponse struct {
	Period     string           `json:"period"` // day | week | month
	Labels     []string         `json:"labels"`
	DataPoints []PeriodPointDTO `json:"data_points"`
	Summary    PeriodSummaryDTO `json:"summary"`
}
