// Package analytics contiene el motor de agregación: rollups por ventana de
// tiempo sobre el ledger de producción, el inventario y el feed de calidad.
// Todo es cómputo derivado re-ejecutado por petición; no hay vistas
// materializadas.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/lecheria-api/internal/application/dto"
	"github.com/tu-usuario/lecheria-api/internal/domain"
	"github.com/tu-usuario/lecheria-api/internal/domain/entity"
	"github.com/tu-usuario/lecheria-api/internal/domain/repository"
)

const (
	dateLayout        = "2006-01-02"
	dashboardTopCows  = 5  // vacas en el ranking del dashboard
	dashboardRecent   = 10 // ordeños recientes en el dashboard
	monthBucketCount  = 4  // buckets S1..S4 del período "month"
	monthBucketDays   = 7  // días por bucket del período "month"
	weekSeriesDays    = 7  // días de la serie diaria
)

// Nombres de día, indexados por time.Weekday (domingo = 0).
var dayNames = [...]string{"Dom", "Lun", "Mar", "Mié", "Jue", "Vie", "Sáb"}

// Períodos soportados por ProductionByPeriod.
const (
	PeriodDay   = "day"
	PeriodWeek  = "week"
	PeriodMonth = "month"
)

// DashboardUseCase calcula los resúmenes del dashboard. Acumula en precisión
// completa y redondea a 2 decimales solo al construir la respuesta.
type DashboardUseCase struct {
	milkRepo repository.MilkingRepository
	cowRepo  repository.CowRepository
	empRepo  repository.EmployeeRepository
	testRepo repository.QualityTestRepository

	now func() time.Time // inyectable en tests
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	milkRepo repository.MilkingRepository,
	cowRepo repository.CowRepository,
	empRepo repository.EmployeeRepository,
	testRepo repository.QualityTestRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		milkRepo: milkRepo,
		cowRepo:  cowRepo,
		empRepo:  empRepo,
		testRepo: testRepo,
		now:      time.Now,
	}
}

// GetSummary construye el resumen del día: totales de hoy con desglose AM/PM,
// promedio por vaca activa, serie diaria de los últimos 7 días, semana en
// curso (inicia domingo), top productoras y ordeños recientes.
//
// Las cuatro consultas independientes se lanzan en paralelo; las lecturas no
// son snapshot-consistentes entre sí.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, companyID string) (*dto.DashboardSummaryResponse, error) {
	now := uc.now()
	today := now.Format(dateLayout)
	weekStart := now.AddDate(0, 0, -int(now.Weekday()))
	seriesStart := now.AddDate(0, 0, -(weekSeriesDays - 1))
	earliest := weekStart
	if seriesStart.Before(earliest) {
		earliest = seriesStart
	}

	type milkingsResult struct {
		milkings []*entity.Milking
		err      error
	}
	type cowsResult struct {
		count int
		err   error
	}
	type topResult struct {
		cows []*entity.Cow
		err  error
	}

	milkingsCh := make(chan milkingsResult, 1)
	cowsCh := make(chan cowsResult, 1)
	topCh := make(chan topResult, 1)
	recentCh := make(chan milkingsResult, 1)

	go func() {
		m, err := uc.milkRepo.ListFromDate(companyID, earliest.Format(dateLayout))
		milkingsCh <- milkingsResult{m, err}
	}()
	go func() {
		n, err := uc.cowRepo.CountActive(companyID)
		cowsCh <- cowsResult{n, err}
	}()
	go func() {
		cows, err := uc.cowRepo.TopByDailyProduction(companyID, dashboardTopCows)
		topCh <- topResult{cows, err}
	}()
	go func() {
		m, err := uc.milkRepo.ListRecent(companyID, dashboardRecent)
		recentCh <- milkingsResult{m, err}
	}()

	window := <-milkingsCh
	cows := <-cowsCh
	top := <-topCh
	recent := <-recentCh

	if window.err != nil {
		return nil, fmt.Errorf("dashboard: ordeños de la ventana: %w", window.err)
	}
	if cows.err != nil {
		return nil, fmt.Errorf("dashboard: vacas activas: %w", cows.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: top productoras: %w", top.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("dashboard: ordeños recientes: %w", recent.err)
	}

	// ── Hoy ───────────────────────────────────────────────────────────────
	todayTotal := decimal.Zero
	var milkingsAM, milkingsPM int
	for _, m := range window.milkings {
		if m.Date != today {
			continue
		}
		todayTotal = todayTotal.Add(m.TotalLiters)
		if m.Shift == entity.ShiftAM {
			milkingsAM++
		} else {
			milkingsPM++
		}
	}
	avgPerCow := decimal.Zero
	if cows.count > 0 {
		avgPerCow = todayTotal.Div(decimal.NewFromInt(int64(cows.count)))
	}

	// ── Semana en curso (desde el domingo) ────────────────────────────────
	weekStartStr := weekStart.Format(dateLayout)
	weekTotal := decimal.Zero
	for _, m := range window.milkings {
		if m.Date >= weekStartStr {
			weekTotal = weekTotal.Add(m.TotalLiters)
		}
	}
	daysElapsed := int(now.Weekday()) + 1
	avgDaily := weekTotal.Div(decimal.NewFromInt(int64(daysElapsed)))

	// ── Serie diaria de los últimos 7 días ────────────────────────────────
	daily := make([]dto.DailyProductionDTO, 0, weekSeriesDays)
	for i := weekSeriesDays - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		dayStr := day.Format(dateLayout)
		dayTotal := decimal.Zero
		var count int
		for _, m := range window.milkings {
			if m.Date == dayStr {
				dayTotal = dayTotal.Add(m.TotalLiters)
				count++
			}
		}
		daily = append(daily, dto.DailyProductionDTO{
			Date:          dayStr,
			DayName:       dayNames[day.Weekday()],
			TotalLiters:   dayTotal.Round(2),
			MilkingsCount: count,
		})
	}

	producers := make([]dto.TopProducerDTO, len(top.cows))
	for i, c := range top.cows {
		producers[i] = dto.TopProducerDTO{
			ID:              c.ID,
			Tag:             c.Tag,
			Name:            c.Name,
			DailyProduction: c.DailyProduction,
		}
	}
	recentResponses := make([]dto.MilkingResponse, len(recent.milkings))
	for i, m := range recent.milkings {
		recentResponses[i] = dto.MilkingResponseFrom(m)
	}

	return &dto.DashboardSummaryResponse{
		Today: dto.TodaySummaryDTO{
			TotalLiters: todayTotal.Round(2),
			MilkingsAM:  milkingsAM,
			MilkingsPM:  milkingsPM,
			ActiveCows:  cows.count,
			AvgPerCow:   avgPerCow.Round(2),
		},
		ThisWeek: dto.WeekSummaryDTO{
			TotalLiters:     weekTotal.Round(2),
			AvgDaily:        avgDaily.Round(2),
			Trend:           "stable",
			DailyProduction: daily,
		},
		TopProducers:   producers,
		RecentMilkings: recentResponses,
		Alerts:         []string{},
	}, nil
}

// GetMetrics calcula los totales día/semana/mes (alineados a calendario:
// semana desde el domingo, mes desde el día 1), los ratios de eficiencia y
// los promedios de calidad del mes en curso.
func (uc *DashboardUseCase) GetMetrics(ctx context.Context, companyID string) (*dto.DashboardMetricsResponse, error) {
	now := uc.now()
	today := now.Format(dateLayout)
	weekStart := now.AddDate(0, 0, -int(now.Weekday()))
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	earliest := monthStart
	if weekStart.Before(earliest) {
		earliest = weekStart
	}

	milkings, err := uc.milkRepo.ListFromDate(companyID, earliest.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("métricas: ordeños: %w", err)
	}

	weekStartStr := weekStart.Format(dateLayout)
	monthStartStr := monthStart.Format(dateLayout)
	daily, weekly, monthly := decimal.Zero, decimal.Zero, decimal.Zero
	for _, m := range milkings {
		if m.Date == today {
			daily = daily.Add(m.TotalLiters)
		}
		if m.Date >= weekStartStr {
			weekly = weekly.Add(m.TotalLiters)
		}
		if m.Date >= monthStartStr {
			monthly = monthly.Add(m.TotalLiters)
		}
	}

	// Eficiencia del hato: promedio del campo daily_production de las vacas
	// activas (mantenido externamente, no recalculado desde el ledger).
	cows, err := uc.cowRepo.ListActive(companyID)
	if err != nil {
		return nil, fmt.Errorf("métricas: vacas activas: %w", err)
	}
	totalCowProduction := decimal.Zero
	for _, c := range cows {
		totalCowProduction = totalCowProduction.Add(c.DailyProduction)
	}
	avgPerCow := decimal.Zero
	if len(cows) > 0 {
		avgPerCow = totalCowProduction.Div(decimal.NewFromInt(int64(len(cows))))
	}

	activeEmployees, err := uc.empRepo.CountActive(companyID)
	if err != nil {
		return nil, fmt.Errorf("métricas: empleados activos: %w", err)
	}
	avgPerEmployee := decimal.Zero
	if activeEmployees > 0 {
		avgPerEmployee = daily.Div(decimal.NewFromInt(int64(activeEmployees)))
	}

	tests, err := uc.testRepo.ListFromDate(companyID, monthStartStr)
	if err != nil {
		return nil, fmt.Errorf("métricas: pruebas de calidad: %w", err)
	}
	avgFat, avgProtein := decimal.Zero, decimal.Zero
	if len(tests) > 0 {
		fat, protein := decimal.Zero, decimal.Zero
		for _, t := range tests {
			fat = fat.Add(t.FatPercentage)
			protein = protein.Add(t.ProteinPercentage)
		}
		n := decimal.NewFromInt(int64(len(tests)))
		avgFat = fat.Div(n)
		avgProtein = protein.Div(n)
	}

	return &dto.DashboardMetricsResponse{
		Production: dto.ProductionMetricsDTO{
			Daily:   daily.Round(2),
			Weekly:  weekly.Round(2),
			Monthly: monthly.Round(2),
		},
		Efficiency: dto.EfficiencyMetricsDTO{
			AvgPerCow:      avgPerCow.Round(2),
			AvgPerEmployee: avgPerEmployee.Round(2),
		},
		Quality: dto.QualityMetricsDTO{
			AvgFat:     avgFat.Round(2),
			AvgProtein: avgProtein.Round(2),
			TestsCount: len(tests),
		},
	}, nil
}

// GetProductionByPeriod construye la serie de producción por período:
//
//	day   → dos buckets AM y PM sobre los ordeños de hoy
//	week  → siete buckets diarios de los últimos 7 días (hoy incluido)
//	month → cuatro buckets fijos de 7 días sobre los últimos 28 días (S1..S4)
func (uc *DashboardUseCase) GetProductionByPeriod(ctx context.Context, companyID, period string) (*dto.ProductionByPeriodResponse, error) {
	now := uc.now()

	var labels []string
	var points []dto.PeriodPointDTO

	switch period {
	case PeriodDay:
		today := now.Format(dateLayout)
		milkings, err := uc.milkRepo.List(companyID, repository.MilkingFilter{Date: today})
		if err != nil {
			return nil, fmt.Errorf("producción por período: %w", err)
		}
		amTotal, pmTotal := decimal.Zero, decimal.Zero
		var amCount, pmCount int
		for _, m := range milkings {
			if m.Shift == entity.ShiftAM {
				amTotal = amTotal.Add(m.TotalLiters)
				amCount++
			} else {
				pmTotal = pmTotal.Add(m.TotalLiters)
				pmCount++
			}
		}
		labels = []string{entity.ShiftAM, entity.ShiftPM}
		points = []dto.PeriodPointDTO{
			{Date: today, Label: entity.ShiftAM, TotalLiters: amTotal.Round(2), MilkingsCount: amCount},
			{Date: today, Label: entity.ShiftPM, TotalLiters: pmTotal.Round(2), MilkingsCount: pmCount},
		}

	case PeriodWeek:
		start := now.AddDate(0, 0, -(weekSeriesDays - 1))
		milkings, err := uc.milkRepo.ListFromDate(companyID, start.Format(dateLayout))
		if err != nil {
			return nil, fmt.Errorf("producción por período: %w", err)
		}
		for i := 0; i < weekSeriesDays; i++ {
			day := start.AddDate(0, 0, i)
			dayStr := day.Format(dateLayout)
			total := decimal.Zero
			var count int
			for _, m := range milkings {
				if m.Date == dayStr {
					total = total.Add(m.TotalLiters)
					count++
				}
			}
			name := dayNames[day.Weekday()]
			labels = append(labels, name)
			points = append(points, dto.PeriodPointDTO{
				Date:          dayStr,
				Label:         name,
				TotalLiters:   total.Round(2),
				MilkingsCount: count,
			})
		}

	case PeriodMonth:
		start := now.AddDate(0, 0, -(monthBucketCount*monthBucketDays - 1))
		milkings, err := uc.milkRepo.ListFromDate(companyID, start.Format(dateLayout))
		if err != nil {
			return nil, fmt.Errorf("producción por período: %w", err)
		}
		for week := 0; week < monthBucketCount; week++ {
			bucketStart := start.AddDate(0, 0, week*monthBucketDays)
			bucketEnd := bucketStart.AddDate(0, 0, monthBucketDays-1)
			startStr := bucketStart.Format(dateLayout)
			endStr := bucketEnd.Format(dateLayout)

			total := decimal.Zero
			var count int
			for _, m := range milkings {
				if m.Date >= startStr && m.Date <= endStr {
					total = total.Add(m.TotalLiters)
					count++
				}
			}
			label := fmt.Sprintf("S%d", week+1)
			labels = append(labels, label)
			points = append(points, dto.PeriodPointDTO{
				Date:          startStr,
				Label:         label,
				TotalLiters:   total.Round(2),
				MilkingsCount: count,
			})
		}

	default:
		return nil, domain.ErrInvalidInput
	}

	total := decimal.Zero
	for _, p := range points {
		total = total.Add(p.TotalLiters)
	}
	avg := decimal.Zero
	if len(points) > 0 {
		avg = total.Div(decimal.NewFromInt(int64(len(points))))
	}

	return &dto.ProductionByPeriodResponse{
		Period:     period,
		Labels:     labels,
		DataPoints: points,
		Summary: dto.PeriodSummaryDTO{
			TotalLiters:     total.Round(2),
			AvgLiters:       avg.Round(2),
			DataPointsCount: len(points),
		},
	}, nil
}
