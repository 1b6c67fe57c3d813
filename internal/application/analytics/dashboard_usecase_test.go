package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/lecheria-api/internal/domain/entity"
	"github.com/tu-usuario/lecheria-api/internal/domain/repository"
)

// Test interno (package analytics) para poder inyectar el reloj `now`.

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type stubMilkingRepo struct {
	milkings []*entity.Milking
}

func (r *stubMilkingRepo) Create(m *entity.Milking) error { return nil }

func (r *stubMilkingRepo) GetByID(companyID, id string) (*entity.Milking, error) {
	return nil, nil
}

func (r *stubMilkingRepo) List(companyID string, filter repository.MilkingFilter) ([]*entity.Milking, error) {
	var out []*entity.Milking
	for _, m := range r.milkings {
		if m.CompanyID != companyID {
			continue
		}
		if filter.Date != "" && m.Date != filter.Date {
			continue
		}
		if filter.Shift != "" && m.Shift != filter.Shift {
			continue
		}
		if filter.EmployeeID != "" && m.EmployeeID != filter.EmployeeID {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *stubMilkingRepo) ListFromDate(companyID, fromDate string) ([]*entity.Milking, error) {
	var out []*entity.Milking
	for _, m := range r.milkings {
		if m.CompanyID == companyID && m.Date >= fromDate {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *stubMilkingRepo) ListRecent(companyID string, limit int) ([]*entity.Milking, error) {
	var out []*entity.Milking
	for _, m := range r.milkings {
		if m.CompanyID == companyID {
			out = append(out, m)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubMilkingRepo) Delete(companyID, id string) error { return nil }

type stubCowRepo struct {
	cows []*entity.Cow
}

func (r *stubCowRepo) GetByID(companyID, id string) (*entity.Cow, error) { return nil, nil }

func (r *stubCowRepo) CountActive(companyID string) (int, error) {
	var n int
	for _, c := range r.cows {
		if c.CompanyID == companyID && c.IsActive {
			n++
		}
	}
	return n, nil
}

func (r *stubCowRepo) ListActive(companyID string) ([]*entity.Cow, error) {
	var out []*entity.Cow
	for _, c := range r.cows {
		if c.CompanyID == companyID && c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *stubCowRepo) TopByDailyProduction(companyID string, limit int) ([]*entity.Cow, error) {
	out, _ := r.ListActive(companyID)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type stubEmployeeRepo struct {
	active int
}

func (r *stubEmployeeRepo) GetByID(companyID, id string) (*entity.Employee, error) {
	return nil, nil
}

func (r *stubEmployeeRepo) CountActive(companyID string) (int, error) { return r.active, nil }

type stubQualityRepo struct {
	tests []*entity.QualityTest
}

func (r *stubQualityRepo) Create(t *entity.QualityTest) error { return nil }

func (r *stubQualityRepo) GetByID(companyID, id string) (*entity.QualityTest, error) {
	return nil, nil
}

func (r *stubQualityRepo) GetByTestID(companyID, testID string) (*entity.QualityTest, error) {
	return nil, nil
}

func (r *stubQualityRepo) List(companyID string) ([]*entity.QualityTest, error) {
	return r.tests, nil
}

func (r *stubQualityRepo) ListFromDate(companyID, fromDate string) ([]*entity.QualityTest, error) {
	var out []*entity.QualityTest
	for _, t := range r.tests {
		if t.CompanyID == companyID && t.TestDate >= fromDate {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *stubQualityRepo) Update(companyID, id string, patch repository.QualityTestUpdate) (*entity.QualityTest, error) {
	return nil, nil
}

func (r *stubQualityRepo) Delete(companyID, id string) error { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const testCompany = "company-a"

// fixedNow: sábado 2026-08-29. Como es el último día de la semana (domingo=0),
// la semana en curso y la serie de 7 días cubren los mismos días.
var fixedNow = time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

func milkingOn(date, shift string, liters string) *entity.Milking {
	return &entity.Milking{
		ID:          date + "-" + shift + "-" + liters,
		CompanyID:   testCompany,
		Shift:       shift,
		CaptureMode: entity.CaptureModeCounted,
		CowCount:    10,
		TotalLiters: decimal.RequireFromString(liters),
		Date:        date,
		Time:        "05:30",
	}
}

func newTestDashboard(milk *stubMilkingRepo, cows *stubCowRepo, emp *stubEmployeeRepo, tests *stubQualityRepo) *DashboardUseCase {
	uc := NewDashboardUseCase(milk, cows, emp, tests)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

// ──────────────────────────────────────────────────────────────────────────────
// GetSummary
// ──────────────────────────────────────────────────────────────────────────────

func TestGetSummary_SemanaCompleta(t *testing.T) {
	// Un ordeño por día, domingo 23 a sábado 29: 10, 20, ..., 70 litros.
	milk := &stubMilkingRepo{}
	for i := 0; i < 7; i++ {
		date := fixedNow.AddDate(0, 0, -(6 - i)).Format("2006-01-02")
		milk.milkings = append(milk.milkings, milkingOn(date, entity.ShiftAM, decimal.NewFromInt(int64((i+1)*10)).String()))
	}
	cows := &stubCowRepo{cows: []*entity.Cow{
		{ID: "c1", CompanyID: testCompany, Tag: "V-001", Name: "Lola", DailyProduction: decimal.NewFromInt(35), IsActive: true},
	}}

	uc := newTestDashboard(milk, cows, &stubEmployeeRepo{active: 2}, &stubQualityRepo{})
	resp, err := uc.GetSummary(context.Background(), testCompany)
	require.NoError(t, err)

	// Hoy (sábado): el último ordeño, 70 litros
	assert.True(t, resp.Today.TotalLiters.Equal(decimal.NewFromInt(70)))
	assert.Equal(t, 1, resp.Today.MilkingsAM)
	assert.Equal(t, 0, resp.Today.MilkingsPM)
	assert.Equal(t, 1, resp.Today.ActiveCows)
	assert.True(t, resp.Today.AvgPerCow.Equal(decimal.NewFromInt(70)))

	// Semana en curso: 10+20+...+70 = 280; 7 días transcurridos → 40/día
	assert.True(t, resp.ThisWeek.TotalLiters.Equal(decimal.NewFromInt(280)),
		"total semanal esperado 280, obtuvo %s", resp.ThisWeek.TotalLiters)
	assert.True(t, resp.ThisWeek.AvgDaily.Equal(decimal.NewFromInt(40)))

	// Serie diaria en orden calendario, domingo primero
	require.Len(t, resp.ThisWeek.DailyProduction, 7)
	assert.Equal(t, "Dom", resp.ThisWeek.DailyProduction[0].DayName)
	assert.Equal(t, "Sáb", resp.ThisWeek.DailyProduction[6].DayName)
	assert.True(t, resp.ThisWeek.DailyProduction[0].TotalLiters.Equal(decimal.NewFromInt(10)))
	assert.True(t, resp.ThisWeek.DailyProduction[6].TotalLiters.Equal(decimal.NewFromInt(70)))

	require.Len(t, resp.TopProducers, 1)
	assert.Equal(t, "V-001", resp.TopProducers[0].Tag)
	assert.NotNil(t, resp.Alerts, "alerts debe serializar como [] y no como null")
}

func TestGetSummary_SinDatos(t *testing.T) {
	uc := newTestDashboard(&stubMilkingRepo{}, &stubCowRepo{}, &stubEmployeeRepo{}, &stubQualityRepo{})

	resp, err := uc.GetSummary(context.Background(), testCompany)
	require.NoError(t, err)

	assert.True(t, resp.Today.TotalLiters.IsZero())
	assert.True(t, resp.Today.AvgPerCow.IsZero(), "sin vacas activas no hay división por cero")
	assert.Len(t, resp.ThisWeek.DailyProduction, 7, "la serie siempre trae 7 días")
}

// ──────────────────────────────────────────────────────────────────────────────
// GetMetrics
// ──────────────────────────────────────────────────────────────────────────────

func TestGetMetrics_VentanasCalendario(t *testing.T) {
	milk := &stubMilkingRepo{milkings: []*entity.Milking{
		milkingOn("2026-08-29", entity.ShiftAM, "100"), // hoy
		milkingOn("2026-08-25", entity.ShiftAM, "50"),  // esta semana (dom 23 en adelante)
		milkingOn("2026-08-10", entity.ShiftAM, "30"),  // este mes, semana pasada
	}}
	cows := &stubCowRepo{cows: []*entity.Cow{
		{ID: "c1", CompanyID: testCompany, DailyProduction: decimal.NewFromInt(30), IsActive: true},
		{ID: "c2", CompanyID: testCompany, DailyProduction: decimal.NewFromInt(20), IsActive: true},
	}}
	tests := &stubQualityRepo{tests: []*entity.QualityTest{
		{CompanyID: testCompany, TestDate: "2026-08-15",
			FatPercentage: decimal.RequireFromString("3.50"), ProteinPercentage: decimal.RequireFromString("3.10")},
		{CompanyID: testCompany, TestDate: "2026-08-20",
			FatPercentage: decimal.RequireFromString("3.70"), ProteinPercentage: decimal.RequireFromString("3.30")},
	}}

	uc := newTestDashboard(milk, cows, &stubEmployeeRepo{active: 2}, tests)
	resp, err := uc.GetMetrics(context.Background(), testCompany)
	require.NoError(t, err)

	assert.True(t, resp.Production.Daily.Equal(decimal.NewFromInt(100)))
	assert.True(t, resp.Production.Weekly.Equal(decimal.NewFromInt(150)))
	assert.True(t, resp.Production.Monthly.Equal(decimal.NewFromInt(180)))

	// Eficiencia: (30+20)/2 vacas = 25; 100 litros de hoy / 2 empleados = 50
	assert.True(t, resp.Efficiency.AvgPerCow.Equal(decimal.NewFromInt(25)))
	assert.True(t, resp.Efficiency.AvgPerEmployee.Equal(decimal.NewFromInt(50)))

	// Calidad: promedios del mes
	assert.True(t, resp.Quality.AvgFat.Equal(decimal.RequireFromString("3.60")))
	assert.True(t, resp.Quality.AvgProtein.Equal(decimal.RequireFromString("3.20")))
	assert.Equal(t, 2, resp.Quality.TestsCount)
}

func TestGetMetrics_SinVacasNiEmpleados(t *testing.T) {
	uc := newTestDashboard(&stubMilkingRepo{}, &stubCowRepo{}, &stubEmployeeRepo{}, &stubQualityRepo{})

	resp, err := uc.GetMetrics(context.Background(), testCompany)
	require.NoError(t, err)

	assert.True(t, resp.Efficiency.AvgPerCow.IsZero())
	assert.True(t, resp.Efficiency.AvgPerEmployee.IsZero())
	assert.Equal(t, 0, resp.Quality.TestsCount)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetProductionByPeriod
// ──────────────────────────────────────────────────────────────────────────────

func TestGetProductionByPeriod_Day(t *testing.T) {
	milk := &stubMilkingRepo{milkings: []*entity.Milking{
		milkingOn("2026-08-29", entity.ShiftAM, "120.50"),
		milkingOn("2026-08-29", entity.ShiftPM, "98.25"),
		milkingOn("2026-08-28", entity.ShiftAM, "500"), // otro día, fuera
	}}
	uc := newTestDashboard(milk, &stubCowRepo{}, &stubEmployeeRepo{}, &stubQualityRepo{})

	resp, err := uc.GetProductionByPeriod(context.Background(), testCompany, PeriodDay)
	require.NoError(t, err)

	assert.Equal(t, []string{"AM", "PM"}, resp.Labels)
	require.Len(t, resp.DataPoints, 2)
	assert.True(t, resp.DataPoints[0].TotalLiters.Equal(decimal.RequireFromString("120.50")))
	assert.True(t, resp.DataPoints[1].TotalLiters.Equal(decimal.RequireFromString("98.25")))
	assert.True(t, resp.Summary.TotalLiters.Equal(decimal.RequireFromString("218.75")))
	assert.Equal(t, 2, resp.Summary.DataPointsCount)
}

func TestGetProductionByPeriod_Week(t *testing.T) {
	// 10..70 litros, un ordeño por día de los últimos 7
	milk := &stubMilkingRepo{}
	for i := 0; i < 7; i++ {
		date := fixedNow.AddDate(0, 0, -(6 - i)).Format("2006-01-02")
		milk.milkings = append(milk.milkings, milkingOn(date, entity.ShiftAM, decimal.NewFromInt(int64((i+1)*10)).String()))
	}
	uc := newTestDashboard(milk, &stubCowRepo{}, &stubEmployeeRepo{}, &stubQualityRepo{})

	resp, err := uc.GetProductionByPeriod(context.Background(), testCompany, PeriodWeek)
	require.NoError(t, err)

	require.Len(t, resp.DataPoints, 7)
	// Orden cronológico: el bucket más antiguo primero
	assert.Equal(t, "2026-08-23", resp.DataPoints[0].Date)
	assert.Equal(t, "2026-08-29", resp.DataPoints[6].Date)
	assert.True(t, resp.Summary.TotalLiters.Equal(decimal.NewFromInt(280)))
	assert.True(t, resp.Summary.AvgLiters.Equal(decimal.NewFromInt(40)))
}

func TestGetProductionByPeriod_Month(t *testing.T) {
	// Ventana de 28 días: 2026-08-02 .. 2026-08-29. Un ordeño en cada bucket.
	milk := &stubMilkingRepo{milkings: []*entity.Milking{
		milkingOn("2026-08-02", entity.ShiftAM, "100"), // S1: 02..08
		milkingOn("2026-08-09", entity.ShiftAM, "200"), // S2: 09..15
		milkingOn("2026-08-16", entity.ShiftAM, "300"), // S3: 16..22
		milkingOn("2026-08-29", entity.ShiftAM, "400"), // S4: 23..29
		milkingOn("2026-08-01", entity.ShiftAM, "999"), // fuera de la ventana
	}}
	uc := newTestDashboard(milk, &stubCowRepo{}, &stubEmployeeRepo{}, &stubQualityRepo{})

	resp, err := uc.GetProductionByPeriod(context.Background(), testCompany, PeriodMonth)
	require.NoError(t, err)

	assert.Equal(t, []string{"S1", "S2", "S3", "S4"}, resp.Labels)
	require.Len(t, resp.DataPoints, 4)
	for i, expected := range []int64{100, 200, 300, 400} {
		assert.True(t, resp.DataPoints[i].TotalLiters.Equal(decimal.NewFromInt(expected)),
			"bucket S%d esperaba %d, obtuvo %s", i+1, expected, resp.DataPoints[i].TotalLiters)
	}
	assert.True(t, resp.Summary.TotalLiters.Equal(decimal.NewFromInt(1000)))
	assert.True(t, resp.Summary.AvgLiters.Equal(decimal.NewFromInt(250)))
}

func TestGetProductionByPeriod_PeriodoInvalido(t *testing.T) {
	uc := newTestDashboard(&stubMilkingRepo{}, &stubCowRepo{}, &stubEmployeeRepo{}, &stubQualityRepo{})

	_, err := uc.GetProductionByPeriod(context.Background(), testCompany, "year")
	assert.Error(t, err)
}
