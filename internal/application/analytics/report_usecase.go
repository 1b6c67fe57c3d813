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

// DailyReportData datos que recibe el generador del reporte diario.
type DailyReportData struct {
	Date        string
	TotalLiters decimal.Decimal
	AM          dto.ShiftStatsDTO
	PM          dto.ShiftStatsDTO
	ActiveCows  int
	Milkings    []dto.MilkingResponse
}

// ReportGenerator es el puerto de renderizado del reporte diario.
type ReportGenerator interface {
	GenerateDailyReport(ctx context.Context, data *DailyReportData) ([]byte, error)
}

// ReportUseCase produce el reporte de producción de un día en PDF.
type ReportUseCase struct {
	milkRepo  repository.MilkingRepository
	cowRepo   repository.CowRepository
	generator ReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	milkRepo repository.MilkingRepository,
	cowRepo repository.CowRepository,
	generator ReportGenerator,
) *ReportUseCase {
	return &ReportUseCase{milkRepo: milkRepo, cowRepo: cowRepo, generator: generator}
}

// DailyReportPDF genera el PDF del reporte de producción de la fecha dada.
func (uc *ReportUseCase) DailyReportPDF(ctx context.Context, companyID, date string) ([]byte, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, domain.ErrInvalidInput
	}
	milkings, err := uc.milkRepo.List(companyID, repository.MilkingFilter{Date: date})
	if err != nil {
		return nil, fmt.Errorf("reporte diario: ordeños: %w", err)
	}
	activeCows, err := uc.cowRepo.CountActive(companyID)
	if err != nil {
		return nil, fmt.Errorf("reporte diario: vacas activas: %w", err)
	}

	data := &DailyReportData{Date: date, ActiveCows: activeCows}
	amLiters, pmLiters := decimal.Zero, decimal.Zero
	for _, m := range milkings {
		if m.Shift == entity.ShiftAM {
			data.AM.Count++
			amLiters = amLiters.Add(m.TotalLiters)
		} else {
			data.PM.Count++
			pmLiters = pmLiters.Add(m.TotalLiters)
		}
		data.Milkings = append(data.Milkings, dto.MilkingResponseFrom(m))
	}
	data.AM.Liters = amLiters.Round(2)
	data.PM.Liters = pmLiters.Round(2)
	data.TotalLiters = amLiters.Add(pmLiters).Round(2)

	return uc.generator.GenerateDailyReport(ctx, data)
}
