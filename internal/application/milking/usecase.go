package milking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/lecheria-api/internal/application/dto"
	"github.com/tu-usuario/lecheria-api/internal/domain"
	"github.com/tu-usuario/lecheria-api/internal/domain/entity"
	"github.com/tu-usuario/lecheria-api/internal/domain/milking"
	"github.com/tu-usuario/lecheria-api/internal/domain/repository"
)

// UseCase es la puerta de entrada del ledger de producción: normaliza los
// tres modos de captura de ordeño en escrituras canónicas (evento padre +
// registros por vaca como unidad transaccional) y expone las lecturas por
// vaca, por empleado y por filtro.
type UseCase struct {
	txRunner TxRunner
	milkRepo repository.MilkingRepository
	indRepo  repository.IndividualMilkingRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	milkRepo repository.MilkingRepository,
	indRepo repository.IndividualMilkingRepository,
) *UseCase {
	return &UseCase{txRunner: txRunner, milkRepo: milkRepo, indRepo: indRepo}
}

// CreateCounted registra un ordeño rápido: conteo de vacas y litros totales
// tal como vienen, sin desglose por vaca ni reconciliación.
func (uc *UseCase) CreateCounted(ctx context.Context, companyID, employeeID string, in dto.CreateMilkingCountedRequest) (*entity.Milking, error) {
	if err := validateCommon(in.Shift, in.Date, in.Time); err != nil {
		return nil, err
	}
	if in.CowCount <= 0 || !in.TotalLiters.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	m := newMilking(companyID, employeeID, entity.CaptureModeCounted, in.Shift, in.CowCount, in.TotalLiters, in.Date, in.Time, in.Notes)
	if err := uc.milkRepo.Create(m); err != nil {
		return nil, fmt.Errorf("crear ordeño rápido: %w", err)
	}
	return m, nil
}

// CreateItemized registra un ordeño individual: un registro por vaca con sus
// litros medidos. El total del evento es la suma exacta de lo suministrado,
// sin redondeo.
func (uc *UseCase) CreateItemized(ctx context.Context, companyID, employeeID string, in dto.CreateMilkingItemizedRequest) (*entity.Milking, error) {
	if err := validateCommon(in.Shift, in.Date, in.Time); err != nil {
		return nil, err
	}
	if len(in.Cows) == 0 {
		return nil, domain.ErrInvalidInput
	}
	total := decimal.Zero
	for _, c := range in.Cows {
		if c.CowID == "" || c.Liters.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		total = total.Add(c.Liters)
	}

	m := newMilking(companyID, employeeID, entity.CaptureModeItemized, in.Shift, len(in.Cows), total, in.Date, in.Time, in.Notes)
	records := make([]*entity.IndividualMilking, len(in.Cows))
	for i, c := range in.Cows {
		records[i] = &entity.IndividualMilking{
			ID:        uuid.New().String(),
			MilkingID: m.ID,
			CowID:     c.CowID,
			Liters:    c.Liters,
		}
	}
	if err := uc.createWithRecords(ctx, m, records); err != nil {
		return nil, err
	}
	return m, nil
}

// CreateAggregate registra un ordeño masivo: el total medido se reparte por
// igual entre las vacas listadas, redondeado a 2 decimales por registro. El
// evento conserva el total original, no la suma redondeada; la diferencia
// queda dentro de la tolerancia de reconciliación (0.01 por vaca).
func (uc *UseCase) CreateAggregate(ctx context.Context, companyID, employeeID string, in dto.CreateMilkingAggregateRequest) (*entity.Milking, error) {
	if err := validateCommon(in.Shift, in.Date, in.Time); err != nil {
		return nil, err
	}
	if len(in.CowIDs) == 0 || !in.TotalLiters.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	for _, id := range in.CowIDs {
		if id == "" {
			return nil, domain.ErrInvalidInput
		}
	}

	m := newMilking(companyID, employeeID, entity.CaptureModeAggregate, in.Shift, len(in.CowIDs), in.TotalLiters, in.Date, in.Time, in.Notes)
	allocated := milking.AllocatePerCow(in.TotalLiters, len(in.CowIDs))
	records := make([]*entity.IndividualMilking, len(in.CowIDs))
	for i, cowID := range in.CowIDs {
		records[i] = &entity.IndividualMilking{
			ID:        uuid.New().String(),
			MilkingID: m.ID,
			CowID:     cowID,
			Liters:    allocated,
		}
	}
	if err := uc.createWithRecords(ctx, m, records); err != nil {
		return nil, err
	}
	return m, nil
}

// createWithRecords escribe el evento y sus hijos como unidad. Un fallo en
// los hijos revierte el padre y se reporta como ConsistencyError; si la
// compensación también falla, ambos errores viajan juntos.
func (uc *UseCase) createWithRecords(ctx context.Context, m *entity.Milking, records []*entity.IndividualMilking) error {
	sum := decimal.Zero
	for _, r := range records {
		sum = sum.Add(r.Liters)
	}
	if !milking.Reconciled(m.TotalLiters, sum, m.CowCount) {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(
		milkRepo repository.MilkingRepository,
		indRepo repository.IndividualMilkingRepository,
	) error {
		if err := milkRepo.Create(m); err != nil {
			return fmt.Errorf("crear ordeño: %w", err)
		}
		if err := indRepo.CreateBatch(records); err != nil {
			return &domain.ConsistencyError{Cause: err}
		}
		return nil
	})
}

// Detail es un ordeño con sus registros individuales.
type Detail struct {
	Milking *entity.Milking
	Records []*entity.IndividualMilking
}

// Get devuelve el detalle de un ordeño del tenant.
func (uc *UseCase) Get(ctx context.Context, companyID, id string) (*Detail, error) {
	m, err := uc.milkRepo.GetByID(companyID, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	records, err := uc.indRepo.ListByMilking(m.ID)
	if err != nil {
		return nil, fmt.Errorf("registros del ordeño: %w", err)
	}
	return &Detail{Milking: m, Records: records}, nil
}

// List devuelve los ordeños del tenant aplicando el filtro conjuntivo; los
// campos vacíos no filtran. Orden descendente por (fecha, hora).
func (uc *UseCase) List(ctx context.Context, companyID string, filter repository.MilkingFilter) ([]*entity.Milking, error) {
	if filter.Shift != "" && filter.Shift != entity.ShiftAM && filter.Shift != entity.ShiftPM {
		return nil, domain.ErrInvalidInput
	}
	if filter.Date != "" && !validDate(filter.Date) {
		return nil, domain.ErrInvalidInput
	}
	return uc.milkRepo.List(companyID, filter)
}

// CowHistory devuelve el historial de una vaca: registros individuales con
// los metadatos del ordeño padre, más reciente primero.
func (uc *UseCase) CowHistory(ctx context.Context, companyID, cowID string) ([]*entity.CowHistoryEntry, error) {
	if cowID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.indRepo.ListByCow(companyID, cowID)
}

// EmployeeHistory devuelve los ordeños registrados por un empleado más el
// resumen derivado {conteo, litros totales, promedio por ordeño}.
func (uc *UseCase) EmployeeHistory(ctx context.Context, companyID, employeeID string) (*dto.EmployeeHistoryResponse, error) {
	if employeeID == "" {
		return nil, domain.ErrInvalidInput
	}
	milkings, err := uc.milkRepo.List(companyID, repository.MilkingFilter{EmployeeID: employeeID})
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	responses := make([]dto.MilkingResponse, len(milkings))
	for i, m := range milkings {
		total = total.Add(m.TotalLiters)
		responses[i] = dto.MilkingResponseFrom(m)
	}
	avg := decimal.Zero
	if len(milkings) > 0 {
		avg = total.Div(decimal.NewFromInt(int64(len(milkings)))).Round(2)
	}
	return &dto.EmployeeHistoryResponse{
		Milkings: responses,
		Summary: dto.EmployeeHistorySummaryDTO{
			TotalMilkings: len(milkings),
			TotalLiters:   total.Round(2),
			AvgPerMilking: avg,
		},
	}, nil
}

// DailyStats devuelve los totales de un día calendario con desglose AM/PM.
func (uc *UseCase) DailyStats(ctx context.Context, companyID, date string) (*dto.DailyStatsResponse, error) {
	if !validDate(date) {
		return nil, domain.ErrInvalidInput
	}
	milkings, err := uc.milkRepo.List(companyID, repository.MilkingFilter{Date: date})
	if err != nil {
		return nil, err
	}

	var amCount, pmCount int
	amLiters, pmLiters := decimal.Zero, decimal.Zero
	for _, m := range milkings {
		if m.Shift == entity.ShiftAM {
			amCount++
			amLiters = amLiters.Add(m.TotalLiters)
		} else {
			pmCount++
			pmLiters = pmLiters.Add(m.TotalLiters)
		}
	}
	return &dto.DailyStatsResponse{
		Date:        date,
		TotalLiters: amLiters.Add(pmLiters).Round(2),
		AM:          dto.ShiftStatsDTO{Count: amCount, Liters: amLiters.Round(2)},
		PM:          dto.ShiftStatsDTO{Count: pmCount, Liters: pmLiters.Round(2)},
	}, nil
}

// Delete borra un ordeño (duro) y sus registros individuales en cascada,
// dentro de una misma transacción. Los ordeños no usan soft-delete.
func (uc *UseCase) Delete(ctx context.Context, companyID, id string) error {
	existing, err := uc.milkRepo.GetByID(companyID, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.Run(ctx, func(
		milkRepo repository.MilkingRepository,
		indRepo repository.IndividualMilkingRepository,
	) error {
		if err := indRepo.DeleteByMilking(id); err != nil {
			return fmt.Errorf("borrar registros individuales: %w", err)
		}
		return milkRepo.Delete(companyID, id)
	})
}

func newMilking(companyID, employeeID, mode, shift string, cowCount int, totalLiters decimal.Decimal, date, clock, notes string) *entity.Milking {
	return &entity.Milking{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		EmployeeID:  employeeID,
		CaptureMode: mode,
		Shift:       shift,
		CowCount:    cowCount,
		TotalLiters: totalLiters,
		Date:        date,
		Time:        clock,
		Notes:       notes,
		CreatedAt:   time.Now(),
	}
}

func validateCommon(shift, date, clock string) error {
	if shift != entity.ShiftAM && shift != entity.ShiftPM {
		return domain.ErrInvalidInput
	}
	if !validDate(date) || !validClock(clock) {
		return domain.ErrInvalidInput
	}
	return nil
}

func validDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

func validClock(clock string) bool {
	_, err := time.Parse("15:04", clock)
	return err == nil
}
