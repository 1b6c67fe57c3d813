// Package quality gestiona las pruebas de calidad de leche. El motor de
// agregación las lee en su ventana mensual; este módulo es su dueño.
package quality

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/lecheria-api/internal/application/dto"
	"github.com/tu-usuario/lecheria-api/internal/domain"
	"github.com/tu-usuario/lecheria-api/internal/domain/entity"
	"github.com/tu-usuario/lecheria-api/internal/domain/repository"
)

// UseCase CRUD y estadísticas de pruebas de calidad.
type UseCase struct {
	testRepo repository.QualityTestRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(testRepo repository.QualityTestRepository) *UseCase {
	return &UseCase{testRepo: testRepo}
}

// Create registra una prueba. El test_id es único por empresa.
func (uc *UseCase) Create(ctx context.Context, companyID string, in dto.CreateQualityTestRequest) (*entity.QualityTest, error) {
	if in.TestID == "" || !validDate(in.TestDate) {
		return nil, domain.ErrInvalidInput
	}
	if in.FatPercentage.IsNegative() || in.ProteinPercentage.IsNegative() ||
		in.Lactose.IsNegative() || in.Acidity.IsNegative() || in.UFC < 0 {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.testRepo.GetByTestID(companyID, in.TestID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	test := &entity.QualityTest{
		ID:                uuid.New().String(),
		CompanyID:         companyID,
		MilkingID:         in.MilkingID,
		TestID:            in.TestID,
		FatPercentage:     in.FatPercentage,
		ProteinPercentage: in.ProteinPercentage,
		Lactose:           in.Lactose,
		Acidity:           in.Acidity,
		UFC:               in.UFC,
		Observations:      in.Observations,
		TestDate:          in.TestDate,
		CreatedAt:         time.Now(),
	}
	if err := uc.testRepo.Create(test); err != nil {
		return nil, err
	}
	return test, nil
}

// List devuelve las pruebas del tenant, por fecha descendente.
func (uc *UseCase) List(ctx context.Context, companyID string) ([]*entity.QualityTest, error) {
	return uc.testRepo.List(companyID)
}

// Get devuelve una prueba del tenant.
func (uc *UseCase) Get(ctx context.Context, companyID, id string) (*entity.QualityTest, error) {
	test, err := uc.testRepo.GetByID(companyID, id)
	if err != nil {
		return nil, err
	}
	if test == nil {
		return nil, domain.ErrNotFound
	}
	return test, nil
}

// Update aplica una actualización parcial.
func (uc *UseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateQualityTestRequest) (*entity.QualityTest, error) {
	if in.TestDate != nil && !validDate(*in.TestDate) {
		return nil, domain.ErrInvalidInput
	}
	test, err := uc.testRepo.Update(companyID, id, repository.QualityTestUpdate{
		FatPercentage:     in.FatPercentage,
		ProteinPercentage: in.ProteinPercentage,
		Lactose:           in.Lactose,
		Acidity:           in.Acidity,
		UFC:               in.UFC,
		Observations:      in.Observations,
		TestDate:          in.TestDate,
	})
	if err != nil {
		return nil, err
	}
	if test == nil {
		return nil, domain.ErrNotFound
	}
	return test, nil
}

// Delete borra una prueba del tenant.
func (uc *UseCase) Delete(ctx context.Context, companyID, id string) error {
	return uc.testRepo.Delete(companyID, id)
}

// Stats calcula promedios de grasa, proteína y UFC sobre todas las pruebas.
func (uc *UseCase) Stats(ctx context.Context, companyID string) (*dto.QualityStatsResponse, error) {
	tests, err := uc.testRepo.List(companyID)
	if err != nil {
		return nil, err
	}
	if len(tests) == 0 {
		return &dto.QualityStatsResponse{}, nil
	}

	fat, protein := decimal.Zero, decimal.Zero
	var ufc int64
	for _, t := range tests {
		fat = fat.Add(t.FatPercentage)
		protein = protein.Add(t.ProteinPercentage)
		ufc += t.UFC
	}
	n := decimal.NewFromInt(int64(len(tests)))
	return &dto.QualityStatsResponse{
		Total:      len(tests),
		AvgFat:     fat.Div(n).Round(2),
		AvgProtein: protein.Div(n).Round(2),
		AvgUFC:     ufc / int64(len(tests)),
	}, nil
}

func validDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}
