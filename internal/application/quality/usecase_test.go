package quality_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appquality "github.com/tu-usuario/lecheria-api/internal/application/quality"

	"github.com/tu-usuario/lecheria-api/internal/application/dto"
	"github.com/tu-usuario/lecheria-api/internal/domain"
	"github.com/tu-usuario/lecheria-api/internal/domain/entity"
	"github.com/tu-usuario/lecheria-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeQualityRepo struct {
	tests map[string]*entity.QualityTest
}

func newFakeQualityRepo() *fakeQualityRepo {
	return &fakeQualityRepo{tests: map[string]*entity.QualityTest{}}
}

func (r *fakeQualityRepo) Create(t *entity.QualityTest) error {
	r.tests[t.ID] = t
	return nil
}

func (r *fakeQualityRepo) GetByID(companyID, id string) (*entity.QualityTest, error) {
	t, ok := r.tests[id]
	if !ok || t.CompanyID != companyID {
		return nil, nil
	}
	return t, nil
}

func (r *fakeQualityRepo) GetByTestID(companyID, testID string) (*entity.QualityTest, error) {
	for _, t := range r.tests {
		if t.CompanyID == companyID && t.TestID == testID {
			return t, nil
		}
	}
	return nil, nil
}

func (r *fakeQualityRepo) List(companyID string) ([]*entity.QualityTest, error) {
	var out []*entity.QualityTest
	for _, t := range r.tests {
		if t.CompanyID == companyID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeQualityRepo) ListFromDate(companyID, fromDate string) ([]*entity.QualityTest, error) {
	var out []*entity.QualityTest
	for _, t := range r.tests {
		if t.CompanyID == companyID && t.TestDate >= fromDate {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeQualityRepo) Update(companyID, id string, patch repository.QualityTestUpdate) (*entity.QualityTest, error) {
	t, ok := r.tests[id]
	if !ok || t.CompanyID != companyID {
		return nil, nil
	}
	updated := *t
	if patch.FatPercentage != nil {
		updated.FatPercentage = *patch.FatPercentage
	}
	if patch.ProteinPercentage != nil {
		updated.ProteinPercentage = *patch.ProteinPercentage
	}
	if patch.Lactose != nil {
		updated.Lactose = *patch.Lactose
	}
	if patch.Acidity != nil {
		updated.Acidity = *patch.Acidity
	}
	if patch.UFC != nil {
		updated.UFC = *patch.UFC
	}
	if patch.Observations != nil {
		updated.Observations = *patch.Observations
	}
	if patch.TestDate != nil {
		updated.TestDate = *patch.TestDate
	}
	r.tests[id] = &updated
	return &updated, nil
}

func (r *fakeQualityRepo) Delete(companyID, id string) error {
	t, ok := r.tests[id]
	if !ok || t.CompanyID != companyID {
		return domain.ErrNotFound
	}
	delete(r.tests, id)
	return nil
}

const companyA = "company-a"

func validRequest(testID string) dto.CreateQualityTestRequest {
	return dto.CreateQualityTestRequest{
		TestID:            testID,
		FatPercentage:     decimal.RequireFromString("3.50"),
		ProteinPercentage: decimal.RequireFromString("3.20"),
		Lactose:           decimal.RequireFromString("4.80"),
		Acidity:           decimal.RequireFromString("0.15"),
		UFC:               45000,
		TestDate:          "2026-08-30",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_Persiste(t *testing.T) {
	uc := appquality.NewUseCase(newFakeQualityRepo())

	test, err := uc.Create(context.Background(), companyA, validRequest("Q-001"))
	require.NoError(t, err)
	assert.Equal(t, "Q-001", test.TestID)
	assert.NotEmpty(t, test.ID)
}

func TestCreate_TestIDDuplicado(t *testing.T) {
	uc := appquality.NewUseCase(newFakeQualityRepo())

	_, err := uc.Create(context.Background(), companyA, validRequest("Q-001"))
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), companyA, validRequest("Q-001"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// El test_id es único por empresa: otro tenant puede reutilizarlo.
func TestCreate_OtroTenantReutilizaTestID(t *testing.T) {
	uc := appquality.NewUseCase(newFakeQualityRepo())

	_, err := uc.Create(context.Background(), companyA, validRequest("Q-001"))
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), "company-b", validRequest("Q-001"))
	assert.NoError(t, err)
}

func TestCreate_RechazaValoresNegativos(t *testing.T) {
	uc := appquality.NewUseCase(newFakeQualityRepo())

	in := validRequest("Q-001")
	in.FatPercentage = decimal.NewFromInt(-1)
	_, err := uc.Create(context.Background(), companyA, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = validRequest("Q-002")
	in.UFC = -10
	_, err = uc.Create(context.Background(), companyA, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_Parcial(t *testing.T) {
	repo := newFakeQualityRepo()
	uc := appquality.NewUseCase(repo)

	created, err := uc.Create(context.Background(), companyA, validRequest("Q-001"))
	require.NoError(t, err)

	newFat := decimal.RequireFromString("4.10")
	updated, err := uc.Update(context.Background(), companyA, created.ID, dto.UpdateQualityTestRequest{
		FatPercentage: &newFat,
	})
	require.NoError(t, err)

	assert.True(t, updated.FatPercentage.Equal(newFat))
	assert.True(t, updated.ProteinPercentage.Equal(created.ProteinPercentage),
		"los campos sin puntero no deben cambiar")
}

func TestUpdate_NoExiste(t *testing.T) {
	uc := appquality.NewUseCase(newFakeQualityRepo())

	_, err := uc.Update(context.Background(), companyA, "no-existe", dto.UpdateQualityTestRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStats_Promedios(t *testing.T) {
	uc := appquality.NewUseCase(newFakeQualityRepo())

	in1 := validRequest("Q-001")
	in1.FatPercentage = decimal.RequireFromString("3.50")
	in1.ProteinPercentage = decimal.RequireFromString("3.00")
	in1.UFC = 40000
	_, err := uc.Create(context.Background(), companyA, in1)
	require.NoError(t, err)

	in2 := validRequest("Q-002")
	in2.FatPercentage = decimal.RequireFromString("3.70")
	in2.ProteinPercentage = decimal.RequireFromString("3.40")
	in2.UFC = 50000
	_, err = uc.Create(context.Background(), companyA, in2)
	require.NoError(t, err)

	stats, err := uc.Stats(context.Background(), companyA)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Total)
	assert.True(t, stats.AvgFat.Equal(decimal.RequireFromString("3.60")))
	assert.True(t, stats.AvgProtein.Equal(decimal.RequireFromString("3.20")))
	assert.Equal(t, int64(45000), stats.AvgUFC)
}

func TestStats_SinPruebas(t *testing.T) {
	uc := appquality.NewUseCase(newFakeQualityRepo())

	stats, err := uc.Stats(context.Background(), companyA)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Total)
}
