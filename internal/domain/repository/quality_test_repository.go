package repository

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/lecheria-api/internal/domain/entity"
)

// QualityTestUpdate son los campos mutables de una prueba de calidad.
// Punteros nil = sin cambio.
type QualityTestUpdate struct {
	FatPercentage     *decimal.Decimal
	ProteinPercentage *decimal.Decimal
	Lactose           *decimal.Decimal
	Acidity           *decimal.Decimal
	UFC               *int64
	Observations      *string
	TestDate          *string
}

// QualityTestRepository define el puerto de persistencia de pruebas de calidad.
type QualityTestRepository interface {
	Create(test *entity.QualityTest) error
	GetByID(companyID, id string) (*entity.QualityTest, error)
	GetByTestID(companyID, testID string) (*entity.QualityTest, error)
	// List devuelve pruebas ordenadas por fecha descendente.
	List(companyID string) ([]*entity.QualityTest, error)
	// ListFromDate devuelve pruebas con fecha >= fromDate (promedios mensuales).
	ListFromDate(companyID, fromDate string) ([]*entity.QualityTest, error)
	Update(companyID, id string, patch QualityTestUpdate) (*entity.QualityTest, error)
	Delete(companyID, id string) error
}
