package repository

import "github.com/tu-usuario/lecheria-api/internal/domain/entity"

// MilkingFilter es el predicado cerrado para listar ordeños. Campos en cero
// valor no filtran; los presentes se combinan en conjunción.
type MilkingFilter struct {
	Date       string // YYYY-MM-DD exacto
	Shift      string // AM | PM
	EmployeeID string
}

// MilkingRepository define el puerto de persistencia de ordeños. Todas las
// operaciones reciben el companyID explícito: no existe tenant ambiente.
type MilkingRepository interface {
	Create(m *entity.Milking) error
	GetByID(companyID, id string) (*entity.Milking, error)
	// List devuelve ordeños en orden descendente por (fecha, hora).
	List(companyID string, filter MilkingFilter) ([]*entity.Milking, error)
	// ListFromDate devuelve ordeños con fecha >= fromDate (ventanas de agregación).
	ListFromDate(companyID, fromDate string) ([]*entity.Milking, error)
	ListRecent(companyID string, limit int) ([]*entity.Milking, error)
	// Delete borra el ordeño (duro). Devuelve domain.ErrNotFound si no existe
	// dentro del tenant.
	Delete(companyID, id string) error
}

// IndividualMilkingRepository define el puerto para los registros por vaca.
type IndividualMilkingRepository interface {
	CreateBatch(records []*entity.IndividualMilking) error
	ListByMilking(milkingID string) ([]*entity.IndividualMilking, error)
	// ListByCow une cada registro con los metadatos del ordeño padre,
	// más reciente primero. Consulta sin estado: re-ejecutable.
	ListByCow(companyID, cowID string) ([]*entity.CowHistoryEntry, error)
	DeleteByMilking(milkingID string) error
}
