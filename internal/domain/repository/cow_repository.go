package repository

import "github.com/tu-usuario/lecheria-api/internal/domain/entity"

// CowRepository define las lecturas sobre el hato que necesita el núcleo.
// El CRUD de vacas pertenece a otro módulo de la aplicación.
type CowRepository interface {
	GetByID(companyID, id string) (*entity.Cow, error)
	CountActive(companyID string) (int, error)
	ListActive(companyID string) ([]*entity.Cow, error)
	// TopByDailyProduction devuelve las vacas activas con mayor
	// daily_production (campo mantenido externamente), descendente.
	TopByDailyProduction(companyID string, limit int) ([]*entity.Cow, error)
}

// EmployeeRepository define las lecturas sobre empleados que necesita el núcleo.
type EmployeeRepository interface {
	GetByID(companyID, id string) (*entity.Employee, error)
	CountActive(companyID string) (int, error)
}
