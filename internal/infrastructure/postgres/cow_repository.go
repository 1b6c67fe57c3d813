package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/lecheria-api/internal/domain/entity"
	"github.com/tu-usuario/lecheria-api/internal/domain/repository"
)

var _ repository.CowRepository = (*CowRepo)(nil)
var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

const cowColumns = `id, company_id, tag, name, COALESCE(breed, ''), daily_production, is_active`

// CowRepo lecturas sobre el hato. El CRUD de vacas vive en otro módulo; el
// núcleo solo consulta.
type CowRepo struct {
	q Querier
}

// NewCowRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCowRepository(q Querier) *CowRepo {
	return &CowRepo{q: q}
}

// GetByID obtiene una vaca del tenant. Devuelve (nil, nil) si no existe.
func (r *CowRepo) GetByID(companyID, id string) (*entity.Cow, error) {
	query := `SELECT ` + cowColumns + ` FROM cows WHERE company_id = $1 AND id = $2`
	cow, err := scanCow(r.q.QueryRow(context.Background(), query, companyID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cow: %w", err)
	}
	return cow, nil
}

// CountActive cuenta las vacas activas del tenant.
func (r *CowRepo) CountActive(companyID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM cows WHERE company_id = $1 AND is_active`, companyID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count active cows: %w", err)
	}
	return count, nil
}

// ListActive devuelve las vacas activas del tenant.
func (r *CowRepo) ListActive(companyID string) ([]*entity.Cow, error) {
	query := `SELECT ` + cowColumns + ` FROM cows WHERE company_id = $1 AND is_active`
	return r.queryCows(query, companyID)
}

// TopByDailyProduction devuelve las vacas activas con mayor daily_production
// (campo mantenido externamente), descendente.
func (r *CowRepo) TopByDailyProduction(companyID string, limit int) ([]*entity.Cow, error) {
	query := `SELECT ` + cowColumns + `
		FROM cows WHERE company_id = $1 AND is_active
		ORDER BY daily_production DESC
		LIMIT $2`
	return r.queryCows(query, companyID, limit)
}

func (r *CowRepo) queryCows(query string, args ...any) ([]*entity.Cow, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cows: %w", err)
	}
	defer rows.Close()

	var result []*entity.Cow
	for rows.Next() {
		cow, err := scanCow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cow: %w", err)
		}
		result = append(result, cow)
	}
	return result, rows.Err()
}

func scanCow(row pgx.Row) (*entity.Cow, error) {
	var c entity.Cow
	err := row.Scan(&c.ID, &c.CompanyID, &c.Tag, &c.Name, &c.Breed, &c.DailyProduction, &c.IsActive)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// EmployeeRepo lecturas sobre empleados para eficiencia e historiales.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// GetByID obtiene un empleado del tenant. Devuelve (nil, nil) si no existe.
func (r *EmployeeRepo) GetByID(companyID, id string) (*entity.Employee, error) {
	var e entity.Employee
	err := r.q.QueryRow(context.Background(),
		`SELECT id, company_id, name, is_active FROM employees WHERE company_id = $1 AND id = $2`,
		companyID, id).Scan(&e.ID, &e.CompanyID, &e.Name, &e.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &e, nil
}

// CountActive cuenta los empleados activos del tenant.
func (r *EmployeeRepo) CountActive(companyID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM employees WHERE company_id = $1 AND is_active`, companyID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count active employees: %w", err)
	}
	return count, nil
}
