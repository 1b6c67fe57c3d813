package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/lecheria-api/internal/domain"
	"github.com/tu-usuario/lecheria-api/internal/domain/entity"
	"github.com/tu-usuario/lecheria-api/internal/domain/repository"
)

var _ repository.MilkingRepository = (*MilkingRepo)(nil)

// Columnas base de milkings; fecha y hora se devuelven como texto ISO.
const milkingColumns = `
	id, company_id, COALESCE(employee_id, ''), capture_mode, shift, cow_count,
	total_liters, to_char(milking_date, 'YYYY-MM-DD'), to_char(milking_time, 'HH24:MI'),
	COALESCE(notes, ''), created_at`

// MilkingRepo implementación de MilkingRepository sobre PostgreSQL (usable
// con pool o tx).
type MilkingRepo struct {
	q Querier
}

// NewMilkingRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMilkingRepository(q Querier) *MilkingRepo {
	return &MilkingRepo{q: q}
}

// Create persiste un ordeño.
func (r *MilkingRepo) Create(m *entity.Milking) error {
	query := `
		INSERT INTO milkings (id, company_id, employee_id, capture_mode, shift, cow_count, total_liters, milking_date, milking_time, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8::date, $9::time, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.CompanyID, nullIfEmpty(m.EmployeeID), m.CaptureMode, m.Shift,
		m.CowCount, m.TotalLiters, m.Date, m.Time, nullIfEmpty(m.Notes), m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create milking: %w", err)
	}
	return nil
}

// GetByID obtiene un ordeño del tenant. Devuelve (nil, nil) si no existe.
func (r *MilkingRepo) GetByID(companyID, id string) (*entity.Milking, error) {
	query := `SELECT ` + milkingColumns + ` FROM milkings WHERE company_id = $1 AND id = $2`
	m, err := scanMilking(r.q.QueryRow(context.Background(), query, companyID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get milking: %w", err)
	}
	return m, nil
}

// List devuelve los ordeños del tenant con el filtro conjuntivo aplicado,
// descendente por (fecha, hora).
func (r *MilkingRepo) List(companyID string, filter repository.MilkingFilter) ([]*entity.Milking, error) {
	query := `SELECT ` + milkingColumns + ` FROM milkings WHERE company_id = $1`
	args := []any{companyID}
	if filter.Date != "" {
		args = append(args, filter.Date)
		query += fmt.Sprintf(" AND milking_date = $%d::date", len(args))
	}
	if filter.Shift != "" {
		args = append(args, filter.Shift)
		query += fmt.Sprintf(" AND shift = $%d", len(args))
	}
	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		query += fmt.Sprintf(" AND employee_id = $%d", len(args))
	}
	query += " ORDER BY milking_date DESC, milking_time DESC"

	return r.queryMilkings(query, args...)
}

// ListFromDate devuelve los ordeños con fecha >= fromDate.
func (r *MilkingRepo) ListFromDate(companyID, fromDate string) ([]*entity.Milking, error) {
	query := `SELECT ` + milkingColumns + `
		FROM milkings WHERE company_id = $1 AND milking_date >= $2::date
		ORDER BY milking_date DESC, milking_time DESC`
	return r.queryMilkings(query, companyID, fromDate)
}

// ListRecent devuelve los últimos ordeños del tenant.
func (r *MilkingRepo) ListRecent(companyID string, limit int) ([]*entity.Milking, error) {
	query := `SELECT ` + milkingColumns + `
		FROM milkings WHERE company_id = $1
		ORDER BY milking_date DESC, milking_time DESC
		LIMIT $2`
	return r.queryMilkings(query, companyID, limit)
}

// Delete borra el ordeño (duro). domain.ErrNotFound si no existe en el tenant.
func (r *MilkingRepo) Delete(companyID, id string) error {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM milkings WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete milking: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MilkingRepo) queryMilkings(query string, args ...any) ([]*entity.Milking, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list milkings: %w", err)
	}
	defer rows.Close()

	var result []*entity.Milking
	for rows.Next() {
		m, err := scanMilking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan milking: %w", err)
		}
		result = append(result, m)
	}
	return result, rows.Err()
}

func scanMilking(row pgx.Row) (*entity.Milking, error) {
	var m entity.Milking
	err := row.Scan(
		&m.ID, &m.CompanyID, &m.EmployeeID, &m.CaptureMode, &m.Shift,
		&m.CowCount, &m.TotalLiters, &m.Date, &m.Time, &m.Notes, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
