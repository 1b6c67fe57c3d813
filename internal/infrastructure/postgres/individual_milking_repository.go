package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/lecheria-api/internal/domain/entity"
	"github.com/tu-usuario/lecheria-api/internal/domain/repository"
)

var _ repository.IndividualMilkingRepository = (*IndividualMilkingRepo)(nil)

// IndividualMilkingRepo implementación sobre PostgreSQL (usable con pool o tx).
type IndividualMilkingRepo struct {
	q Querier
}

// NewIndividualMilkingRepository construye el adaptador. Pasar pool o tx (Querier).
func NewIndividualMilkingRepository(q Querier) *IndividualMilkingRepo {
	return &IndividualMilkingRepo{q: q}
}

// CreateBatch inserta los registros por vaca de un ordeño en un solo viaje.
func (r *IndividualMilkingRepo) CreateBatch(records []*entity.IndividualMilking) error {
	if len(records) == 0 {
		return nil
	}
	query := `INSERT INTO individual_milkings (id, milking_id, cow_id, liters) VALUES `
	args := make([]any, 0, len(records)*4)
	for i, rec := range records {
		if i > 0 {
			query += ", "
		}
		base := i * 4
		query += fmt.Sprintf("($%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4)
		args = append(args, rec.ID, rec.MilkingID, rec.CowID, rec.Liters)
	}
	if _, err := r.q.Exec(context.Background(), query, args...); err != nil {
		return fmt.Errorf("create individual milkings: %w", err)
	}
	return nil
}

// ListByMilking devuelve los registros de un ordeño.
func (r *IndividualMilkingRepo) ListByMilking(milkingID string) ([]*entity.IndividualMilking, error) {
	query := `
		SELECT id, milking_id, cow_id, liters
		FROM individual_milkings WHERE milking_id = $1`
	rows, err := r.q.Query(context.Background(), query, milkingID)
	if err != nil {
		return nil, fmt.Errorf("list individual milkings: %w", err)
	}
	defer rows.Close()

	var result []*entity.IndividualMilking
	for rows.Next() {
		var rec entity.IndividualMilking
		if err := rows.Scan(&rec.ID, &rec.MilkingID, &rec.CowID, &rec.Liters); err != nil {
			return nil, fmt.Errorf("scan individual milking: %w", err)
		}
		result = append(result, &rec)
	}
	return result, rows.Err()
}

// ListByCow devuelve el historial de una vaca: cada registro unido con los
// metadatos del ordeño padre, más reciente primero.
func (r *IndividualMilkingRepo) ListByCow(companyID, cowID string) ([]*entity.CowHistoryEntry, error) {
	query := `
		SELECT im.id, im.milking_id, im.cow_id, im.liters,
		       m.shift, m.capture_mode,
		       to_char(m.milking_date, 'YYYY-MM-DD'), to_char(m.milking_time, 'HH24:MI'),
		       COALESCE(m.employee_id, '')
		FROM individual_milkings im
		JOIN milkings m ON m.id = im.milking_id
		WHERE m.company_id = $1 AND im.cow_id = $2
		ORDER BY m.milking_date DESC, m.milking_time DESC`
	rows, err := r.q.Query(context.Background(), query, companyID, cowID)
	if err != nil {
		return nil, fmt.Errorf("cow history: %w", err)
	}
	defer rows.Close()

	var result []*entity.CowHistoryEntry
	for rows.Next() {
		var e entity.CowHistoryEntry
		err := rows.Scan(
			&e.Record.ID, &e.Record.MilkingID, &e.Record.CowID, &e.Record.Liters,
			&e.Shift, &e.CaptureMode, &e.Date, &e.Time, &e.EmployeeID,
		)
		if err != nil {
			return nil, fmt.Errorf("scan cow history: %w", err)
		}
		result = append(result, &e)
	}
	return result, rows.Err()
}

// DeleteByMilking borra los registros de un ordeño (cascada de Delete).
func (r *IndividualMilkingRepo) DeleteByMilking(milkingID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM individual_milkings WHERE milking_id = $1`, milkingID)
	if err != nil {
		return fmt.Errorf("delete individual milkings: %w", err)
	}
	return nil
}
