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

var _ repository.QualityTestRepository = (*QualityTestRepo)(nil)

const qualityTestColumns = `
	id, company_id, COALESCE(milking_id, ''), test_id, fat_percentage,
	protein_percentage, lactose, acidity, ufc, COALESCE(observations, ''),
	to_char(test_date, 'YYYY-MM-DD'), created_at`

// QualityTestRepo implementación sobre PostgreSQL (usable con pool o tx).
type QualityTestRepo struct {
	q Querier
}

// NewQualityTestRepository construye el adaptador. Pasar pool o tx (Querier).
func NewQualityTestRepository(q Querier) *QualityTestRepo {
	return &QualityTestRepo{q: q}
}

// Create persiste una prueba. La violación del único (company_id, test_id)
// se mapea a domain.ErrDuplicate.
func (r *QualityTestRepo) Create(test *entity.QualityTest) error {
	query := `
		INSERT INTO quality_tests (id, company_id, milking_id, test_id, fat_percentage, protein_percentage, lactose, acidity, ufc, observations, test_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11::date, $12)`
	_, err := r.q.Exec(context.Background(), query,
		test.ID, test.CompanyID, nullIfEmpty(test.MilkingID), test.TestID,
		test.FatPercentage, test.ProteinPercentage, test.Lactose, test.Acidity,
		test.UFC, nullIfEmpty(test.Observations), test.TestDate, test.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create quality test: %w", err)
	}
	return nil
}

// GetByID obtiene una prueba del tenant. Devuelve (nil, nil) si no existe.
func (r *QualityTestRepo) GetByID(companyID, id string) (*entity.QualityTest, error) {
	query := `SELECT ` + qualityTestColumns + ` FROM quality_tests WHERE company_id = $1 AND id = $2`
	return r.getOne(query, companyID, id)
}

// GetByTestID obtiene una prueba por su test_id dentro del tenant.
func (r *QualityTestRepo) GetByTestID(companyID, testID string) (*entity.QualityTest, error) {
	query := `SELECT ` + qualityTestColumns + ` FROM quality_tests WHERE company_id = $1 AND test_id = $2`
	return r.getOne(query, companyID, testID)
}

// List devuelve las pruebas del tenant, por fecha descendente.
func (r *QualityTestRepo) List(companyID string) ([]*entity.QualityTest, error) {
	query := `SELECT ` + qualityTestColumns + `
		FROM quality_tests WHERE company_id = $1
		ORDER BY test_date DESC`
	return r.queryTests(query, companyID)
}

// ListFromDate devuelve las pruebas con fecha >= fromDate.
func (r *QualityTestRepo) ListFromDate(companyID, fromDate string) ([]*entity.QualityTest, error) {
	query := `SELECT ` + qualityTestColumns + `
		FROM quality_tests WHERE company_id = $1 AND test_date >= $2::date
		ORDER BY test_date DESC`
	return r.queryTests(query, companyID, fromDate)
}

// Update aplica un patch parcial vía COALESCE: los campos nil no cambian.
func (r *QualityTestRepo) Update(companyID, id string, patch repository.QualityTestUpdate) (*entity.QualityTest, error) {
	query := `
		UPDATE quality_tests SET
			fat_percentage = COALESCE($3, fat_percentage),
			protein_percentage = COALESCE($4, protein_percentage),
			lactose = COALESCE($5, lactose),
			acidity = COALESCE($6, acidity),
			ufc = COALESCE($7, ufc),
			observations = COALESCE($8, observations),
			test_date = COALESCE($9::date, test_date)
		WHERE company_id = $1 AND id = $2
		RETURNING ` + qualityTestColumns
	test, err := scanQualityTest(r.q.QueryRow(context.Background(), query,
		companyID, id,
		patch.FatPercentage, patch.ProteinPercentage, patch.Lactose, patch.Acidity,
		patch.UFC, patch.Observations, patch.TestDate,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update quality test: %w", err)
	}
	return test, nil
}

// Delete borra una prueba del tenant.
func (r *QualityTestRepo) Delete(companyID, id string) error {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM quality_tests WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete quality test: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *QualityTestRepo) getOne(query string, args ...any) (*entity.QualityTest, error) {
	test, err := scanQualityTest(r.q.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quality test: %w", err)
	}
	return test, nil
}

func (r *QualityTestRepo) queryTests(query string, args ...any) ([]*entity.QualityTest, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list quality tests: %w", err)
	}
	defer rows.Close()

	var result []*entity.QualityTest
	for rows.Next() {
		test, err := scanQualityTest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan quality test: %w", err)
		}
		result = append(result, test)
	}
	return result, rows.Err()
}

func scanQualityTest(row pgx.Row) (*entity.QualityTest, error) {
	var t entity.QualityTest
	err := row.Scan(
		&t.ID, &t.CompanyID, &t.MilkingID, &t.TestID, &t.FatPercentage,
		&t.ProteinPercentage, &t.Lactose, &t.Acidity, &t.UFC, &t.Observations,
		&t.TestDate, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
