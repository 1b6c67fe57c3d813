package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/lecheria-api/internal/domain/entity"
	"github.com/tu-usuario/lecheria-api/internal/domain/repository"
)

var _ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)

// InventoryMovementRepo implementación sobre PostgreSQL (usable con pool o tx).
// El log de movimientos es append-only: no hay update ni delete.
type InventoryMovementRepo struct {
	q Querier
}

// NewInventoryMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryMovementRepository(q Querier) *InventoryMovementRepo {
	return &InventoryMovementRepo{q: q}
}

// Create persiste un movimiento de inventario.
func (r *InventoryMovementRepo) Create(movement *entity.InventoryMovement) error {
	query := `
		INSERT INTO inventory_movements (id, company_id, inventory_item_id, type, quantity, reason, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.CompanyID, movement.InventoryItemID, movement.Type,
		movement.Quantity, movement.Reason, nullIfEmpty(movement.Notes),
		nullIfEmpty(movement.CreatedBy), movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create inventory movement: %w", err)
	}
	return nil
}

// List devuelve movimientos más recientes primero; itemID vacío lista todos
// los del tenant.
func (r *InventoryMovementRepo) List(companyID, itemID string) ([]*entity.InventoryMovement, error) {
	query := `
		SELECT id, company_id, inventory_item_id, type, quantity, reason,
		       COALESCE(notes, ''), COALESCE(created_by, ''), created_at
		FROM inventory_movements WHERE company_id = $1`
	args := []any{companyID}
	if itemID != "" {
		args = append(args, itemID)
		query += " AND inventory_item_id = $2"
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var result []*entity.InventoryMovement
	for rows.Next() {
		var m entity.InventoryMovement
		err := rows.Scan(
			&m.ID, &m.CompanyID, &m.InventoryItemID, &m.Type, &m.Quantity,
			&m.Reason, &m.Notes, &m.CreatedBy, &m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		result = append(result, &m)
	}
	return result, rows.Err()
}
