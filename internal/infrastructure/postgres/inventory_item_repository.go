package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/lecheria-api/internal/domain"
	"github.com/tu-usuario/lecheria-api/internal/domain/entity"
	"github.com/tu-usuario/lecheria-api/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

const inventoryItemColumns = `
	id, company_id, batch_id, quantity, category, status,
	COALESCE(milking_id, ''), COALESCE(notes, ''), COALESCE(created_by, ''),
	created_at, updated_at`

// InventoryItemRepo implementación sobre PostgreSQL (usable con pool o tx).
type InventoryItemRepo struct {
	q Querier
}

// NewInventoryItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryItemRepository(q Querier) *InventoryItemRepo {
	return &InventoryItemRepo{q: q}
}

// Create persiste un item. La violación del único (company_id, batch_id) se
// mapea a domain.ErrDuplicate.
func (r *InventoryItemRepo) Create(item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (id, company_id, batch_id, quantity, category, status, milking_id, notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.CompanyID, item.BatchID, item.Quantity, item.Category, item.Status,
		nullIfEmpty(item.MilkingID), nullIfEmpty(item.Notes), nullIfEmpty(item.CreatedBy),
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create inventory item: %w", err)
	}
	return nil
}

// GetByID obtiene un item del tenant. Devuelve (nil, nil) si no existe.
func (r *InventoryItemRepo) GetByID(companyID, id string) (*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryItemColumns + ` FROM inventory_items WHERE company_id = $1 AND id = $2`
	return r.getOne(query, companyID, id)
}

// GetByBatchID obtiene un item por su batch_id dentro del tenant.
func (r *InventoryItemRepo) GetByBatchID(companyID, batchID string) (*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryItemColumns + ` FROM inventory_items WHERE company_id = $1 AND batch_id = $2`
	return r.getOne(query, companyID, batchID)
}

// GetForUpdate obtiene el item y bloquea su fila (SELECT FOR UPDATE) para
// serializar la aplicación de movimientos.
func (r *InventoryItemRepo) GetForUpdate(companyID, id string) (*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryItemColumns + `
		FROM inventory_items WHERE company_id = $1 AND id = $2
		FOR UPDATE`
	return r.getOne(query, companyID, id)
}

// List devuelve los items del tenant, más recientes primero.
func (r *InventoryItemRepo) List(companyID string) ([]*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryItemColumns + `
		FROM inventory_items WHERE company_id = $1
		ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}
	defer rows.Close()

	var result []*entity.InventoryItem
	for rows.Next() {
		item, err := scanInventoryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

// UpdateQuantity actualiza el caché de cantidad. Solo lo llama la aplicación
// de movimientos, dentro de la misma transacción que escribió el movimiento.
func (r *InventoryItemRepo) UpdateQuantity(companyID, id string, quantity decimal.Decimal) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE inventory_items SET quantity = $3, updated_at = now() WHERE company_id = $1 AND id = $2`,
		companyID, id, quantity)
	if err != nil {
		return fmt.Errorf("update quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete borra un item del tenant.
func (r *InventoryItemRepo) Delete(companyID, id string) error {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM inventory_items WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *InventoryItemRepo) getOne(query string, args ...any) (*entity.InventoryItem, error) {
	item, err := scanInventoryItem(r.q.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return item, nil
}

func scanInventoryItem(row pgx.Row) (*entity.InventoryItem, error) {
	var item entity.InventoryItem
	err := row.Scan(
		&item.ID, &item.CompanyID, &item.BatchID, &item.Quantity, &item.Category,
		&item.Status, &item.MilkingID, &item.Notes, &item.CreatedBy,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
